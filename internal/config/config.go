// Package config loads settings for the tuicore command from defaults, an
// optional config file and TUICORE_* environment variables, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/grindlemire/tuicore/internal/debug"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
)

// EnvPrefix prefixes every environment override, e.g. TUICORE_FRAME_RATE
// or TUICORE_LOG_LEVEL.
const EnvPrefix = "TUICORE"

// Config is the full set of runtime settings.
type Config struct {
	FrameRate      int       `mapstructure:"frame_rate" yaml:"frame_rate"`
	EventQueueSize int       `mapstructure:"event_queue_size" yaml:"event_queue_size"`
	Mouse          bool      `mapstructure:"mouse" yaml:"mouse"`
	Theme          string    `mapstructure:"theme" yaml:"theme"`
	Log            LogConfig `mapstructure:"log" yaml:"log"`
}

// LogConfig controls the debug log file. An empty File disables logging.
type LogConfig struct {
	Level      string `mapstructure:"level" yaml:"level"`
	File       string `mapstructure:"file" yaml:"file"`
	MaxSize    int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge     int    `mapstructure:"max_age" yaml:"max_age"`
	Compress   bool   `mapstructure:"compress" yaml:"compress"`
}

// DebugOptions converts the log settings for the debug package.
func (l LogConfig) DebugOptions() debug.Options {
	return debug.Options{
		Level:      l.Level,
		File:       l.File,
		MaxSize:    l.MaxSize,
		MaxBackups: l.MaxBackups,
		MaxAge:     l.MaxAge,
		Compress:   l.Compress,
	}
}

// SetDefaults registers the default value of every key. Keys without a
// default are invisible to environment overrides.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("frame_rate", 60)
	v.SetDefault("event_queue_size", 256)
	v.SetDefault("mouse", true)
	v.SetDefault("theme", "")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 28)
	v.SetDefault("log.compress", false)
}

// NewViper returns a viper instance with defaults and environment
// overrides wired up.
func NewViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads file, if given, on top of the defaults and returns the
// validated result. Without a file, ./tuicore.yaml is used when present.
func Load(file string) (*Config, error) {
	v := NewViper()
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("tuicore")
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return FromViper(v)
}

// FromViper decodes and validates the settings held by v.
func FromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	var errs error
	if c.FrameRate < 1 || c.FrameRate > 240 {
		errs = multierr.Append(errs, fmt.Errorf("frame_rate must be between 1 and 240, got %d", c.FrameRate))
	}
	if c.EventQueueSize < 1 {
		errs = multierr.Append(errs, fmt.Errorf("event_queue_size must be positive, got %d", c.EventQueueSize))
	}
	if c.Log.MaxSize < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAge < 0 {
		errs = multierr.Append(errs, errors.New("log rotation limits must not be negative"))
	}
	return errs
}
