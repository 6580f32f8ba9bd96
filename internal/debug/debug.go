package debug

import (
	"fmt"
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Environment variables read by FromEnv.
const (
	EnvFile  = "TUI_DEBUG"
	EnvLevel = "TUI_DEBUG_LEVEL"
)

// Options selects where debug logs go and how the file rotates. Sizes are
// in megabytes and ages in days, as lumberjack counts them.
type Options struct {
	Level      string
	File       string
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
}

// FromEnv returns options taken from TUI_DEBUG and TUI_DEBUG_LEVEL.
func FromEnv() Options {
	level := os.Getenv(EnvLevel)
	if level == "" {
		level = "debug"
	}
	return Options{Level: level, File: os.Getenv(EnvFile), MaxSize: 10, MaxBackups: 3}
}

// New builds a logger writing JSON lines to opts.File. An empty File gives
// a no-op logger.
func New(opts Options) (*zap.Logger, error) {
	if opts.File == "" {
		return zap.NewNop(), nil
	}
	level := zap.NewAtomicLevel()
	if opts.Level != "" {
		if err := level.UnmarshalText([]byte(opts.Level)); err != nil {
			return nil, fmt.Errorf("parse log level %q: %w", opts.Level, err)
		}
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02T15:04:05.000Z07:00")
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	sink := zapcore.AddSync(&lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    opts.MaxSize,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAge,
		Compress:   opts.Compress,
	})
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), sink, level)
	return zap.New(core, zap.AddStacktrace(zap.ErrorLevel)), nil
}

var global atomic.Pointer[zap.Logger]

// Init replaces the package logger. Callers should Sync before exiting.
func Init(opts Options) error {
	l, err := New(opts)
	if err != nil {
		return err
	}
	if old := global.Swap(l); old != nil {
		_ = old.Sync()
	}
	return nil
}

// Logger returns the package logger, a no-op until Init succeeds.
func Logger() *zap.Logger {
	if l := global.Load(); l != nil {
		return l
	}
	return zap.NewNop()
}

// Log writes a formatted debug message to the package logger.
func Log(format string, args ...any) {
	Logger().Sugar().Debugf(format, args...)
}

// Sync flushes the package logger.
func Sync() error {
	if l := global.Load(); l != nil {
		return l.Sync()
	}
	return nil
}
