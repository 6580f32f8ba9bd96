package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// themeFile is the on-disk shape of a theme, shared by TOML and YAML.
//
//	[default]
//	fg = "white"
//
//	[[rule]]
//	pattern = "/frame/focused"
//	fg = "blue"
//	attrs = ["bold"]
type themeFile struct {
	Default themeEntry  `toml:"default" yaml:"default"`
	Rules   []themeRule `toml:"rule" yaml:"rule"`
}

type themeEntry struct {
	Fg    string   `toml:"fg" yaml:"fg"`
	Bg    string   `toml:"bg" yaml:"bg"`
	Attrs []string `toml:"attrs" yaml:"attrs"`
}

type themeRule struct {
	Pattern    string `toml:"pattern" yaml:"pattern"`
	themeEntry `yaml:",inline"`
}

// LoadTheme reads a TOML (.toml) or YAML (.yaml, .yml) theme file into a new
// StyleMap.
func LoadTheme(path string) (*StyleMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme: %w", err)
	}
	return ParseTheme(data, strings.TrimPrefix(filepath.Ext(path), "."))
}

// ParseTheme decodes theme data in the given format ("toml", "yaml" or
// "yml").
func ParseTheme(data []byte, format string) (*StyleMap, error) {
	var tf themeFile
	switch strings.ToLower(format) {
	case "toml":
		if _, err := toml.Decode(string(data), &tf); err != nil {
			return nil, wrapError(KindInvalid, err, "decode toml theme")
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &tf); err != nil {
			return nil, wrapError(KindInvalid, err, "decode yaml theme")
		}
	default:
		return nil, newError(KindInvalid, "unsupported theme format %q", format)
	}

	m := NewStyleMap()
	base, err := tf.Default.props()
	if err != nil {
		return nil, fmt.Errorf("default: %w", err)
	}
	var def Style
	if base.Fg != nil {
		def.Fg = *base.Fg
	}
	if base.Bg != nil {
		def.Bg = *base.Bg
	}
	if base.Attrs != nil {
		def.Attrs = *base.Attrs
	}
	m.SetDefault(def)

	for i, r := range tf.Rules {
		p, err := r.props()
		if err != nil {
			return nil, fmt.Errorf("rule %d (%s): %w", i, r.Pattern, err)
		}
		if err := m.AddRule(r.Pattern, p); err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
	}
	return m, nil
}

func (e themeEntry) props() (Props, error) {
	var p Props
	if e.Fg != "" {
		c, err := ParseColor(e.Fg)
		if err != nil {
			return p, err
		}
		p.Fg = &c
	}
	if e.Bg != "" {
		c, err := ParseColor(e.Bg)
		if err != nil {
			return p, err
		}
		p.Bg = &c
	}
	if e.Attrs != nil {
		a, err := ParseAttrs(e.Attrs)
		if err != nil {
			return p, err
		}
		p.Attrs = &a
	}
	return p, nil
}
