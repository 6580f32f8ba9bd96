package tui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStyleMap_Specificity(t *testing.T) {
	m := NewStyleMap()
	require.NoError(t, m.Add("/", White, Color{}, AttrNone))
	require.NoError(t, m.Add("/frame", Grey, Color{}, AttrNone))
	require.NoError(t, m.Add("/frame/focused", Blue, Color{}, AttrNone))

	type tc struct {
		path []string
		want Color
	}

	tests := map[string]tc{
		"deepest prefix wins":  {path: []string{"frame", "focused", "text"}, want: Blue},
		"shorter prefix":       {path: []string{"frame", "text"}, want: Grey},
		"root only":            {path: []string{"other"}, want: White},
		"empty path uses root": {path: nil, want: White},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := m.Resolve(tt.path).Fg; got != tt.want {
				t.Errorf("Resolve(%v).Fg = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestStyleMap_Floating(t *testing.T) {
	m := NewStyleMap()
	require.NoError(t, m.Add("/app", Red, Color{}, AttrNone))
	require.NoError(t, m.Add("list/item", Green, Color{}, AttrNone))
	require.NoError(t, m.Add("item*", Color{}, Black, AttrNone))

	s := m.Resolve([]string{"app", "sidebar", "list", "item"})
	if s.Fg != Green {
		t.Errorf("Fg = %v, want green from floating rule", s.Fg)
	}
	if s.Bg != Black {
		t.Errorf("Bg = %v, want black from glob rule", s.Bg)
	}

	s = m.Resolve([]string{"app", "list"})
	if s.Fg != Red {
		t.Errorf("Fg = %v, want red when floating rule does not match", s.Fg)
	}
}

func TestStyleMap_PerProperty(t *testing.T) {
	m := NewStyleMap()
	require.NoError(t, m.Add("/a/b", Red, Color{}, AttrNone))
	require.NoError(t, m.Add("/a", Color{}, Blue, AttrBold))

	s := m.Resolve([]string{"a", "b"})
	want := Style{Fg: Red, Bg: Blue, Attrs: AttrBold}
	if s != want {
		t.Errorf("Resolve() = %+v, want %+v", s, want)
	}
}

func TestStyleMap_TieLaterWins(t *testing.T) {
	m := NewStyleMap()
	require.NoError(t, m.Add("x", Red, Color{}, AttrNone))
	require.NoError(t, m.Add("/x", Green, Color{}, AttrNone))

	if got := m.Resolve([]string{"x"}).Fg; got != Green {
		t.Errorf("Fg = %v, want later rule to win tie", got)
	}
}

func TestStyleMap_ExplicitDefault(t *testing.T) {
	m := NewStyleMap()
	m.SetDefault(Style{Fg: White})
	def := DefaultColor()
	require.NoError(t, m.AddRule("/plain", Props{Fg: &def}))

	require.Equal(t, DefaultColor(), m.Resolve([]string{"plain"}).Fg)
	require.Equal(t, White, m.Resolve([]string{"other"}).Fg)
}

func TestStyleMap_InvalidPatterns(t *testing.T) {
	type tc struct {
		pattern string
	}

	tests := map[string]tc{
		"empty":          {pattern: ""},
		"double slash":   {pattern: "/a//b"},
		"trailing slash": {pattern: "a/"},
		"bad glob":       {pattern: "/a/[b"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := NewStyleMap().Add(tt.pattern, Red, Color{}, AttrNone)
			require.Error(t, err)
			require.True(t, IsKind(err, KindInvalid), "error %v is not Invalid", err)
		})
	}
}

func TestStyleMap_CacheInvalidation(t *testing.T) {
	m := NewStyleMap()
	require.NoError(t, m.Add("/a", Red, Color{}, AttrNone))
	require.Equal(t, Red, m.Resolve([]string{"a"}).Fg)

	require.NoError(t, m.Add("/a", Green, Color{}, AttrNone))
	require.Equal(t, Green, m.Resolve([]string{"a"}).Fg)
}

func TestStyleMap_CacheKeysKeepNamesApart(t *testing.T) {
	m := NewStyleMap()
	require.NoError(t, m.Add("a/b", Red, Color{}, AttrNone))

	require.Equal(t, DefaultColor(), m.Resolve([]string{"a/b"}).Fg)
	require.Equal(t, Red, m.Resolve([]string{"a", "b"}).Fg)
	require.Equal(t, DefaultColor(), m.Resolve([]string{"a/b"}).Fg)
}

func TestStyleMap_VersionCountsChanges(t *testing.T) {
	m := NewStyleMap()
	v := m.version
	require.NoError(t, m.Add("a", Red, Color{}, AttrNone))
	require.Greater(t, m.version, v)

	v = m.version
	require.Error(t, m.Add("a[", Red, Color{}, AttrNone))
	require.Equal(t, v, m.version)

	m.SetDefault(NewStyle().Bold())
	require.Greater(t, m.version, v)
}

func TestParseTheme(t *testing.T) {
	type tc struct {
		format string
		data   string
	}

	tests := map[string]tc{
		"toml": {
			format: "toml",
			data: `
[default]
fg = "white"

[[rule]]
pattern = "/frame"
fg = "grey"

[[rule]]
pattern = "/frame/focused"
fg = "blue"
attrs = ["bold"]
`,
		},
		"yaml": {
			format: "yaml",
			data: `
default:
  fg: white
rule:
  - pattern: /frame
    fg: grey
  - pattern: /frame/focused
    fg: blue
    attrs: [bold]
`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m, err := ParseTheme([]byte(tt.data), tt.format)
			require.NoError(t, err)
			require.Equal(t, 2, m.Len())

			s := m.Resolve([]string{"frame", "focused", "text"})
			require.Equal(t, Style{Fg: Blue, Attrs: AttrBold}, s)
			require.Equal(t, White, m.Resolve([]string{"elsewhere"}).Fg)
		})
	}
}

func TestLoadTheme(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "theme.yml")
	require.NoError(t, os.WriteFile(file, []byte("rule:\n  - pattern: /\n    bg: \"#102030\"\n"), 0o644))

	m, err := LoadTheme(file)
	require.NoError(t, err)
	require.Equal(t, RGBColor(0x10, 0x20, 0x30), m.Resolve([]string{"x"}).Bg)

	_, err = ParseTheme([]byte("x"), "ini")
	require.True(t, IsKind(err, KindInvalid))

	_, err = ParseTheme([]byte("rule:\n  - pattern: /\n    fg: nope\n"), "yaml")
	require.Error(t, err)
}
