package tui

import (
	"strconv"
	"strings"
)

// Props is a partial style. Nil fields leave the property to other rules.
type Props struct {
	Fg    *Color
	Bg    *Color
	Attrs *Attr
}

type styleRule struct {
	pattern pathPattern
	props   Props
}

// StyleMap resolves styles for node paths from an ordered list of pattern
// rules. Each property is taken from the most specific rule that sets it;
// among equally specific rules the one added last wins.
type StyleMap struct {
	rules   []styleRule
	base    Style
	cache   map[string]Style
	version uint64 // bumped by every change to rules or base
}

// NewStyleMap returns an empty map whose unresolved properties fall back to
// the terminal defaults.
func NewStyleMap() *StyleMap {
	return &StyleMap{}
}

// Add appends a rule. A default (zero) color or AttrNone leaves that
// property unset; use AddRule to set a property back to the default.
func (m *StyleMap) Add(pattern string, fg, bg Color, attrs Attr) error {
	var p Props
	if !fg.IsDefault() {
		p.Fg = &fg
	}
	if !bg.IsDefault() {
		p.Bg = &bg
	}
	if attrs != AttrNone {
		p.Attrs = &attrs
	}
	return m.AddRule(pattern, p)
}

// AddRule appends a rule with explicit properties.
func (m *StyleMap) AddRule(pattern string, p Props) error {
	pat, err := parsePattern(pattern)
	if err != nil {
		return err
	}
	m.rules = append(m.rules, styleRule{pattern: pat, props: p})
	m.changed()
	return nil
}

// SetDefault sets the style used for properties no rule provides.
func (m *StyleMap) SetDefault(s Style) {
	m.base = s
	m.changed()
}

func (m *StyleMap) changed() {
	m.cache = nil
	m.version++
}

// Default returns the fallback style.
func (m *StyleMap) Default() Style {
	return m.base
}

// Len returns the number of rules.
func (m *StyleMap) Len() int {
	return len(m.rules)
}

// Resolve computes the style for a path of node and layer names, root first.
func (m *StyleMap) Resolve(path []string) Style {
	key := cacheKey(path)
	if s, ok := m.cache[key]; ok {
		return s
	}

	out := m.base
	fgSpec, bgSpec, attrSpec := -1, -1, -1
	for _, r := range m.rules {
		spec, ok := r.pattern.match(path)
		if !ok {
			continue
		}
		// >= so that later rules win ties.
		if r.props.Fg != nil && spec >= fgSpec {
			out.Fg, fgSpec = *r.props.Fg, spec
		}
		if r.props.Bg != nil && spec >= bgSpec {
			out.Bg, bgSpec = *r.props.Bg, spec
		}
		if r.props.Attrs != nil && spec >= attrSpec {
			out.Attrs, attrSpec = *r.props.Attrs, spec
		}
	}

	if m.cache == nil {
		m.cache = make(map[string]Style)
	}
	m.cache[key] = out
	return out
}

// cacheKey encodes path so that distinct paths never share a key, even when
// names contain separators.
func cacheKey(path []string) string {
	var b strings.Builder
	for _, name := range path {
		b.WriteString(strconv.Itoa(len(name)))
		b.WriteByte(':')
		b.WriteString(name)
	}
	return b.String()
}
