package tui

import "strings"

// Attr is a bitfield of text attributes.
type Attr uint8

const (
	AttrNone Attr = 0
	AttrBold Attr = 1 << (iota - 1)
	AttrDim
	AttrItalic
	AttrUnderline
	AttrBlink
	AttrReverse
	AttrStrikethrough
)

var attrNames = []struct {
	attr Attr
	name string
}{
	{AttrBold, "bold"},
	{AttrDim, "dim"},
	{AttrItalic, "italic"},
	{AttrUnderline, "underline"},
	{AttrBlink, "blink"},
	{AttrReverse, "reverse"},
	{AttrStrikethrough, "strikethrough"},
}

func (a Attr) String() string {
	if a == AttrNone {
		return "none"
	}
	var parts []string
	for _, n := range attrNames {
		if a&n.attr != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// ParseAttrs parses a list of attribute names such as ["bold", "underline"].
func ParseAttrs(names []string) (Attr, error) {
	var out Attr
outer:
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		for _, n := range attrNames {
			if n.name == name {
				out |= n.attr
				continue outer
			}
		}
		return AttrNone, newError(KindInvalid, "unknown attribute %q", name)
	}
	return out, nil
}

// Style is a resolved cell style. The zero value uses the terminal default
// colors and no attributes.
type Style struct {
	Fg    Color
	Bg    Color
	Attrs Attr
}

// NewStyle returns a new Style with default colors and no attributes.
func NewStyle() Style {
	return Style{}
}

// Foreground returns a copy with the given foreground color.
func (s Style) Foreground(c Color) Style {
	s.Fg = c
	return s
}

// Background returns a copy with the given background color.
func (s Style) Background(c Color) Style {
	s.Bg = c
	return s
}

// With returns a copy with the given attributes added.
func (s Style) With(a Attr) Style {
	s.Attrs |= a
	return s
}

// Bold returns a copy with the bold attribute set.
func (s Style) Bold() Style { return s.With(AttrBold) }

// Underline returns a copy with the underline attribute set.
func (s Style) Underline() Style { return s.With(AttrUnderline) }

// Reverse returns a copy with the reverse attribute set.
func (s Style) Reverse() Style { return s.With(AttrReverse) }

// Equal returns true if both styles are identical.
func (s Style) Equal(other Style) bool {
	return s == other
}

// HasAttr returns true if the style has the given attribute(s) set.
func (s Style) HasAttr(a Attr) bool {
	return s.Attrs&a == a
}
