package layout

import (
	"errors"
	"fmt"
)

// Direction specifies how a node arranges its children.
type Direction uint8

const (
	Row    Direction = iota // Children laid out left-to-right
	Column                  // Children laid out top-to-bottom
	Grid                    // Children fill a fixed number of columns, row by row
	Stack                   // Children overlap, each placed in the full content box
)

func (d Direction) String() string {
	switch d {
	case Row:
		return "row"
	case Column:
		return "column"
	case Grid:
		return "grid"
	case Stack:
		return "stack"
	}
	return fmt.Sprintf("Direction(%d)", d)
}

// Justify specifies how children are distributed along the main axis.
type Justify uint8

const (
	JustifyStart        Justify = iota // Pack at start
	JustifyEnd                         // Pack at end
	JustifyCenter                      // Center children
	JustifySpaceBetween                // Even space between, none at edges
	JustifySpaceAround                 // Even space around each child
	JustifySpaceEvenly                 // Equal space between and at edges
)

// Align specifies how children are positioned on the cross axis.
type Align uint8

const (
	AlignStart   Align = iota // Align to start of cross axis
	AlignEnd                  // Align to end of cross axis
	AlignCenter               // Center on cross axis
	AlignStretch              // Stretch to fill cross axis
)

// Scroll selects which axes of a node's canvas may exceed its content box.
type Scroll uint8

const (
	ScrollNone Scroll = iota
	ScrollVertical
	ScrollHorizontal
	ScrollBoth
)

// Horizontal reports whether the canvas may be wider than the content box.
func (s Scroll) Horizontal() bool {
	return s == ScrollHorizontal || s == ScrollBoth
}

// Vertical reports whether the canvas may be taller than the content box.
func (s Scroll) Vertical() bool {
	return s == ScrollVertical || s == ScrollBoth
}

// Style contains all layout properties for a node.
type Style struct {
	Width  Value
	Height Value

	// Min and max bounds in cells. A zero max means unbounded.
	MinWidth, MinHeight int
	MaxWidth, MaxHeight int

	Direction Direction
	Justify   Justify
	Align     Align
	Gap       int // Space between children along the main axis, and between grid rows and columns
	Columns   int // Grid only
	Scroll    Scroll

	Padding Edges
	Margin  Edges
}

// DefaultStyle returns a Style with sensible defaults.
func DefaultStyle() Style {
	return Style{
		Width:     Auto(),
		Height:    Auto(),
		Direction: Column,
		Align:     AlignStretch,
		Columns:   1,
	}
}

// Validate reports every malformed property in the style.
func (s Style) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}
	if err := s.Width.validate("width"); err != nil {
		errs = append(errs, err)
	}
	if err := s.Height.validate("height"); err != nil {
		errs = append(errs, err)
	}
	if s.Padding.IsNegative() {
		add("negative padding %+v", s.Padding)
	}
	if s.Margin.IsNegative() {
		add("negative margin %+v", s.Margin)
	}
	if s.Gap < 0 {
		add("negative gap %d", s.Gap)
	}
	if s.MinWidth < 0 || s.MinHeight < 0 || s.MaxWidth < 0 || s.MaxHeight < 0 {
		add("negative min/max bound")
	}
	if s.MaxWidth > 0 && s.MaxWidth < s.MinWidth {
		add("max width %d below min width %d", s.MaxWidth, s.MinWidth)
	}
	if s.MaxHeight > 0 && s.MaxHeight < s.MinHeight {
		add("max height %d below min height %d", s.MaxHeight, s.MinHeight)
	}
	if s.Direction > Stack {
		add("unknown direction %d", s.Direction)
	}
	if s.Direction == Grid && s.Columns < 1 {
		add("grid needs at least one column, got %d", s.Columns)
	}
	if s.Justify > JustifySpaceEvenly {
		add("unknown justify %d", s.Justify)
	}
	if s.Align > AlignStretch {
		add("unknown align %d", s.Align)
	}
	if s.Scroll > ScrollBoth {
		add("unknown scroll mode %d", s.Scroll)
	}
	return errors.Join(errs...)
}

// IsRow returns true if this node lays out horizontally.
func (s Style) IsRow() bool {
	return s.Direction == Row
}

func (s Style) clampWidth(w int) int {
	w = max(w, s.MinWidth)
	if s.MaxWidth > 0 {
		w = min(w, s.MaxWidth)
	}
	return w
}

func (s Style) clampHeight(h int) int {
	h = max(h, s.MinHeight)
	if s.MaxHeight > 0 {
		h = min(h, s.MaxHeight)
	}
	return h
}
