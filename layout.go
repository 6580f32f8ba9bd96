// layout.go re-exports geometry and layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package tui

import "github.com/grindlemire/tuicore/internal/layout"

// Direction selects how a node arranges its children.
type Direction = layout.Direction

const (
	Row    = layout.Row
	Column = layout.Column
	Grid   = layout.Grid
	Stack  = layout.Stack
)

// Justify specifies how children are distributed along the main axis.
type Justify = layout.Justify

const (
	JustifyStart        = layout.JustifyStart
	JustifyEnd          = layout.JustifyEnd
	JustifyCenter       = layout.JustifyCenter
	JustifySpaceBetween = layout.JustifySpaceBetween
	JustifySpaceAround  = layout.JustifySpaceAround
	JustifySpaceEvenly  = layout.JustifySpaceEvenly
)

// Align specifies how children are aligned along the cross axis.
type Align = layout.Align

const (
	AlignStart   = layout.AlignStart
	AlignEnd     = layout.AlignEnd
	AlignCenter  = layout.AlignCenter
	AlignStretch = layout.AlignStretch
)

// ScrollMode selects which axes of a node may scroll.
type ScrollMode = layout.Scroll

const (
	ScrollNone       = layout.ScrollNone
	ScrollVertical   = layout.ScrollVertical
	ScrollHorizontal = layout.ScrollHorizontal
	ScrollBoth       = layout.ScrollBoth
)

// Sizing is the sizing rule for one axis (fixed, flex, measured, percent or auto).
type Sizing = layout.Value

// Unit specifies how a Sizing is interpreted.
type Unit = layout.Unit

const (
	UnitAuto     = layout.UnitAuto
	UnitFixed    = layout.UnitFixed
	UnitPercent  = layout.UnitPercent
	UnitFlex     = layout.UnitFlex
	UnitMeasured = layout.UnitMeasured
)

// Sizing constructors.
var (
	Auto     = layout.Auto
	Fixed    = layout.Fixed
	Percent  = layout.Percent
	Flex     = layout.Flex
	Measured = layout.Measured
)

// LayoutSpec holds the layout intent a widget declares.
type LayoutSpec = layout.Style

// Constraint bounds one axis of a measurement.
type Constraint = layout.Constraint

// Constraints bounds both axes of a measurement.
type Constraints = layout.Constraints

// ConstraintMode describes how tightly a Constraint binds.
type ConstraintMode = layout.Mode

const (
	Unbounded = layout.Unbounded
	AtMost    = layout.AtMost
	Exact     = layout.Exact
)

// Rect is a signed rectangle in cell coordinates.
type Rect = layout.Rect

// Point is an (X, Y) cell coordinate.
type Point = layout.Point

// Size is a width/height pair.
type Size = layout.Size

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// Extent is a one-dimensional span.
type Extent = layout.Extent

// Line is an axis-aligned segment of cells.
type Line = layout.Line

// Frame is a rectangle decomposed into border strips and an interior.
type Frame = layout.Frame

// Geometry constructors.
var (
	NewRect       = layout.NewRect
	EdgeAll       = layout.EdgeAll
	EdgeSymmetric = layout.EdgeSymmetric
	EdgeTRBL      = layout.EdgeTRBL
	HLine         = layout.HLine
	VLine         = layout.VLine
	NewFrame      = layout.NewFrame
)

// LayoutOption configures a LayoutSpec.
type LayoutOption func(*LayoutSpec)

// NewLayoutSpec builds a validated LayoutSpec. Defaults are a column with
// stretched children and auto sizing on both axes.
func NewLayoutSpec(opts ...LayoutOption) (LayoutSpec, error) {
	spec := layout.DefaultStyle()
	for _, opt := range opts {
		opt(&spec)
	}
	if err := spec.Validate(); err != nil {
		return LayoutSpec{}, wrapError(KindLayout, err, "invalid layout spec")
	}
	return spec, nil
}

// MustLayoutSpec is NewLayoutSpec for static specs; it panics on error.
func MustLayoutSpec(opts ...LayoutOption) LayoutSpec {
	spec, err := NewLayoutSpec(opts...)
	if err != nil {
		panic(err)
	}
	return spec
}

// DefaultLayoutSpec returns the spec used by BaseWidget.
func DefaultLayoutSpec() LayoutSpec {
	return layout.DefaultStyle()
}

func WithDirection(d Direction) LayoutOption {
	return func(s *LayoutSpec) { s.Direction = d }
}

func WithWidth(v Sizing) LayoutOption {
	return func(s *LayoutSpec) { s.Width = v }
}

func WithHeight(v Sizing) LayoutOption {
	return func(s *LayoutSpec) { s.Height = v }
}

// WithSize sets both axes.
func WithSize(w, h Sizing) LayoutOption {
	return func(s *LayoutSpec) { s.Width, s.Height = w, h }
}

func WithMinSize(w, h int) LayoutOption {
	return func(s *LayoutSpec) { s.MinWidth, s.MinHeight = w, h }
}

// WithMaxSize bounds the node. Zero leaves an axis unbounded.
func WithMaxSize(w, h int) LayoutOption {
	return func(s *LayoutSpec) { s.MaxWidth, s.MaxHeight = w, h }
}

func WithPadding(e Edges) LayoutOption {
	return func(s *LayoutSpec) { s.Padding = e }
}

func WithMargin(e Edges) LayoutOption {
	return func(s *LayoutSpec) { s.Margin = e }
}

func WithJustify(j Justify) LayoutOption {
	return func(s *LayoutSpec) { s.Justify = j }
}

func WithAlign(a Align) LayoutOption {
	return func(s *LayoutSpec) { s.Align = a }
}

func WithGap(n int) LayoutOption {
	return func(s *LayoutSpec) { s.Gap = n }
}

// WithColumns switches the node to grid flow with n columns.
func WithColumns(n int) LayoutOption {
	return func(s *LayoutSpec) {
		s.Direction = Grid
		s.Columns = n
	}
}

func WithScroll(m ScrollMode) LayoutOption {
	return func(s *LayoutSpec) { s.Scroll = m }
}
