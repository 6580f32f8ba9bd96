package layout

// Frame is a rectangle decomposed into a border of a given thickness and the
// interior it surrounds. The side strips do not overlap: Top and Bottom span
// the full width, Left and Right fill the rows in between.
type Frame struct {
	Top, Bottom Rect
	Left, Right Rect
	Inner       Rect
}

// NewFrame decomposes r using the given border thickness on every side.
// A rectangle too small for the border yields strips that are clipped to r
// and an empty interior.
func NewFrame(r Rect, thickness int) Frame {
	return NewFrameEdges(r, EdgeAll(thickness))
}

// NewFrameEdges decomposes r with independent thickness per side.
func NewFrameEdges(r Rect, e Edges) Frame {
	if r.IsEmpty() {
		return Frame{}
	}
	top := min(e.Top, r.Height)
	bottom := min(e.Bottom, r.Height-top)
	left := min(e.Left, r.Width)
	right := min(e.Right, r.Width-left)
	midH := r.Height - top - bottom

	f := Frame{
		Top:    Rect{X: r.X, Y: r.Y, Width: r.Width, Height: top},
		Bottom: Rect{X: r.X, Y: r.Bottom() - bottom, Width: r.Width, Height: bottom},
		Left:   Rect{X: r.X, Y: r.Y + top, Width: left, Height: midH},
		Right:  Rect{X: r.Right() - right, Y: r.Y + top, Width: right, Height: midH},
		Inner:  Rect{X: r.X + left, Y: r.Y + top, Width: r.Width - left - right, Height: midH},
	}
	return f
}

// Corners returns the four corner cells of the outer rectangle in the order
// top-left, top-right, bottom-left, bottom-right.
func (f Frame) Corners() [4]Point {
	outer := f.Outer()
	return [4]Point{
		{X: outer.X, Y: outer.Y},
		{X: outer.Right() - 1, Y: outer.Y},
		{X: outer.X, Y: outer.Bottom() - 1},
		{X: outer.Right() - 1, Y: outer.Bottom() - 1},
	}
}

// Outer returns the rectangle the frame was built from.
func (f Frame) Outer() Rect {
	return f.Top.Union(f.Bottom).Union(f.Left).Union(f.Right).Union(f.Inner)
}

// Parts returns the non-empty border strips.
func (f Frame) Parts() []Rect {
	parts := make([]Rect, 0, 4)
	for _, r := range []Rect{f.Top, f.Left, f.Right, f.Bottom} {
		if !r.IsEmpty() {
			parts = append(parts, r)
		}
	}
	return parts
}
