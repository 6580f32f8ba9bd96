package layout

// Line is an axis-aligned segment of cells starting at Start.
type Line struct {
	Start    Point
	Len      int
	Vertical bool
}

// HLine creates a horizontal line of n cells starting at (x, y).
func HLine(x, y, n int) Line {
	return Line{Start: Point{X: x, Y: y}, Len: n}
}

// VLine creates a vertical line of n cells starting at (x, y).
func VLine(x, y, n int) Line {
	return Line{Start: Point{X: x, Y: y}, Len: n, Vertical: true}
}

// End returns the cell one past the last cell of the line.
func (l Line) End() Point {
	if l.Vertical {
		return Point{X: l.Start.X, Y: l.Start.Y + l.Len}
	}
	return Point{X: l.Start.X + l.Len, Y: l.Start.Y}
}

// Rect returns the one-cell-thick rectangle covered by the line.
func (l Line) Rect() Rect {
	if l.Len <= 0 {
		return Rect{X: l.Start.X, Y: l.Start.Y}
	}
	if l.Vertical {
		return Rect{X: l.Start.X, Y: l.Start.Y, Width: 1, Height: l.Len}
	}
	return Rect{X: l.Start.X, Y: l.Start.Y, Width: l.Len, Height: 1}
}

// Clip returns the part of the line inside r. ok is false when nothing
// remains.
func (l Line) Clip(r Rect) (Line, bool) {
	c := l.Rect().Intersect(r)
	if c.IsEmpty() {
		return Line{}, false
	}
	if l.Vertical {
		return VLine(c.X, c.Y, c.Height), true
	}
	return HLine(c.X, c.Y, c.Width), true
}
