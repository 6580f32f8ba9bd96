package layout

// Rect is a signed rectangle in cell coordinates. X and Y are the top-left
// corner and may be negative (a child scrolled partly out of its parent).
// Width and Height of zero or less describe an empty rectangle.
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// RectAt creates a Rect from an origin and a size.
func RectAt(p Point, s Size) Rect {
	return Rect{X: p.X, Y: p.Y, Width: s.Width, Height: s.Height}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the dimensions of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Area returns the number of cells covered, zero for empty rectangles.
func (r Rect) Area() int {
	return r.Size().Area()
}

// Contains reports whether the cell (x, y) lies inside the rectangle.
// The left and top edges are inclusive; right and bottom are exclusive.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ContainsRect reports whether other lies entirely inside r. An empty
// rectangle is contained by everything.
func (r Rect) ContainsRect(other Rect) bool {
	switch {
	case other.IsEmpty():
		return true
	case r.IsEmpty():
		return false
	}
	return other.X >= r.X && other.Y >= r.Y &&
		other.Right() <= r.Right() && other.Bottom() <= r.Bottom()
}

// Inset shrinks the rectangle by the given edges. The result never has
// negative dimensions.
func (r Rect) Inset(e Edges) Rect {
	return Rect{
		X:      r.X + e.Left,
		Y:      r.Y + e.Top,
		Width:  max(0, r.Width-e.Horizontal()),
		Height: max(0, r.Height-e.Vertical()),
	}
}

// Outset grows the rectangle by the given edges.
func (r Rect) Outset(e Edges) Rect {
	return Rect{
		X:      r.X - e.Left,
		Y:      r.Y - e.Top,
		Width:  r.Width + e.Horizontal(),
		Height: r.Height + e.Vertical(),
	}
}

// Translate returns the rectangle moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Offset returns the rectangle moved by p.
func (r Rect) Offset(p Point) Rect {
	return r.Translate(p.X, p.Y)
}

// Intersect returns the overlap of two rectangles, or the zero Rect when
// they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	x := max(r.X, other.X)
	y := max(r.Y, other.Y)
	w := min(r.Right(), other.Right()) - x
	h := min(r.Bottom(), other.Bottom()) - y
	if w <= 0 || h <= 0 {
		return Rect{}
	}
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// Union returns the smallest rectangle covering both. Empty inputs are
// ignored.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	x := min(r.X, other.X)
	y := min(r.Y, other.Y)
	return Rect{
		X:      x,
		Y:      y,
		Width:  max(r.Right(), other.Right()) - x,
		Height: max(r.Bottom(), other.Bottom()) - y,
	}
}

// Intersects reports whether the rectangles share at least one cell.
func (r Rect) Intersects(other Rect) bool {
	return !r.Intersect(other).IsEmpty()
}

// Clamp returns the cell inside r closest to p. For an empty rectangle the
// origin is returned.
func (r Rect) Clamp(p Point) Point {
	if r.IsEmpty() {
		return r.Origin()
	}
	return Point{
		X: clamp(p.X, r.X, r.Right()-1),
		Y: clamp(p.Y, r.Y, r.Bottom()-1),
	}
}

// Center2 returns the center of the rectangle with both coordinates
// doubled, so that centers of odd-sized rectangles stay integral.
func (r Rect) Center2() Point {
	return Point{X: 2*r.X + r.Width, Y: 2*r.Y + r.Height}
}

// Unsigned reports whether the rectangle lies entirely in the non-negative
// quadrant with non-negative dimensions.
func (r Rect) Unsigned() bool {
	return r.X >= 0 && r.Y >= 0 && r.Width >= 0 && r.Height >= 0
}

// Positive clips r to the non-negative quadrant.
func (r Rect) Positive() Rect {
	return r.Intersect(Rect{Width: maxInt, Height: maxInt})
}

// Rows calls fn for every row of the rectangle, top to bottom, with the
// horizontal line segment covering that row.
func (r Rect) Rows(fn func(Line)) {
	if r.IsEmpty() {
		return
	}
	for y := r.Y; y < r.Bottom(); y++ {
		fn(HLine(r.X, y, r.Width))
	}
}

// Sub returns the rectangle translated so that origin becomes (0, 0).
func (r Rect) Sub(origin Point) Rect {
	return r.Translate(-origin.X, -origin.Y)
}

const maxInt = int(^uint(0) >> 1)

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return max(lo, min(v, hi))
}
