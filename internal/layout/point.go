package layout

// Point is a cell coordinate. Screen points are never negative, but points
// in a scrolled canvas or relative to a parent can be.
type Point struct {
	X, Y int
}

func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Clamp limits each coordinate to [0, limit]. A negative limit counts as
// zero.
func (p Point) Clamp(limit Point) Point {
	return Point{X: clamp(p.X, 0, max(0, limit.X)), Y: clamp(p.Y, 0, max(0, limit.Y))}
}
