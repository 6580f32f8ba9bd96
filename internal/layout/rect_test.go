package layout

import "testing"

func TestRect_RightBottom(t *testing.T) {
	type tc struct {
		rect   Rect
		right  int
		bottom int
	}

	tests := map[string]tc{
		"standard rect":     {rect: NewRect(5, 10, 20, 15), right: 25, bottom: 25},
		"negative position": {rect: NewRect(-5, -5, 10, 10), right: 5, bottom: 5},
		"zero size":         {rect: NewRect(5, 5, 0, 0), right: 5, bottom: 5},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.Right(); got != tt.right {
				t.Errorf("Right() = %d, want %d", got, tt.right)
			}
			if got := tt.rect.Bottom(); got != tt.bottom {
				t.Errorf("Bottom() = %d, want %d", got, tt.bottom)
			}
		})
	}
}

func TestRect_Contains(t *testing.T) {
	type tc struct {
		x, y int
		want bool
	}

	r := NewRect(2, 3, 4, 2)
	tests := map[string]tc{
		"top left corner":   {x: 2, y: 3, want: true},
		"last cell":         {x: 5, y: 4, want: true},
		"right edge":        {x: 6, y: 3, want: false},
		"bottom edge":       {x: 2, y: 5, want: false},
		"left of rect":      {x: 1, y: 3, want: false},
		"above rect":        {x: 3, y: 2, want: false},
		"inside the middle": {x: 4, y: 4, want: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRect_Intersect(t *testing.T) {
	type tc struct {
		a, b Rect
		want Rect
	}

	tests := map[string]tc{
		"overlapping":       {a: NewRect(0, 0, 10, 10), b: NewRect(5, 5, 10, 10), want: NewRect(5, 5, 5, 5)},
		"contained":         {a: NewRect(0, 0, 10, 10), b: NewRect(2, 2, 3, 3), want: NewRect(2, 2, 3, 3)},
		"touching edges":    {a: NewRect(0, 0, 5, 5), b: NewRect(5, 0, 5, 5), want: Rect{}},
		"disjoint":          {a: NewRect(0, 0, 2, 2), b: NewRect(8, 8, 2, 2), want: Rect{}},
		"negative origin":   {a: NewRect(-3, -3, 5, 5), b: NewRect(0, 0, 10, 10), want: NewRect(0, 0, 2, 2)},
		"empty input stays": {a: NewRect(0, 0, 0, 5), b: NewRect(0, 0, 5, 5), want: Rect{}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.a.Intersect(tt.b); got != tt.want {
				t.Errorf("Intersect() = %+v, want %+v", got, tt.want)
			}
			if got := tt.b.Intersect(tt.a); got != tt.want {
				t.Errorf("Intersect() reversed = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRect_Union(t *testing.T) {
	type tc struct {
		a, b Rect
		want Rect
	}

	tests := map[string]tc{
		"disjoint":     {a: NewRect(0, 0, 2, 2), b: NewRect(5, 5, 2, 2), want: NewRect(0, 0, 7, 7)},
		"empty left":   {a: Rect{}, b: NewRect(1, 1, 2, 2), want: NewRect(1, 1, 2, 2)},
		"empty right":  {a: NewRect(1, 1, 2, 2), b: NewRect(9, 9, 0, 0), want: NewRect(1, 1, 2, 2)},
		"negative one": {a: NewRect(-2, 0, 2, 1), b: NewRect(0, 0, 2, 1), want: NewRect(-2, 0, 4, 1)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.a.Union(tt.b); got != tt.want {
				t.Errorf("Union() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRect_InsetOutset(t *testing.T) {
	type tc struct {
		rect  Rect
		edges Edges
		inset Rect
	}

	tests := map[string]tc{
		"uniform":     {rect: NewRect(0, 0, 10, 10), edges: EdgeAll(1), inset: NewRect(1, 1, 8, 8)},
		"asymmetric":  {rect: NewRect(0, 0, 10, 10), edges: EdgeTRBL(1, 2, 3, 4), inset: NewRect(4, 1, 4, 6)},
		"overflowing": {rect: NewRect(0, 0, 3, 3), edges: EdgeAll(2), inset: NewRect(2, 2, 0, 0)},
		"symmetric":   {rect: NewRect(5, 5, 10, 4), edges: EdgeSymmetric(1, 2), inset: NewRect(7, 6, 6, 2)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := tt.rect.Inset(tt.edges)
			if got != tt.inset {
				t.Errorf("Inset() = %+v, want %+v", got, tt.inset)
			}
			if got.Width > 0 && got.Height > 0 {
				if back := got.Outset(tt.edges); back != tt.rect {
					t.Errorf("Outset(Inset()) = %+v, want %+v", back, tt.rect)
				}
			}
		})
	}
}

func TestRect_ContainsRect(t *testing.T) {
	outer := NewRect(0, 0, 10, 10)
	if !outer.ContainsRect(NewRect(2, 2, 8, 8)) {
		t.Error("ContainsRect() = false for inner rect flush with the edge")
	}
	if outer.ContainsRect(NewRect(2, 2, 9, 8)) {
		t.Error("ContainsRect() = true for rect crossing the right edge")
	}
	if !(Rect{}).ContainsRect(Rect{}) {
		t.Error("ContainsRect() = false for empty rect")
	}
}

func TestRect_Clamp(t *testing.T) {
	r := NewRect(2, 2, 3, 3)
	if got := r.Clamp(Point{X: -5, Y: 10}); got != (Point{X: 2, Y: 4}) {
		t.Errorf("Clamp() = %+v, want {2 4}", got)
	}
	if got := r.Clamp(Point{X: 3, Y: 3}); got != (Point{X: 3, Y: 3}) {
		t.Errorf("Clamp() = %+v, want {3 3}", got)
	}
}

func TestRect_Center2(t *testing.T) {
	if got := NewRect(1, 1, 3, 2).Center2(); got != (Point{X: 5, Y: 4}) {
		t.Errorf("Center2() = %+v, want {5 4}", got)
	}
}

func TestRect_Rows(t *testing.T) {
	var lines []Line
	NewRect(1, 2, 3, 2).Rows(func(l Line) { lines = append(lines, l) })
	if len(lines) != 2 {
		t.Fatalf("Rows() produced %d lines, want 2", len(lines))
	}
	if lines[1] != HLine(1, 3, 3) {
		t.Errorf("Rows()[1] = %+v, want %+v", lines[1], HLine(1, 3, 3))
	}
}

func TestPoint(t *testing.T) {
	p := Point{X: 3, Y: 4}
	if got := p.Add(Point{X: 1, Y: -1}); got != (Point{X: 4, Y: 3}) {
		t.Errorf("Add() = %+v", got)
	}
	if got := p.Sub(Point{X: 3, Y: 4}); got != (Point{}) {
		t.Errorf("Sub() = %+v", got)
	}
	if !NewRect(0, 0, 5, 5).Contains(p.X, p.Y) {
		t.Error("Contains() = false, want true")
	}
	if got := (Point{X: -1, Y: 9}).Clamp(Point{X: 4, Y: 4}); got != (Point{X: 0, Y: 4}) {
		t.Errorf("Clamp() = %+v, want {0 4}", got)
	}
}
