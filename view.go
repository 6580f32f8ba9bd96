package tui

import "github.com/grindlemire/tuicore/internal/layout"

// View is the computed geometry of a node.
//
// Outer is the node's box in its parent's canvas space and may have
// negative coordinates. Content is Outer moved to the origin and inset by
// padding. TL is the scroll offset into the canvas, and Canvas the full
// scrollable size. After every operation
//
//	0 <= TL.X <= Canvas.Width  - Content.Width
//	0 <= TL.Y <= Canvas.Height - Content.Height
//
// View methods return modified copies; scrolling clamps rather than fails.
type View struct {
	Outer   Rect
	Content Rect
	TL      Point
	Canvas  Size
}

// IsEmpty reports whether the node occupies no cells.
func (v View) IsEmpty() bool {
	return v.Outer.IsEmpty()
}

// MaxScroll returns the largest valid TL.
func (v View) MaxScroll() Point {
	return Point{
		X: max(0, v.Canvas.Width-v.Content.Width),
		Y: max(0, v.Canvas.Height-v.Content.Height),
	}
}

// ScrollTo moves the window to (x, y), clamped into range.
func (v View) ScrollTo(x, y int) View {
	v.TL = Point{X: x, Y: y}.Clamp(v.MaxScroll())
	return v
}

// ScrollBy moves the window by (dx, dy), clamped into range.
func (v View) ScrollBy(dx, dy int) View {
	return v.ScrollTo(v.TL.X+dx, v.TL.Y+dy)
}

// PageUp scrolls up by one content height.
func (v View) PageUp() View {
	return v.ScrollBy(0, -v.Content.Height)
}

// PageDown scrolls down by one content height.
func (v View) PageDown() View {
	return v.ScrollBy(0, v.Content.Height)
}

func (v View) ScrollUp() View    { return v.ScrollBy(0, -1) }
func (v View) ScrollDown() View  { return v.ScrollBy(0, 1) }
func (v View) ScrollLeft() View  { return v.ScrollBy(-1, 0) }
func (v View) ScrollRight() View { return v.ScrollBy(1, 0) }

// ViewRect returns the visible window in canvas space.
func (v View) ViewRect() Rect {
	return Rect{X: v.TL.X, Y: v.TL.Y, Width: v.Content.Width, Height: v.Content.Height}
}

// ContentToOuter converts a canvas-space rectangle to node-local outer
// space.
func (v View) ContentToOuter(r Rect) Rect {
	return r.Translate(v.Content.X-v.TL.X, v.Content.Y-v.TL.Y)
}

// OuterToContent converts a node-local outer-space rectangle to canvas
// space.
func (v View) OuterToContent(r Rect) Rect {
	return r.Translate(v.TL.X-v.Content.X, v.TL.Y-v.Content.Y)
}

// VActive splits margin, a vertical track in outer space, into the parts
// before, at and after the visible window. ok is false when there is
// nothing to scroll vertically or the track is empty.
func (v View) VActive(margin Rect) (pre, active, post Rect, ok bool) {
	if v.Canvas.Height <= v.Content.Height {
		return Rect{}, Rect{}, Rect{}, false
	}
	track := Extent{Off: margin.Y, Len: margin.Height}
	p, a, q, err := track.Split(v.TL.Y, v.Content.Height, v.Canvas.Height)
	if err != nil {
		return Rect{}, Rect{}, Rect{}, false
	}
	col := func(e Extent) Rect { return Rect{X: margin.X, Y: e.Off, Width: margin.Width, Height: e.Len} }
	return col(p), col(a), col(q), true
}

// HActive is VActive for a horizontal track.
func (v View) HActive(margin Rect) (pre, active, post Rect, ok bool) {
	if v.Canvas.Width <= v.Content.Width {
		return Rect{}, Rect{}, Rect{}, false
	}
	track := Extent{Off: margin.X, Len: margin.Width}
	p, a, q, err := track.Split(v.TL.X, v.Content.Width, v.Canvas.Width)
	if err != nil {
		return Rect{}, Rect{}, Rect{}, false
	}
	row := func(e Extent) Rect { return Rect{X: e.Off, Y: margin.Y, Width: e.Len, Height: margin.Height} }
	return row(p), row(a), row(q), true
}

// viewFromLayout builds a View from solver output, keeping the previous
// scroll offset where it still fits.
func viewFromLayout(l layout.Layout, tl Point) View {
	if l.Rect.IsEmpty() {
		return View{Outer: l.Rect}
	}
	v := View{
		Outer:   l.Rect,
		Content: l.Content,
		Canvas:  l.Canvas.Max(l.Content.Size()),
	}
	return v.ScrollTo(tl.X, tl.Y)
}
