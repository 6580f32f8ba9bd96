package tui

import "go.uber.org/zap"

// View returns the geometry of id from the last layout pass.
func (c *Core) View(id NodeID) (View, bool) {
	n, ok := c.arena.get(id)
	if !ok {
		return View{}, false
	}
	return n.view, true
}

// ScrollTo moves the scroll window of id. Unknown ids are ignored.
func (c *Core) ScrollTo(id NodeID, x, y int) {
	c.scroll(id, func(v View) View { return v.ScrollTo(x, y) })
}

// ScrollBy moves the scroll window of id by (dx, dy).
func (c *Core) ScrollBy(id NodeID, dx, dy int) {
	c.scroll(id, func(v View) View { return v.ScrollBy(dx, dy) })
}

func (c *Core) PageUp(id NodeID)      { c.scroll(id, View.PageUp) }
func (c *Core) PageDown(id NodeID)    { c.scroll(id, View.PageDown) }
func (c *Core) ScrollUp(id NodeID)    { c.scroll(id, View.ScrollUp) }
func (c *Core) ScrollDown(id NodeID)  { c.scroll(id, View.ScrollDown) }
func (c *Core) ScrollLeft(id NodeID)  { c.scroll(id, View.ScrollLeft) }
func (c *Core) ScrollRight(id NodeID) { c.scroll(id, View.ScrollRight) }

// scroll applies fn to the view of id and taints the node when the offset
// moved. Returns whether it did.
func (c *Core) scroll(id NodeID, fn func(View) View) bool {
	n, ok := c.arena.get(id)
	if !ok {
		c.logger.Debug("scroll on unknown node", zap.Stringer("id", id))
		return false
	}
	next := fn(n.view)
	if next.TL == n.view.TL {
		return false
	}
	n.view = next
	c.taint(n)
	return true
}

// ScrollIntoView scrolls the ancestors of id by the least amount that makes
// its outer box visible, nearest ancestor first.
func (c *Core) ScrollIntoView(id NodeID) {
	n, ok := c.arena.get(id)
	if !ok {
		return
	}
	r := n.view.Outer
	for p, ok := c.arena.get(n.parent); ok; p, ok = c.arena.get(p.parent) {
		window := p.view.ViewRect()
		tl := p.view.TL
		switch {
		case r.Height > window.Height || r.Y < window.Y:
			tl.Y = r.Y
		case r.Bottom() > window.Bottom():
			tl.Y = r.Bottom() - window.Height
		}
		switch {
		case r.Width > window.Width || r.X < window.X:
			tl.X = r.X
		case r.Right() > window.Right():
			tl.X = r.Right() - window.Width
		}
		c.ScrollTo(p.id, tl.X, tl.Y)
		// Move into the grandparent's canvas space.
		r = p.view.ContentToOuter(r).Offset(p.view.Outer.Origin())
	}
}
