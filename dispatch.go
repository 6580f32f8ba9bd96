package tui

import "go.uber.org/zap"

// Dispatch delivers an input event to the tree.
//
// Key events go to the global bindings first, then to the focused node (or
// the root) and bubble up through its ancestors until a widget returns
// Handled or Consumed. Unclaimed keys fall back to the built-in bindings:
// Tab and Backtab move focus, arrows and paging keys scroll the nearest
// scrollable node and arrows move focus directionally when nothing
// scrolls.
//
// Mouse events go to the node under the pointer and bubble the same way.
// A left press focuses the nearest focusable node under the pointer, and
// wheel events scroll the nearest scrollable one.
func (c *Core) Dispatch(ev Event) Outcome {
	switch ev := ev.(type) {
	case KeyEvent:
		return c.dispatchKey(ev)
	case MouseEvent:
		return c.dispatchMouse(ev)
	}
	return Ignored
}

func (c *Core) dispatchKey(ev KeyEvent) Outcome {
	fired, stopped := c.keys.dispatch(ev)
	if stopped {
		return Consumed
	}
	target := c.root
	if id, ok := c.Focused(); ok {
		target = id
	}
	if out := c.bubble(target, ev); out != Ignored {
		return out
	}
	if out := c.defaultKey(target, ev); out != Ignored {
		return out
	}
	if fired {
		return Consumed
	}
	return Ignored
}

func (c *Core) dispatchMouse(ev MouseEvent) Outcome {
	hit, ok := c.LocateNode(c.root, ev.Point())
	if !ok {
		return Ignored
	}
	if ev.Button == MouseLeft && ev.Action == MousePress {
		c.focusUnder(hit)
	}
	if out := c.bubble(hit, ev); out != Ignored {
		return out
	}
	var dx, dy int
	switch ev.Button {
	case MouseWheelUp:
		dy = -1
	case MouseWheelDown:
		dy = 1
	case MouseWheelLeft:
		dx = -1
	case MouseWheelRight:
		dx = 1
	default:
		return Ignored
	}
	if c.scrollNearest(hit, func(v View) View { return v.ScrollBy(dx, dy) }) {
		return Handled
	}
	return Ignored
}

// bubble offers ev to id and then to each ancestor.
func (c *Core) bubble(id NodeID, ev Event) Outcome {
	for n, ok := c.arena.get(id); ok; n, ok = c.arena.get(n.parent) {
		switch out := n.widget.HandleEvent(ev, c.contextFor(n)); out {
		case Handled:
			c.invalidate(n)
			return out
		case Consumed:
			return out
		}
	}
	return Ignored
}

func (c *Core) defaultKey(target NodeID, ev KeyEvent) Outcome {
	gen := c.focusGen
	moved := func() Outcome {
		if c.focusGen != gen {
			return Handled
		}
		return Ignored
	}
	scroll := func(fn func(View) View) bool { return c.scrollNearest(target, fn) }

	switch ev.Key {
	case KeyTab:
		c.FocusNext()
		return moved()
	case KeyBacktab:
		c.FocusPrev()
		return moved()
	case KeyPageUp:
		if scroll(View.PageUp) {
			return Handled
		}
	case KeyPageDown:
		if scroll(View.PageDown) {
			return Handled
		}
	case KeyHome:
		if scroll(func(v View) View { return v.ScrollTo(v.TL.X, 0) }) {
			return Handled
		}
	case KeyEnd:
		if scroll(func(v View) View { return v.ScrollTo(v.TL.X, v.MaxScroll().Y) }) {
			return Handled
		}
	case KeyUp:
		if scroll(View.ScrollUp) {
			return Handled
		}
		c.FocusUp()
		return moved()
	case KeyDown:
		if scroll(View.ScrollDown) {
			return Handled
		}
		c.FocusDown()
		return moved()
	case KeyLeft:
		if scroll(View.ScrollLeft) {
			return Handled
		}
		c.FocusLeft()
		return moved()
	case KeyRight:
		if scroll(View.ScrollRight) {
			return Handled
		}
		c.FocusRight()
		return moved()
	}
	return Ignored
}

// scrollNearest applies fn to the closest node at or above id that
// scrolls and reports whether any offset changed. Nodes that cannot move
// in the requested direction pass it on to their ancestors.
func (c *Core) scrollNearest(id NodeID, fn func(View) View) bool {
	for n, ok := c.arena.get(id); ok; n, ok = c.arena.get(n.parent) {
		if n.spec.Scroll == ScrollNone {
			continue
		}
		if c.scroll(n.id, fn) {
			return true
		}
	}
	return false
}

// focusUnder focuses hit or its nearest ancestor that accepts focus.
func (c *Core) focusUnder(hit NodeID) {
	for n, ok := c.arena.get(hit); ok; n, ok = c.arena.get(n.parent) {
		if !n.widget.AcceptFocus(n.info()) {
			continue
		}
		if err := c.SetFocus(n.id); err != nil {
			c.logger.Debug("click focus", zap.Error(err))
		}
		return
	}
}
