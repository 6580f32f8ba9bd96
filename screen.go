package tui

// placement is where a node landed on screen during a geometry walk.
type placement struct {
	screen Rect // outer box in screen coordinates
	clip   Rect // screen ∩ every ancestor's visible content
}

// screenBounds is the full screen.
func (c *Core) screenBounds() Rect {
	return c.size.Rect()
}

// rootPlacement returns the placement of the root node.
func (c *Core) rootPlacement(n *node) placement {
	return placement{screen: n.view.Outer, clip: n.view.Outer.Intersect(c.screenBounds())}
}

// childPlacement derives a child's placement from its parent's.
func childPlacement(parent *node, pp placement, child *node) placement {
	pv := parent.view
	origin := pp.screen.Origin().Add(pv.Content.Origin()).Sub(pv.TL)
	screen := child.view.Outer.Offset(origin)
	visible := pv.Content.Offset(pp.screen.Origin())
	return placement{
		screen: screen,
		clip:   screen.Intersect(visible).Intersect(pp.clip),
	}
}

// walkVisible visits attached, non-hidden nodes with a non-empty clip in
// pre-order, starting at from. fn returning false skips the children.
func (c *Core) walkVisible(from NodeID, fn func(n *node, pl placement) bool) {
	start, ok := c.arena.get(from)
	if !ok {
		return
	}
	if _, visible := c.attached(start); !visible {
		return
	}
	pl, ok := c.placementOf(start)
	if !ok {
		return
	}
	var walk func(*node, placement)
	walk = func(n *node, pl placement) {
		if n.hidden || pl.clip.IsEmpty() || !fn(n, pl) {
			return
		}
		for _, cid := range n.children {
			if child, ok := c.arena.get(cid); ok {
				walk(child, childPlacement(n, pl, child))
			}
		}
	}
	walk(start, pl)
}

// placementOf computes the placement of an attached node by descending
// from the root along its ancestor chain.
func (c *Core) placementOf(n *node) (placement, bool) {
	var chain []*node
	for x, ok := n, true; ok; x, ok = c.arena.get(x.parent) {
		chain = append(chain, x)
	}
	top := chain[len(chain)-1]
	if top.id != c.root {
		return placement{}, false
	}
	pl := c.rootPlacement(top)
	for i := len(chain) - 2; i >= 0; i-- {
		pl = childPlacement(chain[i+1], pl, chain[i])
	}
	return pl, true
}

// ScreenRect returns the outer box of id in screen coordinates and the part
// of it that is visible. ok is false for nodes not attached to the root.
func (c *Core) ScreenRect(id NodeID) (screen, clip Rect, ok bool) {
	n, found := c.arena.get(id)
	if !found {
		return Rect{}, Rect{}, false
	}
	if _, visible := c.attached(n); !visible {
		return Rect{}, Rect{}, false
	}
	pl, ok := c.placementOf(n)
	return pl.screen, pl.clip, ok
}

// LocateNode returns the deepest visible node under root whose clipped
// screen box contains p. Later siblings are on top of earlier ones.
func (c *Core) LocateNode(root NodeID, p Point) (NodeID, bool) {
	var hit NodeID
	c.walkVisible(root, func(n *node, pl placement) bool {
		if !pl.clip.Contains(p.X, p.Y) {
			// Children are clipped to this node, so none can contain p.
			return false
		}
		hit = n.id
		return true
	})
	return hit, !hit.IsZero()
}
