package tui

import "go.uber.org/zap"

// FocusCandidate is a focusable node considered by a directional move.
type FocusCandidate struct {
	ID    NodeID
	Order int  // position in the pre-order walk
	Clip  Rect // visible screen box
}

// FocusTieBreak reports whether a should win over b when both are at the
// same distance from the current focus.
type FocusTieBreak func(a, b FocusCandidate) bool

// PreOrderTieBreak prefers the candidate that comes first in pre-order.
func PreOrderTieBreak(a, b FocusCandidate) bool {
	return a.Order < b.Order
}

type focusDir uint8

const (
	dirLeft focusDir = iota
	dirRight
	dirUp
	dirDown
)

// focusWalk lists the focusable nodes in pre-order, and the position of the
// current focus in the walk over all visible nodes (-1 when not visible).
func (c *Core) focusWalk() (cands []FocusCandidate, current int) {
	current = -1
	order := 0
	c.walkVisible(c.root, func(n *node, pl placement) bool {
		if n.id == c.focus {
			current = order
		}
		if n.widget.AcceptFocus(n.info()) {
			cands = append(cands, FocusCandidate{ID: n.id, Order: order, Clip: pl.clip})
		}
		order++
		return true
	})
	return cands, current
}

// FocusNext moves focus to the next focusable node in pre-order, wrapping
// around. Without a current focus the first focusable node is chosen.
func (c *Core) FocusNext() {
	cands, cur := c.focusWalk()
	if len(cands) == 0 {
		return
	}
	target := cands[0]
	if cur >= 0 {
		for _, cand := range cands {
			if cand.Order > cur {
				target = cand
				break
			}
		}
	}
	c.moveFocus(target.ID)
}

// FocusPrev moves focus to the previous focusable node in pre-order,
// wrapping around. Without a current focus the last one is chosen.
func (c *Core) FocusPrev() {
	cands, cur := c.focusWalk()
	if len(cands) == 0 {
		return
	}
	target := cands[len(cands)-1]
	if cur >= 0 {
		for i := len(cands) - 1; i >= 0; i-- {
			if cands[i].Order < cur {
				target = cands[i]
				break
			}
		}
	}
	c.moveFocus(target.ID)
}

func (c *Core) FocusLeft()  { c.focusDirection(dirLeft) }
func (c *Core) FocusRight() { c.focusDirection(dirRight) }
func (c *Core) FocusUp()    { c.focusDirection(dirUp) }
func (c *Core) FocusDown()  { c.focusDirection(dirDown) }

// focusDirection picks the focusable node nearest to the current one whose
// center lies strictly on the requested side. Centers use doubled
// coordinates so odd sizes stay integral.
func (c *Core) focusDirection(dir focusDir) {
	cands, cur := c.focusWalk()
	var from *FocusCandidate
	for i := range cands {
		if cands[i].Order == cur {
			from = &cands[i]
		}
	}
	if from == nil {
		c.FocusNext()
		return
	}

	origin := from.Clip.Center2()
	var best *FocusCandidate
	bestDist := 0
	for i := range cands {
		cand := &cands[i]
		if cand.ID == from.ID {
			continue
		}
		p := cand.Clip.Center2()
		var inside bool
		switch dir {
		case dirLeft:
			inside = p.X < origin.X
		case dirRight:
			inside = p.X > origin.X
		case dirUp:
			inside = p.Y < origin.Y
		case dirDown:
			inside = p.Y > origin.Y
		}
		if !inside {
			continue
		}
		dx, dy := p.X-origin.X, p.Y-origin.Y
		dist := dx*dx + dy*dy
		if best == nil || dist < bestDist || (dist == bestDist && c.tieBreak(*cand, *best)) {
			best, bestDist = cand, dist
		}
	}
	if best != nil {
		c.moveFocus(best.ID)
	}
}

// SetFocus focuses id. The node must be attached, visible and accept focus.
func (c *Core) SetFocus(id NodeID) error {
	n, err := c.lookup(id)
	if err != nil {
		return err
	}
	attached, visible := c.attached(n)
	switch {
	case !attached:
		return newError(KindFocus, "%v is not attached to the root", id)
	case !visible:
		return newError(KindFocus, "%v is hidden", id)
	case !n.widget.AcceptFocus(n.info()):
		return newError(KindFocus, "%v does not accept focus", id)
	}
	c.moveFocus(id)
	return nil
}

// ClearFocus leaves no node focused.
func (c *Core) ClearFocus() {
	c.clearFocus()
}

// Focused returns the focused node.
func (c *Core) Focused() (NodeID, bool) {
	if _, ok := c.arena.get(c.focus); !ok {
		return NodeID{}, false
	}
	return c.focus, true
}

// IsFocused reports whether id holds focus.
func (c *Core) IsFocused(id NodeID) bool {
	n, ok := c.arena.get(id)
	return ok && n.focusGen == c.focusGen
}

// IsOnFocusPath reports whether id is the focused node or one of its
// ancestors.
func (c *Core) IsOnFocusPath(id NodeID) bool {
	if c.focus.IsZero() {
		return false
	}
	return id == c.focus || c.isAncestor(id, c.focus)
}

// FocusGen returns the focus generation. It changes on every focus move.
func (c *Core) FocusGen() uint64 {
	return c.focusGen
}

func (c *Core) moveFocus(id NodeID) {
	if id == c.focus {
		return
	}
	n, ok := c.arena.get(id)
	if !ok {
		return
	}
	c.taintPath(c.focus)
	c.focusGen++
	n.focusGen = c.focusGen
	c.focus = id
	c.taintPath(id)
	c.logger.Debug("focus moved", zap.Stringer("to", id), zap.Uint64("gen", c.focusGen))
}

func (c *Core) clearFocus() {
	if c.focus.IsZero() {
		return
	}
	c.taintPath(c.focus)
	c.focusGen++
	c.focus = NodeID{}
}

// taintPath taints id and its ancestors.
func (c *Core) taintPath(id NodeID) {
	for n, ok := c.arena.get(id); ok; n, ok = c.arena.get(n.parent) {
		c.taint(n)
	}
}
