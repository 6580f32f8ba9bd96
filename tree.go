package tui

import (
	"slices"

	"github.com/grindlemire/tuicore/internal/layout"
	"go.uber.org/zap"
)

// Add inserts an unattached node. The name must be non-empty and free of
// '/' and glob characters; the widget's LayoutSpec must validate.
func (c *Core) Add(name string, w Widget) (NodeID, error) {
	if err := validName(name); err != nil {
		return NodeID{}, err
	}
	if w == nil {
		return NodeID{}, newError(KindInvalid, "nil widget for %q", name)
	}
	spec := w.LayoutSpec()
	if err := spec.Validate(); err != nil {
		return NodeID{}, wrapError(KindLayout, err, "node %q", name)
	}

	n := &node{name: name, widget: w, spec: spec, tainted: true}
	n.solver = layout.NewNode(spec)
	n.solver.Measure = w.Measure
	n.solver.CanvasSize = w.Canvas
	id := c.arena.insert(n)
	c.logger.Debug("node added", zap.Stringer("id", id), zap.String("name", name))
	return id, nil
}

// SetRoot makes id the root of the displayed tree. The root must not have a
// parent.
func (c *Core) SetRoot(id NodeID) error {
	n, err := c.lookup(id)
	if err != nil {
		return err
	}
	if !n.parent.IsZero() {
		return newError(KindAlreadyAttached, "root %v has a parent", id)
	}
	c.root = id
	c.fresh = true
	c.taint(n)
	return nil
}

// Root returns the root node, or the zero id.
func (c *Core) Root() NodeID {
	return c.root
}

// SetChildren replaces the ordered child list of parent. Children dropped
// from the list are detached but stay alive. On error nothing changes.
func (c *Core) SetChildren(parent NodeID, children ...NodeID) error {
	p, err := c.lookup(parent)
	if err != nil {
		return err
	}
	nodes := make([]*node, len(children))
	seen := make(map[NodeID]bool, len(children))
	for i, id := range children {
		n, err := c.lookup(id)
		if err != nil {
			return err
		}
		switch {
		case seen[id]:
			return newError(KindInvalid, "duplicate child %v", id)
		case id == parent || c.isAncestor(id, parent):
			return newError(KindWouldCreateCycle, "%v is %v or one of its ancestors", id, parent)
		case id == c.root:
			return newError(KindInvalid, "root %v cannot be a child", id)
		case !n.parent.IsZero() && n.parent != parent:
			return newError(KindAlreadyAttached, "%v already has parent %v", id, n.parent)
		}
		seen[id] = true
		nodes[i] = n
	}

	for _, old := range p.children {
		if !seen[old] {
			if o, ok := c.arena.get(old); ok {
				c.unparent(o)
			}
		}
	}
	solvers := make([]*layout.Node, len(nodes))
	for i, n := range nodes {
		if n.parent != parent {
			n.parent = parent
			n.painted = false
		}
		solvers[i] = n.solver
	}
	p.children = slices.Clone(children)
	p.solver.SetChildren(solvers...)
	c.taint(p)
	return nil
}

// AppendChild attaches child as the last child of parent.
func (c *Core) AppendChild(parent, child NodeID) error {
	p, err := c.lookup(parent)
	if err != nil {
		return err
	}
	return c.SetChildren(parent, append(slices.Clone(p.children), child)...)
}

// Detach unlinks id from its parent. The subtree stays addressable and can
// be attached elsewhere. Detaching an unattached node is a no-op.
func (c *Core) Detach(id NodeID) error {
	n, err := c.lookup(id)
	if err != nil {
		return err
	}
	p, ok := c.arena.get(n.parent)
	if !ok {
		return nil
	}
	p.children = slices.DeleteFunc(p.children, func(x NodeID) bool { return x == id })
	p.solver.RemoveChild(n.solver)
	c.taint(p)
	c.unparent(n)
	return nil
}

// unparent clears n's parent link after it was dropped from the parent's
// child list. Focus inside the subtree is released.
func (c *Core) unparent(n *node) {
	n.parent = NodeID{}
	n.painted = false
	if c.focus == n.id || c.isAncestor(n.id, c.focus) {
		c.clearFocus()
	}
}

// RemoveSubtree unmounts id and its descendants, children before parents,
// then frees them. Their handles become stale.
func (c *Core) RemoveSubtree(id NodeID) error {
	n, err := c.lookup(id)
	if err != nil {
		return err
	}
	if err := c.Detach(id); err != nil {
		return err
	}

	var order []*node
	var collect func(*node)
	collect = func(n *node) {
		for _, cid := range n.children {
			if child, ok := c.arena.get(cid); ok {
				collect(child)
			}
		}
		order = append(order, n)
	}
	collect(n)

	for _, x := range order {
		if x.mounted {
			x.widget.OnUnmount(c.contextFor(x))
			x.mounted = false
		}
	}
	for _, x := range order {
		if c.focus == x.id {
			c.clearFocus()
		}
		c.arena.remove(x.id)
	}
	if c.root == id {
		c.root = NodeID{}
	}
	c.logger.Debug("subtree removed", zap.Stringer("id", id), zap.Int("nodes", len(order)))
	return nil
}

// Valid reports whether id refers to a live node.
func (c *Core) Valid(id NodeID) bool {
	_, ok := c.arena.get(id)
	return ok
}

// Len returns the number of live nodes.
func (c *Core) Len() int {
	return c.arena.len()
}

// Parent returns the parent of id, or the zero id.
func (c *Core) Parent(id NodeID) NodeID {
	if n, ok := c.arena.get(id); ok {
		return n.parent
	}
	return NodeID{}
}

// Children returns a copy of id's child list.
func (c *Core) Children(id NodeID) []NodeID {
	if n, ok := c.arena.get(id); ok {
		return slices.Clone(n.children)
	}
	return nil
}

// Name returns the name id was added with.
func (c *Core) Name(id NodeID) string {
	if n, ok := c.arena.get(id); ok {
		return n.name
	}
	return ""
}

// Widget returns the widget behind id.
func (c *Core) Widget(id NodeID) (Widget, bool) {
	if n, ok := c.arena.get(id); ok {
		return n.widget, true
	}
	return nil, false
}

// Path returns the names from the topmost ancestor of id down to id.
func (c *Core) Path(id NodeID) []string {
	var names []string
	for n, ok := c.arena.get(id); ok; n, ok = c.arena.get(n.parent) {
		names = append(names, n.name)
	}
	slices.Reverse(names)
	return names
}

// SetHidden hides or shows a node. Hidden nodes take no space, are not
// rendered and cannot hold focus.
func (c *Core) SetHidden(id NodeID, hidden bool) error {
	n, err := c.lookup(id)
	if err != nil {
		return err
	}
	if n.hidden == hidden {
		return nil
	}
	n.hidden = hidden
	n.solver.SetHidden(hidden || n.invalid)
	if p, ok := c.arena.get(n.parent); ok {
		c.taint(p)
	}
	c.taint(n)
	if hidden && (c.focus == id || c.isAncestor(id, c.focus)) {
		c.clearFocus()
	}
	return nil
}

// IsHidden reports whether id was hidden with SetHidden.
func (c *Core) IsHidden(id NodeID) bool {
	n, ok := c.arena.get(id)
	return ok && n.hidden
}

// Walk visits the subtree rooted at id in pre-order. Returning false from fn
// skips the node's children.
func (c *Core) Walk(id NodeID, fn func(id NodeID, depth int) bool) {
	var walk func(NodeID, int)
	walk = func(id NodeID, depth int) {
		n, ok := c.arena.get(id)
		if !ok || !fn(id, depth) {
			return
		}
		for _, child := range n.children {
			walk(child, depth+1)
		}
	}
	walk(id, 0)
}

// isAncestor reports whether a is a strict ancestor of b.
func (c *Core) isAncestor(a, b NodeID) bool {
	if a.IsZero() {
		return false
	}
	n, ok := c.arena.get(b)
	for ok {
		if n.parent == a {
			return true
		}
		n, ok = c.arena.get(n.parent)
	}
	return false
}

// attached reports whether n hangs off the root, and is not hidden along
// the way.
func (c *Core) attached(n *node) (attached, visible bool) {
	visible = true
	for {
		if n.hidden {
			visible = false
		}
		if n.id == c.root {
			return true, visible
		}
		p, ok := c.arena.get(n.parent)
		if !ok {
			return false, false
		}
		n = p
	}
}
