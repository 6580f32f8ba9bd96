package layout

// Layout holds the computed geometry of a node after Calculate.
type Layout struct {
	// Rect is the outer box in the parent's canvas space, after the parent
	// applied this node's margin.
	Rect Rect

	// Content is Rect moved to the origin and inset by padding. Children
	// are drawn into this box, offset by the node's scroll position.
	Content Rect

	// Canvas is the full size of the scrollable area children are placed
	// in. It is never smaller than Content.
	Canvas Size
}

// Node is an element of the layout tree.
type Node struct {
	Style    Style
	Children []*Node

	// Measure reports the natural content size of a leaf, or of any node
	// whose width or height is Measured.
	Measure MeasureFunc

	// CanvasSize optionally enlarges the canvas beyond the content box.
	CanvasSize CanvasFunc

	// Computed (set by Calculate)
	Layout Layout

	hidden  bool
	dirty   bool
	laidOut bool
	parent  *Node
}

// NewNode creates a new node with the given style.
func NewNode(style Style) *Node {
	return &Node{
		Style: style,
		dirty: true,
	}
}

// Parent returns the node this one is attached to, or nil.
func (n *Node) Parent() *Node {
	return n.parent
}

// AddChild appends children and marks this node dirty. A child attached
// elsewhere is moved.
func (n *Node) AddChild(children ...*Node) {
	for _, child := range children {
		child.unlink()
		child.parent = n
		n.Children = append(n.Children, child)
	}
	n.MarkDirty()
}

// SetChildren replaces the child list. Children not in the new list are
// unlinked.
func (n *Node) SetChildren(children ...*Node) {
	for _, old := range n.Children {
		old.parent = nil
	}
	n.Children = n.Children[:0]
	for _, child := range children {
		if child.parent != nil && child.parent != n {
			child.unlink()
		}
		child.parent = n
		n.Children = append(n.Children, child)
	}
	n.MarkDirty()
}

// RemoveChild removes a child by pointer, keeping the order of the rest.
// Returns true if the child was found and removed.
func (n *Node) RemoveChild(child *Node) bool {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			child.parent = nil
			n.MarkDirty()
			return true
		}
	}
	return false
}

func (n *Node) unlink() {
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
}

// SetStyle updates the style and marks the node dirty.
func (n *Node) SetStyle(style Style) {
	n.Style = style
	n.MarkDirty()
}

// SetHidden excludes the node from its parent's flow. Hidden nodes are
// laid out with an empty rectangle.
func (n *Node) SetHidden(hidden bool) {
	if n.hidden == hidden {
		return
	}
	n.hidden = hidden
	n.MarkDirty()
	if n.parent != nil {
		n.parent.MarkDirty()
	}
}

// Hidden reports whether the node is excluded from layout.
func (n *Node) Hidden() bool {
	return n.hidden
}

// MarkDirty marks this node and all ancestors as needing recalculation.
func (n *Node) MarkDirty() {
	for node := n; node != nil && !node.dirty; node = node.parent {
		node.dirty = true
	}
}

// IsDirty returns whether this node needs recalculation.
func (n *Node) IsDirty() bool {
	return n.dirty
}

func (n *Node) visibleChildren() []*Node {
	out := make([]*Node, 0, len(n.Children))
	for _, c := range n.Children {
		if !c.hidden {
			out = append(out, c)
		}
	}
	return out
}
