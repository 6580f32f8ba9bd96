package layout

// Calculate lays out the tree rooted at root inside a screen of the given
// size. The root is placed at the origin, inset by its own margin. Only
// dirty nodes and nodes whose allocated rectangle changed are recomputed.
func Calculate(root *Node, available Size) {
	if root == nil {
		return
	}
	style := root.Style
	width := style.Width.Resolve(available.Width, available.Width)
	height := style.Height.Resolve(available.Height, available.Height)
	rect := Rect{Width: style.clampWidth(width), Height: style.clampHeight(height)}
	calculateNode(root, rect.Inset(style.Margin))
}

// calculateNode computes the layout of n given the rectangle its parent
// allocated, in the parent's canvas space.
func calculateNode(n *Node, rect Rect) {
	// Dirty propagates up, so a clean node with an unchanged allocation has
	// a clean subtree.
	if n.laidOut && !n.dirty && n.Layout.Rect == rect {
		return
	}
	n.laidOut = true
	n.dirty = false

	rect.Width = max(0, rect.Width)
	rect.Height = max(0, rect.Height)
	if rect.IsEmpty() {
		n.Layout = Layout{Rect: rect}
		for _, c := range n.Children {
			clearNode(c)
		}
		return
	}

	content := rect.Size().Rect().Inset(n.Style.Padding)
	bounds := layoutChildren(n, content.Size())

	canvas := content.Size()
	if n.CanvasSize != nil {
		canvas = canvas.Max(n.CanvasSize(content.Size()))
	}
	if n.Style.Scroll.Horizontal() {
		canvas.Width = max(canvas.Width, bounds.Right())
	}
	if n.Style.Scroll.Vertical() {
		canvas.Height = max(canvas.Height, bounds.Bottom())
	}

	n.Layout = Layout{Rect: rect, Content: content, Canvas: canvas}
}

// clearNode gives a node and its subtree an empty layout.
func clearNode(n *Node) {
	n.laidOut = true
	n.dirty = false
	n.Layout = Layout{}
	for _, c := range n.Children {
		clearNode(c)
	}
}

// layoutChildren places the visible children of n inside a box of the given
// size and returns the union of their margin boxes.
func layoutChildren(n *Node, box Size) Rect {
	for _, c := range n.Children {
		if c.hidden {
			clearNode(c)
		}
	}
	children := n.visibleChildren()
	if len(children) == 0 {
		return Rect{}
	}
	switch n.Style.Direction {
	case Grid:
		return layoutGrid(n, children, box)
	case Stack:
		return layoutStack(n, children, box)
	default:
		return layoutFlex(n, children, box)
	}
}

// place positions child inside slot, honoring its margin, fixed sizes and
// the given per-axis alignment.
func place(child *Node, slot Rect, alignX, alignY Align) Rect {
	cs := child.Style
	inner := slot.Inset(cs.Margin)

	w, wok := resolveIn(cs.Width, inner.Width, alignX == AlignStretch)
	h, hok := resolveIn(cs.Height, inner.Height, alignY == AlignStretch)
	if !wok || !hok {
		c := Loose(inner.Size())
		if wok {
			c.Width = Constraint{Mode: Exact, Value: w}
		}
		if hok {
			c.Height = Constraint{Mode: Exact, Value: h}
		}
		nat := natural(child, c)
		if !wok {
			w = nat.Width
		}
		if !hok {
			h = nat.Height
		}
	}
	w = cs.clampWidth(w)
	h = cs.clampHeight(h)

	return Rect{
		X:      inner.X + alignOffset(alignX, inner.Width, w),
		Y:      inner.Y + alignOffset(alignY, inner.Height, h),
		Width:  w,
		Height: h,
	}
}

// resolveIn resolves v inside an available span. ok is false when the
// value depends on the child's natural size.
func resolveIn(v Value, available int, stretch bool) (int, bool) {
	switch v.Unit {
	case UnitFixed, UnitPercent:
		return v.Resolve(available, 0), true
	case UnitFlex:
		return max(0, available), true
	case UnitAuto:
		if stretch {
			return max(0, available), true
		}
	}
	return 0, false
}

// alignOffset returns where an item of the given size starts inside a span.
func alignOffset(align Align, span, size int) int {
	free := span - size
	if free <= 0 {
		return 0
	}
	switch align {
	case AlignEnd:
		return free
	case AlignCenter:
		return free / 2
	}
	return 0
}

func marginBox(child *Node, r Rect) Rect {
	return r.Outset(child.Style.Margin)
}
