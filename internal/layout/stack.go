package layout

// layoutStack gives every child the whole box. Children smaller than the box
// are positioned horizontally by Justify and vertically by Align; later
// children are drawn over earlier ones.
func layoutStack(n *Node, children []*Node, box Size) Rect {
	s := n.Style
	alignX := s.Align
	if alignX != AlignStretch {
		alignX = justifyAsAlign(s.Justify)
	}
	var bounds Rect
	for _, child := range children {
		slot := box.Rect()
		r := place(child, slot, alignX, s.Align)
		calculateNode(child, r)
		bounds = bounds.Union(marginBox(child, r))
	}
	return bounds
}

func justifyAsAlign(j Justify) Align {
	switch j {
	case JustifyEnd:
		return AlignEnd
	case JustifyCenter, JustifySpaceAround, JustifySpaceEvenly:
		return AlignCenter
	}
	return AlignStart
}
