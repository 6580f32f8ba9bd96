package layout

// natural returns the outer size n would like under c: content plus
// padding, without margin, with fixed sizes and min/max applied.
func natural(n *Node, c Constraints) Size {
	s := n.Style
	fixedW, wok := fixedAxis(s.Width, c.Width)
	fixedH, hok := fixedAxis(s.Height, c.Height)
	if c.Width.Mode == Exact {
		fixedW, wok = c.Width.Value, true
	}
	if c.Height.Mode == Exact {
		fixedH, hok = c.Height.Value, true
	}

	var size Size
	if wok && hok {
		size = Size{Width: fixedW, Height: fixedH}
	} else {
		inner := c
		if wok {
			inner.Width = Constraint{Mode: Exact, Value: fixedW}
		}
		if hok {
			inner.Height = Constraint{Mode: Exact, Value: fixedH}
		}
		inner = inner.Shrink(s.Padding)

		content := contentSize(n, inner)
		size = Size{
			Width:  content.Width + s.Padding.Horizontal(),
			Height: content.Height + s.Padding.Vertical(),
		}
		if wok {
			size.Width = fixedW
		}
		if hok {
			size.Height = fixedH
		}
	}
	size.Width = s.clampWidth(size.Width)
	size.Height = s.clampHeight(size.Height)
	return c.Apply(size)
}

// fixedAxis resolves sizes that do not depend on content.
func fixedAxis(v Value, c Constraint) (int, bool) {
	switch v.Unit {
	case UnitFixed:
		return v.Resolve(0, 0), true
	case UnitPercent:
		if c.Mode != Unbounded {
			return v.Resolve(c.Value, 0), true
		}
	}
	return 0, false
}

// contentSize measures what sits inside the padding box.
func contentSize(n *Node, c Constraints) Size {
	children := n.visibleChildren()
	measured := n.Style.Width.Unit == UnitMeasured || n.Style.Height.Unit == UnitMeasured
	if n.Measure != nil && (measured || len(children) == 0) {
		return n.Measure(c).NonNegative()
	}
	if len(children) == 0 {
		return Size{}
	}
	s := n.Style
	switch s.Direction {
	case Grid:
		return gridNatural(s, children, c)
	case Stack:
		var out Size
		for _, child := range children {
			out = out.Max(naturalWithMargin(child, c))
		}
		return out
	}

	row := s.Direction == Row
	var out Size
	for i, child := range children {
		cc := c
		// Siblings share the main axis, so each one is measured unbounded
		// along it and the sum is constrained afterwards.
		if row {
			cc.Width = Constraint{Mode: Unbounded}
		} else {
			cc.Height = Constraint{Mode: Unbounded}
		}
		sz := naturalWithMargin(child, cc)
		gap := 0
		if i > 0 {
			gap = s.Gap
		}
		if row {
			out.Width += sz.Width + gap
			out.Height = max(out.Height, sz.Height)
		} else {
			out.Height += sz.Height + gap
			out.Width = max(out.Width, sz.Width)
		}
	}
	return out
}

func naturalWithMargin(child *Node, c Constraints) Size {
	m := child.Style.Margin
	sz := natural(child, c.Shrink(m))
	return Size{Width: sz.Width + m.Horizontal(), Height: sz.Height + m.Vertical()}
}

func gridNatural(s Style, children []*Node, c Constraints) Size {
	cols := max(1, s.Columns)
	widths := make([]int, cols)
	var height, rowHeight int
	for i, child := range children {
		col := i % cols
		sz := naturalWithMargin(child, Constraints{Width: Constraint{Mode: Unbounded}, Height: Constraint{Mode: Unbounded}})
		widths[col] = max(widths[col], sz.Width)
		rowHeight = max(rowHeight, sz.Height)
		if col == cols-1 || i == len(children)-1 {
			height += rowHeight
			rowHeight = 0
		}
	}
	rows := (len(children) + cols - 1) / cols
	width := s.Gap * (min(cols, len(children)) - 1)
	for _, w := range widths {
		width += w
	}
	height += s.Gap * (rows - 1)
	return Size{Width: width, Height: height}
}
