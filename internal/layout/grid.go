package layout

// layoutGrid places children row by row into Style.Columns equal columns.
// Rows take the height of their tallest child. When the grid does not
// scroll vertically, spare height is shared among rows holding a
// flex-height child, weighted by the largest weight in each row.
func layoutGrid(n *Node, children []*Node, box Size) Rect {
	s := n.Style
	cols := max(1, s.Columns)
	rows := (len(children) + cols - 1) / cols

	widths := make([]int, cols)
	if s.Scroll.Horizontal() {
		for i, child := range children {
			sz := naturalWithMargin(child, Constraints{Height: Constraint{Mode: Unbounded}})
			widths[i%cols] = max(widths[i%cols], sz.Width)
		}
	} else {
		weights := make([]int, cols)
		for i := range weights {
			weights[i] = 1
		}
		span := Extent{Len: max(0, box.Width-s.Gap*(cols-1))}
		parts, _ := span.SplitWeights(weights...)
		for i, p := range parts {
			widths[i] = p.Len
		}
	}

	heights := make([]int, rows)
	weights := make([]float64, rows)
	for i, child := range children {
		r, col := i/cols, i%cols
		cs := child.Style
		m := cs.Margin
		var h int
		switch cs.Height.Unit {
		case UnitFixed, UnitPercent:
			h = cs.Height.Resolve(box.Height, 0)
		case UnitFlex:
			weights[r] = max(weights[r], cs.Height.Amount)
		default:
			c := Constraints{
				Width:  Constraint{Mode: Exact, Value: max(0, widths[col]-m.Horizontal())},
				Height: Constraint{Mode: Unbounded},
			}
			h = natural(child, c).Height
		}
		heights[r] = max(heights[r], cs.clampHeight(h)+m.Vertical())
	}

	if !s.Scroll.Vertical() {
		used := s.Gap * (rows - 1)
		total := 0.0
		for r := range heights {
			used += heights[r]
			total += weights[r]
		}
		if free := box.Height - used; free > 0 && total > 0 {
			items := make([]flexItem, rows)
			for r := range items {
				items[r] = flexItem{main: heights[r], weight: weights[r]}
			}
			distributeFlex(items, free, total)
			for r := range items {
				heights[r] = items[r].main
			}
		}
	}

	var bounds Rect
	y := 0
	for r := 0; r < rows; r++ {
		x := 0
		for col := 0; col < cols; col++ {
			i := r*cols + col
			if i >= len(children) {
				break
			}
			slot := Rect{X: x, Y: y, Width: widths[col], Height: heights[r]}
			calculateNode(children[i], place(children[i], slot, AlignStretch, s.Align))
			bounds = bounds.Union(slot)
			x += widths[col] + s.Gap
		}
		y += heights[r] + s.Gap
	}
	return bounds
}
