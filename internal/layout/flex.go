package layout

// flexItem tracks one child through the main-axis distribution.
type flexItem struct {
	node        *Node
	main        int
	cross       int
	marginMain  int
	marginCross int
	weight      float64
	shrinkable  bool
}

// layoutFlex arranges children in a single row or column and returns the
// union of their margin boxes.
//
// Phases:
//  1. Base sizes: fixed and percent resolve directly, flex starts at zero,
//     auto and measured use the child's natural size.
//  2. Free space goes to flex items by weight; overflow on a non-scrolling
//     axis shrinks auto and measured items in proportion to their size.
//  3. Justify positions items along the main axis; Align sizes and positions
//     them on the cross axis.
func layoutFlex(n *Node, children []*Node, box Size) Rect {
	s := n.Style
	row := s.Direction == Row

	mainAvail, crossAvail := box.Height, box.Width
	mainBounded, crossBounded := !s.Scroll.Vertical(), !s.Scroll.Horizontal()
	if row {
		mainAvail, crossAvail = box.Width, box.Height
		mainBounded, crossBounded = !s.Scroll.Horizontal(), !s.Scroll.Vertical()
	}

	items := make([]flexItem, len(children))
	totalWeight := 0.0
	used := s.Gap * (len(children) - 1)
	for i, child := range children {
		cs := child.Style
		it := flexItem{node: child}
		it.marginMain, it.marginCross = cs.Margin.Vertical(), cs.Margin.Horizontal()
		if row {
			it.marginMain, it.marginCross = cs.Margin.Horizontal(), cs.Margin.Vertical()
		}
		mainV := mainValue(cs, row)

		switch mainV.Unit {
		case UnitFixed, UnitPercent:
			it.main = mainV.Resolve(mainAvail, 0)
		case UnitFlex:
			it.weight = mainV.Amount
			totalWeight += it.weight
		default:
			it.shrinkable = true
			c := axisConstraints(row,
				boundedOr(mainBounded, mainAvail-it.marginMain),
				crossConstraint(s, cs, row, crossBounded, crossAvail-it.marginCross))
			it.main = mainOf(natural(child, c), row)
		}
		it.main = clampMain(cs, row, it.main)
		used += it.main + it.marginMain
		items[i] = it
	}

	free := mainAvail - used
	switch {
	case free > 0 && totalWeight > 0:
		distributeFlex(items, free, totalWeight)
		for i := range items {
			if items[i].weight > 0 {
				items[i].main = clampMain(items[i].node.Style, row, items[i].main)
			}
		}
	case free < 0 && mainBounded:
		shrinkItems(items, -free)
	}

	used = s.Gap * (len(items) - 1)
	for _, it := range items {
		used += it.main + it.marginMain
	}
	free = max(0, mainAvail-used)
	offset := justifyOffset(s.Justify, free, len(items))
	spacing := justifySpacing(s.Justify, free, len(items))

	var bounds Rect
	pos := offset
	for _, it := range items {
		cs := it.node.Style
		crossSpan := crossAvail - it.marginCross
		crossV := crossValue(cs, row)
		cross, ok := resolveIn(crossV, crossSpan, s.Align == AlignStretch && crossBounded)
		if !ok {
			c := axisConstraints(row,
				Constraint{Mode: Exact, Value: it.main},
				boundedOr(crossBounded, crossSpan))
			cross = crossOf(natural(it.node, c), row)
		}
		cross = clampCross(cs, row, cross)
		crossPos := alignOffset(s.Align, crossAvail, cross+it.marginCross)

		var slot Rect
		if row {
			slot = Rect{X: pos, Y: crossPos, Width: it.main + it.marginMain, Height: cross + it.marginCross}
		} else {
			slot = Rect{X: crossPos, Y: pos, Width: cross + it.marginCross, Height: it.main + it.marginMain}
		}
		calculateNode(it.node, slot.Inset(cs.Margin))
		bounds = bounds.Union(slot)
		pos += it.main + it.marginMain + s.Gap + spacing
	}
	return bounds
}

// distributeFlex hands free cells to weighted items. Rounding leftovers go
// to the earliest flex items.
func distributeFlex(items []flexItem, free int, totalWeight float64) {
	given := 0
	for i := range items {
		if items[i].weight <= 0 {
			continue
		}
		share := int(float64(free) * items[i].weight / totalWeight)
		items[i].main += share
		given += share
	}
	for i := 0; given < free; i = (i + 1) % len(items) {
		if items[i].weight > 0 {
			items[i].main++
			given++
		}
	}
}

// shrinkItems removes deficit cells from shrinkable items in proportion to
// their current size.
func shrinkItems(items []flexItem, deficit int) {
	total := 0
	for _, it := range items {
		if it.shrinkable {
			total += it.main
		}
	}
	if total == 0 {
		return
	}
	deficit = min(deficit, total)
	taken := 0
	for i := range items {
		if !items[i].shrinkable {
			continue
		}
		cut := deficit * items[i].main / total
		items[i].main -= cut
		taken += cut
	}
	for i := 0; taken < deficit; i = (i + 1) % len(items) {
		if items[i].shrinkable && items[i].main > 0 {
			items[i].main--
			taken++
		}
	}
}

func justifyOffset(justify Justify, free, count int) int {
	if free <= 0 || count == 0 {
		return 0
	}
	switch justify {
	case JustifyEnd:
		return free
	case JustifyCenter:
		return free / 2
	case JustifySpaceAround:
		return free / (count * 2)
	case JustifySpaceEvenly:
		return free / (count + 1)
	}
	return 0
}

func justifySpacing(justify Justify, free, count int) int {
	if free <= 0 || count == 0 {
		return 0
	}
	switch justify {
	case JustifySpaceBetween:
		if count > 1 {
			return free / (count - 1)
		}
	case JustifySpaceAround:
		return free / count
	case JustifySpaceEvenly:
		return free / (count + 1)
	}
	return 0
}

func crossConstraint(parent, child Style, row, bounded bool, span int) Constraint {
	if !bounded {
		return Constraint{Mode: Unbounded}
	}
	v := crossValue(child, row)
	if parent.Align == AlignStretch && (v.Unit == UnitAuto || v.Unit == UnitFlex) {
		return Constraint{Mode: Exact, Value: max(0, span)}
	}
	if size, ok := resolveIn(v, span, false); ok {
		return Constraint{Mode: Exact, Value: size}
	}
	return Constraint{Mode: AtMost, Value: max(0, span)}
}

func boundedOr(bounded bool, span int) Constraint {
	if !bounded {
		return Constraint{Mode: Unbounded}
	}
	return Constraint{Mode: AtMost, Value: max(0, span)}
}

func axisConstraints(row bool, main, cross Constraint) Constraints {
	if row {
		return Constraints{Width: main, Height: cross}
	}
	return Constraints{Width: cross, Height: main}
}

func mainValue(s Style, row bool) Value {
	if row {
		return s.Width
	}
	return s.Height
}

func crossValue(s Style, row bool) Value {
	if row {
		return s.Height
	}
	return s.Width
}

func mainOf(sz Size, row bool) int {
	if row {
		return sz.Width
	}
	return sz.Height
}

func crossOf(sz Size, row bool) int {
	if row {
		return sz.Height
	}
	return sz.Width
}

func clampMain(s Style, row bool, v int) int {
	if row {
		return s.clampWidth(v)
	}
	return s.clampHeight(v)
}

func clampCross(s Style, row bool, v int) int {
	if row {
		return s.clampHeight(v)
	}
	return s.clampWidth(v)
}
