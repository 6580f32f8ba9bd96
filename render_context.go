package tui

// paintOp is one recorded draw call, in screen coordinates. A node that is
// not re-rendered replays its ops from the previous sweep.
type paintOp struct {
	fill  bool
	at    Point
	text  string
	rect  Rect
	r     rune
	style Style
	clip  Rect
}

// apply draws the op into buf and marks the touched cells in cov.
func (op paintOp) apply(buf *Buffer, cov coverage) {
	if op.fill {
		buf.Fill(op.rect, op.r, op.style, op.clip)
		cov.setRect(op.rect.Intersect(op.clip))
		return
	}
	n := buf.SetString(op.at.X, op.at.Y, op.text, op.style, op.clip)
	cov.setRect(Rect{X: op.at.X, Y: op.at.Y, Width: n, Height: 1}.Intersect(op.clip))
}

// RenderContext is handed to Widget.Render. Drawing coordinates are local
// to the node's outer box unless a method says otherwise, and everything is
// clipped to the node's visible part. A RenderContext cannot change the
// tree.
type RenderContext struct {
	core    *Core
	info    NodeInfo
	screen  Rect
	clip    Rect
	focused bool
	onPath  bool
	layers  *styleLayers
	pushed  []string
	ops     []paintOp
}

// Info describes the node being rendered.
func (rc *RenderContext) Info() NodeInfo {
	return rc.info
}

// View returns the node's geometry.
func (rc *RenderContext) View() View {
	return rc.info.View
}

// Size returns the size of the node's outer box.
func (rc *RenderContext) Size() Size {
	return rc.info.View.Outer.Size()
}

// Bounds returns the outer box in local coordinates.
func (rc *RenderContext) Bounds() Rect {
	return rc.Size().Rect()
}

// Visible returns the part of the outer box that is on screen, in local
// coordinates.
func (rc *RenderContext) Visible() Rect {
	return rc.clip.Sub(rc.screen.Origin())
}

func (rc *RenderContext) Focused() bool { return rc.focused }

// OnFocusPath reports whether the node or one of its descendants holds
// focus.
func (rc *RenderContext) OnFocusPath() bool { return rc.onPath }

// Style resolves the style for the current layer stack followed by extra.
func (rc *RenderContext) Style(extra ...string) Style {
	return rc.core.styles.Resolve(rc.layers.path(extra...))
}

// PushLayer adds a style layer that stays in effect for the rest of this
// node's render and for its whole subtree. Layer names follow the rules
// for node names.
func (rc *RenderContext) PushLayer(name string) error {
	if err := validName(name); err != nil {
		return err
	}
	rc.layers.push(name)
	rc.pushed = append(rc.pushed, name)
	return nil
}

// Text draws s starting at (x, y).
func (rc *RenderContext) Text(x, y int, s string, style Style) {
	rc.ops = append(rc.ops, paintOp{
		at:    Point{X: x, Y: y}.Add(rc.screen.Origin()),
		text:  s,
		style: style,
		clip:  rc.clip,
	})
}

// Fill paints r with ch.
func (rc *RenderContext) Fill(r Rect, ch rune, style Style) {
	rc.ops = append(rc.ops, paintOp{
		fill:  true,
		rect:  r.Offset(rc.screen.Origin()),
		r:     ch,
		style: style,
		clip:  rc.clip,
	})
}

// SetCell draws a single rune.
func (rc *RenderContext) SetCell(x, y int, ch rune, style Style) {
	rc.Fill(Rect{X: x, Y: y, Width: 1, Height: 1}, ch, style)
}

// contentClip is the visible part of the content box on screen.
func (rc *RenderContext) contentClip() Rect {
	return rc.info.View.Content.Offset(rc.screen.Origin()).Intersect(rc.clip)
}

// ContentText draws s at (x, y) in canvas coordinates, so it moves with
// the node's scroll offset. Output is clipped to the content box.
func (rc *RenderContext) ContentText(x, y int, s string, style Style) {
	v := rc.info.View
	at := v.ContentToOuter(Rect{X: x, Y: y}).Origin()
	rc.ops = append(rc.ops, paintOp{
		at:    at.Add(rc.screen.Origin()),
		text:  s,
		style: style,
		clip:  rc.contentClip(),
	})
}

// ContentFill paints r, given in canvas coordinates, with ch.
func (rc *RenderContext) ContentFill(r Rect, ch rune, style Style) {
	rc.ops = append(rc.ops, paintOp{
		fill:  true,
		rect:  rc.info.View.ContentToOuter(r).Offset(rc.screen.Origin()),
		r:     ch,
		style: style,
		clip:  rc.contentClip(),
	})
}

// Border draws a single-line box around r.
func (rc *RenderContext) Border(r Rect, style Style) {
	f := NewFrame(r, 1)
	rc.Fill(f.Top, '─', style)
	rc.Fill(f.Bottom, '─', style)
	rc.Fill(f.Left, '│', style)
	rc.Fill(f.Right, '│', style)
	if r.Width < 2 || r.Height < 2 {
		return
	}
	corners := [4]rune{'┌', '┐', '└', '┘'}
	for i, p := range f.Corners() {
		rc.SetCell(p.X, p.Y, corners[i], style)
	}
}

// Scrollbar draws a scrollbar for the node's own view into margin, a
// one-cell-wide strip in local coordinates. The part matching the visible
// window is drawn with thumb, the rest with track. Nothing scrollable on
// that axis draws only the track.
func (rc *RenderContext) Scrollbar(margin Rect, vertical bool, track, thumb rune, style Style) error {
	if margin.IsEmpty() {
		return newError(KindGeometry, "empty scrollbar margin %v", margin)
	}
	v := rc.info.View
	split := v.HActive
	if vertical {
		split = v.VActive
	}
	pre, active, post, ok := split(margin)
	if !ok {
		rc.Fill(margin, track, style)
		return nil
	}
	rc.Fill(pre, track, style)
	rc.Fill(active, thumb, style)
	rc.Fill(post, track, style)
	return nil
}
