package main

import (
	"fmt"
	"time"

	"github.com/grindlemire/tuicore"
)

// demo holds the nodes of the demo tree that callers poke at.
type demo struct {
	root    tui.NodeID
	list    tui.NodeID
	status  tui.NodeID
	buttons map[string]tui.NodeID
	items   *itemList
	bar     *statusBar
}

// buildDemo attaches the demo tree to core:
//
//	app (frame)
//	├── body (row)
//	│   ├── items (scrolling list)
//	│   └── actions (column of buttons)
//	└── status
func buildDemo(core *tui.Core, count int) (*demo, error) {
	d := &demo{buttons: make(map[string]tui.NodeID)}
	d.items = &itemList{}
	for i := range max(0, count) {
		d.items.lines = append(d.items.lines, fmt.Sprintf("item %02d", i+1))
	}
	d.bar = &statusBar{hint: "tab focus · ↑↓ scroll · enter press · ctrl+c quit"}

	var err error
	add := func(name string, w tui.Widget) tui.NodeID {
		if err != nil {
			return tui.NodeID{}
		}
		var id tui.NodeID
		id, err = core.Add(name, w)
		return id
	}

	d.root = add("app", &frame{title: "tuicore", spec: tui.MustLayoutSpec(tui.WithPadding(tui.EdgeAll(1)))})
	body := add("body", &box{spec: tui.MustLayoutSpec(
		tui.WithDirection(tui.Row),
		tui.WithHeight(tui.Flex(1)),
		tui.WithGap(1),
	)})
	d.list = add("items", d.items)
	actions := add("actions", &box{spec: tui.MustLayoutSpec(
		tui.WithWidth(tui.Fixed(14)),
		tui.WithGap(1),
	)})
	d.status = add("status", d.bar)

	var buttons []tui.NodeID
	for _, b := range []struct {
		name  string
		press func(ctx *tui.Context)
	}{
		{"add", func(ctx *tui.Context) {
			d.items.lines = append(d.items.lines, fmt.Sprintf("item %02d", len(d.items.lines)+1))
			ctx.Core().Taint(d.list)
		}},
		{"remove", func(ctx *tui.Context) {
			if n := len(d.items.lines); n > 0 {
				d.items.lines = d.items.lines[:n-1]
				d.items.selected = min(d.items.selected, max(0, n-2))
				ctx.Core().Taint(d.list)
			}
		}},
		{"quit", func(ctx *tui.Context) { ctx.Quit() }},
	} {
		id := add(b.name, &button{label: b.name, onPress: b.press})
		d.buttons[b.name] = id
		buttons = append(buttons, id)
	}
	if err != nil {
		return nil, err
	}

	for _, step := range []func() error{
		func() error { return core.SetRoot(d.root) },
		func() error { return core.SetChildren(d.root, body, d.status) },
		func() error { return core.SetChildren(body, d.list, actions) },
		func() error { return core.SetChildren(actions, buttons...) },
	} {
		if err := step(); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// defaultTheme is used when the config names no theme file.
func defaultTheme() *tui.StyleMap {
	m := tui.NewStyleMap()
	for _, r := range []struct {
		pattern string
		fg      tui.Color
		attrs   tui.Attr
	}{
		{"border", tui.Grey, tui.AttrNone},
		{"/app/title", tui.Cyan, tui.AttrBold},
		{"items/selected", tui.DefaultColor(), tui.AttrUnderline},
		{"items/focused/selected", tui.DefaultColor(), tui.AttrReverse},
		{"items/scrollbar", tui.Grey, tui.AttrNone},
		{"button", tui.White, tui.AttrNone},
		{"button/focused", tui.BrightYellow, tui.AttrBold | tui.AttrReverse},
		{"status", tui.Grey, tui.AttrDim},
	} {
		if err := m.Add(r.pattern, r.fg, tui.DefaultColor(), r.attrs); err != nil {
			panic(err)
		}
	}
	return m
}

// box is a plain container.
type box struct {
	tui.BaseWidget
	spec tui.LayoutSpec
}

func (b *box) LayoutSpec() tui.LayoutSpec { return b.spec }

// frame draws a titled border around its children.
type frame struct {
	tui.BaseWidget
	title string
	spec  tui.LayoutSpec
}

func (f *frame) LayoutSpec() tui.LayoutSpec { return f.spec }

func (f *frame) Render(ctx *tui.RenderContext) error {
	ctx.Border(ctx.Bounds(), ctx.Style("border"))
	if w := ctx.Size().Width - 4; w > 0 {
		ctx.Text(2, 0, tui.Truncate(" "+f.title+" ", w, "…"), ctx.Style("title"))
	}
	return nil
}

// itemList is a scrolling, selectable list with a scrollbar in its right
// padding column.
type itemList struct {
	tui.BaseWidget
	lines    []string
	selected int
}

func (l *itemList) LayoutSpec() tui.LayoutSpec {
	return tui.MustLayoutSpec(
		tui.WithWidth(tui.Flex(1)),
		tui.WithScroll(tui.ScrollVertical),
		tui.WithPadding(tui.EdgeTRBL(0, 1, 0, 0)),
	)
}

func (l *itemList) Canvas(content tui.Size) tui.Size {
	return tui.Size{Width: content.Width, Height: len(l.lines)}
}

func (l *itemList) AcceptFocus(tui.NodeInfo) bool { return len(l.lines) > 0 }

func (l *itemList) Render(ctx *tui.RenderContext) error {
	v := ctx.View()
	barStyle := ctx.Style("scrollbar")
	if ctx.OnFocusPath() {
		if err := ctx.PushLayer("focused"); err != nil {
			return err
		}
	}
	plain, selected := ctx.Style(), ctx.Style("selected")
	for i := v.TL.Y; i < min(len(l.lines), v.TL.Y+v.Content.Height); i++ {
		style := plain
		if i == l.selected {
			style = selected
		}
		ctx.ContentFill(tui.Rect{X: 0, Y: i, Width: v.Content.Width, Height: 1}, ' ', style)
		ctx.ContentText(0, i, tui.Truncate(l.lines[i], v.Content.Width, "…"), style)
	}
	bar := tui.Rect{X: ctx.Size().Width - 1, Y: 0, Width: 1, Height: ctx.Size().Height}
	return ctx.Scrollbar(bar, true, '│', '┃', barStyle)
}

func (l *itemList) HandleEvent(ev tui.Event, ctx *tui.Context) tui.Outcome {
	k, ok := ev.(tui.KeyEvent)
	if !ok || len(l.lines) == 0 {
		return tui.Ignored
	}
	switch k.Key {
	case tui.KeyUp:
		if l.selected == 0 {
			return tui.Ignored
		}
		l.selected--
	case tui.KeyDown:
		if l.selected == len(l.lines)-1 {
			return tui.Ignored
		}
		l.selected++
	default:
		return tui.Ignored
	}
	l.follow(ctx)
	return tui.Handled
}

// follow scrolls just enough to keep the selection visible.
func (l *itemList) follow(ctx *tui.Context) {
	v := ctx.View()
	switch {
	case l.selected < v.TL.Y:
		ctx.ScrollTo(v.TL.X, l.selected)
	case l.selected >= v.TL.Y+v.Content.Height:
		ctx.ScrollTo(v.TL.X, l.selected-v.Content.Height+1)
	}
}

// Command supports "select <index>" and "count".
func (l *itemList) Command(ctx *tui.Context, name string, args ...any) (any, error) {
	switch name {
	case "count":
		return len(l.lines), nil
	case "select":
		if len(args) != 1 {
			return nil, fmt.Errorf("select takes one index")
		}
		i, ok := args[0].(int)
		if !ok || i < 0 || i >= len(l.lines) {
			return nil, fmt.Errorf("bad index %v", args[0])
		}
		l.selected = i
		l.follow(ctx)
		ctx.Taint()
		return i, nil
	}
	return nil, fmt.Errorf("unknown command %q", name)
}

// button is a focusable one-line label.
type button struct {
	tui.BaseWidget
	label   string
	presses int
	onPress func(ctx *tui.Context)
}

func (b *button) LayoutSpec() tui.LayoutSpec {
	return tui.MustLayoutSpec(tui.WithHeight(tui.Fixed(1)))
}

func (b *button) Measure(tui.Constraints) tui.Size {
	return tui.Size{Width: tui.StringWidth(b.label) + 4, Height: 1}
}

func (b *button) AcceptFocus(tui.NodeInfo) bool { return true }

func (b *button) Render(ctx *tui.RenderContext) error {
	style := ctx.Style("button")
	if ctx.Focused() {
		style = ctx.Style("button", "focused")
	}
	ctx.Fill(ctx.Bounds(), ' ', style)
	ctx.Text(0, 0, tui.Truncate("[ "+b.label+" ]", ctx.Size().Width, "…"), style)
	return nil
}

func (b *button) HandleEvent(ev tui.Event, ctx *tui.Context) tui.Outcome {
	switch ev := ev.(type) {
	case tui.KeyEvent:
		if ev.Key == tui.KeyEnter || ev.IsChord(' ', tui.ModNone) {
			b.press(ctx)
			return tui.Handled
		}
	case tui.MouseEvent:
		if ev.Button == tui.MouseLeft && ev.Action == tui.MouseRelease {
			b.press(ctx)
			return tui.Handled
		}
	}
	return tui.Ignored
}

// Command supports "press".
func (b *button) Command(ctx *tui.Context, name string, _ ...any) (any, error) {
	if name != "press" {
		return nil, fmt.Errorf("unknown command %q", name)
	}
	b.press(ctx)
	ctx.Taint()
	return b.presses, nil
}

func (b *button) press(ctx *tui.Context) {
	b.presses++
	if b.onPress != nil {
		b.onPress(ctx)
	}
}

// statusBar shows key hints and an uptime counter driven by Poll.
type statusBar struct {
	tui.BaseWidget
	hint    string
	seconds int
}

func (s *statusBar) LayoutSpec() tui.LayoutSpec {
	return tui.MustLayoutSpec(tui.WithHeight(tui.Fixed(1)))
}

func (s *statusBar) OnMount(ctx *tui.Context) error {
	ctx.SchedulePoll(time.Second)
	return nil
}

func (s *statusBar) Poll(ctx *tui.Context) (time.Duration, bool) {
	s.seconds++
	ctx.Taint()
	return time.Second, true
}

func (s *statusBar) Render(ctx *tui.RenderContext) error {
	text := fmt.Sprintf("%s · up %ds", s.hint, s.seconds)
	ctx.Text(0, 0, tui.Truncate(text, ctx.Size().Width, "…"), ctx.Style())
	return nil
}
