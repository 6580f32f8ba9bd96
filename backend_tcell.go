package tui

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// TcellBackend drives a real terminal through tcell. It is both the
// output Backend and the InputSource of an App.
type TcellBackend struct {
	screen tcell.Screen
	style  tcell.Style
	fini   sync.Once
}

var (
	_ Backend     = (*TcellBackend)(nil)
	_ InputSource = (*TcellBackend)(nil)
	_ Sizer       = (*TcellBackend)(nil)
)

// NewTcellBackend takes over the terminal. Call Exit to give it back.
func NewTcellBackend(mouse bool) (*TcellBackend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return newTcellBackend(screen, mouse)
}

func newTcellBackend(screen tcell.Screen, mouse bool) (*TcellBackend, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	if mouse {
		screen.EnableMouse()
	}
	screen.Clear()
	return &TcellBackend{screen: screen, style: tcell.StyleDefault}, nil
}

func (t *TcellBackend) Style(s Style) error {
	t.style = tcellStyle(s)
	return nil
}

func (t *TcellBackend) Text(p Point, s string) error {
	x := p.X
	for _, r := range s {
		t.screen.SetContent(x, p.Y, r, nil, t.style)
		x += RuneWidth(r)
	}
	return nil
}

func (t *TcellBackend) Fill(r Rect, ch rune) error {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			t.screen.SetContent(x, y, ch, nil, t.style)
		}
	}
	return nil
}

func (t *TcellBackend) Flush() error {
	t.screen.Show()
	return nil
}

func (t *TcellBackend) Reset() error {
	t.screen.Clear()
	t.screen.Sync()
	return nil
}

// Exit restores the terminal. Later calls do nothing. tcell has no notion
// of an exit status, so code is left to the caller.
func (t *TcellBackend) Exit(code int) {
	t.fini.Do(t.screen.Fini)
}

func (t *TcellBackend) Size() Size {
	w, h := t.screen.Size()
	return Size{Width: w, Height: h}
}

// ReadEvent blocks on the terminal. Interrupts and other tcell events with
// no counterpart here are skipped.
func (t *TcellBackend) ReadEvent(ctx context.Context) (Event, error) {
	stop := context.AfterFunc(ctx, func() {
		_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			return nil, io.EOF
		case *tcell.EventResize:
			w, h := ev.Size()
			return ResizeEvent{Width: w, Height: h}, nil
		case *tcell.EventKey:
			return keyFromTcell(ev), nil
		case *tcell.EventMouse:
			return mouseFromTcell(ev), nil
		}
	}
}

var tcellKeys = map[tcell.Key]Key{
	tcell.KeyEscape:     KeyEscape,
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyTab:        KeyTab,
	tcell.KeyBacktab:    KeyBacktab,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyDelete:     KeyDelete,
	tcell.KeyInsert:     KeyInsert,
	tcell.KeyUp:         KeyUp,
	tcell.KeyDown:       KeyDown,
	tcell.KeyLeft:       KeyLeft,
	tcell.KeyRight:      KeyRight,
	tcell.KeyHome:       KeyHome,
	tcell.KeyEnd:        KeyEnd,
	tcell.KeyPgUp:       KeyPageUp,
	tcell.KeyPgDn:       KeyPageDown,
	tcell.KeyF1:         KeyF1,
	tcell.KeyF2:         KeyF2,
	tcell.KeyF3:         KeyF3,
	tcell.KeyF4:         KeyF4,
	tcell.KeyF5:         KeyF5,
	tcell.KeyF6:         KeyF6,
	tcell.KeyF7:         KeyF7,
	tcell.KeyF8:         KeyF8,
	tcell.KeyF9:         KeyF9,
	tcell.KeyF10:        KeyF10,
	tcell.KeyF11:        KeyF11,
	tcell.KeyF12:        KeyF12,
}

func modFromTcell(m tcell.ModMask) Modifier {
	var mod Modifier
	if m&tcell.ModCtrl != 0 {
		mod |= ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mod |= ModAlt
	}
	if m&tcell.ModShift != 0 {
		mod |= ModShift
	}
	return mod
}

func keyFromTcell(ev *tcell.EventKey) KeyEvent {
	mod := modFromTcell(ev.Modifiers())
	if k, ok := tcellKeys[ev.Key()]; ok {
		return KeyEvent{Key: k, Mod: mod}
	}
	if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return KeyEvent{Key: KeyRune, Rune: rune('a' + k - tcell.KeyCtrlA), Mod: mod | ModCtrl}
	}
	return KeyEvent{Key: KeyRune, Rune: ev.Rune(), Mod: mod}
}

func mouseFromTcell(ev *tcell.EventMouse) MouseEvent {
	x, y := ev.Position()
	me := MouseEvent{X: x, Y: y, Mod: modFromTcell(ev.Modifiers()), Action: MousePress}
	switch b := ev.Buttons(); {
	case b&tcell.Button1 != 0:
		me.Button = MouseLeft
	case b&tcell.Button2 != 0:
		me.Button = MouseRight
	case b&tcell.Button3 != 0:
		me.Button = MouseMiddle
	case b&tcell.WheelUp != 0:
		me.Button = MouseWheelUp
	case b&tcell.WheelDown != 0:
		me.Button = MouseWheelDown
	case b&tcell.WheelLeft != 0:
		me.Button = MouseWheelLeft
	case b&tcell.WheelRight != 0:
		me.Button = MouseWheelRight
	default:
		me.Button, me.Action = MouseNone, MouseRelease
	}
	return me
}

func tcellColor(c Color) tcell.Color {
	switch c.Type() {
	case ColorANSI:
		return tcell.PaletteColor(int(c.ANSI()))
	case ColorRGB:
		r, g, b := c.RGB()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	return tcell.ColorDefault
}

func tcellStyle(s Style) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcellColor(s.Fg)).
		Background(tcellColor(s.Bg)).
		Bold(s.HasAttr(AttrBold)).
		Dim(s.HasAttr(AttrDim)).
		Italic(s.HasAttr(AttrItalic)).
		Underline(s.HasAttr(AttrUnderline)).
		Blink(s.HasAttr(AttrBlink)).
		Reverse(s.HasAttr(AttrReverse)).
		StrikeThrough(s.HasAttr(AttrStrikethrough))
}
