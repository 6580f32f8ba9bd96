package tui

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
)

// ErrInjected is a ready-made error for FailOn.
var ErrInjected = errors.New("injected backend failure")

// HeadlessBackend is an in-memory Backend for tests and snapshots. Writes
// land in a pending grid that Flush makes visible, like a terminal that
// only shows complete frames. It also serves scripted input.
type HeadlessBackend struct {
	mu      sync.Mutex
	width   int
	height  int
	pending []Cell
	shown   []Cell
	style   Style
	exited  bool
	code    int

	calls   map[string]int
	failOp  string
	failAt  int
	failErr error
	events  chan Event
}

var (
	_ Backend     = (*HeadlessBackend)(nil)
	_ InputSource = (*HeadlessBackend)(nil)
	_ Sizer       = (*HeadlessBackend)(nil)
)

// NewHeadlessBackend returns a blank headless screen.
func NewHeadlessBackend(width, height int) *HeadlessBackend {
	h := &HeadlessBackend{
		calls:  make(map[string]int),
		events: make(chan Event, 64),
	}
	h.resize(width, height)
	return h
}

func (h *HeadlessBackend) resize(width, height int) {
	h.width, h.height = max(0, width), max(0, height)
	h.pending = make([]Cell, h.width*h.height)
	h.shown = make([]Cell, h.width*h.height)
	for i := range h.pending {
		h.pending[i] = blankCell()
		h.shown[i] = blankCell()
	}
}

// FailOn makes the nth call (1-based, counted from now) to op return err.
// op is one of "style", "text", "fill", "flush" or "reset".
func (h *HeadlessBackend) FailOn(op string, nth int, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.failOp, h.failAt, h.failErr = op, h.calls[op]+nth, err
}

// call counts op and returns the injected error when due.
func (h *HeadlessBackend) call(op string) error {
	h.calls[op]++
	if op == h.failOp && h.calls[op] == h.failAt {
		h.failOp = ""
		return h.failErr
	}
	return nil
}

// Calls returns how many times op was called.
func (h *HeadlessBackend) Calls(op string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.calls[op]
}

func (h *HeadlessBackend) Style(s Style) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.call("style"); err != nil {
		return err
	}
	h.style = s
	return nil
}

func (h *HeadlessBackend) Text(p Point, s string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.call("text"); err != nil {
		return err
	}
	x := p.X
	for _, r := range s {
		w := RuneWidth(r)
		h.set(x, p.Y, Cell{Rune: r, Style: h.style, Width: uint8(w)})
		if w == 2 {
			h.set(x+1, p.Y, Cell{Style: h.style})
		}
		x += w
	}
	return nil
}

func (h *HeadlessBackend) Fill(r Rect, ch rune) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.call("fill"); err != nil {
		return err
	}
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			h.set(x, y, Cell{Rune: ch, Style: h.style, Width: 1})
		}
	}
	return nil
}

func (h *HeadlessBackend) set(x, y int, c Cell) {
	if x < 0 || y < 0 || x >= h.width || y >= h.height {
		return
	}
	h.pending[y*h.width+x] = c
}

func (h *HeadlessBackend) Flush() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.call("flush"); err != nil {
		return err
	}
	copy(h.shown, h.pending)
	return nil
}

func (h *HeadlessBackend) Reset() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.call("reset"); err != nil {
		return err
	}
	h.resize(h.width, h.height)
	return nil
}

// Exit records the exit code and ends scripted input.
func (h *HeadlessBackend) Exit(code int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.exited {
		return
	}
	h.exited, h.code = true, code
	close(h.events)
}

// Exited reports whether Exit was called, and with which code.
func (h *HeadlessBackend) Exited() (bool, int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.exited, h.code
}

// Size returns the screen size.
func (h *HeadlessBackend) Size() Size {
	h.mu.Lock()
	defer h.mu.Unlock()
	return Size{Width: h.width, Height: h.height}
}

// Resize changes the screen size, blanks it and queues a ResizeEvent.
func (h *HeadlessBackend) Resize(width, height int) {
	h.mu.Lock()
	h.resize(width, height)
	h.mu.Unlock()
	h.Send(ResizeEvent{Width: width, Height: height})
}

// Send queues events for ReadEvent. Events sent after Exit are dropped.
func (h *HeadlessBackend) Send(events ...Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.exited {
		return
	}
	for _, ev := range events {
		h.events <- ev
	}
}

// ReadEvent returns the next queued event. It returns io.EOF after Exit.
func (h *HeadlessBackend) ReadEvent(ctx context.Context) (Event, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case ev, ok := <-h.events:
		if !ok {
			return nil, io.EOF
		}
		return ev, nil
	}
}

// CellAt returns the visible cell at (x, y).
func (h *HeadlessBackend) CellAt(x, y int) Cell {
	h.mu.Lock()
	defer h.mu.Unlock()
	if x < 0 || y < 0 || x >= h.width || y >= h.height {
		return Cell{}
	}
	return h.shown[y*h.width+x]
}

// String returns the visible screen, one line per row.
func (h *HeadlessBackend) String() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	var sb strings.Builder
	for y := 0; y < h.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < h.width; x++ {
			if c := h.shown[y*h.width+x]; !c.IsContinuation() {
				sb.WriteRune(c.Rune)
			}
		}
	}
	return sb.String()
}

// Lines returns the visible screen with trailing spaces trimmed per row.
func (h *HeadlessBackend) Lines() []string {
	lines := strings.Split(h.String(), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return lines
}
