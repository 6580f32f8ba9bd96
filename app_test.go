package tui

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

var ctrlC = KeyEvent{Key: KeyRune, Rune: 'c', Mod: ModCtrl}

// outputOnly hides the input side of a backend.
type outputOnly struct {
	Backend
}

func newAppCore(t *testing.T, w *testWidget) (*Core, NodeID) {
	t.Helper()
	c := NewCore()
	root := mustAdd(t, c, "root", w)
	if err := c.SetRoot(root); err != nil {
		t.Fatal(err)
	}
	return c, root
}

func mustApp(t *testing.T, c *Core, b Backend, opts ...AppOption) *App {
	t.Helper()
	a, err := NewApp(c, b, opts...)
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	return a
}

func runApp(a *App) <-chan error {
	errc := make(chan error, 1)
	go func() { errc <- a.Run(context.Background()) }()
	return errc
}

func wait[T any](t *testing.T, ch <-chan T, what string) T {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %s", what)
	}
	var zero T
	return zero
}

func TestNewApp_Options(t *testing.T) {
	type tc struct {
		backend func() Backend
		opts    []AppOption
		wantErr bool
	}

	headless := func() Backend { return NewHeadlessBackend(4, 2) }
	noInput := func() Backend { return outputOnly{NewHeadlessBackend(4, 2)} }

	tests := map[string]tc{
		"defaults":              {backend: headless},
		"frame rate zero":       {backend: headless, opts: []AppOption{WithFrameRate(0)}, wantErr: true},
		"frame rate too high":   {backend: headless, opts: []AppOption{WithFrameRate(241)}, wantErr: true},
		"frame rate max":        {backend: headless, opts: []AppOption{WithFrameRate(240)}},
		"queue size zero":       {backend: headless, opts: []AppOption{WithEventQueueSize(0)}, wantErr: true},
		"nil input":             {backend: headless, opts: []AppOption{WithInput(nil)}, wantErr: true},
		"negative screen":       {backend: headless, opts: []AppOption{WithScreenSize(-1, 2)}, wantErr: true},
		"no input source":       {backend: noInput, wantErr: true},
		"explicit input source": {backend: noInput, opts: []AppOption{WithInput(ChanInput(nil))}},
		"nil backend":           {backend: func() Backend { return nil }, wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			a, err := NewApp(NewCore(), tt.backend(), tt.opts...)
			if tt.wantErr {
				if err == nil {
					t.Error("NewApp succeeded, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewApp: %v", err)
			}
			if _, err := uuid.Parse(a.Session()); err != nil {
				t.Errorf("session %q is not a uuid: %v", a.Session(), err)
			}
		})
	}

	if _, err := NewApp(nil, NewHeadlessBackend(1, 1)); err == nil {
		t.Error("NewApp accepted a nil core")
	}
}

func TestApp_CtrlCQuits(t *testing.T) {
	var log []string
	c, _ := newAppCore(t, &testWidget{text: "hi", log: &log})
	h := NewHeadlessBackend(6, 2)
	a := mustApp(t, c, h)

	h.Send(ctrlC)
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if diff := cmp.Diff([]string{"hi", ""}, h.Lines()); diff != "" {
		t.Errorf("screen mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"mount root", "event root"}, log); diff != "" {
		t.Errorf("log mismatch (-want +got):\n%s", diff)
	}
	if exited, code := h.Exited(); !exited || code != 0 {
		t.Errorf("Exited = %v, %d; want true, 0", exited, code)
	}
}

func TestApp_WithoutQuitKey(t *testing.T) {
	var log []string
	w := &testWidget{log: &log, onEvent: func(ev Event, ctx *Context) Outcome {
		if k, ok := ev.(KeyEvent); ok && k.Key == KeyRune && k.Rune == 'x' {
			ctx.Quit()
			return Handled
		}
		return Ignored
	}}
	c, _ := newAppCore(t, w)
	h := NewHeadlessBackend(4, 1)
	a := mustApp(t, c, h, WithoutQuitKey())

	h.Send(ctrlC, KeyEvent{Key: KeyRune, Rune: 'x'})
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if diff := cmp.Diff([]string{"mount root", "event root", "event root"}, log); diff != "" {
		t.Errorf("log mismatch (-want +got):\n%s", diff)
	}
}

func TestApp_QueueUpdate(t *testing.T) {
	w := &testWidget{text: "hi"}
	rendered := make(chan struct{})
	var once sync.Once
	w.draw = func(*RenderContext) error {
		if w.text == "yo" {
			once.Do(func() { close(rendered) })
		}
		return nil
	}
	c, root := newAppCore(t, w)
	h := NewHeadlessBackend(4, 1)
	a := mustApp(t, c, h)

	errc := runApp(a)
	if !a.QueueUpdate(func(c *Core) {
		w.text = "yo"
		c.Taint(root)
	}) {
		t.Fatal("QueueUpdate dropped the update")
	}
	wait(t, rendered, "updated frame")
	a.Quit()
	if err := wait(t, errc, "Run"); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if diff := cmp.Diff([]string{"yo"}, h.Lines()); diff != "" {
		t.Errorf("screen mismatch (-want +got):\n%s", diff)
	}
}

func TestApp_QueueUpdateFull(t *testing.T) {
	c, _ := newAppCore(t, &testWidget{})
	a := mustApp(t, c, NewHeadlessBackend(1, 1), WithEventQueueSize(1))
	if !a.QueueUpdate(func(*Core) {}) {
		t.Fatal("first update dropped")
	}
	if a.QueueUpdate(func(*Core) {}) {
		t.Error("update accepted by a full queue")
	}
}

// pollWidget reports every Poll and asks for more until it has been polled
// three times.
type pollWidget struct {
	testWidget
	polled chan int
	count  int
}

func (w *pollWidget) OnMount(ctx *Context) error {
	ctx.SchedulePoll(0)
	return nil
}

func (w *pollWidget) Poll(*Context) (time.Duration, bool) {
	w.count++
	w.polled <- w.count
	return 5 * time.Millisecond, w.count < 3
}

func TestApp_Polls(t *testing.T) {
	w := &pollWidget{polled: make(chan int, 4)}
	w.spec = DefaultLayoutSpec()
	c := NewCore()
	root, err := c.Add("root", w)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.SetRoot(root); err != nil {
		t.Fatal(err)
	}
	a := mustApp(t, c, NewHeadlessBackend(2, 1))

	errc := runApp(a)
	for want := 1; want <= 3; want++ {
		if got := wait(t, w.polled, "poll"); got != want {
			t.Errorf("poll %d reported count %d", want, got)
		}
	}
	select {
	case n := <-w.polled:
		t.Errorf("polled a %dth time after declining", n)
	case <-time.After(30 * time.Millisecond):
	}
	a.Quit()
	if err := wait(t, errc, "Run"); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestApp_Resize(t *testing.T) {
	w := &testWidget{text: "hi"}
	resized := make(chan struct{})
	var once sync.Once
	w.draw = func(rc *RenderContext) error {
		if rc.Size().Width == 12 {
			once.Do(func() { close(resized) })
		}
		return nil
	}
	c, _ := newAppCore(t, w)
	h := NewHeadlessBackend(6, 2)
	a := mustApp(t, c, h)

	errc := runApp(a)
	h.Resize(12, 4)
	wait(t, resized, "frame at the new size")
	a.Quit()
	if err := wait(t, errc, "Run"); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if n := h.Calls("reset"); n != 1 {
		t.Errorf("reset called %d times, want 1", n)
	}
	if diff := cmp.Diff([]string{"hi", "", "", ""}, h.Lines()); diff != "" {
		t.Errorf("screen mismatch (-want +got):\n%s", diff)
	}
}

func TestApp_ContextCancel(t *testing.T) {
	c, _ := newAppCore(t, &testWidget{})
	h := NewHeadlessBackend(2, 1)
	a := mustApp(t, c, h)

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- a.Run(ctx) }()
	cancel()
	if err := wait(t, errc, "Run"); err != nil {
		t.Errorf("Run = %v after cancel, want nil", err)
	}
	if exited, _ := h.Exited(); !exited {
		t.Error("backend not restored")
	}
}

func TestApp_QuitWithCode(t *testing.T) {
	var got []error
	c, _ := newAppCore(t, &testWidget{text: "x"})
	h := NewHeadlessBackend(2, 1)
	h.FailOn("flush", 1, ErrInjected)
	a := mustApp(t, c, h, WithErrorHandler(func(err error) { got = append(got, err) }))

	a.QuitWithCode(3)
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if exited, code := h.Exited(); !exited || code != 3 {
		t.Errorf("Exited = %v, %d; want true, 3", exited, code)
	}
	if len(got) != 1 || !IsKind(got[0], KindRender) || !errors.Is(got[0], ErrInjected) {
		t.Errorf("error handler got %v, want one render error", got)
	}
}

func TestApp_InputEnds(t *testing.T) {
	c, _ := newAppCore(t, &testWidget{text: "hi"})
	h := NewHeadlessBackend(5, 1)
	ch := make(chan Event)
	close(ch)
	a := mustApp(t, c, outputOnly{h}, WithInput(ChanInput(ch)), WithScreenSize(5, 1))

	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if diff := cmp.Diff([]string{"hi"}, h.Lines()); diff != "" {
		t.Errorf("screen mismatch (-want +got):\n%s", diff)
	}
}

func TestApp_InputError(t *testing.T) {
	boom := errors.New("boom")
	c, _ := newAppCore(t, &testWidget{})
	a := mustApp(t, c, NewHeadlessBackend(2, 1), WithInput(InputFunc(func(context.Context) (Event, error) {
		return nil, boom
	})))

	if err := a.Run(context.Background()); !errors.Is(err, boom) {
		t.Errorf("Run = %v, want boom", err)
	}
}
