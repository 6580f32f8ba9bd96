package tui

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// App runs a Core against a terminal. The goroutine that calls Run is the
// UI goroutine: it alone touches the Core, consuming a queue fed by an
// input reader goroutine, a poll scheduler goroutine and QueueUpdate.
type App struct {
	core    *Core
	backend Backend
	input   InputSource
	sched   *scheduler
	logger  *zap.Logger
	session string

	// Configuration (set via options)
	frameRate int
	queueSize int
	size      Size
	quitKey   bool
	onError   func(error)

	queue    chan func()
	quit     atomic.Bool
	exitCode atomic.Int32
}

// NewApp wires core to backend. Input comes from the backend when it
// implements InputSource, unless WithInput says otherwise.
func NewApp(core *Core, backend Backend, opts ...AppOption) (*App, error) {
	if core == nil || backend == nil {
		return nil, fmt.Errorf("app needs a core and a backend")
	}
	a := &App{
		core:      core,
		backend:   backend,
		sched:     newScheduler(),
		session:   uuid.NewString(),
		frameRate: 60,
		queueSize: 256,
		quitKey:   true,
	}
	if src, ok := backend.(InputSource); ok {
		a.input = src
	}
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}
	if a.input == nil {
		return nil, fmt.Errorf("no input source: backend does not read events and WithInput was not given")
	}

	a.logger = core.Logger().With(zap.String("session", a.session))
	core.logger = a.logger
	if a.onError == nil {
		a.onError = func(err error) { a.logger.Warn("frame failed", zap.Error(err)) }
	}
	a.queue = make(chan func(), a.queueSize)
	core.SetQuitHandler(a.Quit)
	return a, nil
}

// Core returns the core driven by the app. Only touch it from the UI
// goroutine, for example inside QueueUpdate.
func (a *App) Core() *Core {
	return a.core
}

// Session returns the id attached to every log line of this app.
func (a *App) Session() string {
	return a.session
}

// Quit stops Run after the current sweep. Safe to call from any goroutine.
func (a *App) Quit() {
	a.quit.Store(true)
	select {
	case a.queue <- func() {}:
	default:
	}
}

// QuitWithCode is Quit with the code passed to Backend.Exit.
func (a *App) QuitWithCode(code int) {
	a.exitCode.Store(int32(code))
	a.Quit()
}

// QueueUpdate runs fn on the UI goroutine before the next sweep. Safe to
// call from any goroutine. Returns false if the queue is full and the
// update was dropped.
func (a *App) QueueUpdate(fn func(*Core)) bool {
	select {
	case a.queue <- func() { fn(a.core) }:
		return true
	default:
		a.logger.Warn("update dropped, queue full", zap.Int("capacity", cap(a.queue)))
		return false
	}
}

// screenSize returns the size to lay out for.
func (a *App) screenSize() Size {
	if s, ok := a.backend.(Sizer); ok {
		return s.Size()
	}
	return a.size
}
