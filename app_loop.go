package tui

import (
	"context"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Run drives the app until Quit is called, input ends or ctx is done. The
// backend is restored with Exit before Run returns.
func (a *App) Run(ctx context.Context) (err error) {
	defer func() { a.backend.Exit(int(a.exitCode.Load())) }()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return readInput(gctx, a.input, func(ctx context.Context, ev Event) error {
			return a.send(ctx, func() { a.handleEvent(ev) })
		}, a.Quit)
	})
	g.Go(func() error {
		return a.sched.run(gctx, func(ctx context.Context, id NodeID) error {
			return a.send(ctx, func() { a.core.Poll(id) })
		})
	})

	a.logger.Info("app started", zap.Int("frame_rate", a.frameRate))
	loopErr := a.loop(gctx)
	cancel()
	err = multierr.Append(loopErr, g.Wait())
	a.logger.Info("app stopped", zap.Error(err))
	return err
}

// loop is the UI goroutine: wait for work, pace, drain, sweep.
func (a *App) loop(ctx context.Context) error {
	limiter := rate.NewLimiter(rate.Limit(a.frameRate), 1)
	a.frame()
	for !a.quit.Load() {
		select {
		case <-ctx.Done():
			return nil
		case fn := <-a.queue:
			fn()
		}
		if err := limiter.Wait(ctx); err != nil {
			return nil
		}
	drain:
		for {
			select {
			case fn := <-a.queue:
				fn()
			default:
				break drain
			}
		}
		if a.quit.Load() {
			break
		}
		a.frame()
	}
	return nil
}

// send hands fn to the UI goroutine, blocking while the queue is full.
func (a *App) send(ctx context.Context, fn func()) error {
	select {
	case a.queue <- fn:
		return nil
	case <-ctx.Done():
		return nil
	}
}

// frame runs one layout and render sweep and hands new poll requests to
// the scheduler.
func (a *App) frame() {
	if err := a.core.Layout(a.screenSize()); err != nil {
		a.onError(err)
	}
	if err := a.core.Render(a.backend); err != nil {
		a.onError(err)
	}
	a.sched.add(a.core.TakePollRequests())
}

func (a *App) handleEvent(ev Event) {
	if r, ok := ev.(ResizeEvent); ok {
		a.size = Size{Width: r.Width, Height: r.Height}
		if err := a.backend.Reset(); err != nil {
			a.onError(wrapError(KindRender, err, "reset after resize"))
		}
		a.core.Invalidate()
		return
	}
	out := a.core.Dispatch(ev)
	if k, ok := ev.(KeyEvent); ok && out == Ignored && a.quitKey && k.IsChord('c', ModCtrl) {
		a.Quit()
	}
}
