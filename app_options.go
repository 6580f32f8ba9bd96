package tui

import "fmt"

// AppOption is a functional option for configuring an App.
type AppOption func(*App) error

// WithFrameRate caps how often the App lays out and renders. Default is 60
// fps. Valid range is 1-240 fps.
func WithFrameRate(fps int) AppOption {
	return func(a *App) error {
		if fps < 1 {
			return fmt.Errorf("frame rate must be at least 1 fps")
		}
		if fps > 240 {
			return fmt.Errorf("frame rate cannot exceed 240 fps")
		}
		a.frameRate = fps
		return nil
	}
}

// WithEventQueueSize sets the capacity of the message queue feeding the UI
// goroutine. Default is 256. Must be at least 1.
func WithEventQueueSize(size int) AppOption {
	return func(a *App) error {
		if size < 1 {
			return fmt.Errorf("event queue size must be at least 1")
		}
		a.queueSize = size
		return nil
	}
}

// WithInput reads events from src instead of the backend.
func WithInput(src InputSource) AppOption {
	return func(a *App) error {
		if src == nil {
			return fmt.Errorf("nil input source")
		}
		a.input = src
		return nil
	}
}

// WithScreenSize fixes the layout size for backends that cannot report
// one. Resize events still override it.
func WithScreenSize(width, height int) AppOption {
	return func(a *App) error {
		if width < 0 || height < 0 {
			return fmt.Errorf("screen size %dx%d is negative", width, height)
		}
		a.size = Size{Width: width, Height: height}
		return nil
	}
}

// WithoutQuitKey stops Ctrl+C from quitting when no widget claims it.
func WithoutQuitKey() AppOption {
	return func(a *App) error {
		a.quitKey = false
		return nil
	}
}

// WithErrorHandler receives layout and render errors. The default logs
// them and keeps running.
func WithErrorHandler(fn func(error)) AppOption {
	return func(a *App) error {
		a.onError = fn
		return nil
	}
}
