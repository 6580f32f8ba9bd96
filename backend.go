package tui

import "context"

// Backend is the output side of a terminal. The core writes cells through
// it during Render and calls Flush once per frame.
type Backend interface {
	// Style sets the style for subsequent Text and Fill calls.
	Style(s Style) error
	// Text writes s starting at p. s never wraps.
	Text(p Point, s string) error
	// Fill paints every cell of r with ch.
	Fill(r Rect, ch rune) error
	// Flush presents everything written since the last Flush.
	Flush() error
	// Reset clears the screen and forgets any cached state.
	Reset() error
	// Exit restores the terminal. The backend is unusable afterwards.
	Exit(code int)
}

// InputSource delivers terminal events. ReadEvent blocks until an event
// arrives or ctx is done.
type InputSource interface {
	ReadEvent(ctx context.Context) (Event, error)
}

// Sizer reports the terminal size.
type Sizer interface {
	Size() Size
}
