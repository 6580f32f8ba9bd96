package tui

import "fmt"

// Event is the base interface for all input events.
// Use a type switch to handle specific event types.
type Event interface {
	isEvent()
}

// KeyEvent represents a keyboard input event.
type KeyEvent struct {
	Key  Key
	Rune rune // set for KeyRune
	Mod  Modifier
}

func (KeyEvent) isEvent() {}

// Is checks if the event matches a key with exactly the given modifiers.
// With no modifiers only the key is compared.
func (e KeyEvent) Is(key Key, mods ...Modifier) bool {
	if e.Key != key {
		return false
	}
	if len(mods) == 0 {
		return true
	}
	var combined Modifier
	for _, m := range mods {
		combined |= m
	}
	return e.Mod == combined
}

// IsChord reports whether the event is the given character with the given
// modifiers, e.g. IsChord('c', ModCtrl).
func (e KeyEvent) IsChord(r rune, mod Modifier) bool {
	return e.Key == KeyRune && e.Rune == r && e.Mod == mod
}

func (e KeyEvent) String() string {
	name := e.Key.String()
	if e.Key == KeyRune {
		name = fmt.Sprintf("%q", e.Rune)
	}
	if e.Mod != ModNone {
		return e.Mod.String() + "+" + name
	}
	return name
}

// ResizeEvent is emitted when the terminal is resized.
type ResizeEvent struct {
	Width, Height int
}

func (ResizeEvent) isEvent() {}

// MouseButton represents which mouse button was involved in an event.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseMiddle
	MouseRight
	MouseWheelUp
	MouseWheelDown
	MouseWheelLeft
	MouseWheelRight
	MouseNone // motion without a button
)

// MouseAction represents the type of mouse action.
type MouseAction int

const (
	MousePress MouseAction = iota
	MouseRelease
	MouseDrag
)

// MouseEvent represents a mouse input event in screen cells.
type MouseEvent struct {
	Button MouseButton
	Action MouseAction
	X, Y   int
	Mod    Modifier
}

func (MouseEvent) isEvent() {}

// Point returns the event position.
func (e MouseEvent) Point() Point {
	return Point{X: e.X, Y: e.Y}
}

// Outcome reports what a widget did with an event.
type Outcome uint8

const (
	// Ignored lets the event bubble to the parent.
	Ignored Outcome = iota
	// Handled stops bubbling and marks the handler for re-render.
	Handled
	// Consumed stops bubbling without any re-render.
	Consumed
)

func (o Outcome) String() string {
	switch o {
	case Handled:
		return "handled"
	case Consumed:
		return "consumed"
	}
	return "ignored"
}
