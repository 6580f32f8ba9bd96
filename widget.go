package tui

import "time"

// Widget is the behavior attached to a node. The core calls these hooks on
// the UI goroutine only.
type Widget interface {
	// Measure reports the natural content size under c. Used for leaves and
	// for axes sized Measured.
	Measure(c Constraints) Size

	// Canvas reports the scrollable size of the content given the content
	// box. Results smaller than the box are raised to it.
	Canvas(content Size) Size

	// LayoutSpec is re-read on every layout pass.
	LayoutSpec() LayoutSpec

	// AcceptFocus is re-evaluated whenever focus moves.
	AcceptFocus(info NodeInfo) bool

	// Render paints the node. The context is read-only with respect to the
	// tree.
	Render(ctx *RenderContext) error

	// OnMount runs once, during the first layout pass that sees the node.
	OnMount(ctx *Context) error

	// OnUnmount runs when the node is removed, children before parents.
	OnUnmount(ctx *Context)

	// HandleEvent receives keys on the focus path and mouse events at the
	// pointer. Ignored lets the event bubble to the parent.
	HandleEvent(ev Event, ctx *Context) Outcome

	// Poll runs when a delay requested with Context.SchedulePoll expires.
	// Returning ok reschedules after the returned delay.
	Poll(ctx *Context) (next time.Duration, ok bool)
}

// BaseWidget provides defaults for every Widget method. Embed it and
// override what you need.
type BaseWidget struct{}

func (BaseWidget) Measure(Constraints) Size            { return Size{} }
func (BaseWidget) Canvas(content Size) Size            { return content }
func (BaseWidget) LayoutSpec() LayoutSpec              { return DefaultLayoutSpec() }
func (BaseWidget) AcceptFocus(NodeInfo) bool           { return false }
func (BaseWidget) Render(*RenderContext) error         { return nil }
func (BaseWidget) OnMount(*Context) error              { return nil }
func (BaseWidget) OnUnmount(*Context)                  {}
func (BaseWidget) HandleEvent(Event, *Context) Outcome { return Ignored }
func (BaseWidget) Poll(*Context) (time.Duration, bool) { return 0, false }

// Commander is implemented by widgets that accept named commands through
// Core.Invoke.
type Commander interface {
	Command(ctx *Context, name string, args ...any) (any, error)
}
