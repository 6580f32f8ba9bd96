package tui

import (
	"time"

	"go.uber.org/zap"
)

// Core owns the node arena and the layout, focus and render state built on
// it. It is not safe for concurrent use: one goroutine (the UI goroutine of
// an App, or a test) drives every call.
type Core struct {
	arena  arena
	root   NodeID
	styles *StyleMap
	logger *zap.Logger

	size  Size
	buf   *Buffer
	prev  coverage
	fresh bool // next sweep repaints and clears everything

	styleVersion uint64 // StyleMap version of the last presented frame

	focus    NodeID
	focusGen uint64
	tieBreak FocusTieBreak

	keys   keyTable
	layers styleLayers
	polls  []PollRequest
	onQuit func()
}

// Option configures a Core.
type Option func(*Core)

// WithLogger sets the logger used for diagnostics. The default discards.
func WithLogger(l *zap.Logger) Option {
	return func(c *Core) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithStyleMap sets the style rules used for lookups during render.
func WithStyleMap(m *StyleMap) Option {
	return func(c *Core) {
		if m != nil {
			c.styles = m
		}
	}
}

// WithFocusTieBreak replaces the rule that orders directional focus
// candidates at equal distance.
func WithFocusTieBreak(fn FocusTieBreak) Option {
	return func(c *Core) {
		if fn != nil {
			c.tieBreak = fn
		}
	}
}

// NewCore returns an empty Core.
func NewCore(opts ...Option) *Core {
	c := &Core{
		styles:   NewStyleMap(),
		logger:   zap.NewNop(),
		focusGen: 1,
		tieBreak: PreOrderTieBreak,
		fresh:    true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Styles returns the style map used during render.
func (c *Core) Styles() *StyleMap {
	return c.styles
}

// SetStyles replaces the style map and repaints everything on the next
// sweep.
func (c *Core) SetStyles(m *StyleMap) {
	if m == nil {
		return
	}
	c.styles = m
	c.fresh = true
}

// Invalidate makes the next Render repaint every cell, for use after the
// terminal was cleared behind the core's back.
func (c *Core) Invalidate() {
	c.fresh = true
}

// Logger returns the core's logger.
func (c *Core) Logger() *zap.Logger {
	return c.logger
}

// Size returns the screen size of the last layout pass.
func (c *Core) Size() Size {
	return c.size
}

// PollRequest asks for a node's Poll hook to run after Delay.
type PollRequest struct {
	ID    NodeID
	Delay time.Duration
}

// SchedulePoll queues a poll request for id. Requests are collected with
// TakePollRequests; an App forwards them to its scheduler.
func (c *Core) SchedulePoll(id NodeID, d time.Duration) {
	if _, ok := c.arena.get(id); !ok {
		return
	}
	c.polls = append(c.polls, PollRequest{ID: id, Delay: max(0, d)})
}

// TakePollRequests returns and clears the queued poll requests.
func (c *Core) TakePollRequests() []PollRequest {
	out := c.polls
	c.polls = nil
	return out
}

// Poll runs the Poll hook of id, if it is still alive and mounted, and
// queues the follow-up request it asks for.
func (c *Core) Poll(id NodeID) {
	n, ok := c.arena.get(id)
	if !ok || !n.mounted {
		return
	}
	if next, again := n.widget.Poll(c.contextFor(n)); again {
		c.SchedulePoll(id, next)
	}
}

// SetQuitHandler sets what Context.Quit calls.
func (c *Core) SetQuitHandler(fn func()) {
	c.onQuit = fn
}

func (c *Core) lookup(id NodeID) (*node, error) {
	n, ok := c.arena.get(id)
	if !ok {
		return nil, notFound(id)
	}
	return n, nil
}

// taint marks n for re-render on the next sweep.
func (c *Core) taint(n *node) {
	n.tainted = true
}

// Taint marks id for re-render, and for re-measure on the next layout
// pass. Call it after changing widget state. Unknown ids are ignored.
func (c *Core) Taint(id NodeID) {
	if n, ok := c.arena.get(id); ok {
		c.invalidate(n)
	}
}

// invalidate taints n and makes the solver measure it again.
func (c *Core) invalidate(n *node) {
	c.taint(n)
	n.solver.MarkDirty()
}
