package tui

import (
	"time"

	"go.uber.org/zap"
)

// Context is handed to mount, event, poll and command hooks. Unlike
// RenderContext it may change the tree. A Context is only valid on the UI
// goroutine, for the duration of the hook that received it.
type Context struct {
	core *Core
	id   NodeID
}

func (c *Core) contextFor(n *node) *Context {
	return &Context{core: c, id: n.id}
}

// Context returns a mutable context for id, for driving a node from
// outside its own hooks.
func (c *Core) Context(id NodeID) (*Context, error) {
	n, err := c.lookup(id)
	if err != nil {
		return nil, err
	}
	return c.contextFor(n), nil
}

// ID returns the node the context belongs to.
func (ctx *Context) ID() NodeID {
	return ctx.id
}

// Core returns the core that owns the node.
func (ctx *Context) Core() *Core {
	return ctx.core
}

// Info describes the node. The zero NodeInfo is returned once the node has
// been removed.
func (ctx *Context) Info() NodeInfo {
	if n, ok := ctx.core.arena.get(ctx.id); ok {
		return n.info()
	}
	return NodeInfo{}
}

// Taint schedules the node for re-render.
func (ctx *Context) Taint() {
	ctx.core.Taint(ctx.id)
}

// View returns the node's geometry from the last layout pass.
func (ctx *Context) View() View {
	v, _ := ctx.core.View(ctx.id)
	return v
}

func (ctx *Context) ScrollTo(x, y int) {
	ctx.core.ScrollTo(ctx.id, x, y)
}

func (ctx *Context) ScrollBy(dx, dy int) {
	ctx.core.ScrollBy(ctx.id, dx, dy)
}

// Focus moves focus to the node.
func (ctx *Context) Focus() error {
	return ctx.core.SetFocus(ctx.id)
}

func (ctx *Context) IsFocused() bool {
	return ctx.core.IsFocused(ctx.id)
}

// SchedulePoll asks for the node's Poll hook to run after d.
func (ctx *Context) SchedulePoll(d time.Duration) {
	ctx.core.SchedulePoll(ctx.id, d)
}

// Add inserts an unattached node, typically followed by SetChildren.
func (ctx *Context) Add(name string, w Widget) (NodeID, error) {
	return ctx.core.Add(name, w)
}

// SetChildren replaces the node's children.
func (ctx *Context) SetChildren(children ...NodeID) error {
	return ctx.core.SetChildren(ctx.id, children...)
}

// Children returns the node's children.
func (ctx *Context) Children() []NodeID {
	return ctx.core.Children(ctx.id)
}

// Quit asks the owning App to stop after the current sweep.
func (ctx *Context) Quit() {
	if ctx.core.onQuit != nil {
		ctx.core.onQuit()
	}
}

// Logger returns the core's logger tagged with the node.
func (ctx *Context) Logger() *zap.Logger {
	return ctx.core.logger.With(zap.Stringer("node", ctx.id))
}
