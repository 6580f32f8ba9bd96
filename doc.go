// Package tui is a retained-mode terminal UI core.
//
// A Core owns a tree of nodes addressed by generation-checked NodeIDs. Each
// node carries a Widget that measures, renders and handles events, and a
// LayoutSpec that the flexbox solver in internal/layout turns into a View:
// the outer box, the content box, a scrollable canvas and a scroll offset.
//
// A frame is a layout pass followed by a render sweep:
//
//	core.Layout(size)
//	core.Render(backend)
//
// Rendering is incremental. Nodes whose geometry, focus state and paint
// inputs are unchanged replay their previous paint; cells no longer
// covered by any node are cleared; only cells that differ from what the
// backend shows are written.
//
// Events go through Core.Dispatch: global key bindings first, then the
// focused node and its ancestors, then the built-in focus and scroll keys.
//
// App drives a Core against a Backend on a single UI goroutine, fed by an
// input reader, a poll scheduler and QueueUpdate.
package tui
