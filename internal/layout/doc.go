// Package layout holds the integer cell geometry and the constraint solver
// used by the tui core.
//
// Geometry types ([Rect], [Point], [Size], [Edges], [Extent], [Line],
// [Frame]) are plain values. The solver ([Calculate]) arranges a tree of
// [Node] values: each container places its children inside its own canvas
// using row, column, grid or stack flow. Widgets whose size depends on their
// content take part through a [MeasureFunc].
//
// Types are re-exported through the root tui package for public consumption.
package layout
