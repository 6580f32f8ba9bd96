package tui

import (
	"fmt"

	"github.com/grindlemire/tuicore/internal/layout"
)

// NodeID is a generation-checked handle to a node in a Core. The zero value
// never refers to a node, and a handle goes stale once its node is removed.
type NodeID struct {
	index uint32
	gen   uint32
}

// IsZero reports whether id is the zero handle.
func (id NodeID) IsZero() bool {
	return id == NodeID{}
}

func (id NodeID) String() string {
	if id.IsZero() {
		return "#none"
	}
	return fmt.Sprintf("#%d.%d", id.index, id.gen)
}

// node is the arena record behind a NodeID.
type node struct {
	id       NodeID
	name     string
	widget   Widget
	parent   NodeID
	children []NodeID

	solver  *layout.Node
	spec    LayoutSpec
	invalid bool // last LayoutSpec snapshot failed validation
	view    View

	hidden   bool
	mounted  bool
	focusGen uint64

	// Render bookkeeping from the last sweep.
	tainted bool
	painted bool
	onPath  bool
	screen  Rect
	clip    Rect
	ops     []paintOp
	layers  []string
}

func (n *node) info() NodeInfo {
	return NodeInfo{
		ID:       n.id,
		Name:     n.name,
		Children: len(n.children),
		View:     n.view,
	}
}

// NodeInfo describes a node to widget hooks that must not mutate the tree.
type NodeInfo struct {
	ID       NodeID
	Name     string
	Children int
	View     View
}
