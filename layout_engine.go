package tui

import (
	"strings"

	"github.com/grindlemire/tuicore/internal/layout"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Layout runs a layout pass over the attached tree for a screen of the
// given size. New nodes are mounted first. A node whose LayoutSpec no
// longer validates is laid out empty along with its subtree; the rest of
// the tree is unaffected. Mount and spec errors are returned together.
func (c *Core) Layout(screen Size) error {
	screen = screen.NonNegative()
	if screen != c.size {
		c.logger.Debug("screen resized", zap.Int("width", screen.Width), zap.Int("height", screen.Height))
		c.size = screen
		c.fresh = true
	}
	root, ok := c.arena.get(c.root)
	if !ok {
		return nil
	}

	var errs error
	c.mountAll(root, &errs)
	c.snapshot(root, &errs)
	layout.Calculate(root.solver, screen)
	c.buildViews(root)
	return errs
}

// mountAll calls OnMount on attached nodes not yet mounted, in pre-order.
// Children are read after the parent's hook so nodes it attaches are
// mounted in the same pass.
func (c *Core) mountAll(n *node, errs *error) {
	if !n.mounted {
		n.mounted = true
		if err := n.widget.OnMount(c.contextFor(n)); err != nil {
			*errs = multierr.Append(*errs, wrapError(KindLayout, err, "mount %s", c.pathString(n.id)))
		}
	}
	for i := 0; i < len(n.children); i++ {
		if child, ok := c.arena.get(n.children[i]); ok {
			c.mountAll(child, errs)
		}
	}
}

// snapshot re-reads every attached node's LayoutSpec and feeds the solver.
func (c *Core) snapshot(n *node, errs *error) {
	spec := n.widget.LayoutSpec()
	if err := spec.Validate(); err != nil {
		if !n.invalid {
			n.invalid = true
			n.solver.SetHidden(true)
			c.taintParent(n)
		}
		*errs = multierr.Append(*errs, wrapError(KindLayout, err, "node %s", c.pathString(n.id)))
	} else {
		if n.invalid {
			n.invalid = false
			n.solver.SetHidden(n.hidden)
			c.taintParent(n)
		}
		if spec != n.spec {
			n.spec = spec
			n.solver.SetStyle(spec)
		}
	}
	for _, cid := range n.children {
		if child, ok := c.arena.get(cid); ok {
			c.snapshot(child, errs)
		}
	}
}

// buildViews copies solver output into node views, keeping scroll offsets.
func (c *Core) buildViews(n *node) {
	var v View
	if !n.hidden && !n.invalid {
		v = viewFromLayout(n.solver.Layout, n.view.TL)
	}
	if v != n.view {
		n.view = v
		c.taint(n)
	}
	for _, cid := range n.children {
		if child, ok := c.arena.get(cid); ok {
			c.buildViews(child)
		}
	}
}

func (c *Core) taintParent(n *node) {
	if p, ok := c.arena.get(n.parent); ok {
		c.taint(p)
	}
}

func (c *Core) pathString(id NodeID) string {
	return "/" + strings.Join(c.Path(id), "/")
}
