package tui

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// sweep is the state of one Render call.
type sweep struct {
	core     *Core
	buf      *Buffer
	cov      coverage
	full     bool
	rendered []*node
	replayed int
	errs     error
}

// Render paints the attached tree into b, sending only what changed since
// the last successful call.
//
// Nodes whose inputs are unchanged replay their previous paint instead of
// calling Widget.Render. A widget that fails drops its subtree from this
// frame; the frame is still presented and the failures are returned
// together as a KindWidget error. A backend failure aborts the frame
// before Flush and is returned as a KindRender error; the next call
// repaints everything. Changes to the style map also repaint everything.
func (c *Core) Render(b Backend) error {
	if c.buf == nil || c.buf.Size() != c.size {
		c.buf = NewBuffer(c.size.Width, c.size.Height)
		c.fresh = true
	}
	if c.styles.version != c.styleVersion {
		c.fresh = true
	}
	s := &sweep{core: c, buf: c.buf, cov: newCoverage(c.size), full: c.fresh}
	c.buf.Reset()

	if root, ok := c.arena.get(c.root); ok {
		if _, visible := c.attached(root); visible {
			if pl := c.rootPlacement(root); !pl.clip.IsEmpty() {
				c.layers.reset(0)
				s.visit(root, pl, false)
			}
		}
	}

	prev := c.prev
	if s.full || prev.size() != c.size {
		prev = fullCoverage(c.size)
		c.buf.Invalidate()
	}
	if err := s.present(b, prev.andNot(s.cov)); err != nil {
		c.fresh = true
		return wrapError(KindRender, err, "present frame")
	}

	c.buf.Swap()
	c.prev = s.cov
	c.styleVersion = c.styles.version
	c.fresh = false
	for _, n := range s.rendered {
		n.tainted = false
	}
	c.logger.Debug("frame rendered",
		zap.Int("rendered", len(s.rendered)),
		zap.Int("replayed", s.replayed),
		zap.Int("covered", s.cov.count()),
	)
	if s.errs != nil {
		return wrapError(KindWidget, s.errs, "%d widget(s) failed", len(multierr.Errors(s.errs)))
	}
	return nil
}

// visit paints n and its subtree. forced is set when the parent or an
// overlapping earlier sibling re-rendered.
func (s *sweep) visit(n *node, pl placement, forced bool) {
	c := s.core
	onPath := c.IsOnFocusPath(n.id)

	type childPlace struct {
		n  *node
		pl placement
	}
	var kids []childPlace
	childMoved := false
	for _, cid := range n.children {
		child, ok := c.arena.get(cid)
		if !ok {
			continue
		}
		cpl := childPlacement(n, pl, child)
		if child.hidden || cpl.clip.IsEmpty() {
			if child.painted {
				childMoved = true
				child.painted = false
			}
			continue
		}
		if cpl.clip != child.clip {
			childMoved = true
		}
		kids = append(kids, childPlace{n: child, pl: cpl})
	}

	redo := s.full || forced || n.tainted || !n.painted || childMoved ||
		n.clip != pl.clip || n.screen != pl.screen || n.onPath != onPath
	n.clip, n.screen, n.onPath = pl.clip, pl.screen, onPath

	depth := c.layers.mark()
	defer c.layers.reset(depth)
	c.layers.push(n.name)

	if redo {
		rc := &RenderContext{
			core:    c,
			info:    n.info(),
			screen:  pl.screen,
			clip:    pl.clip,
			focused: c.IsFocused(n.id),
			onPath:  onPath,
			layers:  &c.layers,
		}
		s.rendered = append(s.rendered, n)
		if err := n.widget.Render(rc); err != nil {
			n.ops, n.layers, n.painted = nil, nil, false
			s.errs = multierr.Append(s.errs, fmt.Errorf("render %s: %w", c.pathString(n.id), err))
			return
		}
		n.ops, n.layers, n.painted = rc.ops, rc.pushed, true
	} else {
		s.replayed++
		for _, name := range n.layers {
			c.layers.push(name)
		}
	}
	for _, op := range n.ops {
		op.apply(s.buf, s.cov)
	}

	var dirty []Rect
	for _, k := range kids {
		oldClip := k.n.clip
		force := redo
		for _, r := range dirty {
			if r.Intersects(k.pl.clip) || r.Intersects(oldClip) {
				force = true
				break
			}
		}
		before := len(s.rendered)
		s.visit(k.n, k.pl, force)
		if len(s.rendered) > before {
			dirty = append(dirty, k.pl.clip, oldClip)
		}
	}
}

// present clears cells nobody painted this frame, writes the cells that
// differ from the front grid and flushes.
func (s *sweep) present(b Backend, cleared coverage) error {
	if cleared.count() > 0 {
		if err := b.Style(NewStyle()); err != nil {
			return err
		}
		if err := cleared.Runs(func(l Line) error { return b.Fill(l.Rect(), ' ') }); err != nil {
			return err
		}
	}
	if err := s.diff(b); err != nil {
		return err
	}
	return b.Flush()
}

// diff emits covered cells that differ from the front grid, one Style and
// Text call per run of same-styled cells.
func (s *sweep) diff(b Backend) error {
	buf := s.buf
	changed := func(x, y int) bool {
		i := buf.idx(x, y)
		if !buf.back[i].Equal(buf.front[i]) {
			return true
		}
		return buf.back[i].Width == 2 && x+1 < buf.width && !buf.back[i+1].Equal(buf.front[i+1])
	}

	var sb strings.Builder
	for y := 0; y < buf.height; y++ {
		for x := 0; x < buf.width; {
			cell := buf.Cell(x, y)
			if !s.cov.has(x, y) || cell.IsContinuation() || !changed(x, y) {
				x++
				continue
			}
			start, style := x, cell.Style
			sb.Reset()
			for x < buf.width {
				cell := buf.Cell(x, y)
				if !s.cov.has(x, y) || cell.IsContinuation() || !cell.Style.Equal(style) || !changed(x, y) {
					break
				}
				sb.WriteRune(cell.Rune)
				x += int(cell.Width)
			}
			if err := b.Style(style); err != nil {
				return err
			}
			if err := b.Text(Point{X: start, Y: y}, sb.String()); err != nil {
				return err
			}
		}
	}
	return nil
}
