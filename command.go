package tui

import (
	"fmt"

	"go.uber.org/multierr"
)

// FindNodes returns the attached nodes whose full path matches pattern, in
// pre-order. Pattern syntax is that of StyleMap rules, except that a
// pattern must match through the last component of a node's path: "/"
// finds the root, "/a/b" the node b under root a, and "b" every node
// named b.
func (c *Core) FindNodes(pattern string) ([]NodeID, error) {
	pat, err := parsePattern(pattern)
	if err != nil {
		return nil, err
	}
	var out []NodeID
	var names []string
	var walk func(n *node)
	walk = func(n *node) {
		names = append(names, n.name)
		defer func() { names = names[:len(names)-1] }()

		if pat.root {
			if n.id == c.root {
				out = append(out, n.id)
			}
		} else if spec, ok := pat.match(names); ok && spec == len(names) {
			out = append(out, n.id)
		}
		for _, cid := range n.children {
			if child, ok := c.arena.get(cid); ok {
				walk(child)
			}
		}
	}
	if root, ok := c.arena.get(c.root); ok {
		walk(root)
	}
	return out, nil
}

// Invoke runs a named command on every node matching pattern whose widget
// implements Commander, and returns their results in pre-order. Failures
// do not stop the remaining nodes; they are returned together.
func (c *Core) Invoke(pattern, command string, args ...any) ([]any, error) {
	ids, err := c.FindNodes(pattern)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, newError(KindNodeNotFound, "no node matches %q", pattern)
	}

	var results []any
	var errs error
	handled := 0
	for _, id := range ids {
		// An earlier command may have removed this node.
		n, ok := c.arena.get(id)
		if !ok {
			continue
		}
		cmd, ok := n.widget.(Commander)
		if !ok {
			continue
		}
		handled++
		res, err := cmd.Command(c.contextFor(n), command, args...)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s %s: %w", c.pathString(id), command, err))
			continue
		}
		results = append(results, res)
	}
	if handled == 0 {
		return nil, newError(KindInvalid, "no node matching %q accepts commands", pattern)
	}
	return results, errs
}
