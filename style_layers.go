package tui

// styleLayers is the stack of names used for style lookups during a render
// sweep. A node's name is pushed when the sweep enters it, layers pushed by
// its widget follow, and everything is popped when the sweep leaves the
// node's subtree.
type styleLayers struct {
	names []string
}

func (s *styleLayers) push(name string) {
	s.names = append(s.names, name)
}

// mark returns the current depth for a later reset.
func (s *styleLayers) mark() int {
	return len(s.names)
}

func (s *styleLayers) reset(depth int) {
	s.names = s.names[:depth]
}

// path returns the current stack followed by extra, as a fresh slice.
func (s *styleLayers) path(extra ...string) []string {
	out := make([]string, 0, len(s.names)+len(extra))
	out = append(out, s.names...)
	return append(out, extra...)
}
