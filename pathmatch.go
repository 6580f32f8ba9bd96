package tui

import (
	"path"
	"strings"
)

// pathPattern is a parsed style or lookup pattern.
//
//	"/"       matches every path with specificity 0
//	"/a/b"    anchored: the path must start with components a, b
//	"a/b"     floating: matches any contiguous run a, b in the path
//
// Components are shell globs as understood by path.Match.
type pathPattern struct {
	raw      string
	root     bool
	anchored bool
	parts    []string
}

func parsePattern(p string) (pathPattern, error) {
	pat := pathPattern{raw: p}
	if p == "/" {
		pat.root = true
		return pat, nil
	}
	if p == "" {
		return pat, newError(KindInvalid, "empty pattern")
	}
	pat.anchored = strings.HasPrefix(p, "/")
	for _, part := range strings.Split(strings.TrimPrefix(p, "/"), "/") {
		if part == "" {
			return pat, newError(KindInvalid, "empty component in pattern %q", p)
		}
		if _, err := path.Match(part, ""); err != nil {
			return pat, wrapError(KindInvalid, err, "bad glob %q in pattern %q", part, p)
		}
		pat.parts = append(pat.parts, part)
	}
	return pat, nil
}

// match reports whether the pattern matches names and, if so, its
// specificity: the index just past the deepest matched component.
func (p pathPattern) match(names []string) (int, bool) {
	if p.root {
		return 0, true
	}
	n := len(p.parts)
	if p.anchored {
		if p.matchAt(names, 0) {
			return n, true
		}
		return 0, false
	}
	for start := len(names) - n; start >= 0; start-- {
		if p.matchAt(names, start) {
			return start + n, true
		}
	}
	return 0, false
}

func (p pathPattern) matchAt(names []string, start int) bool {
	if start < 0 || start+len(p.parts) > len(names) {
		return false
	}
	for i, part := range p.parts {
		// Patterns were validated in parsePattern, so the error is nil.
		if ok, _ := path.Match(part, names[start+i]); !ok {
			return false
		}
	}
	return true
}

func (p pathPattern) String() string {
	return p.raw
}

// validName reports whether s can be used as a node or layer name: it must
// be non-empty and free of separators and glob metacharacters.
func validName(s string) error {
	if s == "" {
		return newError(KindInvalid, "empty name")
	}
	if strings.ContainsAny(s, `/*?[]\`) {
		return newError(KindInvalid, "name %q contains '/' or glob characters", s)
	}
	return nil
}
