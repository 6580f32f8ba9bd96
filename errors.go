package tui

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures reported by the core.
type ErrorKind uint8

const (
	// KindGeometry reports invalid rectangle math, such as splitting a
	// zero-length scrollbar track.
	KindGeometry ErrorKind = iota + 1
	// KindLayout reports a malformed layout spec.
	KindLayout
	// KindFocus reports an invalid focus target.
	KindFocus
	// KindRender reports a backend I/O failure during a sweep.
	KindRender
	// KindInvalid reports a bad name or path pattern.
	KindInvalid
	// KindNodeNotFound reports a stale or unknown NodeID.
	KindNodeNotFound
	// KindAlreadyAttached reports a node that already has a different parent.
	KindAlreadyAttached
	// KindWouldCreateCycle reports an attempt to make a node its own ancestor.
	KindWouldCreateCycle
	// KindWidget reports widgets whose Render failed. The frame was still
	// presented without their subtrees.
	KindWidget
)

func (k ErrorKind) String() string {
	switch k {
	case KindGeometry:
		return "geometry"
	case KindLayout:
		return "layout"
	case KindFocus:
		return "focus"
	case KindRender:
		return "render"
	case KindInvalid:
		return "invalid"
	case KindNodeNotFound:
		return "node not found"
	case KindAlreadyAttached:
		return "already attached"
	case KindWouldCreateCycle:
		return "would create cycle"
	case KindWidget:
		return "widget"
	}
	return fmt.Sprintf("ErrorKind(%d)", uint8(k))
}

// Error is a classified error with an optional cause.
type Error struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

// Sentinels for errors.Is. Any *Error of the same kind matches.
var (
	ErrGeometry         = &Error{Kind: KindGeometry}
	ErrLayout           = &Error{Kind: KindLayout}
	ErrFocus            = &Error{Kind: KindFocus}
	ErrRender           = &Error{Kind: KindRender}
	ErrInvalid          = &Error{Kind: KindInvalid}
	ErrNodeNotFound     = &Error{Kind: KindNodeNotFound}
	ErrAlreadyAttached  = &Error{Kind: KindAlreadyAttached}
	ErrWouldCreateCycle = &Error{Kind: KindWouldCreateCycle}
	ErrWidget           = &Error{Kind: KindWidget}
)

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Message == "" && e.Cause == nil:
		return e.Kind.String()
	case e.Cause == nil:
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	case e.Message == "":
		return fmt.Sprintf("%s: %v", e.Kind, e.Cause)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// IsKind reports whether err or anything it wraps is an *Error of kind.
func IsKind(err error, kind ErrorKind) bool {
	return errors.Is(err, &Error{Kind: kind})
}

// KindOf returns the kind of the first *Error in err's chain, or zero.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func wrapError(kind ErrorKind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: cause}
}

func notFound(id NodeID) *Error {
	return newError(KindNodeNotFound, "%v", id)
}
