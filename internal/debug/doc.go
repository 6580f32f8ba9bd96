// Package debug provides optional file-based debug logging.
//
// A terminal UI owns stdout, so logs only ever go to a rotating file. When
// neither the TUI_DEBUG environment variable nor Options.File names a file,
// every logger this package hands out is a no-op.
package debug
