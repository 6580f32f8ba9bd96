package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// InputFunc adapts a function to InputSource.
type InputFunc func(ctx context.Context) (Event, error)

func (f InputFunc) ReadEvent(ctx context.Context) (Event, error) {
	return f(ctx)
}

// ChanInput is an InputSource fed from a channel. Closing the channel ends
// input with io.EOF.
type ChanInput <-chan Event

func (ch ChanInput) ReadEvent(ctx context.Context) (Event, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case ev, ok := <-ch:
		if !ok {
			return nil, io.EOF
		}
		return ev, nil
	}
}

// readInput forwards events from src to handle until ctx is done. End of
// input is reported through eof and is not an error.
func readInput(ctx context.Context, src InputSource, handle func(context.Context, Event) error, eof func()) error {
	for {
		ev, err := src.ReadEvent(ctx)
		switch {
		case ctx.Err() != nil:
			return nil
		case errors.Is(err, io.EOF):
			eof()
			return nil
		case err != nil:
			return fmt.Errorf("read input: %w", err)
		}
		if err := handle(ctx, ev); err != nil {
			return err
		}
	}
}
