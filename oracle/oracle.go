package oracle

import (
	"context"
	"errors"

	"github.com/katalvlaran/puzzle15/board"
)

// ErrUnavailable is returned by a real Oracle implementation when the
// backing store cannot be reached; the solver treats it the same as a
// cache miss.
var ErrUnavailable = errors.New("oracle: unavailable")

// Oracle looks up and records optimal solutions for boards, backed by
// some external reference collection (spec.md §4.5's "advanced" mode).
// Both methods take a context since a real implementation talks to a
// remote service (the teacher's convention for any blocking call that
// crosses a network boundary, e.g. flow.Dinic's context-aware Run).
type Oracle interface {
	// Lookup returns a previously recorded optimal-cost estimate for b
	// and its first few moves as a guaranteed prefix, or ok=false if b
	// is not known or the lookup failed.
	Lookup(ctx context.Context, b board.Board) (estimate int, prefix []board.Direction, ok bool)
	// Submit records a newly found optimal solution for b, for future
	// Lookups to reuse. Errors are for logging only; the solver already
	// has its answer by the time Submit is called.
	Submit(ctx context.Context, b board.Board, moves []board.Direction) error
}

// Noop is an Oracle that never has anything cached and discards every
// submission. It is the solver's default when no oracle is configured.
type Noop struct{}

// Lookup always reports a miss.
func (Noop) Lookup(context.Context, board.Board) (int, []board.Direction, bool) {
	return 0, nil, false
}

// Submit discards moves.
func (Noop) Submit(context.Context, board.Board, []board.Direction) error { return nil }
