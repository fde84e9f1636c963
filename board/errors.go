package board

import "errors"

// Sentinel errors returned by the board package. Callers branch on these
// with errors.Is; messages are never parsed.
var (
	// ErrInvalidInput indicates a malformed tile array: wrong length, a
	// value outside 0..15, or a value repeated (tiles must be a
	// permutation of 0..15).
	ErrInvalidInput = errors.New("board: tiles must be a permutation of 0..15")

	// ErrUnsolvable indicates an operation that requires a solvable board
	// (e.g. FindOptimalPath) was given one that fails the parity rule.
	// The solver never returns this error: FindOptimalPath reports an
	// unsolvable root as solver.ErrSearchExhausted with an empty Result,
	// and solver.Heuristic does not test solvability, so it returns an
	// ordinary value for an unsolvable board. It exists for callers that
	// want to fail fast before invoking the solver.
	ErrUnsolvable = errors.New("board: configuration is not solvable")
)
