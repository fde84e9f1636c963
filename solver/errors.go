package solver

import "errors"

// ErrBadTimeout is returned (via panic, per the teacher's Option
// constructor convention) when WithTimeout is given a non-positive
// duration.
var ErrBadTimeout = errors.New("solver: timeout must be positive")

// ErrSearchExhausted is returned for an unsolvable root board, and if
// iterative deepening reaches the known 15-puzzle diameter bound without
// finding a solution — for a solvable root the latter indicates a defect
// in the heuristic or table generation, since every solvable board has an
// optimal solution of at most 80 moves.
var ErrSearchExhausted = errors.New("solver: exceeded maximum search depth without a solution")
