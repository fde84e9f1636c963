package solver

import "github.com/katalvlaran/puzzle15/board"

// Result is the outcome of a FindOptimalPath call.
type Result struct {
	// Moves is the optimal move sequence from root to goal, empty if
	// Solved is false.
	Moves []board.Direction
	// Solved reports whether a solution was found before the deadline.
	Solved bool
	// Timeout reports whether the search was cut short by the configured
	// timeout. Solved and Timeout are never both true.
	Timeout bool
	// Expanded is the total number of nodes visited across every
	// deepening pass.
	Expanded int
}
