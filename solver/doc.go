// Package solver implements the IDA* search that finds an optimal move
// sequence between a board and the solved configuration, bounded by an
// admissible heuristic from the heuristic package.
//
// Each FindOptimalPath call builds one unexported engine, grounded on
// tsp's bbEngine shape: explicit mutable state, in-place mutation, sparse
// deadline polling, scoped to the lifetime of that single call rather
// than held across calls by the caller. Every heuristic.Kind drives the
// same search code through the heuristic.Provider capability interface
// (spec.md §9), so there is no per-Kind engine type.
package solver
