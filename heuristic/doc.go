// Package heuristic combines Manhattan distance, linear conflict,
// walking distance and pattern-database lookups into a single
// admissible heuristic for the solver.
//
// Each named Kind selects which components a Provider combines; the
// combined value is always the maximum across enabled components,
// since every component is independently admissible and the max of
// admissible lower bounds is itself admissible (spec.md §4.4). This
// collapses the source's Solver -> SolverWd -> SolverWdMd -> SolverPdb
// class hierarchy into one capability interface parameterized by Kind
// (spec.md §9).
package heuristic
