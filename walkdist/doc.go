// Package walkdist generates and serves the walking-distance lookup
// table used by the composite heuristic.
//
// Walking distance abstracts a board down to row-occupancy counts: for
// each physical row, how many of its tiles belong (in the goal
// configuration) to each of the four goal rows, plus which row holds
// the blank. A breadth-first search from the solved state over this
// reduced state space gives, for every reachable state, the minimum
// number of single-tile row crossings needed to reach goal — an
// admissible lower bound on the real move count, since every real move
// crosses at most one row boundary.
//
// The same generated Table serves both projections the heuristic needs:
// applied to a board's own tiles it is the row (vertical) table;
// applied to the board's symmetry twin it is the column (horizontal)
// table, since reflecting the board swaps rows and columns.
package walkdist
