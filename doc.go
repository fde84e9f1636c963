// Package puzzle15 is an optimal solver for the 15-puzzle, a 4x4
// sliding-tile puzzle with 15 numbered tiles and one blank. Given any
// solvable configuration, the solver returns a shortest sequence of
// blank-moves that reaches the canonical goal (tiles 1..15 in row-major
// order, blank in the bottom-right).
//
// The module is organized as:
//
//	board/      — immutable puzzle state, legal moves, solvability, symmetry
//	pattern/    — disjoint pattern database (5-5-5 / 6-6-3 / 7-8 partitions)
//	walkdist/   — walking-distance abstraction and its transition table
//	heuristic/  — admissible lower bounds, combined by taking their max
//	solver/     — IDA* search over board states, bounded by heuristic
//	oracle/     — interface to an optional external reference collection
//	gen/        — difficulty-based random board generation
//
// A minimal solve:
//
//	b, _ := gen.Easy()
//	prov, _ := heuristic.NewProvider(heuristic.MDLC, heuristic.Tables{})
//	res, _ := solver.FindOptimalPath(b, prov)
//	fmt.Println(res.Moves)
package puzzle15
