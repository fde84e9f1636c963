// Package board defines the immutable 4×4 sliding-tile puzzle state and
// the four blank-move directions.
//
// A Board packs 16 nibbles (tile values 0..15, 0 meaning the blank) into
// two 32-bit hash words, tracks the blank's (x, y) position, computes the
// diagonal-reflection "symmetry twin" of the configuration, and tests
// solvability via the standard 4×4 inversion-parity rule. Boards are
// constructed once and never mutated; every move produces a new Board.
//
//	b := board.Goal()
//	n, ok := b.Shift(board.Up)  // ok is false if Up is not legal from the blank
//	for _, d := range board.Directions {
//	    fmt.Println(d, b.CanMove(d))
//	}
//
// Complexity: every operation on Board is O(1) except construction from
// raw tiles, which is O(16) to compute parity and the symmetry twin.
package board
