package heuristic

import "github.com/katalvlaran/puzzle15/board"

// manhattanValue sums |target row/col - current row/col| over every
// non-blank tile.
func manhattanValue(b board.Board) int {
	return manhattan(b.Tiles())
}

func manhattan(tiles [16]byte) int {
	total := 0
	for pos, v := range tiles {
		if v == 0 {
			continue
		}
		r, c := pos/4, pos%4
		tr, tc := int(v-1)/4, int(v-1)%4
		total += absInt(tr-r) + absInt(tc-c)
	}

	return total
}

// mdlcValue is Manhattan distance plus linear conflict: row conflicts
// read directly off tiles, column conflicts read off the symmetry
// twin's rows, which are the original board's columns (spec.md §4.4).
func mdlcValue(b board.Board) int {
	return manhattan(b.Tiles()) + linearConflictRows(b.Tiles()) + linearConflictRows(b.TilesSym())
}

// linearConflictRows adds 2 for every pair of same-row tiles that both
// belong (in the goal) to that row but appear in reversed target-column
// order: resolving the conflict requires one of them to leave the row
// and return, costing two extra moves beyond Manhattan distance alone.
func linearConflictRows(tiles [16]byte) int {
	total := 0
	for r := 0; r < 4; r++ {
		var targets []int
		for c := 0; c < 4; c++ {
			v := tiles[r*4+c]
			if v == 0 {
				continue
			}
			if int(v-1)/4 != r {
				continue
			}
			targets = append(targets, int(v-1)%4)
		}
		for i := 0; i < len(targets); i++ {
			for j := i + 1; j < len(targets); j++ {
				if targets[i] > targets[j] {
					total += 2
				}
			}
		}
	}

	return total
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
