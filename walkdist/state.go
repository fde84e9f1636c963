package walkdist

// state is the walking-distance aggregate: counts[r][g] is the number of
// tiles currently in physical row r whose goal row is g, plus blankRow,
// the physical row currently holding the blank (spec.md §3).
type state struct {
	counts   [4][4]int8
	blankRow int8
}

// key packs a state into a single integer for hash-consing: each of the
// 16 counts fits in 3 bits (0..4), blankRow in 2 bits.
func (s state) key() uint64 {
	var k uint64
	for r := 0; r < 4; r++ {
		for g := 0; g < 4; g++ {
			k = k<<3 | uint64(s.counts[r][g])
		}
	}

	return k<<2 | uint64(s.blankRow)
}

// goalState is the WD state of the solved board: row r holds exactly the
// four tiles whose goal row is r, except row 3, which holds only three
// (its fourth cell is the blank).
func goalState() state {
	var s state
	for r := 0; r < 3; r++ {
		s.counts[r][r] = 4
	}
	s.counts[3][3] = 3
	s.blankRow = 3

	return s
}

// project reduces 16 row-major tile values to their walking-distance
// state: for each non-blank cell, increment counts[physicalRow][goalRow].
// Applied to tilesSym instead of tiles, goalRow becomes the tile's goal
// column (see Table.Index), giving the column projection for free.
func project(tiles [16]byte) state {
	var s state
	for pos, v := range tiles {
		row := pos / 4
		if v == 0 {
			s.blankRow = int8(row)
			continue
		}
		goalRow := int((v - 1) / 4)
		s.counts[row][goalRow]++
	}

	return s
}
