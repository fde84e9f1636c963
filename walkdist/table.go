package walkdist

import "github.com/katalvlaran/puzzle15/board"

// noNext marks a (state, goalRow, delta) combination that never occurs
// for a reachable state: no tile of that goal row is adjacent to the
// blank's row on that side.
const noNext = -1

// Table is the generated walking-distance lookup: distances and
// transitions over the reachable (counts, blankRow) state space,
// indexed by a stable hash-consed integer assigned in BFS discovery
// order (spec.md §3, §4.3).
type Table struct {
	dist []uint8
	// next is flat-indexed idx*8 + goalRow*2 + deltaSlot(delta).
	next  []int32
	index map[uint64]int
}

// Generate runs a breadth-first search from the solved walking-distance
// state (grounded on the teacher's queue-and-visited-map BFS shape,
// bfs.go's walker.loop, generalized from graph vertices to occupancy
// states), visiting every reachable state exactly once and recording,
// for each, its distance and its transition under every tile crossing
// into the blank's row from an adjacent row.
func Generate() *Table {
	t := &Table{index: make(map[uint64]int)}

	start := goalState()
	t.index[start.key()] = 0
	states := []state{start}
	t.dist = append(t.dist, 0)

	for head := 0; head < len(states); head++ {
		cur := states[head]
		d := t.dist[head]

		slots := [8]int32{noNext, noNext, noNext, noNext, noNext, noNext, noNext, noNext}
		t.next = append(t.next, slots[:]...)

		for _, delta := range [2]int{-1, 1} {
			nbRow := int(cur.blankRow) + delta
			if nbRow < 0 || nbRow >= 4 {
				continue
			}
			for g := 0; g < 4; g++ {
				if cur.counts[nbRow][g] == 0 {
					continue
				}

				next := cur
				next.counts[nbRow][g]--
				next.counts[cur.blankRow][g]++
				next.blankRow = int8(nbRow)

				k := next.key()
				idx, ok := t.index[k]
				if !ok {
					idx = len(states)
					t.index[k] = idx
					states = append(states, next)
					t.dist = append(t.dist, d+1)
				}
				t.next[head*8+g*2+deltaSlot(delta)] = int32(idx)
			}
		}
	}

	return t
}

func deltaSlot(delta int) int {
	if delta < 0 {
		return 0
	}

	return 1
}

// Value returns the walking-distance value (BFS depth from the solved
// state) of the state at idx.
func (t *Table) Value(idx int) uint8 {
	return t.dist[idx]
}

// Next returns the index reached from idx when a tile whose goal row is
// g crosses into the blank's row, moving in direction d. Right and Down
// map to the "+1" projection transition, Left and Up to "-1" (spec.md
// §4.5: "one table lookup using the moving tile's source-row ... and
// direction"). Used with a table generated over a board's own tiles and
// d restricted to {Down, Up}, or over its symmetry twin's tiles with d
// restricted to {Right, Left}; the opposite pair never occurs for a
// given table's projection and is a caller bug if it does.
func (t *Table) Next(idx, g int, d board.Direction) int {
	delta := 1
	if d == board.Left || d == board.Up {
		delta = -1
	}

	return int(t.next[idx*8+g*2+deltaSlot(delta)])
}

// Index returns the hash-consed WD index of tiles' row-projection state.
// Passing a board's tilesSym instead of tiles yields the column
// projection, since reflecting the board swaps rows and columns and the
// symmetry twin's goal-row axis is exactly the original tile's goal
// column (see package doc).
func (t *Table) Index(tiles [16]byte) int {
	return t.index[project(tiles).key()]
}
