package pattern

import (
	"os"

	"github.com/katalvlaran/puzzle15/board"
)

// groupState bundles one group's generated tables with the precomputed
// label -> in-group rank map used to read a board into (keyIdx, formatIdx).
type groupState struct {
	group  Group
	table  *GroupTable
	values *Values
	rank   [16]int8 // rank[label] = index of label within group.Tiles, ascending; -1 if absent
}

// Tables is the fully-loaded set of element and value tables for one
// Partition. Safe for concurrent read-only use across solver instances
// once returned by LoadOrGenerate (spec.md §5): nothing here is mutated
// after construction.
type Tables struct {
	Partition Partition
	groups    []groupState
	// tileGroup[label] = index into groups, for label 1..15.
	tileGroup [16]int8
}

// LoadOrGenerate loads every group's element and value tables for p from
// dir, regenerating and re-saving (atomically) any table that is missing
// or fails to parse (spec.md §4.2, §6, §7 TableIO). dir is created if
// absent.
func LoadOrGenerate(dir string, p Partition) (*Tables, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, ErrTableIO
	}

	t := &Tables{Partition: p}
	for i := range t.tileGroup {
		t.tileGroup[i] = -1
	}

	for gi, g := range p.Groups {
		gt, err := load(dir, len(g.Tiles))
		if err != nil {
			gt = Generate(len(g.Tiles))
			if serr := gt.save(dir); serr != nil {
				return nil, serr
			}
		}

		numKeys := len(gt.KeysToCombo)
		numFormats := len(gt.FormatsToCombo)
		vals, err := loadValues(dir, len(g.Tiles), numKeys, numFormats)
		if err != nil {
			vals = GenerateValues(gt, g)
			if serr := vals.save(dir, len(g.Tiles)); serr != nil {
				return nil, serr
			}
		}

		gs := groupState{group: g, table: gt, values: vals}
		for i := range gs.rank {
			gs.rank[i] = -1
		}
		for rank, label := range g.Tiles {
			gs.rank[label] = int8(rank)
			t.tileGroup[label] = int8(gi)
		}
		t.groups = append(t.groups, gs)
	}

	return t, nil
}

// NumGroups returns the number of disjoint groups in the active partition.
func (t *Tables) NumGroups() int { return len(t.groups) }

// GroupState reads board b and returns the (keyIdx, formatIdx) compressed
// state of group gi.
func (t *Tables) GroupState(b board.Board, gi int) (keyIdx, formatIdx int) {
	gs := &t.groups[gi]
	tiles := b.Tiles()

	var bm uint16
	positions := make([]int, 0, len(gs.group.Tiles))
	for pos, v := range tiles {
		if v != 0 && gs.rank[v] >= 0 {
			bm |= 1 << uint(pos)
			positions = append(positions, pos)
		}
	}
	formatIdx = gs.table.formatIndex[bm]

	perm := make([]byte, len(positions))
	for i, pos := range positions {
		perm[i] = byte(gs.rank[tiles[pos]])
	}
	keyIdx = gs.table.keyIndex[packIdentity(perm)]

	return keyIdx, formatIdx
}

// GroupValue returns the precomputed distance for group gi at compressed
// state (keyIdx, formatIdx): the cost of bringing that group's tiles
// alone to their goal positions.
func (t *Tables) GroupValue(gi, keyIdx, formatIdx int) uint8 {
	return t.groups[gi].values.Value(keyIdx, formatIdx)
}

// ApplyMove advances group gi's compressed state by one blank-move,
// given the blank's grid position before the move (spec.md §4.5's
// per-edge incremental PDB update).
func (t *Tables) ApplyMove(gi, keyIdx, formatIdx, blankPos int, dir board.Direction) (int, int) {
	return t.groups[gi].table.ApplyMove(keyIdx, formatIdx, blankPos, int(dir))
}

// GroupOf returns the group index covering tile label (1..15), and false
// if no group in the active partition covers it (ErrGroupNotFound).
func (t *Tables) GroupOf(label byte) (int, bool) {
	if label == 0 || label > 15 || t.tileGroup[label] < 0 {
		return 0, false
	}

	return int(t.tileGroup[label]), true
}

// Sum returns the additive PDB heuristic for board b: the sum, across
// every group in the active partition, of that group's precomputed
// distance at b's current compressed state (spec.md §4.4).
func (t *Tables) Sum(b board.Board) int {
	total := 0
	for gi := range t.groups {
		k, f := t.GroupState(b, gi)
		total += int(t.GroupValue(gi, k, f))
	}

	return total
}
