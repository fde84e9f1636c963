package pattern

import "fmt"

// supportedGroupSizes lists the group sizes the element-table generator
// and solver lookup logic are built for (SPEC_FULL.md §4.2).
var supportedGroupSizes = map[int]bool{3: true, 5: true, 6: true, 7: true, 8: true}

// maxShift returns the largest vertical slot-shift magnitude tracked by
// the rotation table for a group of size g: 1 for g=3, 2 for g=5, 3 for
// g in {6,7,8}. The value bounds how many other group-occupied slots a
// moving tile can cross in one vertical blank-move for that group size
// (spec.md §3).
func maxShift(g int) int {
	switch {
	case g == 3:
		return 1
	case g == 5:
		return 2
	case g == 6, g == 7, g == 8:
		return 3
	default:
		panic(fmt.Sprintf("pattern: maxShift: unsupported group size %d", g))
	}
}

// Group is one disjoint subset of tile labels (1..15) whose combined
// distance-to-goal is precomputed in a pattern database.
type Group struct {
	// Tiles lists the tile labels belonging to this group, in ascending
	// order. len(Tiles) must be one of {3,5,6,7,8}.
	Tiles []byte
}

// Partition assigns every one of the 15 non-blank tiles to exactly one
// Group. Valid partitions use group sizes drawn from {3,5,6,7,8} and sum
// to 15.
type Partition struct {
	Name   string
	Groups []Group
}

// Validate reports ErrInvalidPartition if p does not cover tiles 1..15
// exactly once each, using only supported group sizes.
func (p Partition) Validate() error {
	var seen [16]bool
	total := 0
	for _, g := range p.Groups {
		if !supportedGroupSizes[len(g.Tiles)] {
			return ErrInvalidPartition
		}
		for _, t := range g.Tiles {
			if t == 0 || t > 15 || seen[t] {
				return ErrInvalidPartition
			}
			seen[t] = true
			total++
		}
	}
	if total != 15 {
		return ErrInvalidPartition
	}

	return nil
}

// Partition663 is the standard 6-6-3 decomposition.
var Partition663 = Partition{
	Name: "663",
	Groups: []Group{
		{Tiles: []byte{1, 2, 3, 4, 5, 6}},
		{Tiles: []byte{7, 8, 9, 10, 11, 12}},
		{Tiles: []byte{13, 14, 15}},
	},
}

// Partition555 is the standard 5-5-5 decomposition.
var Partition555 = Partition{
	Name: "555",
	Groups: []Group{
		{Tiles: []byte{1, 2, 3, 4, 5}},
		{Tiles: []byte{6, 7, 8, 9, 10}},
		{Tiles: []byte{11, 12, 13, 14, 15}},
	},
}

// Partition78 is the standard 7-8 decomposition.
var Partition78 = Partition{
	Name: "78",
	Groups: []Group{
		{Tiles: []byte{1, 2, 3, 4, 5, 6, 7}},
		{Tiles: []byte{8, 9, 10, 11, 12, 13, 14, 15}},
	},
}
