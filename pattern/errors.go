package pattern

import "errors"

// Sentinel errors returned by the pattern package.
var (
	// ErrInvalidPartition indicates a requested partition of the 15
	// non-blank tiles does not sum to 15, uses a group size outside
	// {3,5,6,7,8}, or assigns a tile to more than one group.
	ErrInvalidPartition = errors.New("pattern: groups must partition tiles 1..15 using sizes in {3,5,6,7,8}")

	// ErrTableIO indicates a read or write failure against an element
	// table file. Callers recover locally by regenerating and
	// re-saving; this is never fatal if regeneration succeeds.
	ErrTableIO = errors.New("pattern: element table read/write failure")

	// ErrGroupNotFound indicates a lookup referenced a tile that is not
	// covered by any group in the active partition.
	ErrGroupNotFound = errors.New("pattern: tile not covered by any group")
)
