// Package pattern builds and persists the disjoint pattern-database
// "element tables" that drive PDB heuristic lookups during search
// (SPEC_FULL.md §4.2): for each pattern-group size g, the set of group
// permutations ("keys"), the set of 16-choose-g position bitmaps
// ("formats"), a key-rotation table describing how a vertical blank-move
// reorders a group's in-group ordering, and a format-link table
// describing how all four moves change which positions a group occupies.
//
// Supported group sizes are {3, 5, 6, 7, 8}; the three bundled canonical
// partitions of the 15 non-blank tiles are 6-6-3 (Partition663), 5-5-5
// (Partition555), and 7-8 (Partition78).
//
// Tables are generated once and persisted under database/pattern_element_<g>.db
// as big-endian uint32 streams; LoadOrGenerate transparently regenerates
// and re-saves any file that is missing or fails to parse.
package pattern
