package gen

// hardSeeds is a bundled set of scrambled-but-solvable boards used as
// Hard's starting point before the usual random walk (spec.md §4.1,
// §8 S4). Each entry is a handful of disjoint tile swaps away from the
// goal (an even number of transpositions, so solvability is preserved
// without needing a parity fix-up), chosen to already sit far from the
// goal under the Manhattan heuristic.
var hardSeeds = [][16]byte{
	{2, 1, 4, 3, 6, 5, 8, 7, 9, 10, 11, 12, 13, 14, 15, 0},
	{6, 5, 8, 7, 2, 1, 4, 3, 9, 10, 11, 12, 13, 14, 15, 0},
	{8, 7, 6, 5, 4, 3, 2, 1, 9, 10, 11, 12, 13, 14, 15, 0},
	{2, 1, 3, 4, 5, 6, 7, 8, 15, 14, 13, 12, 11, 10, 9, 0},
	{14, 13, 12, 11, 10, 9, 7, 8, 6, 5, 4, 3, 2, 1, 15, 0},
	{7, 8, 9, 10, 5, 6, 1, 2, 3, 4, 11, 12, 13, 14, 15, 0},
}
