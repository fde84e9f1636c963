package heuristic

// State is the cached heuristic decomposition carried along the
// solver's recursion (spec.md §4.5): everything Update needs to derive
// the next node's value without recomputing every component from
// scratch. Zero value is valid and cheap for components a Kind does not
// use.
type State struct {
	wdRowIdx, wdColIdx int
	wdRowVal, wdColVal uint8

	pdb    []groupState // nil unless the Provider is PDB-flavored
	pdbSym []groupState
}

// groupState is one pattern group's compressed state.
type groupState struct {
	key, format int
}
