package heuristic

import (
	"github.com/katalvlaran/puzzle15/board"
	"github.com/katalvlaran/puzzle15/pattern"
	"github.com/katalvlaran/puzzle15/walkdist"
)

// Provider computes and incrementally updates a board's heuristic value
// along a search path. This is spec.md §9's collapse of the source's
// Solver/SolverWd/SolverWdMd/SolverPdb class hierarchy into a single
// capability set: different Kinds are different Provider instances, not
// different types.
type Provider interface {
	Kind() Kind
	Initial(b board.Board) (uint8, State)
	Update(state State, b board.Board, d board.Direction) (uint8, State)
}

// Tables bundles the precomputed lookups a Provider may need. Which
// fields are required depends on the requested Kind; see NewProvider.
type Tables struct {
	WD  *walkdist.Table
	PDB *pattern.Tables
}

// NewProvider builds the Provider for kind. MD and MDLC need no tables.
// WD and WDMD need tables.WD. PDB555, PDB663 and PDB78 need both
// tables.WD and a tables.PDB loaded over the matching partition (the
// caller is responsible for loading the partition that matches kind;
// NewProvider has no way to check this itself). Returns ErrMissingTables
// if a required table is nil, ErrInvalidKind for Custom (build that with
// NewCustomProvider instead) or an unrecognized kind.
func NewProvider(kind Kind, tables Tables) (Provider, error) {
	switch kind {
	case MD:
		return &provider{kind: kind}, nil
	case MDLC:
		return &provider{kind: kind, useMDLC: true}, nil
	case WD:
		if tables.WD == nil {
			return nil, ErrMissingTables
		}
		return &provider{kind: kind, useWD: true, wd: tables.WD}, nil
	case WDMD:
		if tables.WD == nil {
			return nil, ErrMissingTables
		}
		return &provider{kind: kind, useMDLC: true, useWD: true, wd: tables.WD}, nil
	case PDB555, PDB663, PDB78:
		if tables.WD == nil || tables.PDB == nil {
			return nil, ErrMissingTables
		}
		return &provider{kind: kind, useMDLC: true, useWD: true, usePDB: true, wd: tables.WD, pdb: tables.PDB}, nil
	default:
		return nil, ErrInvalidKind
	}
}

// provider is the shared Provider implementation for every built-in
// Kind except Custom: which components are enabled is data (the use*
// flags), not a different type, matching the source's flattened
// replacement hierarchy.
type provider struct {
	kind                   Kind
	useMDLC, useWD, usePDB bool
	wd                     *walkdist.Table
	pdb                    *pattern.Tables
}

func (p *provider) Kind() Kind { return p.kind }

func (p *provider) Initial(b board.Board) (uint8, State) {
	var st State
	best := 0

	if p.useMDLC {
		if v := mdlcValue(b); v > best {
			best = v
		}
	} else if !p.useWD && !p.usePDB {
		if v := manhattanValue(b); v > best {
			best = v
		}
	}

	if p.useWD {
		st.wdRowIdx = p.wd.Index(b.Tiles())
		st.wdColIdx = p.wd.Index(b.TilesSym())
		st.wdRowVal = p.wd.Value(st.wdRowIdx)
		st.wdColVal = p.wd.Value(st.wdColIdx)
		if v := int(st.wdRowVal) + int(st.wdColVal); v > best {
			best = v
		}
	}

	if p.usePDB {
		st.pdb = p.pdbGroupStates(b)
		st.pdbSym = p.pdbGroupStates(b.Symmetry())
		if v := p.sumPDB(st.pdb); v > best {
			best = v
		}
		if v := p.sumPDB(st.pdbSym); v > best {
			best = v
		}
	}

	return uint8(best), st
}

func (p *provider) Update(state State, b board.Board, d board.Direction) (uint8, State) {
	st := state
	best := 0

	if p.useMDLC {
		if v := mdlcValue(b); v > best {
			best = v
		}
	} else if !p.useWD && !p.usePDB {
		if v := manhattanValue(b); v > best {
			best = v
		}
	}

	if p.useWD {
		if d.IsVertical() {
			st.wdRowIdx = p.wd.Next(st.wdRowIdx, movedTileGoalRow(b, d), d)
			st.wdRowVal = p.wd.Value(st.wdRowIdx)
		} else {
			st.wdColIdx = p.wd.Next(st.wdColIdx, movedTileGoalCol(b, d), d)
			st.wdColVal = p.wd.Value(st.wdColIdx)
		}
		if v := int(st.wdRowVal) + int(st.wdColVal); v > best {
			best = v
		}
	}

	if p.usePDB {
		blankPos := priorBlankPos(b, d)
		st.pdb = p.applyPDBMove(st.pdb, blankPos, d)

		twin := b.Symmetry()
		td := d.TwinDirection()
		st.pdbSym = p.applyPDBMove(st.pdbSym, priorBlankPos(twin, td), td)

		if v := p.sumPDB(st.pdb); v > best {
			best = v
		}
		if v := p.sumPDB(st.pdbSym); v > best {
			best = v
		}
	}

	return uint8(best), st
}

func (p *provider) pdbGroupStates(b board.Board) []groupState {
	n := p.pdb.NumGroups()
	gs := make([]groupState, n)
	for gi := 0; gi < n; gi++ {
		k, f := p.pdb.GroupState(b, gi)
		gs[gi] = groupState{key: k, format: f}
	}

	return gs
}

func (p *provider) applyPDBMove(gs []groupState, blankPos int, d board.Direction) []groupState {
	out := make([]groupState, len(gs))
	for gi, s := range gs {
		k, f := p.pdb.ApplyMove(gi, s.key, s.format, blankPos, d)
		out[gi] = groupState{key: k, format: f}
	}

	return out
}

func (p *provider) sumPDB(gs []groupState) int {
	total := 0
	for gi, s := range gs {
		total += int(p.pdb.GroupValue(gi, s.key, s.format))
	}

	return total
}

// priorBlankPos returns the blank's grid position in b before direction
// d was applied to reach b: b's own zero position, shifted back by d's
// delta.
func priorBlankPos(b board.Board, d board.Direction) int {
	zx, zy := b.ZeroPos()
	ddx, ddy := d.Delta()

	return (zy-ddy)*4 + (zx - ddx)
}

// movedTile returns the value of the tile that moved into the blank's
// prior position when direction d was applied to reach b.
func movedTile(b board.Board, d board.Direction) byte {
	return b.Tiles()[priorBlankPos(b, d)]
}

func movedTileGoalRow(b board.Board, d board.Direction) int {
	return int(movedTile(b, d)-1) / 4
}

func movedTileGoalCol(b board.Board, d board.Direction) int {
	return int(movedTile(b, d)-1) % 4
}
