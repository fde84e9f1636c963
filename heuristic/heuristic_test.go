package heuristic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/puzzle15/board"
	"github.com/katalvlaran/puzzle15/heuristic"
	"github.com/katalvlaran/puzzle15/pattern"
	"github.com/katalvlaran/puzzle15/walkdist"
)

func TestGoalHeuristicIsZeroForEveryKind(t *testing.T) {
	wd := walkdist.Generate()
	dir := t.TempDir()
	pdb, err := pattern.LoadOrGenerate(dir, pattern.Partition663)
	require.NoError(t, err)

	tables := heuristic.Tables{WD: wd, PDB: pdb}
	for _, k := range []heuristic.Kind{heuristic.MD, heuristic.MDLC, heuristic.WD, heuristic.WDMD, heuristic.PDB663} {
		p, err := heuristic.NewProvider(k, tables)
		require.NoError(t, err, k.String())

		v, _ := p.Initial(board.Goal())
		assert.Equal(t, uint8(0), v, k.String())
	}
}

func TestMissingTablesRejected(t *testing.T) {
	_, err := heuristic.NewProvider(heuristic.WD, heuristic.Tables{})
	assert.ErrorIs(t, err, heuristic.ErrMissingTables)

	_, err = heuristic.NewProvider(heuristic.PDB555, heuristic.Tables{WD: walkdist.Generate()})
	assert.ErrorIs(t, err, heuristic.ErrMissingTables)
}

func TestUpdateMatchesInitialAfterEachMove(t *testing.T) {
	wd := walkdist.Generate()
	dir := t.TempDir()
	pdb, err := pattern.LoadOrGenerate(dir, pattern.Partition663)
	require.NoError(t, err)

	p, err := heuristic.NewProvider(heuristic.PDB663, heuristic.Tables{WD: wd, PDB: pdb})
	require.NoError(t, err)

	b, err := board.New([16]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 0, 15})
	require.NoError(t, err)

	_, st := p.Initial(b)
	for _, d := range board.Directions {
		next, ok := b.Shift(d)
		if !ok {
			continue
		}
		gotV, _ := p.Update(st, next, d)
		wantV, _ := p.Initial(next)
		assert.Equal(t, wantV, gotV, d.String())
	}
}

func TestCustomProviderWrapsFunc(t *testing.T) {
	calls := 0
	p := heuristic.NewCustomProvider(func(b board.Board) uint8 {
		calls++
		if b.IsGoal() {
			return 0
		}

		return 7
	})

	v, st := p.Initial(board.Goal())
	assert.Equal(t, uint8(0), v)

	scrambled, err := board.New([16]byte{2, 1, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 0})
	require.NoError(t, err)
	v, _ = p.Update(st, scrambled, board.Right)
	assert.Equal(t, uint8(7), v)
	assert.Equal(t, 2, calls)
}
