package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/puzzle15/board"
	"github.com/katalvlaran/puzzle15/gen"
	"github.com/katalvlaran/puzzle15/heuristic"
	"github.com/katalvlaran/puzzle15/solver"
	"github.com/katalvlaran/puzzle15/walkdist"
)

func mdlcProvider(t *testing.T) heuristic.Provider {
	t.Helper()
	p, err := heuristic.NewProvider(heuristic.MDLC, heuristic.Tables{})
	require.NoError(t, err)

	return p
}

func TestFindOptimalPathGoalIsZeroMoves(t *testing.T) {
	prov := mdlcProvider(t)

	res, err := solver.FindOptimalPath(board.Goal(), prov)
	require.NoError(t, err)
	assert.True(t, res.Solved)
	assert.Empty(t, res.Moves)
}

func TestFindOptimalPathSingleMoveBoard(t *testing.T) {
	prov := mdlcProvider(t)

	goal := board.Goal()
	b, ok := goal.Shift(board.Left)
	require.True(t, ok)

	res, err := solver.FindOptimalPath(b, prov)
	require.NoError(t, err)
	require.True(t, res.Solved)
	require.Len(t, res.Moves, 1)
	assert.Equal(t, board.Right, res.Moves[0])
}

func TestFindOptimalPathAppliedMovesReachGoal(t *testing.T) {
	prov := mdlcProvider(t)

	b := board.Goal()
	for _, d := range []board.Direction{board.Left, board.Up, board.Right, board.Down, board.Left, board.Left} {
		next, ok := b.Shift(d)
		require.True(t, ok)
		b = next
	}

	res, err := solver.FindOptimalPath(b, prov)
	require.NoError(t, err)
	require.True(t, res.Solved)

	cur := b
	for _, d := range res.Moves {
		next, ok := cur.Shift(d)
		require.True(t, ok)
		cur = next
	}
	assert.True(t, cur.IsGoal())
}

func TestFindOptimalPathUnsolvableRejected(t *testing.T) {
	prov := mdlcProvider(t)

	tiles := [16]byte{2, 1, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 0}
	b, err := board.New(tiles)
	require.NoError(t, err)
	require.False(t, b.IsSolvable())

	_, err = solver.FindOptimalPath(b, prov)
	assert.ErrorIs(t, err, solver.ErrSearchExhausted)
}

func TestFindOptimalPathWithWDKindAgreesWithMDLC(t *testing.T) {
	wd := walkdist.Generate()
	wdProv, err := heuristic.NewProvider(heuristic.WDMD, heuristic.Tables{WD: wd})
	require.NoError(t, err)

	b := board.Goal()
	for _, d := range []board.Direction{board.Left, board.Up, board.Left, board.Down} {
		next, ok := b.Shift(d)
		require.True(t, ok)
		b = next
	}

	mdlcRes, err := solver.FindOptimalPath(b, mdlcProvider(t))
	require.NoError(t, err)

	wdRes, err := solver.FindOptimalPath(b, wdProv)
	require.NoError(t, err)

	assert.Equal(t, len(mdlcRes.Moves), len(wdRes.Moves))
}

// TestHardSeedSolvesWithinDepthCap covers spec.md §8 S4: a bundled hard
// seed (gen.Hard, deterministic with no options) must solve optimally
// without hitting the IDA* depth cap engine.go reserves exactly for this
// case.
func TestHardSeedSolvesWithinDepthCap(t *testing.T) {
	b, err := gen.Hard()
	require.NoError(t, err)
	require.True(t, b.IsSolvable())

	wd := walkdist.Generate()
	prov, err := heuristic.NewProvider(heuristic.WDMD, heuristic.Tables{WD: wd})
	require.NoError(t, err)

	res, err := solver.FindOptimalPath(b, prov)
	require.NoError(t, err)
	require.True(t, res.Solved)
	assert.LessOrEqual(t, len(res.Moves), 80)

	cur := b
	for _, d := range res.Moves {
		next, ok := cur.Shift(d)
		require.True(t, ok)
		cur = next
	}
	assert.True(t, cur.IsGoal())
}

func TestHeuristicFacadeMatchesProviderInitial(t *testing.T) {
	prov := mdlcProvider(t)
	b := board.Goal()

	next, ok := b.Shift(board.Left)
	require.True(t, ok)

	v, _ := prov.Initial(next)
	assert.Equal(t, v, solver.Heuristic(next, prov))
}
