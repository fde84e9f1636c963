package walkdist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/puzzle15/board"
	"github.com/katalvlaran/puzzle15/walkdist"
)

func TestGoalIndexHasZeroValue(t *testing.T) {
	tbl := walkdist.Generate()
	goal := board.Goal()

	idx := tbl.Index(goal.Tiles())
	assert.Equal(t, uint8(0), tbl.Value(idx))
}

func TestRowAndColumnProjectionsAgreeAtGoal(t *testing.T) {
	tbl := walkdist.Generate()
	goal := board.Goal()

	rowIdx := tbl.Index(goal.Tiles())
	colIdx := tbl.Index(goal.TilesSym())
	assert.Equal(t, rowIdx, colIdx) // goal is identical under reflection
}

func TestNextMatchesActualVerticalMove(t *testing.T) {
	tbl := walkdist.Generate()

	b, err := board.New([16]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 0, 12, 13, 14, 11, 15})
	require.NoError(t, err)

	moved, ok := b.Shift(board.Down)
	require.True(t, ok)

	startIdx := tbl.Index(b.Tiles())
	wantIdx := tbl.Index(moved.Tiles())

	// The tile that moves on a Down blank-shift is the one below the
	// blank, tile 11, whose goal row is (11-1)/4 = 2.
	gotIdx := tbl.Next(startIdx, (11-1)/4, board.Down)
	assert.Equal(t, wantIdx, gotIdx)
}

func TestValueDecreasesTowardGoal(t *testing.T) {
	tbl := walkdist.Generate()
	goal := board.Goal()

	// One vertical move from goal: tile 12 sits in row 3, so the row
	// projection differs from the goal's.
	scrambled, err := board.New([16]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 0, 13, 14, 15, 12})
	require.NoError(t, err)

	goalVal := tbl.Value(tbl.Index(goal.Tiles()))
	scrambledVal := tbl.Value(tbl.Index(scrambled.Tiles()))
	assert.Equal(t, uint8(0), goalVal)
	assert.Greater(t, scrambledVal, goalVal)
}
