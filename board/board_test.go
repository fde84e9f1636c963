package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/puzzle15/board"
)

func TestGoal(t *testing.T) {
	b := board.Goal()
	assert.True(t, b.IsGoal())
	assert.True(t, b.IsSolvable())
	h1, h2 := b.Hash()
	assert.Equal(t, uint32(0x12345678), h1)
	assert.Equal(t, uint32(0x9ABCDEF0), h2)
}

func TestNewRejectsNonPermutation(t *testing.T) {
	var bad [16]byte
	for i := range bad {
		bad[i] = 1 // duplicates everywhere, not a permutation
	}
	_, err := board.New(bad)
	assert.ErrorIs(t, err, board.ErrInvalidInput)
}

// S2: one move (Down) separates this board from goal.
func TestScenarioS2OneMoveDown(t *testing.T) {
	b, err := board.New([16]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 0, 13, 14, 15, 12})
	require.NoError(t, err)
	require.True(t, b.IsSolvable())

	n, ok := b.Shift(board.Down)
	require.True(t, ok)
	assert.True(t, n.IsGoal())
}

// S3: one move (Right) separates this board from goal.
func TestScenarioS3OneMoveRight(t *testing.T) {
	b, err := board.New([16]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 0, 15})
	require.NoError(t, err)

	n, ok := b.Shift(board.Right)
	require.True(t, ok)
	assert.True(t, n.IsGoal())
}

// S5: a single adjacent-value swap on goal makes it unsolvable.
func TestScenarioS5Unsolvable(t *testing.T) {
	b, err := board.New([16]byte{2, 1, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 0})
	require.NoError(t, err)
	assert.False(t, b.IsSolvable())
}

// S6: an identical-symmetry board exposes at most 2 neighbors.
func TestScenarioS6IdenticalSymmetryLimitsNeighbors(t *testing.T) {
	b := board.Goal() // goal is its own diagonal twin
	require.True(t, b.IsIdenticalSymmetry())
	assert.LessOrEqual(t, len(b.Neighbors()), 2)
	for _, n := range b.Neighbors() {
		assert.True(t, n.IsSolvable())
	}
}

func TestNeighborsOrderIsFixed(t *testing.T) {
	b, err := board.New([16]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 0, 14, 15})
	require.NoError(t, err)

	var order []board.Direction
	for _, d := range board.Directions {
		if b.CanMove(d) {
			order = append(order, d)
		}
	}
	neighbors := b.Neighbors()
	require.Len(t, neighbors, len(order))
	for i, d := range order {
		want, ok := b.Shift(d)
		require.True(t, ok)
		assert.True(t, want.Equal(neighbors[i]))
	}
}

func TestShiftOffBoardFails(t *testing.T) {
	b := board.Goal() // blank at bottom-right: Right and Down are illegal
	_, ok := b.Shift(board.Right)
	assert.False(t, ok)
	_, ok = b.Shift(board.Down)
	assert.False(t, ok)
}

func TestSymmetryTwinRoundTrips(t *testing.T) {
	b, err := board.New([16]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 0, 15})
	require.NoError(t, err)
	twin := b.Symmetry()
	assert.True(t, twin.Symmetry().Equal(b))
}

func TestParseRoundTrip(t *testing.T) {
	b := board.Goal()
	parsed, err := board.Parse(b.String())
	require.NoError(t, err)
	assert.True(t, b.Equal(parsed))
}

func TestDirectionOppositeIsInvolution(t *testing.T) {
	for _, d := range board.Directions {
		assert.Equal(t, d, d.Opposite().Opposite())
	}
}
