package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/puzzle15/board"
	"github.com/katalvlaran/puzzle15/pattern"
)

func TestCanonicalPartitionsValidate(t *testing.T) {
	for _, p := range []pattern.Partition{pattern.Partition663, pattern.Partition555, pattern.Partition78} {
		assert.NoError(t, p.Validate(), p.Name)
	}
}

func TestInvalidPartitionRejected(t *testing.T) {
	bad := pattern.Partition{Groups: []pattern.Group{{Tiles: []byte{1, 2}}}} // size 2 unsupported, doesn't sum to 15
	assert.ErrorIs(t, bad.Validate(), pattern.ErrInvalidPartition)
}

func TestGenerateGroupSize3Shapes(t *testing.T) {
	gt := pattern.Generate(3)
	assert.Len(t, gt.KeysToCombo, 6)           // 3!
	assert.Len(t, gt.FormatsToCombo, 560)      // C(16,3)
	assert.Len(t, gt.LinkFormatMove, 560*64)
	assert.Len(t, gt.LinkFormatCombo, 560*3*4)
}

func TestLoadOrGenerateRoundTrip(t *testing.T) {
	dir := t.TempDir()
	p := pattern.Partition{Groups: []pattern.Group{
		{Tiles: []byte{1, 2, 3}},
		{Tiles: []byte{4, 5, 6, 7, 8}},
		{Tiles: []byte{9, 10, 11, 12, 13, 14, 15}},
	}}
	require.NoError(t, p.Validate())

	t1, err := pattern.LoadOrGenerate(dir, p)
	require.NoError(t, err)

	// Second call must read the persisted files rather than regenerate,
	// and produce an equivalent heuristic for the goal board (property P7).
	t2, err := pattern.LoadOrGenerate(dir, p)
	require.NoError(t, err)

	goal := board.Goal()
	assert.Equal(t, t1.Sum(goal), t2.Sum(goal))
	assert.Equal(t, 0, t1.Sum(goal)) // goal board costs 0 for every group
}

func TestGroupValueAtGoalIsZero(t *testing.T) {
	dir := t.TempDir()
	tables, err := pattern.LoadOrGenerate(dir, pattern.Partition663)
	require.NoError(t, err)

	assert.Equal(t, 0, tables.Sum(board.Goal()))
}

func TestGroupOf(t *testing.T) {
	dir := t.TempDir()
	tables, err := pattern.LoadOrGenerate(dir, pattern.Partition663)
	require.NoError(t, err)

	gi, ok := tables.GroupOf(1)
	require.True(t, ok)
	assert.Equal(t, 0, gi)

	gi, ok = tables.GroupOf(15)
	require.True(t, ok)
	assert.Equal(t, 2, gi)

	_, ok = tables.GroupOf(0)
	assert.False(t, ok)
}

func TestApplyMoveTracksActualMove(t *testing.T) {
	dir := t.TempDir()
	tables, err := pattern.LoadOrGenerate(dir, pattern.Partition663)
	require.NoError(t, err)

	b, err := board.New([16]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 0, 15})
	require.NoError(t, err)
	gi, ok := tables.GroupOf(15)
	require.True(t, ok)

	k0, f0 := tables.GroupState(b, gi)
	zx, zy := b.ZeroPos()
	blankPos := zy*4 + zx

	next, ok := b.Shift(board.Right)
	require.True(t, ok)

	k1, f1 := tables.ApplyMove(gi, k0, f0, blankPos, board.Right)
	wantK, wantF := tables.GroupState(next, gi)
	assert.Equal(t, wantK, k1)
	assert.Equal(t, wantF, f1)
}
