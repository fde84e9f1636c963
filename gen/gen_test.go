package gen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/puzzle15/gen"
	"github.com/katalvlaran/puzzle15/heuristic"
)

func TestRandomProducesSolvableBoard(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		b := gen.Random(gen.WithSeed(seed))
		assert.True(t, b.IsSolvable())
	}
}

func TestRandomIsDeterministicForSameSeed(t *testing.T) {
	a := gen.Random(gen.WithSeed(42))
	b := gen.Random(gen.WithSeed(42))
	assert.Equal(t, a.Tiles(), b.Tiles())
}

func TestModerateHeuristicInRange(t *testing.T) {
	b, err := gen.Moderate(gen.WithSeed(7))
	require.NoError(t, err)
	assert.True(t, b.IsSolvable())

	md, err := heuristic.NewProvider(heuristic.MD, heuristic.Tables{})
	require.NoError(t, err)
	v, _ := md.Initial(b)
	assert.GreaterOrEqual(t, int(v), 20)
	assert.LessOrEqual(t, int(v), 45)
}

func TestEasyIsNeverGoal(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		b, err := gen.Easy(gen.WithSeed(seed))
		require.NoError(t, err)
		assert.False(t, b.IsGoal())
	}
}

func TestHardWithNoRNGIsDeterministic(t *testing.T) {
	a, err := gen.Hard()
	require.NoError(t, err)
	b, err := gen.Hard()
	require.NoError(t, err)
	assert.Equal(t, a.Tiles(), b.Tiles())
}

func TestHardProducesSolvableBoard(t *testing.T) {
	b, err := gen.Hard(gen.WithSeed(3))
	require.NoError(t, err)
	assert.True(t, b.IsSolvable())
}
