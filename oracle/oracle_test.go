package oracle_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/puzzle15/board"
	"github.com/katalvlaran/puzzle15/oracle"
)

func TestNoopAlwaysMisses(t *testing.T) {
	var o oracle.Noop
	ctx := context.Background()

	_, prefix, ok := o.Lookup(ctx, board.Goal())
	assert.False(t, ok)
	assert.Nil(t, prefix)

	require.NoError(t, o.Submit(ctx, board.Goal(), []board.Direction{board.Right}))
	_, _, ok = o.Lookup(ctx, board.Goal())
	assert.False(t, ok)
}
