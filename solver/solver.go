package solver

import (
	"context"
	"time"

	"github.com/katalvlaran/puzzle15/board"
	"github.com/katalvlaran/puzzle15/heuristic"
	"github.com/katalvlaran/puzzle15/oracle"
)

// FindOptimalPath searches for a shortest move sequence from root to the
// goal configuration, using prov to both bound (admissible lower bound)
// and guide (move ordering) the search. It returns ErrSearchExhausted
// if root is unsolvable or if the cost bound passes maxDepthCap with no
// solution found. A search cut off by the timeout returns a Result with
// Timeout set and a nil error.
func FindOptimalPath(root board.Board, prov heuristic.Provider, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if !root.IsSolvable() {
		return Result{}, ErrSearchExhausted
	}
	if root.IsGoal() {
		return Result{Moves: nil, Solved: true}, nil
	}

	orc := cfg.Oracle
	if orc == nil {
		orc = oracle.Noop{}
	}

	rootVal, rootState := prov.Initial(root)

	ctx := context.Background()
	limit := int(rootVal)
	if est, _, ok := orc.Lookup(ctx, root); ok && est > limit {
		limit = est
	}

	e := &engine{
		prov:          prov,
		solutionMoves: make([]board.Direction, maxDepthCap),
	}
	if cfg.TimeoutMs > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(time.Duration(cfg.TimeoutMs) * time.Millisecond)
	}

	for limit <= maxDepthCap {
		e.solved = false
		if e.runPass(root, limit, rootVal, rootState) {
			break
		}
		if e.timeout {
			return Result{Timeout: true, Expanded: e.totalNodes}, nil
		}

		e.commitPassSummary()
		limit += 2
	}

	if !e.solved {
		return Result{Expanded: e.totalNodes}, ErrSearchExhausted
	}

	moves := append([]board.Direction(nil), e.solutionMoves[:e.foundDepth]...)
	_ = orc.Submit(ctx, root, moves)

	return Result{Moves: moves, Solved: true, Expanded: e.totalNodes}, nil
}

// Heuristic reports the admissible lower bound prov assigns to b,
// useful for diagnostics and for callers choosing a Kind (spec.md §4.4).
func Heuristic(b board.Board, prov heuristic.Provider) uint8 {
	val, _ := prov.Initial(b)

	return val
}
