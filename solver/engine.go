package solver

import (
	"sort"
	"time"

	"github.com/katalvlaran/puzzle15/board"
	"github.com/katalvlaran/puzzle15/heuristic"
)

// maxDepthCap is the known upper bound on any 4x4 sliding-tile puzzle's
// optimal solution length (spec.md §4.5).
const maxDepthCap = 80

// Rotation classes for swirl detection: whether a move turns clockwise
// or counter-clockwise relative to the move before it, in the cyclic
// order Right, Down, Left, Up (board.Directions is already in this
// order, so the class is just the signed step between direction
// indices).
const (
	rotNone = 0
	rotCW   = 1
	rotCCW  = 2
)

// cwMask and ccwMask are the swirlKey values reached after three
// consecutive turns of the same rotation: the move that produces one of
// them completes a 4-move loop that brings the blank back to its starting
// cell (the three tiles around that loop end up rotated), and dfs prunes
// it (spec.md §4.5).
const (
	cwMask  = 0b010101
	ccwMask = 0b101010
)

func rotationClass(prev, cur board.Direction) int {
	switch (int(cur) - int(prev) + 4) % 4 {
	case 1:
		return rotCW
	case 3:
		return rotCCW
	default:
		return rotNone
	}
}

func isSwirlCycle(key uint8) bool {
	return key == cwMask || key == ccwMask
}

// depthSummary records one root-level direction's outcome from the
// previous failed deepening pass: the heuristic estimate just past that
// move, and how many nodes its subtree explored. The next pass orders
// root branches by ascending estimate, tie-broken by fewer nodes, to
// exhaust the most promising branch first (spec.md §4.5).
type depthSummary struct {
	estimate int
	nodes    int
}

// engine holds all search state for one FindOptimalPath call. A
// dedicated struct (rather than closures) keeps the hot recursive path's
// state explicit, mirroring the teacher's bbEngine (tsp/bb.go).
type engine struct {
	prov heuristic.Provider

	useDeadline bool
	deadline    time.Time
	steps       int

	solutionMoves []board.Direction
	foundDepth    int
	solved        bool
	timeout       bool

	totalNodes       int
	rootEstimate     [4]int
	passNodes        [4]int
	lastDepthSummary [4]depthSummary
}

// deadlineCheck performs a rare wall-clock check (every 4096 node
// visits), matching the teacher's sparse-polling convention.
func (e *engine) deadlineCheck() bool {
	e.steps++
	if !e.useDeadline || e.steps&4095 != 0 {
		return false
	}

	return time.Now().After(e.deadline)
}

// rootOrder returns the four directions ordered by last pass's recorded
// estimate (ascending), tie-broken by fewer explored nodes. Before the
// first pass every summary is zero, so the order is the natural
// Right, Down, Left, Up.
func (e *engine) rootOrder() []board.Direction {
	dirs := board.Directions
	order := dirs[:]
	sort.SliceStable(order, func(i, j int) bool {
		si, sj := e.lastDepthSummary[order[i]], e.lastDepthSummary[order[j]]
		if si.estimate != sj.estimate {
			return si.estimate < sj.estimate
		}

		return si.nodes < sj.nodes
	})

	return order
}

// commitPassSummary folds this pass's per-branch node counts (and the
// always-current per-branch estimates) into lastDepthSummary for the
// next pass's root ordering, then resets the counters.
func (e *engine) commitPassSummary() {
	for i := 0; i < 4; i++ {
		e.lastDepthSummary[i] = depthSummary{estimate: e.rootEstimate[i], nodes: e.passNodes[i]}
		e.passNodes[i] = 0
	}
}

// orderedMoves returns the directions to try from a node reached via
// lastDir: first the straight continuation, then the two perpendicular
// turns (spec.md §4.5). The reverse of lastDir is never included.
func orderedMoves(lastDir board.Direction) [3]board.Direction {
	if lastDir.IsVertical() {
		return [3]board.Direction{lastDir, board.Right, board.Left}
	}

	return [3]board.Direction{lastDir, board.Down, board.Up}
}

// runPass attempts to find a solution within cost bound limit, trying
// root moves in rootOrder() and recursing into dfs for each. Returns
// true if solved; returns false both when the bound is exhausted and when
// the deadline was hit mid-pass (callers check e.timeout to distinguish
// the two).
func (e *engine) runPass(root board.Board, limit int, rootVal uint8, rootState heuristic.State) bool {
	for _, d := range e.rootOrder() {
		if !root.CanMove(d) {
			continue
		}
		next, ok := root.Shift(d)
		if !ok {
			continue
		}

		nextVal, nextState := e.prov.Update(rootState, next, d)
		e.rootEstimate[d] = int(nextVal)

		if nextVal == 0 {
			e.solutionMoves[0] = d
			e.foundDepth = 1
			e.solved = true

			return true
		}
		if 1+int(nextVal) > limit {
			continue
		}

		e.solutionMoves[0] = d
		if e.dfs(next, 1, limit, d, 0, nextVal, nextState, int(d)) {
			return true
		}
		if e.timeout {
			return false
		}
	}

	return false
}

// dfs explores the subtree rooted at board b, reached at accumulated
// cost depth via lastDir, bounded by limit. swirlKey is the rolling
// 2-bit-per-step rotation record (spec.md §4.5); rootBranch attributes
// visited nodes back to the top-level direction for commitPassSummary.
func (e *engine) dfs(b board.Board, depth, limit int, lastDir board.Direction, swirlKey uint8, hVal uint8, hState heuristic.State, rootBranch int) bool {
	if e.deadlineCheck() {
		e.timeout = true

		return false
	}
	e.totalNodes++
	e.passNodes[rootBranch]++

	for _, d := range orderedMoves(lastDir) {
		if d == lastDir.Opposite() {
			continue
		}
		if !b.CanMove(d) {
			continue
		}

		rot := rotationClass(lastDir, d)
		nextKey := ((swirlKey << 2) | uint8(rot)) & 0x3F
		if isSwirlCycle(nextKey) {
			continue
		}

		next, ok := b.Shift(d)
		if !ok {
			continue
		}

		nextVal, nextState := e.prov.Update(hState, next, d)
		if nextVal == 0 {
			e.solutionMoves[depth] = d
			e.foundDepth = depth + 1
			e.solved = true

			return true
		}
		if depth+1+int(nextVal) > limit {
			continue
		}

		e.solutionMoves[depth] = d
		if e.dfs(next, depth+1, limit, d, nextKey, nextVal, nextState, rootBranch) {
			return true
		}
		if e.timeout {
			return false
		}
	}

	return false
}
