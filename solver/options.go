package solver

import "github.com/katalvlaran/puzzle15/oracle"

// Options configures FindOptimalPath (the teacher's dijkstra.Options /
// functional-option style).
type Options struct {
	// TimeoutMs bounds wall-clock search time; 0 means no timeout.
	TimeoutMs int64
	// Oracle supplies the "advanced mode" initial-estimate boost
	// (spec.md §4.5); nil means no oracle is consulted.
	Oracle oracle.Oracle
}

// Option is a functional option for FindOptimalPath.
type Option func(*Options)

// DefaultOptions returns the zero-configuration defaults: no timeout,
// no oracle.
func DefaultOptions() Options {
	return Options{}
}

// WithTimeout bounds wall-clock search time. ms must be positive;
// non-positive values panic (the teacher's WithMaxDistance/
// WithInfEdgeThreshold convention: invalid option literals are a caller
// bug, not a runtime error).
func WithTimeout(ms int64) Option {
	return func(o *Options) {
		if ms <= 0 {
			panic(ErrBadTimeout.Error())
		}
		o.TimeoutMs = ms
	}
}

// WithOracle enables "advanced mode": the search's initial cost bound is
// tightened to the oracle's stored estimate when available, and any
// newly found optimal solution is pushed back via Submit. The oracle's
// own backing store is out of scope (spec.md §1); the solver only
// depends on this interface.
func WithOracle(o oracle.Oracle) Option {
	return func(opt *Options) {
		opt.Oracle = o
	}
}
