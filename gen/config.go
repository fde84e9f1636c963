package gen

import "math/rand"

// Option customizes board generation (the teacher's BuilderOption style:
// a function mutating a private config, resolved once per call).
type Option func(cfg *genConfig)

// genConfig holds the configurable parameters shared by every generator
// in this package.
type genConfig struct {
	rng         *rand.Rand // optional RNG; nil means deterministic behavior
	maxAttempts int        // rejection-sampling budget for Moderate/Easy/Hard
}

const defaultMaxAttempts = 10000

// newGenConfig returns a genConfig initialized with defaults, then
// applies each Option in order. With no RNG option, generators fall
// back to a fixed, package-local deterministic source (see randSource).
func newGenConfig(opts ...Option) *genConfig {
	cfg := &genConfig{
		rng:         nil,
		maxAttempts: defaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithSeed seeds a fresh, deterministic RNG for this call. Later options
// (including a later WithRand) override it.
func WithSeed(seed int64) Option {
	return func(cfg *genConfig) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand injects a caller-owned RNG, e.g. one shared across many
// generation calls. A nil r is a no-op.
func WithRand(r *rand.Rand) Option {
	return func(cfg *genConfig) {
		if r != nil {
			cfg.rng = r
		}
	}
}

// WithMaxAttempts bounds the rejection-sampling loop used by Moderate,
// Easy and Hard. n <= 0 is a no-op.
func WithMaxAttempts(n int) Option {
	return func(cfg *genConfig) {
		if n > 0 {
			cfg.maxAttempts = n
		}
	}
}

// randSource returns cfg's RNG, falling back to a fixed deterministic
// seed (the teacher's "nil RNG means deterministic behavior" convention,
// builder/config.go) when no seed or RNG option was supplied.
func randSource(cfg *genConfig) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}

	return rand.New(rand.NewSource(0))
}
