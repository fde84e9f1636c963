package gen

import "errors"

// ErrGenerationExhausted is returned when a rejection-sampling loop
// (Moderate, Easy, Hard) fails to find an acceptable board within
// maxAttempts tries. A correctly seeded RNG essentially never triggers
// this; it guards against a caller-supplied RNG stuck on a narrow range.
var ErrGenerationExhausted = errors.New("gen: exhausted attempts without an acceptable board")
