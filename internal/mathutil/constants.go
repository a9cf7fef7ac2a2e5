package mathutil

import "errors"

// Sweep constants
const (
	// minSweepSteps is the smallest step count for which a sweep has a
	// defined step width (both endpoints are always produced).
	minSweepSteps = 2

	// logSweepOffset shifts the logarithmic sweep so that its first value
	// is exactly the minimum: min - 1 + exp(0) = min.
	logSweepOffset = 1.0
)

// Region analysis constants
const (
	// midpointDivisor locates the midpoint of two adjacent samples.
	midpointDivisor = 2.0
)

// ErrInvalidSweep indicates sweep parameters that cannot produce a sequence.
var ErrInvalidSweep = errors.New("invalid sweep parameters")
