package mathutil

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Sweep returns steps values running from minVal to maxVal inclusive.
//
// A linear sweep spaces the values evenly. A logarithmic sweep places them
// at minVal - 1 + exp(i * ln(maxVal - minVal + 1) / (steps - 1)), which
// starts exactly at minVal, ends exactly at maxVal and packs the values
// densely near the minimum.
//
// Returns ErrInvalidSweep when steps < 2, when a bound is not finite, or
// when a logarithmic sweep is requested with maxVal < minVal.
func Sweep(minVal, maxVal float64, steps int, logarithmic bool) ([]float64, error) {
	if steps < minSweepSteps {
		return nil, fmt.Errorf("%w: need at least %d steps, got %d", ErrInvalidSweep, minSweepSteps, steps)
	}
	if math.IsNaN(minVal) || math.IsInf(minVal, 0) || math.IsNaN(maxVal) || math.IsInf(maxVal, 0) {
		return nil, fmt.Errorf("%w: bounds must be finite", ErrInvalidSweep)
	}

	values := make([]float64, steps)
	if !logarithmic {
		return floats.Span(values, minVal, maxVal), nil
	}

	if maxVal < minVal {
		return nil, fmt.Errorf("%w: logarithmic sweep requires max >= min", ErrInvalidSweep)
	}

	lspan := math.Log(maxVal - minVal + logSweepOffset)
	step := lspan / float64(steps-1)
	for i := range values {
		values[i] = minVal - logSweepOffset + math.Exp(step*float64(i))
	}
	values[steps-1] = maxVal
	return values, nil
}
