// Package testutil provides reusable test helper functions for curve and
// thinning tests.
package testutil

import (
	"fmt"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tphakala/go-curve-minify/internal/mathutil"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance    = 1e-10
	ContinuityTolerance = 1e-9
	SolveTolerance      = 1e-8
)

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, fmt.Sprintf("found NaN: s[%d] is NaN", i), msgAndArgs...)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, fmt.Sprintf("found Inf: s[%d] is Inf", i), msgAndArgs...)
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange(t *testing.T, s []float64, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, fmt.Sprintf("value out of range: s[%d]=%f is outside [%f, %f]",
				i, v, minVal, maxVal), msgAndArgs...)
		}
	}
	return true
}

// AssertStrictlyAscendingX verifies that point x values strictly increase.
func AssertStrictlyAscendingX(t *testing.T, points []mathutil.Point, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(points); i++ {
		if points[i].X <= points[i-1].X {
			return assert.Fail(t, fmt.Sprintf("x not strictly ascending: points[%d].X=%f <= points[%d].X=%f",
				i, points[i].X, i-1, points[i-1].X), msgAndArgs...)
		}
	}
	return true
}

// AssertRelativeError verifies that the relative error between actual and expected is within tolerance.
func AssertRelativeError(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	if relError > tolerance {
		return assert.Fail(t, fmt.Sprintf("relative error %e exceeds tolerance %e (expected=%f, actual=%f)",
			relError, tolerance, expected, actual), msgAndArgs...)
	}
	return true
}

// AssertSlicesInDelta verifies element-wise closeness of two slices.
func AssertSlicesInDelta(t *testing.T, expected, actual []float64, delta float64, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Len(t, actual, len(expected), msgAndArgs...) {
		return false
	}
	for i := range expected {
		if !assert.InDelta(t, expected[i], actual[i], delta, "index %d", i) {
			return false
		}
	}
	return true
}

// RandomTable returns n points with strictly increasing x, gaps in
// [0.1, 2.1) and y in [-amp, amp).
func RandomTable(rng *rand.Rand, n int, amp float64) []mathutil.Point {
	points := make([]mathutil.Point, n)
	x := rng.Float64()
	for i := range points {
		points[i] = mathutil.Point{X: x, Y: (rng.Float64()*2 - 1) * amp}
		x += 0.1 + rng.Float64()*2
	}
	return points
}

// RandomIntTable returns n points at x = 0..n-1 with y a random walk of
// steps in [-maxStep, maxStep].
func RandomIntTable(rng *rand.Rand, n int, maxStep int64) []mathutil.IntPoint {
	points := make([]mathutil.IntPoint, n)
	var y int64
	for i := range points {
		points[i] = mathutil.IntPoint{X: int64(i), Y: y}
		y += rng.Int64N(2*maxStep+1) - maxStep
	}
	return points
}
