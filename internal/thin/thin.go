// Package thin reduces integer point tables to the cornerpoints needed to
// reconstruct them by linear interpolation within an error bound.
package thin

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/tphakala/go-curve-minify/internal/mathutil"
)

var (
	// ErrEmptyTable indicates a thinning request without points.
	ErrEmptyTable = errors.New("thin: empty table")

	// ErrInvalidBound indicates a negative or NaN error bound.
	ErrInvalidBound = errors.New("thin: invalid error bound")

	// ErrUnsortedTable indicates x values that do not strictly increase.
	ErrUnsortedTable = errors.New("thin: x values must strictly increase")
)

const (
	// minWindowPoints is the smallest window that has an interior point.
	minWindowPoints = 3

	// smallCoordLimit bounds coordinates for the int64 window error path:
	// differences stay below 2^26, so numerators stay below 2^53.
	smallCoordLimit = 1 << 25
)

// Cornerpoint is a point kept by Thin.
type Cornerpoint struct {
	X, Y int64

	// Error is the signed worst deviation y_interp - y over the original
	// points between the previous cornerpoint and this one.
	Error float64

	// HasError is false for the first cornerpoint and for cornerpoints
	// whose segment has no interior point.
	HasError bool
}

// Result is the output of Thin.
type Result struct {
	Cornerpoints []Cornerpoint

	// MaxError is the cornerpoint error with the largest magnitude, sign
	// preserved.
	MaxError float64

	// InputCount is the number of points that were thinned.
	InputCount int
}

// Points returns the cornerpoints as real points.
func (r *Result) Points() []mathutil.Point {
	out := make([]mathutil.Point, len(r.Cornerpoints))
	for i, c := range r.Cornerpoints {
		out[i] = mathutil.Point{X: float64(c.X), Y: float64(c.Y)}
	}
	return out
}

// Thin keeps the first point, then repeatedly extends a straight segment
// from the last kept point (the anchor) for as long as every point inside
// the segment stays within maxError of the line, and keeps the endpoint of
// the longest accepted segment. The last point is always kept.
//
// The search is greedy: it stops at the first candidate endpoint that
// exceeds the bound, even if a longer one would fit again. Points must be
// sorted by strictly increasing x.
//
// Each candidate is checked in constant time against the range of slopes
// the points already passed allow, so a table is thinned in O(n) however
// long its segments get. The comparison is exact for any int64 input.
func Thin(points []mathutil.IntPoint, maxError float64) (*Result, error) {
	if len(points) == 0 {
		return nil, ErrEmptyTable
	}
	if math.IsNaN(maxError) || maxError < 0 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidBound, maxError)
	}
	for i := 1; i < len(points); i++ {
		if points[i].X <= points[i-1].X {
			return nil, fmt.Errorf("%w: x = %d follows x = %d", ErrUnsortedTable, points[i].X, points[i-1].X)
		}
	}

	n := len(points)
	res := &Result{
		Cornerpoints: []Cornerpoint{{X: points[0].X, Y: points[0].Y}},
		InputCount:   n,
	}

	for anchor := 0; anchor < n-1; {
		next := anchor + 1
		cone := newSlopeCone(points[anchor], maxError)
		for c := anchor + minWindowPoints - 1; c < n; c++ {
			cone.add(points[c-1])
			if !cone.admits(points[c]) {
				break
			}
			next = c
		}

		cp := Cornerpoint{X: points[next].X, Y: points[next].Y}
		if next > anchor+1 {
			cp.Error = WindowError(points[anchor : next+1])
			cp.HasError = true
		}
		res.Cornerpoints = append(res.Cornerpoints, cp)
		res.MaxError = mathutil.AbsMax(res.MaxError, cp.Error)
		anchor = next
	}
	return res, nil
}

// WindowError returns the signed deviation y_interp - y with the largest
// magnitude over the interior points of window, where y_interp is the line
// through the first and last point. Ties keep the first interior point.
// Windows with fewer than three points return 0.
//
// Deviations are compared as exact integer numerators over the common
// denominator x_last - x_first; only the result is converted to float.
func WindowError(window []mathutil.IntPoint) float64 {
	if len(window) < minWindowPoints {
		return 0
	}
	if fitsSmall(window) {
		return windowErrorSmall(window)
	}
	return windowErrorBig(window)
}

// fitsSmall reports whether every coordinate is within smallCoordLimit, so
// the numerators stay exact in both int64 and float64.
func fitsSmall(window []mathutil.IntPoint) bool {
	for _, p := range window {
		if p.X < -smallCoordLimit || p.X > smallCoordLimit ||
			p.Y < -smallCoordLimit || p.Y > smallCoordLimit {
			return false
		}
	}
	return true
}

func windowErrorSmall(window []mathutil.IntPoint) float64 {
	first, last := window[0], window[len(window)-1]
	dx := last.X - first.X
	dy := last.Y - first.Y
	if dx == 0 {
		return 0
	}

	var worst int64
	for _, p := range window[1 : len(window)-1] {
		num := (first.Y-p.Y)*dx + (p.X-first.X)*dy
		if absInt(num) > absInt(worst) {
			worst = num
		}
	}
	return float64(worst) / float64(dx)
}

func windowErrorBig(window []mathutil.IntPoint) float64 {
	first, last := window[0], window[len(window)-1]
	var dx, dy, rise, run, num, worst big.Int
	diff(&dx, last.X, first.X)
	diff(&dy, last.Y, first.Y)
	if dx.Sign() == 0 {
		return 0
	}

	for _, p := range window[1 : len(window)-1] {
		rise.Mul(diff(&rise, first.Y, p.Y), &dx)
		run.Mul(diff(&run, p.X, first.X), &dy)
		num.Add(&rise, &run)
		if num.CmpAbs(&worst) > 0 {
			worst.Set(&num)
		}
	}
	f, _ := new(big.Rat).SetFrac(&worst, &dx).Float64()
	return f
}

// diff sets z to a - b without overflow and returns z.
func diff(z *big.Int, a, b int64) *big.Int {
	var t big.Int
	return z.Sub(z.SetInt64(a), t.SetInt64(b))
}

func absInt(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
