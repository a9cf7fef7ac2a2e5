// Package mathutil provides the point types, sampling sweeps and table
// statistics shared by the curve fitting and table minification packages.
package mathutil

import (
	"cmp"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// Point is a sample of a real function.
type Point struct {
	X float64
	Y float64
}

// IntPoint is a sample quantized to the integer grid.
type IntPoint struct {
	X int64
	Y int64
}

// Float returns p as a real point.
func (p IntPoint) Float() Point {
	return Point{X: float64(p.X), Y: float64(p.Y)}
}

// SortPoints sorts points ascending by X in place.
func SortPoints(points []Point) {
	slices.SortStableFunc(points, func(a, b Point) int {
		return cmp.Compare(a.X, b.X)
	})
}

// XValues returns the X coordinates of points.
func XValues(points []Point) []float64 {
	xs := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.X
	}
	return xs
}

// YValues returns the Y coordinates of points.
func YValues(points []Point) []float64 {
	ys := make([]float64, len(points))
	for i, p := range points {
		ys[i] = p.Y
	}
	return ys
}

// Extent returns the smallest and largest X of points, or NaN for an
// empty table.
func Extent(points []Point) (lo, hi float64) {
	if len(points) == 0 {
		return math.NaN(), math.NaN()
	}
	xs := XValues(points)
	return floats.Min(xs), floats.Max(xs)
}

// AbsMax returns whichever of a and b has the larger magnitude, keeping its
// sign. Ties return a.
func AbsMax(a, b float64) float64 {
	if math.Abs(b) > math.Abs(a) {
		return b
	}
	return a
}
