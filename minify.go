package minify

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/go-curve-minify/internal/engine"
	"github.com/tphakala/go-curve-minify/internal/linalg"
	"github.com/tphakala/go-curve-minify/internal/mathutil"
	"github.com/tphakala/go-curve-minify/internal/pipeline"
	"github.com/tphakala/go-curve-minify/internal/poly"
	"github.com/tphakala/go-curve-minify/internal/thin"
)

// Point is a sample of a real function.
type Point = mathutil.Point

// IntPoint is a sample on the integer grid, as consumed by Thin.
type IntPoint = mathutil.IntPoint

// Segment is one polynomial piece of a Curve.
type Segment = poly.Segment

// Polynomial is a polynomial in (x - Offset) with ascending coefficients.
type Polynomial = poly.Polynomial

// Cursor evaluates a curve and remembers the last located segment.
type Cursor = poly.Cursor

// Cornerpoint is a point kept by thinning, with the error of the segment
// that ends at it.
type Cornerpoint = thin.Cornerpoint

// ThinResult is the output of Thin.
type ThinResult = thin.Result

// Report lists the point count after every minification step.
type Report = pipeline.Report

// Tridiagonal is a banded linear system solved with the Thomas algorithm.
type Tridiagonal = linalg.Tridiagonal

// TridiagonalOption configures a Tridiagonal.
type TridiagonalOption = linalg.Option

// Matrix is a dense matrix.
type Matrix = linalg.Matrix

// RegionAnalysis summarizes the points whose y lies in a range.
type RegionAnalysis = mathutil.RegionAnalysis

// Algorithm selects how a curve is built from points.
type Algorithm = engine.Algorithm

// Available curve algorithms.
const (
	AlgorithmLinear      = engine.AlgorithmLinear
	AlgorithmCubicSpline = engine.AlgorithmCubicSpline
)

// Errors
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid minify configuration")

	ErrInsufficientPoints = engine.ErrInsufficientPoints
	ErrArithmeticDomain   = engine.ErrArithmeticDomain
	ErrUnknownAlgorithm   = engine.ErrUnknownAlgorithm
	ErrInvalidArgument    = linalg.ErrInvalidArgument
	ErrSingularSystem     = linalg.ErrSingularSystem
	ErrDuplicateStart     = poly.ErrDuplicateStart
	ErrEmptyTable         = thin.ErrEmptyTable
	ErrInvalidBound       = thin.ErrInvalidBound
	ErrOutOfRange         = thin.ErrOutOfRange
	ErrInvalidSweep       = mathutil.ErrInvalidSweep
)

// ParseAlgorithm maps "linear" or "cspline" to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	return engine.ParseAlgorithm(s)
}

// Config holds the minification configuration.
type Config struct {
	// MaxError is the largest allowed |y_interp - y| for every original
	// point. Zero keeps every point that is not exactly on a line.
	MaxError float64

	// XMin and XMax restrict the table to an inclusive x range. Nil means
	// unbounded.
	XMin, XMax *float64

	// EnableParallel lets MinifyAll process tables concurrently.
	EnableParallel bool
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if math.IsNaN(c.MaxError) || c.MaxError < 0 {
		return fmt.Errorf("%w: max error must be a non-negative number, got %g", ErrInvalidConfig, c.MaxError)
	}
	if (c.XMin != nil && math.IsNaN(*c.XMin)) || (c.XMax != nil && math.IsNaN(*c.XMax)) {
		return fmt.Errorf("%w: x range bounds must not be NaN", ErrInvalidConfig)
	}
	if c.XMin != nil && c.XMax != nil && *c.XMin > *c.XMax {
		return fmt.Errorf("%w: xmin %g exceeds xmax %g", ErrInvalidConfig, *c.XMin, *c.XMax)
	}
	return nil
}

// Result is the output of Minify.
type Result struct {
	*ThinResult

	// Report holds the point counts of every step.
	Report *Report
}

// Curve is a piecewise polynomial fitted to a point table.
//
// A Curve is immutable and safe for concurrent use.
type Curve struct {
	pw  *poly.Piecewise
	alg Algorithm
}

// NewCurve fits a curve through points with the given algorithm. Points
// may be in any order but must have distinct x values.
func NewCurve(points []Point, alg Algorithm) (*Curve, error) {
	pw, err := engine.Build(points, alg)
	if err != nil {
		return nil, err
	}
	return &Curve{pw: pw, alg: alg}, nil
}

// NewCurveFromSegments wraps hand built segments in a Curve.
func NewCurveFromSegments(segments []Segment) (*Curve, error) {
	pw, err := poly.NewPiecewise(segments)
	if err != nil {
		return nil, err
	}
	return &Curve{pw: pw, alg: -1}, nil
}

// Algorithm returns the algorithm the curve was fitted with, or -1 for
// curves built from segments.
func (c *Curve) Algorithm() Algorithm {
	return c.alg
}

// Eval evaluates the curve at x.
func (c *Curve) Eval(x float64) float64 {
	return c.pw.Eval(x)
}

// EvalAll evaluates the curve at every x. Ascending xs are located in O(1)
// each.
func (c *Curve) EvalAll(xs []float64) []float64 {
	out := make([]float64, len(xs))
	cursor := poly.NewCursor(c.pw)
	for i, x := range xs {
		out[i] = cursor.Eval(x)
	}
	return out
}

// Cursor returns a new cursor over the curve for a single goroutine.
func (c *Curve) Cursor() *Cursor {
	return poly.NewCursor(c.pw)
}

// Derivative returns the derivative curve.
func (c *Curve) Derivative() *Curve {
	return &Curve{pw: c.pw.Derivative(), alg: c.alg}
}

// Segments returns a copy of the curve's segments in ascending order.
func (c *Curve) Segments() []Segment {
	return c.pw.Segments()
}

// Knots returns the interior segment boundaries.
func (c *Curve) Knots() []float64 {
	return c.pw.Knots()
}
