// Package engine builds piecewise polynomial curves from point tables.
package engine

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/tphakala/go-curve-minify/internal/mathutil"
	"github.com/tphakala/go-curve-minify/internal/poly"
)

var (
	// ErrInsufficientPoints indicates fewer points than a builder needs.
	ErrInsufficientPoints = errors.New("insufficient points for interpolation")

	// ErrArithmeticDomain indicates two points with the same x, which
	// makes the segment between them zero wide.
	ErrArithmeticDomain = errors.New("zero x span between points")

	// ErrUnknownAlgorithm indicates an algorithm without a builder.
	ErrUnknownAlgorithm = errors.New("unknown interpolation algorithm")
)

// Algorithm selects how a curve is built from points.
type Algorithm int

const (
	// AlgorithmLinear connects adjacent points with straight lines.
	AlgorithmLinear Algorithm = iota

	// AlgorithmCubicSpline fits a natural cubic spline, which is C2
	// continuous and has zero curvature at both ends.
	AlgorithmCubicSpline
)

// String returns the algorithm's command-line name.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmLinear:
		return nameLinear
	case AlgorithmCubicSpline:
		return nameCubicSpline
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps "linear" or "cspline" (case insensitive) to an
// Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case nameLinear:
		return AlgorithmLinear, nil
	case nameCubicSpline:
		return AlgorithmCubicSpline, nil
	default:
		return 0, fmt.Errorf("%w: %q (expected %s or %s)", ErrUnknownAlgorithm, s, nameLinear, nameCubicSpline)
	}
}

// BuildStrategy turns an ascending point table into a curve.
//
// Build receives at least MinPoints points, sorted by x with distinct x
// values; Build (the package function) guarantees both.
type BuildStrategy interface {
	// Name identifies the strategy.
	Name() string

	// MinPoints returns the smallest table the strategy accepts.
	MinPoints() int

	// Build constructs the curve.
	Build(points []mathutil.Point) (*poly.Piecewise, error)
}

// StrategyFor returns the builder for an algorithm with default settings.
func StrategyFor(a Algorithm) (BuildStrategy, error) {
	switch a {
	case AlgorithmLinear:
		return LinearBuilder{}, nil
	case AlgorithmCubicSpline:
		return CubicSplineBuilder{}, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, a)
	}
}

// Build sorts a copy of points by x and builds a curve with the algorithm.
func Build(points []mathutil.Point, a Algorithm) (*poly.Piecewise, error) {
	strategy, err := StrategyFor(a)
	if err != nil {
		return nil, err
	}
	return BuildWith(strategy, points)
}

// BuildWith sorts a copy of points by x and builds a curve with strategy.
//
// Returns ErrInsufficientPoints for tables smaller than the strategy's
// minimum and ErrArithmeticDomain when two points share an x value.
func BuildWith(strategy BuildStrategy, points []mathutil.Point) (*poly.Piecewise, error) {
	if len(points) < strategy.MinPoints() {
		return nil, fmt.Errorf("%w: %s needs at least %d, got %d",
			ErrInsufficientPoints, strategy.Name(), strategy.MinPoints(), len(points))
	}

	sorted := slices.Clone(points)
	mathutil.SortPoints(sorted)
	for i := 1; i < len(sorted); i++ {
		if sorted[i].X == sorted[i-1].X {
			return nil, fmt.Errorf("%w: x = %g appears twice", ErrArithmeticDomain, sorted[i].X)
		}
	}

	curve, err := strategy.Build(sorted)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", strategy.Name(), err)
	}
	return curve, nil
}
