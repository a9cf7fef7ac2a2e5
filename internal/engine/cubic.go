package engine

import (
	"fmt"

	"github.com/tphakala/go-curve-minify/internal/linalg"
	"github.com/tphakala/go-curve-minify/internal/mathutil"
	"github.com/tphakala/go-curve-minify/internal/poly"
)

// CubicSplineBuilder fits a natural cubic spline: one cubic per interval,
// continuous up to the second derivative at every knot, with zero second
// derivative at the first and last point.
//
// The interior curvature coefficients come from a tridiagonal system of
// size n-2 solved with the Thomas algorithm.
type CubicSplineBuilder struct {
	// PivotTolerance is passed to the tridiagonal solver. Zero only
	// rejects exactly zero pivots.
	PivotTolerance float64
}

// Name returns the strategy name.
func (CubicSplineBuilder) Name() string { return nameCubicSpline }

// MinPoints returns the smallest table the strategy accepts.
func (CubicSplineBuilder) MinPoints() int { return minCurvePoints }

// Build fits the spline through points, which must be sorted by x with
// distinct x values.
func (b CubicSplineBuilder) Build(points []mathutil.Point) (*poly.Piecewise, error) {
	n := len(points)
	if n < minCurvePoints {
		return nil, fmt.Errorf("%w: got %d", ErrInsufficientPoints, n)
	}

	h := make([]float64, n-1)
	slope := make([]float64, n-1)
	for i := range h {
		h[i] = points[i+1].X - points[i].X
		if h[i] == 0 {
			return nil, fmt.Errorf("%w: x = %g", ErrArithmeticDomain, points[i].X)
		}
		slope[i] = (points[i+1].Y - points[i].Y) / h[i]
	}

	c, err := b.curvatures(h, slope)
	if err != nil {
		return nil, err
	}

	segs := make([]poly.Segment, n-1)
	for i := range segs {
		coeffs := make([]float64, cubicCoefficients)
		coeffs[0] = points[i].Y
		coeffs[1] = slope[i] - h[i]*(splineCurvatureWeight*c[i]+c[i+1])/splineThirds
		coeffs[2] = c[i]
		coeffs[3] = (c[i+1] - c[i]) / (splineThirds * h[i])
		segs[i] = poly.Segment{
			Start: points[i].X,
			Poly:  poly.Polynomial{Coeffs: coeffs, Offset: points[i].X},
		}
	}
	return poly.NewPiecewise(segs)
}

// curvatures returns c_0..c_{n-1}, the half second derivatives at the
// knots. The natural boundary pins c_0 and c_{n-1} to zero.
func (b CubicSplineBuilder) curvatures(h, slope []float64) ([]float64, error) {
	n := len(h) + 1
	c := make([]float64, n)
	m := n - splineBoundaryPoints
	if m == 0 {
		return c, nil
	}

	sys, err := linalg.NewTridiagonal(m, linalg.WithPivotTolerance(b.PivotTolerance))
	if err != nil {
		return nil, err
	}
	rhs := make([]float64, m)
	for k := range m {
		i := k + 1 // knot index
		diag := splineDiagonalFactor * (h[i-1] + h[i])
		switch {
		case m == 1:
			err = sys.SetRow(k, diag)
		case k == 0:
			err = sys.SetRow(k, diag, h[i])
		case k == m-1:
			err = sys.SetRow(k, h[i-1], diag)
		default:
			err = sys.SetRow(k, h[i-1], diag, h[i])
		}
		if err != nil {
			return nil, fmt.Errorf("spline row %d: %w", k, err)
		}
		rhs[k] = splineSlopeFactor * (slope[i] - slope[i-1])
	}

	interior, err := sys.Solve(rhs)
	if err != nil {
		return nil, fmt.Errorf("spline curvatures: %w", err)
	}
	copy(c[1:], interior)
	return c, nil
}
