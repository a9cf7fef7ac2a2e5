package engine

import (
	"fmt"

	"github.com/tphakala/go-curve-minify/internal/mathutil"
	"github.com/tphakala/go-curve-minify/internal/poly"
)

// LinearBuilder connects adjacent points with straight segments.
// Outside the table the first and last segments are extended.
type LinearBuilder struct{}

// Name returns the strategy name.
func (LinearBuilder) Name() string { return nameLinear }

// MinPoints returns the smallest table the strategy accepts.
func (LinearBuilder) MinPoints() int { return minCurvePoints }

// Build creates one segment y0 + slope*(x - x0) per adjacent point pair.
func (LinearBuilder) Build(points []mathutil.Point) (*poly.Piecewise, error) {
	if len(points) < minCurvePoints {
		return nil, fmt.Errorf("%w: got %d", ErrInsufficientPoints, len(points))
	}

	segs := make([]poly.Segment, 0, len(points)-1)
	for i := 1; i < len(points); i++ {
		p0, p1 := points[i-1], points[i]
		dx := p1.X - p0.X
		if dx == 0 {
			return nil, fmt.Errorf("%w: x = %g", ErrArithmeticDomain, p0.X)
		}
		coeffs := make([]float64, linearCoefficients)
		coeffs[0] = p0.Y
		coeffs[1] = (p1.Y - p0.Y) / dx
		segs = append(segs, poly.Segment{
			Start: p0.X,
			Poly:  poly.Polynomial{Coeffs: coeffs, Offset: p0.X},
		})
	}
	return poly.NewPiecewise(segs)
}
