package pipeline

import (
	"fmt"

	"github.com/tphakala/go-curve-minify/internal/engine"
	"github.com/tphakala/go-curve-minify/internal/mathutil"
	"github.com/tphakala/go-curve-minify/internal/poly"
	"github.com/tphakala/go-curve-minify/internal/thin"
)

// RangeFilter keeps the points with XMin <= x <= XMax. A nil bound is open.
type RangeFilter struct {
	XMin, XMax *float64
}

// NewRangeFilter creates a range filter stage.
func NewRangeFilter(xmin, xmax *float64) *RangeFilter {
	return &RangeFilter{XMin: xmin, XMax: xmax}
}

// Name returns the stage name.
func (f *RangeFilter) Name() string { return nameRangeFilter }

// Contains reports whether x is inside the range.
func (f *RangeFilter) Contains(x float64) bool {
	if f.XMin != nil && x < *f.XMin {
		return false
	}
	if f.XMax != nil && x > *f.XMax {
		return false
	}
	return true
}

// Process returns the points inside the range.
func (f *RangeFilter) Process(points []mathutil.Point) ([]mathutil.Point, error) {
	out := make([]mathutil.Point, 0, len(points))
	for _, p := range points {
		if f.Contains(p.X) {
			out = append(out, p)
		}
	}
	return out, nil
}

// ResampleStage fits a curve to its input and evaluates it on a sweep.
//
// The sweep runs from Resampling.XMin to Resampling.XMax when set,
// otherwise over the x range of the input.
type ResampleStage struct {
	strategy    engine.BuildStrategy
	steps       int
	logarithmic bool
	xmin, xmax  *float64
}

// NewResampleStage creates a resample stage.
func NewResampleStage(r Resampling) (*ResampleStage, error) {
	strategy, err := engine.StrategyFor(r.Algorithm)
	if err != nil {
		return nil, err
	}
	if cs, ok := strategy.(engine.CubicSplineBuilder); ok {
		cs.PivotTolerance = r.PivotTolerance
		strategy = cs
	}
	if r.XMin != nil && r.XMax != nil && *r.XMin > *r.XMax {
		return nil, fmt.Errorf("%w: sweep from %g to %g", ErrInvalidParams, *r.XMin, *r.XMax)
	}
	if _, err := mathutil.Sweep(0, 1, r.Steps, false); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidParams, err)
	}
	return &ResampleStage{
		strategy:    strategy,
		steps:       r.Steps,
		logarithmic: r.Logarithmic,
		xmin:        r.XMin,
		xmax:        r.XMax,
	}, nil
}

// Name returns the stage name.
func (s *ResampleStage) Name() string { return nameResample }

// Process builds the curve and samples it.
func (s *ResampleStage) Process(points []mathutil.Point) ([]mathutil.Point, error) {
	curve, err := engine.BuildWith(s.strategy, points)
	if err != nil {
		return nil, err
	}

	lo, hi := mathutil.Extent(points)
	if s.xmin != nil {
		lo = *s.xmin
	}
	if s.xmax != nil {
		hi = *s.xmax
	}
	xs, err := mathutil.Sweep(lo, hi, s.steps, s.logarithmic)
	if err != nil {
		return nil, err
	}
	return Sample(curve, xs), nil
}

// Sample evaluates curve at every x, which must be ascending for the
// location hint to pay off.
func Sample(curve *poly.Piecewise, xs []float64) []mathutil.Point {
	out := make([]mathutil.Point, len(xs))
	cursor := poly.NewCursor(curve)
	for i, x := range xs {
		out[i] = mathutil.Point{X: x, Y: cursor.Eval(x)}
	}
	return out
}

// quantizeStage rounds points to integers. Its output holds integral
// float values so it can flow through the Stage interface.
type quantizeStage struct{}

func (quantizeStage) Name() string { return nameQuantize }

func (quantizeStage) Process(points []mathutil.Point) ([]mathutil.Point, error) {
	q, err := thin.Quantize(points)
	if err != nil {
		return nil, err
	}
	out := make([]mathutil.Point, len(q))
	for i, p := range q {
		out[i] = p.Float()
	}
	return out, nil
}
