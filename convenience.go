package minify

import (
	"github.com/tphakala/go-curve-minify/internal/linalg"
	"github.com/tphakala/go-curve-minify/internal/mathutil"
	"github.com/tphakala/go-curve-minify/internal/thin"
)

// Sweep selects the x values Resample evaluates.
type Sweep struct {
	// XMin and XMax bound the sweep. Nil uses the first and last x of the
	// table.
	XMin, XMax *float64

	// Steps is the number of points, at least 2. Zero means
	// DefaultSweepSteps.
	Steps int

	// Logarithmic spaces the points as xmin - 1 + e^(k*i), which is dense
	// near xmin.
	Logarithmic bool
}

// Resample fits a curve through points and evaluates it on a sweep.
//
// Example:
//
//	out, err := minify.Resample(points, minify.AlgorithmCubicSpline, minify.Sweep{Steps: 50})
func Resample(points []Point, alg Algorithm, sweep Sweep) ([]Point, error) {
	p, err := buildResamplePipeline(alg, sweep)
	if err != nil {
		return nil, err
	}
	out, _, err := p.Process(points)
	return out, err
}

// Minify reduces points to cornerpoints within config.MaxError.
//
// Points are filtered to the configured x range and rounded half to even
// before thinning. When several points round to the same x the one closest
// to it is used.
func Minify(points []Point, config *Config) (*Result, error) {
	p, err := buildMinifyPipeline(config)
	if err != nil {
		return nil, err
	}
	res, report, err := p.Minify(points)
	if err != nil {
		return nil, err
	}
	return &Result{ThinResult: res, Report: report}, nil
}

// Thin reduces an integer table, sorted by strictly increasing x, to
// cornerpoints within maxError.
func Thin(points []IntPoint, maxError float64) (*ThinResult, error) {
	return thin.Thin(points, maxError)
}

// Quantize rounds points to the integer grid as Minify does.
func Quantize(points []Point) ([]IntPoint, error) {
	return thin.Quantize(points)
}

// NewTridiagonal returns an n x n tridiagonal system with all bands zero.
// Fill it with SetRow before calling Solve.
func NewTridiagonal(n int, opts ...TridiagonalOption) (*Tridiagonal, error) {
	return linalg.NewTridiagonal(n, opts...)
}

// WithPivotTolerance makes Solve reject pivots with magnitude <= eps.
func WithPivotTolerance(eps float64) TridiagonalOption {
	return linalg.WithPivotTolerance(eps)
}

// NewMatrix builds a dense matrix from rows of equal length.
func NewMatrix(rows [][]float64) (*Matrix, error) {
	return linalg.NewMatrix(rows)
}

// AnalyzeRegion reports the x and y span and the slope statistics of the
// points whose y lies in [yMin, yMax].
func AnalyzeRegion(points []Point, yMin, yMax float64, xName, yName string) *RegionAnalysis {
	return mathutil.AnalyzeRegion(points, yMin, yMax, xName, yName)
}
