package minify

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var splineTable = []Point{
	{X: 1, Y: 8}, {X: 7, Y: 10}, {X: 12, Y: 7}, {X: 15, Y: 8}, {X: 19, Y: 7},
}

func ptr(v float64) *float64 { return &v }

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{"zero", Config{}, false},
		{"range", Config{MaxError: 3, XMin: ptr(-1), XMax: ptr(1)}, false},
		{"point range", Config{XMin: ptr(1), XMax: ptr(1)}, false},
		{"negative error", Config{MaxError: -0.1}, true},
		{"NaN error", Config{MaxError: math.NaN()}, true},
		{"inverted range", Config{XMin: ptr(2), XMax: ptr(1)}, true},
		{"NaN bound", Config{XMax: ptr(math.NaN())}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestMinify_Squares(t *testing.T) {
	points := make([]Point, 11)
	for i := range points {
		points[i] = Point{X: float64(i), Y: float64(i * i)}
	}

	all, err := Minify(points, &Config{MaxError: 0})
	require.NoError(t, err)
	assert.Len(t, all.Cornerpoints, 11)

	res, err := Minify(points, &Config{MaxError: 5})
	require.NoError(t, err)
	assert.Less(t, len(res.Cornerpoints), 11)
	assert.LessOrEqual(t, math.Abs(res.MaxError), 5.0)
	assert.Equal(t, 11, res.InputCount)
	assert.Equal(t, len(res.Cornerpoints), res.Report.Count("cornerpoints"))
}

func TestMinify_RangeAndRounding(t *testing.T) {
	points := []Point{{X: -5, Y: 0}, {X: 0.2, Y: 1.4}, {X: 1, Y: 2.6}, {X: 2.1, Y: 3.5}, {X: 50, Y: 0}}
	res, err := Minify(points, &Config{XMin: ptr(0), XMax: ptr(10)})
	require.NoError(t, err)

	// (0,1), (1,3), (2,4) after rounding: the middle point is 0.5 off the
	// line from (0,1) to (2,4), so a zero bound keeps it.
	got := res.Points()
	assert.Equal(t, []Point{{X: 0, Y: 1}, {X: 1, Y: 3}, {X: 2, Y: 4}}, got)
	assert.Equal(t, 5, res.Report.Count("input"))
	assert.Equal(t, 3, res.Report.Count("range"))
}

func TestMinify_NilConfig(t *testing.T) {
	_, err := Minify(splineTable, nil)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestCurve_EndpointsAndEvalAll(t *testing.T) {
	curve, err := NewCurve(splineTable, AlgorithmCubicSpline)
	require.NoError(t, err)
	assert.Equal(t, AlgorithmCubicSpline, curve.Algorithm())
	assert.Equal(t, []float64{7, 12, 15}, curve.Knots())

	assert.Equal(t, 8.0, curve.Eval(1))
	assert.InDelta(t, 7.0, curve.Eval(19), 1e-12)

	xs := []float64{0, 1, 4, 7, 10, 12, 13.5, 15, 17, 19, 24}
	ys := curve.EvalAll(xs)
	for i, x := range xs {
		assert.Equal(t, curve.Eval(x), ys[i], "x=%g", x)
	}

	cursor := curve.Cursor()
	for _, x := range xs {
		assert.Equal(t, curve.Eval(x), cursor.Eval(x))
	}
}

func TestCurve_Derivative(t *testing.T) {
	curve, err := NewCurve([]Point{{X: 0, Y: 0}, {X: 2, Y: 4}, {X: 3, Y: 1}}, AlgorithmLinear)
	require.NoError(t, err)
	d := curve.Derivative()
	assert.Equal(t, 2.0, d.Eval(1))
	assert.Equal(t, -3.0, d.Eval(2.5))
	assert.Len(t, d.Segments(), 2)
}

func TestNewCurve_Errors(t *testing.T) {
	_, err := NewCurve([]Point{{X: 1, Y: 1}}, AlgorithmLinear)
	require.ErrorIs(t, err, ErrInsufficientPoints)

	_, err = NewCurve([]Point{{X: 1, Y: 1}, {X: 1, Y: 2}}, AlgorithmCubicSpline)
	require.ErrorIs(t, err, ErrArithmeticDomain)

	_, err = NewCurve(splineTable, Algorithm(7))
	require.ErrorIs(t, err, ErrUnknownAlgorithm)

	alg, err := ParseAlgorithm("cspline")
	require.NoError(t, err)
	assert.Equal(t, AlgorithmCubicSpline, alg)
}

func TestNewCurveFromSegments(t *testing.T) {
	curve, err := NewCurveFromSegments([]Segment{
		{Start: 0, Poly: Polynomial{Coeffs: []float64{1}}},
		{Start: 1, Poly: Polynomial{Coeffs: []float64{2}}},
	})
	require.NoError(t, err)
	assert.Equal(t, 1.0, curve.Eval(-10))
	assert.Equal(t, 2.0, curve.Eval(1))

	_, err = NewCurveFromSegments([]Segment{{Start: 0}, {Start: 0}})
	require.ErrorIs(t, err, ErrDuplicateStart)
}

func TestResample(t *testing.T) {
	out, err := Resample([]Point{{X: 0, Y: 0}, {X: 10, Y: 20}}, AlgorithmLinear, Sweep{Steps: 11})
	require.NoError(t, err)
	require.Len(t, out, 11)
	for i, p := range out {
		assert.Equal(t, float64(i), p.X)
		assert.Equal(t, 2*float64(i), p.Y)
	}

	out, err = Resample(splineTable, AlgorithmCubicSpline, Sweep{})
	require.NoError(t, err)
	assert.Len(t, out, DefaultSweepSteps)
	assert.Equal(t, 1.0, out[0].X)
	assert.Equal(t, 19.0, out[len(out)-1].X)

	out, err = Resample(splineTable, AlgorithmCubicSpline, Sweep{XMin: ptr(1), XMax: ptr(1000), Steps: 4, Logarithmic: true})
	require.NoError(t, err)
	assert.InDelta(t, 10.0, out[1].X, 1e-9)
	assert.InDelta(t, 100.0, out[2].X, 1e-9)
	assert.Equal(t, 1000.0, out[3].X)

	_, err = Resample(splineTable, AlgorithmCubicSpline, Sweep{Steps: 1})
	require.ErrorIs(t, err, ErrInvalidSweep)
}

func TestThinAndQuantize(t *testing.T) {
	q, err := Quantize([]Point{{X: 0.4, Y: 0.6}, {X: 1.6, Y: 1.4}, {X: 3, Y: 3}})
	require.NoError(t, err)
	assert.Equal(t, []IntPoint{{X: 0, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 3}}, q)

	res, err := Thin(q, 10)
	require.NoError(t, err)
	assert.Len(t, res.Cornerpoints, 2)

	_, err = Thin(nil, 1)
	require.ErrorIs(t, err, ErrEmptyTable)
	_, err = Thin(q, -1)
	require.ErrorIs(t, err, ErrInvalidBound)

	_, err = Quantize([]Point{{X: 1e19, Y: 2}})
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestMinify_OutOfRangeInput(t *testing.T) {
	_, err := Minify([]Point{{X: 0, Y: 0}, {X: 1, Y: 1e19}, {X: 2e19, Y: 3}}, &Config{MaxError: 1})
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestNewMatrix_MulVec(t *testing.T) {
	m, err := NewMatrix([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	got, err := m.MulVec([]float64{-11, 13, -17})
	require.NoError(t, err)
	assert.Equal(t, []float64{-36, -81}, got)
}

func TestNewTridiagonal_Solve(t *testing.T) {
	sys, err := NewTridiagonal(3, WithPivotTolerance(1e-12))
	require.NoError(t, err)
	require.NoError(t, sys.SetRow(0, 2, 1))
	require.NoError(t, sys.SetRow(1, 1, 2, 1))
	require.NoError(t, sys.SetRow(2, 1, 2))

	x, err := sys.Solve([]float64{3, 4, 3})
	require.NoError(t, err)
	for _, v := range x {
		assert.InDelta(t, 1.0, v, 1e-12)
	}

	require.ErrorIs(t, sys.SetRow(1, 1, 2), ErrInvalidArgument)

	zero, err := NewTridiagonal(2)
	require.NoError(t, err)
	_, err = zero.Solve([]float64{1, 1})
	require.ErrorIs(t, err, ErrSingularSystem)
}

func TestAnalyzeRegion(t *testing.T) {
	points := []Point{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 2, Y: 6}, {X: 3, Y: 7}}
	ra := AnalyzeRegion(points, 1, 10, "t", "v")
	require.NotNil(t, ra)
	assert.Equal(t, 3, ra.Count)
	require.NotNil(t, ra.XSpan)
	assert.Equal(t, [2]float64{1, 3}, *ra.XSpan)
}
