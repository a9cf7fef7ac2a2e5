package engine

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-curve-minify/internal/linalg"
	"github.com/tphakala/go-curve-minify/internal/mathutil"
	"github.com/tphakala/go-curve-minify/internal/poly"
	"github.com/tphakala/go-curve-minify/internal/testutil"
)

// referenceTable is the five point table used by the spline baselines.
var referenceTable = []mathutil.Point{
	{X: 1, Y: 8}, {X: 7, Y: 10}, {X: 12, Y: 7}, {X: 15, Y: 8}, {X: 19, Y: 7},
}

// =============================================================================
// Algorithm Tests
// =============================================================================

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		in      string
		want    Algorithm
		wantErr bool
	}{
		{"linear", AlgorithmLinear, false},
		{"cspline", AlgorithmCubicSpline, false},
		{" CSpline ", AlgorithmCubicSpline, false},
		{"akima", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAlgorithm(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownAlgorithm)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, must(ParseAlgorithm(got.String())))
		})
	}
}

func TestStrategyFor_Unknown(t *testing.T) {
	_, err := StrategyFor(Algorithm(42))
	require.ErrorIs(t, err, ErrUnknownAlgorithm)
	assert.Equal(t, "Algorithm(42)", Algorithm(42).String())

	_, err = Build(referenceTable, Algorithm(42))
	require.ErrorIs(t, err, ErrUnknownAlgorithm)
}

// =============================================================================
// Validation Tests
// =============================================================================

func TestBuild_InsufficientPoints(t *testing.T) {
	for _, alg := range []Algorithm{AlgorithmLinear, AlgorithmCubicSpline} {
		for _, pts := range [][]mathutil.Point{nil, {{X: 1, Y: 1}}} {
			_, err := Build(pts, alg)
			require.ErrorIs(t, err, ErrInsufficientPoints, "%v with %d points", alg, len(pts))
		}
	}
}

func TestBuild_DuplicateX(t *testing.T) {
	pts := []mathutil.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}, {X: 3, Y: 0}}
	for _, alg := range []Algorithm{AlgorithmLinear, AlgorithmCubicSpline} {
		_, err := Build(pts, alg)
		require.ErrorIs(t, err, ErrArithmeticDomain, alg.String())
	}
}

func TestBuilders_RejectZeroWidthDirectly(t *testing.T) {
	pts := []mathutil.Point{{X: 2, Y: 0}, {X: 2, Y: 1}}
	_, err := LinearBuilder{}.Build(pts)
	require.ErrorIs(t, err, ErrArithmeticDomain)
	_, err = CubicSplineBuilder{}.Build(pts)
	require.ErrorIs(t, err, ErrArithmeticDomain)
}

func TestBuild_SortsAndDoesNotMutateInput(t *testing.T) {
	shuffled := []mathutil.Point{
		{X: 15, Y: 8}, {X: 1, Y: 8}, {X: 19, Y: 7}, {X: 12, Y: 7}, {X: 7, Y: 10},
	}
	original := append([]mathutil.Point(nil), shuffled...)

	curve, err := Build(shuffled, AlgorithmCubicSpline)
	require.NoError(t, err)
	assert.Equal(t, original, shuffled)

	sorted, err := Build(referenceTable, AlgorithmCubicSpline)
	require.NoError(t, err)
	assert.Equal(t, sorted.Segments(), curve.Segments())
}

// =============================================================================
// Linear Builder Tests
// =============================================================================

func TestLinear_ExactAtKnots(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	pts := testutil.RandomTable(rng, 200, 1000)

	curve, err := Build(pts, AlgorithmLinear)
	require.NoError(t, err)
	assert.Equal(t, len(pts)-1, curve.Len())

	cursor := poly.NewCursor(curve)
	for _, p := range pts {
		assert.InDelta(t, p.Y, cursor.Eval(p.X), 1e-9, "x=%g", p.X)
	}
}

func TestLinear_MidpointsAndExtrapolation(t *testing.T) {
	pts := []mathutil.Point{{X: 1000, Y: 5}, {X: 1002, Y: 9}, {X: 1010, Y: 1}}
	curve, err := Build(pts, AlgorithmLinear)
	require.NoError(t, err)

	assert.Equal(t, 7.0, curve.Eval(1001))
	assert.Equal(t, 5.0, curve.Eval(1006))
	assert.Equal(t, 3.0, curve.Eval(999))   // first segment extended
	assert.Equal(t, -1.0, curve.Eval(1012)) // last segment extended

	segs := curve.Segments()
	assert.Equal(t, 1000.0, segs[0].Poly.Offset)
	assert.Equal(t, []float64{5, 2}, segs[0].Poly.Coeffs)
}

// =============================================================================
// Cubic Spline Tests
// =============================================================================

func TestCubicSpline_ReferenceCoefficients(t *testing.T) {
	curve, err := Build(referenceTable, AlgorithmCubicSpline)
	require.NoError(t, err)

	want := [][]float64{
		{8, 0.7097031963470318, 0, -0.010454718417047183},
		{10, -0.419406392694064, -0.18818493150684928, 0.030413242009132417},
		{7, -0.020262557077625587, 0.26801369863013697, -0.05004946727549467},
		{8, 0.23648401826484006, -0.18243150684931503, 0.015202625570776252},
	}
	segs := curve.Segments()
	require.Len(t, segs, len(want))
	for i, seg := range segs {
		assert.Equal(t, referenceTable[i].X, seg.Start)
		assert.Equal(t, referenceTable[i].X, seg.Poly.Offset)
		testutil.AssertSlicesInDelta(t, want[i], seg.Poly.Coeffs, 1e-13, "segment %d", i)
	}
}

func TestCubicSpline_ReferenceValues(t *testing.T) {
	curve, err := Build(referenceTable, AlgorithmCubicSpline)
	require.NoError(t, err)

	// Knots at a segment start evaluate to the stored y exactly.
	assert.Equal(t, 8.0, curve.Eval(1))
	assert.Equal(t, 10.0, curve.Eval(7))
	assert.Equal(t, 7.0, curve.Eval(12))
	assert.Equal(t, 8.0, curve.Eval(15))
	assert.Equal(t, 7.0, curve.Eval(19))

	tests := []struct {
		x, want float64
	}{
		{0, 7.300751522070016},
		{4, 9.846832191780821},
		{10, 7.869273972602739},
		{13.5, 7.403720034246575},
		{17, 7.86486301369863},
		{24, 6.43411815068493},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, curve.Eval(tt.x), 1e-12, "x=%g", tt.x)
	}
}

func TestCubicSpline_NaturalBoundary(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	pts := testutil.RandomTable(rng, 40, 50)
	curve, err := Build(pts, AlgorithmCubicSpline)
	require.NoError(t, err)

	second := curve.Derivative().Derivative()
	first, last := pts[0], pts[len(pts)-1]

	// At x0 the second derivative is 2*c_0, which is exactly zero.
	assert.Equal(t, 0.0, second.Eval(first.X))
	assert.InDelta(t, 0.0, second.Eval(last.X), testutil.ContinuityTolerance)
}

func TestCubicSpline_C2ContinuityAtKnots(t *testing.T) {
	rng := rand.New(rand.NewPCG(99, 1))
	pts := testutil.RandomTable(rng, 60, 20)
	curve, err := Build(pts, AlgorithmCubicSpline)
	require.NoError(t, err)

	segs := curve.Segments()
	for i := 1; i < len(segs); i++ {
		left, right := segs[i-1].Poly, segs[i].Poly
		x := segs[i].Start
		for order := range 3 {
			scale := math.Max(1, math.Abs(right.Eval(x)))
			assert.InDelta(t, right.Eval(x), left.Eval(x), testutil.ContinuityTolerance*scale,
				"knot %d derivative order %d", i, order)
			left, right = left.Derivative(), right.Derivative()
		}
		assert.Equal(t, pts[i].Y, segs[i].Poly.Eval(x), "interpolates knot %d", i)
	}
}

func TestCubicSpline_TwoPointsIsLinear(t *testing.T) {
	curve, err := Build([]mathutil.Point{{X: 2, Y: 1}, {X: 6, Y: 9}}, AlgorithmCubicSpline)
	require.NoError(t, err)
	require.Equal(t, 1, curve.Len())

	coeffs := curve.Segments()[0].Poly.Coeffs
	assert.Equal(t, []float64{1, 2, 0, 0}, coeffs)
	assert.Equal(t, 5.0, curve.Eval(4))
	assert.Equal(t, -3.0, curve.Eval(0))
}

func TestCubicSpline_ThreePointsUsesSingleRow(t *testing.T) {
	// y = |x - 1| on {0, 1, 2}: h = 1, slopes -1 and 1, so 4*c_1 = 6.
	curve, err := Build([]mathutil.Point{{X: 0, Y: 1}, {X: 1, Y: 0}, {X: 2, Y: 1}}, AlgorithmCubicSpline)
	require.NoError(t, err)

	segs := curve.Segments()
	require.Len(t, segs, 2)
	assert.InDelta(t, 1.5, segs[1].Poly.Coeffs[2], testutil.DefaultTolerance)
	assert.InDelta(t, curve.Eval(0.5), curve.Eval(1.5), testutil.DefaultTolerance)
}

func TestCubicSpline_Curvatures(t *testing.T) {
	c, err := CubicSplineBuilder{}.ExportedCurvatures([]float64{1, 1}, []float64{-1, 1})
	require.NoError(t, err)
	testutil.AssertSlicesInDelta(t, []float64{0, 1.5, 0}, c, testutil.DefaultTolerance)

	c, err = CubicSplineBuilder{}.ExportedCurvatures([]float64{3}, []float64{2})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0}, c)
}

func TestCubicSpline_PivotToleranceSurfacesSolverError(t *testing.T) {
	b := CubicSplineBuilder{PivotTolerance: 1e6}
	_, err := BuildWith(b, referenceTable)
	require.ErrorIs(t, err, linalg.ErrSingularSystem)
}

func TestCubicSpline_FiniteOnLargeOffsets(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	pts := testutil.RandomTable(rng, 100, 1e6)
	for i := range pts {
		pts[i].X += 1e9
	}
	curve, err := Build(pts, AlgorithmCubicSpline)
	require.NoError(t, err)

	ys := make([]float64, len(pts))
	cursor := poly.NewCursor(curve)
	for i, p := range pts {
		ys[i] = cursor.Eval(p.X)
		testutil.AssertRelativeError(t, p.Y, ys[i], 1e-6, "x=%g", p.X)
	}
	testutil.AssertNoNaNOrInf(t, ys)
}

// =============================================================================
// Benchmarks
// =============================================================================

func BenchmarkCubicSpline_Build(b *testing.B) {
	rng := rand.New(rand.NewPCG(1, 1))
	pts := testutil.RandomTable(rng, 10000, 100)
	for b.Loop() {
		_, _ = Build(pts, AlgorithmCubicSpline)
	}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
