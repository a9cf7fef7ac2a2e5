package engine

// Linear interpolation constants
const (
	// linearCoefficients is the number of coefficients of a linear segment.
	linearCoefficients = 2
)

// Natural cubic spline constants
const (
	// cubicCoefficients is the number of coefficients of a cubic segment
	// (a + b*t + c*t^2 + d*t^3).
	cubicCoefficients = 4

	// splineBoundaryPoints is the number of knots whose second-derivative
	// coefficient is fixed by the natural boundary condition (both ends).
	splineBoundaryPoints = 2

	// splineSlopeFactor scales the divided-difference jump on the
	// right-hand side: g_i = 3 * (slope_i - slope_{i-1}).
	splineSlopeFactor = 3.0

	// splineDiagonalFactor scales the main diagonal: 2 * (h_{i-1} + h_i).
	splineDiagonalFactor = 2.0

	// splineCurvatureWeight weights c_i against c_{i+1} in the slope
	// term b = dy/h - h*(2*c_i + c_{i+1})/3.
	splineCurvatureWeight = 2.0

	// splineThirds divides the curvature terms of b and d.
	splineThirds = 3.0
)

// Builder constants
const (
	// minCurvePoints is the fewest points any builder accepts.
	minCurvePoints = 2
)

// Algorithm names accepted by ParseAlgorithm.
const (
	nameLinear      = "linear"
	nameCubicSpline = "cspline"
)
