package engine

// ExportedCurvatures wraps curvatures for testing.
func (b CubicSplineBuilder) ExportedCurvatures(h, slope []float64) ([]float64, error) {
	return b.curvatures(h, slope)
}
