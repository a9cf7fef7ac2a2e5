// Package minify reduces dense sampled functions to the few cornerpoints
// needed to reconstruct them by linear interpolation within an explicit
// error bound, and fits piecewise polynomial curves to point tables.
//
// # Features
//
//   - Greedy, error-bounded table thinning over integer tables
//   - Linear and natural cubic spline curve fitting
//   - Thomas algorithm tridiagonal solver with immutable bands
//   - Piecewise curves with O(1) location for increasing sweeps
//   - Linear and logarithmic resampling sweeps
//   - Concurrent minification of independent tables
//
// # Quick Start
//
// Thin a table to cornerpoints within an error of 2:
//
//	res, err := minify.Minify(points, &minify.Config{MaxError: 2})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, c := range res.Cornerpoints {
//	    fmt.Println(c.X, c.Y, c.Error)
//	}
//
// Fit a natural cubic spline and evaluate it:
//
//	curve, err := minify.NewCurve(points, minify.AlgorithmCubicSpline)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	y := curve.Eval(13.5)
//
// Resample a table on 100 logarithmically spaced points:
//
//	out, err := minify.Resample(points, minify.AlgorithmCubicSpline,
//	    minify.Sweep{Steps: 100, Logarithmic: true})
//
// # Thinning
//
// Minify narrows the table to the configured x range, rounds x and y half
// to even, then walks the table once. Starting from the last kept point it
// extends a straight segment for as long as every point inside stays
// within MaxError of the line, and keeps the endpoint of the longest
// accepted segment. The first and last points are always kept. The search
// is greedy: it can keep more points than an optimal solution, in linear
// rather than quadratic time.
//
// Reported errors are signed: y_interp - y, the value the line predicts
// minus the original value, for the deviation of largest magnitude.
//
// # Curves
//
// A [Curve] is a sequence of polynomial segments, each evaluated relative
// to its own start. Segment i covers [x_i, x_i+1); the first and last
// segments extend to minus and plus infinity. Curves are immutable and safe
// for concurrent use. [Curve.Eval] searches for the segment in O(log n);
// a [Cursor] or [Curve.EvalAll] remembers the last segment so a sweep over
// increasing x costs O(1) per point.
//
// # Thread Safety
//
// Curves and tridiagonal systems may be shared between goroutines. A
// Cursor belongs to one goroutine. [MinifyAll] processes independent
// tables concurrently when Config.EnableParallel is set.
package minify
