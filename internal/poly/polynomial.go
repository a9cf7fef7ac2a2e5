// Package poly stores polynomial segments and piecewise polynomial curves
// and locates the segment that owns a query point.
package poly

import (
	"fmt"
	"math"
	"strings"
)

// Polynomial is sum(Coeffs[k] * (x - Offset)^k).
//
// Offset shifts evaluation into a local coordinate so that coefficients stay
// well scaled for segments far from the origin. A zero Offset evaluates in
// the global coordinate.
type Polynomial struct {
	Coeffs []float64
	Offset float64
}

// NewPolynomial returns the polynomial with the given coefficients (lowest
// exponent first) around offset. The coefficients are copied.
func NewPolynomial(offset float64, coeffs ...float64) Polynomial {
	return Polynomial{Coeffs: append([]float64(nil), coeffs...), Offset: offset}
}

// Eval evaluates the polynomial at x using Horner's scheme.
func (p Polynomial) Eval(x float64) float64 {
	t := x - p.Offset
	var result float64
	for k := len(p.Coeffs) - 1; k >= 0; k-- {
		// The explicit conversion keeps the compiler from fusing the
		// multiply-add, so results match on every architecture.
		result = float64(result*t) + p.Coeffs[k]
	}
	return result
}

// Degree returns the index of the highest non-zero coefficient, or 0 for
// the zero polynomial.
func (p Polynomial) Degree() int {
	for k := len(p.Coeffs) - 1; k > 0; k-- {
		if p.Coeffs[k] != 0 {
			return k
		}
	}
	return 0
}

// Derivative returns dp/dx around the same offset.
func (p Polynomial) Derivative() Polynomial {
	if len(p.Coeffs) <= 1 {
		return Polynomial{Coeffs: []float64{0}, Offset: p.Offset}
	}
	coeffs := make([]float64, len(p.Coeffs)-1)
	for k := 1; k < len(p.Coeffs); k++ {
		coeffs[k-1] = float64(k) * p.Coeffs[k]
	}
	return Polynomial{Coeffs: coeffs, Offset: p.Offset}
}

// String renders the polynomial highest exponent first in the local
// coordinate, e.g. "2.000x^2 - x + 3.000". Zero terms are omitted.
func (p Polynomial) String() string {
	var sb strings.Builder
	first := true
	for k := len(p.Coeffs) - 1; k >= 0; k-- {
		c := p.Coeffs[k]
		if c == 0 {
			continue
		}

		switch {
		case first && c < 0:
			sb.WriteString("-")
		case !first && c < 0:
			sb.WriteString(" - ")
		case !first:
			sb.WriteString(" + ")
		}
		first = false

		mag := math.Abs(c)
		if mag != 1 || k == 0 {
			fmt.Fprintf(&sb, "%.3f", mag)
		}
		switch {
		case k > 1:
			fmt.Fprintf(&sb, "x^%d", k)
		case k == 1:
			sb.WriteString("x")
		}
	}
	if first {
		return "0"
	}
	return sb.String()
}
