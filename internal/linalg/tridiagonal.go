package linalg

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Band layout constants
const (
	// interiorRowValues is the number of values of an interior row:
	// sub-diagonal, main diagonal and super-diagonal.
	interiorRowValues = 3

	// edgeRowValues is the number of values of the first or last row,
	// which lack the outer band.
	edgeRowValues = 2

	// singleRowValues is the number of values of a 1×1 system.
	singleRowValues = 1

	// bandHalfWidth is the maximum |i-j| of a non-zero element.
	bandHalfWidth = 1
)

// Tridiagonal is an n×n tridiagonal system stored as three bands.
//
// Rows are 0-based. sub[0] and super[n-1] are always zero. Once the rows are
// set, Solve may be called any number of times, also concurrently: the
// elimination works on per-call scratch and never writes the bands.
type Tridiagonal struct {
	n        int
	sub      []float64
	diag     []float64
	super    []float64
	pivotTol float64
}

// Option configures a Tridiagonal.
type Option func(*Tridiagonal)

// WithPivotTolerance sets the magnitude at or below which a pivot counts as
// zero. The default of 0 only rejects exactly zero pivots.
func WithPivotTolerance(eps float64) Option {
	return func(t *Tridiagonal) {
		t.pivotTol = math.Abs(eps)
	}
}

// NewTridiagonal creates an all-zero n×n system. A size of zero is valid and
// describes the empty system, whose solution is the empty vector.
func NewTridiagonal(n int, opts ...Option) (*Tridiagonal, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative system size %d", ErrInvalidArgument, n)
	}
	t := &Tridiagonal{
		n:     n,
		sub:   make([]float64, n),
		diag:  make([]float64, n),
		super: make([]float64, n),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// TridiagonalFromDense takes the three bands of a square dense matrix.
// Elements outside the bands are ignored.
func TridiagonalFromDense(rows [][]float64, opts ...Option) (*Tridiagonal, error) {
	n := len(rows)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: not a square matrix (row %d has %d columns, expected %d)",
				ErrInvalidArgument, i, len(row), n)
		}
	}
	t, err := NewTridiagonal(n, opts...)
	if err != nil {
		return nil, err
	}
	for i := range n {
		lo := max(0, i-bandHalfWidth)
		hi := min(n, i+bandHalfWidth+1)
		if err := t.SetRow(i, rows[i][lo:hi]...); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// SetRow sets the non-zero elements of row i in column order.
//
// The first row takes (main, super), the last row (sub, main) and interior
// rows (sub, main, super). A 1×1 system takes its single element.
func (t *Tridiagonal) SetRow(i int, values ...float64) error {
	if i < 0 || i >= t.n {
		return fmt.Errorf("%w: row %d out of range for a %d x %d system", ErrInvalidArgument, i, t.n, t.n)
	}

	switch {
	case t.n == 1:
		if len(values) != singleRowValues {
			return fmt.Errorf("%w: a 1 x 1 system takes %d value, got %d", ErrInvalidArgument, singleRowValues, len(values))
		}
		t.sub[0], t.diag[0], t.super[0] = 0, values[0], 0

	case len(values) == edgeRowValues:
		switch i {
		case 0:
			t.sub[i], t.diag[i], t.super[i] = 0, values[0], values[1]
		case t.n - 1:
			t.sub[i], t.diag[i], t.super[i] = values[0], values[1], 0
		default:
			return fmt.Errorf("%w: %d values given for interior row %d", ErrInvalidArgument, edgeRowValues, i)
		}

	case len(values) == interiorRowValues:
		if i == 0 || i == t.n-1 {
			return fmt.Errorf("%w: %d values given for edge row %d, expected %d",
				ErrInvalidArgument, interiorRowValues, i, edgeRowValues)
		}
		t.sub[i], t.diag[i], t.super[i] = values[0], values[1], values[2]

	default:
		return fmt.Errorf("%w: expected %d or %d values for row %d, got %d",
			ErrInvalidArgument, edgeRowValues, interiorRowValues, i, len(values))
	}
	return nil
}

// Size returns n.
func (t *Tridiagonal) Size() int {
	return t.n
}

// At returns the element at row i, column j (both 0-based).
func (t *Tridiagonal) At(i, j int) float64 {
	switch j - i {
	case -1:
		return t.sub[i]
	case 0:
		return t.diag[i]
	case 1:
		return t.super[i]
	default:
		return 0
	}
}

// Solve returns x with A·x = rhs using the Thomas algorithm in O(n).
//
// Returns ErrInvalidArgument when len(rhs) != n and ErrSingularSystem when a
// pivot is zero within the configured tolerance or elimination produces a
// non-finite value.
func (t *Tridiagonal) Solve(rhs []float64) ([]float64, error) {
	if len(rhs) != t.n {
		return nil, fmt.Errorf("%w: right-hand side has %d entries, expected %d", ErrInvalidArgument, len(rhs), t.n)
	}
	if t.n == 0 {
		return []float64{}, nil
	}

	// Forward elimination. cPrime holds the modified super-diagonal, x
	// starts out as the modified right-hand side.
	cPrime := make([]float64, t.n)
	x := make([]float64, t.n)
	var cPrev, dPrev float64
	for i := range t.n {
		a := t.sub[i]
		pivot := t.diag[i] - cPrev*a
		if math.Abs(pivot) <= t.pivotTol || math.IsNaN(pivot) {
			return nil, fmt.Errorf("%w: pivot %g in row %d", ErrSingularSystem, pivot, i)
		}
		cPrime[i] = t.super[i] / pivot
		x[i] = (rhs[i] - dPrev*a) / pivot
		if !isFinite(cPrime[i]) || !isFinite(x[i]) {
			return nil, fmt.Errorf("%w: non-finite elimination result in row %d", ErrSingularSystem, i)
		}
		cPrev, dPrev = cPrime[i], x[i]
	}

	// Back substitution.
	for i := t.n - 2; i >= 0; i-- {
		x[i] -= cPrime[i] * x[i+1]
		if !isFinite(x[i]) {
			return nil, fmt.Errorf("%w: non-finite solution in row %d", ErrSingularSystem, i)
		}
	}
	return x, nil
}

// MulVec returns A·v.
func (t *Tridiagonal) MulVec(v []float64) ([]float64, error) {
	if len(v) != t.n {
		return nil, fmt.Errorf("%w: cannot multiply a %d element vector with a %d x %d system",
			ErrInvalidArgument, len(v), t.n, t.n)
	}
	if t.n == 0 {
		return []float64{}, nil
	}

	var result mat.VecDense
	result.MulVec(t.gonum(), mat.NewVecDense(t.n, append([]float64(nil), v...)))
	return vecData(&result), nil
}

// Dense returns the system as a dense matrix.
func (t *Tridiagonal) Dense() (*Matrix, error) {
	rows := make([][]float64, t.n)
	for i := range rows {
		rows[i] = make([]float64, t.n)
		for j := max(0, i-bandHalfWidth); j < min(t.n, i+bandHalfWidth+1); j++ {
			rows[i][j] = t.At(i, j)
		}
	}
	return NewMatrix(rows)
}

// gonum returns a copy of the bands as a gonum tridiagonal matrix.
func (t *Tridiagonal) gonum() *mat.Tridiag {
	dl := make([]float64, t.n-1)
	d := make([]float64, t.n)
	du := make([]float64, t.n-1)
	copy(dl, t.sub[1:])
	copy(d, t.diag)
	copy(du, t.super[:t.n-1])
	return mat.NewTridiag(t.n, dl, d, du)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
