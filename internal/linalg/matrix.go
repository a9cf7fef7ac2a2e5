package linalg

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a general dense m×n matrix.
type Matrix struct {
	dense *mat.Dense
}

// NewMatrix creates a matrix from row-major data. Every row must have the
// same, non-zero length. The data is copied.
func NewMatrix(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: matrix must have at least one row and column", ErrInvalidArgument)
	}
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, expected %d", ErrInvalidArgument, i, len(row), cols)
		}
		data = append(data, row...)
	}
	return &Matrix{dense: mat.NewDense(len(rows), cols, data)}, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int {
	r, _ := m.dense.Dims()
	return r
}

// Cols returns the number of columns.
func (m *Matrix) Cols() int {
	_, c := m.dense.Dims()
	return c
}

// At returns the element at row i, column j (both 0-based).
func (m *Matrix) At(i, j int) float64 {
	return m.dense.At(i, j)
}

// MulVec returns the product of the matrix with the column vector v.
func (m *Matrix) MulVec(v []float64) ([]float64, error) {
	rows, cols := m.dense.Dims()
	if len(v) != cols {
		return nil, fmt.Errorf("%w: cannot multiply a %d element vector with a %d x %d matrix",
			ErrInvalidArgument, len(v), rows, cols)
	}
	var result mat.VecDense
	result.MulVec(m.dense, mat.NewVecDense(cols, append([]float64(nil), v...)))
	return vecData(&result), nil
}

// String renders the matrix with aligned columns.
func (m *Matrix) String() string {
	rows, cols := m.dense.Dims()
	return fmt.Sprintf("m x n = %d x %d:\n%.3f", rows, cols, mat.Formatted(m.dense, mat.Squeeze()))
}

// vecData copies the elements of v into a new slice.
func vecData(v *mat.VecDense) []float64 {
	out := make([]float64, v.Len())
	for i := range out {
		out[i] = v.AtVec(i)
	}
	return out
}
