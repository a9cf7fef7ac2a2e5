// Package linalg implements the small dense and banded linear algebra the
// curve builders need: matrix-vector products and the Thomas algorithm for
// tridiagonal systems.
package linalg

import "errors"

var (
	// ErrInvalidArgument indicates a malformed row, a non-square or ragged
	// matrix, or an operand of the wrong length.
	ErrInvalidArgument = errors.New("linalg: invalid argument")

	// ErrSingularSystem indicates a zero (or near-zero) pivot during
	// elimination. The system has no unique solution the solver can find.
	ErrSingularSystem = errors.New("linalg: singular system")
)
