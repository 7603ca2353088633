// SPDX-License-Identifier: MIT

package matrix

import "errors"

// Sentinel errors; every message is prefixed with "matrix: ".
var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrRaggedRows signals rows of different lengths passed to FromRows.
	ErrRaggedRows = errors.New("matrix: rows have different lengths")
)
