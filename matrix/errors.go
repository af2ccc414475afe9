// SPDX-License-Identifier: MIT

// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..." and callers match with
// errors.Is. Context is attached with matrixErrorf/denseErrorf at the
// detection site.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates non-positive requested dimensions.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand dimensions.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNotHermitian signals a matrix that differs from its conjugate
	// transpose by more than eps.
	ErrNotHermitian = errors.New("matrix: matrix is not hermitian within eps")

	// ErrNaNInf signals a NaN or ±Inf entry.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrInsufficientMemory is returned when a dense allocation would exceed
	// the configured fraction of physical memory.
	ErrInsufficientMemory = errors.New("matrix: allocation exceeds memory budget")

	// ErrEigenFailed indicates that the eigen decomposition did not converge.
	ErrEigenFailed = errors.New("matrix: eigen decomposition failed")
)

// matrixErrorf wraps err with an operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseErrorf wraps err with a Dense method tag and coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}
