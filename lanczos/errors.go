// SPDX-License-Identifier: MIT

package lanczos

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroVector is returned when the start vector has zero norm.
	ErrZeroVector = errors.New("lanczos: start vector has zero norm")

	// ErrEigenFailed is returned when the tridiagonal eigensolver does not
	// converge.
	ErrEigenFailed = errors.New("lanczos: tridiagonal eigen-decomposition failed")

	// ErrCoefficients is returned when Reconstruct gets more coefficients
	// than the Tmatrix has rows.
	ErrCoefficients = errors.New("lanczos: coefficient count exceeds Tmatrix size")
)

func lanczosErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
