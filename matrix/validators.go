// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Return sentinels wrapped with the validator tag so call sites can match
//     with errors.Is.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//   - The Hermiticity check runs O(n²) on the upper triangle only.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSquare checks that m is square (Rows == Cols).
// Complexity: O(1).
func ValidateSquare[T Scalar](m *Dense[T]) error {
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}
	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Complexity: O(1).
func ValidateVecLen[T Scalar](x []T, n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen",
			fmt.Errorf("length %d, want %d: %w", len(x), n, ErrDimensionMismatch))
	}
	return nil
}

// ValidateHermitian checks |m[i,j] - conj(m[j,i])| <= eps for all i <= j.
//
// Implementation:
//   - Stage 1: ValidateSquare.
//   - Stage 2: scan the upper triangle including the diagonal.
//
// Errors: ErrNonSquare, ErrNotHermitian (with the first offending pair).
// Complexity: O(n²).
func ValidateHermitian[T Scalar](m *Dense[T], eps float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	n := m.r
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if abs(m.data[i*n+j]-conj(m.data[j*n+i])) > eps {
				return validatorErrorf("ValidateHermitian",
					fmt.Errorf("entry (%d,%d): %w", i, j, ErrNotHermitian))
			}
		}
	}
	return nil
}

// IsHermitian reports whether m is Hermitian within the configured eps.
func IsHermitian[T Scalar](m *Dense[T], opts ...Option) bool {
	return ValidateHermitian(m, gatherOptions(opts...).eps) == nil
}
