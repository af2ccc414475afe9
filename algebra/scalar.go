// SPDX-License-Identifier: MIT

package algebra

import "math/cmplx"

// Number is the set of amplitude types.
type Number interface {
	float64 | complex128
}

// IsComplex reports whether T is complex128.
func IsComplex[T Number]() bool {
	var zero T
	_, ok := any(zero).(complex128)
	return ok
}

// FromComplex converts z to T, dropping the imaginary part for float64.
func FromComplex[T Number](z complex128) T {
	var zero T
	switch any(zero).(type) {
	case float64:
		return any(real(z)).(T)
	default:
		return any(z).(T)
	}
}

// ToComplex converts v to complex128.
func ToComplex[T Number](v T) complex128 {
	switch x := any(v).(type) {
	case float64:
		return complex(x, 0)
	case complex128:
		return x
	}
	return 0
}

// Conj returns the complex conjugate (identity for float64).
func Conj[T Number](v T) T {
	if z, ok := any(v).(complex128); ok {
		return any(cmplx.Conj(z)).(T)
	}
	return v
}
