// SPDX-License-Identifier: MIT

package matrix

import (
	"gonum.org/v1/gonum/mat"
)

// EigenvaluesHermitian returns the eigenvalues of the Hermitian matrix m in
// ascending order.
//
// Implementation:
//   - Stage 1: ValidateHermitian with the configured eps.
//   - Stage 2: build a real symmetric gonum matrix. A complex n×n matrix
//     H = A + iB is embedded as [[A, -B], [B, A]], whose spectrum is the
//     spectrum of H with every eigenvalue doubled.
//   - Stage 3: factorize with mat.EigenSym (values only) and, for complex
//     input, keep every second eigenvalue.
//
// Errors: ErrNonSquare, ErrNotHermitian, ErrEigenFailed.
// Complexity: O(n³) (O((2n)³) for complex input).
func EigenvaluesHermitian[T Scalar](m *Dense[T], opts ...Option) ([]float64, error) {
	o := gatherOptions(opts...)
	if err := ValidateHermitian(m, o.eps); err != nil {
		return nil, matrixErrorf("EigenvaluesHermitian", err)
	}
	sym, doubled := toSymDense(m)

	var es mat.EigenSym
	if ok := es.Factorize(sym, false); !ok {
		return nil, matrixErrorf("EigenvaluesHermitian", ErrEigenFailed)
	}
	values := es.Values(nil)
	if !doubled {
		return values, nil
	}
	half := make([]float64, len(values)/2)
	for i := range half {
		half[i] = values[2*i]
	}
	return half, nil
}

// toSymDense converts a Hermitian m into a gonum SymDense. The second
// result reports whether the complex embedding was used.
func toSymDense[T Scalar](m *Dense[T]) (*mat.SymDense, bool) {
	n := m.r
	switch data := any(m.data).(type) {
	case []float64:
		sym := mat.NewSymDense(n, nil)
		for i := 0; i < n; i++ {
			for j := i; j < n; j++ {
				sym.SetSym(i, j, data[i*n+j])
			}
		}
		return sym, false
	case []complex128:
		sym := mat.NewSymDense(2*n, nil)
		for i := 0; i < n; i++ {
			for j := i; j < n; j++ {
				z := data[i*n+j]
				sym.SetSym(i, j, real(z))
				sym.SetSym(n+i, n+j, real(z))
				// (i, n+j) holds -B[i][j]; (j, n+i) holds -B[j][i] = B[i][j].
				sym.SetSym(i, n+j, -imag(z))
				if i != j {
					sym.SetSym(j, n+i, imag(z))
				}
			}
		}
		return sym, true
	}
	panic("matrix: unsupported scalar type")
}
