// SPDX-License-Identifier: MIT

package evolution

import (
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/awietek/xdiag-sub007/lanczos"
)

// ExpTridiagonal returns exp(tau T) as a dense complex matrix.
//
// Implementation:
//   - real tau: Padé approximation with scaling and squaring (gonum
//     Dense.Exp) on tau*T.
//   - otherwise: spectral decomposition T = Q diag(l) Q^T, so that
//     exp(tau T) = Q diag(exp(tau l)) Q^T.
//
// Errors: lanczos.ErrEigenFailed.
// Complexity: O(m³).
func ExpTridiagonal(t lanczos.Tmatrix, tau complex128) (*mat.CDense, error) {
	n := t.Size()
	if n == 0 {
		return nil, nil
	}
	out := mat.NewCDense(n, n, nil)
	if imag(tau) == 0 {
		var a mat.Dense
		a.Scale(real(tau), t.Dense())
		var e mat.Dense
		e.Exp(&a)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				out.Set(i, j, complex(e.At(i, j), 0))
			}
		}
		return out, nil
	}

	vals, q, err := t.Eigen()
	if err != nil {
		return nil, err
	}
	phase := make([]complex128, n)
	for k, l := range vals {
		phase[k] = cmplx.Exp(tau * complex(l, 0))
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			var s complex128
			for k := 0; k < n; k++ {
				s += complex(q.At(i, k)*q.At(j, k), 0) * phase[k]
			}
			out.Set(i, j, s)
			out.Set(j, i, s)
		}
	}
	return out, nil
}
