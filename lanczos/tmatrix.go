// SPDX-License-Identifier: MIT

package lanczos

import (
	"slices"

	"gonum.org/v1/gonum/lapack"
	"gonum.org/v1/gonum/lapack/gonum"
	"gonum.org/v1/gonum/mat"
)

// Tmatrix is the tridiagonal matrix built by Lanczos. Alphas is the
// diagonal. Betas[i] couples Krylov vectors i and i+1, so the last beta is
// the norm of the residual left after the final step.
type Tmatrix struct {
	Alphas []float64
	Betas  []float64
}

// Size returns the dimension of the tridiagonal matrix.
func (t Tmatrix) Size() int { return len(t.Alphas) }

// Residual returns the last beta, or 0 for an empty Tmatrix.
func (t Tmatrix) Residual() float64 {
	if len(t.Betas) == 0 {
		return 0
	}
	return t.Betas[len(t.Betas)-1]
}

// offDiagonal returns a copy of the n-1 couplings of the square matrix.
func (t Tmatrix) offDiagonal() []float64 {
	n := t.Size()
	if n == 0 {
		return nil
	}
	return slices.Clone(t.Betas[:n-1])
}

// Eigenvalues returns the eigenvalues in ascending order.
//
// Implementation: Pal-Walker-Kahan QL/QR (LAPACK dsterf).
// Complexity: O(m²).
func (t Tmatrix) Eigenvalues() ([]float64, error) {
	n := t.Size()
	d := slices.Clone(t.Alphas)
	if ok := (gonum.Implementation{}).Dsterf(n, d, t.offDiagonal()); !ok {
		return nil, lanczosErrorf("Eigenvalues", ErrEigenFailed)
	}
	return d, nil
}

// Eigen returns the eigenvalues in ascending order and the orthonormal
// eigenvectors as the columns of an m×m matrix.
//
// Implementation: implicit QL/QR with accumulated rotations (LAPACK dsteqr).
// Complexity: O(m³).
func (t Tmatrix) Eigen() ([]float64, *mat.Dense, error) {
	n := t.Size()
	if n == 0 {
		return nil, nil, nil
	}
	d := slices.Clone(t.Alphas)
	z := make([]float64, n*n)
	work := make([]float64, max(1, 2*n-2))
	if ok := (gonum.Implementation{}).Dsteqr(lapack.EVTridiag, n, d, t.offDiagonal(), z, n, work); !ok {
		return nil, nil, lanczosErrorf("Eigen", ErrEigenFailed)
	}
	return d, mat.NewDense(n, n, z), nil
}

// Dense returns the tridiagonal matrix as a gonum matrix.
func (t Tmatrix) Dense() *mat.SymDense {
	n := t.Size()
	if n == 0 {
		return nil
	}
	s := mat.NewSymDense(n, nil)
	for i, a := range t.Alphas {
		s.SetSym(i, i, a)
		if i+1 < n {
			s.SetSym(i, i+1, t.Betas[i])
		}
	}
	return s
}

func (t *Tmatrix) append(alpha, beta float64) {
	t.Alphas = append(t.Alphas, alpha)
	t.Betas = append(t.Betas, beta)
}
