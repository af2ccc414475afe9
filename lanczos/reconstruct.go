// SPDX-License-Identifier: MIT

package lanczos

import (
	"github.com/awietek/xdiag-sub007/algebra"
)

// Reconstruct returns sum_i coeffs[i] v_i, where v_i are the Krylov vectors
// of the run that produced t from v0. The basis is regenerated with the
// stored alphas and betas, so v0 and the reorthogonalization window must
// be the ones used by that run. For float64 vectors the imaginary parts of
// coeffs are dropped.
//
// Errors: ErrCoefficients if len(coeffs) > t.Size(), errors from op.
// Complexity: len(coeffs)-1 MatVecs.
func Reconstruct[T algebra.Number](op Operator[T], v0 []T, t Tmatrix, coeffs []complex128, opts ...Option) ([]T, error) {
	o := gatherOptions(opts)
	if len(coeffs) > t.Size() {
		return nil, lanczosErrorf("Reconstruct", ErrCoefficients)
	}
	it, err := newIterator(op, v0, o.Window)
	if err != nil {
		return nil, lanczosErrorf("Reconstruct", err)
	}
	x := make([]T, len(v0))
	for i, c := range coeffs {
		axpy(algebra.FromComplex[T](c), it.cur, x)
		if i == len(coeffs)-1 {
			break
		}
		if _, err := it.step(&t.Alphas[i]); err != nil {
			return nil, lanczosErrorf("Reconstruct", err)
		}
		it.advance(t.Betas[i])
	}
	return x, nil
}

// Eig0 runs Lanczos and rebuilds the normalized Ritz vector of the lowest
// Ritz value in a second pass.
func Eig0[T algebra.Number](op Operator[T], v0 []T, opts ...Option) (Result, []T, error) {
	res, err := Run(op, v0, opts...)
	if err != nil {
		return Result{}, nil, err
	}
	_, vecs, err := res.Tmatrix.Eigen()
	if err != nil {
		return Result{}, nil, lanczosErrorf("Eig0", err)
	}
	coeffs := make([]complex128, res.Tmatrix.Size())
	for i := range coeffs {
		coeffs[i] = complex(vecs.At(i, 0), 0)
	}
	x, err := Reconstruct(op, v0, res.Tmatrix, coeffs, opts...)
	if err != nil {
		return Result{}, nil, err
	}
	n, err := norm(op, x)
	if err != nil {
		return Result{}, nil, lanczosErrorf("Eig0", err)
	}
	scale(real64[T](1/n), x)
	return res, x, nil
}
