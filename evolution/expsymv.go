// SPDX-License-Identifier: MIT

package evolution

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/awietek/xdiag-sub007/algebra"
	"github.com/awietek/xdiag-sub007/lanczos"
)

// Info describes a Krylov exponential.
type Info struct {
	Iterations    int
	ErrorEstimate float64
	Criterion     lanczos.Criterion
}

// ExpSymV returns exp(tau H) v, where H is the Hermitian operator op. v is
// not modified. Hitting the iteration limit is not an error; Info reports
// it together with the last error estimate.
//
// Implementation:
//   - Stage 1: Lanczos from v; after each step evaluate the relative
//     estimate beta_m |exp(tau T_m)[m-1][0]| / ||exp(tau T_m) e_1|| and stop
//     once two consecutive estimates are below the precision. The estimate
//     is relative so that a decaying exponential cannot stop the iteration
//     before its dominant Ritz vector has converged.
//   - Stage 2: c = ||v|| exp(tau T) e_1.
//   - Stage 3: second Lanczos pass assembling sum_i c_i v_i.
//
// Errors: algebra.ErrComplexRequired for float64 vectors with non-real tau,
// errors from op and the tridiagonal eigensolver.
// Complexity: 2m MatVecs and O(m⁴) for the small exponentials.
func ExpSymV[T algebra.Number](op lanczos.Operator[T], v []T, tau complex128, opts ...Option) ([]T, Info, error) {
	o := gatherOptions(opts)
	if !algebra.IsComplex[T]() && imag(tau) != 0 {
		return nil, Info{}, evolutionErrorf("ExpSymV", fmt.Errorf("tau = %v: %w", tau, algebra.ErrComplexRequired))
	}
	d, err := op.Dot(v, v)
	if err != nil {
		return nil, Info{}, evolutionErrorf("ExpSymV", err)
	}
	nv := math.Sqrt(real(d))
	if nv == 0 {
		return make([]T, len(v)), Info{Criterion: lanczos.Converged}, nil
	}

	var (
		estimate = math.Inf(1)
		expErr   error
	)
	stop := func(t lanczos.Tmatrix) bool {
		e, err := ExpTridiagonal(t, tau)
		if err != nil {
			expErr = err
			return true
		}
		prev := estimate
		estimate = relativeResidual(t, e)
		return estimate < o.precision && prev < o.precision
	}
	res, err := lanczos.Run(op, v, o.lanczosOptions(stop)...)
	if err == nil {
		err = expErr
	}
	if err != nil {
		return nil, Info{}, evolutionErrorf("ExpSymV", err)
	}

	e, err := ExpTridiagonal(res.Tmatrix, tau)
	if err != nil {
		return nil, Info{}, evolutionErrorf("ExpSymV", err)
	}
	coeffs := make([]complex128, res.Tmatrix.Size())
	for i := range coeffs {
		coeffs[i] = complex(nv, 0) * e.At(i, 0)
	}
	x, err := lanczos.Reconstruct(op, v, res.Tmatrix, coeffs, lanczos.WithReorthogonalization(o.window))
	if err != nil {
		return nil, Info{}, evolutionErrorf("ExpSymV", err)
	}
	info := Info{Iterations: res.Iterations, ErrorEstimate: estimate, Criterion: res.Criterion}
	o.log.Debug().
		Int("iterations", info.Iterations).
		Float64("error_estimate", info.ErrorEstimate).
		Stringer("criterion", info.Criterion).
		Msg("krylov exponential")
	return x, info, nil
}

// relativeResidual is beta_m |e[m-1][0]| / ||e[:,0]|| for e = exp(tau T_m).
func relativeResidual(t lanczos.Tmatrix, e *mat.CDense) float64 {
	m := t.Size()
	var sq float64
	for i := 0; i < m; i++ {
		a := cmplx.Abs(e.At(i, 0))
		sq += a * a
	}
	if sq == 0 {
		return 0
	}
	return t.Residual() * cmplx.Abs(e.At(m-1, 0)) / math.Sqrt(sq)
}
