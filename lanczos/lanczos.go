// SPDX-License-Identifier: MIT

package lanczos

import (
	"math"

	"github.com/awietek/xdiag-sub007/algebra"
)

// Criterion reports why Run stopped.
type Criterion int

const (
	// Converged: the tracked Ritz values (or the custom Stop test) met the
	// precision.
	Converged Criterion = iota
	// InvariantSubspace: the residual fell below the deflation tolerance,
	// so the Tmatrix spectrum is exact within the Krylov space.
	InvariantSubspace
	// MaxIterationsReached: the iteration limit was hit first.
	MaxIterationsReached
)

func (c Criterion) String() string {
	switch c {
	case Converged:
		return "converged"
	case InvariantSubspace:
		return "invariant subspace"
	case MaxIterationsReached:
		return "maximum iterations reached"
	}
	return "unknown"
}

// Result is the outcome of Run.
type Result struct {
	Tmatrix     Tmatrix
	Eigenvalues []float64 // Tmatrix spectrum, ascending
	Iterations  int
	Criterion   Criterion
}

// Run performs the Lanczos iteration on op starting from v0, which is not
// modified and need not be normalized.
//
// Implementation:
//   - Stage 1 (Init): v_0 = v0/||v0||.
//   - Stage 2 (Iterating): w = H v_k, alpha = Re<v_k|w>,
//     w -= alpha v_k + beta v_{k-1}, optional reorthogonalization against
//     the window, beta = ||w||, append (alpha, beta).
//   - Stage 3: stop when the lowest NEigenvalues Ritz values change by
//     less than Precision*max(1,|e|) between steps (or the Stop test holds),
//     when beta < DeflationTolerance, or after MaxIterations steps.
//
// Errors: ErrZeroVector, errors from op, ErrEigenFailed.
// Complexity: one MatVec and O(Window+2) dot products per step, plus O(m²)
// for the Ritz values at step m.
func Run[T algebra.Number](op Operator[T], v0 []T, opts ...Option) (Result, error) {
	o := gatherOptions(opts)
	it, err := newIterator(op, v0, o.Window)
	if err != nil {
		return Result{}, lanczosErrorf("Run", err)
	}

	var (
		res  Result
		prev []float64
	)
	res.Criterion = MaxIterationsReached
	for res.Iterations < o.MaxIterations {
		alpha, err := it.step(nil)
		if err != nil {
			return Result{}, lanczosErrorf("Run", err)
		}
		beta, err := norm(op, it.w)
		if err != nil {
			return Result{}, lanczosErrorf("Run", err)
		}
		res.Tmatrix.append(alpha, beta)
		res.Iterations++

		evals, err := res.Tmatrix.Eigenvalues()
		if err != nil {
			return Result{}, lanczosErrorf("Run", err)
		}
		o.Log.Debug().
			Int("iteration", res.Iterations).
			Float64("alpha", alpha).
			Float64("beta", beta).
			Float64("e0", evals[0]).
			Msg("lanczos step")

		if o.Stop != nil {
			if o.Stop(res.Tmatrix) {
				res.Criterion = Converged
				break
			}
		} else if ritzConverged(prev, evals, o.NEigenvalues, o.Precision) {
			res.Criterion = Converged
			break
		}
		if beta == 0 || beta < o.DeflationTolerance {
			res.Criterion = InvariantSubspace
			break
		}
		prev = evals
		it.advance(beta)
	}

	res.Eigenvalues, err = res.Tmatrix.Eigenvalues()
	if err != nil {
		return Result{}, lanczosErrorf("Run", err)
	}
	o.Log.Info().
		Int("iterations", res.Iterations).
		Stringer("criterion", res.Criterion).
		Float64("e0", res.Eigenvalues[0]).
		Msg("lanczos finished")
	return res, nil
}

func ritzConverged(prev, cur []float64, k int, precision float64) bool {
	if len(prev) < k {
		return false
	}
	for i := 0; i < k; i++ {
		if math.Abs(cur[i]-prev[i]) > precision*max(1, math.Abs(cur[i])) {
			return false
		}
	}
	return true
}
