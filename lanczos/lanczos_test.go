// SPDX-License-Identifier: MIT

package lanczos_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/awietek/xdiag-sub007/algebra"
	"github.com/awietek/xdiag-sub007/blocks"
	"github.com/awietek/xdiag-sub007/lanczos"
	"github.com/awietek/xdiag-sub007/matrix"
	"github.com/awietek/xdiag-sub007/operators"
	"github.com/awietek/xdiag-sub007/states"
	"github.com/awietek/xdiag-sub007/symmetries"
)

// diagonal is a diagonal operator with the given entries.
type diagonal []float64

func (d diagonal) MatVec(in, out []float64) error {
	for i := range in {
		out[i] = d[i] * in[i]
	}
	return nil
}

func (d diagonal) Dot(a, b []float64) (complex128, error) {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	return complex(s, 0), nil
}

func heisenberg(n int) *operators.OpSum {
	ops := operators.NewOpSum()
	for i := 0; i < n; i++ {
		ops.Add(operators.NewOp("SdotS", operators.Real(1), i, (i+1)%n))
	}
	return ops
}

func denseGroundState[T algebra.Number](t *testing.T, ops *operators.OpSum, b blocks.Block) float64 {
	t.Helper()
	m, err := algebra.Matrix[T](ops, b, b)
	require.NoError(t, err)
	vals, err := matrix.EigenvaluesHermitian(m)
	require.NoError(t, err)
	return vals[0]
}

func TestTmatrix_EigenMatchesDense(t *testing.T) {
	tm := lanczos.Tmatrix{
		Alphas: []float64{1, -2, 0.5, 3, -1},
		Betas:  []float64{0.7, 1.1, 0.3, 2.0, 0.9},
	}
	var es mat.EigenSym
	require.True(t, es.Factorize(tm.Dense(), true))
	want := es.Values(nil)

	vals, err := tm.Eigenvalues()
	require.NoError(t, err)
	require.InDeltaSlice(t, want, vals, 1e-12)

	vals, vecs, err := tm.Eigen()
	require.NoError(t, err)
	require.InDeltaSlice(t, want, vals, 1e-12)
	var tv mat.VecDense
	for j := range vals {
		col := vecs.ColView(j)
		tv.MulVec(tm.Dense(), col)
		for i := 0; i < tm.Size(); i++ {
			require.InDelta(t, vals[j]*col.AtVec(i), tv.AtVec(i), 1e-12)
		}
	}
	require.Equal(t, 0.9, tm.Residual())
}

func TestRun_InvariantSubspace(t *testing.T) {
	op := diagonal{1, 2, 3, 4, 5, 6}
	v0 := []float64{1, 0, 1, 0, 0, 1}
	res, err := lanczos.Run[float64](op, v0)
	require.NoError(t, err)
	require.Equal(t, lanczos.InvariantSubspace, res.Criterion)
	require.Equal(t, 3, res.Iterations)
	require.InDeltaSlice(t, []float64{1, 3, 6}, res.Eigenvalues, 1e-12)
	require.Equal(t, []float64{1, 0, 1, 0, 0, 1}, v0, "start vector untouched")
}

func TestRun_MaxIterationsAndErrors(t *testing.T) {
	op := make(diagonal, 50)
	v0 := make([]float64, 50)
	for i := range op {
		op[i] = float64(i)
		v0[i] = 1
	}
	res, err := lanczos.Run[float64](op, v0, lanczos.WithMaxIterations(4))
	require.NoError(t, err)
	require.Equal(t, lanczos.MaxIterationsReached, res.Criterion)
	require.Equal(t, 4, res.Iterations)
	require.Len(t, res.Tmatrix.Alphas, 4)

	_, err = lanczos.Run[float64](op, make([]float64, 50))
	require.ErrorIs(t, err, lanczos.ErrZeroVector)

	require.Panics(t, func() { lanczos.WithMaxIterations(0) })
	require.Panics(t, func() { lanczos.WithReorthogonalization(-1) })
}

func TestRun_HeisenbergGroundState(t *testing.T) {
	const n = 12
	b, err := blocks.NewSpinhalf(n, blocks.WithNup(n/2))
	require.NoError(t, err)
	ops := heisenberg(n)
	want := denseGroundState[float64](t, ops, b)

	op, err := algebra.NewOperator[float64](ops, b)
	require.NoError(t, err)
	v0, err := states.Random(b, 5, true)
	require.NoError(t, err)

	for _, window := range []int{0, 5} {
		res, err := lanczos.Run[float64](op, v0.Vector64(), lanczos.WithReorthogonalization(window))
		require.NoError(t, err)
		require.Equal(t, lanczos.Converged, res.Criterion)
		require.InDelta(t, want, res.Eigenvalues[0], 1e-9)
	}
}

func TestEig0_RitzVector(t *testing.T) {
	const n = 10
	b, err := blocks.NewSpinhalf(n, blocks.WithNup(n/2))
	require.NoError(t, err)
	op, err := algebra.NewOperator[float64](heisenberg(n), b)
	require.NoError(t, err)
	v0, err := states.Random(b, 1, true)
	require.NoError(t, err)

	res, x, err := lanczos.Eig0[float64](op, v0.Vector64(), lanczos.WithReorthogonalization(3))
	require.NoError(t, err)
	e0 := res.Eigenvalues[0]

	hx := make([]float64, len(x))
	require.NoError(t, op.MatVec(x, hx))
	var r, xx float64
	for i := range x {
		r += (hx[i] - e0*x[i]) * (hx[i] - e0*x[i])
		xx += x[i] * x[i]
	}
	require.InDelta(t, 1, xx, 1e-10)
	require.Less(t, math.Sqrt(r), 1e-4)
}

func TestRun_ComplexMomentumBlock(t *testing.T) {
	const n = 8
	perm := make([]int, n)
	for i := range perm {
		perm[i] = (i + 1) % n
	}
	T := symmetries.MustPermutation(perm)
	group, err := symmetries.GeneratedGroup(T)
	require.NoError(t, err)
	irrep, err := symmetries.GeneratedIrrep(group, []symmetries.Permutation{T},
		[]complex128{cmplx.Exp(complex(0, 2*math.Pi/n))})
	require.NoError(t, err)
	b, err := blocks.NewSpinhalf(n, blocks.WithNup(4), blocks.WithSymmetries(group, irrep))
	require.NoError(t, err)
	ops := heisenberg(n)
	want := denseGroundState[complex128](t, ops, b)

	op, err := algebra.NewOperator[complex128](ops, b)
	require.NoError(t, err)
	v0, err := states.Random(b, 2, false)
	require.NoError(t, err)
	res, err := lanczos.Run[complex128](op, v0.Vector128())
	require.NoError(t, err)
	require.InDelta(t, want, res.Eigenvalues[0], 1e-9)
}

func TestReconstruct_RebuildsStartVector(t *testing.T) {
	op := diagonal{1, 2, 3, 4}
	v0 := []float64{1, 1, 1, 1}
	res, err := lanczos.Run[float64](op, v0, lanczos.WithMaxIterations(3))
	require.NoError(t, err)

	x, err := lanczos.Reconstruct[float64](op, v0, res.Tmatrix, []complex128{1})
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{0.5, 0.5, 0.5, 0.5}, x, 1e-15)

	_, err = lanczos.Reconstruct[float64](op, v0, res.Tmatrix, make([]complex128, 4))
	require.ErrorIs(t, err, lanczos.ErrCoefficients)
}
