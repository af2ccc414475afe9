// SPDX-License-Identifier: MIT

package algorithms_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/awietek/xdiag-sub007/algebra"
	"github.com/awietek/xdiag-sub007/algorithms"
	"github.com/awietek/xdiag-sub007/blocks"
	"github.com/awietek/xdiag-sub007/comm"
	"github.com/awietek/xdiag-sub007/config"
	"github.com/awietek/xdiag-sub007/operators"
	"github.com/awietek/xdiag-sub007/states"
	"github.com/awietek/xdiag-sub007/symmetries"
)

const tol = 1e-9

func heisenberg(n int) *operators.OpSum {
	ops := operators.NewOpSum()
	for i := 0; i < n; i++ {
		ops.Add(operators.NewOp("SdotS", operators.Named("J1"), i, (i+1)%n))
		ops.Add(operators.NewOp("SdotS", operators.Named("J2"), i, (i+2)%n))
	}
	return ops.Set("J1", 1).Set("J2", 0.3)
}

func hubbard(n int, t complex128, u float64) *operators.OpSum {
	ops := operators.NewOpSum()
	for i := 0; i < n; i++ {
		ops.Add(operators.NewOp("Hop", operators.Named("T"), i, (i+1)%n))
	}
	ops.Add(operators.NewOp("HubbardU", operators.Named("U")))
	return ops.Set("T", t).Set("U", complex(u, 0))
}

func tJ(n int) *operators.OpSum {
	ops := operators.NewOpSum()
	for i := 0; i < n; i++ {
		ops.Add(operators.NewOp("Hop", operators.Real(1), i, (i+1)%n))
		ops.Add(operators.NewOp("tJSdotS", operators.Real(0.4), i, (i+1)%n))
	}
	return ops
}

func TestEigval0_MatchesDense(t *testing.T) {
	spin, err := blocks.NewSpinhalf(12, blocks.WithNup(6))
	require.NoError(t, err)
	electron, err := blocks.NewElectron(6, blocks.WithNup(3), blocks.WithNdn(2))
	require.NoError(t, err)
	tj, err := blocks.NewTJ(8, 3, 2)
	require.NoError(t, err)

	testCases := []struct {
		name  string
		ops   *operators.OpSum
		block blocks.Block
	}{
		{"heisenberg", heisenberg(12), spin},
		{"hubbard", hubbard(6, 1, 4), electron},
		{"hubbard flux", hubbard(6, cmplx.Exp(0.3i), 4), electron},
		{"tJ", tJ(8), tj},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dense, err := algorithms.EigvalsDense(tc.ops, tc.block)
			require.NoError(t, err)
			e0, err := algorithms.Eigval0(tc.ops, tc.block)
			require.NoError(t, err)
			require.InDelta(t, dense[0], e0, tol)
		})
	}
}

func TestEigval0_SymmetricSectorsContainGroundState(t *testing.T) {
	const n = 10
	ops := heisenberg(n)
	plain, err := blocks.NewSpinhalf(n, blocks.WithNup(n/2))
	require.NoError(t, err)
	want, err := algorithms.Eigval0(ops, plain)
	require.NoError(t, err)

	perm := make([]int, n)
	for i := range perm {
		perm[i] = (i + 1) % n
	}
	T := symmetries.MustPermutation(perm)
	group, err := symmetries.GeneratedGroup(T)
	require.NoError(t, err)

	lowest := math.Inf(1)
	for k := 0; k < n; k++ {
		irrep, err := symmetries.GeneratedIrrep(group, []symmetries.Permutation{T},
			[]complex128{cmplx.Exp(complex(0, 2*math.Pi*float64(k)/n))})
		require.NoError(t, err)
		b, err := blocks.NewSpinhalf(n, blocks.WithNup(n/2), blocks.WithSymmetries(group, irrep))
		require.NoError(t, err)
		e, err := algorithms.Eigval0(ops, b)
		require.NoError(t, err)
		lowest = min(lowest, e)
	}
	require.InDelta(t, want, lowest, tol)
}

func TestEig0_StateIsEigenvector(t *testing.T) {
	ops := hubbard(6, 1, 3)
	b, err := blocks.NewElectron(6, blocks.WithNup(3), blocks.WithNdn(3))
	require.NoError(t, err)
	e0, gs, err := algorithms.Eig0(ops, b, algorithms.WithReorthogonalization(4))
	require.NoError(t, err)
	require.True(t, gs.IsReal())

	n, err := gs.Norm()
	require.NoError(t, err)
	require.InDelta(t, 1, n, 1e-10)

	hv := make([]float64, b.Size())
	require.NoError(t, algebra.Apply(ops, b, gs.Vector64(), b, hv))
	energy, err := algebra.Dot(b, gs.Vector64(), hv)
	require.NoError(t, err)
	require.InDelta(t, e0, real(energy), 1e-8)
}

func TestEigval0_Distributed(t *testing.T) {
	const n, nup = 12, 6
	ops := heisenberg(n)
	plain, err := blocks.NewSpinhalf(n, blocks.WithNup(nup))
	require.NoError(t, err)
	want, err := algorithms.Eigval0(ops, plain)
	require.NoError(t, err)

	w, err := comm.NewWorld(3)
	require.NoError(t, err)
	got := make([]float64, 3)
	require.NoError(t, w.Run(func(c comm.Comm) error {
		b, err := blocks.NewSpinhalfDistributed(c, n, nup, blocks.WithPrefixBits(4))
		if err != nil {
			return err
		}
		got[c.Rank()], err = algorithms.Eigval0(ops, b, algorithms.WithWorkers(2))
		return err
	}))
	for _, e := range got {
		require.InDelta(t, want, e, tol)
	}
}

func TestEigvalsLanczos_Criterion(t *testing.T) {
	b, err := blocks.NewSpinhalf(10, blocks.WithNup(5))
	require.NoError(t, err)
	res, err := algorithms.EigvalsLanczos(heisenberg(10), b, algorithms.WithMaxIterations(3))
	require.NoError(t, err)
	require.Equal(t, 3, res.Iterations)
	require.Len(t, res.Tmatrix.Alphas, 3)

	_, err = algorithms.EigvalsLanczos(heisenberg(10), b, algorithms.WithMaxIterations(3), algorithms.WithStrictConvergence())
	require.ErrorIs(t, err, algorithms.ErrNotConverged)

	undefined := operators.NewOpSum(operators.NewOp("SdotS", operators.Named("K"), 0, 1))
	_, err = algorithms.Eigval0(undefined, b)
	require.ErrorIs(t, err, operators.ErrUndefinedCoupling)
}

func TestTimeEvolve_UnitaryAndReversible(t *testing.T) {
	ops := heisenberg(10)
	b, err := blocks.NewSpinhalf(10, blocks.WithNup(5))
	require.NoError(t, err)
	v, err := states.Random(b, 8, true)
	require.NoError(t, err)

	forward, err := algorithms.TimeEvolve(ops, v, 2.5)
	require.NoError(t, err)
	require.False(t, forward.IsReal())
	n, err := forward.Norm()
	require.NoError(t, err)
	require.InDelta(t, 1, n, 1e-10)

	back, err := algorithms.TimeEvolve(ops, forward, -2.5)
	require.NoError(t, err)
	overlap, err := states.Dot(v, back)
	require.NoError(t, err)
	require.InDelta(t, 1, real(overlap), 1e-8)
	require.InDelta(t, 0, imag(overlap), 1e-8)
}

func TestImagTimeEvolve_ProjectsOntoGroundState(t *testing.T) {
	ops := heisenberg(8)
	b, err := blocks.NewSpinhalf(8, blocks.WithNup(4))
	require.NoError(t, err)
	e0, gs, err := algorithms.Eig0(ops, b)
	require.NoError(t, err)

	v, err := states.Random(b, 2, true)
	require.NoError(t, err)
	out, err := algorithms.ImagTimeEvolve(ops, v, 40, algorithms.WithShift())
	require.NoError(t, err)
	require.True(t, out.IsReal())
	require.NoError(t, out.Normalize())

	overlap, err := states.Dot(gs, out)
	require.NoError(t, err)
	require.InDelta(t, 1, math.Abs(real(overlap)), 1e-6)

	// Without the shift the norm is bounded by exp(-tau E0).
	short, err := algorithms.ImagTimeEvolve(ops, v, 0.5)
	require.NoError(t, err)
	n, err := short.Norm()
	require.NoError(t, err)
	require.Greater(t, n, 0.0)
	require.Less(t, n, math.Exp(-0.5*e0))
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Workers = 2
	cfg.Reorthogonalize = 3
	b, err := blocks.NewSpinhalf(4, blocks.WithNup(2))
	require.NoError(t, err)
	ring := operators.NewOpSum()
	for i := 0; i < 4; i++ {
		ring.Add(operators.NewOp("SdotS", operators.Real(1), i, (i+1)%4))
	}
	e0, err := algorithms.Eigval0(ring, b, algorithms.OptionsFromConfig(cfg)...)
	require.NoError(t, err)
	require.InDelta(t, -2, e0, tol)
}
