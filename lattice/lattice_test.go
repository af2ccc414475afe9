// SPDX-License-Identifier: MIT

package lattice_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/awietek/xdiag-sub007/algorithms"
	"github.com/awietek/xdiag-sub007/blocks"
	"github.com/awietek/xdiag-sub007/lattice"
	"github.com/awietek/xdiag-sub007/operators"
)

func TestBonds(t *testing.T) {
	testCases := []struct {
		name     string
		width    int
		height   int
		opts     []lattice.Option
		nearest  int
		diagonal int
	}{
		{"periodic chain", 6, 1, nil, 6, 0},
		{"open chain", 6, 1, []lattice.Option{lattice.WithOpenBoundary()}, 5, 0},
		{"periodic 4x4", 4, 4, nil, 32, 32},
		{"open 3x3", 3, 3, []lattice.Option{lattice.WithOpenBoundary()}, 12, 8},
		{"periodic 2x2", 2, 2, nil, 4, 2},
		{"periodic 2-site chain", 2, 1, nil, 1, 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l, err := lattice.Square(tc.width, tc.height, tc.opts...)
			require.NoError(t, err)
			require.Len(t, l.Bonds(lattice.Nearest), tc.nearest)
			require.Len(t, l.Bonds(lattice.Diagonal), tc.diagonal)
			for _, b := range l.Bonds(lattice.Nearest) {
				require.NotEqual(t, b.I, b.J)
			}
		})
	}

	_, err := lattice.Chain(0)
	require.ErrorIs(t, err, lattice.ErrTooFewSites)
}

func TestIndexCoordinate(t *testing.T) {
	l, err := lattice.Square(3, 4)
	require.NoError(t, err)
	for i := 0; i < l.NSites(); i++ {
		x, y := l.Coordinate(i)
		require.Equal(t, i, l.Index(x, y))
	}
	require.Equal(t, []lattice.Bond{{0, 1}, {0, 3}}, l.Bonds(lattice.Nearest)[:2])
}

func TestTranslations(t *testing.T) {
	l, err := lattice.Square(3, 2)
	require.NoError(t, err)
	group, gens, err := l.Translations()
	require.NoError(t, err)
	require.Equal(t, 6, group.Size())
	require.Len(t, gens, 2)

	_, err = l.Momentum(group, gens, 1)
	require.ErrorIs(t, err, lattice.ErrMomentum)

	open, err := lattice.Chain(4, lattice.WithOpenBoundary())
	require.NoError(t, err)
	_, _, err = open.Translations()
	require.ErrorIs(t, err, lattice.ErrOpenBoundary)
}

func TestMomentumSectorsOfSquareLattice(t *testing.T) {
	l, err := lattice.Square(3, 3)
	require.NoError(t, err)
	ops := l.OpSum("SdotS", operators.Real(1), lattice.Nearest).
		Plus(l.OpSum("SdotS", operators.Real(0.2), lattice.Diagonal))
	n := l.NSites()

	plain, err := blocks.NewSpinhalf(n, blocks.WithNup(4))
	require.NoError(t, err)
	want, err := algorithms.Eigval0(ops, plain)
	require.NoError(t, err)

	group, gens, err := l.Translations()
	require.NoError(t, err)
	lowest := math.Inf(1)
	var dim int64
	for kx := 0; kx < 3; kx++ {
		for ky := 0; ky < 3; ky++ {
			irrep, err := l.Momentum(group, gens, kx, ky)
			require.NoError(t, err)
			b, err := blocks.NewSpinhalf(n, blocks.WithNup(4), blocks.WithSymmetries(group, irrep))
			if err != nil {
				require.ErrorIs(t, err, blocks.ErrEmptyBlock)
				continue
			}
			dim += b.Size()
			e, err := algorithms.Eigval0(ops, b)
			require.NoError(t, err)
			lowest = min(lowest, e)
		}
	}
	require.Equal(t, plain.Size(), dim)
	require.InDelta(t, want, lowest, 1e-9)
}
