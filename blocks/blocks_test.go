// SPDX-License-Identifier: MIT

package blocks_test

import (
	"bytes"
	"math"
	"math/bits"
	"math/cmplx"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/awietek/xdiag-sub007/blocks"
	"github.com/awietek/xdiag-sub007/combinatorics"
	"github.com/awietek/xdiag-sub007/comm"
	"github.com/awietek/xdiag-sub007/symmetries"
)

// chain returns the cyclic translation group of an n-site chain and its
// generator.
func chain(t *testing.T, n int) (*symmetries.PermutationGroup, symmetries.Permutation) {
	t.Helper()
	perm := make([]int, n)
	for i := range perm {
		perm[i] = (i + 1) % n
	}
	T := symmetries.MustPermutation(perm)
	group, err := symmetries.GeneratedGroup(T)
	require.NoError(t, err)
	return group, T
}

func momentum(t *testing.T, group *symmetries.PermutationGroup, T symmetries.Permutation, k int) *symmetries.Representation {
	t.Helper()
	n := group.Size()
	phase := cmplx.Exp(complex(0, 2*math.Pi*float64(k)/float64(n)))
	irrep, err := symmetries.GeneratedIrrep(group, []symmetries.Permutation{T}, []complex128{phase})
	require.NoError(t, err)
	return irrep
}

// requireLookupRoundTrip checks that every stored state maps back to its
// own index with factor Norm(i).
func requireLookupRoundTrip(t *testing.T, b blocks.Block) {
	t.Helper()
	basis := b.Basis()
	for i := int64(0); i < basis.Size(); i++ {
		idx, factor, ok := basis.Lookup(basis.State(i))
		require.True(t, ok, "state %d", i)
		require.Equal(t, i, idx)
		require.InDelta(t, basis.Norm(i), real(factor), 1e-12)
		require.InDelta(t, 0, imag(factor), 1e-12)
	}
}

func TestSpinhalf_Sizes(t *testing.T) {
	full, err := blocks.NewSpinhalf(6)
	require.NoError(t, err)
	require.Equal(t, int64(64), full.Size())
	require.Equal(t, blocks.Unset, full.Nup())
	requireLookupRoundTrip(t, full)

	var total int64
	for nup := 0; nup <= 6; nup++ {
		b, err := blocks.NewSpinhalf(6, blocks.WithNup(nup))
		require.NoError(t, err)
		require.Equal(t, combinatorics.Binomial(6, nup), b.Size())
		requireLookupRoundTrip(t, b)
		total += b.Size()
	}
	require.Equal(t, int64(64), total)
}

func TestSpinhalf_Errors(t *testing.T) {
	_, err := blocks.NewSpinhalf(6, blocks.WithNup(7))
	require.ErrorIs(t, err, blocks.ErrInvalidQuantumNumbers)

	_, err = blocks.NewSpinhalf(6, blocks.WithNdn(1))
	require.ErrorIs(t, err, blocks.ErrInvalidQuantumNumbers)

	_, err = blocks.NewSpinhalf(65, blocks.WithNup(1))
	require.ErrorIs(t, err, blocks.ErrTooManySites)

	_, err = blocks.NewSpinhalf(63)
	require.ErrorIs(t, err, blocks.ErrTooManySites)

	group, T := chain(t, 5)
	_, err = blocks.NewSpinhalf(6, blocks.WithSymmetries(group, momentum(t, group, T, 0)))
	require.ErrorIs(t, err, blocks.ErrGroupMismatch)

	require.Panics(t, func() { blocks.WithWorkers(0) })
}

func TestSpinhalf_LookupRejectsForeignStates(t *testing.T) {
	b, err := blocks.NewSpinhalf(4, blocks.WithNup(2))
	require.NoError(t, err)
	_, _, ok := b.Basis().Lookup(0b0111)
	require.False(t, ok)
	_, _, ok = b.Basis().Lookup(0b10011)
	require.False(t, ok)
}

func TestSpinhalf_IrrepSumRule(t *testing.T) {
	for _, n := range []int{4, 6, 8} {
		group, T := chain(t, n)
		for nup := 0; nup <= n; nup++ {
			var total int64
			for k := 0; k < n; k++ {
				irrep := momentum(t, group, T, k)
				b, err := blocks.NewSpinhalf(n, blocks.WithNup(nup),
					blocks.WithSymmetries(group, irrep), blocks.WithWorkers(3))
				if err != nil {
					require.ErrorIs(t, err, blocks.ErrEmptyBlock)
					continue
				}
				requireLookupRoundTrip(t, b)
				require.Equal(t, irrep.IsReal(1e-12), b.IsReal(1e-12))
				total += b.Size()
			}
			require.Equal(t, combinatorics.Binomial(n, nup), total, "n=%d nup=%d", n, nup)
		}
	}
}

func TestSpinhalf_EmptyBlock(t *testing.T) {
	group, T := chain(t, 2)
	_, err := blocks.NewSpinhalf(2, blocks.WithNup(2), blocks.WithSymmetries(group, momentum(t, group, T, 1)))
	require.ErrorIs(t, err, blocks.ErrEmptyBlock)
}

func TestSpinhalf_Shift(t *testing.T) {
	b, err := blocks.NewSpinhalf(6, blocks.WithNup(3))
	require.NoError(t, err)
	up, err := b.Shift(1, 0)
	require.NoError(t, err)
	require.Equal(t, 4, up.Nup())
	require.Equal(t, int64(15), up.Size())

	_, err = up.Shift(3, 0)
	require.ErrorIs(t, err, blocks.ErrInvalidQuantumNumbers)

	full, err := blocks.NewSpinhalf(6)
	require.NoError(t, err)
	same, err := full.Shift(1, 0)
	require.NoError(t, err)
	require.Same(t, full, same)
}

func TestShift_BelowZeroParticles(t *testing.T) {
	empty, err := blocks.NewSpinhalf(6, blocks.WithNup(0))
	require.NoError(t, err)
	_, err = empty.Shift(-1, 0)
	require.ErrorIs(t, err, blocks.ErrInvalidQuantumNumbers)

	one, err := blocks.NewSpinhalf(6, blocks.WithNup(1))
	require.NoError(t, err)
	_, err = one.Shift(-2, 0)
	require.ErrorIs(t, err, blocks.ErrInvalidQuantumNumbers)

	el, err := blocks.NewElectron(4, blocks.WithNup(0), blocks.WithNdn(0))
	require.NoError(t, err)
	_, err = el.Shift(-1, -1)
	require.ErrorIs(t, err, blocks.ErrInvalidQuantumNumbers)
	_, err = el.Shift(0, 5)
	require.ErrorIs(t, err, blocks.ErrInvalidQuantumNumbers)

	tj, err := blocks.NewTJ(4, 1, 0)
	require.NoError(t, err)
	_, err = tj.Shift(0, -1)
	require.ErrorIs(t, err, blocks.ErrInvalidQuantumNumbers)

	dist, err := blocks.NewSpinhalfDistributed(comm.Self(), 6, 0)
	require.NoError(t, err)
	_, err = dist.Shift(-1, 0)
	require.ErrorIs(t, err, blocks.ErrInvalidQuantumNumbers)
	up, err := dist.Shift(2, 0)
	require.NoError(t, err)
	require.Equal(t, int64(15), up.Dim())
}

func TestElectron_Sizes(t *testing.T) {
	b, err := blocks.NewElectron(4, blocks.WithNup(2), blocks.WithNdn(1))
	require.NoError(t, err)
	require.Equal(t, int64(24), b.Size())
	requireLookupRoundTrip(t, b)

	// index = idx_up*size_dn + idx_dn, packed up | dn<<n.
	require.Equal(t, uint64(0b0011|0b0001<<4), b.Basis().State(0))
	require.Equal(t, uint64(0b0011|0b0010<<4), b.Basis().State(1))
	require.Equal(t, uint64(0b0101|0b0001<<4), b.Basis().State(4))

	full, err := blocks.NewElectron(3)
	require.NoError(t, err)
	require.Equal(t, int64(64), full.Size())

	_, err = blocks.NewElectron(4, blocks.WithNup(2))
	require.ErrorIs(t, err, blocks.ErrInvalidQuantumNumbers)
	_, err = blocks.NewElectron(33, blocks.WithNup(1), blocks.WithNdn(1))
	require.ErrorIs(t, err, blocks.ErrTooManySites)
}

func TestElectron_IrrepSumRule(t *testing.T) {
	const n = 4
	group, T := chain(t, n)
	for _, q := range [][2]int{{1, 1}, {2, 1}, {2, 2}, {3, 2}} {
		var total int64
		for k := 0; k < n; k++ {
			b, err := blocks.NewElectron(n, blocks.WithNup(q[0]), blocks.WithNdn(q[1]),
				blocks.WithSymmetries(group, momentum(t, group, T, k)))
			if err != nil {
				require.ErrorIs(t, err, blocks.ErrEmptyBlock)
				continue
			}
			requireLookupRoundTrip(t, b)
			total += b.Size()
		}
		require.Equal(t, combinatorics.Binomial(n, q[0])*combinatorics.Binomial(n, q[1]), total)
	}
}

func TestTJ_NoDoubleOccupancy(t *testing.T) {
	b, err := blocks.NewTJ(4, 2, 1)
	require.NoError(t, err)
	require.Equal(t, int64(12), b.Size())
	requireLookupRoundTrip(t, b)

	seen := map[uint64]bool{}
	for i := int64(0); i < b.Size(); i++ {
		s := b.Basis().State(i)
		up, dn := s&0xf, s>>4
		require.Zero(t, up&dn)
		require.Equal(t, 2, bits.OnesCount64(up))
		require.Equal(t, 1, bits.OnesCount64(dn))
		require.False(t, seen[s])
		seen[s] = true
	}

	_, _, ok := b.Basis().Lookup(0b0011 | 0b0001<<4)
	require.False(t, ok)

	_, err = blocks.NewTJ(4, 3, 2)
	require.ErrorIs(t, err, blocks.ErrInvalidQuantumNumbers)
}

func TestTJ_IrrepSumRule(t *testing.T) {
	const n = 5
	group, T := chain(t, n)
	var total int64
	for k := 0; k < n; k++ {
		b, err := blocks.NewTJ(n, 2, 2, blocks.WithSymmetries(group, momentum(t, group, T, k)))
		require.NoError(t, err)
		requireLookupRoundTrip(t, b)
		total += b.Size()
	}
	require.Equal(t, combinatorics.Binomial(5, 2)*combinatorics.Binomial(3, 2), total)
}

func TestSpinhalfDistributed_Partition(t *testing.T) {
	const n, nup, ranks = 10, 5, 3
	w, err := comm.NewWorld(ranks)
	require.NoError(t, err)

	sizes := make([]int64, ranks)
	err = w.Run(func(c comm.Comm) error {
		b, err := blocks.NewSpinhalfDistributed(c, n, nup, blocks.WithPrefixBits(4))
		if err != nil {
			return err
		}
		require.Equal(t, combinatorics.Binomial(n, nup), b.Dim())
		basis := b.Basis()
		prev := uint64(0)
		for i := int64(0); i < basis.Size(); i++ {
			s := basis.State(i)
			require.Equal(t, c.Rank(), b.Owner(s))
			if i > 0 {
				require.Greater(t, s, prev)
			}
			prev = s
			idx, _, ok := basis.Lookup(s)
			require.True(t, ok)
			require.Equal(t, i, idx)
		}
		sizes[c.Rank()] = b.Size()
		return nil
	})
	require.NoError(t, err)

	var total int64
	for _, s := range sizes {
		total += s
	}
	require.Equal(t, combinatorics.Binomial(n, nup), total)
}

func TestSpinhalfDistributed_InvalidPrefix(t *testing.T) {
	_, err := blocks.NewSpinhalfDistributed(comm.Self(), 6, 3, blocks.WithPrefixBits(7))
	require.ErrorIs(t, err, blocks.ErrInvalidPrefixBits)

	b, err := blocks.NewSpinhalfDistributed(comm.Self(), 6, 3)
	require.NoError(t, err)
	require.Equal(t, 6, b.PrefixBits())
	require.Equal(t, int64(20), b.Size())

	group, T := chain(t, 6)
	_, err = blocks.NewSpinhalfDistributed(comm.Self(), 6, 3,
		blocks.WithSymmetries(group, momentum(t, group, T, 0)))
	require.ErrorIs(t, err, blocks.ErrDistributedSymmetries)
}

func TestSpinhalfDistributed_ShiftKeepsOptions(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)
	b, err := blocks.NewSpinhalfDistributed(comm.Self(), 8, 4,
		blocks.WithPrefixBits(3), blocks.WithLogger(log))
	require.NoError(t, err)
	require.Equal(t, 1, strings.Count(buf.String(), "distributed spinhalf block"))

	up, err := b.Shift(1, 0)
	require.NoError(t, err)
	require.Equal(t, 3, up.(*blocks.SpinhalfDistributed).PrefixBits())
	require.Equal(t, combinatorics.Binomial(8, 5), up.Dim())
	require.Equal(t, 2, strings.Count(buf.String(), "distributed spinhalf block"))
}

func TestFingerprint(t *testing.T) {
	a, err := blocks.NewSpinhalf(6, blocks.WithNup(3))
	require.NoError(t, err)
	b, err := blocks.NewSpinhalf(6, blocks.WithNup(3))
	require.NoError(t, err)
	c, err := blocks.NewSpinhalf(6, blocks.WithNup(2))
	require.NoError(t, err)
	require.Equal(t, blocks.Fingerprint(a), blocks.Fingerprint(b))
	require.NotEqual(t, blocks.Fingerprint(a), blocks.Fingerprint(c))
}
