// SPDX-License-Identifier: MIT

package operators_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/awietek/xdiag-sub007/blocks"
	"github.com/awietek/xdiag-sub007/matrix"
	"github.com/awietek/xdiag-sub007/operators"
	"github.com/awietek/xdiag-sub007/symmetries"
)

func spinhalf(t *testing.T, n int, opts ...blocks.Option) *blocks.Spinhalf {
	t.Helper()
	b, err := blocks.NewSpinhalf(n, opts...)
	require.NoError(t, err)
	return b
}

func heisenbergRing(n int) *operators.OpSum {
	ops := operators.NewOpSum()
	for i := 0; i < n; i++ {
		ops.Add(operators.NewOp("SdotS", operators.Named("J"), i, (i+1)%n))
	}
	return ops.Set("J", 1)
}

func requireTermError(t *testing.T, err error, index int, target error) {
	t.Helper()
	require.ErrorIs(t, err, target)
	var te *operators.TermError
	require.True(t, errors.As(err, &te))
	require.Equal(t, index, te.Index)
}

func TestCompile_Validation(t *testing.T) {
	b := spinhalf(t, 4, blocks.WithNup(2))
	pauli, err := matrix.NewDense[complex128](2, 2)
	require.NoError(t, err)

	cases := []struct {
		name string
		op   operators.Op
		want error
	}{
		{"unknown type", operators.NewOp("Hop", operators.Real(1), 0, 1), operators.ErrUnknownType},
		{"undefined coupling", operators.NewOp("SzSz", operators.Named("K"), 0, 1), operators.ErrUndefinedCoupling},
		{"complex hermitian", operators.NewOp("SzSz", operators.Scalar(1i), 0, 1), operators.ErrNonRealCoupling},
		{"arity", operators.NewOp("SzSz", operators.Real(1), 0), operators.ErrArity},
		{"out of range", operators.NewOp("SzSz", operators.Real(1), 0, 4), operators.ErrSiteOutOfRange},
		{"duplicate", operators.NewOp("SdotS", operators.Real(1), 2, 2), operators.ErrDuplicateSites},
		{"matrix shape", operators.NewOp("Matrix", operators.Matrix(pauli), 0, 1), operators.ErrMatrixShape},
		{"matrix kind", operators.NewOp("SzSz", operators.Matrix(pauli), 0, 1), operators.ErrCouplingKind},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ops := heisenbergRing(4).Add(tc.op)
			_, err := operators.Compile(ops, b, operators.DefaultPrecision)
			requireTermError(t, err, 4, tc.want)
		})
	}
}

func TestCompile_DropsNegligibleTerms(t *testing.T) {
	b := spinhalf(t, 4)
	ops := operators.NewOpSum(
		operators.NewOp("SzSz", operators.Real(1e-14), 0, 1),
		operators.NewOp("Exchange", operators.Scalar(1e-15i), 1, 2),
	)
	c, err := operators.Compile(ops, b, 1e-12)
	require.NoError(t, err)
	require.True(t, c.Empty())
}

func TestCompile_Lowering(t *testing.T) {
	b := spinhalf(t, 4, blocks.WithNup(2))
	ops := operators.NewOpSum(operators.NewOp("Exchange", operators.Scalar(2+2i), 0, 1))
	c, err := operators.Compile(ops, b, operators.DefaultPrecision)
	require.NoError(t, err)
	require.Len(t, c.Monomials, 2)
	require.Equal(t, complex128(1+1i), c.Monomials[0].Coef)
	require.Equal(t, complex128(1-1i), c.Monomials[1].Coef)
	require.False(t, c.IsReal(1e-12))

	// S+_0 S-_1 maps 0b10 onto 0b01.
	out, sign, ok := c.Monomials[0].Apply(0b10, false)
	require.True(t, ok)
	require.Equal(t, uint64(0b01), out)
	require.Equal(t, 1.0, sign)
	_, _, ok = c.Monomials[0].Apply(0b11, false)
	require.False(t, ok)

	dup, ddn := c.SectorShift()
	require.Zero(t, dup)
	require.Zero(t, ddn)

	heis, err := operators.Compile(heisenbergRing(4), b, operators.DefaultPrecision)
	require.NoError(t, err)
	require.True(t, heis.IsReal(1e-12))
	require.Len(t, heis.Diagonals, 4)
	require.Len(t, heis.Monomials, 8)
	require.InDelta(t, 0.25, heis.Diagonals[0].Eval(0b0011), 1e-15)
	require.InDelta(t, -0.25, heis.Diagonals[1].Eval(0b0011), 1e-15)
}

func TestCompile_SectorShift(t *testing.T) {
	fixed := spinhalf(t, 4, blocks.WithNup(2))

	raise := operators.NewOpSum(
		operators.NewOp("S+", operators.Real(1), 0),
		operators.NewOp("S+", operators.Real(1), 1),
	)
	c, err := operators.Compile(raise, fixed, operators.DefaultPrecision)
	require.NoError(t, err)
	dup, _ := c.SectorShift()
	require.Equal(t, 1, dup)

	sx := operators.NewOpSum(operators.NewOp("Sx", operators.Real(1), 0))
	_, err = operators.Compile(sx, fixed, operators.DefaultPrecision)
	require.ErrorIs(t, err, operators.ErrNotConserving)

	_, err = operators.Compile(sx, spinhalf(t, 4), operators.DefaultPrecision)
	require.NoError(t, err)

	mixed := operators.NewOpSum(
		operators.NewOp("Sz", operators.Real(1), 0),
		operators.NewOp("S-", operators.Real(1), 1),
	)
	_, err = operators.Compile(mixed, fixed, operators.DefaultPrecision)
	require.ErrorIs(t, err, operators.ErrNotConserving)

	e, err := blocks.NewElectron(3, blocks.WithNup(1), blocks.WithNdn(1))
	require.NoError(t, err)
	c, err = operators.Compile(operators.NewOpSum(operators.NewOp("Cdn", operators.Real(1), 2)), e, operators.DefaultPrecision)
	require.NoError(t, err)
	dup, ddn := c.SectorShift()
	require.Equal(t, 0, dup)
	require.Equal(t, -1, ddn)
}

func TestCompile_FermionVocabulary(t *testing.T) {
	e, err := blocks.NewElectron(2, blocks.WithNup(1), blocks.WithNdn(1))
	require.NoError(t, err)
	tj, err := blocks.NewTJ(2, 1, 0)
	require.NoError(t, err)

	u := operators.NewOpSum(operators.NewOp("HubbardU", operators.Real(4)))
	c, err := operators.Compile(u, e, operators.DefaultPrecision)
	require.NoError(t, err)
	require.True(t, c.Fermionic)
	require.Len(t, c.Diagonals, 2)

	_, err = operators.Compile(u, tj, operators.DefaultPrecision)
	requireTermError(t, err, 0, operators.ErrUnknownType)

	tjOnly := operators.NewOpSum(operators.NewOp("tJSdotS", operators.Real(1), 0, 1))
	_, err = operators.Compile(tjOnly, e, operators.DefaultPrecision)
	requireTermError(t, err, 0, operators.ErrUnknownType)
	c, err = operators.Compile(tjOnly, tj, operators.DefaultPrecision)
	require.NoError(t, err)
	require.Len(t, c.Monomials, 2)

	// Creating a down electron on site 0 passes the up electron on bit 0.
	cdag := operators.NewOpSum(operators.NewOp("Cdagdn", operators.Real(1), 0))
	full, err := blocks.NewElectron(2)
	require.NoError(t, err)
	c, err = operators.Compile(cdag, full, operators.DefaultPrecision)
	require.NoError(t, err)
	out, sign, ok := c.Monomials[0].Apply(0b0001, true)
	require.True(t, ok)
	require.Equal(t, uint64(0b0101), out)
	require.Equal(t, -1.0, sign)
}

func TestCompile_SymmetryInvariance(t *testing.T) {
	const n = 4
	perm := make([]int, n)
	for i := range perm {
		perm[i] = (i + 1) % n
	}
	T := symmetries.MustPermutation(perm)
	group, err := symmetries.GeneratedGroup(T)
	require.NoError(t, err)
	irrep := symmetries.TrivialRepresentation(group)
	b := spinhalf(t, n, blocks.WithNup(2), blocks.WithSymmetries(group, irrep))

	_, err = operators.Compile(heisenbergRing(n), b, operators.DefaultPrecision)
	require.NoError(t, err)

	open := operators.NewOpSum()
	for i := 0; i < n-1; i++ {
		open.Add(operators.NewOp("SdotS", operators.Real(1), i, i+1))
	}
	_, err = operators.Compile(open, b, operators.DefaultPrecision)
	require.ErrorIs(t, err, operators.ErrNotSymmetric)

	// A complex exchange written against the ring orientation at one bond
	// is still translation invariant once the coupling is conjugated.
	twisted := operators.NewOpSum()
	for i := 0; i < n-1; i++ {
		twisted.Add(operators.NewOp("Exchange", operators.Scalar(1+1i), i, i+1))
	}
	twisted.Add(operators.NewOp("Exchange", operators.Scalar(1-1i), 0, n-1))
	_, err = operators.Compile(twisted, b, operators.DefaultPrecision)
	require.NoError(t, err)
}

func TestOpSum(t *testing.T) {
	a := operators.NewOpSum(operators.NewOp("SzSz", operators.Named("J"), 0, 1)).Set("J", 1)
	b := operators.NewOpSum(operators.NewOp("Sz", operators.Named("h"), 0)).Set("h", 0.5).Set("J", 2)
	require.True(t, a.Defined("J"))
	require.False(t, a.Defined("h"))

	sum := a.Plus(b)
	require.Equal(t, 2, sum.Len())
	j, ok := sum.Coupling("J")
	require.True(t, ok)
	require.Equal(t, complex128(2), j.Value())
	require.Equal(t, 1, a.Len())
	require.Equal(t, "SzSz[J](0,1)", a.Ops()[0].String())
}

func TestLocalMatrix(t *testing.T) {
	lm := operators.LocalMatrix{Sites: []int{3, 1}, Dim: 4}
	require.Equal(t, 0b01, lm.Local(0b1000))
	require.Equal(t, 0b10, lm.Local(0b0010))
	require.Equal(t, uint64(0b0010), lm.Replace(0b1000, 0b10))
}
