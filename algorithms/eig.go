// SPDX-License-Identifier: MIT

package algorithms

import (
	"github.com/awietek/xdiag-sub007/algebra"
	"github.com/awietek/xdiag-sub007/blocks"
	"github.com/awietek/xdiag-sub007/lanczos"
	"github.com/awietek/xdiag-sub007/matrix"
	"github.com/awietek/xdiag-sub007/operators"
	"github.com/awietek/xdiag-sub007/states"
)

// useReal reports whether ops on block run in float64 arithmetic.
func useReal(ops *operators.OpSum, block blocks.Block, o options) (bool, error) {
	if o.forceComplex {
		return false, nil
	}
	return algebra.IsReal(ops, block)
}

// EigvalsLanczos runs Lanczos from a random start vector and returns the
// Tmatrix with its spectrum. Non-convergence is reported in the result's
// Criterion unless WithStrictConvergence is set.
func EigvalsLanczos(ops *operators.OpSum, block blocks.Block, opts ...Option) (lanczos.Result, error) {
	o := gatherOptions(opts)
	isReal, err := useReal(ops, block, o)
	if err != nil {
		return lanczos.Result{}, algorithmsErrorf("EigvalsLanczos", err)
	}
	var res lanczos.Result
	if isReal {
		res, _, err = runLanczos[float64](ops, block, o, false)
	} else {
		res, _, err = runLanczos[complex128](ops, block, o, false)
	}
	if err != nil {
		return lanczos.Result{}, algorithmsErrorf("EigvalsLanczos", err)
	}
	return res, nil
}

// Eigval0 returns the ground-state energy.
func Eigval0(ops *operators.OpSum, block blocks.Block, opts ...Option) (float64, error) {
	res, err := EigvalsLanczos(ops, block, opts...)
	if err != nil {
		return 0, err
	}
	return res.Eigenvalues[0], nil
}

// Eig0 returns the ground-state energy and the normalized ground state.
// The state is rebuilt by a second Lanczos pass.
func Eig0(ops *operators.OpSum, block blocks.Block, opts ...Option) (float64, *states.State, error) {
	o := gatherOptions(opts)
	isReal, err := useReal(ops, block, o)
	if err != nil {
		return 0, nil, algorithmsErrorf("Eig0", err)
	}
	var (
		res lanczos.Result
		gs  *states.State
	)
	if isReal {
		var x []float64
		res, x, err = runLanczos[float64](ops, block, o, true)
		if err == nil {
			gs, err = states.FromVector(block, x)
		}
	} else {
		var x []complex128
		res, x, err = runLanczos[complex128](ops, block, o, true)
		if err == nil {
			gs, err = states.FromVector(block, x)
		}
	}
	if err != nil {
		return 0, nil, algorithmsErrorf("Eig0", err)
	}
	return res.Eigenvalues[0], gs, nil
}

func runLanczos[T algebra.Number](ops *operators.OpSum, block blocks.Block, o options, vector bool) (lanczos.Result, []T, error) {
	op, err := algebra.NewOperator[T](ops, block, o.algebraOptions()...)
	if err != nil {
		return lanczos.Result{}, nil, err
	}
	v0, err := states.Random(block, o.seed, !algebra.IsComplex[T]())
	if err != nil {
		return lanczos.Result{}, nil, err
	}
	var start []T
	if algebra.IsComplex[T]() {
		start = any(v0.Vector128()).([]T)
	} else {
		start = any(v0.Vector64()).([]T)
	}

	var (
		res lanczos.Result
		x   []T
	)
	if vector {
		res, x, err = lanczos.Eig0(op, start, o.lanczosOptions()...)
	} else {
		res, err = lanczos.Run(op, start, o.lanczosOptions()...)
	}
	if err != nil {
		return lanczos.Result{}, nil, err
	}
	if o.strict && res.Criterion == lanczos.MaxIterationsReached {
		return lanczos.Result{}, nil, ErrNotConverged
	}
	return res, x, nil
}

// EigvalsDense builds the dense matrix of ops on block and returns its full
// spectrum in ascending order. The matrix must fit the memory fraction set
// with WithDenseMemoryFraction.
func EigvalsDense(ops *operators.OpSum, block blocks.Block, opts ...Option) ([]float64, error) {
	o := gatherOptions(opts)
	isReal, err := useReal(ops, block, o)
	if err != nil {
		return nil, algorithmsErrorf("EigvalsDense", err)
	}
	aopts := append(o.algebraOptions(), algebra.WithDenseOptions(o.denseOptions()...))
	var vals []float64
	if isReal {
		vals, err = denseSpectrum[float64](ops, block, aopts)
	} else {
		vals, err = denseSpectrum[complex128](ops, block, aopts)
	}
	if err != nil {
		return nil, algorithmsErrorf("EigvalsDense", err)
	}
	return vals, nil
}

func denseSpectrum[T algebra.Number](ops *operators.OpSum, block blocks.Block, opts []algebra.Option) ([]float64, error) {
	m, err := algebra.Matrix[T](ops, block, block, opts...)
	if err != nil {
		return nil, err
	}
	return matrix.EigenvaluesHermitian(m)
}
