// SPDX-License-Identifier: MIT

package algebra

import (
	"fmt"

	"github.com/awietek/xdiag-sub007/blocks"
	"github.com/awietek/xdiag-sub007/operators"
)

// realTol is the tolerance for treating coefficients and characters as real.
const realTol = 1e-12

// Apply accumulates ops*vin into vout: vout += H vin, where vin lives on
// block in and vout on block out.
//
// Errors:
//   - operators errors (*operators.TermError and friends) from compilation.
//   - *DimensionMismatchError when a vector length differs from its block.
//   - ErrBlockMismatch when out is not the sector ops maps in to.
//   - ErrComplexRequired when T is float64 but ops or a block is complex.
//
// For distributed blocks Apply is collective and aborts the communicator on
// any error so that peers do not block in the exchange.
func Apply[T Number](ops *operators.OpSum, in blocks.Block, vin []T, out blocks.Block, vout []T, opts ...Option) error {
	o := gatherOptions(opts)
	c, err := operators.Compile(ops, in, o.precision)
	if err == nil {
		err = applyCompiled(c, in, vin, out, vout, o)
	}
	if err != nil {
		if d, ok := in.(blocks.Distributed); ok {
			d.Comm().Abort(err)
		}
		return err
	}
	return nil
}

func applyCompiled[T Number](c *operators.Compiled, in blocks.Block, vin []T, out blocks.Block, vout []T, o options) error {
	if err := checkBlocks(c, in, out); err != nil {
		return err
	}
	if err := checkLen("input vector", vin, in.Size()); err != nil {
		return err
	}
	if err := checkLen("output vector", vout, out.Size()); err != nil {
		return err
	}
	if err := checkReal[T](c, in, out); err != nil {
		return err
	}
	if _, ok := in.(blocks.Distributed); ok {
		return applyDistributed(c, in, out, vin, vout, o.workers)
	}
	return applyLocal(c, in, out, vin, vout, o.workers)
}

// checkBlocks verifies that out is the image sector of in under c.
func checkBlocks(c *operators.Compiled, in, out blocks.Block) error {
	_, inDist := in.(blocks.Distributed)
	_, outDist := out.(blocks.Distributed)
	switch {
	case in.NSites() != out.NSites(), inDist != outDist:
		return algebraErrorf("Apply", ErrBlockMismatch)
	case (in.Nup() == blocks.Unset) != (out.Nup() == blocks.Unset),
		in.Nup() != blocks.Unset && out.Nup() != in.Nup()+c.DNup:
		return algebraErrorf("Apply", fmt.Errorf("nup %d -> %d, shift %d: %w", in.Nup(), out.Nup(), c.DNup, ErrBlockMismatch))
	case (in.Ndn() == blocks.Unset) != (out.Ndn() == blocks.Unset),
		in.Ndn() != blocks.Unset && out.Ndn() != in.Ndn()+c.DNdn:
		return algebraErrorf("Apply", fmt.Errorf("ndn %d -> %d, shift %d: %w", in.Ndn(), out.Ndn(), c.DNdn, ErrBlockMismatch))
	case !in.Irrep().Equal(out.Irrep(), realTol):
		return algebraErrorf("Apply", fmt.Errorf("irreps differ: %w", ErrBlockMismatch))
	}
	return nil
}

func checkReal[T Number](c *operators.Compiled, blks ...blocks.Block) error {
	if IsComplex[T]() {
		return nil
	}
	if !c.IsReal(realTol) {
		return algebraErrorf("Apply", fmt.Errorf("operator: %w", ErrComplexRequired))
	}
	for _, b := range blks {
		if !b.IsReal(realTol) {
			return algebraErrorf("Apply", fmt.Errorf("%s: %w", b, ErrComplexRequired))
		}
	}
	return nil
}

// IsReal reports whether ops on block can be applied with real amplitudes.
func IsReal(ops *operators.OpSum, block blocks.Block) (bool, error) {
	c, err := operators.Compile(ops, block, operators.DefaultPrecision)
	if err != nil {
		return false, err
	}
	return c.IsReal(realTol) && block.IsReal(realTol), nil
}

// BlockOut returns the block ops maps in to: in itself for operators that
// conserve particle numbers, otherwise in shifted by the operator's
// sector change.
func BlockOut(ops *operators.OpSum, in blocks.Block, opts ...Option) (blocks.Block, error) {
	o := gatherOptions(opts)
	c, err := operators.Compile(ops, in, o.precision)
	if err != nil {
		return nil, err
	}
	if c.DNup == 0 && c.DNdn == 0 {
		return in, nil
	}
	return in.Shift(c.DNup, c.DNdn)
}
