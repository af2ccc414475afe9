// SPDX-License-Identifier: MIT

package blocks

import (
	"fmt"

	"github.com/awietek/xdiag-sub007/symmetries"
)

// maxSubsetSites bounds blocks without a conserved particle number so that
// 2^n fits an int64 index.
const maxSubsetSites = 62

// Spinhalf is a block of n spin-1/2 sites, optionally with fixed Sz and
// permutation symmetry.
type Spinhalf struct {
	n, nup int
	opts   options
	basis  Basis
}

// NewSpinhalf builds a spin-1/2 block on n sites.
//
// Errors:
//   - ErrTooManySites if n > 64 (n > 62 without WithNup).
//   - ErrInvalidQuantumNumbers if n < 0, nup is outside [0, n] or WithNdn
//     is given.
//   - ErrGroupMismatch if the group does not act on n sites.
//   - ErrEmptyBlock if no orbit survives the irrep projection.
func NewSpinhalf(n int, opts ...Option) (*Spinhalf, error) {
	return newSpinhalf(n, gatherOptions(opts))
}

func newSpinhalf(n int, o options) (*Spinhalf, error) {
	const tag = "NewSpinhalf"
	switch {
	case n < 0 || o.ndn != Unset:
		return nil, blocksErrorf(tag, ErrInvalidQuantumNumbers)
	case n > 64 || (o.nup == Unset && n > maxSubsetSites):
		return nil, blocksErrorf(tag, ErrTooManySites)
	case o.nup != Unset && (o.nup < 0 || o.nup > n):
		return nil, blocksErrorf(tag, fmt.Errorf("nup=%d on %d sites: %w", o.nup, n, ErrInvalidQuantumNumbers))
	}
	if err := checkSymmetries(tag, n, o); err != nil {
		return nil, err
	}
	sector, err := newSpinSector(n, o.nup)
	if err != nil {
		return nil, blocksErrorf(tag, err)
	}
	b := &Spinhalf{n: n, nup: o.nup, opts: o}
	if o.irrep == nil {
		b.basis = plainBasis{sector}
	} else {
		sb, err := newSymmetricBasis(sector, o.irrep, symmetries.SpinAction(o.group), o.workers, o.log)
		if err != nil {
			return nil, blocksErrorf(tag, err)
		}
		b.basis = sb
	}
	o.log.Debug().Int("n", n).Int("nup", o.nup).Int64("size", b.Size()).Msg("spinhalf block")
	return b, nil
}

func (b *Spinhalf) NSites() int  { return b.n }
func (b *Spinhalf) Nup() int     { return b.nup }
func (b *Spinhalf) Ndn() int     { return Unset }
func (b *Spinhalf) Size() int64  { return b.basis.Size() }
func (b *Spinhalf) Dim() int64   { return b.basis.Size() }
func (b *Spinhalf) Basis() Basis { return b.basis }
func (b *Spinhalf) isBlock()     {}

func (b *Spinhalf) Irrep() *symmetries.Representation { return b.opts.irrep }
func (b *Spinhalf) IsReal(tol float64) bool           { return irrepIsReal(b.opts.irrep, tol) }

// Shift returns the block with nup+dnup up spins. A block without fixed
// Sz is returned unchanged.
func (b *Spinhalf) Shift(dnup, dndn int) (Block, error) {
	if dndn != 0 {
		return nil, blocksErrorf("Spinhalf.Shift", ErrInvalidQuantumNumbers)
	}
	if b.nup == Unset || dnup == 0 {
		return b, nil
	}
	o := b.opts
	var err error
	if o.nup, err = shiftCount("Spinhalf.Shift", b.nup, dnup, b.n); err != nil {
		return nil, err
	}
	return newSpinhalf(b.n, o)
}

func (b *Spinhalf) String() string {
	return fmt.Sprintf("Spinhalf(n=%d, nup=%d, size=%d, symmetric=%t)", b.n, b.nup, b.Size(), b.opts.irrep != nil)
}
