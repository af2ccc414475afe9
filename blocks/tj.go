// SPDX-License-Identifier: MIT

package blocks

import (
	"fmt"

	"github.com/awietek/xdiag-sub007/symmetries"
)

// TJ is a t-J block: electrons without double occupancy.
type TJ struct {
	n, nup, ndn int
	opts        options
	basis       Basis
}

// NewTJ builds a t-J block on n sites with nup up and ndn down electrons.
//
// Errors:
//   - ErrTooManySites if n > 32.
//   - ErrInvalidQuantumNumbers if nup, ndn < 0 or nup+ndn > n.
//   - ErrGroupMismatch, ErrEmptyBlock as for NewSpinhalf.
func NewTJ(n, nup, ndn int, opts ...Option) (*TJ, error) {
	o := gatherOptions(opts)
	o.nup, o.ndn = nup, ndn
	return newTJ(n, o)
}

func newTJ(n int, o options) (*TJ, error) {
	const tag = "NewTJ"
	switch {
	case n > maxFermionSites:
		return nil, blocksErrorf(tag, ErrTooManySites)
	case n < 0 || o.nup < 0 || o.ndn < 0 || o.nup+o.ndn > n:
		return nil, blocksErrorf(tag, fmt.Errorf("nup=%d ndn=%d on %d sites: %w", o.nup, o.ndn, n, ErrInvalidQuantumNumbers))
	}
	if err := checkSymmetries(tag, n, o); err != nil {
		return nil, err
	}
	up, err := newSpinSector(n, o.nup)
	if err != nil {
		return nil, blocksErrorf(tag, err)
	}
	dnHole, err := newSpinSector(n-o.nup, o.ndn)
	if err != nil {
		return nil, blocksErrorf(tag, err)
	}
	sector := &tjSector{n: n, mask: siteMask(n), up: up, dnHole: dnHole}

	b := &TJ{n: n, nup: o.nup, ndn: o.ndn, opts: o}
	if b.basis, err = fermionBasis(sector, o); err != nil {
		return nil, blocksErrorf(tag, err)
	}
	o.log.Debug().Int("n", n).Int("nup", o.nup).Int("ndn", o.ndn).Int64("size", b.Size()).Msg("tJ block")
	return b, nil
}

func (b *TJ) NSites() int  { return b.n }
func (b *TJ) Nup() int     { return b.nup }
func (b *TJ) Ndn() int     { return b.ndn }
func (b *TJ) Size() int64  { return b.basis.Size() }
func (b *TJ) Dim() int64   { return b.basis.Size() }
func (b *TJ) Basis() Basis { return b.basis }
func (b *TJ) isBlock()     {}

func (b *TJ) Irrep() *symmetries.Representation { return b.opts.irrep }
func (b *TJ) IsReal(tol float64) bool           { return irrepIsReal(b.opts.irrep, tol) }

// Shift returns the block with (nup+dnup, ndn+dndn) electrons.
func (b *TJ) Shift(dnup, dndn int) (Block, error) {
	if dnup == 0 && dndn == 0 {
		return b, nil
	}
	const tag = "TJ.Shift"
	o := b.opts
	var err error
	if o.nup, err = shiftCount(tag, b.nup, dnup, b.n); err != nil {
		return nil, err
	}
	if o.ndn, err = shiftCount(tag, b.ndn, dndn, b.n); err != nil {
		return nil, err
	}
	return newTJ(b.n, o)
}

func (b *TJ) String() string {
	return fmt.Sprintf("TJ(n=%d, nup=%d, ndn=%d, size=%d, symmetric=%t)", b.n, b.nup, b.ndn, b.Size(), b.opts.irrep != nil)
}
