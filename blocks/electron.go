// SPDX-License-Identifier: MIT

package blocks

import (
	"fmt"

	"github.com/awietek/xdiag-sub007/symmetries"
)

// maxFermionSites bounds two-species blocks: up and down patterns share
// one 64-bit word.
const maxFermionSites = 32

// Electron is a Hubbard block of n sites with up and down electrons.
type Electron struct {
	n, nup, ndn int
	opts        options
	basis       Basis
}

// NewElectron builds an electron block on n sites. WithNup and WithNdn must
// be given together or not at all.
//
// Errors:
//   - ErrTooManySites if n > 32 (n > 31 without particle numbers).
//   - ErrInvalidQuantumNumbers for a lone WithNup/WithNdn or particle
//     numbers outside [0, n].
//   - ErrGroupMismatch, ErrEmptyBlock as for NewSpinhalf.
func NewElectron(n int, opts ...Option) (*Electron, error) {
	return newElectron(n, gatherOptions(opts))
}

func newElectron(n int, o options) (*Electron, error) {
	const tag = "NewElectron"
	switch {
	case n < 0 || (o.nup == Unset) != (o.ndn == Unset):
		return nil, blocksErrorf(tag, ErrInvalidQuantumNumbers)
	case n > maxFermionSites || (o.nup == Unset && 2*n > maxSubsetSites):
		return nil, blocksErrorf(tag, ErrTooManySites)
	case o.nup != Unset && (o.nup < 0 || o.nup > n || o.ndn < 0 || o.ndn > n):
		return nil, blocksErrorf(tag, fmt.Errorf("nup=%d ndn=%d on %d sites: %w", o.nup, o.ndn, n, ErrInvalidQuantumNumbers))
	}
	if err := checkSymmetries(tag, n, o); err != nil {
		return nil, err
	}
	up, err := newSpinSector(n, o.nup)
	if err != nil {
		return nil, blocksErrorf(tag, err)
	}
	dn, err := newSpinSector(n, o.ndn)
	if err != nil {
		return nil, blocksErrorf(tag, err)
	}
	sector := &electronSector{n: n, mask: siteMask(n), up: up, dn: dn}

	b := &Electron{n: n, nup: o.nup, ndn: o.ndn, opts: o}
	if b.basis, err = fermionBasis(sector, o); err != nil {
		return nil, blocksErrorf(tag, err)
	}
	o.log.Debug().Int("n", n).Int("nup", o.nup).Int("ndn", o.ndn).Int64("size", b.Size()).Msg("electron block")
	return b, nil
}

func siteMask(n int) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	return uint64(1)<<n - 1
}

func fermionBasis(sector plain, o options) (Basis, error) {
	if o.irrep == nil {
		return plainBasis{sector}, nil
	}
	return newSymmetricBasis(sector, o.irrep, symmetries.FermionAction(o.group), o.workers, o.log)
}

func (b *Electron) NSites() int  { return b.n }
func (b *Electron) Nup() int     { return b.nup }
func (b *Electron) Ndn() int     { return b.ndn }
func (b *Electron) Size() int64  { return b.basis.Size() }
func (b *Electron) Dim() int64   { return b.basis.Size() }
func (b *Electron) Basis() Basis { return b.basis }
func (b *Electron) isBlock()     {}

func (b *Electron) Irrep() *symmetries.Representation { return b.opts.irrep }
func (b *Electron) IsReal(tol float64) bool           { return irrepIsReal(b.opts.irrep, tol) }

// Shift returns the block with (nup+dnup, ndn+dndn) electrons. A block
// without particle numbers is returned unchanged.
func (b *Electron) Shift(dnup, dndn int) (Block, error) {
	if b.nup == Unset || (dnup == 0 && dndn == 0) {
		return b, nil
	}
	const tag = "Electron.Shift"
	o := b.opts
	var err error
	if o.nup, err = shiftCount(tag, b.nup, dnup, b.n); err != nil {
		return nil, err
	}
	if o.ndn, err = shiftCount(tag, b.ndn, dndn, b.n); err != nil {
		return nil, err
	}
	return newElectron(b.n, o)
}

func (b *Electron) String() string {
	return fmt.Sprintf("Electron(n=%d, nup=%d, ndn=%d, size=%d, symmetric=%t)", b.n, b.nup, b.ndn, b.Size(), b.opts.irrep != nil)
}
