// SPDX-License-Identifier: MIT

package blocks

import (
	"fmt"
	"math/bits"
	"time"

	"github.com/bits-and-blooms/bitset"

	"github.com/awietek/xdiag-sub007/combinatorics"
	"github.com/awietek/xdiag-sub007/comm"
	"github.com/awietek/xdiag-sub007/internal/rng"
	"github.com/awietek/xdiag-sub007/symmetries"
)

// Distributed is implemented by blocks whose states are spread over the
// ranks of a communicator.
type Distributed interface {
	Comm() comm.Comm
	// Owner returns the rank storing configuration s.
	Owner(s uint64) int
}

// SpinhalfDistributed is a spin-1/2 block with fixed Sz whose basis states
// are partitioned over the ranks of a communicator.
//
// A configuration is split into its top p bits (prefix) and the remaining
// n-p bits (postfix). All configurations sharing a prefix live on the rank
// Mix64(prefix) mod Size(). Locally, owned prefixes are stored in
// ascending order, each followed by its postfixes in ascending order.
type SpinhalfDistributed struct {
	n, nup, p int
	c         comm.Comm
	dim       int64

	owned   *bitset.BitSet
	offsets []int64 // per prefix, start of its postfixes; -1 if not owned
	tables  []*combinatorics.LinTable
	states  []uint64

	opts options
}

// NewSpinhalfDistributed builds the local part of the block on every rank.
// It is a collective call: all ranks of c must call it with the same
// arguments.
//
// Errors:
//   - ErrTooManySites if n > 64.
//   - ErrInvalidQuantumNumbers if nup is outside [0, n].
//   - ErrInvalidPrefixBits if the prefix width is outside [0, min(n, 30)].
//   - comm.ErrAborted if a peer failed during the dimension reduction.
func NewSpinhalfDistributed(c comm.Comm, n, nup int, opts ...Option) (*SpinhalfDistributed, error) {
	const tag = "NewSpinhalfDistributed"
	o := gatherOptions(opts)
	start := time.Now()

	p := o.prefixBits
	if p == Unset {
		p = min(DefaultPrefixBits, n)
	}
	var err error
	switch {
	case n > 64:
		err = ErrTooManySites
	case n < 0 || nup < 0 || nup > n:
		err = fmt.Errorf("nup=%d on %d sites: %w", nup, n, ErrInvalidQuantumNumbers)
	case p < 0 || p > n || p > 30:
		err = fmt.Errorf("prefix bits %d: %w", p, ErrInvalidPrefixBits)
	case o.group != nil:
		err = ErrDistributedSymmetries
	}
	if err != nil {
		// Argument errors are identical on every rank; no abort needed.
		return nil, blocksErrorf(tag, err)
	}

	q := n - p
	o.prefixBits = p
	b := &SpinhalfDistributed{
		n: n, nup: nup, p: p, c: c, opts: o,
		owned:   bitset.New(uint(1) << p),
		offsets: make([]int64, 1<<p),
		tables:  make([]*combinatorics.LinTable, q+1),
	}
	for k := 0; k <= q; k++ {
		if b.tables[k], err = combinatorics.NewLinTable(q, k); err != nil {
			return nil, blocksErrorf(tag, err)
		}
	}

	rank, size := c.Rank(), c.Size()
	for prefix := uint64(0); prefix < uint64(1)<<p; prefix++ {
		b.offsets[prefix] = -1
		k := nup - bits.OnesCount64(prefix)
		if k < 0 || k > q || b.owner(prefix, size) != rank {
			continue
		}
		b.owned.Set(uint(prefix))
		b.offsets[prefix] = int64(len(b.states))
		post, _ := combinatorics.NewCombinations[uint64](q, k)
		for _, s := range post.All() {
			b.states = append(b.states, prefix<<q|s)
		}
	}

	if b.dim, err = c.AllReduceInt64(int64(len(b.states))); err != nil {
		return nil, blocksErrorf(tag, err)
	}
	o.log.Debug().
		Int("rank", rank).
		Int64("size", b.Size()).
		Int64("dim", b.dim).
		Uint("prefixes", b.owned.Count()).
		Dur("elapsed", time.Since(start)).
		Msg("distributed spinhalf block")
	return b, nil
}

func (b *SpinhalfDistributed) owner(prefix uint64, size int) int {
	return int(rng.Mix64(prefix, 0) % uint64(size))
}

// Owner returns the rank storing configuration s.
func (b *SpinhalfDistributed) Owner(s uint64) int {
	return b.owner(s>>(b.n-b.p), b.c.Size())
}

// Comm returns the communicator the block is distributed over.
func (b *SpinhalfDistributed) Comm() comm.Comm { return b.c }

// PrefixBits returns the prefix width.
func (b *SpinhalfDistributed) PrefixBits() int { return b.p }

func (b *SpinhalfDistributed) NSites() int  { return b.n }
func (b *SpinhalfDistributed) Nup() int     { return b.nup }
func (b *SpinhalfDistributed) Ndn() int     { return Unset }
func (b *SpinhalfDistributed) Size() int64  { return int64(len(b.states)) }
func (b *SpinhalfDistributed) Dim() int64   { return b.dim }
func (b *SpinhalfDistributed) Basis() Basis { return b }
func (b *SpinhalfDistributed) isBlock()     {}

func (b *SpinhalfDistributed) Irrep() *symmetries.Representation { return nil }
func (b *SpinhalfDistributed) IsReal(float64) bool               { return true }

// State returns the configuration at local index i.
func (b *SpinhalfDistributed) State(i int64) uint64 { return b.states[i] }

// Norm is 1 for every state.
func (b *SpinhalfDistributed) Norm(int64) float64 { return 1 }

// Lookup returns the local index of s; ok is false if s is owned by
// another rank or is not a configuration of the block.
func (b *SpinhalfDistributed) Lookup(s uint64) (int64, complex128, bool) {
	if b.n < 64 && s>>b.n != 0 || bits.OnesCount64(s) != b.nup {
		return 0, 0, false
	}
	q := b.n - b.p
	prefix := s >> q
	if !b.owned.Test(uint(prefix)) {
		return 0, 0, false
	}
	post := s & siteMask(q)
	k := bits.OnesCount64(post)
	return b.offsets[prefix] + b.tables[k].Index(post), 1, true
}

// Shift returns the distributed block with nup+dnup up spins. It is a
// collective call.
func (b *SpinhalfDistributed) Shift(dnup, dndn int) (Block, error) {
	if dndn != 0 {
		return nil, blocksErrorf("SpinhalfDistributed.Shift", ErrInvalidQuantumNumbers)
	}
	if dnup == 0 {
		return b, nil
	}
	nup, err := shiftCount("SpinhalfDistributed.Shift", b.nup, dnup, b.n)
	if err != nil {
		return nil, err
	}
	o := b.opts
	return NewSpinhalfDistributed(b.c, b.n, nup, func(dst *options) { *dst = o })
}

func (b *SpinhalfDistributed) String() string {
	return fmt.Sprintf("SpinhalfDistributed(n=%d, nup=%d, rank=%d/%d, size=%d, dim=%d)",
		b.n, b.nup, b.c.Rank(), b.c.Size(), b.Size(), b.dim)
}
