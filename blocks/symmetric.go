// SPDX-License-Identifier: MIT

package blocks

import (
	"math/cmplx"
	"time"

	"github.com/bits-and-blooms/bitset"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/awietek/xdiag-sub007/symmetries"
)

// symmetricBasis is the irrep-projected version of a plain sector.
//
// For every plain state it stores the index of the representative of its
// orbit in the symmetric basis (-1 if the orbit has zero norm) and the
// group element that maps the state onto that representative.
type symmetricBasis struct {
	parent plain
	irrep  *symmetries.Representation
	act    symmetries.Action

	reps  []uint64
	norms []float64

	repOf []int64
	symOf []int32
}

// chunkAlign keeps worker ranges on bitset word boundaries so that
// concurrent Set calls never touch the same word.
const chunkAlign = 64

func newSymmetricBasis(parent plain, irrep *symmetries.Representation, act symmetries.Action,
	workers int, log zerolog.Logger) (*symmetricBasis, error) {
	start := time.Now()
	order := irrep.Size()
	n := parent.size()

	sb := &symmetricBasis{
		parent: parent,
		irrep:  irrep,
		act:    act,
		repOf:  make([]int64, n),
		symOf:  make([]int32, n),
	}
	isRep := bitset.New(uint(n))

	// Pass 1: representative and mapping element of every plain state.
	chunk := (n + int64(workers) - 1) / int64(workers)
	chunk = (chunk + chunkAlign - 1) / chunkAlign * chunkAlign
	var g errgroup.Group
	for begin := int64(0); begin < n; begin += chunk {
		end := min(begin+chunk, n)
		g.Go(func() error {
			for i := begin; i < end; i++ {
				s := parent.state(i)
				rep, sym := symmetries.Representative(order, act, s)
				sb.symOf[i] = int32(sym)
				if rep == s {
					isRep.Set(uint(i))
					sb.repOf[i] = i
					continue
				}
				ri, ok := parent.index(rep)
				if !ok {
					return blocksErrorf("newSymmetricBasis", ErrGroupMismatch)
				}
				sb.repOf[i] = ri
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Pass 2: keep representatives with nonzero norm, in plain order.
	symIndex := make(map[int64]int64, isRep.Count())
	for i, ok := isRep.NextSet(0); ok; i, ok = isRep.NextSet(i + 1) {
		s := parent.state(int64(i))
		norm := symmetries.Norm(irrep, act, s)
		if norm == 0 {
			isRep.Clear(i)
			continue
		}
		symIndex[int64(i)] = int64(len(sb.reps))
		sb.reps = append(sb.reps, s)
		sb.norms = append(sb.norms, norm)
	}
	if len(sb.reps) == 0 {
		return nil, blocksErrorf("newSymmetricBasis", ErrEmptyBlock)
	}

	// Pass 3: translate representative plain indices to symmetric indices.
	var fill errgroup.Group
	for begin := int64(0); begin < n; begin += chunk {
		end := min(begin+chunk, n)
		fill.Go(func() error {
			for i := begin; i < end; i++ {
				ri := sb.repOf[i]
				if !isRep.Test(uint(ri)) {
					sb.repOf[i] = -1
					continue
				}
				sb.repOf[i] = symIndex[ri]
			}
			return nil
		})
	}
	if err := fill.Wait(); err != nil {
		return nil, err
	}

	log.Debug().
		Int64("parent_size", n).
		Int("size", len(sb.reps)).
		Int("group_order", order).
		Dur("elapsed", time.Since(start)).
		Msg("symmetric basis built")
	return sb, nil
}

func (b *symmetricBasis) Size() int64          { return int64(len(b.reps)) }
func (b *symmetricBasis) State(i int64) uint64 { return b.reps[i] }
func (b *symmetricBasis) Norm(i int64) float64 { return b.norms[i] }

func (b *symmetricBasis) Lookup(s uint64) (int64, complex128, bool) {
	pi, ok := b.parent.index(s)
	if !ok {
		return 0, 0, false
	}
	idx := b.repOf[pi]
	if idx < 0 {
		return 0, 0, false
	}
	sym := int(b.symOf[pi])
	_, sign := b.act(sym, s)
	factor := cmplx.Conj(b.irrep.Character(sym)) * complex(sign*b.norms[idx], 0)
	return idx, factor, true
}
