// SPDX-License-Identifier: MIT

package operators

import (
	"fmt"
	"math"
	"math/bits"
	"math/cmplx"

	"github.com/pkg/errors"

	"github.com/awietek/xdiag-sub007/blocks"
)

// DefaultPrecision is the coupling magnitude below which a term is dropped.
const DefaultPrecision = 1e-12

// symmetryTol bounds the rounding noise tolerated by the invariance check.
const symmetryTol = 1e-10

// Compile validates ops against block and lowers it into kernels.
//
// Every term is checked in order: type in the block's vocabulary, coupling
// defined and of the right kind, real where the term must be Hermitian,
// arity, sites in range and distinct, matrix shape. Terms whose coupling
// magnitude is at most precision are dropped. Afterwards the sector shift
// must be unique for blocks with fixed particle numbers, and for symmetric
// blocks the sum must be invariant under every group element.
//
// Term failures are returned as *TermError with a stack trace attached.
func Compile(ops *OpSum, block blocks.Block, precision float64) (*Compiled, error) {
	if precision < 0 {
		precision = DefaultPrecision
	}
	n := block.NSites()
	c := &Compiled{NSites: n}

	var vocab map[string]termSpec
	switch block.(type) {
	case *blocks.Spinhalf, *blocks.SpinhalfDistributed:
		vocab = spinhalfVocabulary
	case *blocks.Electron:
		vocab, c.Fermionic = electronVocabulary(n), true
	case *blocks.TJ:
		vocab, c.Fermionic = tjVocabulary(n), true
	default:
		return nil, operatorsErrorf("Compile", fmt.Errorf("block %T: %w", block, ErrUnknownType))
	}

	terms := &termSet{}
	for idx, op := range ops.ops {
		if err := compileTerm(c, terms, vocab, ops, op, n, precision); err != nil {
			return nil, errors.WithStack(&TermError{Index: idx, Op: op, Err: err})
		}
	}

	if err := c.resolveShift(block); err != nil {
		return nil, operatorsErrorf("Compile", err)
	}
	if irrep := block.Irrep(); irrep != nil {
		if err := terms.checkInvariant(irrep.Group(), max(precision, symmetryTol)); err != nil {
			return nil, operatorsErrorf("Compile", err)
		}
	}
	return c, nil
}

func compileTerm(c *Compiled, terms *termSet, vocab map[string]termSpec, ops *OpSum, op Op, n int, precision float64) error {
	entry, ok := vocab[op.Type]
	if !ok {
		return fmt.Errorf("%q: %w", op.Type, ErrUnknownType)
	}

	coupling := op.Coupling
	if coupling.IsNamed() {
		if coupling, ok = ops.couplings[coupling.name]; !ok {
			return fmt.Errorf("%q: %w", op.Coupling.name, ErrUndefinedCoupling)
		}
	}
	if coupling.IsMatrix() != entry.matrix {
		return ErrCouplingKind
	}

	if !entry.allowsArity(len(op.Sites)) {
		return fmt.Errorf("%d sites: %w", len(op.Sites), ErrArity)
	}
	for a, s := range op.Sites {
		if s < 0 || s >= n {
			return fmt.Errorf("site %d on %d sites: %w", s, n, ErrSiteOutOfRange)
		}
		for _, t := range op.Sites[:a] {
			if s == t {
				return fmt.Errorf("site %d: %w", s, ErrDuplicateSites)
			}
		}
	}

	if entry.matrix {
		return compileMatrix(c, terms, op, coupling, precision)
	}

	coef := coupling.scalar
	if entry.real && math.Abs(imag(coef)) > precision {
		return fmt.Errorf("%v: %w", coef, ErrNonRealCoupling)
	}
	if cmplx.Abs(coef) <= precision {
		return nil
	}
	if entry.real {
		coef = complex(real(coef), 0)
	}
	entry.lower(c, coef, op.Sites)
	terms.add(op.Type, op.Sites, coef, entry.canon, n)
	return nil
}

func compileMatrix(c *Compiled, terms *termSet, op Op, coupling Coupling, precision float64) error {
	m := coupling.mat
	dim := 1 << len(op.Sites)
	if m == nil || m.Rows() != dim || m.Cols() != dim {
		return fmt.Errorf("need %dx%d: %w", dim, dim, ErrMatrixShape)
	}
	data := append([]complex128(nil), m.Data()...)
	var maxAbs float64
	for _, v := range data {
		maxAbs = max(maxAbs, cmplx.Abs(v))
	}
	if maxAbs <= precision {
		return nil
	}
	lm := LocalMatrix{Sites: append([]int(nil), op.Sites...), Dim: dim, Data: data}
	c.Matrices = append(c.Matrices, lm)
	terms.addMatrix(lm)
	return nil
}

// resolveShift computes the common sector shift of all off-diagonal terms.
func (c *Compiled) resolveShift(block blocks.Block) error {
	if block.Nup() == blocks.Unset {
		return nil
	}
	n := c.NSites
	seen := false
	record := func(dup, ddn int) error {
		if !seen {
			c.DNup, c.DNdn, seen = dup, ddn, true
			return nil
		}
		if dup != c.DNup || ddn != c.DNdn {
			return fmt.Errorf("shifts (%d,%d) and (%d,%d): %w", c.DNup, c.DNdn, dup, ddn, ErrNotConserving)
		}
		return nil
	}
	if len(c.Diagonals) > 0 {
		seen = true
	}
	for _, m := range c.Monomials {
		var dup, ddn int
		for _, e := range m.Ops {
			d := -1
			if e.Create {
				d = 1
			}
			if c.Fermionic && e.Bit >= n {
				ddn += d
			} else {
				dup += d
			}
		}
		if err := record(dup, ddn); err != nil {
			return err
		}
	}
	for _, m := range c.Matrices {
		for out := 0; out < m.Dim; out++ {
			for in := 0; in < m.Dim; in++ {
				if m.Data[out*m.Dim+in] == 0 {
					continue
				}
				if err := record(bits.OnesCount(uint(out))-bits.OnesCount(uint(in)), 0); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
