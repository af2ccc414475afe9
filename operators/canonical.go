// SPDX-License-Identifier: MIT

package operators

import (
	"fmt"
	"math"
	"math/cmplx"
	"slices"
	"strings"

	"github.com/awietek/xdiag-sub007/symmetries"
)

// canonicalTerm is a compiled term in the form used by the symmetry check.
type canonicalTerm struct {
	typ   string
	sites []int
	coef  complex128
	canon canonKind
	mat   *LocalMatrix
}

// termSet collects the surviving terms of a Compile call.
type termSet struct {
	terms []canonicalTerm
}

func (t *termSet) add(typ string, sites []int, coef complex128, canon canonKind, nsites int) {
	if typ == "HubbardU" && len(sites) == 0 {
		for i := 0; i < nsites; i++ {
			t.add(typ, []int{i}, coef, canon, nsites)
		}
		return
	}
	t.terms = append(t.terms, canonicalTerm{typ: typ, sites: slices.Clone(sites), coef: coef, canon: canon})
}

func (t *termSet) addMatrix(lm LocalMatrix) {
	t.terms = append(t.terms, canonicalTerm{typ: "Matrix", sites: lm.Sites, coef: 1, mat: &lm})
}

// table sums the coefficients of all terms, with every site relabeled
// through move, under keys identifying equivalent terms: sorted sites for
// symmetric terms, increasing site order for hermitian pairs (conjugating
// the coupling), and rounded entries for matrices.
func (t *termSet) table(move func(int) int) map[string]complex128 {
	out := make(map[string]complex128, len(t.terms))
	for _, term := range t.terms {
		sites := make([]int, len(term.sites))
		for k, s := range term.sites {
			sites[k] = move(s)
		}
		if term.mat != nil {
			out[matrixKey(sites, *term.mat)] += term.coef
			continue
		}
		key, coef := termKey(term.typ, sites, term.coef, term.canon)
		out[key] += coef
	}
	return out
}

// checkInvariant verifies that relabeling sites by any group element
// leaves the operator unchanged. Site j moves to site p^-1(j) under p.
func (t *termSet) checkInvariant(group *symmetries.PermutationGroup, tol float64) error {
	base := t.table(func(i int) int { return i })
	for g := 0; g < group.Size(); g++ {
		inv := group.At(g).Inverse()
		mapped := t.table(inv.At)
		for key, v := range base {
			if cmplx.Abs(v-mapped[key]) > tol {
				return fmt.Errorf("element %d, term %s: %w", g, key, ErrNotSymmetric)
			}
		}
		for key, v := range mapped {
			if _, ok := base[key]; !ok && cmplx.Abs(v) > tol {
				return fmt.Errorf("element %d, term %s: %w", g, key, ErrNotSymmetric)
			}
		}
	}
	return nil
}

func termKey(typ string, sites []int, coef complex128, canon canonKind) (string, complex128) {
	switch canon {
	case canonSorted:
		slices.Sort(sites)
	case canonHermitian:
		if sites[0] > sites[1] {
			sites[0], sites[1] = sites[1], sites[0]
			coef = cmplx.Conj(coef)
		}
	}
	var sb strings.Builder
	sb.WriteString(typ)
	for _, s := range sites {
		fmt.Fprintf(&sb, "|%d", s)
	}
	return sb.String(), coef
}

// matrixKey orders the sites of a two-site matrix ascending, permuting its
// local basis accordingly, and serializes the rounded entries.
func matrixKey(sites []int, lm LocalMatrix) string {
	data := lm.Data
	if len(sites) == 2 && sites[0] > sites[1] {
		sites[0], sites[1] = sites[1], sites[0]
		swap := func(l int) int { return (l&1)<<1 | (l>>1)&1 }
		data = make([]complex128, len(lm.Data))
		for out := 0; out < lm.Dim; out++ {
			for in := 0; in < lm.Dim; in++ {
				data[swap(out)*lm.Dim+swap(in)] = lm.Data[out*lm.Dim+in]
			}
		}
	}
	var sb strings.Builder
	sb.WriteString("Matrix")
	for _, s := range sites {
		fmt.Fprintf(&sb, "|%d", s)
	}
	for _, v := range data {
		fmt.Fprintf(&sb, "|%g,%g", round9(real(v)), round9(imag(v)))
	}
	return sb.String()
}

func round9(x float64) float64 {
	r := math.Round(x*1e9) / 1e9
	if r == 0 {
		return 0
	}
	return r
}
