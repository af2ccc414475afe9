// SPDX-License-Identifier: MIT

package operators

import "math/cmplx"

// canonKind tells the symmetry check how a term's sites may be reordered.
type canonKind uint8

const (
	canonOrdered   canonKind = iota // sites are significant as given
	canonSorted                     // symmetric in its sites
	canonHermitian                  // (i,j,c) equals (j,i,conj(c))
)

// termSpec describes one entry of a block vocabulary.
type termSpec struct {
	arity  []int
	real   bool
	matrix bool
	canon  canonKind
	lower  func(c *Compiled, coef complex128, sites []int)
}

func (s termSpec) allowsArity(k int) bool {
	for _, a := range s.arity {
		if a == k {
			return true
		}
	}
	return false
}

var (
	one = []int{1}
	two = []int{2}
)

func bit(s uint64, b int) float64 { return float64(s >> b & 1) }

func addDiag(c *Compiled, coef complex128, eval func(uint64) float64) {
	c.Diagonals = append(c.Diagonals, Diagonal{Coef: real(coef), Eval: eval})
}

func addMono(c *Compiled, coef complex128, ops ...Elementary) {
	c.Monomials = append(c.Monomials, Monomial{Coef: coef, Ops: ops})
}

func create(b int) Elementary { return Elementary{Bit: b, Create: true} }
func annih(b int) Elementary  { return Elementary{Bit: b} }

// hopPair adds a hopping between bits i and j.
func hopPair(c *Compiled, coef complex128, i, j int) {
	// -t c+_i c_j - conj(t) c+_j c_i
	addMono(c, -coef, annih(j), create(i))
	addMono(c, -cmplx.Conj(coef), annih(i), create(j))
}

// ---------- spin-1/2 ----------

func sz(s uint64, i int) float64 { return bit(s, i) - 0.5 }

func spinExchange(c *Compiled, coef complex128, i, j int) {
	// J/2 S+_i S-_j + conj(J)/2 S-_i S+_j
	addMono(c, coef/2, annih(j), create(i))
	addMono(c, cmplx.Conj(coef)/2, annih(i), create(j))
}

func spinSzSz(c *Compiled, coef complex128, i, j int) {
	addDiag(c, coef, func(s uint64) float64 { return sz(s, i) * sz(s, j) })
}

var spinhalfVocabulary = map[string]termSpec{
	"SzSz": {arity: two, real: true, canon: canonSorted, lower: func(c *Compiled, coef complex128, s []int) {
		spinSzSz(c, coef, s[0], s[1])
	}},
	"SdotS": {arity: two, real: true, canon: canonSorted, lower: func(c *Compiled, coef complex128, s []int) {
		spinSzSz(c, coef, s[0], s[1])
		spinExchange(c, coef, s[0], s[1])
	}},
	"Exchange": {arity: two, canon: canonHermitian, lower: func(c *Compiled, coef complex128, s []int) {
		spinExchange(c, coef, s[0], s[1])
	}},
	"Sz": {arity: one, real: true, lower: func(c *Compiled, coef complex128, s []int) {
		i := s[0]
		addDiag(c, coef, func(st uint64) float64 { return sz(st, i) })
	}},
	"S+": {arity: one, lower: func(c *Compiled, coef complex128, s []int) {
		addMono(c, coef, create(s[0]))
	}},
	"S-": {arity: one, lower: func(c *Compiled, coef complex128, s []int) {
		addMono(c, coef, annih(s[0]))
	}},
	"Sx": {arity: one, real: true, lower: func(c *Compiled, coef complex128, s []int) {
		addMono(c, coef/2, create(s[0]))
		addMono(c, coef/2, annih(s[0]))
	}},
	"Sy": {arity: one, real: true, lower: func(c *Compiled, coef complex128, s []int) {
		// Sy = (S+ - S-) / 2i
		addMono(c, -1i*coef/2, create(s[0]))
		addMono(c, 1i*coef/2, annih(s[0]))
	}},
	"Matrix": {arity: []int{1, 2}, matrix: true},
}

// ---------- electrons and t-J ----------

// fermionTerms builds the vocabulary shared by electron and t-J blocks on
// n sites. Up electrons of site i live on bit i, down electrons on bit n+i.
func fermionTerms(n int) map[string]termSpec {
	nup := func(s uint64, i int) float64 { return bit(s, i) }
	ndn := func(s uint64, i int) float64 { return bit(s, n+i) }
	ntot := func(s uint64, i int) float64 { return nup(s, i) + ndn(s, i) }
	szf := func(s uint64, i int) float64 { return (nup(s, i) - ndn(s, i)) / 2 }

	exchange := func(c *Compiled, coef complex128, i, j int) {
		// S+_i S-_j = c+_{i up} c_{i dn} c+_{j dn} c_{j up}
		addMono(c, coef/2, annih(j), create(n+j), annih(n+i), create(i))
		// S-_i S+_j = c+_{i dn} c_{i up} c+_{j up} c_{j dn}
		addMono(c, cmplx.Conj(coef)/2, annih(n+j), create(j), annih(i), create(n+i))
	}
	szsz := func(c *Compiled, coef complex128, i, j int) {
		addDiag(c, coef, func(s uint64) float64 { return szf(s, i) * szf(s, j) })
	}
	diag1 := func(f func(uint64, int) float64) termSpec {
		return termSpec{arity: one, real: true, lower: func(c *Compiled, coef complex128, s []int) {
			i := s[0]
			addDiag(c, coef, func(st uint64) float64 { return f(st, i) })
		}}
	}

	return map[string]termSpec{
		"Hop": {arity: two, canon: canonHermitian, lower: func(c *Compiled, coef complex128, s []int) {
			hopPair(c, coef, s[0], s[1])
			hopPair(c, coef, n+s[0], n+s[1])
		}},
		"Hopup": {arity: two, canon: canonHermitian, lower: func(c *Compiled, coef complex128, s []int) {
			hopPair(c, coef, s[0], s[1])
		}},
		"Hopdn": {arity: two, canon: canonHermitian, lower: func(c *Compiled, coef complex128, s []int) {
			hopPair(c, coef, n+s[0], n+s[1])
		}},
		"Nup":  diag1(nup),
		"Ndn":  diag1(ndn),
		"Ntot": diag1(ntot),
		"Sz":   diag1(szf),
		"NtotNtot": {arity: two, real: true, canon: canonSorted, lower: func(c *Compiled, coef complex128, s []int) {
			i, j := s[0], s[1]
			addDiag(c, coef, func(st uint64) float64 { return ntot(st, i) * ntot(st, j) })
		}},
		"SzSz": {arity: two, real: true, canon: canonSorted, lower: func(c *Compiled, coef complex128, s []int) {
			szsz(c, coef, s[0], s[1])
		}},
		"SdotS": {arity: two, real: true, canon: canonSorted, lower: func(c *Compiled, coef complex128, s []int) {
			szsz(c, coef, s[0], s[1])
			exchange(c, coef, s[0], s[1])
		}},
		"Exchange": {arity: two, canon: canonHermitian, lower: func(c *Compiled, coef complex128, s []int) {
			exchange(c, coef, s[0], s[1])
		}},
		"tJSzSz": {arity: two, real: true, canon: canonSorted, lower: func(c *Compiled, coef complex128, s []int) {
			i, j := s[0], s[1]
			addDiag(c, coef, func(st uint64) float64 {
				return szf(st, i)*szf(st, j) - ntot(st, i)*ntot(st, j)/4
			})
		}},
		"tJSdotS": {arity: two, real: true, canon: canonSorted, lower: func(c *Compiled, coef complex128, s []int) {
			i, j := s[0], s[1]
			addDiag(c, coef, func(st uint64) float64 {
				return szf(st, i)*szf(st, j) - ntot(st, i)*ntot(st, j)/4
			})
			exchange(c, coef, i, j)
		}},

		// Electron only; removed from the t-J vocabulary below.
		"Nupdn": diag1(func(s uint64, i int) float64 { return nup(s, i) * ndn(s, i) }),
		"HubbardU": {arity: []int{0, 1}, real: true, lower: func(c *Compiled, coef complex128, s []int) {
			sites := s
			if len(sites) == 0 {
				sites = make([]int, n)
				for i := range sites {
					sites[i] = i
				}
			}
			for _, i := range sites {
				addDiag(c, coef, func(st uint64) float64 { return nup(st, i) * ndn(st, i) })
			}
		}},
		"Cdagup": {arity: one, lower: func(c *Compiled, coef complex128, s []int) { addMono(c, coef, create(s[0])) }},
		"Cup":    {arity: one, lower: func(c *Compiled, coef complex128, s []int) { addMono(c, coef, annih(s[0])) }},
		"Cdagdn": {arity: one, lower: func(c *Compiled, coef complex128, s []int) { addMono(c, coef, create(n+s[0])) }},
		"Cdn":    {arity: one, lower: func(c *Compiled, coef complex128, s []int) { addMono(c, coef, annih(n+s[0])) }},
	}
}

var tjExcluded = []string{"Nupdn", "HubbardU", "Cdagup", "Cup", "Cdagdn", "Cdn"}

func electronVocabulary(n int) map[string]termSpec {
	v := fermionTerms(n)
	for _, name := range []string{"tJSzSz", "tJSdotS"} {
		delete(v, name)
	}
	return v
}

func tjVocabulary(n int) map[string]termSpec {
	v := fermionTerms(n)
	for _, name := range tjExcluded {
		delete(v, name)
	}
	return v
}
