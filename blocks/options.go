// SPDX-License-Identifier: MIT

package blocks

import (
	"runtime"

	"github.com/rs/zerolog"

	"github.com/awietek/xdiag-sub007/symmetries"
)

const (
	// Unset marks a particle number that is not conserved.
	Unset = -1

	// DefaultPrefixBits is the prefix width of a distributed block when
	// WithPrefixBits is not given; it is clamped to the number of sites.
	DefaultPrefixBits = 8
)

// Option configures block construction.
type Option func(*options)

type options struct {
	nup, ndn   int
	group      *symmetries.PermutationGroup
	irrep      *symmetries.Representation
	workers    int
	prefixBits int
	log        zerolog.Logger
}

func defaultOptions() options {
	return options{
		nup:        Unset,
		ndn:        Unset,
		workers:    runtime.GOMAXPROCS(0),
		prefixBits: Unset,
		log:        zerolog.Nop(),
	}
}

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithNup fixes the number of up spins (up electrons).
func WithNup(nup int) Option {
	return func(o *options) { o.nup = nup }
}

// WithNdn fixes the number of down electrons.
func WithNdn(ndn int) Option {
	return func(o *options) { o.ndn = ndn }
}

// WithSymmetries restricts the block to the irrep of group. Panics if
// group or irrep is nil.
func WithSymmetries(group *symmetries.PermutationGroup, irrep *symmetries.Representation) Option {
	if group == nil || irrep == nil {
		panic("blocks: WithSymmetries requires a group and an irrep")
	}
	return func(o *options) { o.group, o.irrep = group, irrep }
}

// WithWorkers sets the number of goroutines used to build symmetric
// lookup tables. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("blocks: WithWorkers requires n >= 1")
	}
	return func(o *options) { o.workers = n }
}

// WithPrefixBits sets how many high bits select the owning rank of a
// configuration in a distributed block.
func WithPrefixBits(p int) Option {
	return func(o *options) { o.prefixBits = p }
}

// WithLogger attaches a logger for construction diagnostics.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) { o.log = log }
}
