// SPDX-License-Identifier: MIT

package algebra

import (
	"runtime"

	"github.com/rs/zerolog"

	"github.com/awietek/xdiag-sub007/matrix"
	"github.com/awietek/xdiag-sub007/operators"
)

// Option configures Apply, Matrix and NewOperator.
type Option func(*options)

type options struct {
	workers   int
	precision float64
	dense     []matrix.Option
	log       zerolog.Logger
}

func gatherOptions(opts []Option) options {
	o := options{
		workers:   runtime.GOMAXPROCS(0),
		precision: operators.DefaultPrecision,
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithWorkers sets the number of goroutines used by Apply. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("algebra: WithWorkers requires n >= 1")
	}
	return func(o *options) { o.workers = n }
}

// WithPrecision sets the coupling magnitude below which terms are dropped.
// Panics if p < 0.
func WithPrecision(p float64) Option {
	if p < 0 {
		panic("algebra: WithPrecision requires p >= 0")
	}
	return func(o *options) { o.precision = p }
}

// WithDenseOptions forwards options to matrix.NewDense in Matrix.
func WithDenseOptions(opts ...matrix.Option) Option {
	return func(o *options) { o.dense = append(o.dense, opts...) }
}

// WithLogger attaches a logger.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) { o.log = log }
}
