// SPDX-License-Identifier: MIT

package evolution

import (
	"github.com/rs/zerolog"

	"github.com/awietek/xdiag-sub007/lanczos"
)

const (
	// DefaultPrecision bounds the Krylov error estimate.
	DefaultPrecision = 1e-12
	// DefaultMaxIterations bounds the Krylov dimension.
	DefaultMaxIterations = 1000
)

// Option configures ExpSymV.
type Option func(*options)

type options struct {
	precision     float64
	maxIterations int
	window        int
	log           zerolog.Logger
}

func gatherOptions(opts []Option) options {
	o := options{
		precision:     DefaultPrecision,
		maxIterations: DefaultMaxIterations,
		log:           zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// lanczosOptions translates o for the underlying Lanczos runs.
func (o options) lanczosOptions(stop func(lanczos.Tmatrix) bool) []lanczos.Option {
	return []lanczos.Option{
		lanczos.WithMaxIterations(o.maxIterations),
		lanczos.WithReorthogonalization(o.window),
		lanczos.WithDeflationTolerance(0),
		lanczos.WithStop(stop),
		lanczos.WithLogger(o.log),
	}
}

// WithPrecision sets the error bound. Panics if p <= 0.
func WithPrecision(p float64) Option {
	if p <= 0 {
		panic("evolution: WithPrecision requires p > 0")
	}
	return func(o *options) { o.precision = p }
}

// WithMaxIterations caps the Krylov dimension. Panics if n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic("evolution: WithMaxIterations requires n >= 1")
	}
	return func(o *options) { o.maxIterations = n }
}

// WithReorthogonalization keeps a window of Krylov vectors for
// reorthogonalization. Panics if window < 0.
func WithReorthogonalization(window int) Option {
	if window < 0 {
		panic("evolution: WithReorthogonalization requires window >= 0")
	}
	return func(o *options) { o.window = window }
}

// WithLogger attaches a logger.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) { o.log = log }
}
