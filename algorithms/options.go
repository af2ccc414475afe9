// SPDX-License-Identifier: MIT

package algorithms

import (
	"runtime"

	"github.com/rs/zerolog"

	"github.com/awietek/xdiag-sub007/algebra"
	"github.com/awietek/xdiag-sub007/config"
	"github.com/awietek/xdiag-sub007/evolution"
	"github.com/awietek/xdiag-sub007/lanczos"
	"github.com/awietek/xdiag-sub007/logger"
	"github.com/awietek/xdiag-sub007/matrix"
)

const (
	// DefaultSeed seeds the random Lanczos start vector.
	DefaultSeed int64 = 42
	// DefaultDenseMemoryFraction bounds dense matrices to this share of RAM.
	DefaultDenseMemoryFraction = 0.5
)

// Option configures the entry points.
type Option func(*options)

type options struct {
	precision      float64
	maxIterations  int
	nEigenvalues   int
	window         int
	seed           int64
	workers        int
	memoryFraction float64
	forceComplex   bool
	strict         bool
	shift          bool
	log            zerolog.Logger
}

func gatherOptions(opts []Option) options {
	o := options{
		precision:      lanczos.DefaultPrecision,
		maxIterations:  lanczos.DefaultMaxIterations,
		nEigenvalues:   lanczos.DefaultNEigenvalues,
		seed:           DefaultSeed,
		workers:        runtime.GOMAXPROCS(0),
		memoryFraction: DefaultDenseMemoryFraction,
		log:            zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) algebraOptions() []algebra.Option {
	return []algebra.Option{algebra.WithWorkers(o.workers), algebra.WithLogger(o.log)}
}

func (o options) lanczosOptions() []lanczos.Option {
	return []lanczos.Option{
		lanczos.WithPrecision(o.precision),
		lanczos.WithMaxIterations(o.maxIterations),
		lanczos.WithNEigenvalues(o.nEigenvalues),
		lanczos.WithReorthogonalization(o.window),
		lanczos.WithLogger(o.log),
	}
}

func (o options) evolutionOptions() []evolution.Option {
	return []evolution.Option{
		evolution.WithPrecision(o.precision),
		evolution.WithMaxIterations(o.maxIterations),
		evolution.WithReorthogonalization(o.window),
		evolution.WithLogger(o.log),
	}
}

func (o options) denseOptions() []matrix.Option {
	return []matrix.Option{matrix.WithMemoryFraction(o.memoryFraction)}
}

// WithPrecision sets the Lanczos convergence threshold and the time
// evolution error bound. Panics if p <= 0.
func WithPrecision(p float64) Option {
	if p <= 0 {
		panic("algorithms: WithPrecision requires p > 0")
	}
	return func(o *options) { o.precision = p }
}

// WithMaxIterations caps Lanczos and Krylov iterations. Panics if n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic("algorithms: WithMaxIterations requires n >= 1")
	}
	return func(o *options) { o.maxIterations = n }
}

// WithNEigenvalues sets how many low Ritz values EigvalsLanczos converges.
// Panics if k < 1.
func WithNEigenvalues(k int) Option {
	if k < 1 {
		panic("algorithms: WithNEigenvalues requires k >= 1")
	}
	return func(o *options) { o.nEigenvalues = k }
}

// WithReorthogonalization sets the Lanczos reorthogonalization window.
// Panics if window < 0.
func WithReorthogonalization(window int) Option {
	if window < 0 {
		panic("algorithms: WithReorthogonalization requires window >= 0")
	}
	return func(o *options) { o.window = window }
}

// WithSeed seeds the random start vector.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithWorkers sets the number of goroutines per matrix-vector product.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("algorithms: WithWorkers requires n >= 1")
	}
	return func(o *options) { o.workers = n }
}

// WithDenseMemoryFraction bounds EigvalsDense to this share of system
// memory. Panics unless 0 < f <= 1.
func WithDenseMemoryFraction(f float64) Option {
	if f <= 0 || f > 1 {
		panic("algorithms: WithDenseMemoryFraction requires 0 < f <= 1")
	}
	return func(o *options) { o.memoryFraction = f }
}

// WithComplex forces complex arithmetic.
func WithComplex() Option {
	return func(o *options) { o.forceComplex = true }
}

// WithStrictConvergence turns hitting the iteration limit into
// ErrNotConverged.
func WithStrictConvergence() Option {
	return func(o *options) { o.strict = true }
}

// WithShift makes ImagTimeEvolve apply exp(-tau (H - E0)) with E0 the
// ground-state energy, which keeps long imaginary times finite.
func WithShift() Option {
	return func(o *options) { o.shift = true }
}

// WithLogger attaches a logger to every stage.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) { o.log = log }
}

// OptionsFromConfig converts a loaded configuration into options,
// including a logger built from its log settings.
func OptionsFromConfig(cfg *config.Config) []Option {
	return []Option{
		WithPrecision(cfg.Precision),
		WithMaxIterations(cfg.MaxIterations),
		WithWorkers(cfg.Workers),
		WithSeed(cfg.Seed),
		WithReorthogonalization(cfg.Reorthogonalize),
		WithDenseMemoryFraction(cfg.DenseMemoryFraction),
		WithLogger(logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})),
	}
}
