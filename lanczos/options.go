// SPDX-License-Identifier: MIT

package lanczos

import "github.com/rs/zerolog"

const (
	// DefaultPrecision is the relative change of the tracked Ritz values
	// below which the iteration is converged.
	DefaultPrecision = 1e-12
	// DefaultMaxIterations bounds the number of matrix-vector products.
	DefaultMaxIterations = 1000
	// DefaultNEigenvalues is the number of lowest Ritz values tracked.
	DefaultNEigenvalues = 1
	// DefaultDeflationTolerance is the residual norm below which the Krylov
	// space is treated as invariant.
	DefaultDeflationTolerance = 1e-7
)

// Option configures Run and Reconstruct.
type Option func(*Options)

// Options holds the Lanczos parameters. Use the With* helpers to set them.
type Options struct {
	Precision          float64
	MaxIterations      int
	NEigenvalues       int
	DeflationTolerance float64
	// Window is the number of recent Krylov vectors kept for
	// reorthogonalization; 0 disables it.
	Window int
	// Stop replaces the Ritz value criterion when non-nil.
	Stop func(Tmatrix) bool
	Log  zerolog.Logger
}

func gatherOptions(opts []Option) Options {
	o := Options{
		Precision:          DefaultPrecision,
		MaxIterations:      DefaultMaxIterations,
		NEigenvalues:       DefaultNEigenvalues,
		DeflationTolerance: DefaultDeflationTolerance,
		Log:                zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithPrecision sets the convergence threshold. Panics if p < 0.
func WithPrecision(p float64) Option {
	if p < 0 {
		panic("lanczos: WithPrecision requires p >= 0")
	}
	return func(o *Options) { o.Precision = p }
}

// WithMaxIterations caps the iteration count. Panics if n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic("lanczos: WithMaxIterations requires n >= 1")
	}
	return func(o *Options) { o.MaxIterations = n }
}

// WithNEigenvalues sets how many of the lowest Ritz values must converge.
// Panics if k < 1.
func WithNEigenvalues(k int) Option {
	if k < 1 {
		panic("lanczos: WithNEigenvalues requires k >= 1")
	}
	return func(o *Options) { o.NEigenvalues = k }
}

// WithDeflationTolerance sets the residual norm below which the iteration
// stops with InvariantSubspace. Panics if tol < 0.
func WithDeflationTolerance(tol float64) Option {
	if tol < 0 {
		panic("lanczos: WithDeflationTolerance requires tol >= 0")
	}
	return func(o *Options) { o.DeflationTolerance = tol }
}

// WithReorthogonalization orthogonalizes every new Krylov vector against
// the last window vectors. Panics if window < 0.
func WithReorthogonalization(window int) Option {
	if window < 0 {
		panic("lanczos: WithReorthogonalization requires window >= 0")
	}
	return func(o *Options) { o.Window = window }
}

// WithStop installs a custom convergence test evaluated after every step.
func WithStop(stop func(Tmatrix) bool) Option {
	return func(o *Options) { o.Stop = stop }
}

// WithLogger attaches a logger. Steps are logged at Debug level, the
// outcome at Info level.
func WithLogger(log zerolog.Logger) Option {
	return func(o *Options) { o.Log = log }
}
