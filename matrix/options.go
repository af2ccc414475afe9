// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for dense allocation and numeric
// policy.
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper that applies setters over defaults.

package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the tolerance of structural checks (Hermiticity).
	DefaultEpsilon = 1e-10

	// DefaultMemoryFraction caps a single dense allocation relative to the
	// total physical memory.
	DefaultMemoryFraction = 0.5

	// DefaultValidateNaNInf toggles finite-value validation in Set/Add.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages ----------

const (
	panicEpsilonInvalid  = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicFractionInvalid = "matrix: WithMemoryFraction: fraction must be in (0, 1]"
)

// Option mutates internal options.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps            float64 // >= 0
	memoryFraction float64 // (0,1]; 0 disables the guard
	validateNaNInf bool
}

func defaultOptions() Options {
	return Options{
		eps:            DefaultEpsilon,
		memoryFraction: DefaultMemoryFraction,
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// gatherOptions applies opts over the defaults in order.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithEpsilon sets the tolerance used by structural checks.
// Panics when eps is negative or not finite.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}
	return func(o *Options) { o.eps = eps }
}

// WithMemoryFraction sets the largest share of physical memory a single
// dense allocation may take.
//
// Implementation:
//   - Stage 1: validate 0 < fraction <= 1.
//   - Stage 2: return a setter writing the fraction into Options.
//
// Complexity: O(1).
func WithMemoryFraction(fraction float64) Option {
	if math.IsNaN(fraction) || fraction <= 0 || fraction > 1 {
		panic(panicFractionInvalid)
	}
	return func(o *Options) { o.memoryFraction = fraction }
}

// WithNoMemoryCheck disables the allocation guard.
func WithNoMemoryCheck() Option {
	return func(o *Options) { o.memoryFraction = 0 }
}

// WithNoValidateNaNInf lets Set/Add store NaN and ±Inf.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}
