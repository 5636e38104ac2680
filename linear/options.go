// SPDX-License-Identifier: MIT

// Package linear: functional configuration for container constructors.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Notes:
//   - Numeric policy is per instance: validateNaNInf controls whether Set and
//     in-place mutation reject NaN/±Inf. Fresh results of algebra functions
//     use the defaults; the policy never propagates implicitly except through
//     Clone, which preserves it.
package linear

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on Set and
	// in-place operations. Off, so IEEE-754 results (x/0 = ±Inf) pass through.
	DefaultValidateNaNInf = false

	// DefaultFill is the initial value of every element.
	DefaultFill = 0.0

	// DefaultRelTol and DefaultAbsTol are the tolerances used by Equal-style
	// helpers and recommended for AllClose on double-precision data.
	DefaultRelTol = 1e-9
	DefaultAbsTol = 1e-12
)

// ---------- Internal panic messages (no magic strings) ----------

const panicFillNaN = "linear: WithFill: fill value must not be NaN"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; constructors accept `...Option` and resolve them via
// gatherOptions.
type Options struct {
	validateNaNInf bool    // DefaultValidateNaNInf
	fill           float64 // DefaultFill
}

// WithValidateNaNInf enables strict finite-value validation.
// Implementation:
//   - Stage 1: set validateNaNInf=true.
//
// Behavior highlights:
//   - Set and in-place operations reject NaN and ±Inf with ErrNaNInf.
//   - In-place operations check every new value before the first write.
//
// Notes:
//   - Affects newly created containers; existing ones keep their policy.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (the default).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithFill sets the initial value of every element of a shape-only
// constructor (NewVecDense, NewDense, NewRowMatrix, NewTensor). Literal and
// wrapping constructors ignore it.
//
// Errors:
//   - Panics when x is NaN. ±Inf is accepted unless the policy rejects it,
//     in which case the constructor returns ErrNaNInf.
func WithFill(x float64) Option {
	if math.IsNaN(x) {
		panic(panicFillNaN)
	}

	return func(o *Options) { o.fill = x }
}

// gatherOptions applies user-provided setters on top of the defaults
// (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
		fill:           DefaultFill,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }

// checkFill validates the configured fill value against the policy.
func (o Options) checkFill() error {
	if o.validateNaNInf && isNonFinite(o.fill) {
		return ErrNaNInf
	}

	return nil
}

// checkFinite returns the index of the first non-finite value, or -1.
func checkFinite(values []float64) int {
	for k, x := range values {
		if isNonFinite(x) {
			return k
		}
	}

	return -1
}
