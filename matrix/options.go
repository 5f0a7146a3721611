// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for construction policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//
// Notes:
//   - The numeric policy is opt-in. With the default, constructors accept any
//     value of T, including NaN and ±Inf for floating and complex types.
//   - The policy is checked at ingestion only (constructors, Builder.Set).
//     Arithmetic results are never re-validated; overflow and NaN propagation
//     belong to the scalar type.
package matrix

// DefaultValidateNaNInf toggles strict finite-value validation on ingestion.
const DefaultValidateNaNInf = false

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options holds the resolved construction policy.
// Fields are unexported; build values with NewMatrixOptions.
type Options struct {
	validateNaNInf bool // reject NaN/±Inf at ingestion
}

// ValidateNaNInf reports whether the finite-value policy is enabled.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// WithValidateNaNInf rejects NaN and ±Inf at construction and Builder.Set
// with ErrNaNInf.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf accepts any value of T (the default).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewMatrixOptions resolves opts on top of the defaults.
// Later options win over earlier ones.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{validateNaNInf: DefaultValidateNaNInf}
}

// gatherOptions applies user options in order; nil entries are skipped.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
