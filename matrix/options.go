// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//
// Notes:
//   - validateNaNInf controls whether Set()/FromMat reject NaN/Inf.
//   - allowPosInf is a narrow exception for +Inf entries, used by the fit
//     engine for covariance matrices that could not be estimated (every entry
//     is +Inf when there are no spare degrees of freedom). NaN and -Inf remain
//     rejected under validation even when allowPosInf=true.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on Set and FromMat.
	DefaultValidateNaNInf = true

	// DefaultAllowPosInf permits +Inf entries under validation.
	DefaultAllowPosInf = false
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
	allowPosInf    bool // DefaultAllowPosInf
}

// WithNoValidateNaNInf disables the finite-only guard entirely.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithValidateNaNInf re-enables the finite-only guard (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithAllowPosInf accepts +Inf under validation while still rejecting NaN and -Inf.
//
// AI-Hints:
//   - Use for covariance matrices; a "not estimable" covariance is all +Inf.
func WithAllowPosInf() Option {
	return func(o *Options) { o.allowPosInf = true }
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Stable for a given sequence of setters (last-writer-wins).
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
		allowPosInf:    DefaultAllowPosInf,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
