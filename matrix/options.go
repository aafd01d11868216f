// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves a final Options value.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - The epsilon travels with the matrix. Clones and results of binary
//     kernels inherit the policy of the left operand.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

// DefaultEpsilon is the absolute tolerance under which a pivot candidate is
// treated as zero by Determinant, IsSingular, Inverse and Solve.
const DefaultEpsilon = 1e-9

// ---------- Internal panic messages (no magic strings) ----------

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps float64 // >= 0; DefaultEpsilon
}

// WithEpsilon sets the pivot tolerance.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Behavior highlights:
//   - Strict validation in constructor; panics on nonsensical values.
//   - eps == 0 means only exact zeros count as singular pivots.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Loosen eps for float32 data or ill-conditioned inputs; 1e-9 suits float64.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// gatherOptions applies user setters over defaults in order (last writer wins).
func gatherOptions(user ...Option) Options {
	o := Options{eps: DefaultEpsilon}
	for _, set := range user {
		set(&o)
	}

	return o
}
