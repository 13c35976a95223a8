// SPDX-License-Identifier: MIT
// Package: csbm
//
// errors.go - sentinel errors for the csbm package.
//
// Error policy:
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Every failure is reported before the first random draw; a failed call
//     leaves the caller's stream untouched.
//   • Failures are deterministic: retrying with the same inputs fails again.

package csbm

import "errors"

// ErrInvalidConfiguration indicates N ≤ 0, P ≤ 0, d < 0, μ < 0, ρ ∉ [0,1],
// or a non-finite parameter. Reported by NewModelConfig.
var ErrInvalidConfiguration = errors.New("csbm: invalid configuration")

// ErrDegenerateAffinity indicates that d ± λ√d puts p_in or p_out outside
// [0,1] for the given N. Reported by ResolveAffinities and Sample.
var ErrDegenerateAffinity = errors.New("csbm: degenerate affinity")

// ErrNilRand indicates Sample was called without a random source.
var ErrNilRand = errors.New("csbm: nil random source")

// ErrZeroConfig indicates a ModelConfig that was not built by NewModelConfig.
var ErrZeroConfig = errors.New("csbm: config not constructed with NewModelConfig")
