// SPDX-License-Identifier: MIT
// Package: csbm/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.
//   • Algorithms MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"errors"
)

// ErrTooFewVertices indicates that a size parameter is smaller than the
// allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside the
// closed interval [0,1] or is NaN.
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrInvalidLabel indicates a community label outside {−1,+1}.
var ErrInvalidLabel = errors.New("builder: label must be -1 or +1")

// ErrDimensionMismatch indicates that an input slice does not match the
// vertex count of the target graph.
var ErrDimensionMismatch = errors.New("builder: dimension mismatch")

// ErrConstructFailed indicates that the builder could not construct a
// topology without breaking graph invariants.
var ErrConstructFailed = errors.New("builder: construction failed")

// --- Implementation Notes ----------------------------------------------------
//
// Priority when multiple validations fail:
//    • ErrTooFewVertices / ErrDimensionMismatch : sizes first.
//    • ErrInvalidProbability : then probability ranges.
//    • ErrInvalidLabel : then label domain.
//    • ErrNeedRandSource : then RNG presence.
//    • ErrConstructFailed : only for graph insert failures.
