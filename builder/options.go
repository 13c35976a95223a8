// SPDX-License-Identifier: MIT
// Package: csbm/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Algorithms themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand/v2"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders. The stream is
// consumed in place, so callers can chain further draws after BuildGraph.
// Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a private PCG stream from seed (deterministic).
func WithSeed(seed uint64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = NewRand(seed)
	}
}

// WithWorkers samples rows on up to k goroutines. For k > 1 each row i draws
// from its own stream derived from one value of the configured RNG, so the
// result depends on the seed but not on k; it does NOT match the sequential
// (k == 1) draw order. Panics if k < 1.
func WithWorkers(k int) BuilderOption {
	if k < 1 {
		panic("builder: WithWorkers(k<1)")
	}
	return func(c *builderConfig) {
		c.workers = k
	}
}
