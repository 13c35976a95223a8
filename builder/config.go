// SPDX-License-Identifier: MIT
// Package: csbm/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng     = nil  (pure/deterministic unless seeded)
//   • workers = 1    (sequential pair scan, single shared stream)

package builder

import (
	"math/rand/v2"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Number of goroutines sampling rows; 1 keeps the single-stream order.
	workers int
}

const defaultWorkers = 1

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:     nil,
		workers: defaultWorkers,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
