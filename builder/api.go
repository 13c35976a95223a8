// SPDX-License-Identifier: MIT
// Package: csbm/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(n, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic at runtime; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/csbm/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters before touching the graph or the RNG.
//   - Preserve determinism for the same config and call order.
//
// Complexity (this type): O(1) to pass; actual cost is in the closure body.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates an edgeless core.Graph with n vertices, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately; the partially built graph is discarded.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
//
// Errors:
//   - ErrTooFewVertices if n < 1.
//   - ErrConstructFailed for a nil constructor.
//   - Any constructor error, wrapped via %w.
func BuildGraph(n int, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	if n < minVertices {
		return nil, fmt.Errorf("BuildGraph: n=%d < min=%d: %w", n, minVertices, ErrTooFewVertices)
	}

	g := core.NewGraph(n)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================

// StochasticBlock samples a two-community stochastic block model over the
// graph's vertices: pair {i,j} is an edge with probability pIn when
// labels[i]==labels[j] and pOut otherwise.
// Requires len(labels)==g.VertexCount(), labels ∈ {−1,+1}, pIn,pOut ∈ [0,1].
// Complexity: O(n²) Bernoulli trials.
//func StochasticBlock(labels []int8, pIn, pOut float64) Constructor
