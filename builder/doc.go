// Package builder provides “functional‐options”‐style graph constructors that
// populate a core.Graph from a seeded random stream. It centralizes RNG
// policy, probability validation and the pair-scan sampling loop so that the
// model packages (csbm) only describe WHAT to sample.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – Constructor:   func(g *core.Graph, cfg builderConfig) error.
//     – BuildGraph:    creates an n-vertex graph and applies constructors in order.
//   - Configuration primitives (BuilderOption):
//     – WithRand:      share a caller-owned *rand.Rand (math/rand/v2).
//     – WithSeed:      private PCG stream seeded from a single uint64.
//     – WithWorkers:   parallel row sampling with per-row derived streams.
//   - Constructors:
//     – StochasticBlock: two-community SBM pair scan, p_in / p_out by label.
//   - Validation helpers:
//     – validateProbability: ensure p ∈ [0.0,1.0].
//     – validateLabels:      ensure every label ∈ {−1,+1}.
//
// Guarantees:
//
//   - Determinism: same labels, probabilities, seed and worker mode ⇒ identical
//     edge sets.
//   - Fast‐fail on invalid option parameters via panics in option constructors.
//   - Sentinel runtime errors (ErrInvalidProbability, ErrNeedRandSource, ...)
//     wrapped with the constructor name for errors.Is branching.
//   - Documented algorithmic complexity per constructor.
package builder
