// Package csbm samples the two-community Contextual Stochastic Block Model:
// a random graph whose edge probabilities depend on hidden ±1 labels, a
// Gaussian feature matrix whose mean is shifted by the same labels, and a
// partially revealed copy of the labels.
//
// One call to Sample draws, from a single caller-supplied *rand.Rand and in
// this fixed order:
//
//	u  ∈ {−1,+1}^N        fair coin flips                    (SampleLatents)
//	v  ∈ R^P              i.i.d. N(0,1) centroid              (SampleLatents)
//	G                     pair {i,j} kept w.p. p_in / p_out   (builder.StochasticBlock)
//	B  ∈ R^{P×N}          Z + √(μ/N)·v·uᵀ                     (SampleFeatures)
//	Ξ  ∈ {u_i, Unknown}^N revealed w.p. ρ per node            (SampleMask)
//
// with p_in = (d + λ√d)/N and p_out = (d − λ√d)/N (ResolveAffinities), so
// the expected average degree is d whatever λ is. The same u drives G, B
// and Ξ; that coupling is what makes the model contextual.
//
// Reproducibility: with a seeded stream and the default single worker, equal
// seeds give bit-identical (u, v, G, B, Ξ). WithWorkers(k>1) parallelizes the
// O(N²) pair scan on derived per-row streams; results are still seed
// deterministic but differ from the sequential layout.
//
// EffectiveSNR(cfg) = λ² + μ²·P/N needs no randomness and can be used to
// screen configurations before sampling.
//
// The package is a data-generating oracle only: no inference, scoring or
// persistence. Summarize reports empirical diagnostics of a draw.
package csbm
