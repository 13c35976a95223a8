// SPDX-License-Identifier: MIT
// Package: csbm
//
// generator.go - the single sampling entry point.
//
// Draw order on the caller's stream (fixed, part of the reproducibility contract):
//   1. U  - N Float64 (SampleLatents)
//   2. V  - P normals (SampleLatents)
//   3. G  - N(N−1)/2 Float64, i asc, j asc (builder.StochasticBlock);
//           a single Uint64 instead when workers > 1
//   4. B  - P·N normals, column-major (SampleFeatures)
//   5. Ξ  - N Float64 (SampleMask)

package csbm

import (
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/csbm/builder"
)

// Generator samples CSBM instances. The zero value is not usable; build one
// with NewGenerator. A Generator holds no per-draw state and may be shared,
// but a *rand.Rand must not be shared across concurrent Sample calls.
type Generator struct {
	logger  *zap.Logger
	workers int
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger routes sampling logs to l. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("csbm: WithLogger(nil)")
	}
	return func(g *Generator) { g.logger = l }
}

// WithWorkers parallelizes the graph pair scan over k goroutines; see
// builder.WithWorkers for the reproducibility trade-off. Panics if k < 1.
func WithWorkers(k int) Option {
	if k < 1 {
		panic("csbm: WithWorkers(k<1)")
	}
	return func(g *Generator) { g.workers = k }
}

// NewGenerator returns a Generator with a no-op logger and one worker,
// then applies opts in order.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		logger:  zap.NewNop(),
		workers: 1,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Sample draws one (Latents, Observations) pair with the default Generator.
func Sample(rng *rand.Rand, cfg ModelConfig) (Latents, Observations, error) {
	return NewGenerator().Sample(rng, cfg)
}

// Sample draws labels and centroid once and reuses them for the graph, the
// features and the mask.
//
// Errors (all reported before the first draw):
//   - ErrNilRand for a nil rng.
//   - ErrZeroConfig for a ModelConfig not built by NewModelConfig.
//   - ErrDegenerateAffinity when p_in or p_out falls outside [0,1].
func (g *Generator) Sample(rng *rand.Rand, cfg ModelConfig) (Latents, Observations, error) {
	if rng == nil {
		return Latents{}, Observations{}, fmt.Errorf("Sample: %w", ErrNilRand)
	}
	if !cfg.ok {
		return Latents{}, Observations{}, fmt.Errorf("Sample: %w", ErrZeroConfig)
	}
	aff, err := cfg.Affinities()
	if err != nil {
		return Latents{}, Observations{}, fmt.Errorf("Sample: %w", err)
	}

	log := g.logger.With(zap.Stringer("config", cfg))
	log.Debug("sampling csbm",
		zap.Float64("p_in", aff.In),
		zap.Float64("p_out", aff.Out),
		zap.Int("workers", g.workers))
	start := time.Now()

	lat := SampleLatents(rng, cfg.N(), cfg.P())

	bopts := []builder.BuilderOption{builder.WithRand(rng)}
	if g.workers > 1 {
		bopts = append(bopts, builder.WithWorkers(g.workers))
	}
	graph, err := builder.BuildGraph(cfg.N(), bopts, builder.StochasticBlock(labelsToInt8(lat.U), aff.In, aff.Out))
	if err != nil {
		return Latents{}, Observations{}, fmt.Errorf("Sample: %w", err)
	}
	graphDone := time.Now()

	obs := Observations{
		G:  graph,
		B:  SampleFeatures(rng, lat, cfg.Mu()),
		Xi: SampleMask(rng, lat.U, cfg.Rho()),
	}

	log.Debug("sampled csbm",
		zap.Int("edges", graph.EdgeCount()),
		zap.Float64("avg_degree", graph.AverageDegree()),
		zap.Duration("graph", graphDone.Sub(start)),
		zap.Duration("total", time.Since(start)))

	return lat, obs, nil
}
