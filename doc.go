// Package csbm is the root of the Contextual Stochastic Block Model toolkit:
// a seeded generator of labelled graphs with node features, for benchmarking
// community detection and semi-supervised node classification.
//
// What is in the module?
//
//	core/           simple undirected graph on vertices 0..N-1 (+ gonum adapter)
//	builder/        BuildGraph, RNG options, StochasticBlock pair scan
//	bfs/            breadth-first traversal and connected components
//	csbm/           ModelConfig, affinities, latents, features, mask, Sample,
//	                EffectiveSNR, Summarize
//	internal/config YAML run files with CSBM_* overrides
//	internal/export TSV/YAML dataset writer
//	cmd/csbmgen     command-line front end
//
// Quick example:
//
//	cfg, _ := csbm.NewModelConfig(1000, 10, 5, 1.5, 2, 0.1)
//	lat, obs, err := csbm.Sample(builder.NewRand(42), cfg)
//	// obs.G: graph, obs.B: P×N features, obs.Xi: revealed labels
//	// lat.U: hidden labels, lat.V: feature centroid
//
// Install:
//
//	go get github.com/katalvlaran/csbm
package csbm
