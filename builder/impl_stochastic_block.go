// SPDX-License-Identifier: MIT
// Package: csbm/builder
//
// impl_stochastic_block.go - implementation of StochasticBlock(labels, pIn, pOut).
//
// Canonical model:
//   - Two-community SBM: each unordered pair {i,j}, i<j, is an edge independently
//     with probability pIn if labels[i]==labels[j], else pOut.
//   - One uniform draw per pair; edge iff draw < p. Loops and duplicates are
//     impossible because only i<j is visited.
//
// Contract:
//   - g.VertexCount() ≥ 1 (else ErrTooFewVertices).
//   - len(labels) == g.VertexCount() (else ErrDimensionMismatch).
//   - 0 ≤ pIn,pOut ≤ 1 (else ErrInvalidProbability).
//   - labels ∈ {−1,+1} (else ErrInvalidLabel).
//   - cfg.rng must be non-nil unless both probabilities are 0 or 1 (else ErrNeedRandSource).
//   - All validation happens before the first draw.
//
// Complexity:
//   - Time: O(n²) Bernoulli trials.
//   - Space: O(1) extra sequentially; O(deg) per in-flight row in parallel mode.
//
// Determinism:
//   - workers == 1: trial order i asc, j asc on the shared stream. A seeded
//     caller RNG therefore reproduces the graph bit-for-bit.
//   - workers > 1: exactly one Uint64 is taken from the shared stream; row i
//     then uses deriveRand(seed, i). Identical for any worker count > 1.

package builder

import (
	"fmt"
	"math/rand/v2"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/csbm/core"
)

// StochasticBlock returns a Constructor that samples a two-community
// stochastic block model over the vertices of g.
func StochasticBlock(labels []int8, pIn, pOut float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.VertexCount()

		// 1) Validate parameters early (fail fast, zero draws on invalid input).
		if n < minVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				MethodStochasticBlock, n, minVertices, ErrTooFewVertices)
		}
		if len(labels) != n {
			return fmt.Errorf("%s: len(labels)=%d, vertices=%d: %w",
				MethodStochasticBlock, len(labels), n, ErrDimensionMismatch)
		}
		if err := validateProbability(MethodStochasticBlock, "pIn", pIn); err != nil {
			return err
		}
		if err := validateProbability(MethodStochasticBlock, "pOut", pOut); err != nil {
			return err
		}
		if err := validateLabels(MethodStochasticBlock, labels); err != nil {
			return err
		}

		// 2) RNG is only required when some probability is strictly inside (0,1).
		if cfg.rng == nil {
			if fractional(pIn) || fractional(pOut) {
				return fmt.Errorf("%s: rng is required: %w", MethodStochasticBlock, ErrNeedRandSource)
			}
			return sampleBlockFixed(g, labels, pIn, pOut)
		}

		// 3) Sample.
		if cfg.workers > 1 {
			return sampleBlockParallel(g, labels, pIn, pOut, cfg.rng.Uint64(), cfg.workers)
		}
		return sampleBlockSequential(g, labels, pIn, pOut, cfg.rng)
	}
}

// sampleBlockSequential consumes rng in the canonical i asc, j asc order.
func sampleBlockSequential(g *core.Graph, labels []int8, pIn, pOut float64, rng *rand.Rand) error {
	n := len(labels)
	for i := 0; i < n; i++ {
		err := blockRow(rng, labels, i, pIn, pOut, func(j int) error {
			return addBlockEdge(g, i, j)
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// sampleBlockParallel samples every row on its own derived stream.
// Rows are collected before insertion so no goroutine holds the graph lock
// while drawing.
func sampleBlockParallel(g *core.Graph, labels []int8, pIn, pOut float64, seed uint64, workers int) error {
	n := len(labels)

	var eg errgroup.Group
	eg.SetLimit(workers)
	// The last row has no j>i pairs.
	for i := 0; i < n-1; i++ {
		eg.Go(func() error {
			rng := deriveRand(seed, uint64(i))
			hits := make([]int, 0, 8)
			_ = blockRow(rng, labels, i, pIn, pOut, func(j int) error {
				hits = append(hits, j)
				return nil
			})
			for _, j := range hits {
				if err := addBlockEdge(g, i, j); err != nil {
					return err
				}
			}
			return nil
		})
	}

	return eg.Wait()
}

// sampleBlockFixed handles the RNG-free case where pIn,pOut ∈ {0,1}.
func sampleBlockFixed(g *core.Graph, labels []int8, pIn, pOut float64) error {
	n := len(labels)
	var (
		i, j int
		p    float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			p = pOut
			if labels[i] == labels[j] {
				p = pIn
			}
			if p == MaxProbability {
				if err := addBlockEdge(g, i, j); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// blockRow performs the Bernoulli trials of row i (pairs j>i) and calls emit
// for each success, in j asc order. Exactly n-1-i draws are taken from rng.
func blockRow(rng *rand.Rand, labels []int8, i int, pIn, pOut float64, emit func(j int) error) error {
	var (
		j int
		p float64
	)
	for j = i + 1; j < len(labels); j++ {
		p = pOut
		if labels[i] == labels[j] {
			p = pIn
		}
		if rng.Float64() < p {
			if err := emit(j); err != nil {
				return err
			}
		}
	}

	return nil
}

func addBlockEdge(g *core.Graph, i, j int) error {
	if err := g.AddEdge(i, j); err != nil {
		return fmt.Errorf("%s: AddEdge(%d,%d): %w: %w", MethodStochasticBlock, i, j, ErrConstructFailed, err)
	}
	return nil
}

func fractional(p float64) bool {
	return p > MinProbability && p < MaxProbability
}
