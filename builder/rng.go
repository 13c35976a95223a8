// Package builder - RNG utilities shared by stochastic constructors.
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand/v2.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
//   - Use deriveRand to create independent streams for parallel workers.
package builder

import "math/rand/v2"

// pcgIncrement is the fixed second PCG word; only the first word carries the seed.
const pcgIncrement uint64 = 0xda3e39cb94b95bdb

// NewRand returns a deterministic PCG-backed *rand.Rand for seed.
//
// Complexity: O(1).
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, pcgIncrement))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed with the SplitMix64 finalizer, so neighbouring stream IDs produce
// uncorrelated seeds.
//
// Complexity: O(1).
func deriveSeed(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// deriveRand creates the independent stream number `stream` under parent.
//
// Complexity: O(1).
func deriveRand(parent, stream uint64) *rand.Rand {
	return NewRand(deriveSeed(parent, stream))
}
