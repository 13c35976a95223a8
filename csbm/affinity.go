package csbm

import (
	"fmt"
	"math"
)

// ResolveAffinities maps {N, d, λ} to the block edge probabilities
//
//	c_in  = d + λ√d,   p_in  = c_in/N
//	c_out = d − λ√d,   p_out = c_out/N
//
// so that (c_in + c_out)/2 = d: with balanced communities the expected
// average degree is d for every λ, and λ = 0 gives an Erdős–Rényi graph
// with p = d/N.
//
// Probabilities are never clamped: if either falls outside [0,1] the call
// fails with ErrDegenerateAffinity. This happens when |λ| > √d (c_out or
// c_in negative) or when c_in or c_out exceeds N.
func ResolveAffinities(n int, d, lambda float64) (Affinities, error) {
	if n <= 0 {
		return Affinities{}, fmt.Errorf("ResolveAffinities: n=%d: %w", n, ErrInvalidConfiguration)
	}
	if d < 0 || math.IsNaN(d) || math.IsInf(d, 0) || math.IsNaN(lambda) || math.IsInf(lambda, 0) {
		return Affinities{}, fmt.Errorf("ResolveAffinities: d=%v lambda=%v: %w", d, lambda, ErrInvalidConfiguration)
	}

	shift := lambda * math.Sqrt(d)
	nf := float64(n)
	a := Affinities{
		In:  (d + shift) / nf,
		Out: (d - shift) / nf,
	}
	if a.In < 0 || a.In > 1 || a.Out < 0 || a.Out > 1 {
		return Affinities{}, fmt.Errorf("ResolveAffinities: N=%d d=%g lambda=%g gives p_in=%g p_out=%g: %w",
			n, d, lambda, a.In, a.Out, ErrDegenerateAffinity)
	}

	return a, nil
}
