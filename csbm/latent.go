package csbm

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// fairCoin is the threshold below which a uniform draw yields Negative.
const fairCoin = 0.5

// SampleLatents draws the hidden variables: first n fair coin flips for U
// (one Float64 each, Negative below 0.5), then p standard-normal draws for V.
// U and V are independent at draw time.
// Returns the zero Latents if n or p is not positive.
func SampleLatents(rng *rand.Rand, n, p int) Latents {
	if n <= 0 || p <= 0 {
		return Latents{}
	}

	u := make([]Label, n)
	for i := range u {
		u[i] = Positive
		if rng.Float64() < fairCoin {
			u[i] = Negative
		}
	}

	normal := standardNormal(rng)
	v := make([]float64, p)
	for k := range v {
		v[k] = normal.Rand()
	}

	return Latents{U: u, V: mat.NewVecDense(p, v)}
}

// standardNormal returns N(0,1) drawing from rng.
func standardNormal(rng *rand.Rand) distuv.Normal {
	return distuv.Normal{Mu: 0, Sigma: 1, Src: rng}
}
