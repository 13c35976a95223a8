package csbm

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// SampleFeatures draws the P×N feature matrix
//
//	B = Z + √(μ/N) · v · uᵀ,   Z_ki i.i.d. N(0,1)
//
// so column i is standard-normal noise shifted by √(μ/N)·u_i·v. The √(μ/N)
// factor keeps the feature-channel signal comparable across N, the way λ√d
// does for the graph. μ = 0 yields pure noise.
//
// Noise is drawn column by column (node 0 first), rows ascending within a
// column. Returns nil for empty latents or μ < 0.
func SampleFeatures(rng *rand.Rand, lat Latents, mu float64) *mat.Dense {
	if len(lat.U) == 0 || lat.V == nil || lat.V.Len() == 0 || mu < 0 {
		return nil
	}
	n, p := len(lat.U), lat.V.Len()

	scale := math.Sqrt(mu / float64(n))
	centroid := mat.Col(nil, 0, lat.V)
	normal := standardNormal(rng)

	b := mat.NewDense(p, n, nil)
	col := make([]float64, p)
	for i := 0; i < n; i++ {
		for k := range col {
			col[k] = normal.Rand()
		}
		if scale != 0 {
			floats.AddScaled(col, scale*float64(lat.U[i]), centroid)
		}
		b.SetCol(i, col)
	}

	return b
}
