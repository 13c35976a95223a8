package csbm

import "math/rand/v2"

// SampleMask reveals each label independently with probability rho: one
// fresh Float64 per node in index order, Xi[i] = u[i] if the draw is below
// rho, otherwise Unknown. A revealed entry is always the true label.
func SampleMask(rng *rand.Rand, u []Label, rho float64) []Label {
	xi := make([]Label, len(u))
	for i, l := range u {
		if rng.Float64() < rho {
			xi[i] = l
		} else {
			xi[i] = Unknown
		}
	}
	return xi
}
