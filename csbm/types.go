package csbm

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/csbm/core"
)

// Label is a community membership. Hidden labels are Negative or Positive;
// Unknown appears only in the revealed vector Observations.Xi.
type Label int8

const (
	Negative Label = -1
	Unknown  Label = 0
	Positive Label = +1
)

// String renders a label as "-1", "+1" or "?".
func (l Label) String() string {
	switch l {
	case Negative:
		return "-1"
	case Positive:
		return "+1"
	default:
		return "?"
	}
}

// Latents are the hidden variables of one draw.
type Latents struct {
	// U holds the N community labels, each Negative or Positive.
	U []Label

	// V is the length-P feature centroid, i.i.d. standard normal.
	V *mat.VecDense
}

// Observations are what a downstream learner gets to see.
type Observations struct {
	// G is the sampled graph on N vertices: undirected, unweighted, simple.
	G *core.Graph

	// Xi holds U[i] for revealed nodes and Unknown otherwise.
	Xi []Label

	// B is the P×N feature matrix; column i is node i's feature vector.
	B *mat.Dense
}

// Affinities are the per-pair edge probabilities of the two block types.
type Affinities struct {
	// In is the probability of an edge between two nodes of the same community.
	In float64

	// Out is the probability of an edge across communities.
	Out float64
}

func labelsToInt8(u []Label) []int8 {
	out := make([]int8, len(u))
	for i, l := range u {
		out[i] = int8(l)
	}
	return out
}
