// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all constructors.
package builder

// MethodStochasticBlock is the canonical name for the StochasticBlock constructor.
const MethodStochasticBlock = "StochasticBlock"

// minVertices is the smallest graph BuildGraph will create.
const minVertices = 1

//-----------------------------------------------------------------------------
// Probability bounds and community labels
//-----------------------------------------------------------------------------

// MinProbability is the lower bound for edge probabilities, inclusive.
const MinProbability = 0.0

// MaxProbability is the upper bound for edge probabilities, inclusive.
const MaxProbability = 1.0

// LabelNegative and LabelPositive are the only admissible community labels.
const (
	LabelNegative int8 = -1
	LabelPositive int8 = +1
)
