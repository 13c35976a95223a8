package csbm

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/csbm/bfs"
)

// Summary holds empirical diagnostics of one draw.
type Summary struct {
	Nodes         int     `yaml:"nodes"`
	Edges         int     `yaml:"edges"`
	AverageDegree float64 `yaml:"average_degree"`

	// IntraEdges and InterEdges split Edges by whether the endpoints share a label.
	IntraEdges int `yaml:"intra_edges"`
	InterEdges int `yaml:"inter_edges"`
	// Homophily is IntraEdges/Edges (0 for an edgeless graph).
	Homophily float64 `yaml:"homophily"`

	// Components counts connected components, isolated nodes included.
	Components int `yaml:"components"`
	// LargestComponent is the node count of the giant component.
	LargestComponent int `yaml:"largest_component"`

	// PositiveFraction is the share of nodes with U[i] == Positive.
	PositiveFraction float64 `yaml:"positive_fraction"`
	// RevealedFraction is the share of nodes with Xi[i] != Unknown.
	RevealedFraction float64 `yaml:"revealed_fraction"`
	// RevealErrors counts Xi[i] ∉ {U[i], Unknown}; always 0 for Sample output.
	RevealErrors int `yaml:"reveal_errors"`

	// ProjectionPositive and ProjectionNegative are the mean of ⟨B_i, v⟩/‖v‖
	// over each community; their gap is ≈ 2·√(μ/N)·‖v‖.
	ProjectionPositive float64 `yaml:"projection_positive"`
	ProjectionNegative float64 `yaml:"projection_negative"`
}

// Summarize computes diagnostics without any randomness.
func Summarize(lat Latents, obs Observations) Summary {
	n := len(lat.U)
	s := Summary{Nodes: n}
	if n == 0 {
		return s
	}

	if obs.G != nil {
		s.Edges = obs.G.EdgeCount()
		s.AverageDegree = obs.G.AverageDegree()
		for _, e := range obs.G.Edges() {
			if lat.U[e.U] == lat.U[e.V] {
				s.IntraEdges++
			} else {
				s.InterEdges++
			}
		}
		if s.Edges > 0 {
			s.Homophily = float64(s.IntraEdges) / float64(s.Edges)
		}
		if comps, err := bfs.Components(obs.G); err == nil {
			s.Components = len(comps)
			for _, c := range comps {
				s.LargestComponent = max(s.LargestComponent, len(c))
			}
		}
	}

	var positives, revealed int
	for i, l := range lat.U {
		if l == Positive {
			positives++
		}
		if i >= len(obs.Xi) {
			continue
		}
		switch obs.Xi[i] {
		case Unknown:
		case l:
			revealed++
		default:
			revealed++
			s.RevealErrors++
		}
	}
	s.PositiveFraction = float64(positives) / float64(n)
	s.RevealedFraction = float64(revealed) / float64(n)

	s.ProjectionPositive, s.ProjectionNegative = projections(lat, obs.B)

	return s
}

// projections returns the per-community mean of ⟨B_i, v⟩/‖v‖.
func projections(lat Latents, b *mat.Dense) (pos, neg float64) {
	if b == nil || lat.V == nil {
		return 0, 0
	}
	_, cols := b.Dims()
	v := mat.Col(nil, 0, lat.V)
	norm := floats.Norm(v, 2)
	if norm == 0 || cols != len(lat.U) {
		return 0, 0
	}

	var posVals, negVals []float64
	col := make([]float64, len(v))
	for i := 0; i < cols; i++ {
		mat.Col(col, i, b)
		x := floats.Dot(col, v) / norm
		if lat.U[i] == Positive {
			posVals = append(posVals, x)
		} else {
			negVals = append(negVals, x)
		}
	}
	if len(posVals) > 0 {
		pos = stat.Mean(posVals, nil)
	}
	if len(negVals) > 0 {
		neg = stat.Mean(negVals, nil)
	}
	return pos, neg
}
