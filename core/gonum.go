// SPDX-License-Identifier: MIT
// Package: csbm/core
//
// gonum.go - adapter from core.Graph to gonum's graph/simple types, so that
// sampled topologies can be handed to gonum community-detection and
// centrality code without a hand-written bridge.

package core

import (
	"gonum.org/v1/gonum/graph/simple"
)

// ToGonum converts g into a *simple.UndirectedGraph whose node IDs equal the
// core vertex IDs (0..n-1). Isolated vertices are preserved.
// Complexity: O(V+E).
func (g *Graph) ToGonum() *simple.UndirectedGraph {
	out := simple.NewUndirectedGraph()
	for v := 0; v < g.n; v++ {
		out.AddNode(simple.Node(int64(v)))
	}
	for _, e := range g.Edges() {
		out.SetEdge(simple.Edge{F: simple.Node(int64(e.U)), T: simple.Node(int64(e.V))})
	}

	return out
}
