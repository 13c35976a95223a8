// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in the simple-graph constraints (no loops, no multi-edges, bounded IDs).
//   - Anchor deterministic ordering of Edges/Neighbors/AdjacencyList.

package core_test

import (
	"testing"

	"github.com/katalvlaran/csbm/core"
	"github.com/stretchr/testify/require"
)

func TestNewGraph_Empty(t *testing.T) {
	g := core.NewGraph(4)
	require.Equal(t, 4, g.VertexCount())
	require.Zero(t, g.EdgeCount())
	require.Empty(t, g.Edges())
	require.Zero(t, g.AverageDegree())

	require.Zero(t, core.NewGraph(-3).VertexCount())
	require.Zero(t, core.NewGraph(0).AverageDegree())
}

func TestGraph_AddEdge_Constraints(t *testing.T) {
	tests := []struct {
		name string
		u, v int
		want error
	}{
		{"loop", 1, 1, core.ErrLoopNotAllowed},
		{"negative", -1, 2, core.ErrVertexNotFound},
		{"too large", 0, 5, core.ErrVertexNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := core.NewGraph(5)
			require.ErrorIs(t, g.AddEdge(tc.u, tc.v), tc.want)
			require.Zero(t, g.EdgeCount())
		})
	}

	t.Run("duplicate either orientation", func(t *testing.T) {
		g := core.NewGraph(3)
		require.NoError(t, g.AddEdge(0, 2))
		require.ErrorIs(t, g.AddEdge(0, 2), core.ErrMultiEdgeNotAllowed)
		require.ErrorIs(t, g.AddEdge(2, 0), core.ErrMultiEdgeNotAllowed)
		require.Equal(t, 1, g.EdgeCount())
	})
}

func TestGraph_Symmetry(t *testing.T) {
	g := core.NewGraph(4)
	require.NoError(t, g.AddEdge(3, 1))

	require.True(t, g.HasEdge(1, 3))
	require.True(t, g.HasEdge(3, 1))
	require.False(t, g.HasEdge(1, 2))
	require.False(t, g.HasEdge(1, 9))

	d1, err := g.Degree(1)
	require.NoError(t, err)
	d3, err := g.Degree(3)
	require.NoError(t, err)
	require.Equal(t, 1, d1)
	require.Equal(t, 1, d3)

	_, err = g.Degree(4)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestGraph_DeterministicOrder(t *testing.T) {
	g := core.NewGraph(5)
	for _, e := range [][2]int{{4, 0}, {2, 1}, {0, 2}, {3, 4}, {1, 0}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	require.Equal(t, []core.Edge{{U: 0, V: 1}, {U: 0, V: 2}, {U: 0, V: 4}, {U: 1, V: 2}, {U: 3, V: 4}}, g.Edges())

	nbs, err := g.Neighbors(0)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 4}, nbs)

	_, err = g.Neighbors(7)
	require.ErrorIs(t, err, core.ErrVertexNotFound)

	adj := g.AdjacencyList()
	require.Len(t, adj, 5)
	require.Equal(t, []int{0, 2}, adj[1])
	require.Equal(t, []int{0, 3}, adj[4])

	require.InDelta(t, 2.0, g.AverageDegree(), 1e-12)
}

func TestGraph_Clone(t *testing.T) {
	g := core.NewGraph(3)
	require.NoError(t, g.AddEdge(0, 1))

	c := g.Clone()
	require.NoError(t, c.AddEdge(1, 2))

	require.Equal(t, 1, g.EdgeCount())
	require.Equal(t, 2, c.EdgeCount())
	require.False(t, g.HasEdge(1, 2))
}

func TestGraph_ToGonum(t *testing.T) {
	g := core.NewGraph(4)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(2, 1))

	gg := g.ToGonum()
	require.Equal(t, 4, gg.Nodes().Len())
	require.Equal(t, 2, gg.Edges().Len())
	require.True(t, gg.HasEdgeBetween(1, 2))
	require.True(t, gg.HasEdgeBetween(0, 1))
	require.False(t, gg.HasEdgeBetween(0, 3))
	require.NotNil(t, gg.Node(3))
}
