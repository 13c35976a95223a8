// Package core defines the Graph and Edge types used to carry sampled
// topologies, and the sentinel errors returned by Graph mutations.
//
// Errors:
//
//	ErrVertexNotFound      - vertex ID outside [0, VertexCount()).
//	ErrLoopNotAllowed      - self-loop requested.
//	ErrMultiEdgeNotAllowed - parallel edge requested.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a vertex outside [0,n).
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is an unordered vertex pair, normalized so that U < V.
type Edge struct {
	// U is the smaller endpoint.
	U int

	// V is the larger endpoint.
	V int
}

// Graph is a simple undirected graph over the vertices 0..n-1.
//
// adj[v] holds the neighbor set of v; every edge {u,v} appears in both
// adj[u] and adj[v]. mu guards adj and edgeCount.
type Graph struct {
	mu sync.RWMutex

	n         int
	edgeCount int
	adj       []map[int]struct{}
}

// NewGraph creates an edgeless Graph with n vertices (IDs 0..n-1).
// A negative n is treated as 0.
// Complexity: O(n)
func NewGraph(n int) *Graph {
	if n < 0 {
		n = 0
	}
	g := &Graph{
		n:   n,
		adj: make([]map[int]struct{}, n),
	}
	for v := 0; v < n; v++ {
		g.adj[v] = make(map[int]struct{})
	}

	return g
}

// normalize returns (u,v) ordered so that u<v.
func normalize(u, v int) Edge {
	if u > v {
		u, v = v, u
	}
	return Edge{U: u, V: v}
}
