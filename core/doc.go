// Package core provides the simple undirected Graph produced by the csbm
// samplers: a fixed vertex set 0..n-1, unweighted edges, no self-loops and
// no parallel edges.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Vertices are dense integer IDs fixed at construction (NewGraph(n)).
//   - Edges are unordered pairs {u,v}, u≠v, stored once and mirrored in the
//     adjacency sets so HasEdge(u,v) == HasEdge(v,u).
//   - AddEdge rejects loops (ErrLoopNotAllowed), parallel edges
//     (ErrMultiEdgeNotAllowed) and unknown endpoints (ErrVertexNotFound).
//   - A single sync.RWMutex guards adjacency, so parallel samplers may insert
//     edges from several goroutines.
//
// Deterministic iteration:
//
//	Edges()        – sorted by (U,V) with U<V
//	Neighbors(v)   – sorted ascending
//	AdjacencyList() – one sorted slice per vertex
//
// Core Methods:
//
//	NewGraph(n int) *Graph                 // O(n)
//	AddEdge(u, v int) error                // O(1)
//	HasEdge(u, v int) bool                 // O(1)
//	Neighbors(v int) ([]int, error)        // O(d·log d)
//	Degree(v int) (int, error)             // O(1)
//	VertexCount() int / EdgeCount() int    // O(1)
//	AverageDegree() float64                // O(1): 2|E|/|V|
//	Clone() *Graph                         // O(V+E)
//	ToGonum() *simple.UndirectedGraph      // O(V+E)
//
// Errors:
//
//	ErrVertexNotFound      – endpoint outside [0,n)
//	ErrLoopNotAllowed      – u == v
//	ErrMultiEdgeNotAllowed – edge {u,v} already present
package core
