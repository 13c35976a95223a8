// File: methods.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Neighbors/Degree/Edges,
//       counts, AdjacencyList and Clone.
// Determinism:
//   - Edges() returns edges sorted by (U,V) asc.
//   - Neighbors() and AdjacencyList() rows are sorted asc.
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

import (
	"fmt"
	"sort"
)

// AddEdge inserts the undirected edge {u,v}.
//
// Steps:
//  1. Validate endpoints and reject loops.
//  2. Lock mu, reject an existing {u,v}.
//  3. Mirror into adj[u] and adj[v].
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int) error {
	if !g.valid(u) {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrVertexNotFound)
	}
	if !g.valid(v) {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrVertexNotFound)
	}
	if u == v {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrLoopNotAllowed)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adj[u][v]; ok {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrMultiEdgeNotAllowed)
	}
	g.adj[u][v] = struct{}{}
	g.adj[v][u] = struct{}{}
	g.edgeCount++

	return nil
}

// HasEdge reports whether {u,v} is present. Out-of-range IDs yield false.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	if !g.valid(u) || !g.valid(v) {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adj[u][v]
	return ok
}

// Neighbors returns the sorted neighbor IDs of v.
// Complexity: O(d·log d).
func (g *Graph) Neighbors(v int) ([]int, error) {
	if !g.valid(v) {
		return nil, fmt.Errorf("Neighbors(%d): %w", v, ErrVertexNotFound)
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return sortedKeys(g.adj[v]), nil
}

// Degree returns the number of neighbors of v.
// Complexity: O(1).
func (g *Graph) Degree(v int) (int, error) {
	if !g.valid(v) {
		return 0, fmt.Errorf("Degree(%d): %w", v, ErrVertexNotFound)
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj[v]), nil
}

// VertexCount returns n.
func (g *Graph) VertexCount() int {
	return g.n
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// AverageDegree returns 2|E|/|V|, or 0 for the empty graph.
func (g *Graph) AverageDegree() float64 {
	if g.n == 0 {
		return 0
	}
	return 2 * float64(g.EdgeCount()) / float64(g.n)
}

// Edges returns every edge once, normalized U<V and sorted by (U,V).
// Complexity: O(V + E·log d).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	var u, v int
	for u = 0; u < g.n; u++ {
		for _, v = range sortedKeys(g.adj[u]) {
			if v > u {
				out = append(out, normalize(u, v))
			}
		}
	}

	return out
}

// AdjacencyList returns a copy of the adjacency as one sorted slice per vertex.
// Complexity: O(V + E·log d).
func (g *Graph) AdjacencyList() [][]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([][]int, g.n)
	for v := 0; v < g.n; v++ {
		out[v] = sortedKeys(g.adj[v])
	}

	return out
}

// Clone returns a deep copy of g.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := NewGraph(g.n)
	for v := 0; v < g.n; v++ {
		for w := range g.adj[v] {
			c.adj[v][w] = struct{}{}
		}
	}
	c.edgeCount = g.edgeCount

	return c
}

func (g *Graph) valid(v int) bool {
	return v >= 0 && v < g.n
}

func sortedKeys(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Ints(out)

	return out
}
