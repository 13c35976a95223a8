package bfs

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/csbm/core"
)

// ErrGraphNil is returned when a nil graph is passed.
var ErrGraphNil = errors.New("bfs: graph is nil")

// ErrStartVertexNotFound is returned when the start vertex is out of range.
var ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

// Unreached marks vertices not reachable from the start in Result.Depth.
const Unreached = -1

// Result holds one traversal.
type Result struct {
	// Order lists reached vertices in visit order.
	Order []int
	// Depth[v] is the hop distance from the start, or Unreached.
	Depth []int
	// Parent[v] is v's predecessor on a shortest path, or -1.
	Parent []int
}

// walker encapsulates mutable BFS state.
type walker struct {
	adj   [][]int
	queue []int
	res   *Result
}

// BFS walks g from start.
func BFS(g *core.Graph, start int) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.VertexCount()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("BFS: start=%d, vertices=%d: %w", start, n, ErrStartVertexNotFound)
	}

	w := newWalker(g.AdjacencyList())
	w.walk(start)
	return w.res, nil
}

// Components returns the connected components of g, each sorted ascending,
// ordered by their smallest vertex. Isolated vertices form singleton
// components.
func Components(g *core.Graph) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	w := newWalker(g.AdjacencyList())
	var comps [][]int
	for v := range w.adj {
		if w.res.Depth[v] != Unreached {
			continue
		}
		from := len(w.res.Order)
		w.walk(v)
		comp := append([]int(nil), w.res.Order[from:]...)
		slices.Sort(comp)
		comps = append(comps, comp)
	}
	return comps, nil
}

func newWalker(adj [][]int) *walker {
	n := len(adj)
	w := &walker{
		adj:   adj,
		queue: make([]int, 0, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for v := range w.res.Depth {
		w.res.Depth[v] = Unreached
		w.res.Parent[v] = -1
	}
	return w
}

// walk runs one traversal from start over not-yet-reached vertices.
func (w *walker) walk(start int) {
	w.res.Depth[start] = 0
	w.queue = append(w.queue[:0], start)
	for len(w.queue) > 0 {
		v := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, v)
		for _, nbr := range w.adj[v] {
			if w.res.Depth[nbr] != Unreached {
				continue
			}
			w.res.Depth[nbr] = w.res.Depth[v] + 1
			w.res.Parent[nbr] = v
			w.queue = append(w.queue, nbr)
		}
	}
}
