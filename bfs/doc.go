// Package bfs provides breadth-first traversal over a core.Graph: hop
// distances from a start vertex, and the connected components of the
// whole graph.
//
// Vertices are visited in increasing distance; ties are broken by the
// sorted neighbor order of core.Graph, so results are deterministic.
package bfs
