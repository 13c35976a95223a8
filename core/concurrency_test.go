// Package core_test verifies thread-safety of core.Graph under concurrent inserts.
package core_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/csbm/core"
	"github.com/stretchr/testify/require"
)

// TestConcurrentAddEdge inserts a star from many goroutines, plus a racing
// duplicate per leaf, and checks exactly one copy of each edge survives.
func TestConcurrentAddEdge(t *testing.T) {
	const num = 200
	g := core.NewGraph(num + 1)

	var wg sync.WaitGroup
	wg.Add(2 * num)
	for i := 1; i <= num; i++ {
		go func(id int) {
			defer wg.Done()
			_ = g.AddEdge(0, id)
		}(i)
		go func(id int) {
			defer wg.Done()
			_ = g.AddEdge(id, 0)
		}(i)
	}
	wg.Wait()

	require.Equal(t, num, g.EdgeCount())
	d, err := g.Degree(0)
	require.NoError(t, err)
	require.Equal(t, num, d)
}
