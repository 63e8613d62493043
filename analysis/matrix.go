// File: matrix.go
// Role: adjacency matrix view of a graph.

package analysis

import (
	"github.com/katalvlaran/graphtutor/core"
)

// AdjacencyMatrix returns the V×V 0/1 matrix with m[u][v] = 1 iff u→v is
// an edge. Undirected graphs yield a symmetric matrix.
func AdjacencyMatrix(g *core.Graph) [][]int {
	if g == nil {
		return nil
	}
	n := g.NodeCount()
	m := make([][]int, n)
	for i := range m {
		m[i] = make([]int, n)
	}
	for _, e := range g.Edges() {
		m[e.From][e.To] = 1
		if !g.Directed() {
			m[e.To][e.From] = 1
		}
	}

	return m
}
