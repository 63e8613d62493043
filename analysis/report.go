// File: report.go
// Role: one-call summary of the analyses for the outer surfaces.

package analysis

import (
	"errors"

	"github.com/katalvlaran/graphtutor/core"
)

// Report bundles the analyses of one graph from one start node.
type Report struct {
	Stats      *core.GraphStats `json:"stats"`
	Components [][]int          `json:"components"`
	// Tree is the BFS tree from the start node.
	Tree *Tree `json:"tree"`
	// Cycle is one cycle, or nil when the graph is acyclic.
	Cycle []int `json:"cycle,omitempty"`
	// Topological is set only for directed acyclic graphs.
	Topological []int   `json:"topological,omitempty"`
	Matrix      [][]int `json:"matrix"`
}

// Analyze runs every analysis on g from start.
func Analyze(g *core.Graph, start int, opts ...Option) (*Report, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	tree, err := Levels(g, start, opts...)
	if err != nil {
		return nil, err
	}

	r := &Report{
		Stats:      g.Stats(),
		Components: g.Components(),
		Tree:       tree,
		Matrix:     AdjacencyMatrix(g),
	}
	r.Cycle, _ = FindCycle(g)

	if g.Directed() && r.Cycle == nil {
		order, err := TopologicalSort(g, opts...)
		if err != nil && !errors.Is(err, ErrCycleDetected) {
			return nil, err
		}
		r.Topological = order
	}

	return r, nil
}
