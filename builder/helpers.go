// Package builder provides internal helper functions used by Constructor
// implementations to build common topologies.
//
// Design principles:
//   - Single Responsibility: each helper does one well-defined job.
//   - Error Context: wrap core errors with the constructor's method tag.
package builder

import (
	"fmt"

	"github.com/katalvlaran/graphtutor/core"
)

// addBlock appends n nodes to g and returns the id of the first one.
// Constructors address their nodes as first+i.
//
// Complexity: O(n) time, O(n) space in the core graph.
func addBlock(g *core.Graph, method string, n int) (int, error) {
	if g == nil {
		return 0, fmt.Errorf("%s: nil graph: %w", method, ErrConstructFailed)
	}
	first, err := g.AddNodes(n)
	if err != nil {
		return 0, fmt.Errorf("%s: AddNodes(%d): %w", method, n, err)
	}

	return first, nil
}

// addEdge inserts u-v and wraps any core failure with the method context.
// Complexity: O(1).
func addEdge(g *core.Graph, method string, u, v int) error {
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d): %w", method, u, v, err)
	}

	return nil
}
