// File: topological.go
// Role: topological order of a directed acyclic graph.

package analysis

import (
	"fmt"

	"github.com/katalvlaran/graphtutor/core"
)

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	g     *core.Graph
	opts  options
	state []int
	order []int
}

// TopologicalSort orders the nodes of a directed graph so that every edge
// u→v has u before v.
//
// Errors:
//   - ErrGraphNil, ErrUndirected.
//   - ErrCycleDetected when a back edge is found.
//   - ctx.Err() when cancelled (WithContext).
//
// Determinism:
//   - Roots are tried in ascending order and neighbors ascending; the result
//     is the reverse post-order.
func TopologicalSort(g *core.Graph, opts ...Option) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrUndirected
	}

	n := g.NodeCount()
	t := &topoSorter{
		g:     g,
		opts:  resolve(opts),
		state: make([]int, n),
		order: make([]int, 0, n),
	}
	for v := 0; v < n; v++ {
		if t.state[v] == White {
			if err := t.visit(v); err != nil {
				return nil, err
			}
		}
	}

	for i, j := 0, len(t.order)-1; i < j; i, j = i+1, j-1 {
		t.order[i], t.order[j] = t.order[j], t.order[i]
	}

	return t.order, nil
}

func (t *topoSorter) visit(id int) error {
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}
	switch t.state[id] {
	case Gray:
		return fmt.Errorf("%w: back edge into %d", ErrCycleDetected, id)
	case Black:
		return nil
	}
	t.state[id] = Gray

	nbrs, err := t.g.Neighbors(id)
	if err != nil {
		return fmt.Errorf("analysis: TopologicalSort: %w", err)
	}
	for _, v := range nbrs {
		if err := t.visit(v); err != nil {
			return err
		}
	}

	t.state[id] = Black
	t.order = append(t.order, id)

	return nil
}
