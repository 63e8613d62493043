// File: levels.go
// Role: BFS tree (depth and parent per node) and shortest paths by edge count.

package analysis

import (
	"fmt"

	"github.com/katalvlaran/graphtutor/core"
)

// Tree is the BFS tree rooted at Start.
type Tree struct {
	// Start is the root.
	Start int `json:"start"`
	// Depth[v] is the edge distance from Start, or NoDepth.
	Depth []int `json:"depth"`
	// Parent[v] is the BFS predecessor of v, or NoParent.
	Parent []int `json:"parent"`
	// Order is the dequeue order.
	Order []int `json:"order"`
}

// Levels runs BFS from start and records depth and parent per node.
//
// Implementation:
//   - Stage 1: Validate g and start.
//   - Stage 2: Standard queue loop; neighbors ascending; mark on enqueue.
//   - Stage 3: Check ctx once per dequeue.
func Levels(g *core.Graph, start int, opts ...Option) (*Tree, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("analysis: Levels: start %d: %w", start, core.ErrInvalidNode)
	}
	o := resolve(opts)

	n := g.NodeCount()
	t := &Tree{
		Start:  start,
		Depth:  make([]int, n),
		Parent: make([]int, n),
		Order:  make([]int, 0, n),
	}
	for i := range t.Depth {
		t.Depth[i], t.Parent[i] = NoDepth, NoParent
	}
	t.Depth[start] = 0

	queue := []int{start}
	for len(queue) > 0 {
		select {
		case <-o.ctx.Done():
			return nil, o.ctx.Err()
		default:
		}

		u := queue[0]
		queue = queue[1:]
		t.Order = append(t.Order, u)

		nbrs, err := g.Neighbors(u)
		if err != nil {
			return nil, fmt.Errorf("analysis: Levels: %w", err)
		}
		for _, v := range nbrs {
			if t.Depth[v] != NoDepth {
				continue
			}
			t.Depth[v] = t.Depth[u] + 1
			t.Parent[v] = u
			queue = append(queue, v)
		}
	}

	return t, nil
}

// PathTo rebuilds the tree path Start→v.
func (t *Tree) PathTo(v int) ([]int, error) {
	if v < 0 || v >= len(t.Depth) {
		return nil, fmt.Errorf("analysis: PathTo(%d): %w", v, core.ErrInvalidNode)
	}
	if t.Depth[v] == NoDepth {
		return nil, fmt.Errorf("analysis: %d → %d: %w", t.Start, v, ErrUnreachable)
	}

	path := make([]int, t.Depth[v]+1)
	for i, cur := len(path)-1, v; i >= 0; i-- {
		path[i] = cur
		cur = t.Parent[cur]
	}

	return path, nil
}

// ShortestPath returns a path from→to with the fewest edges. Ties resolve
// toward smaller ids.
func ShortestPath(g *core.Graph, from, to int, opts ...Option) ([]int, error) {
	t, err := Levels(g, from, opts...)
	if err != nil {
		return nil, err
	}

	return t.PathTo(to)
}
