// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() returns ids in ascending order (0..n-1).
//
// Concurrency:
//   - Node count and adjacency buckets are protected by mu.
package core

import "fmt"

// AddNodes appends k new nodes and returns the id of the first one.
//
// Implementation:
//   - Stage 1: Reject negative k (ErrNegativeCount).
//   - Stage 2: Under the write lock, allocate one empty adjacency bucket per new node.
//
// Behavior highlights:
//   - Ids stay contiguous: the new nodes are first..first+k-1.
//   - k == 0 is a no-op that still reports the next free id.
//
// Complexity:
//   - Time O(k), Space O(k).
func (g *Graph) AddNodes(k int) (int, error) {
	if k < 0 {
		return 0, fmt.Errorf("AddNodes(%d): %w", k, ErrNegativeCount)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	first := g.nodeCount
	for i := 0; i < k; i++ {
		g.adjacency = append(g.adjacency, make(map[int]struct{}))
	}
	g.nodeCount += k

	return first, nil
}

// HasNode reports whether id lies in [0, NodeCount).
// Complexity: O(1).
func (g *Graph) HasNode(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasNode(id)
}

// hasNode is HasNode without locking; callers hold mu.
func (g *Graph) hasNode(id int) bool {
	return id >= 0 && id < g.nodeCount
}

// checkNode returns ErrInvalidNode wrapped with the offending id.
// Callers hold mu.
func (g *Graph) checkNode(id int) error {
	if !g.hasNode(id) {
		return fmt.Errorf("node %d not in [0,%d): %w", id, g.nodeCount, ErrInvalidNode)
	}

	return nil
}

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nodeCount
}

// Nodes returns all node ids in ascending order.
// Complexity: O(V).
func (g *Graph) Nodes() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, g.nodeCount)
	for i := range out {
		out[i] = i
	}

	return out
}

// Degree returns the number of distinct neighbors of id. For directed graphs
// this is the out-degree.
//
// Errors:
//   - ErrInvalidNode: if id is out of range.
//
// Complexity: O(1).
func (g *Graph) Degree(id int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkNode(id); err != nil {
		return 0, err
	}

	return len(g.adjacency[id]), nil
}
