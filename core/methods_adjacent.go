// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors) and weak connectivity (Components, IsConnected).
// Determinism:
//   - Neighbors() returns unique ids sorted ascending.
//   - Components() orders members ascending and components by their smallest member.
// Concurrency:
//   - All methods hold the read lock for a consistent snapshot.

package core

import (
	"fmt"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
)

// Neighbors returns the ids adjacent to id, sorted ascending.
//
// Neighborhood policy:
//   - Directed graphs: only targets of outgoing edges.
//   - Undirected graphs: every incident node; a self-loop lists id itself once.
//
// Errors:
//   - ErrInvalidNode: if id is out of range.
//
// Complexity:
//   - Time O(d log d), Space O(d), where d is the degree of id.
func (g *Graph) Neighbors(id int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkNode(id); err != nil {
		return nil, fmt.Errorf("Neighbors: %w", err)
	}

	out := make([]int, 0, len(g.adjacency[id]))
	for v := range g.adjacency[id] {
		out = append(out, v)
	}
	sort.Ints(out)

	return out, nil
}

// Components returns the weakly connected components of g.
//
// Implementation:
//   - Stage 1: Build an undirected view of the adjacency (mirrors directed edges).
//   - Stage 2: Flood-fill from every unseen node in ascending id order.
//   - Stage 3: Sort each component ascending.
//
// Behavior highlights:
//   - For undirected graphs these are the ordinary connected components.
//   - Components are ordered by their smallest member, which is the seed of the flood fill.
//
// Complexity:
//   - Time O(V + E), Space O(V + E).
func (g *Graph) Components() [][]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	// Stage 1: undirected view.
	view := make([][]int, g.nodeCount)
	for u, bucket := range g.adjacency {
		for v := range bucket {
			view[u] = append(view[u], v)
			if g.directed {
				view[v] = append(view[v], u)
			}
		}
	}

	// Stage 2: flood fill.
	seen := mapset.NewThreadUnsafeSet[int]()
	var out [][]int
	for seed := 0; seed < g.nodeCount; seed++ {
		if seen.Contains(seed) {
			continue
		}
		seen.Add(seed)
		comp := []int{seed}
		stack := []int{seed}
		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, v := range view[u] {
				if seen.Add(v) {
					comp = append(comp, v)
					stack = append(stack, v)
				}
			}
		}
		// Stage 3: stable member order.
		sort.Ints(comp)
		out = append(out, comp)
	}

	return out
}

// IsConnected reports whether a single weak component spans all nodes.
// An empty graph has no component and is therefore not connected.
// Complexity: O(V + E).
func (g *Graph) IsConnected() bool {
	return len(g.Components()) == 1
}
