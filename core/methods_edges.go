// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges sorted by (From, To) ascending.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import (
	"fmt"
	"sort"
)

// AddEdge connects u and v.
//
// Implementation:
//   - Stage 1: Validate both endpoints (ErrInvalidNode).
//   - Stage 2: Skip if the edge already exists (duplicates are ignored).
//   - Stage 3: Record u→v; for undirected graphs mirror it as v→u.
//
// Behavior highlights:
//   - Self-loops are accepted and stored once.
//   - Idempotent: adding the same edge twice leaves the graph unchanged.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkNode(u); err != nil {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, err)
	}
	if err := g.checkNode(v); err != nil {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, err)
	}

	if _, exists := g.adjacency[u][v]; exists {
		return nil
	}

	g.adjacency[u][v] = struct{}{}
	if !g.directed {
		g.adjacency[v][u] = struct{}{}
	}
	g.edgeCount++

	return nil
}

// HasEdge reports whether an edge u→v exists (either direction for undirected graphs).
// Out-of-range ids report false.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasNode(u) || !g.hasNode(v) {
		return false
	}
	_, ok := g.adjacency[u][v]

	return ok
}

// EdgeCount returns the number of distinct edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Edges returns every edge exactly once, sorted by (From, To).
// Undirected edges are reported with From <= To.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for u, bucket := range g.adjacency {
		for v := range bucket {
			if !g.directed && v < u {
				continue // mirror of an edge already reported from v
			}
			out = append(out, Edge{From: u, To: v})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}
