// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin public facade: FromEdges constructor and the Stats snapshot.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity.

package core

import "fmt"

// FromEdges builds a graph from an explicit edge list.
//
// Implementation:
//   - Stage 1: Reject negative ids (ErrInvalidNode).
//   - Stage 2: Allocate max(id)+1 nodes so every endpoint exists.
//   - Stage 3: Add edges in input order.
//
// Behavior highlights:
//   - Ids between 0 and the maximum that appear in no edge become isolated nodes.
//   - An empty edge list yields an empty graph.
//
// Complexity:
//   - Time O(V + E), Space O(V + E).
func FromEdges(edges []Edge, opts ...GraphOption) (*Graph, error) {
	maxID := -1
	for _, e := range edges {
		if e.From < 0 || e.To < 0 {
			return nil, fmt.Errorf("FromEdges: edge (%d,%d): %w", e.From, e.To, ErrInvalidNode)
		}
		maxID = max(maxID, e.From, e.To)
	}

	g := NewGraph(opts...)
	if _, err := g.AddNodes(maxID + 1); err != nil {
		return nil, fmt.Errorf("FromEdges: %w", err)
	}
	for _, e := range edges {
		if err := g.AddEdge(e.From, e.To); err != nil {
			return nil, fmt.Errorf("FromEdges: %w", err)
		}
	}

	return g, nil
}

// Stats produces a read-only summary: node and edge counts, directedness,
// weak connectivity and average degree.
//
// Behavior highlights:
//   - AverageDegree is 2E/V (each edge contributes to two endpoint degrees;
//     for directed graphs that is in-degree plus out-degree). Zero for an empty graph.
//
// Complexity:
//   - Time O(V + E), Space O(V + E) for the connectivity check.
func (g *Graph) Stats() *GraphStats {
	nodes := g.NodeCount()
	edges := g.EdgeCount()

	stats := GraphStats{
		NodeCount: nodes,
		EdgeCount: edges,
		Directed:  g.Directed(),
		Connected: g.IsConnected(),
	}
	if nodes > 0 {
		stats.AverageDegree = float64(2*edges) / float64(nodes)
	}

	return &stats
}
