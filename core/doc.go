// Package core provides the small, thread-safe in-memory Graph that every
// other graphtutor package works on.
//
// The Graph G = (V,E) is deliberately minimal:
//
//   - Nodes are integers, contiguous from 0 (AddNodes hands out the next ids).
//   - Directed vs. undirected edges (WithDirected); undirected edges are mirrored
//     in the adjacency so neighbor lookup is symmetric.
//   - Duplicate edges are ignored; self-loops are stored once.
//   - One sync.RWMutex guards nodes, edges and adjacency.
//
// A Graph is mutated only while it is being built (see package builder).
// Traversals and exercises treat it as read-only afterwards.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNodes(k int) (first int, err error) // O(k)
//	HasNode(id int) bool                   // O(1)
//	NodeCount() int                        // O(1)
//	Nodes() []int                          // O(V)
//
//	// Edge lifecycle
//	AddEdge(u, v int) error                // O(1)
//	HasEdge(u, v int) bool                 // O(1)
//	Edges() []Edge                         // O(E·log E), sorted
//	EdgeCount() int                        // O(1)
//
//	// Query
//	Neighbors(id int) ([]int, error)       // O(d·log d), unique, ascending
//	Degree(id int) (int, error)            // O(1)
//	Components() [][]int                   // O(V+E), weak components
//	IsConnected() bool                     // O(V+E)
//	Stats() *GraphStats                    // O(V+E)
//
// Errors:
//
//	ErrInvalidNode    - node id outside [0, NodeCount).
//	ErrNegativeCount  - negative count passed to AddNodes.
//
// Determinism:
//
//	Nodes, Edges, Neighbors and Components all return sorted results, so
//	algorithms built on top of them never depend on map iteration order.
package core
