// File: types.go
// Role: Edge, Graph, GraphOption, GraphStats, sentinel errors and NewGraph.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidNode indicates an operation referenced a node id outside [0, NodeCount).
	ErrInvalidNode = errors.New("core: invalid node")

	// ErrNegativeCount indicates a negative number of nodes was requested.
	ErrNegativeCount = errors.New("core: negative node count")
)

// Edge represents a connection between two nodes.
//
// For undirected graphs Edges() reports every edge once with From <= To.
// For directed graphs the pair is ordered From→To.
type Edge struct {
	// From is the source node id.
	From int `json:"from"`

	// To is the destination node id.
	To int `json:"to"`
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness for all edges
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// Graph is the core in-memory graph data structure.
//
// adjacency[u] holds the set of nodes reachable over one edge from u.
// Undirected edges are mirrored, so adjacency[v] also holds u.
// mu guards every field below it.
type Graph struct {
	mu sync.RWMutex

	directed bool

	nodeCount int
	adjacency []map[int]struct{}
	edgeCount int
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// GraphStats is a read-only summary of a graph (see Graph.Stats).
type GraphStats struct {
	NodeCount     int     `json:"nodeCount"`
	EdgeCount     int     `json:"edgeCount"`
	Directed      bool    `json:"directed"`
	Connected     bool    `json:"connected"`
	AverageDegree float64 `json:"averageDegree"`
}
