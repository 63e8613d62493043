// File: types.go
// Role: sentinel errors, DFS colours and options shared by the analyses.

package analysis

import (
	"context"
	"errors"
)

// Sentinel errors for analysis operations.
var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("analysis: graph is nil")

	// ErrUndirected is returned by TopologicalSort for undirected graphs.
	ErrUndirected = errors.New("analysis: topological sort requires a directed graph")

	// ErrCycleDetected is returned by TopologicalSort when g has a cycle.
	ErrCycleDetected = errors.New("analysis: cycle detected")

	// ErrUnreachable is returned by ShortestPath when no path exists.
	ErrUnreachable = errors.New("analysis: target unreachable")
)

// DFS colours.
const (
	White = iota // unvisited
	Gray         // on the recursion stack
	Black        // finished
)

// NoParent marks the BFS root and unreachable nodes; NoDepth marks
// unreachable nodes.
const (
	NoParent = -1
	NoDepth  = -1
)

// Option configures the cancellable analyses.
type Option func(*options)

type options struct {
	ctx context.Context
}

func defaultOptions() options {
	return options{ctx: context.Background()}
}

// WithContext sets a cancellation context. Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

func resolve(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
