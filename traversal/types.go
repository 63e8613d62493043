// Package traversal defines algorithms, options and error definitions
// for the step recorder.
package traversal

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for traversal execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("traversal: graph is nil")

	// ErrUnknownAlgorithm is returned for algorithm names other than DFS/BFS.
	ErrUnknownAlgorithm = errors.New("traversal: unknown algorithm")
)

// Algorithm names a traversal discipline.
type Algorithm string

const (
	// DFS is depth-first search (stack discipline).
	DFS Algorithm = "DFS"
	// BFS is breadth-first search (queue discipline).
	BFS Algorithm = "BFS"
)

// String returns the short name ("DFS" or "BFS").
func (a Algorithm) String() string { return string(a) }

// Title returns the long name, e.g. "Depth-First Search".
func (a Algorithm) Title() string {
	switch a {
	case DFS:
		return "Depth-First Search"
	case BFS:
		return "Breadth-First Search"
	default:
		return string(a)
	}
}

// FrontierKind returns the container the algorithm keeps its frontier in.
func (a Algorithm) FrontierKind() FrontierKind {
	if a == BFS {
		return QueueKind
	}

	return StackKind
}

// Valid reports whether a is DFS or BFS.
func (a Algorithm) Valid() bool { return a == DFS || a == BFS }

// ParseAlgorithm accepts "DFS", "bfs", "Depth-First Search",
// "breadth_first" and similar spellings.
func ParseAlgorithm(s string) (Algorithm, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("-", " ", "_", " ").Replace(norm)
	norm = strings.Join(strings.Fields(norm), " ")

	switch norm {
	case "dfs", "depth first", "depth first search":
		return DFS, nil
	case "bfs", "breadth first", "breadth first search":
		return BFS, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Option configures a run via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize a run.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnSnapshot is called after each snapshot is appended, with its index.
	// If it returns an error, the run aborts and propagates that error.
	OnSnapshot func(index int, s Snapshot) error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - a no-op OnSnapshot hook.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		OnSnapshot: func(int, Snapshot) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnSnapshot registers a callback to run after every snapshot;
// returning an error from it stops the run.
func WithOnSnapshot(fn func(index int, s Snapshot) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSnapshot = fn
		}
	}
}
