package traversal

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/graphtutor/core"
)

// walker encapsulates mutable run state. Snapshots are built from copies of
// these fields, never from the fields themselves.
type walker struct {
	graph    *core.Graph
	alg      Algorithm
	opts     Options
	frontier Frontier
	visited  mapset.Set[int]
	order    []int
	steps    []Snapshot
}

// RunDFS records depth-first search on g from start.
func RunDFS(g *core.Graph, start int, opts ...Option) ([]Snapshot, error) {
	return Run(g, start, DFS, opts...)
}

// RunBFS records breadth-first search on g from start.
func RunBFS(g *core.Graph, start int, opts ...Option) ([]Snapshot, error) {
	return Run(g, start, BFS, opts...)
}

// Run records alg on g from start and returns the full snapshot sequence.
//
// Implementation:
//   - Stage 1: Validate graph, algorithm and start node.
//   - Stage 2: Seed the frontier with start and emit the seed snapshot.
//   - Stage 3: Loop: take the next frontier item, skip it if already visited,
//     otherwise visit it and expand its unvisited neighbors.
//   - Stage 4: Emit the terminal snapshot.
//
// Returns ErrGraphNil, ErrUnknownAlgorithm or a wrapped core.ErrInvalidNode
// for invalid input, ctx.Err() on cancellation, or a wrapped hook error.
// On error the partial sequence is discarded.
func Run(g *core.Graph, start int, alg Algorithm, opts ...Option) ([]Snapshot, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !alg.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(alg))
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%s: start node %d not in [0,%d): %w", alg, start, g.NodeCount(), core.ErrInvalidNode)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.NodeCount()
	w := &walker{
		graph:    g,
		alg:      alg,
		opts:     o,
		frontier: NewFrontier(alg.FrontierKind(), start),
		visited:  mapset.NewThreadUnsafeSet[int](),
		order:    make([]int, 0, n),
		steps:    make([]Snapshot, 0, 3*n+2),
	}

	if err := w.emit(StepSeed, nil, nil, fmt.Sprintf(
		"Starting %s from node %d. The %s contains the starting node.",
		alg, start, alg.FrontierKind())); err != nil {
		return nil, err
	}
	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.steps, nil
}

// loop processes the frontier until empty, error, or cancellation.
func (w *walker) loop() error {
	for w.frontier.Len() > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		current := w.frontier.take()
		if w.visited.Contains(current) {
			continue
		}
		if err := w.visit(current); err != nil {
			return err
		}
		if err := w.expand(current); err != nil {
			return err
		}
	}

	return w.emit(StepDone, nil, nil, fmt.Sprintf(
		"%s completed. All reachable nodes have been visited.", w.alg))
}

// visit marks id visited, appends it to the exploration order and emits a snapshot.
func (w *walker) visit(id int) error {
	w.visited.Add(id)
	w.order = append(w.order, id)

	return w.emit(StepVisit, &id, nil, fmt.Sprintf("Visiting node %d and marking it as visited.", id))
}

// expand adds id's unvisited neighbors to the frontier per discipline and
// emits a snapshot when anything was added.
//
// DFS: neighbors descending, filtered to unvisited; pushed so the highest id
// is on top. BFS: neighbors ascending, filtered to neither visited nor
// queued; appended to the tail.
func (w *walker) expand(id int) error {
	nbs, err := w.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("%s: Neighbors(%d): %w", w.alg, id, err)
	}

	var added []int
	if w.alg == DFS {
		for i := len(nbs) - 1; i >= 0; i-- {
			if !w.visited.Contains(nbs[i]) {
				added = append(added, nbs[i])
			}
		}
		if len(added) == 0 {
			return nil
		}
		for i := len(added) - 1; i >= 0; i-- {
			w.frontier.push(added[i])
		}
	} else {
		for _, v := range nbs {
			if !w.visited.Contains(v) && !w.frontier.Contains(v) {
				added = append(added, v)
			}
		}
		if len(added) == 0 {
			return nil
		}
		w.frontier.push(added...)
	}

	return w.emit(StepExpand, &id, added, fmt.Sprintf(
		"Adding unvisited neighbors of node %d to the %s: %s",
		id, w.frontier.Kind(), FormatNodes(added)))
}

// emit appends a snapshot built from copies of the walker state and runs the hook.
func (w *walker) emit(kind StepKind, current *int, added []int, desc string) error {
	s := Snapshot{
		Kind:             kind,
		Visited:          append([]int{}, w.order...),
		Frontier:         NewFrontier(w.frontier.Kind(), w.frontier.items...),
		ExplorationOrder: append([]int{}, w.order...),
		Description:      desc,
	}
	if current != nil {
		c := *current
		s.Current = &c
	}
	if added != nil {
		s.Added = append([]int{}, added...)
	}

	w.steps = append(w.steps, s)
	if err := w.opts.OnSnapshot(len(w.steps)-1, s); err != nil {
		return fmt.Errorf("traversal: OnSnapshot at step %d: %w", len(w.steps)-1, err)
	}

	return nil
}
