// Package traversal records depth-first and breadth-first search over a
// core.Graph as an eager, replayable sequence of state snapshots.
//
// What
//
//   - RunDFS / RunBFS / Run(g, start, alg) return []Snapshot:
//   - one seed snapshot (frontier = [start], nothing visited),
//   - one visit snapshot per node marked visited,
//   - one expand snapshot per frontier extension (listing the added nodes),
//   - one terminal snapshot.
//   - The frontier is a tagged variant (Stack or Queue) with a uniform
//     accessor, so callers never branch on the algorithm to read it.
//   - Helpers derive exercise ground truth from a run: VisitedAfter (visited
//     set after k visit events), FinalOrder, and Frontier.Next (the node a
//     discipline visits next from an arbitrary frontier).
//
// Disciplines
//
//	DFS pops from the end of the stack and silently skips nodes that were
//	pushed twice and are already visited. Unvisited neighbors are pushed so
//	the highest id lands on top; the expand description lists them in
//	descending order ("[2, 1]").
//
//	BFS dequeues from the front. Neighbors are taken in ascending order and
//	filtered against both the visited set and the queue, so a node is never
//	queued twice.
//
// Determinism
//
//	core.Graph.Neighbors returns sorted ids and no map is ever iterated, so
//	two runs over the same (graph, start) produce identical sequences.
//	Unreachable nodes are simply never visited.
//
// Eager materialization
//
//	Presentation layers seek randomly through a run (next, previous, jump),
//	and tutor graphs are small, so the full sequence is built up front.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O(V + E) traversal plus O(S·V) to copy S snapshots.
//   - Memory: O(S·V).
//
// Options
//
//   - WithContext(ctx)     cancellation, checked once per loop iteration.
//   - WithOnSnapshot(fn)   hook called after every snapshot; an error aborts.
//
// Errors
//
//   - ErrGraphNil           if g is nil.
//   - ErrUnknownAlgorithm   for anything other than DFS or BFS.
//   - core.ErrInvalidNode   (wrapped) if start is out of range.
//   - context errors        if ctx is done.
package traversal
