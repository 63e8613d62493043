package traversal

import (
	"encoding/json"
)

// StepKind classifies the transition that produced a Snapshot.
type StepKind string

const (
	// StepSeed is the initial state: frontier holds only the start node.
	StepSeed StepKind = "seed"
	// StepVisit marks a node as visited.
	StepVisit StepKind = "visit"
	// StepExpand adds unvisited neighbors to the frontier.
	StepExpand StepKind = "expand"
	// StepDone is the terminal state after the frontier empties.
	StepDone StepKind = "done"
)

// Snapshot is an immutable record of algorithm state at one point in a run.
// All slices are private copies; the recorder never touches a snapshot after
// appending it.
//
// JSON shape (consumed by rendering):
//
//	{"kind":"visit","visited":[0,2],"frontier":[1],"frontierKind":"stack",
//	 "current":2,"explorationOrder":[0,2],"description":"..."}
type Snapshot struct {
	// Kind is the transition that produced this state.
	Kind StepKind
	// Visited lists visited nodes in visit order.
	Visited []int
	// Frontier is the stack or queue after the transition.
	Frontier Frontier
	// Current is the node under examination; nil for seed and done.
	Current *int
	// ExplorationOrder is the visit sequence so far. It equals Visited and is
	// kept separately so renderers can treat them independently.
	ExplorationOrder []int
	// Added lists the nodes an expand step put on the frontier, in the
	// order the description names them.
	Added []int
	// Description is a deterministic, human-readable account of the step.
	Description string
}

// CurrentNode returns the current node and whether there is one.
func (s Snapshot) CurrentNode() (int, bool) {
	if s.Current == nil {
		return 0, false
	}

	return *s.Current, true
}

// snapshotJSON flattens the frontier into the rendering shape.
type snapshotJSON struct {
	Kind             StepKind     `json:"kind"`
	Visited          []int        `json:"visited"`
	Frontier         []int        `json:"frontier"`
	FrontierKind     FrontierKind `json:"frontierKind"`
	Current          *int         `json:"current"`
	ExplorationOrder []int        `json:"explorationOrder"`
	Added            []int        `json:"added,omitempty"`
	Description      string       `json:"description"`
}

// MarshalJSON renders the flat shape with non-nil arrays.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	return json.Marshal(snapshotJSON{
		Kind:             s.Kind,
		Visited:          nonNil(s.Visited),
		Frontier:         s.Frontier.Items(),
		FrontierKind:     s.Frontier.Kind(),
		Current:          s.Current,
		ExplorationOrder: nonNil(s.ExplorationOrder),
		Added:            s.Added,
		Description:      s.Description,
	})
}

// UnmarshalJSON accepts the shape produced by MarshalJSON.
func (s *Snapshot) UnmarshalJSON(data []byte) error {
	var raw snapshotJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = Snapshot{
		Kind:             raw.Kind,
		Visited:          raw.Visited,
		Frontier:         NewFrontier(raw.FrontierKind, raw.Frontier...),
		Current:          raw.Current,
		ExplorationOrder: raw.ExplorationOrder,
		Added:            raw.Added,
		Description:      raw.Description,
	}

	return nil
}

func nonNil(ids []int) []int {
	if ids == nil {
		return []int{}
	}

	return ids
}

// VisitedAfter returns the visited set (in visit order) after k visit
// events of a run. k ≤ 0 yields an empty set; k beyond the number of visits
// yields the final visited set.
//
// Complexity: O(len(steps) + V).
func VisitedAfter(steps []Snapshot, k int) []int {
	if k <= 0 {
		return []int{}
	}
	var last []int
	visits := 0
	for _, s := range steps {
		if s.Kind != StepVisit {
			continue
		}
		visits++
		last = s.Visited
		if visits == k {
			break
		}
	}

	return append([]int{}, last...)
}

// FinalOrder returns the complete exploration order of a run (the
// exploration order of its last snapshot).
func FinalOrder(steps []Snapshot) []int {
	if len(steps) == 0 {
		return []int{}
	}

	return append([]int{}, steps[len(steps)-1].ExplorationOrder...)
}

// VisitCount returns how many visit events a run contains.
func VisitCount(steps []Snapshot) int {
	n := 0
	for _, s := range steps {
		if s.Kind == StepVisit {
			n++
		}
	}

	return n
}
