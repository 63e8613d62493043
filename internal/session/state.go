package session

import (
	"github.com/katalvlaran/graphtutor/core"
	"github.com/katalvlaran/graphtutor/exercise"
	"github.com/katalvlaran/graphtutor/traversal"
)

// State is a JSON-ready view of the whole session.
type State struct {
	ID           string              `json:"id"`
	Algorithm    traversal.Algorithm `json:"algorithm"`
	Start        int                 `json:"start"`
	Graph        GraphView           `json:"graph"`
	Step         int                 `json:"step"`
	Stats        Stats               `json:"stats"`
	ExerciseMode bool                `json:"exerciseMode"`
	Exercise     *exercise.Exercise  `json:"exercise,omitempty"`
	Score        Score               `json:"score"`
}

// GraphView is the graph as rendered to clients.
type GraphView struct {
	Nodes []int            `json:"nodes"`
	Edges []core.Edge      `json:"edges"`
	Stats *core.GraphStats `json:"stats"`
}

// ViewGraph renders g for clients.
func ViewGraph(g *core.Graph) GraphView {
	return GraphView{Nodes: g.Nodes(), Edges: g.Edges(), Stats: g.Stats()}
}

// State snapshots the session.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := State{
		ID:           s.id,
		Algorithm:    s.alg,
		Start:        s.start,
		Graph:        ViewGraph(s.graph),
		Step:         s.cursor,
		Stats:        s.statsLocked(),
		ExerciseMode: s.exMode,
		Score:        Score{Attempts: s.attempts, Correct: s.solved},
	}
	if s.exMode {
		st.Exercise = s.current
	}

	return st
}
