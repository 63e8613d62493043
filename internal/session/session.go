package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/graphtutor/analysis"
	"github.com/katalvlaran/graphtutor/builder"
	"github.com/katalvlaran/graphtutor/core"
	"github.com/katalvlaran/graphtutor/exercise"
	"github.com/katalvlaran/graphtutor/explain"
	"github.com/katalvlaran/graphtutor/internal/config"
	"github.com/katalvlaran/graphtutor/traversal"
)

// Sentinel errors for session operations.
var (
	// ErrStepOutOfRange is returned by Seek for indices outside [0, total).
	ErrStepOutOfRange = errors.New("session: step out of range")

	// ErrEmptyQuestion is returned by Ask for blank questions.
	ErrEmptyQuestion = errors.New("session: empty question")
)

// GraphRequest describes a replacement graph. Exactly one source is used,
// in this order: Edges, Preset, random.
// Every source is capped at the configured MaxNodes; a larger request
// fails with builder.ErrTooManyVertices and leaves the session unchanged.
type GraphRequest struct {
	// Nodes is the node count for random and preset graphs; 0 means the
	// configured default.
	Nodes int `json:"nodes,omitempty"`
	// Density overrides the configured edge probability of random graphs.
	Density *float64 `json:"density,omitempty"`
	// Directed builds a directed graph.
	Directed bool `json:"directed"`
	// Preset names a builder preset (see builder.PresetNames).
	Preset string `json:"preset,omitempty"`
	// Seed fixes the random graph; 0 seeds from the clock.
	Seed int64 `json:"seed,omitempty"`
	// Edges lists an explicit graph.
	Edges []core.Edge `json:"edges,omitempty"`
}

// Session is one learner's tutor state.
type Session struct {
	id       string
	defaults config.GraphConfig
	tutor    *explain.Tutor
	gen      *exercise.Generator

	mu       sync.Mutex
	graph    *core.Graph
	alg      traversal.Algorithm
	start    int
	steps    []traversal.Snapshot
	cursor   int
	history  []explain.Message
	exMode   bool
	current  *exercise.Exercise
	attempts int
	solved   int
}

// New creates a session with a random graph built from defaults.
// A nil tutor behaves as one without a provider.
func New(tutor *explain.Tutor, defaults config.GraphConfig, opts ...exercise.Option) (*Session, error) {
	if tutor == nil {
		tutor = explain.NewTutor(nil)
	}
	alg := defaults.Algorithm
	if !alg.Valid() {
		alg = traversal.DFS
	}
	s := &Session{
		id:       uuid.NewString(),
		defaults: defaults,
		tutor:    tutor,
		gen:      exercise.NewGenerator(opts...),
		alg:      alg,
	}

	g, err := s.build(GraphRequest{Nodes: defaults.Nodes, Directed: defaults.Directed, Seed: defaults.Seed})
	if err != nil {
		return nil, err
	}
	if err := s.replaceGraph(g, defaults.Start); err != nil {
		return nil, err
	}

	return s, nil
}

// ID identifies the session.
func (s *Session) ID() string { return s.id }

// Graph returns the current graph. Graphs are never mutated after they are
// installed.
func (s *Session) Graph() *core.Graph {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.graph
}

// Algorithm returns the selected algorithm.
func (s *Session) Algorithm() traversal.Algorithm {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.alg
}

// Start returns the selected start node.
func (s *Session) Start() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.start
}

// NewGraph replaces the graph, resets the start node to 0 and re-records
// the steps.
func (s *Session) NewGraph(req GraphRequest) (*core.Graph, error) {
	g, err := s.build(req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.replaceGraph(g, 0); err != nil {
		return nil, err
	}

	return g, nil
}

// maxNodes is the configured ceiling, or builder.DefaultMaxNodes when unset.
func (s *Session) maxNodes() int {
	if s.defaults.MaxNodes > 0 {
		return s.defaults.MaxNodes
	}

	return builder.DefaultMaxNodes
}

func (s *Session) build(req GraphRequest) (*core.Graph, error) {
	limit := s.maxNodes()
	if len(req.Edges) > 0 {
		for _, e := range req.Edges {
			if hi := max(e.From, e.To); hi >= limit {
				return nil, fmt.Errorf("session: edge (%d,%d) needs %d nodes, max %d: %w",
					e.From, e.To, hi+1, limit, builder.ErrTooManyVertices)
			}
		}

		return core.FromEdges(req.Edges, core.WithDirected(req.Directed))
	}

	if req.Nodes == 0 {
		req.Nodes = s.defaults.Nodes
	}
	opts := []builder.BuilderOption{builder.WithDirected(req.Directed), builder.WithMaxNodes(limit)}
	if req.Seed != 0 {
		opts = append(opts, builder.WithSeed(req.Seed))
	}
	if req.Preset != "" {
		return builder.Preset(req.Preset, req.Nodes, opts...)
	}

	density := s.defaults.Density
	if req.Density != nil {
		density = *req.Density
	}
	opts = append(opts, builder.WithDensity(density))

	return builder.NewRandom(req.Nodes, opts...)
}

// replaceGraph installs g with the given start node. Callers hold mu
// (or own s exclusively).
func (s *Session) replaceGraph(g *core.Graph, start int) error {
	steps, err := traversal.Run(g, start, s.alg)
	if err != nil {
		return err
	}
	s.graph, s.start, s.steps, s.cursor = g, start, steps, 0

	return nil
}

// SetAlgorithm selects alg and re-records the steps.
func (s *Session) SetAlgorithm(alg traversal.Algorithm) error {
	if !alg.Valid() {
		return fmt.Errorf("%w: %q", traversal.ErrUnknownAlgorithm, string(alg))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	steps, err := traversal.Run(s.graph, s.start, alg)
	if err != nil {
		return err
	}
	s.alg, s.steps, s.cursor = alg, steps, 0

	return nil
}

// SetStart selects the start node and re-records the steps. Out-of-range
// nodes fail with core.ErrInvalidNode and leave the session unchanged.
func (s *Session) SetStart(start int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	steps, err := traversal.Run(s.graph, start, s.alg)
	if err != nil {
		return err
	}
	s.start, s.steps, s.cursor = start, steps, 0

	return nil
}

// Analysis runs the structural analyses on the current graph from the
// current start node.
func (s *Session) Analysis(ctx context.Context) (*analysis.Report, error) {
	s.mu.Lock()
	g, start := s.graph, s.start
	s.mu.Unlock()

	return analysis.Analyze(g, start, analysis.WithContext(ctx))
}
