package exercise

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/graphtutor/core"
	"github.com/katalvlaran/graphtutor/traversal"
)

// Fixed exercise graphs.
var (
	// orderEdges is a 7-node binary tree rooted at 0.
	orderEdges = []core.Edge{
		{From: 0, To: 1}, {From: 0, To: 2}, {From: 1, To: 3},
		{From: 1, To: 4}, {From: 2, To: 5}, {From: 2, To: 6},
	}
	// stateEdges is a 6-node graph with two paths from 0 to 5.
	stateEdges = []core.Edge{
		{From: 0, To: 1}, {From: 0, To: 2}, {From: 1, To: 3},
		{From: 2, To: 4}, {From: 3, To: 5}, {From: 4, To: 5},
	}
)

const (
	exerciseStart = 0
	minStep       = 2
	maxStep       = 4
)

// syntheticState is the mid-traversal state of NextNodeToVisit exercises.
type syntheticState struct {
	visited  []int
	frontier traversal.Frontier
}

// nextNodeStates are states reachable on stateEdges from node 0.
var nextNodeStates = map[traversal.Algorithm]syntheticState{
	traversal.DFS: {visited: []int{0, 2, 4}, frontier: traversal.Stack(1)},
	traversal.BFS: {visited: []int{0, 1, 2}, frontier: traversal.Queue(3, 4)},
}

// applications are the canonical application domains per algorithm.
var applications = map[traversal.Algorithm][]string{
	traversal.DFS: {"cycle detection", "topological sort", "connected components", "maze solving"},
	traversal.BFS: {"shortest path", "connected components", "level-order traversal", "network analysis"},
}

// Generator builds exercises. It is safe for concurrent use.
type Generator struct {
	mu       sync.Mutex
	rng      *rand.Rand
	selector func(r *rand.Rand) Kind
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed makes kind selection and step counts reproducible.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("exercise: WithRand(nil)")
	}
	return func(g *Generator) {
		g.rng = r
	}
}

// WithKind forces every generated exercise to be of kind k.
func WithKind(k Kind) Option {
	return WithKindSelector(func(*rand.Rand) Kind { return k })
}

// WithKindSelector replaces the uniform kind selection. Panics on nil.
func WithKindSelector(fn func(r *rand.Rand) Kind) Option {
	if fn == nil {
		panic("exercise: WithKindSelector(nil)")
	}
	return func(g *Generator) {
		g.selector = fn
	}
}

// uniformKind picks one of Kinds() uniformly.
func uniformKind(r *rand.Rand) Kind {
	kinds := Kinds()

	return kinds[r.Intn(len(kinds))]
}

// NewGenerator returns a Generator seeded from the clock unless WithSeed or
// WithRand is given.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{selector: uniformKind}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return g
}

// Generate selects a kind and builds an exercise for alg.
func (g *Generator) Generate(alg traversal.Algorithm) (*Exercise, error) {
	g.mu.Lock()
	kind := g.selector(g.rng)
	g.mu.Unlock()

	return g.GenerateKind(kind, alg)
}

// GenerateKind builds an exercise of the given kind for alg.
//
// Errors:
//   - ErrUnknownKind for kinds outside Kinds().
//   - traversal.ErrUnknownAlgorithm for algorithms other than DFS/BFS.
func (g *Generator) GenerateKind(kind Kind, alg traversal.Algorithm) (*Exercise, error) {
	if !alg.Valid() {
		return nil, fmt.Errorf("exercise: %w: %q", traversal.ErrUnknownAlgorithm, string(alg))
	}

	var (
		ex  *Exercise
		err error
	)
	switch kind {
	case TraversalOrder:
		ex, err = traversalOrder(alg)
	case VisitedNodesAtStep:
		g.mu.Lock()
		k := minStep + g.rng.Intn(maxStep-minStep+1)
		g.mu.Unlock()
		ex, err = visitedAtStep(alg, k)
	case NextNodeToVisit:
		ex, err = nextNode(alg)
	case ApplicationKnowledge:
		ex = application(alg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, string(kind))
	}
	if err != nil {
		return nil, err
	}

	ex.ID = uuid.NewString()
	ex.Kind = kind
	ex.Algorithm = alg
	ex.InputHint = kind.InputHint()

	return ex, nil
}

// traversalOrder asks for the full exploration order on the tree.
func traversalOrder(alg traversal.Algorithm) (*Exercise, error) {
	gr, err := core.FromEdges(orderEdges)
	if err != nil {
		return nil, fmt.Errorf("exercise: %s graph: %w", TraversalOrder, err)
	}
	steps, err := traversal.Run(gr, exerciseStart, alg)
	if err != nil {
		return nil, fmt.Errorf("exercise: %s ground truth: %w", TraversalOrder, err)
	}

	return &Exercise{
		Graph: gr,
		Edges: gr.Edges(),
		Start: exerciseStart,
		Prompt: fmt.Sprintf("Consider the following graph with edges: %s\n\n"+
			"Starting from node %d, list the order in which nodes would be visited using %s.\n\n"+
			"Enter your answer as a comma-separated list of node numbers.",
			formatEdges(orderEdges), exerciseStart, alg),
		Answer: OrderAnswer(traversal.FinalOrder(steps)),
	}, nil
}

// visitedAtStep asks for the visited set after k visit events.
func visitedAtStep(alg traversal.Algorithm, k int) (*Exercise, error) {
	gr, err := core.FromEdges(stateEdges)
	if err != nil {
		return nil, fmt.Errorf("exercise: %s graph: %w", VisitedNodesAtStep, err)
	}
	steps, err := traversal.Run(gr, exerciseStart, alg)
	if err != nil {
		return nil, fmt.Errorf("exercise: %s ground truth: %w", VisitedNodesAtStep, err)
	}

	return &Exercise{
		Graph: gr,
		Edges: gr.Edges(),
		Start: exerciseStart,
		Step:  k,
		Prompt: fmt.Sprintf("Consider the following graph with edges: %s\n\n"+
			"When running %s starting from node %d, which nodes would be marked as visited after %d nodes have been visited?\n\n"+
			"Enter your answer as a comma-separated list of node numbers.",
			formatEdges(stateEdges), alg, exerciseStart, k),
		Answer: SetAnswer(traversal.VisitedAfter(steps, k)),
	}, nil
}

// nextNode asks which node the discipline visits next from a synthetic state.
func nextNode(alg traversal.Algorithm) (*Exercise, error) {
	gr, err := core.FromEdges(stateEdges)
	if err != nil {
		return nil, fmt.Errorf("exercise: %s graph: %w", NextNodeToVisit, err)
	}
	st := nextNodeStates[alg]
	next, ok := st.frontier.Next(st.visited)
	if !ok {
		return nil, fmt.Errorf("exercise: %s: %s has no unvisited node", NextNodeToVisit, st.frontier)
	}
	frontier := st.frontier

	return &Exercise{
		Graph:    gr,
		Edges:    gr.Edges(),
		Start:    exerciseStart,
		Visited:  append([]int{}, st.visited...),
		Frontier: &frontier,
		Prompt: fmt.Sprintf("Consider the following graph with edges: %s\n\n"+
			"When running %s starting from node %d, assume the current state is:\n"+
			"- Visited nodes: %s\n- %s\n\n"+
			"Which node will be visited next?\n\n"+
			"Enter your answer as a single node number.",
			formatEdges(stateEdges), alg, exerciseStart, traversal.FormatNodes(st.visited), st.frontier),
		Answer: NodeAnswer(next),
	}, nil
}

// application asks for applications of alg; there is no graph.
func application(alg traversal.Algorithm) *Exercise {
	return &Exercise{
		Prompt: fmt.Sprintf("List at least two applications where %s (%s) is particularly useful.\n\n"+
			"Explain briefly why %s is well-suited for these applications.",
			alg.Title(), alg, alg),
		Answer: KeywordAnswer(append([]string{}, applications[alg]...)),
	}
}

// formatEdges renders "[(0, 1), (0, 2)]".
func formatEdges(edges []core.Edge) string {
	parts := make([]string, len(edges))
	for i, e := range edges {
		parts[i] = fmt.Sprintf("(%d, %d)", e.From, e.To)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
