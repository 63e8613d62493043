// SPDX-License-Identifier: MIT
// Package core_test verifies node/edge lifecycle, neighbor ordering,
// weak connectivity and concurrent safety of core.Graph.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphtutor/core"
)

// newUndirected builds an undirected graph with n nodes and the given edges.
func newUndirected(t *testing.T, n int, edges ...core.Edge) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	_, err := g.AddNodes(n)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.From, e.To))
	}

	return g
}

func TestAddNodes_ContiguousIDs(t *testing.T) {
	g := core.NewGraph()

	first, err := g.AddNodes(3)
	require.NoError(t, err)
	assert.Equal(t, 0, first)

	first, err = g.AddNodes(2)
	require.NoError(t, err)
	assert.Equal(t, 3, first)

	assert.Equal(t, 5, g.NodeCount())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, g.Nodes())
	assert.True(t, g.HasNode(4))
	assert.False(t, g.HasNode(5))
	assert.False(t, g.HasNode(-1))

	_, err = g.AddNodes(-1)
	assert.ErrorIs(t, err, core.ErrNegativeCount)
}

func TestAddEdge_InvalidNode(t *testing.T) {
	g := newUndirected(t, 2)

	err := g.AddEdge(0, 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInvalidNode)

	err = g.AddEdge(-1, 0)
	assert.ErrorIs(t, err, core.ErrInvalidNode)
	assert.Equal(t, 0, g.EdgeCount())
}

func TestAddEdge_UndirectedMirrorAndDuplicates(t *testing.T) {
	g := newUndirected(t, 3, core.Edge{From: 0, To: 1}, core.Edge{From: 1, To: 0}, core.Edge{From: 2, To: 1})

	assert.Equal(t, 2, g.EdgeCount(), "duplicate (1,0) must be ignored")
	assert.True(t, g.HasEdge(1, 0))
	assert.True(t, g.HasEdge(0, 1))
	assert.False(t, g.HasEdge(0, 2))
	assert.False(t, g.HasEdge(0, 9))
	assert.Equal(t, []core.Edge{{From: 0, To: 1}, {From: 1, To: 2}}, g.Edges())
}

func TestAddEdge_Directed(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, err := g.AddNodes(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(2, 0))
	require.NoError(t, g.AddEdge(0, 1))

	assert.True(t, g.Directed())
	assert.True(t, g.HasEdge(2, 0))
	assert.False(t, g.HasEdge(0, 2))
	assert.Equal(t, []core.Edge{{From: 0, To: 1}, {From: 2, To: 0}}, g.Edges())

	nbs, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, nbs, "directed neighbors are outgoing only")
}

func TestAddEdge_SelfLoop(t *testing.T) {
	g := newUndirected(t, 2, core.Edge{From: 1, To: 1})

	nbs, err := g.Neighbors(1)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, nbs)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestNeighbors_SortedAscending(t *testing.T) {
	g := newUndirected(t, 5,
		core.Edge{From: 2, To: 4}, core.Edge{From: 2, To: 0},
		core.Edge{From: 3, To: 2}, core.Edge{From: 2, To: 1})

	nbs, err := g.Neighbors(2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3, 4}, nbs)

	deg, err := g.Degree(2)
	require.NoError(t, err)
	assert.Equal(t, 4, deg)

	_, err = g.Neighbors(5)
	assert.ErrorIs(t, err, core.ErrInvalidNode)
	_, err = g.Degree(-3)
	assert.ErrorIs(t, err, core.ErrInvalidNode)
}

func TestComponents(t *testing.T) {
	tests := []struct {
		name      string
		n         int
		edges     []core.Edge
		directed  bool
		want      [][]int
		connected bool
	}{
		{name: "empty", n: 0, want: nil, connected: false},
		{name: "single", n: 1, want: [][]int{{0}}, connected: true},
		{
			name:  "two islands",
			n:     5,
			edges: []core.Edge{{From: 0, To: 3}, {From: 1, To: 4}},
			want:  [][]int{{0, 3}, {1, 4}, {2}},
		},
		{
			name:      "directed weakly connected",
			n:         3,
			edges:     []core.Edge{{From: 1, To: 0}, {From: 1, To: 2}},
			directed:  true,
			want:      [][]int{{0, 1, 2}},
			connected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := core.NewGraph(core.WithDirected(tc.directed))
			_, err := g.AddNodes(tc.n)
			require.NoError(t, err)
			for _, e := range tc.edges {
				require.NoError(t, g.AddEdge(e.From, e.To))
			}

			assert.Equal(t, tc.want, g.Components())
			assert.Equal(t, tc.connected, g.IsConnected())
		})
	}
}

func TestFromEdges(t *testing.T) {
	g, err := core.FromEdges([]core.Edge{{From: 0, To: 1}, {From: 3, To: 1}})
	require.NoError(t, err)
	assert.Equal(t, 4, g.NodeCount(), "node 2 exists but is isolated")
	assert.False(t, g.IsConnected())

	_, err = core.FromEdges([]core.Edge{{From: -1, To: 0}})
	assert.ErrorIs(t, err, core.ErrInvalidNode)

	empty, err := core.FromEdges(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.NodeCount())
}

func TestStats(t *testing.T) {
	g := newUndirected(t, 4,
		core.Edge{From: 0, To: 1}, core.Edge{From: 1, To: 2}, core.Edge{From: 2, To: 3})

	st := g.Stats()
	assert.Equal(t, &core.GraphStats{
		NodeCount:     4,
		EdgeCount:     3,
		Directed:      false,
		Connected:     true,
		AverageDegree: 1.5,
	}, st)

	assert.Zero(t, core.NewGraph().Stats().AverageDegree)
}

// TestConcurrentAddEdge ensures concurrent AddEdge calls are race-free and
// every edge is recorded exactly once.
func TestConcurrentAddEdge(t *testing.T) {
	const num = 200
	g := newUndirected(t, num+1)

	var wg sync.WaitGroup
	wg.Add(num)
	for i := 1; i <= num; i++ {
		go func(id int) {
			defer wg.Done()
			assert.NoError(t, g.AddEdge(0, id))
			_, _ = g.Neighbors(0)
		}(i)
	}
	wg.Wait()

	nbs, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Len(t, nbs, num)
	assert.True(t, g.IsConnected())
}
