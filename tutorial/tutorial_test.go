package tutorial_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphtutor/traversal"
	"github.com/katalvlaran/graphtutor/tutorial"
)

func TestAlgorithm(t *testing.T) {
	tests := []struct {
		alg      traversal.Algorithm
		heading  string
		frontier string
	}{
		{traversal.DFS, "## Depth-First Search (DFS)", "**stack**"},
		{traversal.BFS, "## Breadth-First Search (BFS)", "**queue**"},
	}
	for _, tt := range tests {
		t.Run(tt.alg.String(), func(t *testing.T) {
			text, err := tutorial.Algorithm(tt.alg)
			require.NoError(t, err)
			assert.Contains(t, text, tt.heading)
			assert.Contains(t, text, tt.frontier)
			assert.Contains(t, text, "O(V + E)")
		})
	}

	_, err := tutorial.Algorithm(traversal.Algorithm("Dijkstra"))
	assert.ErrorIs(t, err, traversal.ErrUnknownAlgorithm)
}

func TestConcept(t *testing.T) {
	assert.Equal(t, []string{"graph", "queue", "stack"}, tutorial.Concepts())

	for _, name := range tutorial.Concepts() {
		text, err := tutorial.Concept(name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, text)
	}

	text, err := tutorial.Concept(" Stack ")
	require.NoError(t, err)
	assert.Contains(t, text, "LIFO")

	_, err = tutorial.Concept("heap")
	assert.ErrorIs(t, err, tutorial.ErrUnknownConcept)
}
