package exercise_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphtutor/exercise"
	"github.com/katalvlaran/graphtutor/traversal"
)

// TestVerify_RoundTrip feeds every generated answer back to Verify.
func TestVerify_RoundTrip(t *testing.T) {
	gen := exercise.NewGenerator(exercise.WithSeed(3))
	for i := 0; i < 25; i++ {
		for _, kind := range exercise.Kinds() {
			for _, alg := range algorithms {
				ex, err := gen.GenerateKind(kind, alg)
				require.NoError(t, err)
				ok, fb := exercise.Verify(ex, ex.Answer.Format())
				assert.True(t, ok, "%s/%s: %q → %s", kind, alg, ex.Answer.Format(), fb)
			}
		}
	}
}

func TestVerify_TraversalOrder(t *testing.T) {
	ex, err := exercise.NewGenerator().GenerateKind(exercise.TraversalOrder, traversal.DFS)
	require.NoError(t, err)

	tests := []struct {
		raw      string
		ok       bool
		feedback string
	}{
		{"0, 2, 6, 5, 1, 4, 3", true, "Your traversal order is correct!"},
		{"0,2,6,5,1,4,3", true, "Your traversal order is correct!"},
		{"0, 1, 3, 4, 2, 5, 6", false, "Not quite right. The correct order should be: [0, 2, 6, 5, 1, 4, 3]"},
		{"0, 2, 6", false, "Not quite right. The correct order should be: [0, 2, 6, 5, 1, 4, 3]"},
		{"zero, two", false, "Please enter your answer as a comma-separated list of node numbers (e.g., 0, 1, 2, 3)."},
		{"0,,2", false, "Please enter your answer as a comma-separated list of node numbers (e.g., 0, 1, 2, 3)."},
		{"", false, "Please enter your answer as a comma-separated list of node numbers (e.g., 0, 1, 2, 3)."},
	}
	for _, tc := range tests {
		ok, fb := exercise.Verify(ex, tc.raw)
		assert.Equal(t, tc.ok, ok, tc.raw)
		assert.Equal(t, tc.feedback, fb, tc.raw)
	}
}

func TestVerify_VisitedNodesAtStep_SetEquality(t *testing.T) {
	gen := exercise.NewGenerator(exercise.WithSeed(11))
	ex, err := gen.GenerateKind(exercise.VisitedNodesAtStep, traversal.BFS)
	require.NoError(t, err)
	want := []int(ex.Answer.(exercise.SetAnswer))

	reversed := make([]int, len(want))
	for i, v := range want {
		reversed[len(want)-1-i] = v
	}
	ok, _ := exercise.Verify(ex, exercise.OrderAnswer(reversed).Format())
	assert.True(t, ok, "order does not matter for sets")

	ok, fb := exercise.Verify(ex, "5")
	assert.False(t, ok)
	assert.Contains(t, fb, traversal.FormatNodes(want))

	dup := append([]int{want[0]}, want...)
	ok, fb = exercise.Verify(ex, exercise.OrderAnswer(dup).Format())
	assert.False(t, ok, "repeated ids are not collapsed into a set")
	assert.Equal(t, fmt.Sprintf("Node %d is listed more than once. List each visited node once.", want[0]), fb)

	ok, fb = exercise.Verify(ex, "a set")
	assert.False(t, ok)
	assert.Contains(t, fb, "comma-separated")
}

func TestVerify_NextNodeToVisit(t *testing.T) {
	ex, err := exercise.NewGenerator().GenerateKind(exercise.NextNodeToVisit, traversal.DFS)
	require.NoError(t, err)

	ok, fb := exercise.Verify(ex, "1")
	assert.True(t, ok)
	assert.Equal(t, "Correct! Node 1 will be visited next.", fb)

	ok, fb = exercise.Verify(ex, " 2 ")
	assert.False(t, ok)
	assert.Equal(t, "Not quite right. The next node to be visited would be 1.", fb)

	ok, fb = exercise.Verify(ex, "1, 2")
	assert.False(t, ok)
	assert.Equal(t, "Please enter your answer as a single node number (e.g., 3).", fb)
}

func TestVerify_Application(t *testing.T) {
	ex, err := exercise.NewGenerator().GenerateKind(exercise.ApplicationKnowledge, traversal.BFS)
	require.NoError(t, err)

	ok, fb := exercise.Verify(ex, "BFS finds the Shortest Path and is used in network analysis.")
	assert.True(t, ok)
	assert.Equal(t, "Your understanding of algorithm applications is correct!", fb)

	ok, fb = exercise.Verify(ex, "shortest path")
	assert.False(t, ok)
	assert.Equal(t, "You've identified one valid application. Can you think of another one?", fb)

	ok, fb = exercise.Verify(ex, "level order traversal and connected components")
	assert.True(t, ok, "hyphenated keywords match spaced wording")
	assert.Equal(t, "Your understanding of algorithm applications is correct!", fb)

	ok, _ = exercise.Verify(ex, "Level-Order   traversal,\nand CONNECTED\tcomponents")
	assert.True(t, ok)

	ok, _ = exercise.Verify(ex, "level_order traversal, shortest-path")
	assert.True(t, ok)

	ok, fb = exercise.Verify(ex, "sorting numbers")
	assert.False(t, ok)
	assert.Equal(t, "Try again. Some valid applications include: shortest path, connected components, level-order traversal.", fb)
}

func TestVerify_NoExercise(t *testing.T) {
	ok, fb := exercise.Verify(nil, "1")
	assert.False(t, ok)
	assert.NotEmpty(t, fb)
}

func TestParsers(t *testing.T) {
	ids, err := exercise.ParseNodeList(" 3 ,1,  2")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 2}, ids)

	_, err = exercise.ParseNodeList("1;2")
	assert.True(t, errors.Is(err, exercise.ErrMalformedAnswer))

	_, err = exercise.ParseNode("x")
	assert.ErrorIs(t, err, exercise.ErrMalformedAnswer)
}
