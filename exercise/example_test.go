package exercise_test

import (
	"fmt"

	"github.com/katalvlaran/graphtutor/exercise"
	"github.com/katalvlaran/graphtutor/traversal"
)

// ExampleVerify checks two answers to a next-node exercise.
func ExampleVerify() {
	gen := exercise.NewGenerator(exercise.WithKind(exercise.NextNodeToVisit))
	ex, _ := gen.Generate(traversal.DFS)

	fmt.Println(exercise.Verify(ex, "1"))
	fmt.Println(exercise.Verify(ex, "2"))

	// Output:
	// true Correct! Node 1 will be visited next.
	// false Not quite right. The next node to be visited would be 1.
}
