package traversal_test

import (
	"fmt"

	"github.com/katalvlaran/graphtutor/builder"
	"github.com/katalvlaran/graphtutor/traversal"
)

// ExampleRunDFS steps through depth-first search on a 7-node binary tree.
func ExampleRunDFS() {
	g, _ := builder.Preset("binary-tree", 7)
	steps, err := traversal.RunDFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, s := range steps[:4] {
		fmt.Println(s.Description, "|", s.Frontier)
	}
	fmt.Println(traversal.FinalOrder(steps))

	// Output:
	// Starting DFS from node 0. The stack contains the starting node. | Stack: [0]
	// Visiting node 0 and marking it as visited. | Stack: []
	// Adding unvisited neighbors of node 0 to the stack: [2, 1] | Stack: [1, 2]
	// Visiting node 2 and marking it as visited. | Stack: [1]
	// [0 2 6 5 1 4 3]
}

// ExampleRunBFS prints the level order of the same tree.
func ExampleRunBFS() {
	g, _ := builder.Preset("binary-tree", 7)
	steps, _ := traversal.RunBFS(g, 0)
	fmt.Println(traversal.FinalOrder(steps), len(steps))

	// Output:
	// [0 1 2 3 4 5 6] 12
}

// ExampleFrontier_Next answers "which node is visited next?" for a synthetic state.
func ExampleFrontier_Next() {
	next, _ := traversal.Queue(3, 4).Next([]int{0, 1, 2})
	fmt.Println(next)

	// Output:
	// 3
}
