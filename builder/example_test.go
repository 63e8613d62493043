package builder_test

import (
	"fmt"

	"github.com/katalvlaran/graphtutor/builder"
)

// ExampleNewRandom builds a reproducible connected graph.
func ExampleNewRandom() {
	g, err := builder.NewRandom(7, builder.WithSeed(3), builder.WithDensity(0.3))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g.NodeCount(), g.IsConnected())

	// Output:
	// 7 true
}

// ExamplePreset shows the heap-ordered binary tree used by exercises.
func ExamplePreset() {
	g, _ := builder.Preset("binary-tree", 7)
	fmt.Println(g.Edges())

	// Output:
	// [{0 1} {0 2} {1 3} {1 4} {2 5} {2 6}]
}
