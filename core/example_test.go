package core_test

import (
	"fmt"

	"github.com/katalvlaran/graphtutor/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Create an undirected graph with four nodes:
	g := core.NewGraph()
	_, _ = g.AddNodes(4)

	// 2) Connect three of them:
	_ = g.AddEdge(0, 2)
	_ = g.AddEdge(2, 1)

	// 3) Inspect neighbors and connectivity:
	nbs, _ := g.Neighbors(2)
	fmt.Println("Neighbors of 2:", nbs)
	fmt.Println("Components:", g.Components())
	fmt.Println("Connected?", g.IsConnected())

	// Output:
	// Neighbors of 2: [0 1]
	// Components: [[0 1 2] [3]]
	// Connected? false
}

// ExampleFromEdges builds a graph from an edge list and prints its summary.
func ExampleFromEdges() {
	g, _ := core.FromEdges([]core.Edge{{From: 0, To: 1}, {From: 0, To: 2}, {From: 1, To: 3}})
	st := g.Stats()
	fmt.Printf("V=%d E=%d connected=%v avg=%.1f\n", st.NodeCount, st.EdgeCount, st.Connected, st.AverageDegree)

	// Output:
	// V=4 E=3 connected=true avg=1.5
}
