// Package analysis answers structural questions about a core.Graph that a
// learner meets right after DFS and BFS: shortest paths by BFS levels, cycle
// detection and topological order by DFS colouring, and the adjacency
// matrix representation.
//
// What:
//
//   - Levels(g, start): BFS tree with depth and parent per node.
//   - ShortestPath(g, from, to): fewest-edges path from the BFS tree.
//   - FindCycle(g): one cycle, if any (directed: back edge; undirected:
//     non-tree edge; self-loops count).
//   - TopologicalSort(g, opts...): reverse DFS post-order of a directed
//     acyclic graph.
//   - AdjacencyMatrix(g): 0/1 matrix, row = from, column = to.
//   - Analyze(g, start): all of the above in one Report.
//
// Determinism:
//
//   - Every search scans nodes and neighbors in ascending id order, so
//     results are identical across runs.
//
// Complexity:
//
//   - Levels, ShortestPath, FindCycle, TopologicalSort: O(V + E).
//   - AdjacencyMatrix: O(V² + E).
package analysis
