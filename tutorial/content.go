package tutorial

import "github.com/katalvlaran/graphtutor/traversal"

var algorithms = map[traversal.Algorithm]string{
	traversal.DFS: dfsText,
	traversal.BFS: bfsText,
}

var concepts = map[string]string{
	ConceptGraph: graphText,
	ConceptStack: stackText,
	ConceptQueue: queueText,
}

const dfsText = `## Depth-First Search (DFS)

DFS explores a graph by following one branch as far as it goes before
backtracking to the most recent node that still has unexplored neighbors.

### Key characteristics
- Keeps its frontier in a **stack** (LIFO: last in, first out)
- Goes deep before going wide
- Can be written recursively or with an explicit stack
- Typical uses:
    - Cycle detection
    - Topological sorting
    - Connected components
    - Maze solving

### Pseudocode

    DFS(graph, start):
        visited = empty set
        S = stack containing start
        while S is not empty:
            v = S.pop()
            if v not in visited:
                add v to visited
                for each neighbor u of v:
                    if u not in visited:
                        S.push(u)

### Complexity
O(V + E) time, where V is the number of vertices and E the number of edges.
`

const bfsText = `## Breadth-First Search (BFS)

BFS explores a graph level by level: every neighbor at the current depth is
visited before any node at the next depth.

### Key characteristics
- Keeps its frontier in a **queue** (FIFO: first in, first out)
- Goes wide before going deep
- Finds shortest paths (in edges) in unweighted graphs
- Typical uses:
    - Shortest paths
    - Connected components
    - Level-order traversal
    - Network analysis

### Pseudocode

    BFS(graph, start):
        visited = {start}
        Q = queue containing start
        while Q is not empty:
            v = Q.dequeue()
            for each neighbor u of v:
                if u not in visited:
                    add u to visited
                    Q.enqueue(u)

### Complexity
O(V + E) time, where V is the number of vertices and E the number of edges.
`

const graphText = `## Graphs

A graph is a set of vertices (nodes) together with a set of edges that
connect pairs of vertices.

### Kinds of graphs
- **Undirected**: edges have no direction
- **Directed**: every edge points from one vertex to another
- **Weighted**: edges carry a cost
- **Unweighted**: all edges are equal
- **Connected**: a path exists between every pair of vertices
- **Disconnected**: some vertex cannot be reached from another
- **Cyclic**: contains at least one cycle
- **Acyclic**: contains no cycle

### Representations
- **Adjacency matrix**: a 2D table where cell [i][j] marks an edge i→j
- **Adjacency list**: for every vertex, the list of its neighbors
`

const stackText = `## Stack

A stack is a linear data structure with Last In, First Out (LIFO) order.

### Operations
- **Push**: put an element on top
- **Pop**: remove the top element
- **Peek**: read the top element without removing it
- **IsEmpty**: check whether the stack holds anything

### Applications
- Function call management (the call stack)
- Expression evaluation
- Backtracking, including depth-first search
- Browser history and undo
`

const queueText = `## Queue

A queue is a linear data structure with First In, First Out (FIFO) order.

### Operations
- **Enqueue**: add an element at the back
- **Dequeue**: remove the element at the front
- **Front**: read the front element without removing it
- **IsEmpty**: check whether the queue holds anything

### Applications
- Task scheduling and print spooling
- Breadth-first search
- Message queues in distributed systems
- Serving requests to one shared resource in arrival order
`
