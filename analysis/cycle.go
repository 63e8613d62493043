// File: cycle.go
// Role: cycle detection by three-colour DFS.

package analysis

import (
	"github.com/katalvlaran/graphtutor/core"
)

// FindCycle returns one cycle of g as a closed walk [v0, v1, ..., v0],
// or (nil, false) when g is acyclic.
//
// Implementation:
//   - Stage 1: DFS from every White node in ascending order.
//   - Stage 2: An edge to a Gray node closes a cycle; the path stack
//     from that node to the current one is the cycle.
//   - Undirected graphs skip the edge back to the DFS parent, so a single
//     edge is never reported as a 2-cycle. Self-loops are cycles of length 1.
func FindCycle(g *core.Graph) ([]int, bool) {
	if g == nil {
		return nil, false
	}
	f := &cycleFinder{
		g:     g,
		state: make([]int, g.NodeCount()),
	}
	for _, v := range g.Nodes() {
		if f.state[v] == White && f.visit(v, NoParent) {
			return f.cycle, true
		}
	}

	return nil, false
}

type cycleFinder struct {
	g     *core.Graph
	state []int
	path  []int
	cycle []int
}

func (f *cycleFinder) visit(id, parent int) bool {
	f.state[id] = Gray
	f.path = append(f.path, id)

	nbrs, _ := f.g.Neighbors(id) // id comes from g.Nodes()
	for _, nbr := range nbrs {
		if !f.g.Directed() && nbr == parent && nbr != id {
			continue
		}
		switch f.state[nbr] {
		case White:
			if f.visit(nbr, id) {
				return true
			}
		case Gray:
			f.cycle = closeCycle(f.path, nbr)
			return true
		}
	}

	f.path = f.path[:len(f.path)-1]
	f.state[id] = Black

	return false
}

// closeCycle extracts path[from:] and closes it with from.
func closeCycle(path []int, from int) []int {
	idx := len(path) - 1
	for idx >= 0 && path[idx] != from {
		idx--
	}
	seq := append([]int(nil), path[idx:]...)

	return append(seq, from)
}
