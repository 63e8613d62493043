// SPDX-License-Identifier: MIT
// Package: graphtutor/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Emits edges i→(i+1) mod n in ascending i; the last edge closes the ring.
//
// Complexity:
//   • Time: O(n) nodes + O(n) edges.
//   • Space: O(1) extra.

package builder

import (
	"github.com/katalvlaran/graphtutor/core"
)

// Cycle returns a Constructor that builds an n-node simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(methodCycle, n, MinCycleNodes); err != nil {
			return err
		}
		first, err := addBlock(g, methodCycle, n)
		if err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			if err = addEdge(g, methodCycle, first+i, first+(i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
