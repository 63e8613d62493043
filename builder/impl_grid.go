// SPDX-License-Identifier: MIT
// Package: graphtutor/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Cell (r,c) is node first + r*cols + c (row-major).
//   • For each cell emit Right then Bottom neighbor if present.
//
// Complexity:
//   • Time: O(rows*cols) nodes + O(rows*cols) edges.
//   • Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphtutor/core"
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}
		first, err := addBlock(g, methodGrid, rows*cols)
		if err != nil {
			return err
		}

		cell := func(r, c int) int { return first + r*cols + c }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err = addEdge(g, methodGrid, cell(r, c), cell(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err = addEdge(g, methodGrid, cell(r, c), cell(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
