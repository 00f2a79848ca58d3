// SPDX-License-Identifier: MIT
//
// impl_grid.go - Grid(rows, cols): orthogonal 4-neighborhood mesh.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Node of cell (r, c) is r*cols + c (row-major).
//   • For each cell in row-major order, emits the Right link, then the Bottom link.
//
// Complexity:
//   • Time: O(rows*cols).

package builder

import (
	"fmt"

	"github.com/katalvlaran/teflow/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// GridNode returns the node identifier of cell (r, c) in a grid with cols columns.
func GridNode(r, c, cols int) int { return r*cols + c }

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		if err := requireNodes(methodGrid, g, rows*cols); err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridNode(r, c, cols)
				if c+1 < cols {
					if err := addLink(methodGrid, g, cfg, u, GridNode(r, c+1, cols)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addLink(methodGrid, g, cfg, u, GridNode(r+1, c, cols)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
