// SPDX-License-Identifier: MIT
// Package: netalgo/builder
//
// impl_grid.go - Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1, cols ≥ 1 and rows·cols ≥ 2 (else ErrTooFewVertices).
//   • Vertices in row-major order, evenly spread over the canvas;
//     vertex (r,c) has index base + r·cols + c.
//   • 4-neighborhood: for each cell emit Right then Bottom where present.
//
// Edges: rows·(cols-1) + (rows-1)·cols.

package builder

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/netalgo/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that appends a rows×cols lattice.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d cols=%d < min=%d: %w", methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		if err := checkAppend(methodGrid, g, cfg, rows*cols, 2); err != nil {
			return err
		}

		base := g.VertexCount()
		at := func(r, c int) int { return base + r*cols + c }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				g.AddVertex(r3.Vec{X: spread(cfg.width, c, cols), Y: spread(cfg.height, r, rows), Z: midDepth(cfg, g.Dim)})
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					joinNew(g, cfg, at(r, c), at(r, c+1))
				}
				if r+1 < rows {
					joinNew(g, cfg, at(r, c), at(r+1, c))
				}
			}
		}

		return nil
	}
}
