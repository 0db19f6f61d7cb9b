// SPDX-License-Identifier: MIT
// Package: netalgo/builder
//
// impl_path.go - Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Vertices evenly spaced left to right on the horizontal midline.
//   • Edges i→i+1 in increasing i.

package builder

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/netalgo/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that appends the path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkAppend(methodPath, g, cfg, n, minPathNodes); err != nil {
			return err
		}

		base := g.VertexCount()
		for i := 0; i < n; i++ {
			g.AddVertex(r3.Vec{X: spread(cfg.width, i, n), Y: cfg.height / 2, Z: midDepth(cfg, g.Dim)})
		}
		for i := 0; i+1 < n; i++ {
			joinNew(g, cfg, base+i, base+i+1)
		}

		return nil
	}
}
