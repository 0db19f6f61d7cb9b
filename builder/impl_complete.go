// SPDX-License-Identifier: MIT
// Package: netalgo/builder
//
// impl_complete.go - Complete(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Vertices equally spaced on the canvas circle.
//   • Each unordered pair {i,j}, i<j, emitted once in lexicographic order.
//
// Complexity: O(n²).

package builder

import "github.com/katalvlaran/netalgo/core"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 2
)

// Complete returns a Constructor that appends the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkAppend(methodComplete, g, cfg, n, minCompleteNodes); err != nil {
			return err
		}

		base := g.VertexCount()
		for i := 0; i < n; i++ {
			g.AddVertex(ringPoint(cfg, g.Dim, i, n))
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				joinNew(g, cfg, base+i, base+j)
			}
		}

		return nil
	}
}
