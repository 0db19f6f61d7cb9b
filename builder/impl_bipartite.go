// SPDX-License-Identifier: MIT
// Package: netalgo/builder
//
// impl_bipartite.go - CompleteBipartite(m, n) constructor.
//
// Contract:
//   • m ≥ 1 and n ≥ 1 (else ErrTooFewVertices).
//   • Left part first (m vertices in a column at x = W/4), then the right
//     part (n vertices at x = 3W/4).
//   • Edges left[i]→right[j], i-major.

package builder

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/netalgo/core"
)

const (
	methodBipartite = "CompleteBipartite"
	minPartitionSz  = 1
)

// CompleteBipartite returns a Constructor that appends K_{m,n}.
func CompleteBipartite(m, n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if m < minPartitionSz || n < minPartitionSz {
			return fmt.Errorf("%s: m=%d n=%d < min=%d: %w", methodBipartite, m, n, minPartitionSz, ErrTooFewVertices)
		}
		if err := checkAppend(methodBipartite, g, cfg, m+n, 2); err != nil {
			return err
		}

		z := midDepth(cfg, g.Dim)
		left := g.VertexCount()
		for i := 0; i < m; i++ {
			g.AddVertex(r3.Vec{X: cfg.width / 4, Y: spread(cfg.height, i, m), Z: z})
		}
		right := g.VertexCount()
		for j := 0; j < n; j++ {
			g.AddVertex(r3.Vec{X: 3 * cfg.width / 4, Y: spread(cfg.height, j, n), Z: z})
		}
		for i := 0; i < m; i++ {
			for j := 0; j < n; j++ {
				joinNew(g, cfg, left+i, right+j)
			}
		}

		return nil
	}
}
