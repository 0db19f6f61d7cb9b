// SPDX-License-Identifier: MIT
// Package: netalgo/builder
//
// impl_star.go - Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Hub first, at the canvas center; n-1 leaves on the canvas circle.
//   • Spokes hub→leaf[i] in increasing leaf order.

package builder

import "github.com/katalvlaran/netalgo/core"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that appends a star with one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkAppend(methodStar, g, cfg, n, minStarNodes); err != nil {
			return err
		}

		hub := g.AddVertex(canvasCenter(cfg, g.Dim))
		for i := 0; i < n-1; i++ {
			leaf := g.AddVertex(ringPoint(cfg, g.Dim, i, n-1))
			joinNew(g, cfg, hub, leaf)
		}

		return nil
	}
}
