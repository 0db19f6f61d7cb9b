// SPDX-License-Identifier: MIT
// Package: netalgo/builder
//
// impl_wheel.go - Wheel(n) constructor.
//
// Contract:
//   • n ≥ 4 (hub plus a rim cycle of at least 3), else ErrTooFewVertices.
//   • Star(n) first: hub at the center, spokes to every rim vertex.
//   • Then the rim cycle rim[i]→rim[(i+1)%(n-1)].
//
// Degrees: hub n-1, every rim vertex 3. Edges: 2(n-1).

package builder

import (
	"fmt"

	"github.com/katalvlaran/netalgo/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that appends the wheel W_n.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}

		hub := g.VertexCount()
		if err := Star(n)(g, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodWheel, err)
		}
		rim := n - 1
		for i := 0; i < rim; i++ {
			joinNew(g, cfg, hub+1+i, hub+1+(i+1)%rim)
		}

		return nil
	}
}
