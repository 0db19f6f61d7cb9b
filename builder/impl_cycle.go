// SPDX-License-Identifier: MIT
// Package: netalgo/builder
//
// impl_cycle.go - HamiltonianCycle() constructor.
//
// Contract:
//   • Runs on the vertices already in g; needs at least 3 and no edges.
//   • Draws a random permutation p and emits edges p[i]→p[(i+1)%V] in that
//     order, so the edge list itself walks the tour and every degree is 2.
//
// Complexity: O(V).

package builder

import (
	"fmt"

	"github.com/katalvlaran/netalgo/core"
)

const (
	methodCycle   = "HamiltonianCycle"
	minCycleNodes = 3
)

// HamiltonianCycle returns a Constructor that joins all vertices in one
// random cycle.
func HamiltonianCycle() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.VertexCount()
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if g.EdgeCount() > 0 {
			return fmt.Errorf("%s: graph already has %d edges: %w", methodCycle, g.EdgeCount(), ErrConstructFailed)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodCycle, ErrNeedRandSource)
		}

		perm := cfg.rng.Perm(n)
		for i := 0; i < n; i++ {
			g.AppendEdgeUnchecked(perm[i], perm[(i+1)%n], core.WithEdgeWeight(cfg.weightFn(cfg.rng)))
		}

		return nil
	}
}
