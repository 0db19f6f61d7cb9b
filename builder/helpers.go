// SPDX-License-Identifier: MIT
// Package: netalgo/builder
//
// helpers.go - shared placement and validation for the deterministic
// topology constructors (Complete, Star, Wheel, Path, Grid, CompleteBipartite).
//
// Those constructors append their own vertices after any already in g and
// never draw positions from the RNG; only edge weights go through
// cfg.weightFn. In 3D every vertex sits on the mid-depth plane Z = D/2.

package builder

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/netalgo/core"
)

// checkAppend validates adding n vertices with lower bound lo to g.
func checkAppend(method string, g *core.Graph, cfg builderConfig, n, lo int) error {
	if n < lo {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, lo, ErrTooFewVertices)
	}
	if total := g.VertexCount() + n; total > MaxVertices {
		return fmt.Errorf("%s: %d vertices > max=%d: %w", method, total, MaxVertices, ErrTooManyVertices)
	}

	return validateCanvas(method, cfg, g.Dim)
}

// midDepth is the Z coordinate of deterministic placements.
func midDepth(cfg builderConfig, dim int) float64 {
	if dim == core.Dim3 {
		return cfg.depth / 2
	}

	return 0
}

// canvasCenter returns the middle of the canvas.
func canvasCenter(cfg builderConfig, dim int) r3.Vec {
	return r3.Vec{X: cfg.width / 2, Y: cfg.height / 2, Z: midDepth(cfg, dim)}
}

// ringPoint returns point i of n equally spaced points on the circle of
// radius circleFill*min(W,H)/2 around the canvas center, counter-clockwise
// from angle 0.
func ringPoint(cfg builderConfig, dim, i, n int) r3.Vec {
	radius := circleFill * math.Min(cfg.width, cfg.height) / 2
	phi := 2 * math.Pi * float64(i) / float64(n)

	return r3.Add(canvasCenter(cfg, dim), r3.Vec{X: radius * math.Cos(phi), Y: radius * math.Sin(phi)})
}

// spread returns position i of n evenly spaced values across [margin, extent-margin];
// a single value sits in the middle.
func spread(extent float64, i, n int) float64 {
	if n == 1 {
		return extent / 2
	}

	return canvasMargin + float64(i)*(extent-2*canvasMargin)/float64(n-1)
}

// joinNew appends edge (u,v) between vertices this constructor created, so
// no duplicate check is needed.
func joinNew(g *core.Graph, cfg builderConfig, u, v int) {
	g.AppendEdgeUnchecked(u, v, core.WithEdgeWeight(cfg.weightFn(cfg.rng)))
}
