// SPDX-License-Identifier: MIT
// Package: netalgo/builder
//
// impl_positions.go - vertex seeding.
//
// Contract:
//   • MinVertices ≤ n ≤ MaxVertices.
//   • Uniform: each coordinate uniform in [margin, extent-margin].
//   • Circle: 2D points on a circle centered in the canvas with radius
//     0.9·min(W,H)/2; in 3D points uniform on the sphere of radius
//     0.9·min(W,H,D)/2.
//   • Every position lies inside the canvas box.

package builder

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/netalgo/core"
)

// Placement selects a position seeding rule.
type Placement int

const (
	PlaceUniform Placement = iota
	PlaceCircle
)

const methodPositions = "Positions"

// Positions returns a Constructor that appends n vertices placed by p.
func Positions(n int, p Placement) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateVertexCount(methodPositions, g.VertexCount()+n); err != nil {
			return err
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodPositions, ErrNeedRandSource)
		}
		if err := validateCanvas(methodPositions, cfg, g.Dim); err != nil {
			return err
		}

		var place func() r3.Vec
		switch p {
		case PlaceUniform:
			place = func() r3.Vec { return uniformPoint(cfg, g.Dim) }
		case PlaceCircle:
			place = func() r3.Vec { return circlePoint(cfg, g.Dim) }
		default:
			return fmt.Errorf("%s: placement %d: %w", methodPositions, p, ErrUnknownStrategy)
		}
		for i := 0; i < n; i++ {
			g.AddVertex(place())
		}

		return nil
	}
}

func uniformPoint(cfg builderConfig, dim int) r3.Vec {
	span := func(extent float64) float64 {
		return canvasMargin + cfg.rng.Float64()*(extent-2*canvasMargin)
	}
	p := r3.Vec{X: span(cfg.width), Y: span(cfg.height)}
	if dim == core.Dim3 {
		p.Z = span(cfg.depth)
	}

	return p
}

func circlePoint(cfg builderConfig, dim int) r3.Vec {
	center := r3.Vec{X: cfg.width / 2, Y: cfg.height / 2}
	phi := 2 * math.Pi * cfg.rng.Float64()
	if dim == core.Dim2 {
		r := circleFill * math.Min(cfg.width, cfg.height) / 2
		return r3.Add(center, r3.Vec{X: r * math.Cos(phi), Y: r * math.Sin(phi)})
	}

	center.Z = cfg.depth / 2
	r := circleFill * math.Min(cfg.depth, math.Min(cfg.width, cfg.height)) / 2
	z := 2*cfg.rng.Float64() - 1
	s := math.Sqrt(1 - z*z)

	return r3.Add(center, r3.Scale(r, r3.Vec{X: s * math.Cos(phi), Y: s * math.Sin(phi), Z: z}))
}
