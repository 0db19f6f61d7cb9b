// SPDX-License-Identifier: MIT
// Package: netalgo/layout

package layout

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/netalgo/core"
	"github.com/katalvlaran/netalgo/force"
)

// SpringParams configures Spring.
type SpringParams struct {
	Canvas        Canvas  `yaml:"canvas"`
	MaxIterations int     `yaml:"max_iterations"`
	Epsilon       float64 `yaml:"epsilon"`

	// Delta scales force into displacement.
	Delta float64 `yaml:"delta"`

	// CSpring weighs edge attraction, CRepulse non-adjacent repulsion.
	CSpring  float64 `yaml:"c_spring"`
	CRepulse float64 `yaml:"c_repulse"`

	// Scale divides min(Width,Height) to obtain the ideal edge length.
	Scale float64 `yaml:"scale"`
}

// DefaultSpringParams returns K=300, ε=0.1, δ=1.5, cspring=crep=20, C=2.
func DefaultSpringParams() SpringParams {
	return SpringParams{
		Canvas:        DefaultCanvas(),
		MaxIterations: 300,
		Epsilon:       0.1,
		Delta:         1.5,
		CSpring:       20,
		CRepulse:      20,
		Scale:         2,
	}
}

const methodSpring = "Spring"

// Spring runs Eades spring embedding on g.
//
// Complexity: O(K·V²) time, O(V²) memory for the adjacency table.
func Spring(ctx context.Context, g *core.Graph, p SpringParams) (*Result, error) {
	if err := validate(methodSpring, g, p.Canvas, p.MaxIterations, p.Epsilon); err != nil {
		return nil, err
	}
	if p.Delta <= 0 || p.CSpring < 0 || p.CRepulse < 0 || p.Scale <= 0 {
		return nil, fmt.Errorf("%s: delta=%g cspring=%g crep=%g scale=%g: %w",
			methodSpring, p.Delta, p.CSpring, p.CRepulse, p.Scale, ErrBadParams)
	}

	m := &springModel{
		p:     p,
		dim:   g.Dim,
		adj:   adjacencyMatrix(g),
		ideal: math.Min(p.Canvas.Width, p.Canvas.Height) / p.Scale,
	}

	return simulate(ctx, methodSpring, g, p.Canvas, p.MaxIterations, p.Epsilon, m)
}

type springModel struct {
	p     SpringParams
	dim   int
	adj   [][]bool
	ideal float64
}

func (m *springModel) Forces(_ int, pos, out []r3.Vec) {
	for i := range pos {
		for j := i + 1; j < len(pos); j++ {
			u, d := force.Separation(pos[i], pos[j], i, j, m.dim)
			var f float64
			if m.adj[i][j] {
				// positive pulls i towards j
				f = m.p.CSpring * math.Log(d) / m.ideal
			} else {
				f = -m.p.CRepulse / d
			}
			out[i] = r3.Add(out[i], r3.Scale(f, u))
			out[j] = r3.Sub(out[j], r3.Scale(f, u))
		}
	}
}

func (m *springModel) Displace(_ int, pos, forces, next []r3.Vec) {
	for i := range pos {
		next[i] = r3.Add(pos[i], r3.Scale(m.p.Delta, forces[i]))
	}
}
