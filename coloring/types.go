// SPDX-License-Identifier: MIT
// Package: netalgo/coloring

package coloring

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/netalgo/core"
)

// ErrInvalidGraph indicates a nil graph or one failing core validation.
var ErrInvalidGraph = errors.New("coloring: invalid graph")

// Gradient endpoints.
var (
	DefaultVertexFrom = core.Color{R: 255, G: 255, B: 0}
	DefaultVertexTo   = core.Color{R: 0, G: 0, B: 255}
	DefaultEdgeFrom   = core.Color{R: 255, G: 0, B: 0}
	DefaultEdgeTo     = core.Color{R: 0, G: 255, B: 0}
)

// Options selects the gradient that renders color indices.
type Options struct {
	From  core.Color
	To    core.Color
	Polar bool
}

// DefaultVertexOptions returns the yellow→blue vertex gradient.
func DefaultVertexOptions() Options {
	return Options{From: DefaultVertexFrom, To: DefaultVertexTo}
}

// DefaultEdgeOptions returns the red→green edge gradient.
func DefaultEdgeOptions() Options {
	return Options{From: DefaultEdgeFrom, To: DefaultEdgeTo}
}

func (o Options) gradient(steps int) core.Gradient {
	return core.Gradient{From: o.From, To: o.To, Steps: steps, Polar: o.Polar}
}

// Result is the outcome of a coloring run.
type Result struct {
	// Colors holds one color index per vertex (GreedyVertex) or per edge
	// (MisraGries).
	Colors []int

	// NumColors is the number of distinct indices in Colors.
	NumColors int

	// Frames holds one snapshot per colored element.
	Frames *core.Sequence[core.GraphFrame]
}

// Apply copies the colors of the final frame onto g.
func (r *Result) Apply(g *core.Graph) {
	last, ok := r.Frames.Last()
	if !ok {
		return
	}
	for i := range g.Vertices {
		g.Vertices[i].Color = last.Vertices[i].Color
	}
	for i := range g.Edges {
		g.Edges[i].Color = last.Edges[i].Color
		g.Edges[i].Alpha = last.Edges[i].Alpha
	}
}

func validateGraph(method string, g *core.Graph) error {
	if g == nil {
		return fmt.Errorf("%s: nil graph: %w", method, ErrInvalidGraph)
	}
	if err := g.Validate(); err != nil {
		return fmt.Errorf("%s: %w: %w", method, ErrInvalidGraph, err)
	}

	return nil
}

func countColors(colors []int) int {
	seen := make(map[int]struct{}, len(colors))
	for _, c := range colors {
		if c >= 0 {
			seen[c] = struct{}{}
		}
	}

	return len(seen)
}
