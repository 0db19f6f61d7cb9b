// SPDX-License-Identifier: MIT
// Package: netalgo/layout

package layout

import (
	"context"
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/netalgo/core"
	"github.com/katalvlaran/netalgo/force"
)

// Sentinel errors for layout algorithms.
var (
	// ErrNilGraph is returned when a nil graph is passed.
	ErrNilGraph = errors.New("layout: graph is nil")

	// ErrBadParams is returned for meaningless coefficients or canvas sizes.
	ErrBadParams = errors.New("layout: invalid parameters")

	// ErrTooFewVertices is returned by Spectral for graphs too small to
	// provide the required eigenvectors.
	ErrTooFewVertices = errors.New("layout: too few vertices")

	// ErrEigenFailed is returned when the eigendecomposition does not converge.
	ErrEigenFailed = errors.New("layout: eigendecomposition failed")
)

// Canvas is the box [0,Width]x[0,Height](x[0,Depth]) layouts place into.
type Canvas struct {
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`
	Depth  float64 `yaml:"depth" json:"depth"`
}

// DefaultCanvas is 500x500x500.
func DefaultCanvas() Canvas {
	return Canvas{Width: 500, Height: 500, Depth: 500}
}

func (c Canvas) bounds(dim int) force.Bounds {
	return force.NewBounds(c.Width, c.Height, c.Depth, dim)
}

// Result is the outcome of a layout run.
type Result struct {
	// Vertices is a copy of the input vertices carrying the final positions.
	Vertices []core.Vertex

	// Frames holds one placement per iteration; the last one is final.
	Frames *core.Sequence[core.PositionFrame]

	Iterations int
	State      force.State
	MaxForce   float64
}

// Positions returns the final positions in vertex order.
func (r *Result) Positions() []r3.Vec {
	out := make([]r3.Vec, len(r.Vertices))
	for i, v := range r.Vertices {
		out[i] = v.Pos
	}

	return out
}

// Apply writes the final positions into g.
func (r *Result) Apply(g *core.Graph) error {
	return g.SetPositions(r.Positions())
}

func validate(method string, g *core.Graph, c Canvas, maxIter int, eps float64) error {
	if g == nil {
		return fmt.Errorf("%s: %w", method, ErrNilGraph)
	}
	if c.Width <= 0 || c.Height <= 0 || (g.Dim == core.Dim3 && c.Depth <= 0) {
		return fmt.Errorf("%s: canvas %gx%gx%g: %w", method, c.Width, c.Height, c.Depth, ErrBadParams)
	}
	if maxIter < 0 || eps < 0 {
		return fmt.Errorf("%s: MaxIterations=%d Epsilon=%g: %w", method, maxIter, eps, ErrBadParams)
	}
	if err := g.Validate(); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	return nil
}

func simulate(ctx context.Context, method string, g *core.Graph, c Canvas, maxIter int, eps float64, m force.Model) (*Result, error) {
	sim := force.Simulator{Bounds: c.bounds(g.Dim), MaxIterations: maxIter, Epsilon: eps}
	out, err := sim.Run(ctx, g.Positions(), m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return newResult(g, out.Positions, out.Frames, out.Iterations, out.State, out.MaxForce), nil
}

func newResult(g *core.Graph, pos []r3.Vec, frames *core.Sequence[core.PositionFrame], iters int, st force.State, maxF float64) *Result {
	verts := append([]core.Vertex(nil), g.Vertices...)
	for i := range verts {
		verts[i].Pos = pos[i]
	}

	return &Result{Vertices: verts, Frames: frames, Iterations: iters, State: st, MaxForce: maxF}
}

// adjacencyMatrix returns a dense boolean adjacency table.
func adjacencyMatrix(g *core.Graph) [][]bool {
	n := g.VertexCount()
	adj := make([][]bool, n)
	for i := range adj {
		adj[i] = make([]bool, n)
	}
	for _, e := range g.Edges {
		adj[e.Start][e.End] = true
		adj[e.End][e.Start] = true
	}

	return adj
}
