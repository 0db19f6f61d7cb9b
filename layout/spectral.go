// SPDX-License-Identifier: MIT
// Package: netalgo/layout

package layout

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/netalgo/core"
	"github.com/katalvlaran/netalgo/force"
)

// SpectralParams configures Spectral.
type SpectralParams struct {
	Canvas Canvas `yaml:"canvas"`

	// Margin keeps coordinates inside [Margin, extent-Margin].
	Margin float64 `yaml:"margin"`

	// Normalized solves L·x = λ·D·x instead of L·x = λ·x.
	Normalized bool `yaml:"normalized"`

	// Steps is the number of frames interpolating from the current to the
	// spectral placement; 1 yields a single frame.
	Steps int `yaml:"steps"`
}

// DefaultSpectralParams returns margin 20, unnormalized, one frame.
func DefaultSpectralParams() SpectralParams {
	return SpectralParams{Canvas: DefaultCanvas(), Margin: 20, Steps: 1}
}

const methodSpectral = "Spectral"

// Spectral places vertices at the coordinates given by the eigenvectors of
// the graph Laplacian L = D - A for the 2nd, 3rd (and 4th in 3D) smallest
// eigenvalues, scaled per axis into the canvas. Eigenvector signs are fixed
// so the first non-negligible component is positive, which makes the result
// deterministic. Axes with no spread collapse to the canvas center.
//
// Errors: ErrTooFewVertices when V < Dim+1, ErrEigenFailed.
// Complexity: O(V³) for the dense symmetric eigendecomposition.
func Spectral(ctx context.Context, g *core.Graph, p SpectralParams) (*Result, error) {
	if err := validate(methodSpectral, g, p.Canvas, 0, 0); err != nil {
		return nil, err
	}
	if p.Steps < 1 || p.Margin < 0 || 2*p.Margin >= math.Min(p.Canvas.Width, p.Canvas.Height) ||
		(g.Dim == core.Dim3 && 2*p.Margin >= p.Canvas.Depth) {
		return nil, fmt.Errorf("%s: steps=%d margin=%g: %w", methodSpectral, p.Steps, p.Margin, ErrBadParams)
	}
	n := g.VertexCount()
	if n < g.Dim+1 {
		return nil, fmt.Errorf("%s: n=%d < %d: %w", methodSpectral, n, g.Dim+1, ErrTooFewVertices)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lap, scale := laplacian(g, p.Normalized)
	var es mat.EigenSym
	if ok := es.Factorize(lap, true); !ok {
		return nil, fmt.Errorf("%s: %w", methodSpectral, ErrEigenFailed)
	}
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	coords := make([][]float64, g.Dim)
	for axis := range coords {
		col := make([]float64, n)
		for i := 0; i < n; i++ {
			col[i] = vecs.At(i, axis+1) * scale[i]
		}
		fixSign(col)
		coords[axis] = col
	}

	final := make([]r3.Vec, n)
	extents := []float64{p.Canvas.Width, p.Canvas.Height, p.Canvas.Depth}
	for axis, col := range coords {
		fit(col, p.Margin, extents[axis])
		for i, v := range col {
			switch axis {
			case 0:
				final[i].X = v
			case 1:
				final[i].Y = v
			default:
				final[i].Z = v
			}
		}
	}

	start := g.Positions()
	frames := core.NewSequence[core.PositionFrame](p.Steps)
	for s := 1; s <= p.Steps; s++ {
		t := float64(s) / float64(p.Steps)
		frame := make(core.PositionFrame, n)
		for i := range frame {
			frame[i] = r3.Add(start[i], r3.Scale(t, r3.Sub(final[i], start[i])))
		}
		frames.Append(frame)
	}
	last, _ := frames.Last()

	return newResult(g, last, frames, p.Steps, force.StateConverged, 0), nil
}

// laplacian returns L = D - A, or D^-1/2·L·D^-1/2 when normalized, together
// with the per-vertex factor that maps eigenvectors back (D^-1/2 or 1).
// Isolated vertices use degree 1 in the normalization.
func laplacian(g *core.Graph, normalized bool) (*mat.SymDense, []float64) {
	n := g.VertexCount()
	lap := mat.NewSymDense(n, nil)
	for _, e := range g.Edges {
		lap.SetSym(e.Start, e.End, lap.At(e.Start, e.End)-1)
	}
	for i, v := range g.Vertices {
		lap.SetSym(i, i, float64(v.Degree))
	}

	scale := make([]float64, n)
	for i, v := range g.Vertices {
		scale[i] = 1
		if normalized {
			scale[i] = 1 / math.Sqrt(float64(max(v.Degree, 1)))
		}
	}
	if normalized {
		for i := 0; i < n; i++ {
			for j := i; j < n; j++ {
				lap.SetSym(i, j, lap.At(i, j)*scale[i]*scale[j])
			}
		}
	}

	return lap, scale
}

func fixSign(col []float64) {
	for _, v := range col {
		if math.Abs(v) < 1e-12 {
			continue
		}
		if v < 0 {
			for i := range col {
				col[i] = -col[i]
			}
		}
		return
	}
}

// fit maps col linearly onto [margin, extent-margin], or the center when
// the values have no spread.
func fit(col []float64, margin, extent float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range col {
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}
	span := hi - lo
	for i, v := range col {
		if span < 1e-12 {
			col[i] = extent / 2
			continue
		}
		col[i] = margin + (v-lo)/span*(extent-2*margin)
	}
}
