// SPDX-License-Identifier: MIT
// Package: netalgo/tsp

package tsp

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/netalgo/core"
	"github.com/katalvlaran/netalgo/dfs"
)

// minSquaredLength floors each squared edge length.
const minSquaredLength = 1e-20

// TourFromEdges walks the edge set of g as a single cycle and returns the
// closed tour. The walk starts at Edges[0].Start and leaves along Edges[0],
// so a cycle emitted in order is returned in that order.
//
// Errors: ErrInvalidGraph, ErrTooFewVertices, ErrNotHamiltonian.
func TourFromEdges(g *core.Graph) ([]int, error) {
	if g == nil {
		return nil, fmt.Errorf("TourFromEdges: nil graph: %w", ErrInvalidGraph)
	}
	n := g.VertexCount()
	if n < MinVertices {
		return nil, fmt.Errorf("TourFromEdges: n=%d: %w", n, ErrTooFewVertices)
	}
	if len(g.Edges) != n {
		return nil, fmt.Errorf("TourFromEdges: %d edges for %d vertices: %w", len(g.Edges), n, ErrNotHamiltonian)
	}

	deg := make([]int, n)
	for i, e := range g.Edges {
		if e.Start < 0 || e.Start >= n || e.End < 0 || e.End >= n || e.Start == e.End {
			return nil, fmt.Errorf("TourFromEdges: edge %d (%d,%d): %w", i, e.Start, e.End, ErrNotHamiltonian)
		}
		deg[e.Start]++
		deg[e.End]++
	}
	for v, d := range deg {
		if d != 2 {
			return nil, fmt.Errorf("TourFromEdges: vertex %d has degree %d: %w", v, d, ErrNotHamiltonian)
		}
	}

	// In a 2-regular graph the DFS pre-order from start is its cycle.
	start := g.Edges[0].Start
	tour := make([]int, 0, n+1)
	if _, err := dfs.DFS(g, start, dfs.WithOnVisit(func(v, _ int) error {
		tour = append(tour, v)
		return nil
	})); err != nil {
		return nil, fmt.Errorf("TourFromEdges: %w", err)
	}
	if len(tour) != n {
		return nil, fmt.Errorf("TourFromEdges: cycle covers %d of %d vertices: %w", len(tour), n, ErrNotHamiltonian)
	}
	if tour[1] != g.Edges[0].End {
		slices.Reverse(tour[1:])
	}

	return append(tour, start), nil
}

// ValidateTour checks that tour is closed and visits each of 0..n-1 once.
func ValidateTour(tour []int, n int) error {
	if n < 1 || len(tour) != n+1 || tour[0] != tour[n] {
		return fmt.Errorf("ValidateTour: len=%d n=%d: %w", len(tour), n, ErrBadTour)
	}
	seen := make([]bool, n)
	for i := 0; i < n; i++ {
		v := tour[i]
		if v < 0 || v >= n || seen[v] {
			return fmt.Errorf("ValidateTour: position %d vertex %d: %w", i, v, ErrBadTour)
		}
		seen[v] = true
	}

	return nil
}

// squaredLength returns |a-b|² floored at minSquaredLength.
func squaredLength(pos []core.Vertex, a, b int) float64 {
	d := r3.Sub(pos[a].Pos, pos[b].Pos)
	sq := r3.Dot(d, d)
	if sq == 0 {
		return minSquaredLength
	}

	return sq
}

// squaredSum returns the sum of squared edge lengths along tour.
func squaredSum(vs []core.Vertex, tour []int) float64 {
	var s float64
	for i := 0; i+1 < len(tour); i++ {
		s += squaredLength(vs, tour[i], tour[i+1])
	}

	return s
}

// TourLength returns sqrt(Σ |tour[i]-tour[i+1]|²) over the closed tour.
//
// This is not the Euclidean tour length; it preserves the measure the
// searches have always optimized and is monotone in the squared sum.
func TourLength(g *core.Graph, tour []int) float64 {
	return math.Sqrt(squaredSum(g.Vertices, tour))
}

// reverseArcInPlace reverses the inclusive segment tour[i..k].
func reverseArcInPlace(tour []int, i, k int) {
	for i < k {
		tour[i], tour[k] = tour[k], tour[i]
		i++
		k--
	}
}

// CopyTour returns an independent copy of tour.
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}

	return append([]int(nil), tour...)
}

// frameBuilder renders tours as EdgeFrames. Edge i of a frame joins
// tour[i] and tour[i+1] and inherits the non-endpoint attributes of the
// i-th input edge.
type frameBuilder struct {
	template []core.Edge
}

func (fb frameBuilder) frame(tour []int, highlight core.Color, lit ...int) core.EdgeFrame {
	out := make(core.EdgeFrame, len(fb.template))
	for i := range out {
		e := fb.template[i]
		e.Start, e.End = tour[i], tour[i+1]
		out[i] = e
	}
	for _, p := range lit {
		if p >= 0 && p < len(out) {
			out[p].Color = highlight
			out[p].Alpha = 1
		}
	}

	return out
}

// colored renders tour with every edge in color c.
func (fb frameBuilder) colored(tour []int, c core.Color) core.EdgeFrame {
	out := fb.frame(tour, c)
	for i := range out {
		out[i].Color = c
	}

	return out
}
