// SPDX-License-Identifier: MIT
// Package: netalgo/core

package core

import (
	"fmt"
	"math"
)

// Validate checks the structural invariants of g:
//
//   - Dim is 2 or 3 and, in 2D, every Pos.Z is 0;
//   - coordinates are finite;
//   - the vertex count stays below MaxVertexIndex;
//   - edge endpoints are in range and distinct;
//   - no unordered pair appears twice;
//   - every Vertex.Degree equals its number of incident edges.
//
// Every failure wraps ErrInvariant together with the specific cause.
// Complexity: O(V + E).
func (g *Graph) Validate() error {
	if g.Dim != Dim2 && g.Dim != Dim3 {
		return fmt.Errorf("Validate: dim=%d: %w: %w", g.Dim, ErrInvariant, ErrBadDimension)
	}
	n := len(g.Vertices)
	if n >= MaxVertexIndex {
		return fmt.Errorf("Validate: n=%d >= %d: %w: %w", n, MaxVertexIndex, ErrInvariant, ErrTooManyVertices)
	}
	for i, v := range g.Vertices {
		if !finite(v.Pos.X) || !finite(v.Pos.Y) || !finite(v.Pos.Z) {
			return fmt.Errorf("Validate: vertex %d has non-finite position: %w", i, ErrInvariant)
		}
		if g.Dim == Dim2 && v.Pos.Z != 0 {
			return fmt.Errorf("Validate: vertex %d has z=%g in 2D: %w", i, v.Pos.Z, ErrInvariant)
		}
	}

	deg := make([]int, n)
	seen := make(map[int]int, len(g.Edges))
	for i, e := range g.Edges {
		if err := g.checkPair(e.Start, e.End); err != nil {
			return fmt.Errorf("Validate: edge %d (%d,%d): %w: %w", i, e.Start, e.End, ErrInvariant, err)
		}
		key := PairKey(e.Start, e.End)
		if j, dup := seen[key]; dup {
			return fmt.Errorf("Validate: edge %d duplicates edge %d: %w: %w", i, j, ErrInvariant, ErrMultiEdgeNotAllowed)
		}
		seen[key] = i
		deg[e.Start]++
		deg[e.End]++
	}
	for i, v := range g.Vertices {
		if v.Degree != deg[i] {
			return fmt.Errorf("Validate: vertex %d degree=%d, incident=%d: %w", i, v.Degree, deg[i], ErrInvariant)
		}
	}

	return nil
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
