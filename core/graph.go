// SPDX-License-Identifier: MIT
// Package: netalgo/core

package core

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"
)

// NewGraph returns an empty graph of the given dimension.
// Returns ErrBadDimension unless dim is Dim2 or Dim3.
func NewGraph(dim int) (*Graph, error) {
	if dim != Dim2 && dim != Dim3 {
		return nil, fmt.Errorf("NewGraph: dim=%d: %w", dim, ErrBadDimension)
	}

	return &Graph{Dim: dim}, nil
}

// AddVertex appends a vertex at pos with default presentation attributes and
// returns its index. In 2D the Z coordinate is dropped.
func (g *Graph) AddVertex(pos r3.Vec) int {
	if g.Dim == Dim2 {
		pos.Z = 0
	}
	g.Vertices = append(g.Vertices, Vertex{
		Pos:   pos,
		Size:  DefaultVertexSize,
		Color: DefaultVertexColor,
	})

	return len(g.Vertices) - 1
}

// EdgeOption customizes an edge created by AddEdge.
type EdgeOption func(*Edge)

// WithEdgeWeight sets the edge weight.
func WithEdgeWeight(w float64) EdgeOption {
	return func(e *Edge) { e.Weight = w }
}

// WithEdgeColor sets the edge color.
func WithEdgeColor(c Color) EdgeOption {
	return func(e *Edge) { e.Color = c }
}

// WithEdgeAlpha sets the edge opacity.
func WithEdgeAlpha(a float64) EdgeOption {
	return func(e *Edge) { e.Alpha = a }
}

// AddEdge connects start and end, increments both degrees and returns the
// index of the new edge.
//
// Errors: ErrVertexNotFound, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
// Complexity: O(E) for the duplicate check. Bulk builders keep their own
// PairSet and use AppendEdgeUnchecked instead.
func (g *Graph) AddEdge(start, end int, opts ...EdgeOption) (int, error) {
	if err := g.checkPair(start, end); err != nil {
		return -1, fmt.Errorf("AddEdge(%d,%d): %w", start, end, err)
	}
	if g.HasEdge(start, end) {
		return -1, fmt.Errorf("AddEdge(%d,%d): %w", start, end, ErrMultiEdgeNotAllowed)
	}

	return g.AppendEdgeUnchecked(start, end, opts...), nil
}

// AppendEdgeUnchecked appends an edge without the duplicate scan. Endpoints
// must be valid and distinct and the pair must be new; callers guarantee this
// with a PairSet. Degrees are updated.
func (g *Graph) AppendEdgeUnchecked(start, end int, opts ...EdgeOption) int {
	e := Edge{
		Start:  start,
		End:    end,
		Weight: DefaultEdgeWeight,
		Color:  g.defaultEdgeColor(),
		Alpha:  DefaultEdgeAlpha,
	}
	for _, opt := range opts {
		opt(&e)
	}
	g.Edges = append(g.Edges, e)
	g.Vertices[start].Degree++
	g.Vertices[end].Degree++

	return len(g.Edges) - 1
}

func (g *Graph) defaultEdgeColor() Color {
	if g.Dim == Dim3 {
		return DefaultEdgeColor3D
	}

	return DefaultEdgeColor
}

func (g *Graph) checkPair(a, b int) error {
	n := len(g.Vertices)
	if a < 0 || a >= n || b < 0 || b >= n {
		return ErrVertexNotFound
	}
	if a == b {
		return ErrLoopNotAllowed
	}

	return nil
}

// HasEdge reports whether an edge joins a and b in either orientation.
func (g *Graph) HasEdge(a, b int) bool {
	for _, e := range g.Edges {
		if (e.Start == a && e.End == b) || (e.Start == b && e.End == a) {
			return true
		}
	}

	return false
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.Vertices) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.Edges) }

// Adjacency returns, for every vertex, the sorted indices of its neighbors.
func (g *Graph) Adjacency() [][]int {
	adj := make([][]int, len(g.Vertices))
	for _, e := range g.Edges {
		adj[e.Start] = append(adj[e.Start], e.End)
		adj[e.End] = append(adj[e.End], e.Start)
	}
	for i := range adj {
		sort.Ints(adj[i])
	}

	return adj
}

// IncidentEdges returns, for every vertex, the indices of its incident edges
// in edge-list order.
func (g *Graph) IncidentEdges() [][]int {
	inc := make([][]int, len(g.Vertices))
	for i, e := range g.Edges {
		inc[e.Start] = append(inc[e.Start], i)
		inc[e.End] = append(inc[e.End], i)
	}

	return inc
}

// MaxDegree returns the largest vertex degree, 0 for an empty graph.
func (g *Graph) MaxDegree() int {
	maxDeg := 0
	for _, v := range g.Vertices {
		if v.Degree > maxDeg {
			maxDeg = v.Degree
		}
	}

	return maxDeg
}

// Positions returns a copy of all vertex positions in index order.
func (g *Graph) Positions() []r3.Vec {
	out := make([]r3.Vec, len(g.Vertices))
	for i, v := range g.Vertices {
		out[i] = v.Pos
	}

	return out
}

// SetPositions overwrites all vertex positions.
// Returns ErrLengthMismatch if len(pos) != VertexCount().
func (g *Graph) SetPositions(pos []r3.Vec) error {
	if len(pos) != len(g.Vertices) {
		return fmt.Errorf("SetPositions: got %d, want %d: %w", len(pos), len(g.Vertices), ErrLengthMismatch)
	}
	for i := range g.Vertices {
		p := pos[i]
		if g.Dim == Dim2 {
			p.Z = 0
		}
		g.Vertices[i].Pos = p
	}

	return nil
}

// Clone returns a deep copy of g.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	return &Graph{
		Dim:      g.Dim,
		Vertices: append([]Vertex(nil), g.Vertices...),
		Edges:    append([]Edge(nil), g.Edges...),
	}
}

// Distance returns the Euclidean distance between vertices a and b.
func (g *Graph) Distance(a, b int) float64 {
	return r3.Norm(r3.Sub(g.Vertices[a].Pos, g.Vertices[b].Pos))
}
