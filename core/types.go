// SPDX-License-Identifier: MIT
// Package: netalgo/core

package core

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r3"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an edge endpoint or lookup index out of range.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates an attempt to add a self-loop.
	ErrLoopNotAllowed = errors.New("core: self-loops not allowed")

	// ErrMultiEdgeNotAllowed indicates an attempt to add a parallel edge.
	ErrMultiEdgeNotAllowed = errors.New("core: duplicate edge not allowed")

	// ErrBadDimension indicates a dimension other than 2 or 3.
	ErrBadDimension = errors.New("core: dimension must be 2 or 3")

	// ErrTooManyVertices indicates the pair encoding bound would be exceeded.
	ErrTooManyVertices = errors.New("core: too many vertices")

	// ErrInvariant indicates a graph failed Validate.
	ErrInvariant = errors.New("core: graph invariant violated")

	// ErrLengthMismatch indicates a positions slice that does not match the vertex count.
	ErrLengthMismatch = errors.New("core: length mismatch")
)

const (
	// Dim2 and Dim3 are the supported embedding dimensions.
	Dim2 = 2
	Dim3 = 3

	// MaxVertexIndex bounds the vertex count of any Graph. PairKey encodes an
	// unordered pair as min*MaxVertexIndex+max, which stays collision-free
	// for every index below this bound.
	MaxVertexIndex = 1024

	// DefaultVertexSize is the radius used when size scaling is disabled.
	DefaultVertexSize = 3.0

	// DefaultEdgeWeight is the weight assigned to generated edges.
	DefaultEdgeWeight = 1.0

	// DefaultEdgeAlpha is the opacity assigned to generated edges.
	DefaultEdgeAlpha = 0.1
)

var (
	// DefaultVertexColor is cyan.
	DefaultVertexColor = Color{R: 0, G: 255, B: 255}

	// DefaultEdgeColor is used for edges of 2D graphs.
	DefaultEdgeColor = Color{R: 0, G: 0, B: 0}

	// DefaultEdgeColor3D is used for edges of 3D graphs.
	DefaultEdgeColor3D = Color{R: 41, G: 150, B: 150}
)

// Vertex is a point in the embedding space together with its derived
// presentation attributes. Degree is maintained by Graph; Size and Color are
// refreshed by RecomputeDerived.
type Vertex struct {
	Pos    r3.Vec
	Degree int
	Size   float64
	Color  Color
}

// Edge is an undirected connection between two vertex indices.
type Edge struct {
	Start  int
	End    int
	Weight float64
	Color  Color
	Alpha  float64
}

// Other returns the endpoint of e opposite to v.
func (e Edge) Other(v int) int {
	if e.Start == v {
		return e.End
	}

	return e.Start
}

// Graph is a simple undirected graph embedded in 2D or 3D space.
//
// The zero value is not usable; call NewGraph.
type Graph struct {
	Dim      int
	Vertices []Vertex
	Edges    []Edge
}
