// SPDX-License-Identifier: MIT
// Package: netalgo/core

package core

import "math"

// Default bounds for degree-scaled vertex sizes.
const (
	DefaultMinSize = 3.0
	DefaultMaxSize = 10.0
)

// DerivedOptions controls how RecomputeDerived refreshes presentation
// attributes.
type DerivedOptions struct {
	// ScaleSize maps degree linearly onto [MinSize, MaxSize]. When false, or
	// when every vertex has the same degree, all sizes are DefaultVertexSize.
	ScaleSize bool
	MinSize   float64
	MaxSize   float64

	// ColorByDegree paints vertices along Gradient by degree step
	// (deg-minDeg). Gradient.Steps is overwritten with maxDeg-minDeg+1.
	ColorByDegree bool
	Gradient      Gradient
}

// DefaultDerivedOptions scales sizes to [3,10] and colors vertices from cyan
// to magenta by degree.
func DefaultDerivedOptions() DerivedOptions {
	return DerivedOptions{
		ScaleSize:     true,
		MinSize:       DefaultMinSize,
		MaxSize:       DefaultMaxSize,
		ColorByDegree: true,
		Gradient:      LinearGradient(DefaultVertexColor, Color{R: 255, G: 0, B: 255}, 0),
	}
}

// RecomputeDegrees sets every Vertex.Degree from the edge list.
func RecomputeDegrees(g *Graph) {
	for i := range g.Vertices {
		g.Vertices[i].Degree = 0
	}
	for _, e := range g.Edges {
		g.Vertices[e.Start].Degree++
		g.Vertices[e.End].Degree++
	}
}

// DegreeRange returns the minimum and maximum vertex degree.
// Both are 0 for a graph without vertices.
func DegreeRange(g *Graph) (minDeg, maxDeg int) {
	if len(g.Vertices) == 0 {
		return 0, 0
	}
	minDeg, maxDeg = g.Vertices[0].Degree, g.Vertices[0].Degree
	for _, v := range g.Vertices[1:] {
		minDeg = min(minDeg, v.Degree)
		maxDeg = max(maxDeg, v.Degree)
	}

	return minDeg, maxDeg
}

// RecomputeDerived refreshes degree, size and color of every vertex.
//
// Size rule with scaling on and maxDeg > minDeg:
//
//	size = floor((deg-minDeg)/(maxDeg-minDeg) * (MaxSize-MinSize)) + MinSize
func RecomputeDerived(g *Graph, opts DerivedOptions) {
	RecomputeDegrees(g)
	minDeg, maxDeg := DegreeRange(g)
	span := float64(maxDeg - minDeg)

	grad := opts.Gradient
	grad.Steps = maxDeg - minDeg + 1

	for i := range g.Vertices {
		v := &g.Vertices[i]
		if opts.ScaleSize && span > 0 {
			v.Size = math.Floor(float64(v.Degree-minDeg)/span*(opts.MaxSize-opts.MinSize)) + opts.MinSize
		} else {
			v.Size = DefaultVertexSize
		}
		if opts.ColorByDegree {
			v.Color = grad.At(v.Degree - minDeg)
		} else {
			v.Color = DefaultVertexColor
		}
	}
}
