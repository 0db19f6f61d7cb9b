// SPDX-License-Identifier: MIT
// Package: netalgo/force

package force

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Bounds is the axis-aligned box vertices are confined to.
type Bounds struct {
	Box r3.Box
	Dim int
}

// NewBounds returns the box [0,w]x[0,h] in 2D or [0,w]x[0,h]x[0,d] in 3D.
func NewBounds(w, h, d float64, dim int) Bounds {
	if dim != 3 {
		d = 0
	}

	return Bounds{Box: r3.Box{Max: r3.Vec{X: w, Y: h, Z: d}}, Dim: dim}
}

// Center returns the midpoint of the box.
func (b Bounds) Center() r3.Vec {
	return r3.Scale(0.5, r3.Add(b.Box.Min, b.Box.Max))
}

// Contains reports whether p lies inside the closed box.
func (b Bounds) Contains(p r3.Vec) bool {
	lo, hi := b.Box.Min, b.Box.Max
	return p.X >= lo.X && p.X <= hi.X &&
		p.Y >= lo.Y && p.Y <= hi.Y &&
		p.Z >= lo.Z && p.Z <= hi.Z
}

// Clamp returns the point reached when moving from from towards to and
// stopping at the box boundary. from is first pulled into the box if it lies
// outside. Coordinates are finally truncated to the box to absorb rounding.
func (b Bounds) Clamp(from, to r3.Vec) r3.Vec {
	from = b.truncate(from)
	if b.Contains(to) {
		return to
	}

	t := 1.0
	delta := r3.Sub(to, from)
	axis := func(p, d, lo, hi float64) {
		switch {
		case d > 0 && p+d > hi:
			t = math.Min(t, (hi-p)/d)
		case d < 0 && p+d < lo:
			t = math.Min(t, (lo-p)/d)
		}
	}
	axis(from.X, delta.X, b.Box.Min.X, b.Box.Max.X)
	axis(from.Y, delta.Y, b.Box.Min.Y, b.Box.Max.Y)
	axis(from.Z, delta.Z, b.Box.Min.Z, b.Box.Max.Z)

	return b.truncate(r3.Add(from, r3.Scale(math.Max(t, 0), delta)))
}

func (b Bounds) truncate(p r3.Vec) r3.Vec {
	clampf := func(v, lo, hi float64) float64 { return math.Min(math.Max(v, lo), hi) }

	return r3.Vec{
		X: clampf(p.X, b.Box.Min.X, b.Box.Max.X),
		Y: clampf(p.Y, b.Box.Min.Y, b.Box.Max.Y),
		Z: clampf(p.Z, b.Box.Min.Z, b.Box.Max.Z),
	}
}
