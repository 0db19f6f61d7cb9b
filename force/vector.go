// SPDX-License-Identifier: MIT
// Package: netalgo/force

package force

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// MinDistance is the separation substituted for coincident vertices.
const MinDistance = 1e-6

// Distance returns |b-a|.
func Distance(a, b r3.Vec) float64 {
	return r3.Norm(r3.Sub(b, a))
}

// Unit returns the unit vector pointing from a to b and the distance
// between them. It returns ok=false when the points coincide.
func Unit(a, b r3.Vec) (u r3.Vec, d float64, ok bool) {
	diff := r3.Sub(b, a)
	d = r3.Norm(diff)
	if d < MinDistance {
		return r3.Vec{}, d, false
	}

	return r3.Scale(1/d, diff), d, true
}

// Separation returns the unit vector from vertex i at a to vertex j at b and
// their distance. Coincident pairs get a deterministic direction derived
// from (i, j) and distance MinDistance, so no force term ever divides by
// zero. The direction for (j, i) is the negation of the one for (i, j).
// In 2D the fallback direction has Z == 0.
func Separation(a, b r3.Vec, i, j, dim int) (r3.Vec, float64) {
	if u, d, ok := Unit(a, b); ok {
		return u, d
	}
	lo, hi, sign := i, j, 1.0
	if lo > hi {
		lo, hi, sign = hi, lo, -1.0
	}
	// golden-angle spiral over the pair index keeps fallback directions distinct
	k := float64(lo*1031 + hi)
	phi := math.Mod(k*2.399963229728653, 2*math.Pi)
	u := r3.Vec{X: math.Cos(phi), Y: math.Sin(phi)}
	if dim == 3 {
		z := math.Mod(k*0.6180339887498949, 1)*2 - 1
		s := math.Sqrt(1 - z*z)
		u = r3.Vec{X: s * u.X, Y: s * u.Y, Z: z}
	}

	return r3.Scale(sign, u), MinDistance
}

// MaxMagnitude returns the largest |f| over forces.
func MaxMagnitude(forces []r3.Vec) float64 {
	m := 0.0
	for _, f := range forces {
		m = math.Max(m, r3.Norm(f))
	}

	return m
}

// Converged reports whether every force magnitude is below eps.
func Converged(forces []r3.Vec, eps float64) bool {
	return MaxMagnitude(forces) < eps
}
