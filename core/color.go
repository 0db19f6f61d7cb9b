// SPDX-License-Identifier: MIT
// Package: netalgo/core

package core

import (
	"fmt"
	"math"
)

// Color is an 8-bit RGB triple.
type Color struct {
	R, G, B uint8
}

// String renders c as rgb(r,g,b).
func (c Color) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// Gradient maps an index in [0, Steps) onto a color between From and To.
// A linear gradient interpolates each RGB channel; a polar gradient walks the
// hue circle along the shorter arc and interpolates saturation and value.
type Gradient struct {
	From  Color
	To    Color
	Steps int
	Polar bool
}

// LinearGradient returns an RGB gradient with the given number of steps.
func LinearGradient(from, to Color, steps int) Gradient {
	return Gradient{From: from, To: to, Steps: steps}
}

// PolarGradient returns a hue-circle gradient with the given number of steps.
func PolarGradient(from, to Color, steps int) Gradient {
	return Gradient{From: from, To: to, Steps: steps, Polar: true}
}

// At returns the color for step i. Indices are clamped to [0, Steps-1];
// a gradient with fewer than two steps always yields From.
func (gr Gradient) At(i int) Color {
	if gr.Steps < 2 || i <= 0 {
		return gr.From
	}
	if i >= gr.Steps-1 {
		return gr.To
	}

	return gr.Fraction(float64(i) / float64(gr.Steps-1))
}

// Fraction returns the color at position t in [0,1] along the gradient.
func (gr Gradient) Fraction(t float64) Color {
	switch {
	case math.IsNaN(t) || t <= 0:
		return gr.From
	case t >= 1:
		return gr.To
	}
	if gr.Polar {
		return polarLerp(gr.From, gr.To, t)
	}

	return Color{
		R: lerpChannel(gr.From.R, gr.To.R, t),
		G: lerpChannel(gr.From.G, gr.To.G, t),
		B: lerpChannel(gr.From.B, gr.To.B, t),
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

func polarLerp(a, b Color, t float64) Color {
	h1, s1, v1 := toHSV(a)
	h2, s2, v2 := toHSV(b)
	dh := h2 - h1
	if dh > 180 {
		dh -= 360
	} else if dh < -180 {
		dh += 360
	}
	h := math.Mod(h1+dh*t+360, 360)

	return fromHSV(h, s1+(s2-s1)*t, v1+(v2-v1)*t)
}

// toHSV returns hue in degrees, saturation and value in [0,1].
func toHSV(c Color) (h, s, v float64) {
	r, g, b := float64(c.R)/255, float64(c.G)/255, float64(c.B)/255
	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	d := maxC - minC
	v = maxC
	if maxC > 0 {
		s = d / maxC
	}
	if d == 0 {
		return 0, s, v
	}
	switch maxC {
	case r:
		h = math.Mod((g-b)/d, 6)
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h *= 60
	if h < 0 {
		h += 360
	}

	return h, s, v
}

func fromHSV(h, s, v float64) Color {
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c
	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return Color{
		R: uint8(math.Round((r + m) * 255)),
		G: uint8(math.Round((g + m) * 255)),
		B: uint8(math.Round((b + m) * 255)),
	}
}
