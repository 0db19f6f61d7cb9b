// SPDX-License-Identifier: MIT
// Package: netalgo/layout

package layout

import (
	"context"
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/netalgo/core"
	"github.com/katalvlaran/netalgo/force"
)

// Cooling selects how the Fruchterman–Reingold temperature decays.
type Cooling int

const (
	// CoolingLogarithmic: t = t0 / log2(iter+2).
	CoolingLogarithmic Cooling = iota
	// CoolingLinear: t = t0 · (1 - iter/MaxIterations).
	CoolingLinear
	// CoolingNone keeps t = t0.
	CoolingNone
)

var coolingNames = [...]string{"logarithmic", "linear", "none"}

// String returns the schedule name.
func (c Cooling) String() string {
	if c >= 0 && int(c) < len(coolingNames) {
		return coolingNames[c]
	}

	return fmt.Sprintf("Cooling(%d)", int(c))
}

// MarshalText encodes the schedule by name.
func (c Cooling) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText accepts "logarithmic", "linear" or "none".
func (c *Cooling) UnmarshalText(b []byte) error {
	for i, name := range coolingNames {
		if strings.EqualFold(string(b), name) {
			*c = Cooling(i)
			return nil
		}
	}

	return fmt.Errorf("cooling %q: %w", b, ErrBadParams)
}

// FRParams configures FruchtermanReingold.
type FRParams struct {
	Canvas        Canvas  `yaml:"canvas"`
	MaxIterations int     `yaml:"max_iterations"`
	Epsilon       float64 `yaml:"epsilon"`

	// C scales the ideal distance k = C·sqrt(area/V) (cube root of volume/V in 3D).
	C float64 `yaml:"c"`

	// CTemp scales the initial temperature t0 = CTemp·Width.
	CTemp float64 `yaml:"c_temp"`

	Cooling Cooling `yaml:"cooling"`

	// Collision caps displacements so vertex circles (radius Vertex.Size)
	// that do not overlap yet never come to overlap.
	Collision bool `yaml:"collision"`
}

// DefaultFRParams returns K=300, ε=0.1, C=1, CTemp=0.1, logarithmic cooling,
// collisions off.
func DefaultFRParams() FRParams {
	return FRParams{
		Canvas:        DefaultCanvas(),
		MaxIterations: 300,
		Epsilon:       0.1,
		C:             1,
		CTemp:         0.1,
		Cooling:       CoolingLogarithmic,
	}
}

const methodFR = "FruchtermanReingold"

// FruchtermanReingold runs the Fruchterman–Reingold layout on g.
//
// Complexity: O(K·V²) time.
func FruchtermanReingold(ctx context.Context, g *core.Graph, p FRParams) (*Result, error) {
	if err := validate(methodFR, g, p.Canvas, p.MaxIterations, p.Epsilon); err != nil {
		return nil, err
	}
	if p.C <= 0 || p.CTemp <= 0 || p.Cooling < CoolingLogarithmic || p.Cooling > CoolingNone {
		return nil, fmt.Errorf("%s: C=%g CTemp=%g cooling=%d: %w", methodFR, p.C, p.CTemp, p.Cooling, ErrBadParams)
	}

	n := math.Max(float64(g.VertexCount()), 1)
	var k float64
	if g.Dim == core.Dim3 {
		k = p.C * math.Cbrt(p.Canvas.Width*p.Canvas.Height*p.Canvas.Depth/n)
	} else {
		k = p.C * math.Sqrt(p.Canvas.Width*p.Canvas.Height/n)
	}
	radii := make([]float64, g.VertexCount())
	for i, v := range g.Vertices {
		radii[i] = v.Size
	}
	m := &frModel{
		p:      p,
		dim:    g.Dim,
		bounds: p.Canvas.bounds(g.Dim),
		edges:  g.Edges,
		k:      k,
		t0:     p.CTemp * p.Canvas.Width,
		radii:  radii,
	}

	return simulate(ctx, methodFR, g, p.Canvas, p.MaxIterations, p.Epsilon, m)
}

type frModel struct {
	p      FRParams
	dim    int
	bounds force.Bounds
	edges  []core.Edge
	k      float64
	t0     float64
	radii  []float64
}

// Temperature returns the displacement limit at iteration iter.
func (m *frModel) temperature(iter int) float64 {
	switch m.p.Cooling {
	case CoolingLinear:
		return m.t0 * (1 - float64(iter)/float64(max(m.p.MaxIterations, 1)))
	case CoolingNone:
		return m.t0
	default:
		return m.t0 / math.Log2(float64(iter)+2)
	}
}

func (m *frModel) Forces(_ int, pos, out []r3.Vec) {
	k2 := m.k * m.k
	for i := range pos {
		for j := i + 1; j < len(pos); j++ {
			u, d := force.Separation(pos[i], pos[j], i, j, m.dim)
			rep := r3.Scale(k2/d, u)
			out[i] = r3.Sub(out[i], rep)
			out[j] = r3.Add(out[j], rep)
		}
	}
	for _, e := range m.edges {
		u, d := force.Separation(pos[e.Start], pos[e.End], e.Start, e.End, m.dim)
		att := r3.Scale(d*d/m.k, u)
		out[e.Start] = r3.Add(out[e.Start], att)
		out[e.End] = r3.Sub(out[e.End], att)
	}
}

func (m *frModel) Displace(iter int, pos, forces, next []r3.Vec) {
	t := m.temperature(iter)
	for i := range pos {
		f := forces[i]
		mag := r3.Norm(f)
		if mag == 0 {
			continue
		}
		target := r3.Add(pos[i], r3.Scale(math.Min(mag, t)/mag, f))
		if !m.p.Collision {
			next[i] = target
			continue
		}
		// Vertices move one at a time against the already-updated positions
		// of the others, so a pair that starts clear stays clear.
		step := r3.Sub(m.bounds.Clamp(pos[i], target), pos[i])
		next[i] = r3.Add(pos[i], r3.Scale(m.collisionLimit(i, pos[i], next, step), step))
	}
}

// collisionSlack keeps a stopped vertex strictly outside the other circle.
const collisionSlack = 0.999

// collisionLimit returns the largest s in [0,1] such that moving vertex i
// from p by s·step does not make its circle enter any circle it is
// currently clear of. A circle already touching or overlapping another may
// only move away from it. others holds the positions to test against.
func (m *frModel) collisionLimit(i int, p r3.Vec, others []r3.Vec, step r3.Vec) float64 {
	limit := 1.0
	a := r3.Dot(step, step)
	if a == 0 {
		return limit
	}
	for j, q := range others {
		if j == i {
			continue
		}
		rel := r3.Sub(p, q)
		rr := m.radii[i] + m.radii[j]
		c := r3.Dot(rel, rel) - rr*rr
		b := 2 * r3.Dot(rel, step)
		if b >= 0 {
			// moving apart, or tangentially
			continue
		}
		if c <= 0 {
			// in contact or overlapping: only separating steps are allowed
			return 0
		}
		disc := b*b - 4*a*c
		if disc < 0 {
			continue
		}
		if s := collisionSlack * (-b - math.Sqrt(disc)) / (2 * a); s < limit {
			limit = math.Max(s, 0)
		}
	}

	return limit
}
