// SPDX-License-Identifier: MIT
// Package: netalgo/layout

package layout

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/netalgo/core"
	"github.com/katalvlaran/netalgo/force"
)

// FA2Params configures ForceAtlas2 and ForceAtlas2LinLog.
//
// Mass of a vertex is degree+1. Forces:
//
//	repulsion   Kr·m_i·m_j / d            (every pair)
//	attraction  w·d   or  w·ln(1+d)       (every edge, LinLog)
//	gravity     Kg·m_i  or  Kg·m_i·d      (towards the canvas center, strong)
//
// Speeds follow the ForceAtlas2 swing/traction scheme: the global speed is
// Tau·Σm·traction / Σm·swing, growing by at most 50% per iteration, and each
// vertex moves with Ks·s/(1+s·sqrt(m·swing)), capped at KsMax/|F|.
type FA2Params struct {
	Canvas        Canvas  `yaml:"canvas"`
	MaxIterations int     `yaml:"max_iterations"`
	Epsilon       float64 `yaml:"epsilon"`

	Kr            float64 `yaml:"kr"`
	Gravity       bool    `yaml:"gravity"`
	StrongGravity bool    `yaml:"strong_gravity"`
	Kg            float64 `yaml:"kg"`
	Tau           float64 `yaml:"tau"`
	Ks            float64 `yaml:"ks"`
	KsMax         float64 `yaml:"ks_max"`

	// PreventOverlap measures repulsion and attraction between vertex
	// borders (radius Vertex.Size) instead of centers.
	PreventOverlap bool `yaml:"prevent_overlap"`

	// UseWeights multiplies attraction by the edge weight.
	UseWeights bool `yaml:"use_weights"`
}

// DefaultFA2Params returns Kr=10, gravity on with Kg=1, Tau=1, Ks=0.1,
// KsMax=10, K=300, ε=0.1.
func DefaultFA2Params() FA2Params {
	return FA2Params{
		Canvas:        DefaultCanvas(),
		MaxIterations: 300,
		Epsilon:       0.1,
		Kr:            10,
		Gravity:       true,
		Kg:            1,
		Tau:           1,
		Ks:            0.1,
		KsMax:         10,
	}
}

// overlapRepulsion multiplies Kr for vertices whose circles intersect.
const overlapRepulsion = 100

const (
	methodFA2       = "ForceAtlas2"
	methodFA2LinLog = "ForceAtlas2LinLog"
)

// ForceAtlas2 runs ForceAtlas2 with linear attraction.
func ForceAtlas2(ctx context.Context, g *core.Graph, p FA2Params) (*Result, error) {
	return forceAtlas2(ctx, methodFA2, g, p, false)
}

// ForceAtlas2LinLog runs ForceAtlas2 with logarithmic attraction ln(1+d),
// which tightens clusters.
func ForceAtlas2LinLog(ctx context.Context, g *core.Graph, p FA2Params) (*Result, error) {
	return forceAtlas2(ctx, methodFA2LinLog, g, p, true)
}

func forceAtlas2(ctx context.Context, method string, g *core.Graph, p FA2Params, linLog bool) (*Result, error) {
	if err := validate(method, g, p.Canvas, p.MaxIterations, p.Epsilon); err != nil {
		return nil, err
	}
	if p.Kr < 0 || p.Kg < 0 || p.Tau <= 0 || p.Ks <= 0 || p.KsMax <= 0 {
		return nil, fmt.Errorf("%s: kr=%g kg=%g tau=%g ks=%g ksmax=%g: %w",
			method, p.Kr, p.Kg, p.Tau, p.Ks, p.KsMax, ErrBadParams)
	}

	n := g.VertexCount()
	m := &fa2Model{
		p:      p,
		linLog: linLog,
		dim:    g.Dim,
		edges:  g.Edges,
		mass:   make([]float64, n),
		radii:  make([]float64, n),
		prev:   make([]r3.Vec, n),
		swing:  make([]float64, n),
		center: p.Canvas.bounds(g.Dim).Center(),
	}
	for i, v := range g.Vertices {
		m.mass[i] = float64(v.Degree + 1)
		m.radii[i] = v.Size
	}

	return simulate(ctx, method, g, p.Canvas, p.MaxIterations, p.Epsilon, m)
}

type fa2Model struct {
	p      FA2Params
	linLog bool
	dim    int
	edges  []core.Edge
	mass   []float64
	radii  []float64
	center r3.Vec

	prev  []r3.Vec
	swing []float64
	speed float64
}

// gap returns the distance used by force terms: center distance, or border
// distance with PreventOverlap.
func (m *fa2Model) gap(i, j int, d float64) float64 {
	if !m.p.PreventOverlap {
		return d
	}

	return d - m.radii[i] - m.radii[j]
}

func (m *fa2Model) Forces(_ int, pos, out []r3.Vec) {
	for i := range pos {
		for j := i + 1; j < len(pos); j++ {
			u, d := force.Separation(pos[i], pos[j], i, j, m.dim)
			mm := m.p.Kr * m.mass[i] * m.mass[j]
			var f float64
			switch g := m.gap(i, j, d); {
			case g > 0:
				f = mm / g
			case g < 0:
				f = overlapRepulsion * mm
			}
			out[i] = r3.Sub(out[i], r3.Scale(f, u))
			out[j] = r3.Add(out[j], r3.Scale(f, u))
		}
	}

	for _, e := range m.edges {
		u, d := force.Separation(pos[e.Start], pos[e.End], e.Start, e.End, m.dim)
		g := m.gap(e.Start, e.End, d)
		if g <= 0 {
			continue
		}
		f := g
		if m.linLog {
			f = math.Log1p(g)
		}
		if m.p.UseWeights {
			f *= e.Weight
		}
		out[e.Start] = r3.Add(out[e.Start], r3.Scale(f, u))
		out[e.End] = r3.Sub(out[e.End], r3.Scale(f, u))
	}

	if !m.p.Gravity {
		return
	}
	for i := range pos {
		u, d, ok := force.Unit(pos[i], m.center)
		if !ok {
			continue
		}
		f := m.p.Kg * m.mass[i]
		if m.p.StrongGravity {
			f *= d
		}
		out[i] = r3.Add(out[i], r3.Scale(f, u))
	}
}

func (m *fa2Model) Displace(_ int, pos, forces, next []r3.Vec) {
	var swingSum, tractSum float64
	for i, f := range forces {
		m.swing[i] = r3.Norm(r3.Sub(f, m.prev[i]))
		swingSum += m.mass[i] * m.swing[i]
		tractSum += m.mass[i] * r3.Norm(r3.Add(f, m.prev[i])) / 2
	}

	speed := m.speed
	if swingSum > 0 {
		speed = m.p.Tau * tractSum / swingSum
	}
	if m.speed > 0 {
		speed = math.Min(speed, 1.5*m.speed)
	}
	m.speed = speed

	for i, f := range forces {
		fn := r3.Norm(f)
		if fn == 0 {
			continue
		}
		local := m.p.Ks * speed / (1 + speed*math.Sqrt(m.mass[i]*m.swing[i]))
		local = math.Min(local, m.p.KsMax/fn)
		next[i] = r3.Add(pos[i], r3.Scale(local, f))
	}
	copy(m.prev, forces)
}
