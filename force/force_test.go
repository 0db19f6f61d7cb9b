// SPDX-License-Identifier: MIT

package force_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/netalgo/force"
)

func TestUnitAndDistance(t *testing.T) {
	u, d, ok := force.Unit(r3.Vec{}, r3.Vec{X: 3, Y: 4})
	require.True(t, ok)
	assert.InDelta(t, 5, d, 1e-12)
	assert.InDelta(t, 0.6, u.X, 1e-12)
	assert.InDelta(t, 0.8, u.Y, 1e-12)
	assert.InDelta(t, 5, force.Distance(r3.Vec{}, r3.Vec{X: 3, Y: 4}), 1e-12)

	_, _, ok = force.Unit(r3.Vec{X: 1}, r3.Vec{X: 1})
	assert.False(t, ok)
}

func TestSeparation_Coincident(t *testing.T) {
	p := r3.Vec{X: 10, Y: 10}
	for _, dim := range []int{2, 3} {
		u, d := force.Separation(p, p, 2, 5, dim)
		assert.Equal(t, force.MinDistance, d)
		assert.InDelta(t, 1, r3.Norm(u), 1e-12)
		if dim == 2 {
			assert.Zero(t, u.Z)
		}
		back, _ := force.Separation(p, p, 5, 2, dim)
		assert.InDelta(t, 0, r3.Norm(r3.Add(u, back)), 1e-12, "opposite pairs push apart")
	}

	other, _ := force.Separation(p, p, 2, 6, 2)
	first, _ := force.Separation(p, p, 2, 5, 2)
	assert.NotEqual(t, first, other)
}

func TestBoundsClamp_MotionVector(t *testing.T) {
	b := force.NewBounds(100, 100, 100, 2)
	// Moving from (50,50) to (150,100) leaves through x=100 at t=0.5.
	got := b.Clamp(r3.Vec{X: 50, Y: 50}, r3.Vec{X: 150, Y: 100})
	assert.InDelta(t, 100, got.X, 1e-12)
	assert.InDelta(t, 75, got.Y, 1e-12)
	assert.Zero(t, got.Z)

	// Inside targets are untouched.
	in := r3.Vec{X: 1, Y: 99}
	assert.Equal(t, in, b.Clamp(r3.Vec{X: 50, Y: 50}, in))

	// Corner exit picks the earliest crossing.
	got = b.Clamp(r3.Vec{X: 90, Y: 10}, r3.Vec{X: 130, Y: -30})
	assert.InDelta(t, 100, got.X, 1e-12)
	assert.InDelta(t, 0, got.Y, 1e-12)

	b3 := force.NewBounds(10, 10, 10, 3)
	got = b3.Clamp(r3.Vec{X: 5, Y: 5, Z: 5}, r3.Vec{X: 5, Y: 5, Z: 25})
	assert.Equal(t, r3.Vec{X: 5, Y: 5, Z: 10}, got)
	assert.Equal(t, r3.Vec{X: 5, Y: 5, Z: 5}, b3.Center())
}

func TestConverged(t *testing.T) {
	f := []r3.Vec{{X: 0.01}, {Y: -0.05}}
	assert.True(t, force.Converged(f, 0.1))
	assert.False(t, force.Converged(f, 0.05))
	assert.InDelta(t, 0.05, force.MaxMagnitude(f), 1e-12)
}

// pull attracts every vertex toward a fixed target with force (target-p).
type pull struct{ target r3.Vec }

func (m pull) Forces(_ int, pos, out []r3.Vec) {
	for i, p := range pos {
		out[i] = r3.Sub(m.target, p)
	}
}

func (m pull) Displace(_ int, pos, forces, next []r3.Vec) {
	for i := range pos {
		next[i] = r3.Add(pos[i], r3.Scale(0.5, forces[i]))
	}
}

func TestSimulator_Converges(t *testing.T) {
	s := force.Simulator{Bounds: force.NewBounds(100, 100, 0, 2), MaxIterations: 200, Epsilon: 0.01}
	init := []r3.Vec{{X: 0, Y: 0}, {X: 100, Y: 100}}
	res, err := s.Run(context.Background(), init, pull{target: r3.Vec{X: 50, Y: 50}})
	require.NoError(t, err)
	assert.Equal(t, force.StateConverged, res.State)
	assert.Equal(t, res.Iterations, res.Frames.Len())
	assert.Less(t, res.Iterations, 200)

	last, ok := res.Frames.Last()
	require.True(t, ok)
	assert.Equal(t, res.Positions, []r3.Vec(last))
	assert.Equal(t, r3.Vec{}, init[0], "input untouched")
}

func TestSimulator_MaxIterationsAndClamp(t *testing.T) {
	s := force.Simulator{Bounds: force.NewBounds(10, 10, 0, 2), MaxIterations: 5, Epsilon: 1e-9}
	res, err := s.Run(context.Background(), []r3.Vec{{X: 5, Y: 5}}, pull{target: r3.Vec{X: 1000, Y: 5}})
	require.NoError(t, err)
	assert.Equal(t, force.StateMaxIterationsReached, res.State)
	assert.Equal(t, 5, res.Frames.Len())
	for _, f := range res.Frames.All() {
		assert.LessOrEqual(t, f[0].X, 10.0)
	}
	assert.Equal(t, "max-iterations-reached", res.State.String())
}

func TestSimulator_ZeroIterationsAndErrors(t *testing.T) {
	s := force.Simulator{Bounds: force.NewBounds(10, 10, 0, 2)}
	res, err := s.Run(context.Background(), []r3.Vec{{X: 50, Y: 5}}, pull{})
	require.NoError(t, err)
	require.Equal(t, 1, res.Frames.Len())
	assert.Equal(t, 10.0, res.Positions[0].X, "initial placement pulled into the box")

	_, err = force.Simulator{MaxIterations: -1}.Run(context.Background(), nil, pull{})
	assert.ErrorIs(t, err, force.ErrBadParams)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = force.Simulator{Bounds: force.NewBounds(1, 1, 0, 2), MaxIterations: 3, Epsilon: math.SmallestNonzeroFloat64}.
		Run(ctx, []r3.Vec{{}}, pull{})
	assert.ErrorIs(t, err, context.Canceled)
}
