// SPDX-License-Identifier: MIT
// Package: netalgo/force

package force

import (
	"context"
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/netalgo/core"
)

// ErrBadParams indicates a Simulator with meaningless settings.
var ErrBadParams = errors.New("force: invalid simulation parameters")

// State is the lifecycle phase of a simulation run.
type State int

const (
	StateInitializing State = iota
	StateIterating
	StateConverged
	StateMaxIterationsReached
)

// String returns a lower-case state name.
func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateIterating:
		return "iterating"
	case StateConverged:
		return "converged"
	case StateMaxIterationsReached:
		return "max-iterations-reached"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Model supplies the physics of one layout algorithm.
type Model interface {
	// Forces writes the net force on every vertex into out, which arrives
	// zeroed.
	Forces(iter int, pos, out []r3.Vec)

	// Displace writes the proposed position of every vertex into next.
	// Proposals are clamped to the bounds by the Simulator.
	Displace(iter int, pos, forces, next []r3.Vec)
}

// Simulator drives a Model until convergence or the iteration cap.
type Simulator struct {
	Bounds        Bounds
	MaxIterations int
	Epsilon       float64
}

// Result is the outcome of Simulator.Run.
type Result struct {
	Positions  []r3.Vec
	Frames     *core.Sequence[core.PositionFrame]
	Iterations int
	State      State
	MaxForce   float64
}

// Run iterates m starting from init, which is not modified. Each iteration
// computes forces, displaces, clamps, records a frame, then stops if the
// largest force magnitude was below Epsilon. A run with zero iterations
// records the clamped initial placement as its only frame.
//
// Errors: ErrBadParams, or the context error if ctx is done between
// iterations.
func (s Simulator) Run(ctx context.Context, init []r3.Vec, m Model) (*Result, error) {
	if s.MaxIterations < 0 || s.Epsilon < 0 || math.IsNaN(s.Epsilon) {
		return nil, fmt.Errorf("force: MaxIterations=%d Epsilon=%g: %w", s.MaxIterations, s.Epsilon, ErrBadParams)
	}

	n := len(init)
	pos := make([]r3.Vec, n)
	for i, p := range init {
		pos[i] = s.Bounds.truncate(p)
	}
	forces := make([]r3.Vec, n)
	next := make([]r3.Vec, n)
	res := &Result{
		Frames: core.NewSequence[core.PositionFrame](s.MaxIterations),
		State:  StateInitializing,
	}

	res.State = StateIterating
	for iter := 0; iter < s.MaxIterations; iter++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		clear(forces)
		m.Forces(iter, pos, forces)
		if s.Bounds.Dim != 3 {
			for i := range forces {
				forces[i].Z = 0
			}
		}
		res.MaxForce = MaxMagnitude(forces)

		copy(next, pos)
		m.Displace(iter, pos, forces, next)
		for i := range pos {
			if !finiteVec(next[i]) {
				continue
			}
			pos[i] = s.Bounds.Clamp(pos[i], next[i])
		}
		res.Frames.Append(core.SnapshotPositions(pos))
		res.Iterations++

		if res.MaxForce < s.Epsilon {
			res.State = StateConverged
			break
		}
	}
	if res.State == StateIterating {
		res.State = StateMaxIterationsReached
	}
	if res.Frames.Len() == 0 {
		res.Frames.Append(core.SnapshotPositions(pos))
	}
	res.Positions = pos

	return res, nil
}

func finiteVec(v r3.Vec) bool {
	return !math.IsNaN(v.X+v.Y+v.Z) && !math.IsInf(v.X+v.Y+v.Z, 0)
}
