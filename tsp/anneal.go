// SPDX-License-Identifier: MIT
// Package: netalgo/tsp

package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/netalgo/core"
)

// FloorTemperature returns the temperature reached after decaying start by
// cooling once per iteration for the whole budget.
func FloorTemperature(start, cooling float64, iterations int) float64 {
	return start * math.Pow(cooling, float64(iterations))
}

// Annealing runs 2-opt with simulated-annealing acceptance.
//
// Moves are drawn as in TwoOpt. A shorter tour is always accepted; a tour
// longer by Δ is accepted with probability exp(-Δ/T). T starts at
// opts.StartTemperature and is multiplied by opts.Cooling after every outer
// iteration, never dropping below FloorTemperature. Each frame colors all
// edges on the HotColor→ColdColor gradient by how far T has cooled.
//
// Result.BestTour holds the shortest tour seen, which may be shorter than
// the final tour.
//
// Errors: ErrBadOptions, ErrInvalidGraph, ErrTooFewVertices, ErrNotHamiltonian,
// ErrBadTour.
func Annealing(g *core.Graph, opts Options) (*Result, error) {
	if !(opts.StartTemperature > 0) || math.IsInf(opts.StartTemperature, 0) {
		return nil, fmt.Errorf("Annealing: StartTemperature=%g: %w", opts.StartTemperature, ErrBadOptions)
	}
	if !(opts.Cooling > 0 && opts.Cooling < 1) {
		return nil, fmt.Errorf("Annealing: Cooling=%g: %w", opts.Cooling, ErrBadOptions)
	}
	s, err := newSearch("Annealing", g, opts)
	if err != nil {
		return nil, err
	}

	t0 := opts.StartTemperature
	floor := FloorTemperature(t0, opts.Cooling, opts.Iterations)
	grad := core.Gradient{From: opts.HotColor, To: opts.ColdColor}
	temp := t0
	for it := 0; it < opts.Iterations; it++ {
		for sim := 0; sim < opts.Simulations; sim++ {
			i, k, ok := twoCuts(s.rng, s.n)
			if !ok {
				continue
			}
			delta := s.twoOptDelta(i, k)
			if s.improves(delta) || s.rng.Float64() < math.Exp(-(math.Sqrt(math.Max(s.sq+delta, 0))-s.length())/temp) {
				s.applyTwoOpt(i, k, delta)
				s.keepBest()
				break
			}
		}
		s.recordColored(grad.Fraction(cooled(t0, floor, temp)))
		temp = math.Max(temp*opts.Cooling, floor)
	}

	return s.finish()
}

// cooled maps temp in [floor, t0] to [0, 1], 0 being hot.
func cooled(t0, floor, temp float64) float64 {
	if t0 <= floor {
		return 1
	}

	return math.Min(math.Max((t0-temp)/(t0-floor), 0), 1)
}
