// SPDX-License-Identifier: MIT
// Package: netalgo/tsp

package tsp

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/netalgo/core"
)

// Sentinel errors.
var (
	// ErrInvalidGraph indicates a nil graph or one failing core validation.
	ErrInvalidGraph = errors.New("tsp: invalid graph")

	// ErrNotHamiltonian indicates the edge set is not one cycle through all vertices.
	ErrNotHamiltonian = errors.New("tsp: edges do not form a Hamiltonian cycle")

	// ErrTooFewVertices indicates fewer than MinVertices vertices.
	ErrTooFewVertices = errors.New("tsp: too few vertices")

	// ErrBadOptions indicates a negative budget, a zero attempt count or an
	// unusable temperature schedule.
	ErrBadOptions = errors.New("tsp: invalid options")

	// ErrUnknownAlgorithm indicates an unsupported Options.Algo.
	ErrUnknownAlgorithm = errors.New("tsp: unknown algorithm")

	// ErrBadTour indicates a tour slice that is not a closed permutation.
	ErrBadTour = errors.New("tsp: malformed tour")
)

// Algorithm selects the local search used by Solve.
type Algorithm int

const (
	// TwoOptOnly runs greedy random 2-opt.
	TwoOptOnly Algorithm = iota
	// ThreeOptOnly runs greedy random 3-opt.
	ThreeOptOnly
	// AnnealingTwoOpt runs 2-opt with simulated-annealing acceptance.
	AnnealingTwoOpt
)

// String returns the short algorithm name used by configs and the CLI.
func (a Algorithm) String() string {
	switch a {
	case TwoOptOnly:
		return "2opt"
	case ThreeOptOnly:
		return "3opt"
	case AnnealingTwoOpt:
		return "annealing"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a short name back to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "2opt", "2-opt", "twoopt":
		return TwoOptOnly, nil
	case "3opt", "3-opt", "threeopt":
		return ThreeOptOnly, nil
	case "annealing", "sa", "sa2opt":
		return AnnealingTwoOpt, nil
	default:
		return 0, fmt.Errorf("ParseAlgorithm: %q: %w", s, ErrUnknownAlgorithm)
	}
}

// MinVertices is the smallest cycle the searches accept.
const MinVertices = 3

// Defaults.
const (
	DefaultIterations       = 5025
	DefaultSimulations      = 100
	DefaultStartTemperature = 100.0
	DefaultCooling          = 0.992
	defaultRNGSeed          = 1
)

// Default frame colors.
var (
	DefaultHighlight = core.Color{R: 255, G: 0, B: 0}
	DefaultHotColor  = core.Color{R: 255, G: 0, B: 0}
	DefaultColdColor = core.Color{R: 0, G: 0, B: 255}
)

// Options configures the local searches.
type Options struct {
	// Algo is used by Solve only.
	Algo Algorithm

	// Iterations is the number of outer iterations (one frame each).
	Iterations int

	// Simulations is the number of random moves tried per outer iteration.
	Simulations int

	// Seed drives move selection; 0 means a fixed default seed.
	Seed int64

	// Highlight colors the edges introduced by an accepted move.
	Highlight core.Color

	// StartTemperature is the initial annealing temperature.
	StartTemperature float64

	// Cooling is the per-iteration decay factor, in (0,1).
	Cooling float64

	// HotColor and ColdColor are the annealing frame gradient endpoints.
	HotColor  core.Color
	ColdColor core.Color
}

// DefaultOptions returns 2-opt with 5025 iterations of 100 attempts,
// red highlights and a 100→100·0.992^5025 temperature schedule.
func DefaultOptions() Options {
	return Options{
		Algo:             TwoOptOnly,
		Iterations:       DefaultIterations,
		Simulations:      DefaultSimulations,
		Highlight:        DefaultHighlight,
		StartTemperature: DefaultStartTemperature,
		Cooling:          DefaultCooling,
		HotColor:         DefaultHotColor,
		ColdColor:        DefaultColdColor,
	}
}

// Result holds the outcome of a search.
type Result struct {
	// Tour is the final closed tour: len n+1, Tour[0] == Tour[n].
	Tour []int

	// Length is TourLength of Tour.
	Length float64

	// Lengths[i] is the tour length shown by frame i.
	Lengths []float64

	// Accepted counts applied moves.
	Accepted int

	// BestTour and BestLength record the shortest tour seen. For the greedy
	// searches they equal Tour and Length.
	BestTour   []int
	BestLength float64

	// Frames holds the initial cycle followed by one frame per iteration.
	Frames *core.Sequence[core.EdgeFrame]
}

// Apply replaces the edges of g with the final tour frame.
func (r *Result) Apply(g *core.Graph) {
	last, ok := r.Frames.Last()
	if !ok {
		return
	}
	g.Edges = append(g.Edges[:0], last...)
	core.RecomputeDegrees(g)
}
