// SPDX-License-Identifier: MIT
// Package: netalgo/tsp

package tsp

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/netalgo/core"
)

// Solve runs the search selected by opts.Algo.
//
// Errors: ErrUnknownAlgorithm plus whatever the selected search returns.
func Solve(g *core.Graph, opts Options) (*Result, error) {
	switch opts.Algo {
	case TwoOptOnly:
		return TwoOpt(g, opts)
	case ThreeOptOnly:
		return ThreeOpt(g, opts)
	case AnnealingTwoOpt:
		return Annealing(g, opts)
	default:
		return nil, fmt.Errorf("Solve: %v: %w", opts.Algo, ErrUnknownAlgorithm)
	}
}

// relTolerance scales the smallest squared-sum decrease counted as a gain.
const relTolerance = 1e-12

func validateOptions(method string, opts Options) error {
	if opts.Iterations < 0 {
		return fmt.Errorf("%s: Iterations=%d: %w", method, opts.Iterations, ErrBadOptions)
	}
	if opts.Simulations < 1 {
		return fmt.Errorf("%s: Simulations=%d: %w", method, opts.Simulations, ErrBadOptions)
	}

	return nil
}

// search is the state shared by all drivers: the working tour, its squared
// length sum and the frames recorded so far.
type search struct {
	method string
	g      *core.Graph
	n      int
	rng    *rand.Rand
	tour   []int
	sq     float64
	best   float64
	fb     frameBuilder
	res    *Result
}

func newSearch(method string, g *core.Graph, opts Options) (*search, error) {
	if err := validateOptions(method, opts); err != nil {
		return nil, err
	}
	if g == nil {
		return nil, fmt.Errorf("%s: nil graph: %w", method, ErrInvalidGraph)
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", method, ErrInvalidGraph, err)
	}
	tour, err := TourFromEdges(g)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	s := &search{
		method: method,
		g:      g,
		n:      g.VertexCount(),
		rng:    rngFromSeed(opts.Seed),
		tour:   tour,
		sq:     squaredSum(g.Vertices, tour),
		fb:     frameBuilder{template: g.Edges},
		res: &Result{
			Lengths: make([]float64, 0, opts.Iterations+1),
			Frames:  core.NewSequence[core.EdgeFrame](opts.Iterations + 1),
		},
	}
	s.res.Frames.Append(core.SnapshotEdges(g.Edges))
	s.res.Lengths = append(s.res.Lengths, s.length())
	s.keepBest()

	return s, nil
}

func (s *search) length() float64 { return math.Sqrt(s.sq) }

// improves reports whether delta shortens the tour by more than rounding noise.
func (s *search) improves(delta float64) bool { return delta < -s.sq*relTolerance }

func (s *search) sql(a, b int) float64 { return squaredLength(s.g.Vertices, a, b) }

// record appends the current tour as a frame with the given positions lit.
func (s *search) record(highlight core.Color, lit ...int) {
	s.res.Frames.Append(s.fb.frame(s.tour, highlight, lit...))
	s.res.Lengths = append(s.res.Lengths, s.length())
}

// recordColored appends the current tour with every edge in c.
func (s *search) recordColored(c core.Color) {
	s.res.Frames.Append(s.fb.colored(s.tour, c))
	s.res.Lengths = append(s.res.Lengths, s.length())
}

func (s *search) keepBest() {
	if s.res.BestTour == nil || s.sq < s.best {
		s.best = s.sq
		s.res.BestTour = CopyTour(s.tour)
		s.res.BestLength = s.length()
	}
}

// twoOptDelta is the squared-sum change of reversing tour[i..k].
func (s *search) twoOptDelta(i, k int) float64 {
	a, b, c, d := s.tour[i-1], s.tour[i], s.tour[k], s.tour[k+1]

	return s.sql(a, c) + s.sql(b, d) - s.sql(a, b) - s.sql(c, d)
}

// applyTwoOpt reverses tour[i..k] and returns the positions of the two new edges.
func (s *search) applyTwoOpt(i, k int, delta float64) []int {
	reverseArcInPlace(s.tour, i, k)
	s.sq += delta
	s.res.Accepted++

	return []int{i - 1, k}
}

// finish recomputes the final length and checks that the moves left a
// closed permutation behind.
func (s *search) finish() (*Result, error) {
	if err := ValidateTour(s.tour, s.n); err != nil {
		return nil, fmt.Errorf("%s: %w", s.method, err)
	}
	s.sq = squaredSum(s.g.Vertices, s.tour)
	s.res.Tour = s.tour
	s.res.Length = s.length()

	return s.res, nil
}
