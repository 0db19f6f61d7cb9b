// SPDX-License-Identifier: MIT
// Package: netalgo/tsp

package tsp

import "github.com/katalvlaran/netalgo/core"

// TwoOpt runs greedy random 2-opt on the cycle formed by g's edges.
//
// Each outer iteration tries up to opts.Simulations random cut pairs
// 1 ≤ i < k ≤ n-1 and applies the first reversal of tour[i..k] that strictly
// shortens the tour. Cuts reverse tour[i..k], not tour[i+1..k], so tour[1]
// can move too. A frame is recorded every iteration whether or not a
// move was applied; the two edges a move introduces are highlighted.
//
// Lengths never increase from one frame to the next.
//
// Errors: ErrBadOptions, ErrInvalidGraph, ErrTooFewVertices, ErrNotHamiltonian,
// ErrBadTour.
func TwoOpt(g *core.Graph, opts Options) (*Result, error) {
	s, err := newSearch("TwoOpt", g, opts)
	if err != nil {
		return nil, err
	}

	for it := 0; it < opts.Iterations; it++ {
		var lit []int
		for sim := 0; sim < opts.Simulations; sim++ {
			i, k, ok := twoCuts(s.rng, s.n)
			if !ok {
				continue
			}
			if delta := s.twoOptDelta(i, k); s.improves(delta) {
				lit = s.applyTwoOpt(i, k, delta)
				break
			}
		}
		s.record(opts.Highlight, lit...)
	}
	res, err := s.finish()
	if err != nil {
		return nil, err
	}
	res.BestTour, res.BestLength = CopyTour(res.Tour), res.Length

	return res, nil
}
