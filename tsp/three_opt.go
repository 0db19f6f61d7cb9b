// SPDX-License-Identifier: MIT
// Package: netalgo/tsp

package tsp

import "github.com/katalvlaran/netalgo/core"

// segKind names one inner segment and its orientation.
type segKind uint8

const (
	segS1  segKind = iota // S1 = tour[i:j]
	segS1R                // S1 reversed
	segS2                 // S2 = tour[j:k]
	segS2R                // S2 reversed
)

// The seven reconnections P+X+Y+S3 other than the identity P+S1+S2+S3.
var (
	reconnectX = [...]segKind{segS1R, segS1, segS2R, segS1R, segS2, segS2R, segS2}
	reconnectY = [...]segKind{segS2, segS2R, segS1R, segS2R, segS1R, segS1, segS1}
)

// ThreeOpt runs greedy random 3-opt on the cycle formed by g's edges.
//
// Each attempt draws 1 ≤ i < j < k ≤ n, removes the edges entering tour[i],
// tour[j] and tour[k], and evaluates the seven ways of reconnecting
// S1 = tour[i:j] and S2 = tour[j:k] (swapped, reversed or both). The first
// strictly shorter reconnection is applied and its three new edges are
// highlighted. Frames follow the TwoOpt contract.
//
// Errors: ErrBadOptions, ErrInvalidGraph, ErrTooFewVertices, ErrNotHamiltonian,
// ErrBadTour.
func ThreeOpt(g *core.Graph, opts Options) (*Result, error) {
	s, err := newSearch("ThreeOpt", g, opts)
	if err != nil {
		return nil, err
	}

	for it := 0; it < opts.Iterations; it++ {
		var lit []int
		for sim := 0; sim < opts.Simulations && lit == nil; sim++ {
			i, j, k, ok := threeCuts(s.rng, s.n)
			if !ok {
				continue
			}
			lit = s.tryThreeOpt(i, j, k)
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

// tryThreeOpt applies the first improving reconnection for cuts (i,j,k) and
// returns the positions of the new edges, or nil.
func (s *search) tryThreeOpt(i, j, k int) []int {
	t := s.tour
	a, b := t[i-1], t[i]
	c, d := t[j-1], t[j]
	e, f := t[k-1], t[k]
	removed := s.sql(a, b) + s.sql(c, d) + s.sql(e, f)

	for m := range reconnectX {
		x, y := reconnectX[m], reconnectY[m]
		xFirst, xLast := segFirstLast(x, b, c, d, e)
		yFirst, yLast := segFirstLast(y, b, c, d, e)
		delta := s.sql(a, xFirst) + s.sql(xLast, yFirst) + s.sql(yLast, f) - removed
		if !s.improves(delta) {
			continue
		}

		s.tour = reconnect(t, i, j, k, x, y)
		s.sq += delta
		s.res.Accepted++
		xLen := j - i
		if x == segS2 || x == segS2R {
			xLen = k - j
		}

		return []int{i - 1, i - 1 + xLen, k - 1}
	}

	return nil
}

// segFirstLast returns the end vertices of a segment in emission order,
// given b=tour[i], c=tour[j-1], d=tour[j], e=tour[k-1].
func segFirstLast(kind segKind, b, c, d, e int) (first, last int) {
	switch kind {
	case segS1:
		return b, c
	case segS1R:
		return c, b
	case segS2:
		return d, e
	default:
		return e, d
	}
}

// reconnect assembles P + X + Y + S3 and closes the tour.
// P=tour[:i], S1=tour[i:j], S2=tour[j:k], S3=tour[k:n].
func reconnect(tour []int, i, j, k int, x, y segKind) []int {
	n := len(tour) - 1
	out := make([]int, 0, n+1)
	out = append(out, tour[:i]...)
	emit := func(kind segKind) {
		seg := tour[i:j]
		if kind == segS2 || kind == segS2R {
			seg = tour[j:k]
		}
		if kind == segS1 || kind == segS2 {
			out = append(out, seg...)
			return
		}
		for p := len(seg) - 1; p >= 0; p-- {
			out = append(out, seg[p])
		}
	}
	emit(x)
	emit(y)
	out = append(out, tour[k:n]...)

	return append(out, tour[0])
}
