// SPDX-License-Identifier: MIT
// Package: netalgo/builder
//
// impl_random.go - RandomEdges(e, connected) constructor.
//
// Contract:
//   • Runs on the vertices already in g (MinVertices ≤ V ≤ MaxVertices).
//   • 0 ≤ e ≤ min(V(V-1)/2, MaxEdges), else ErrTooManyEdges.
//   • connected: grows a random spanning tree first (V-1 edges, counted
//     against e), so the result is connected even for e < V-1.
//   • Remaining edges join random pairs drawn from the pool of vertices
//     whose degree is below V-1; already-connected pairs are skipped.
//   • Stops when e edges were added, the pool holds fewer than two
//     vertices, or the pair budget V(V-1)/2 is spent. Rejected draws are
//     capped at attemptsPerVertexPair·V²; hitting the cap also stops.
//
// Complexity:
//   • Spanning tree O(V), fill O(e + rejected draws) with O(1) pair lookups.
//
// Determinism:
//   • Fully determined by cfg.rng.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netalgo/core"
)

const methodRandomEdges = "RandomEdges"

// RandomEdges returns a Constructor adding up to e random edges.
func RandomEdges(e int, connected bool) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.VertexCount()
		if err := validateVertexCount(methodRandomEdges, n); err != nil {
			return err
		}
		if err := validateEdgeCount(methodRandomEdges, n, e); err != nil {
			return err
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomEdges, ErrNeedRandSource)
		}

		s := &edgeSampler{
			g:         g,
			cfg:       cfg,
			pairs:     core.PairSetOf(g),
			remaining: e,
			budget:    n*(n-1)/2 - g.EdgeCount(),
		}
		if connected {
			s.spanningTree()
		}
		s.fill()

		return nil
	}
}

// edgeSampler carries the mutable state of one RandomEdges run.
type edgeSampler struct {
	g         *core.Graph
	cfg       builderConfig
	pairs     *core.PairSet
	remaining int
	budget    int
}

func (s *edgeSampler) connect(u, v int) {
	s.g.AppendEdgeUnchecked(u, v, core.WithEdgeWeight(s.cfg.weightFn(s.cfg.rng)))
	s.pairs.Add(u, v)
	s.remaining--
	s.budget--
}

// spanningTree joins a random visited vertex to a random unvisited one until
// all vertices are visited.
func (s *edgeSampler) spanningTree() {
	rng := s.cfg.rng
	n := s.g.VertexCount()
	unvisited := make([]int, n)
	for i := range unvisited {
		unvisited[i] = i
	}
	visited := make([]int, 0, n)

	take := func(j int) int {
		v := unvisited[j]
		unvisited[j] = unvisited[len(unvisited)-1]
		unvisited = unvisited[:len(unvisited)-1]
		visited = append(visited, v)
		return v
	}

	take(rng.Intn(len(unvisited)))
	for len(unvisited) > 0 {
		u := visited[rng.Intn(len(visited))]
		v := take(rng.Intn(len(unvisited)))
		if !s.pairs.Contains(u, v) {
			s.connect(u, v)
		}
	}
}

// fill draws random pairs from the pool of non-saturated vertices.
func (s *edgeSampler) fill() {
	rng := s.cfg.rng
	n := s.g.VertexCount()
	full := n - 1

	pool := make([]int, 0, n)
	for i, v := range s.g.Vertices {
		if v.Degree < full {
			pool = append(pool, i)
		}
	}
	drop := func(k int) {
		pool[k] = pool[len(pool)-1]
		pool = pool[:len(pool)-1]
	}

	rejects, maxRejects := 0, attemptsPerVertexPair*n*n
	for s.remaining > 0 && s.budget > 0 && len(pool) >= 2 && rejects < maxRejects {
		a := rng.Intn(len(pool))
		b := rng.Intn(len(pool) - 1)
		if b >= a {
			b++
		}
		u, v := pool[a], pool[b]
		if s.pairs.Contains(u, v) {
			rejects++
			continue
		}
		s.connect(u, v)

		// Remove saturated endpoints, higher pool index first so the
		// lower index stays valid.
		if a < b {
			a, b = b, a
		}
		for _, k := range [2]int{a, b} {
			if s.g.Vertices[pool[k]].Degree >= full {
				drop(k)
			}
		}
	}
}
