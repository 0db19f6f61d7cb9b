// Package prim_kruskal provides an implementation of Kruskal's Minimum Spanning Tree algorithm.
package prim_kruskal

import (
	"slices"

	"github.com/katalvlaran/netalgo/core"
)

// Kruskal computes a minimum spanning tree (forest for disconnected input)
// of g using a disjoint-set forest with path compression and union by rank.
//
// Steps:
//  1. Validate g.
//  2. Stable-sort edge indices by ascending weight.
//  3. Accept each edge whose endpoints lie in different sets; union them.
//  4. Stop after V-1 acceptances or when edges run out.
//
// Errors: ErrInvalidGraph.
func Kruskal(g *core.Graph, opts ...Option) (*Result, error) {
	if err := validateGraph("Kruskal", g); err != nil {
		return nil, err
	}
	o := resolve(opts)

	order := make([]int, len(g.Edges))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		wa, wb := g.Edges[a].Weight, g.Edges[b].Weight
		switch {
		case wa < wb:
			return -1
		case wa > wb:
			return 1
		default:
			return 0
		}
	})

	ds := newDisjointSet(g.VertexCount())
	rec := newRecorder(g, o.Highlight)
	for _, idx := range order {
		if rec.done() {
			break
		}
		e := g.Edges[idx]
		if ds.union(e.Start, e.End) {
			rec.accept(idx)
		}
	}

	return rec.finish(), nil
}

// disjointSet is a union-find forest over vertex indices.
type disjointSet struct {
	parent []int
	rank   []int
}

func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{parent: make([]int, n), rank: make([]int, n)}
	for i := range ds.parent {
		ds.parent[i] = i
	}

	return ds
}

// find returns the root of u, compressing the path to its grandparent.
func (ds *disjointSet) find(u int) int {
	for ds.parent[u] != u {
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}

	return u
}

// union merges the sets of u and v and reports whether they were disjoint.
func (ds *disjointSet) union(u, v int) bool {
	ru, rv := ds.find(u), ds.find(v)
	if ru == rv {
		return false
	}
	if ds.rank[ru] < ds.rank[rv] {
		ru, rv = rv, ru
	}
	ds.parent[rv] = ru
	if ds.rank[ru] == ds.rank[rv] {
		ds.rank[ru]++
	}

	return true
}
