// Package prim_kruskal provides an implementation of Prim's Minimum Spanning Tree algorithm.
package prim_kruskal

import (
	"fmt"

	"github.com/emirpasic/gods/trees/binaryheap"

	"github.com/katalvlaran/netalgo/core"
)

// frontierEdge is a heap entry: edge idx leading to vertex to.
type frontierEdge struct {
	weight float64
	idx    int
	to     int
}

// byWeightThenIndex orders frontier edges by weight, then edge-list position.
func byWeightThenIndex(a, b interface{}) int {
	x, y := a.(frontierEdge), b.(frontierEdge)
	switch {
	case x.weight < y.weight:
		return -1
	case x.weight > y.weight:
		return 1
	case x.idx < y.idx:
		return -1
	case x.idx > y.idx:
		return 1
	default:
		return 0
	}
}

// Prim grows a minimum spanning tree from the root vertex (WithRoot, default
// 0). Stale heap entries whose far endpoint is already in the tree are
// skipped lazily.
//
// Errors: ErrInvalidGraph, ErrRootOutOfRange.
func Prim(g *core.Graph, opts ...Option) (*Result, error) {
	if err := validateGraph("Prim", g); err != nil {
		return nil, err
	}
	o := resolve(opts)
	n := g.VertexCount()
	rec := newRecorder(g, o.Highlight)
	if n == 0 {
		return rec.finish(), nil
	}
	if o.Root < 0 || o.Root >= n {
		return nil, fmt.Errorf("Prim: root=%d n=%d: %w", o.Root, n, ErrRootOutOfRange)
	}

	incident := g.IncidentEdges()
	inTree := make([]bool, n)
	pq := binaryheap.NewWith(byWeightThenIndex)
	grow := func(v int) {
		inTree[v] = true
		for _, idx := range incident[v] {
			if to := g.Edges[idx].Other(v); !inTree[to] {
				pq.Push(frontierEdge{weight: g.Edges[idx].Weight, idx: idx, to: to})
			}
		}
	}

	grow(o.Root)
	for !pq.Empty() && !rec.done() {
		top, _ := pq.Pop()
		fe := top.(frontierEdge)
		if inTree[fe.to] {
			continue
		}
		rec.accept(fe.idx)
		grow(fe.to)
	}

	return rec.finish(), nil
}
