// Package bfs provides breadth-first search over a core.Graph,
// returning hop distances, parent links, and visit order.
package bfs

import (
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/netalgo/core"
)

// queueItem pairs a vertex index with its BFS depth.
type queueItem struct {
	v     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	adj   [][]int
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g starting from start.
// Returns ErrGraphNil, ErrStartVertexNotFound, a context error, or any error
// returned by the OnVisit hook.
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	n := g.VertexCount()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("bfs: start=%d n=%d: %w", start, n, ErrStartVertexNotFound)
	}

	w := &walker{
		adj:   g.Adjacency(),
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = -1
		w.res.Parent[i] = -1
	}
	w.enqueue(start, 0, -1)

	return w.res, w.loop()
}

func (w *walker) enqueue(v, d, parent int) {
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.v)
		if err := w.opts.OnVisit(item.v, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.v, err)
		}

		for _, nbr := range w.adj[item.v] {
			if w.res.Depth[nbr] >= 0 {
				continue
			}
			w.enqueue(nbr, item.depth+1, item.v)
		}
	}

	return nil
}

// Components returns the connected components of g, each sorted ascending,
// ordered by their smallest vertex.
func Components(g *core.Graph) [][]int {
	if g == nil {
		return nil
	}
	n := g.VertexCount()
	seen := make([]bool, n)
	var comps [][]int
	for s := 0; s < n; s++ {
		if seen[s] {
			continue
		}
		var comp []int
		_, _ = BFS(g, s, WithOnVisit(func(v, _ int) error {
			seen[v] = true
			comp = append(comp, v)
			return nil
		}))
		slices.Sort(comp)
		comps = append(comps, comp)
	}

	return comps
}

// IsConnected reports whether g has at most one connected component.
func IsConnected(g *core.Graph) bool {
	if g == nil || g.VertexCount() == 0 {
		return true
	}
	res, err := BFS(g, 0)

	return err == nil && len(res.Order) == g.VertexCount()
}
