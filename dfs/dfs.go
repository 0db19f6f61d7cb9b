// SPDX-License-Identifier: MIT
// Package: netalgo/dfs

package dfs

import (
	"fmt"

	"github.com/katalvlaran/netalgo/core"
)

// walker holds the traversal state.
type walker struct {
	adj  [][]int
	opts Options
	res  *Result
}

// DFS performs depth-first search on g from start, or over every component
// with WithFullTraversal (start is then ignored). Neighbors are explored in
// ascending index order.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, OnVisit errors.
func DFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	var o Options
	for _, fn := range opts {
		fn(&o)
	}
	n := g.VertexCount()
	if !o.FullTraversal && (start < 0 || start >= n) {
		return nil, fmt.Errorf("dfs: DFS(%d) in %d vertices: %w", start, n, ErrStartVertexNotFound)
	}

	res := &Result{Order: make([]int, 0, n), Depth: make([]int, n), Parent: make([]int, n)}
	for i := range res.Depth {
		res.Depth[i], res.Parent[i] = -1, -1
	}
	w := &walker{adj: g.Adjacency(), opts: o, res: res}

	if !o.FullTraversal {
		return res, w.traverse(start, -1, 0)
	}
	for v := 0; v < n; v++ {
		if res.Depth[v] < 0 {
			if err := w.traverse(v, -1, 0); err != nil {
				return res, err
			}
		}
	}

	return res, nil
}

func (w *walker) traverse(v, parent, depth int) error {
	w.res.Depth[v] = depth
	w.res.Parent[v] = parent
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v, depth); err != nil {
			return fmt.Errorf("dfs: OnVisit(%d): %w", v, err)
		}
	}

	for _, u := range w.adj[v] {
		if w.res.Depth[u] >= 0 {
			continue
		}
		if err := w.traverse(u, v, depth+1); err != nil {
			return err
		}
	}

	w.res.Order = append(w.res.Order, v)

	return nil
}
