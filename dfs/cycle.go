// SPDX-License-Identifier: MIT
// Package: netalgo/dfs

package dfs

import "github.com/katalvlaran/netalgo/core"

// cycleFinder colors vertices White/Gray/Black and stops at the first back
// edge, reconstructing the cycle from the Gray path.
type cycleFinder struct {
	g     *core.Graph
	inc   [][]int
	state []int
	path  []int
	cycle []int
}

// FindCycle returns one simple cycle of g as a closed walk
// [v0, v1, ..., vk, v0], or nil and false if g is a forest. Components are
// searched in vertex order; the walk starts at the vertex where the back
// edge closes.
func FindCycle(g *core.Graph) ([]int, bool) {
	if g == nil {
		return nil, false
	}
	f := &cycleFinder{
		g:     g,
		inc:   g.IncidentEdges(),
		state: make([]int, g.VertexCount()),
	}
	for v := range f.state {
		if f.state[v] == White && f.visit(v, -1) {
			return f.cycle, true
		}
	}

	return nil, false
}

// visit explores v, entered through edge via (-1 for roots). It returns
// true once a cycle has been recorded.
func (f *cycleFinder) visit(v, via int) bool {
	f.state[v] = Gray
	f.path = append(f.path, v)

	for _, ei := range f.inc[v] {
		if ei == via {
			continue
		}
		e := f.g.Edges[ei]
		u := e.End
		if u == v {
			u = e.Start
		}
		switch f.state[u] {
		case Gray:
			f.cycle = f.closeAt(u)
			return true
		case White:
			if f.visit(u, ei) {
				return true
			}
		}
	}

	f.state[v] = Black
	f.path = f.path[:len(f.path)-1]

	return false
}

// closeAt returns the path suffix starting at u, closed back to u.
func (f *cycleFinder) closeAt(u int) []int {
	i := len(f.path) - 1
	for f.path[i] != u {
		i--
	}
	out := append([]int(nil), f.path[i:]...)

	return append(out, u)
}

// IsForest reports whether the edges of g form a forest, that is whether
// E = V - components. A nil graph is a forest.
func IsForest(g *core.Graph) bool {
	if g == nil {
		return true
	}
	res, err := DFS(g, 0, WithFullTraversal())
	if err != nil {
		return false
	}
	roots := 0
	for _, p := range res.Parent {
		if p < 0 {
			roots++
		}
	}

	return g.EdgeCount() == g.VertexCount()-roots
}
