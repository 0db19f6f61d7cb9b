// SPDX-License-Identifier: MIT
// Package: netalgo/coloring

package coloring

import "github.com/katalvlaran/netalgo/core"

// MisraGries colors the edges of g with at most Δ+1 colors.
//
// For each uncolored edge (u,v) in edge order:
//  1. Build a maximal fan F = [v=F0, F1, ..., Fk] of u, where (u,F[i+1]) has
//     a color free on F[i].
//  2. Pick c free on u and d free on Fk; invert the cd path starting at u.
//  3. Take the first w in F with d free on w whose prefix F0..w is still a
//     fan, rotate that prefix and color (u,w) with d.
//
// Every step records one frame with all currently colored edges rendered
// by color index, since rotation and inversion may recolor earlier edges.
//
// Errors: ErrInvalidGraph.
func MisraGries(g *core.Graph, opts Options) (*Result, error) {
	if err := validateGraph("MisraGries", g); err != nil {
		return nil, err
	}

	st := newEdgeState(g)
	grad := opts.gradient(st.palette)
	work := g.Clone()
	res := &Result{Frames: core.NewSequence[core.GraphFrame](len(g.Edges))}

	for idx := range g.Edges {
		st.colorEdge(idx)
		for i, c := range st.color {
			if c >= 0 {
				work.Edges[i].Color = grad.At(c)
				work.Edges[i].Alpha = 1
			}
		}
		res.Frames.Append(core.SnapshotGraph(work))
	}
	if len(g.Edges) == 0 {
		res.Frames.Append(core.SnapshotGraph(work))
	}
	res.Colors = st.color
	res.NumColors = countColors(st.color)

	return res, nil
}

// edgeState tracks edge colors and, per vertex, which edge holds each color.
type edgeState struct {
	g       *core.Graph
	palette int
	color   []int
	at      [][]int
	edge    map[int]int
}

func newEdgeState(g *core.Graph) *edgeState {
	st := &edgeState{
		g:       g,
		palette: g.MaxDegree() + 1,
		color:   make([]int, len(g.Edges)),
		at:      make([][]int, g.VertexCount()),
		edge:    make(map[int]int, len(g.Edges)),
	}
	for i := range st.color {
		st.color[i] = -1
	}
	for v := range st.at {
		st.at[v] = make([]int, st.palette)
		for c := range st.at[v] {
			st.at[v][c] = -1
		}
	}
	for i, e := range g.Edges {
		st.edge[core.PairKey(e.Start, e.End)] = i
	}

	return st
}

func (st *edgeState) between(a, b int) int { return st.edge[core.PairKey(a, b)] }

func (st *edgeState) free(v, c int) bool { return st.at[v][c] < 0 }

func (st *edgeState) firstFree(v int) int {
	for c := 0; c < st.palette; c++ {
		if st.free(v, c) {
			return c
		}
	}

	return -1
}

func (st *edgeState) set(idx, c int) {
	e := st.g.Edges[idx]
	if old := st.color[idx]; old >= 0 {
		st.at[e.Start][old] = -1
		st.at[e.End][old] = -1
	}
	st.color[idx] = c
	if c >= 0 {
		st.at[e.Start][c] = idx
		st.at[e.End][c] = idx
	}
}

// fan returns a maximal fan of u starting at v.
func (st *edgeState) fan(u, v int) []int {
	f := []int{v}
	in := map[int]bool{v: true}
	for {
		last := f[len(f)-1]
		next := -1
		for c := 0; c < st.palette && next < 0; c++ {
			idx := st.at[u][c]
			if idx < 0 {
				continue
			}
			w := st.g.Edges[idx].Other(u)
			if !in[w] && st.free(last, c) {
				next = w
			}
		}
		if next < 0 {
			return f
		}
		f = append(f, next)
		in[next] = true
	}
}

// invert swaps colors c and d along the path from u that starts with a
// d-colored edge.
func (st *edgeState) invert(u, c, d int) {
	if c == d {
		return
	}
	var path []int
	x, want := u, d
	for {
		idx := st.at[x][want]
		if idx < 0 || (len(path) > 0 && idx == path[len(path)-1]) {
			break
		}
		path = append(path, idx)
		x = st.g.Edges[idx].Other(x)
		want = c + d - want
	}
	for _, idx := range path {
		st.set(idx, -1)
	}
	for i, idx := range path {
		if i%2 == 0 {
			st.set(idx, c)
		} else {
			st.set(idx, d)
		}
	}
}

// isFanPrefix reports whether f[0..w] is still a fan of u.
func (st *edgeState) isFanPrefix(u int, f []int, w int) bool {
	for i := 0; i < w; i++ {
		c := st.color[st.between(u, f[i+1])]
		if c < 0 || !st.free(f[i], c) {
			return false
		}
	}

	return true
}

// rotate shifts colors down the fan prefix f[0..w] and gives (u,f[w]) color d.
func (st *edgeState) rotate(u int, f []int, w, d int) {
	shifted := make([]int, w)
	for i := 0; i < w; i++ {
		shifted[i] = st.color[st.between(u, f[i+1])]
	}
	for i := 0; i <= w; i++ {
		st.set(st.between(u, f[i]), -1)
	}
	for i := 0; i < w; i++ {
		st.set(st.between(u, f[i]), shifted[i])
	}
	st.set(st.between(u, f[w]), d)
}

func (st *edgeState) colorEdge(idx int) {
	e := st.g.Edges[idx]
	u, v := e.Start, e.End
	f := st.fan(u, v)
	c := st.firstFree(u)
	d := st.firstFree(f[len(f)-1])
	st.invert(u, c, d)

	w := len(f) - 1
	for i := range f {
		if st.free(f[i], d) && st.isFanPrefix(u, f, i) {
			w = i
			break
		}
	}
	st.rotate(u, f, w, d)
}
