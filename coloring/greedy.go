// SPDX-License-Identifier: MIT
// Package: netalgo/coloring

package coloring

import "github.com/katalvlaran/netalgo/core"

// GreedyVertex colors vertices in index order with the lowest index not used
// by an already colored neighbor. Each step recolors one vertex and records a
// frame; edges are left untouched.
//
// Errors: ErrInvalidGraph.
func GreedyVertex(g *core.Graph, opts Options) (*Result, error) {
	if err := validateGraph("GreedyVertex", g); err != nil {
		return nil, err
	}

	n := g.VertexCount()
	adj := g.Adjacency()
	grad := opts.gradient(g.MaxDegree() + 1)
	work := g.Clone()
	colors := make([]int, n)
	for i := range colors {
		colors[i] = -1
	}
	res := &Result{Colors: colors, Frames: core.NewSequence[core.GraphFrame](n)}

	used := make([]bool, g.MaxDegree()+2)
	for v := 0; v < n; v++ {
		clear(used)
		for _, w := range adj[v] {
			if c := colors[w]; c >= 0 {
				used[c] = true
			}
		}
		c := 0
		for used[c] {
			c++
		}
		colors[v] = c
		work.Vertices[v].Color = grad.At(c)
		res.Frames.Append(core.SnapshotGraph(work))
	}
	if n == 0 {
		res.Frames.Append(core.SnapshotGraph(work))
	}
	res.NumColors = countColors(colors)

	return res, nil
}
