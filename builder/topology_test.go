// SPDX-License-Identifier: MIT

package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netalgo/bfs"
	"github.com/katalvlaran/netalgo/builder"
	"github.com/katalvlaran/netalgo/core"
	"github.com/katalvlaran/netalgo/dfs"
)

func TestTopologies_Shape(t *testing.T) {
	tests := []struct {
		name     string
		cons     builder.Constructor
		vertices int
		edges    int
		degrees  map[int]int // degree -> vertex count
		acyclic  bool
	}{
		{"complete", builder.Complete(5), 5, 10, map[int]int{4: 5}, false},
		{"star", builder.Star(6), 6, 5, map[int]int{5: 1, 1: 5}, true},
		{"wheel", builder.Wheel(6), 6, 10, map[int]int{5: 1, 3: 5}, false},
		{"path", builder.Path(4), 4, 3, map[int]int{1: 2, 2: 2}, true},
		{"grid", builder.Grid(3, 4), 12, 17, map[int]int{2: 4, 3: 6, 4: 2}, false},
		{"bipartite", builder.CompleteBipartite(2, 3), 5, 6, map[int]int{3: 2, 2: 3}, false},
	}
	for _, tt := range tests {
		for _, dim := range []int{core.Dim2, core.Dim3} {
			t.Run(tt.name, func(t *testing.T) {
				g, err := builder.BuildGraph(dim, nil, tt.cons)
				require.NoError(t, err)
				assert.Equal(t, tt.vertices, g.VertexCount())
				assert.Equal(t, tt.edges, g.EdgeCount())
				assert.True(t, bfs.IsConnected(g))
				assert.Equal(t, tt.acyclic, dfs.IsForest(g))

				got := map[int]int{}
				for _, v := range g.Vertices {
					got[v.Degree]++
					assert.True(t, v.Pos.X >= 0 && v.Pos.X <= builder.DefaultWidth)
					assert.True(t, v.Pos.Y >= 0 && v.Pos.Y <= builder.DefaultHeight)
					if dim == core.Dim3 {
						assert.Equal(t, builder.DefaultDepth/2, v.Pos.Z)
					}
				}
				assert.Equal(t, tt.degrees, got)
			})
		}
	}
}

func TestTopologies_Compose(t *testing.T) {
	// Two disjoint constructors keep their own index ranges.
	g, err := builder.BuildGraph(core.Dim2, nil, builder.Path(3), builder.Star(4))
	require.NoError(t, err)
	assert.Equal(t, 7, g.VertexCount())
	assert.Len(t, bfs.Components(g), 2)
	assert.Equal(t, core.Edge{Start: 3, End: 4}, core.Edge{Start: g.Edges[2].Start, End: g.Edges[2].End})
}

func TestTopologies_WeightsFromOptions(t *testing.T) {
	g, err := builder.BuildGraph(core.Dim2,
		[]builder.BuilderOption{builder.WithSeed(1), builder.WithUniformWeight(2, 3)},
		builder.Grid(2, 2))
	require.NoError(t, err)
	for _, e := range g.Edges {
		assert.True(t, e.Weight >= 2 && e.Weight < 3)
	}

	g, err = builder.BuildGraph(core.Dim2, nil, builder.Grid(2, 3), builder.WeightByDistance())
	require.NoError(t, err)
	assert.InDelta(t, (builder.DefaultWidth-6)/2, g.Edges[0].Weight, 1e-9)
}

func TestTopologies_Errors(t *testing.T) {
	for name, cons := range map[string]builder.Constructor{
		"complete":  builder.Complete(1),
		"star":      builder.Star(1),
		"wheel":     builder.Wheel(3),
		"path":      builder.Path(1),
		"grid":      builder.Grid(1, 1),
		"grid zero": builder.Grid(0, 5),
		"bipartite": builder.CompleteBipartite(0, 2),
	} {
		_, err := builder.BuildGraph(core.Dim2, nil, cons)
		assert.ErrorIs(t, err, builder.ErrTooFewVertices, name)
	}

	_, err := builder.BuildGraph(core.Dim2, nil, builder.Complete(builder.MaxVertices+1))
	assert.ErrorIs(t, err, builder.ErrTooManyVertices)

	_, err = builder.BuildGraph(core.Dim2, []builder.BuilderOption{builder.WithCanvas(4, 4, 4)}, builder.Path(3))
	assert.ErrorIs(t, err, builder.ErrBadCanvas)
}
