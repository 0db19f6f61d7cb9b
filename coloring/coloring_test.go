package coloring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/netalgo/builder"
	"github.com/katalvlaran/netalgo/coloring"
	"github.com/katalvlaran/netalgo/core"
)

func build(t testing.TB, n int, edges [][2]int) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(core.Dim2)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		g.AddVertex(r3.Vec{X: float64(i), Y: float64(i % 3)})
	}
	for _, e := range edges {
		_, err = g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}

	return g
}

func generated(t testing.TB, n, e int, seed int64) *core.Graph {
	t.Helper()
	g, err := builder.Generate(core.Dim2, builder.Request{Vertices: n, Edges: e, Connected: true}, builder.WithSeed(seed))
	require.NoError(t, err)

	return g
}

func TestGreedyVertex_FourCycleAlternates(t *testing.T) {
	g := build(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	res, err := coloring.GreedyVertex(g, coloring.DefaultVertexOptions())
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 0, 1}, res.Colors)
	assert.Equal(t, 2, res.NumColors)
	require.Equal(t, 4, res.Frames.Len())

	last, _ := res.Frames.Last()
	assert.Equal(t, coloring.DefaultVertexFrom, last.Vertices[0].Color)
	assert.Equal(t, last.Vertices[0].Color, last.Vertices[2].Color)
	assert.Equal(t, last.Vertices[1].Color, last.Vertices[3].Color)
	assert.NotEqual(t, last.Vertices[0].Color, last.Vertices[1].Color)
}

func TestGreedyVertex_FramesColorOneVertexEach(t *testing.T) {
	g := generated(t, 25, 60, 3)
	res, err := coloring.GreedyVertex(g, coloring.DefaultVertexOptions())
	require.NoError(t, err)
	require.Equal(t, g.VertexCount(), res.Frames.Len())

	prev := core.SnapshotGraph(g)
	for i, frame := range res.Frames.All() {
		for v := range frame.Vertices {
			if v != i {
				assert.Equal(t, prev.Vertices[v].Color, frame.Vertices[v].Color, "frame %d touched vertex %d", i, v)
			}
		}
		assert.Equal(t, g.Edges, []core.Edge(frame.Edges))
		prev = frame
	}
}

func TestGreedyVertex_Proper(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		g := generated(t, 40, 120, seed)
		res, err := coloring.GreedyVertex(g, coloring.DefaultVertexOptions())
		require.NoError(t, err)
		for _, e := range g.Edges {
			assert.NotEqual(t, res.Colors[e.Start], res.Colors[e.End], "seed %d edge %d-%d", seed, e.Start, e.End)
		}
		assert.LessOrEqual(t, res.NumColors, g.MaxDegree()+1)
	}
}

func TestMisraGries_Proper(t *testing.T) {
	for seed := int64(1); seed <= 15; seed++ {
		g := generated(t, 30, 90, seed)
		res, err := coloring.MisraGries(g, coloring.DefaultEdgeOptions())
		require.NoError(t, err)
		require.Len(t, res.Colors, g.EdgeCount())

		for v, inc := range g.IncidentEdges() {
			seen := map[int]int{}
			for _, idx := range inc {
				c := res.Colors[idx]
				require.GreaterOrEqual(t, c, 0, "edge %d uncolored", idx)
				require.LessOrEqual(t, c, g.MaxDegree(), "edge %d beyond Δ+1 colors", idx)
				if other, dup := seen[c]; dup {
					t.Fatalf("seed %d vertex %d: edges %d and %d share color %d", seed, v, other, idx, c)
				}
				seen[c] = idx
			}
		}
		assert.LessOrEqual(t, res.NumColors, g.MaxDegree()+1)
		assert.Equal(t, g.EdgeCount(), res.Frames.Len())
	}
}

func TestMisraGries_Star(t *testing.T) {
	// A star needs exactly Δ colors.
	g := build(t, 6, [][2]int{{0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5}})
	res, err := coloring.MisraGries(g, coloring.DefaultEdgeOptions())
	require.NoError(t, err)
	assert.Equal(t, 5, res.NumColors)
}

func TestMisraGries_OddCycleNeedsThree(t *testing.T) {
	g := build(t, 5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}})
	res, err := coloring.MisraGries(g, coloring.DefaultEdgeOptions())
	require.NoError(t, err)
	assert.Equal(t, 3, res.NumColors)
}

func TestMisraGries_FramesTrackColors(t *testing.T) {
	g := generated(t, 12, 25, 7)
	res, err := coloring.MisraGries(g, coloring.DefaultEdgeOptions())
	require.NoError(t, err)

	for i, frame := range res.Frames.All() {
		colored := 0
		for _, e := range frame.Edges {
			if e.Alpha == 1 {
				colored++
			}
		}
		assert.Equal(t, i+1, colored, "frame %d", i)
	}

	out := g.Clone()
	res.Apply(out)
	grad := core.Gradient{From: coloring.DefaultEdgeFrom, To: coloring.DefaultEdgeTo, Steps: g.MaxDegree() + 1}
	for i, e := range out.Edges {
		assert.Equal(t, grad.At(res.Colors[i]), e.Color)
	}
}

func TestColoring_Errors(t *testing.T) {
	_, err := coloring.GreedyVertex(nil, coloring.DefaultVertexOptions())
	assert.ErrorIs(t, err, coloring.ErrInvalidGraph)

	g := build(t, 3, [][2]int{{0, 1}})
	g.Edges = append(g.Edges, g.Edges[0])
	_, err = coloring.MisraGries(g, coloring.DefaultEdgeOptions())
	assert.ErrorIs(t, err, coloring.ErrInvalidGraph)
	assert.ErrorIs(t, err, core.ErrInvariant)
}

func TestColoring_EmptyEdgeSet(t *testing.T) {
	g := build(t, 3, nil)
	res, err := coloring.MisraGries(g, coloring.DefaultEdgeOptions())
	require.NoError(t, err)
	assert.Zero(t, res.NumColors)
	assert.Equal(t, 1, res.Frames.Len())

	v, err := coloring.GreedyVertex(g, coloring.DefaultVertexOptions())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0}, v.Colors)
}
