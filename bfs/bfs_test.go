package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/netalgo/bfs"
	"github.com/katalvlaran/netalgo/core"
)

// build creates a 2D graph with n vertices on the x axis and the given edges.
func build(t testing.TB, n int, edges [][2]int) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(core.Dim2)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		g.AddVertex(r3.Vec{X: float64(i)})
	}
	for _, e := range edges {
		_, err = g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}

	return g
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := build(t, 2, nil)
	_, err = bfs.BFS(g, 5)
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
}

func TestBFS_CycleDepths(t *testing.T) {
	g := build(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3, 2}, res.Order)
	assert.Equal(t, []int{0, 1, 2, 1}, res.Depth)

	path, err := res.PathTo(2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, path)
}

func TestBFS_UnreachedHasNoPath(t *testing.T) {
	g := build(t, 4, [][2]int{{0, 1}, {1, 2}})
	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Order)
	assert.False(t, res.Reached(3))
	assert.Equal(t, -1, res.Depth[3])
	_, err = res.PathTo(3)
	assert.Error(t, err)
}

func TestBFS_HookAbortsAndCancel(t *testing.T) {
	g := build(t, 3, [][2]int{{0, 1}, {1, 2}})
	stop := errors.New("stop")
	_, err := bfs.BFS(g, 0, bfs.WithOnVisit(func(v, _ int) error {
		if v == 1 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(g, 0, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestComponents(t *testing.T) {
	g := build(t, 6, [][2]int{{0, 3}, {1, 4}, {4, 5}})
	assert.Equal(t, [][]int{{0, 3}, {1, 4, 5}, {2}}, bfs.Components(g))
	assert.False(t, bfs.IsConnected(g))

	_, err := g.AddEdge(2, 3)
	require.NoError(t, err)
	_, err = g.AddEdge(3, 5)
	require.NoError(t, err)
	assert.True(t, bfs.IsConnected(g))
}

func TestComponents_Nil(t *testing.T) {
	assert.Nil(t, bfs.Components(nil))
	assert.True(t, bfs.IsConnected(nil))
}

func TestDiameter(t *testing.T) {
	cases := []struct {
		name  string
		n     int
		edges [][2]int
		want  bfs.Span
	}{
		{name: "empty", n: 0, want: bfs.Span{}},
		{name: "single vertex", n: 1, want: bfs.Span{Hops: 0, Path: []int{0}}},
		{name: "path with isolated vertex", n: 5, edges: [][2]int{{0, 1}, {1, 2}, {2, 3}}, want: bfs.Span{Hops: 3, Path: []int{0, 1, 2, 3}}},
		{name: "square", n: 4, edges: [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}, want: bfs.Span{Hops: 2, Path: []int{0, 1, 2}}},
		{name: "larger second component", n: 6, edges: [][2]int{{0, 1}, {2, 3}, {3, 4}, {4, 5}}, want: bfs.Span{Hops: 3, Path: []int{2, 3, 4, 5}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := bfs.Diameter(context.Background(), build(t, tc.n, tc.edges))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDiameter_Errors(t *testing.T) {
	_, err := bfs.Diameter(context.Background(), nil)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.Diameter(ctx, build(t, 3, [][2]int{{0, 1}, {1, 2}}))
	assert.ErrorIs(t, err, context.Canceled)
}
