// SPDX-License-Identifier: MIT

package dfs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/netalgo/builder"
	"github.com/katalvlaran/netalgo/core"
	"github.com/katalvlaran/netalgo/dfs"
)

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

func TestDFS_PostOrderAndParents(t *testing.T) {
	// 0-1, 0-2, 1-3; 4 isolated
	g := build(t, 5, [][2]int{{0, 1}, {0, 2}, {1, 3}})

	res, err := dfs.DFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 2, 0}, res.Order)
	assert.Equal(t, []int{0, 1, 1, 2, -1}, res.Depth)
	assert.Equal(t, []int{-1, 0, 0, 1, -1}, res.Parent)
	assert.False(t, res.Reached(4))

	full, err := dfs.DFS(g, -1, dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 2, 0, 4}, full.Order)
}

func TestDFS_OnVisitAndErrors(t *testing.T) {
	g := build(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}})

	var visited, depths []int
	_, err := dfs.DFS(g, 3, dfs.WithOnVisit(func(v, d int) error {
		visited = append(visited, v)
		depths = append(depths, d)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 1, 0}, visited)
	assert.Equal(t, []int{0, 1, 2, 3}, depths)

	stop := errors.New("stop")
	_, err = dfs.DFS(g, 0, dfs.WithOnVisit(func(v, _ int) error {
		if v == 2 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)

	_, err = dfs.DFS(nil, 0)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
	_, err = dfs.DFS(g, 4)
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

func TestIsForest(t *testing.T) {
	cases := []struct {
		name  string
		n     int
		edges [][2]int
		want  bool
	}{
		{name: "no vertices", n: 0, want: true},
		{name: "isolated vertices", n: 3, want: true},
		{name: "two trees", n: 6, edges: [][2]int{{0, 1}, {1, 2}, {3, 4}}, want: true},
		{name: "tree plus triangle", n: 6, edges: [][2]int{{0, 1}, {2, 3}, {3, 4}, {4, 2}}, want: false},
		{name: "single cycle", n: 4, edges: [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}, want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := build(t, tc.n, tc.edges)
			assert.Equal(t, tc.want, dfs.IsForest(g))
			_, found := dfs.FindCycle(g)
			assert.Equal(t, !tc.want, found, "FindCycle agrees")
		})
	}
	assert.True(t, dfs.IsForest(nil))
}

func TestFindCycle(t *testing.T) {
	tree := build(t, 5, [][2]int{{0, 1}, {1, 2}, {1, 3}, {3, 4}})
	_, ok := dfs.FindCycle(tree)
	assert.False(t, ok)
	assert.True(t, dfs.IsForest(tree))

	// tail 0-1 leading into the square 1-2-3-4-1
	g := build(t, 5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 1}})
	cycle, ok := dfs.FindCycle(g)
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3, 4, 1}, cycle)

	_, ok = dfs.FindCycle(nil)
	assert.False(t, ok)
}

func TestFindCycle_GeneratedCycleIsHamiltonian(t *testing.T) {
	g, err := builder.Generate(core.Dim2, builder.Request{Vertices: 25, Strategy: builder.StrategyCycle}, builder.WithSeed(3))
	require.NoError(t, err)

	cycle, ok := dfs.FindCycle(g)
	require.True(t, ok)
	assert.Len(t, cycle, 26)
	seen := map[int]bool{}
	for _, v := range cycle[:25] {
		seen[v] = true
	}
	assert.Len(t, seen, 25)
}
