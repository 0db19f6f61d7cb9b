package csvio_test

import (
	"bytes"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netalgo/builder"
	"github.com/katalvlaran/netalgo/core"
	"github.com/katalvlaran/netalgo/csvio"
)

func raw() csvio.ReadOptions {
	o := csvio.DefaultReadOptions()
	o.Rescale = false

	return o
}

func TestWriteRead_PreservesGraph(t *testing.T) {
	for _, dim := range []int{core.Dim2, core.Dim3} {
		g, err := builder.Generate(dim, builder.Request{Vertices: 30, Edges: 70, Connected: true, WeightByDistance: true},
			builder.WithSeed(5))
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, csvio.Write(&buf, g))

		o := raw()
		o.Dim = dim
		got, err := csvio.Read(&buf, o)
		require.NoError(t, err)
		if diff := cmp.Diff(g, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
			t.Errorf("dim %d round trip (-want +got):\n%s", dim, diff)
		}
	}
}

func TestWrite_Format(t *testing.T) {
	g, err := core.NewGraph(core.Dim2)
	require.NoError(t, err)
	g.AddVertex(vec(1, 2, 0))
	g.AddVertex(vec(3, 4.5, 0))
	_, err = g.AddEdge(0, 1, core.WithEdgeWeight(2.5), core.WithEdgeColor(core.Color{R: 1, G: 2, B: 3}))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, csvio.Write(&buf, g))
	assert.Equal(t,
		"vertex,1,2,,1,3,0,255,255\n"+
			"vertex,3,4.5,,1,3,0,255,255\n"+
			"edge,0,1,1,2,3,2.5,0.1\n",
		buf.String())
}

func TestRead_Rescales(t *testing.T) {
	in := strings.Join([]string{
		"vertex,-10,100,,0,3,0,0,0",
		"vertex,10,300,,0,3,0,0,0",
		"vertex,0,200,,0,3,0,0,0",
		"edge,0,2,0,0,0,1,0.1",
	}, "\n")
	o := csvio.DefaultReadOptions()
	o.Width, o.Height = 105, 205
	g, err := csvio.Read(strings.NewReader(in), o)
	require.NoError(t, err)

	assert.Equal(t, vec(0, 0, 0), g.Vertices[0].Pos)
	assert.Equal(t, vec(100, 200, 0), g.Vertices[1].Pos)
	assert.Equal(t, vec(50, 100, 0), g.Vertices[2].Pos)
	assert.Equal(t, []int{1, 0, 1}, []int{g.Vertices[0].Degree, g.Vertices[1].Degree, g.Vertices[2].Degree},
		"degrees come from the edge set")
}

func TestRead_3DMissingZ(t *testing.T) {
	in := "vertex,0,0,,0,3,0,0,0\nvertex,1,1,,0,3,0,0,0\nvertex,2,5,,0,3,0,0,0\nedge,0,1,0,0,0,1,0.1\n"
	o := raw()
	o.Dim = core.Dim3
	o.Depth = 50
	o.Rand = rand.New(rand.NewSource(3))
	g, err := csvio.Read(strings.NewReader(in), o)
	require.NoError(t, err)
	for i, v := range g.Vertices {
		assert.True(t, v.Pos.Z >= 0 && v.Pos.Z < 50, "vertex %d z=%g", i, v.Pos.Z)
	}
	assert.Equal(t, csvio.ImportedEdgeColor3D, g.Edges[0].Color, "black edges are lightened in 3D")
}

func TestRead_ShortVertexRecord(t *testing.T) {
	g, err := csvio.Read(strings.NewReader("vertex,1,2,0,4,9,8,7\nvertex,2,3,0,4,9,8,7\n"), raw())
	require.NoError(t, err)
	assert.Equal(t, 4.0, g.Vertices[0].Size)
	assert.Equal(t, core.Color{R: 9, G: 8, B: 7}, g.Vertices[0].Color)
}

func vertexLines(n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&sb, "vertex,%d,%d,,0,3,0,0,0\n", i, i*i)
	}

	return sb.String()
}

func TestRead_Caps(t *testing.T) {
	_, err := csvio.Read(strings.NewReader(vertexLines(200)), csvio.DefaultReadOptions())
	require.NoError(t, err)

	_, err = csvio.Read(strings.NewReader(vertexLines(201)), csvio.DefaultReadOptions())
	assert.ErrorIs(t, err, csvio.ErrTooManyVertices)
	assert.ErrorContains(t, err, "line 201")

	var sb strings.Builder
	sb.WriteString(vertexLines(60))
	for i := 0; i < 60; i++ {
		for j := i + 1; j < 60; j++ {
			fmt.Fprintf(&sb, "edge,%d,%d,0,0,0,1,0.1\n", i, j)
		}
	}
	_, err = csvio.Read(strings.NewReader(sb.String()), csvio.DefaultReadOptions())
	assert.ErrorIs(t, err, csvio.ErrTooManyEdges)
}

func TestReplace_LeavesGraphOnFailure(t *testing.T) {
	dst, err := builder.Generate(core.Dim2, builder.Request{Vertices: 10, Edges: 12, Connected: true}, builder.WithSeed(1))
	require.NoError(t, err)
	before := dst.Clone()

	err = csvio.Replace(dst, strings.NewReader(vertexLines(201)), csvio.DefaultReadOptions())
	require.ErrorIs(t, err, csvio.ErrTooManyVertices)
	assert.Empty(t, cmp.Diff(before, dst))

	require.NoError(t, csvio.Replace(dst, strings.NewReader(vertexLines(4)), csvio.DefaultReadOptions()))
	assert.Equal(t, 4, dst.VertexCount())
	assert.Zero(t, dst.EdgeCount())
}

func TestRead_Errors(t *testing.T) {
	cases := map[string]struct {
		in   string
		want error
	}{
		"same x":        {"vertex,1,2,,0,3,0,0,0\nvertex,1,5,,0,3,0,0,0\n", csvio.ErrDegenerateBounds},
		"unknown kind":  {"vertex,1,2,,0,3,0,0,0\nface,0,1\n", csvio.ErrMalformed},
		"bad number":    {"vertex,x,2,,0,3,0,0,0\n", csvio.ErrMalformed},
		"color range":   {"vertex,1,2,,0,3,300,0,0\n", csvio.ErrMalformed},
		"edge fields":   {vertexLines(2) + "edge,0,1,0,0,0,1\n", csvio.ErrMalformed},
		"dangling edge": {vertexLines(2) + "edge,0,7,0,0,0,1,0.1\n", core.ErrVertexNotFound},
		"self loop":     {vertexLines(2) + "edge,1,1,0,0,0,1,0.1\n", core.ErrInvariant},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := csvio.Read(strings.NewReader(tc.in), csvio.DefaultReadOptions())
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := csvio.Read(strings.NewReader("vertex,x,2,,0,3,0,0,0\n"), csvio.DefaultReadOptions())
	assert.ErrorContains(t, err, "line 1")
}
