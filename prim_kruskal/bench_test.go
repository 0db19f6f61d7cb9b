package prim_kruskal_test

import (
	"testing"

	"github.com/katalvlaran/netalgo/builder"
	"github.com/katalvlaran/netalgo/core"
	"github.com/katalvlaran/netalgo/prim_kruskal"
)

func benchGraph(b *testing.B) *core.Graph {
	b.Helper()
	g, err := builder.Generate(core.Dim2, builder.Request{Vertices: 200, Edges: 600, Connected: true, WeightByDistance: true},
		builder.WithSeed(7))
	if err != nil {
		b.Fatal(err)
	}

	return g
}

// BenchmarkKruskal measures Kruskal including frame capture at full size.
func BenchmarkKruskal(b *testing.B) {
	g := benchGraph(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = prim_kruskal.Kruskal(g)
	}
}

// BenchmarkPrim measures Prim including frame capture at full size.
func BenchmarkPrim(b *testing.B) {
	g := benchGraph(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = prim_kruskal.Prim(g)
	}
}
