// SPDX-License-Identifier: MIT

package builder_test

import (
	"testing"

	"github.com/katalvlaran/netalgo/builder"
	"github.com/katalvlaran/netalgo/core"
)

// BenchmarkGenerate_Max measures generation at the largest accepted request.
func BenchmarkGenerate_Max(b *testing.B) {
	req := builder.Request{Vertices: builder.MaxVertices, Edges: builder.MaxEdges, Connected: true}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := builder.Generate(core.Dim3, req, builder.WithSeed(int64(i))); err != nil {
			b.Fatal(err)
		}
	}
}
