// SPDX-License-Identifier: MIT

package builder_test

import (
	"fmt"

	"github.com/katalvlaran/netalgo/bfs"
	"github.com/katalvlaran/netalgo/builder"
	"github.com/katalvlaran/netalgo/core"
)

// ExampleGenerate builds a connected random graph and a random tour.
func ExampleGenerate() {
	g, err := builder.Generate(core.Dim2, builder.Request{Vertices: 8, Edges: 12, Connected: true}, builder.WithSeed(42))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.VertexCount(), g.EdgeCount(), bfs.IsConnected(g))

	tour, _ := builder.Generate(core.Dim2, builder.Request{Vertices: 6, Strategy: builder.StrategyCycle}, builder.WithSeed(42))
	fmt.Println(tour.EdgeCount(), tour.MaxDegree())

	// Output:
	// 8 12 true
	// 6 2
}

// ExampleWheel composes a fixed topology; the hub sits at the canvas center.
func ExampleWheel() {
	g, err := builder.BuildGraph(core.Dim2, nil, builder.Wheel(5))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.VertexCount(), g.EdgeCount(), g.Vertices[0].Degree, g.Vertices[0].Pos)

	// Output:
	// 5 8 4 {250 250 0}
}
