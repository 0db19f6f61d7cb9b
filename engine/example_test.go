package engine_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/netalgo/core"
	"github.com/katalvlaran/netalgo/engine"
	"gonum.org/v1/gonum/spatial/r3"
)

// ExampleRun computes a spanning tree of a weighted square with one diagonal.
func ExampleRun() {
	g, _ := core.NewGraph(core.Dim2)
	for _, p := range []r3.Vec{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}} {
		g.AddVertex(p)
	}
	_, _ = g.AddEdge(0, 1, core.WithEdgeWeight(1))
	_, _ = g.AddEdge(1, 2, core.WithEdgeWeight(2))
	_, _ = g.AddEdge(2, 3, core.WithEdgeWeight(3))
	_, _ = g.AddEdge(3, 0, core.WithEdgeWeight(4))
	_, _ = g.AddEdge(0, 2, core.WithEdgeWeight(5))

	out, err := engine.Run(context.Background(), g, engine.Job{Algorithm: engine.Kruskal, Params: engine.DefaultParams()})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(out.Summary.Spanning.TreeEdges, out.Summary.Spanning.TotalWeight, out.Summary.Frames)
	// Output: [0 1 2] 6 3
}
