package prim_kruskal_test

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/netalgo/core"
	"github.com/katalvlaran/netalgo/prim_kruskal"
)

// ExampleKruskal runs Kruskal on a five-vertex ring with one heavy edge and
// prints the accepted edges as they would be animated.
//
// Vertices 0..4. Edges: 0-1 (1), 0-4 (12), 1-2 (2), 2-3 (3), 3-4 (5).
func ExampleKruskal() {
	g, _ := core.NewGraph(core.Dim2)
	for i := 0; i < 5; i++ {
		g.AddVertex(r3.Vec{X: float64(i)})
	}
	for _, e := range [][3]float64{{0, 1, 1}, {0, 4, 12}, {1, 2, 2}, {2, 3, 3}, {3, 4, 5}} {
		_, _ = g.AddEdge(int(e[0]), int(e[1]), core.WithEdgeWeight(e[2]))
	}

	res, err := prim_kruskal.Kruskal(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	accepted := make([]string, 0, len(res.Edges))
	for _, idx := range res.Edges {
		e := g.Edges[idx]
		accepted = append(accepted, fmt.Sprintf("%d-%d", e.Start, e.End))
	}
	fmt.Println(strings.Join(accepted, " "))
	fmt.Println(res.TotalWeight, res.Frames.Len())
	// Output:
	// 0-1 1-2 2-3 3-4
	// 11 4
}

// ExamplePrim grows the same tree from vertex 4.
func ExamplePrim() {
	g, _ := core.NewGraph(core.Dim2)
	for i := 0; i < 5; i++ {
		g.AddVertex(r3.Vec{X: float64(i)})
	}
	for _, e := range [][3]float64{{0, 1, 1}, {0, 4, 12}, {1, 2, 2}, {2, 3, 3}, {3, 4, 5}} {
		_, _ = g.AddEdge(int(e[0]), int(e[1]), core.WithEdgeWeight(e[2]))
	}

	res, _ := prim_kruskal.Prim(g, prim_kruskal.WithRoot(4))
	fmt.Println(res.Edges, res.TotalWeight)
	// Output: [4 3 2 0] 11
}
