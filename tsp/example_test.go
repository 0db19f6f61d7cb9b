package tsp_test

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/netalgo/core"
	"github.com/katalvlaran/netalgo/tsp"
)

// ExampleTwoOpt untangles a hexagon visited in star order.
func ExampleTwoOpt() {
	g, _ := core.NewGraph(core.Dim2)
	for i := 0; i < 6; i++ {
		a := 2 * math.Pi * float64(i) / 6
		g.AddVertex(r3.Vec{X: 100 + 50*math.Cos(a), Y: 100 + 50*math.Sin(a)})
	}
	order := []int{0, 3, 1, 4, 2, 5}
	for i := range order {
		_, _ = g.AddEdge(order[i], order[(i+1)%6])
	}

	opts := tsp.DefaultOptions()
	opts.Iterations = 300
	res, err := tsp.TwoOpt(g, opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(equalCycles(res.Tour, []int{0, 1, 2, 3, 4, 5, 0}))
	fmt.Printf("%.0f -> %.0f\n", res.Lengths[0], res.Length)
	fmt.Println(res.Frames.Len())
	// Output:
	// true
	// 218 -> 122
	// 301
}
