// SPDX-License-Identifier: MIT

package layout_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/netalgo/builder"
	"github.com/katalvlaran/netalgo/core"
	"github.com/katalvlaran/netalgo/layout"
)

// ExampleFruchtermanReingold lays out a random graph and replays its frames.
func ExampleFruchtermanReingold() {
	g, _ := builder.Generate(core.Dim2, builder.Request{Vertices: 10, Edges: 15, Connected: true}, builder.WithSeed(1))

	p := layout.DefaultFRParams()
	p.MaxIterations = 50
	res, err := layout.FruchtermanReingold(context.Background(), g, p)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	replayed := 0
	for range res.Frames.All() {
		replayed++
	}
	fmt.Println(replayed == res.Iterations, len(res.Vertices))
	// Output: true 10
}
