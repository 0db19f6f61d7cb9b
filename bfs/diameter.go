package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/netalgo/core"
)

// Span is a longest shortest path of a graph, measured in hops.
type Span struct {
	// Hops is the number of edges on Path.
	Hops int

	// Path runs from one end of the span to the other.
	Path []int
}

// Diameter returns the hop diameter of g with one shortest path realizing
// it. A disconnected graph reports the largest diameter among its
// components. Ties keep the pair found first in vertex order.
//
// Errors: ErrGraphNil, ctx.Err().
func Diameter(ctx context.Context, g *core.Graph) (Span, error) {
	if g == nil {
		return Span{}, ErrGraphNil
	}
	best := Span{Hops: -1}
	for s := 0; s < g.VertexCount(); s++ {
		far, farDepth := s, 0
		res, err := BFS(g, s, WithContext(ctx), WithOnVisit(func(v, depth int) error {
			if depth > farDepth {
				far, farDepth = v, depth
			}
			return nil
		}))
		if err != nil {
			return Span{}, fmt.Errorf("bfs: Diameter from %d: %w", s, err)
		}
		if farDepth > best.Hops {
			path, _ := res.PathTo(far)
			best = Span{Hops: farDepth, Path: path}
		}
	}
	if best.Hops < 0 {
		return Span{}, nil
	}

	return best, nil
}
