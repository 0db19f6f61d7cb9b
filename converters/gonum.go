package converters

import (
	"math"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/netalgo/core"
)

// ToGonum returns a weighted undirected gonum graph holding every vertex of
// g as node i and every edge with its weight. Absent edges weigh +Inf.
func ToGonum(g *core.Graph) *simple.WeightedUndirectedGraph {
	wg := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for i := range g.Vertices {
		wg.AddNode(simple.Node(i))
	}
	for _, e := range g.Edges {
		wg.SetWeightedEdge(wg.NewWeightedEdge(simple.Node(e.Start), simple.Node(e.End), e.Weight))
	}

	return wg
}

// ComponentCount returns the number of connected components of g.
func ComponentCount(g *core.Graph) int {
	if g.VertexCount() == 0 {
		return 0
	}

	return len(topo.ConnectedComponents(ToGonum(g)))
}
