package tsp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/netalgo/builder"
	"github.com/katalvlaran/netalgo/core"
	"github.com/katalvlaran/netalgo/tsp"
)

// polygon places n = len(order) vertices on a regular n-gon (radius 50,
// centered at (100,100)) and joins them in the cycle given by order.
func polygon(t testing.TB, order []int) *core.Graph {
	t.Helper()
	n := len(order)
	g, err := core.NewGraph(core.Dim2)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		g.AddVertex(r3.Vec{X: 100 + 50*math.Cos(a), Y: 100 + 50*math.Sin(a)})
	}
	for i := 0; i < n; i++ {
		_, err = g.AddEdge(order[i], order[(i+1)%n])
		require.NoError(t, err)
	}
	core.RecomputeDerived(g, core.DefaultDerivedOptions())

	return g
}

// randomCycle generates an n-vertex random Hamiltonian cycle.
func randomCycle(t testing.TB, dim, n int, seed int64) *core.Graph {
	t.Helper()
	g, err := builder.Generate(dim, builder.Request{Vertices: n, Strategy: builder.StrategyCycle}, builder.WithSeed(seed))
	require.NoError(t, err)

	return g
}

// convex returns the closed tour 0,1,...,n-1,0.
func convex(n int) []int {
	tour := make([]int, n+1)
	for i := 0; i < n; i++ {
		tour[i] = i
	}

	return tour
}

// opts returns DefaultOptions with a smaller budget and a fixed seed.
func opts(algo tsp.Algorithm, iterations int) tsp.Options {
	o := tsp.DefaultOptions()
	o.Algo = algo
	o.Iterations = iterations
	o.Seed = 42

	return o
}

// frameTour reads the tour a frame encodes.
func frameTour(frame core.EdgeFrame) []int {
	tour := make([]int, 0, len(frame)+1)
	for _, e := range frame {
		tour = append(tour, e.Start)
	}

	return append(tour, frame[len(frame)-1].End)
}

// reversed returns a copy of tour with tour[i..k] reversed.
func reversed(tour []int, i, k int) []int {
	out := tsp.CopyTour(tour)
	for ; i < k; i, k = i+1, k-1 {
		out[i], out[k] = out[k], out[i]
	}

	return out
}

// equalCycles reports whether two closed tours describe the same cycle,
// allowing rotation and reversal.
func equalCycles(a, b []int) bool {
	if len(a) != len(b) || len(a) < 2 {
		return false
	}
	n := len(a) - 1
	off := -1
	for i := 0; i < n; i++ {
		if b[i] == a[0] {
			off = i
			break
		}
	}
	if off < 0 {
		return false
	}
	fwd, bwd := true, true
	for i := 0; i < n && (fwd || bwd); i++ {
		if a[i] != b[(off+i)%n] {
			fwd = false
		}
		if a[i] != b[(off-i+n)%n] {
			bwd = false
		}
	}

	return fwd || bwd
}
