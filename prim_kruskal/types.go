// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
package prim_kruskal

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/netalgo/core"
)

// ErrInvalidGraph indicates a nil graph, a graph that fails core validation,
// or a non-finite edge weight.
var ErrInvalidGraph = errors.New("prim_kruskal: invalid graph")

// ErrRootOutOfRange indicates a Prim root outside [0, V).
var ErrRootOutOfRange = errors.New("prim_kruskal: root vertex out of range")

// ErrUnknownMethod indicates an unsupported MSTOptions.Method.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// DefaultHighlight is the color of accepted edges.
var DefaultHighlight = core.Color{R: 255, G: 0, B: 0}

// MSTOptions configures which MST algorithm to run.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root int

	// Highlight colors accepted edges in frames.
	Highlight core.Color
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod sets the algorithm used by Compute.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot sets the starting vertex for Prim's algorithm.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// WithHighlight sets the color of accepted edges.
func WithHighlight(c core.Color) Option {
	return func(opts *MSTOptions) {
		opts.Highlight = c
	}
}

// DefaultOptions returns Kruskal, root 0 and red highlight.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method:    MethodKruskal,
		Root:      0,
		Highlight: DefaultHighlight,
	}
}

func resolve(opts []Option) MSTOptions {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Result is the outcome of an MST run.
type Result struct {
	// Edges lists accepted edge indices in acceptance order.
	Edges []int

	TotalWeight float64

	// Complete is true when the accepted edges span every vertex.
	Complete bool

	Frames *core.Sequence[core.EdgeFrame]
}

// Compute selects and runs the MST algorithm named by opts.Method.
// Returns ErrUnknownMethod for anything but MethodKruskal or MethodPrim.
func Compute(g *core.Graph, opts MSTOptions) (*Result, error) {
	with := []Option{WithRoot(opts.Root), WithHighlight(opts.Highlight)}
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(g, with...)
	case MethodPrim:
		return Prim(g, with...)
	default:
		return nil, fmt.Errorf("Compute: %q: %w", opts.Method, ErrUnknownMethod)
	}
}

func validateGraph(method string, g *core.Graph) error {
	if g == nil {
		return fmt.Errorf("%s: nil graph: %w", method, ErrInvalidGraph)
	}
	if err := g.Validate(); err != nil {
		return fmt.Errorf("%s: %w: %w", method, ErrInvalidGraph, err)
	}
	for i, e := range g.Edges {
		if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
			return fmt.Errorf("%s: edge %d weight %g: %w", method, i, e.Weight, ErrInvalidGraph)
		}
	}

	return nil
}

// recorder accumulates accepted edges and emits one frame per acceptance.
type recorder struct {
	work   []core.Edge
	color  core.Color
	res    *Result
	target int
}

func newRecorder(g *core.Graph, color core.Color) *recorder {
	return &recorder{
		work:   append([]core.Edge(nil), g.Edges...),
		color:  color,
		target: max(g.VertexCount()-1, 0),
		res: &Result{
			Edges:  make([]int, 0, max(g.VertexCount()-1, 0)),
			Frames: core.NewSequence[core.EdgeFrame](g.VertexCount()),
		},
	}
}

func (r *recorder) accept(idx int) {
	r.work[idx].Color = r.color
	r.work[idx].Alpha = 1
	r.res.Edges = append(r.res.Edges, idx)
	r.res.TotalWeight += r.work[idx].Weight
	r.res.Frames.Append(core.SnapshotEdges(r.work))
}

func (r *recorder) done() bool { return len(r.res.Edges) >= r.target }

func (r *recorder) finish() *Result {
	if r.res.Frames.Len() == 0 {
		r.res.Frames.Append(core.SnapshotEdges(r.work))
	}
	r.res.Complete = len(r.res.Edges) == r.target

	return r.res
}
