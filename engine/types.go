// SPDX-License-Identifier: MIT
// Package: netalgo/engine

package engine

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/katalvlaran/netalgo/coloring"
	"github.com/katalvlaran/netalgo/core"
	"github.com/katalvlaran/netalgo/layout"
	"github.com/katalvlaran/netalgo/prim_kruskal"
	"github.com/katalvlaran/netalgo/tsp"
)

var (
	// ErrUnknownAlgorithm indicates an algorithm name Run does not know.
	ErrUnknownAlgorithm = errors.New("engine: unknown algorithm")

	// ErrNilGraph indicates a nil input graph.
	ErrNilGraph = errors.New("engine: graph is nil")
)

// Algorithm names one runnable algorithm.
type Algorithm string

const (
	Spring              Algorithm = "spring"
	FruchtermanReingold Algorithm = "fruchterman-reingold"
	ForceAtlas2         Algorithm = "forceatlas2"
	ForceAtlas2LinLog   Algorithm = "forceatlas2-linlog"
	Spectral            Algorithm = "spectral"
	Kruskal             Algorithm = "kruskal"
	Prim                Algorithm = "prim"
	TwoOpt              Algorithm = "2opt"
	ThreeOpt            Algorithm = "3opt"
	Annealing           Algorithm = "annealing"
	GreedyVertex        Algorithm = "greedy-vertex"
	MisraGries          Algorithm = "misra-gries"
)

// Family groups algorithms by the kind of frames they emit.
type Family string

const (
	FamilyLayout   Family = "layout"
	FamilySpanning Family = "mst"
	FamilyTour     Family = "tsp"
	FamilyColoring Family = "coloring"
)

var families = map[Algorithm]Family{
	Spring:              FamilyLayout,
	FruchtermanReingold: FamilyLayout,
	ForceAtlas2:         FamilyLayout,
	ForceAtlas2LinLog:   FamilyLayout,
	Spectral:            FamilyLayout,
	Kruskal:             FamilySpanning,
	Prim:                FamilySpanning,
	TwoOpt:              FamilyTour,
	ThreeOpt:            FamilyTour,
	Annealing:           FamilyTour,
	GreedyVertex:        FamilyColoring,
	MisraGries:          FamilyColoring,
}

var aliases = map[string]Algorithm{
	"fr":          FruchtermanReingold,
	"fa2":         ForceAtlas2,
	"fa2-linlog":  ForceAtlas2LinLog,
	"linlog":      ForceAtlas2LinLog,
	"two-opt":     TwoOpt,
	"three-opt":   ThreeOpt,
	"sa":          Annealing,
	"greedy":      GreedyVertex,
	"vertex":      GreedyVertex,
	"edge":        MisraGries,
	"misragries":  MisraGries,
	"fruchterman": FruchtermanReingold,
}

// Family reports the family of a; ok is false for unknown names.
func (a Algorithm) Family() (Family, bool) {
	f, ok := families[a]

	return f, ok
}

// ParseAlgorithm resolves a canonical name or a short alias, ignoring case.
func ParseAlgorithm(s string) (Algorithm, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if _, ok := families[Algorithm(name)]; ok {
		return Algorithm(name), nil
	}
	if a, ok := aliases[name]; ok {
		return a, nil
	}

	return "", fmt.Errorf("ParseAlgorithm(%q): %w", s, ErrUnknownAlgorithm)
}

// Algorithms lists the canonical names of family f in sorted order, or of
// every family when f is empty.
func Algorithms(f Family) []Algorithm {
	var out []Algorithm
	for a, fam := range families {
		if f == "" || fam == f {
			out = append(out, a)
		}
	}
	slices.Sort(out)

	return out
}

// Params carries the parameters of every family; Run reads the section that
// matches the job's algorithm.
type Params struct {
	Spring      layout.SpringParams
	Fruchterman layout.FRParams
	ForceAtlas2 layout.FA2Params
	Spectral    layout.SpectralParams

	// MST.Method is overridden by the job's algorithm.
	MST prim_kruskal.MSTOptions

	// TSP.Algo is overridden by the job's algorithm.
	TSP tsp.Options

	VertexColoring coloring.Options
	EdgeColoring   coloring.Options
}

// DefaultParams returns the default parameters of every family.
func DefaultParams() Params {
	return Params{
		Spring:         layout.DefaultSpringParams(),
		Fruchterman:    layout.DefaultFRParams(),
		ForceAtlas2:    layout.DefaultFA2Params(),
		Spectral:       layout.DefaultSpectralParams(),
		MST:            prim_kruskal.DefaultOptions(),
		TSP:            tsp.DefaultOptions(),
		VertexColoring: coloring.DefaultVertexOptions(),
		EdgeColoring:   coloring.DefaultEdgeOptions(),
	}
}

// Job is one algorithm invocation. Name labels the job in logs and output;
// it defaults to the algorithm name.
type Job struct {
	Name      string
	Algorithm Algorithm
	Params    Params
}

func (j Job) label() string {
	if j.Name != "" {
		return j.Name
	}

	return string(j.Algorithm)
}

// Output is the result of one Job. Exactly one of Positions, Edges and Graphs
// is set, according to the algorithm's family.
type Output struct {
	Job string `json:"job"`

	// Final is the input clone with the algorithm's final state applied.
	Final *core.Graph `json:"final"`

	Positions *core.Sequence[core.PositionFrame] `json:"positions,omitempty"`
	Edges     *core.Sequence[core.EdgeFrame]     `json:"edges,omitempty"`
	Graphs    *core.Sequence[core.GraphFrame]    `json:"graphs,omitempty"`

	Summary Summary `json:"summary"`
}

// Frames returns the number of frames emitted.
func (o *Output) Frames() int {
	return o.Positions.Len() + o.Edges.Len() + o.Graphs.Len()
}

// Summary reports the scalar outcome of a job.
type Summary struct {
	Algorithm Algorithm     `json:"algorithm"`
	Family    Family        `json:"family"`
	Vertices  int           `json:"vertices"`
	Edges     int           `json:"edges"`
	Frames    int           `json:"frames"`
	Elapsed   time.Duration `json:"elapsed"`

	Layout   *LayoutSummary   `json:"layout,omitempty"`
	Spanning *SpanningSummary `json:"mst,omitempty"`
	Tour     *TourSummary     `json:"tsp,omitempty"`
	Coloring *ColoringSummary `json:"coloring,omitempty"`
}

// LayoutSummary describes how a layout simulation ended.
type LayoutSummary struct {
	Iterations int     `json:"iterations"`
	State      string  `json:"state"`
	MaxForce   float64 `json:"max_force"`
}

// SpanningSummary describes a spanning tree or forest.
type SpanningSummary struct {
	TreeEdges   []int   `json:"tree_edges"`
	TotalWeight float64 `json:"total_weight"`
	Complete    bool    `json:"complete"`
}

// TourSummary describes a TSP search.
type TourSummary struct {
	Tour          []int   `json:"tour"`
	InitialLength float64 `json:"initial_length"`
	Length        float64 `json:"length"`
	BestLength    float64 `json:"best_length"`
	Accepted      int     `json:"accepted"`
}

// ColoringSummary describes a vertex or edge coloring.
type ColoringSummary struct {
	Colors    []int `json:"colors"`
	NumColors int   `json:"num_colors"`
}
