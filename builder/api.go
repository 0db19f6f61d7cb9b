// SPDX-License-Identifier: MIT
// Package: netalgo/builder

package builder

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/netalgo/bfs"
	"github.com/katalvlaran/netalgo/core"
)

// Constructor mutates g according to the resolved builder configuration.
// Constructors run in order; each sees the vertices and edges added by the
// ones before it.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates an empty graph of dimension dim, applies cons in order,
// refreshes derived attributes and validates the result.
//
// Errors: core.ErrBadDimension, any constructor error (wrapped),
// ErrConstructFailed for a nil constructor, ErrInvariantViolation when the
// final self-check fails.
func BuildGraph(dim int, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g, err := core.NewGraph(dim)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	core.RecomputeDerived(g, cfg.derived)
	if err = g.Validate(); err != nil {
		return nil, fmt.Errorf("BuildGraph: %w: %w", ErrInvariantViolation, err)
	}

	return g, nil
}

// Strategy selects how Generate seeds positions and topology.
type Strategy int

const (
	// StrategyUniform places vertices uniformly in the canvas and draws random edges.
	StrategyUniform Strategy = iota
	// StrategyCircle places vertices on a circle (sphere in 3D) and draws random edges.
	StrategyCircle
	// StrategyCycle places vertices uniformly and joins them in a single
	// random Hamiltonian cycle; the edge count is ignored.
	StrategyCycle
)

// String returns the strategy name accepted by ParseStrategy.
func (s Strategy) String() string {
	switch s {
	case StrategyUniform:
		return "uniform"
	case StrategyCircle:
		return "circle"
	case StrategyCycle:
		return "cycle"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "uniform", "circle" or "cycle" (case-insensitive) to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "uniform", "random":
		return StrategyUniform, nil
	case "circle", "randomcircle":
		return StrategyCircle, nil
	case "cycle":
		return StrategyCycle, nil
	default:
		return 0, fmt.Errorf("ParseStrategy(%q): %w", name, ErrUnknownStrategy)
	}
}

// Request describes a random graph.
type Request struct {
	Vertices  int
	Edges     int
	Connected bool
	Strategy  Strategy

	// WeightByDistance replaces edge weights with Euclidean edge lengths.
	WeightByDistance bool
}

const methodGenerate = "Generate"

// Generate builds a random graph for req. An RNG option is required.
//
// With Connected set and Edges < Vertices-1 the result still carries the
// Vertices-1 spanning-tree edges.
func Generate(dim int, req Request, opts ...BuilderOption) (*core.Graph, error) {
	if err := validateVertexCount(methodGenerate, req.Vertices); err != nil {
		return nil, err
	}

	var cons []Constructor
	switch req.Strategy {
	case StrategyUniform:
		cons = []Constructor{Positions(req.Vertices, PlaceUniform), RandomEdges(req.Edges, req.Connected)}
	case StrategyCircle:
		cons = []Constructor{Positions(req.Vertices, PlaceCircle), RandomEdges(req.Edges, req.Connected)}
	case StrategyCycle:
		cons = []Constructor{Positions(req.Vertices, PlaceUniform), HamiltonianCycle()}
	default:
		return nil, fmt.Errorf("%s: %v: %w", methodGenerate, req.Strategy, ErrUnknownStrategy)
	}
	if req.WeightByDistance {
		cons = append(cons, WeightByDistance())
	}

	g, err := BuildGraph(dim, opts, cons...)
	if err != nil {
		return nil, err
	}
	if (req.Connected || req.Strategy == StrategyCycle) && !bfs.IsConnected(g) {
		return nil, fmt.Errorf("%s: graph is disconnected: %w", methodGenerate, ErrInvariantViolation)
	}

	return g, nil
}
