package config

import (
	"github.com/katalvlaran/netalgo/builder"
	"github.com/katalvlaran/netalgo/coloring"
	"github.com/katalvlaran/netalgo/core"
	"github.com/katalvlaran/netalgo/layout"
	"github.com/katalvlaran/netalgo/prim_kruskal"
	"github.com/katalvlaran/netalgo/tsp"
)

// GenerateRequest converts the generate section.
func (c *Config) GenerateRequest() (builder.Request, error) {
	s, err := builder.ParseStrategy(c.Generate.Strategy)
	if err != nil {
		return builder.Request{}, err
	}

	return builder.Request{
		Vertices:         c.Generate.Vertices,
		Edges:            c.Generate.Edges,
		Connected:        c.Generate.Connected,
		Strategy:         s,
		WeightByDistance: c.Generate.WeightByDistance,
	}, nil
}

// BuilderOptions returns the seed and canvas options for builder.Generate.
func (c *Config) BuilderOptions() []builder.BuilderOption {
	return []builder.BuilderOption{
		builder.WithSeed(c.Seed),
		builder.WithCanvas(c.Canvas.Width, c.Canvas.Height, c.Canvas.Depth),
	}
}

// SpringParams returns the spring section on the shared canvas.
func (c *Config) SpringParams() layout.SpringParams {
	p := c.Spring
	p.Canvas = c.Canvas

	return p
}

// FRParams returns the Fruchterman–Reingold section on the shared canvas.
func (c *Config) FRParams() layout.FRParams {
	p := c.Fruchterman
	p.Canvas = c.Canvas

	return p
}

// FA2Params returns the ForceAtlas2 section on the shared canvas.
func (c *Config) FA2Params() layout.FA2Params {
	p := c.ForceAtlas2
	p.Canvas = c.Canvas

	return p
}

// SpectralParams returns the spectral section on the shared canvas.
func (c *Config) SpectralParams() layout.SpectralParams {
	p := c.Spectral
	p.Canvas = c.Canvas

	return p
}

// MSTOptions converts the mst section.
func (c *Config) MSTOptions() prim_kruskal.MSTOptions {
	return prim_kruskal.MSTOptions{
		Method:    c.MST.Method,
		Root:      c.MST.Root,
		Highlight: core.Color(c.MST.Highlight),
	}
}

// TSPOptions converts the tsp section; the seed is shared.
func (c *Config) TSPOptions() (tsp.Options, error) {
	algo, err := tsp.ParseAlgorithm(c.TSP.Algorithm)
	if err != nil {
		return tsp.Options{}, err
	}

	return tsp.Options{
		Algo:             algo,
		Iterations:       c.TSP.Iterations,
		Simulations:      c.TSP.Simulations,
		Seed:             c.Seed,
		Highlight:        core.Color(c.TSP.Highlight),
		StartTemperature: c.TSP.StartTemperature,
		Cooling:          c.TSP.Cooling,
		HotColor:         core.Color(c.TSP.Hot),
		ColdColor:        core.Color(c.TSP.Cold),
	}, nil
}

// VertexColoring returns the vertex gradient options.
func (c *Config) VertexColoring() coloring.Options {
	return coloring.Options{From: core.Color(c.Coloring.VertexFrom), To: core.Color(c.Coloring.VertexTo), Polar: c.Coloring.Polar}
}

// EdgeColoring returns the edge gradient options.
func (c *Config) EdgeColoring() coloring.Options {
	return coloring.Options{From: core.Color(c.Coloring.EdgeFrom), To: core.Color(c.Coloring.EdgeTo), Polar: c.Coloring.Polar}
}
