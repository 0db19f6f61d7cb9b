package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/netalgo/bfs"
	"github.com/katalvlaran/netalgo/builder"
	"github.com/katalvlaran/netalgo/converters"
	"github.com/katalvlaran/netalgo/dfs"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		vertices, edges int
		strategy        string
		connected       bool
		byDistance      bool
		output          string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random graph as CSV",
		Long: `Generate a random graph with the requested vertex and edge counts.

Strategies:
  uniform  positions uniform in the canvas, random edges
  circle   positions on a circle (a sphere in 3D), random edges
  cycle    uniform positions joined in one Hamiltonian cycle (for tsp)

Example:
  netalgo generate --vertices 30 --edges 60 -o graph.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gc := &a.cfg.Generate
			f := cmd.Flags()
			if f.Changed("vertices") {
				gc.Vertices = vertices
			}
			if f.Changed("edges") {
				gc.Edges = edges
			}
			if f.Changed("strategy") {
				gc.Strategy = strategy
			}
			if f.Changed("connected") {
				gc.Connected = connected
			}
			if f.Changed("weight-by-distance") {
				gc.WeightByDistance = byDistance
			}

			req, err := a.cfg.GenerateRequest()
			if err != nil {
				return withCode(ExitConfigError, err)
			}
			g, err := builder.Generate(a.cfg.Dimension, req, a.cfg.BuilderOptions()...)
			if err != nil {
				return err
			}
			a.logger.Info("Graph generated", "vertices", g.VertexCount(), "edges", g.EdgeCount(), "strategy", req.Strategy.String())

			if err = a.writeGraph(cmd, output, g); err != nil {
				return err
			}
			if output == stdio {
				return nil
			}

			span, err := bfs.Diameter(cmd.Context(), g)
			if err != nil {
				return err
			}
			sizes := make([]int, 0, 1)
			for _, comp := range bfs.Components(g) {
				sizes = append(sizes, len(comp))
			}

			resp := GenerateResponse{
				Vertices:       g.VertexCount(),
				Edges:          g.EdgeCount(),
				Components:     converters.ComponentCount(g),
				ComponentSizes: sizes,
				Diameter:       span.Hops,
				DiameterPath:   span.Path,
				Acyclic:        dfs.IsForest(g),
				Strategy:       req.Strategy.String(),
				Seed:           a.cfg.Seed,
				Output:         output,
			}
			if cycle, ok := dfs.FindCycle(g); ok {
				resp.Cycle = cycle
			}
			if a.human {
				outputHuman(cmd.OutOrStdout(), "%s: %d vertices, %d edges, %d components, diameter %d",
					resp.Output, resp.Vertices, resp.Edges, resp.Components, resp.Diameter)
				return nil
			}

			return outputJSON(cmd.OutOrStdout(), resp)
		},
	}

	f := cmd.Flags()
	f.IntVar(&vertices, "vertices", 0, "Vertex count (4-200)")
	f.IntVar(&edges, "edges", 0, "Target edge count")
	f.StringVar(&strategy, "strategy", "", "Seeding strategy: uniform, circle or cycle")
	f.BoolVar(&connected, "connected", true, "Require a single connected component")
	f.BoolVar(&byDistance, "weight-by-distance", false, "Weight edges by their Euclidean length")
	f.StringVarP(&output, "output", "o", stdio, "CSV output file (- for stdout)")

	return cmd
}
