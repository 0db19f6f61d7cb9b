package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/netalgo/engine"
)

func newRunCmd(a *app) *cobra.Command {
	o := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run <algorithm> [algorithm...]",
		Short: "Run one or more algorithms concurrently on a graph",
		Long: fmt.Sprintf(`Run algorithms by name, each on its own copy of the input graph.

Algorithms:
  %s

Example:
  netalgo run kruskal prim 2opt -i graph.csv --parallel 2`, algorithmList("")),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.params()
			if err != nil {
				return err
			}
			jobs := make([]engine.Job, len(args))
			for i, name := range args {
				algo, err := engine.ParseAlgorithm(name)
				if err != nil {
					return err
				}
				jobs[i] = engine.Job{Algorithm: algo, Params: p}
			}

			return a.runJobs(cmd, o, jobs)
		},
	}
	o.register(cmd)

	return cmd
}

func algorithmList(f engine.Family) string {
	names := engine.Algorithms(f)
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = string(n)
	}

	return strings.Join(out, ", ")
}

// familyCmd builds a command that runs one algorithm of family f. The
// algorithm argument is optional when def returns a default.
func familyCmd(a *app, f engine.Family, cmd *cobra.Command, def func() string, tune func(*engine.Params)) *cobra.Command {
	o := &runOptions{}
	cmd.Args = cobra.MaximumNArgs(1)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		name := ""
		if def != nil {
			name = def()
		}
		if len(args) == 1 {
			name = args[0]
		}
		algo, err := engine.ParseAlgorithm(name)
		if err != nil {
			return err
		}
		if fam, _ := algo.Family(); fam != f {
			return fmt.Errorf("%s is a %s algorithm, not %s: %w", algo, fam, f, engine.ErrUnknownAlgorithm)
		}

		p, err := a.params()
		if err != nil {
			return err
		}
		if tune != nil {
			tune(&p)
		}

		return a.runJobs(cmd, o, []engine.Job{{Algorithm: algo, Params: p}})
	}
	o.register(cmd)

	return cmd
}

func newLayoutCmd(a *app) *cobra.Command {
	var maxIter int
	cmd := &cobra.Command{
		Use:   "layout <algorithm>",
		Short: "Compute a force-directed or spectral layout",
		Long: fmt.Sprintf(`Compute vertex positions with a layout algorithm.

Algorithms: %s

Example:
  netalgo layout fruchterman-reingold -i graph.csv -o placed.csv`, algorithmList(engine.FamilyLayout)),
	}
	familyCmd(a, engine.FamilyLayout, cmd, nil, func(p *engine.Params) {
		if !cmd.Flags().Changed("max-iterations") {
			return
		}
		p.Spring.MaxIterations = maxIter
		p.Fruchterman.MaxIterations = maxIter
		p.ForceAtlas2.MaxIterations = maxIter
	})
	cmd.Flags().IntVar(&maxIter, "max-iterations", 0, "Override the iteration budget of force layouts")

	return cmd
}

func newMSTCmd(a *app) *cobra.Command {
	var root int
	cmd := &cobra.Command{
		Use:   "mst [kruskal|prim]",
		Short: "Compute a minimum spanning tree",
		Long: `Compute a minimum spanning tree (a forest for disconnected graphs).
The algorithm defaults to mst.method from the configuration.

Example:
  netalgo mst prim --root 3 -i graph.csv`,
	}
	familyCmd(a, engine.FamilySpanning, cmd, func() string { return a.cfg.MST.Method }, func(p *engine.Params) {
		if cmd.Flags().Changed("root") {
			p.MST.Root = root
		}
	})
	cmd.Flags().IntVar(&root, "root", 0, "Start vertex for prim")

	return cmd
}

func newTSPCmd(a *app) *cobra.Command {
	var iterations int
	cmd := &cobra.Command{
		Use:   "tsp [2opt|3opt|annealing]",
		Short: "Improve a Hamiltonian cycle by local search",
		Long: `Improve the tour given by a graph whose edges form one Hamiltonian cycle
(see "generate --strategy cycle"). The algorithm defaults to tsp.algorithm
from the configuration.

Example:
  netalgo tsp annealing --iterations 2000 -i cycle.csv -o tour.csv`,
	}
	familyCmd(a, engine.FamilyTour, cmd, func() string { return a.cfg.TSP.Algorithm }, func(p *engine.Params) {
		if cmd.Flags().Changed("iterations") {
			p.TSP.Iterations = iterations
		}
	})
	cmd.Flags().IntVar(&iterations, "iterations", 0, "Override the iteration budget")

	return cmd
}

func newColorCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "color [greedy-vertex|misra-gries]",
		Short: "Color vertices or edges",
		Long: `Color the vertices greedily or the edges with the Misra-Gries algorithm.
The algorithm defaults to greedy-vertex; "vertex" and "edge" are accepted.

Example:
  netalgo color edge -i graph.csv --frames`,
	}

	return familyCmd(a, engine.FamilyColoring, cmd, func() string { return string(engine.GreedyVertex) }, nil)
}

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := a.cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}
}
