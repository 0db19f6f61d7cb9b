// Package main provides the netalgo CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	os.Exit(execute(os.Args[1:]))
}

// execute runs the command tree and reports failures on stderr, in JSON
// unless --human was given.
func execute(args []string) int {
	a := &app{}
	root := newRootCmd(a)
	root.SetArgs(args)

	err := root.Execute()
	code := exitCode(err)
	if err != nil {
		if a.human {
			fmt.Fprintf(root.ErrOrStderr(), "error: %v\n", err)
		} else {
			_ = outputJSON(root.ErrOrStderr(), ErrorResponse{Error: err.Error(), Code: code})
		}
	}

	return code
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "netalgo",
		Short: "Generate graphs and run layout, MST, TSP and coloring algorithms",
		Long: `netalgo generates random graphs and runs graph algorithms on them,
producing the full sequence of animation frames each algorithm emits.

Graphs are exchanged as CSV files (one vertex or edge record per line).
Results are written as JSON by default.

Configuration is read from a YAML file (--config), then .env files and
NETALGO_* environment variables, then command-line flags.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		Version:           Version,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "netalgo.yml", "YAML configuration file (missing file means defaults)")
	pf.StringSliceVar(&a.envFiles, "env-file", nil, "KEY=VALUE files loaded into the environment (default .env)")
	pf.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	pf.StringVar(&a.logFormat, "log-format", "", "Log format: text or json")
	pf.Int64Var(&a.seed, "seed", 0, "Random seed shared by the generator and the annealing search")
	pf.IntVar(&a.dim, "dim", 0, "Embedding dimension, 2 or 3")
	pf.BoolVar(&a.human, "human", false, "Use human-readable output instead of JSON")

	root.AddCommand(
		newGenerateCmd(a),
		newRunCmd(a),
		newLayoutCmd(a),
		newMSTCmd(a),
		newTSPCmd(a),
		newColorCmd(a),
		newConfigCmd(a),
	)

	return root
}
