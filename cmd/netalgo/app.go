package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/netalgo/core"
	"github.com/katalvlaran/netalgo/csvio"
	"github.com/katalvlaran/netalgo/engine"
	"github.com/katalvlaran/netalgo/internal/config"
	"github.com/katalvlaran/netalgo/internal/ctxlog"
)

// stdio is the path that selects stdin or stdout.
const stdio = "-"

// app holds the flag values and the resolved configuration shared by all
// commands.
type app struct {
	configPath string
	envFiles   []string
	logLevel   string
	logFormat  string
	seed       int64
	dim        int
	human      bool

	cfg    *config.Config
	logger *slog.Logger
}

// setup resolves the configuration (file, env, flags) and installs the
// logger in the command context.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := config.LoadEnvFiles(a.envFiles...); err != nil {
		return withCode(ExitConfigError, err)
	}
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return withCode(ExitConfigError, err)
	}
	if err = cfg.ApplyEnv(os.LookupEnv); err != nil {
		return withCode(ExitConfigError, err)
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = a.seed
	}
	if flags.Changed("dim") {
		cfg.Dimension = a.dim
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}
	if err = cfg.Validate(); err != nil {
		return withCode(ExitConfigError, err)
	}

	a.cfg = cfg
	a.logger = ctxlog.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	cmd.SetContext(ctxlog.WithLogger(cmd.Context(), a.logger))
	a.logger.Debug("Configuration resolved", "config", a.configPath, "seed", cfg.Seed, "dim", cfg.Dimension)

	return nil
}

// params converts the configuration into engine parameters.
func (a *app) params() (engine.Params, error) {
	t, err := a.cfg.TSPOptions()
	if err != nil {
		return engine.Params{}, withCode(ExitConfigError, err)
	}

	return engine.Params{
		Spring:         a.cfg.SpringParams(),
		Fruchterman:    a.cfg.FRParams(),
		ForceAtlas2:    a.cfg.FA2Params(),
		Spectral:       a.cfg.SpectralParams(),
		MST:            a.cfg.MSTOptions(),
		TSP:            t,
		VertexColoring: a.cfg.VertexColoring(),
		EdgeColoring:   a.cfg.EdgeColoring(),
	}, nil
}

// readGraph imports a CSV graph from path, or stdin for "-".
func (a *app) readGraph(cmd *cobra.Command, path string, rescale bool) (*core.Graph, error) {
	var r io.Reader = cmd.InOrStdin()
	if path != stdio {
		f, err := os.Open(path)
		if err != nil {
			return nil, withCode(ExitError, fmt.Errorf("opening graph: %w", err))
		}
		defer f.Close()
		r = f
	}

	g, err := csvio.Read(r, csvio.ReadOptions{
		Dim:     a.cfg.Dimension,
		Width:   a.cfg.Canvas.Width,
		Height:  a.cfg.Canvas.Height,
		Depth:   a.cfg.Canvas.Depth,
		Rescale: rescale,
		Rand:    rand.New(rand.NewSource(a.cfg.Seed)),
	})
	if err != nil {
		return nil, withCode(ExitDataError, fmt.Errorf("reading %s: %w", path, err))
	}
	a.logger.Debug("Graph imported", "path", path, "vertices", g.VertexCount(), "edges", g.EdgeCount())

	return g, nil
}

// writeGraph exports g as CSV to path, or stdout for "-".
func (a *app) writeGraph(cmd *cobra.Command, path string, g *core.Graph) (err error) {
	if path == stdio {
		return csvio.Write(cmd.OutOrStdout(), g)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	return csvio.Write(f, g)
}

// runOptions are the flags shared by run and the per-family commands.
type runOptions struct {
	input    string
	output   string
	frames   bool
	parallel int
	rescale  bool
}

func (o *runOptions) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&o.input, "input", "i", stdio, "Graph CSV file (- for stdin)")
	f.StringVarP(&o.output, "output", "o", "", "Write the final graph as CSV (single algorithm only)")
	f.BoolVar(&o.frames, "frames", false, "Include every animation frame in the JSON output")
	f.IntVar(&o.parallel, "parallel", 0, "Maximum concurrent jobs (0 means unlimited)")
	f.BoolVar(&o.rescale, "rescale", true, "Rescale imported positions onto the canvas")
}

// runJobs imports the input graph, runs jobs and prints the results.
func (a *app) runJobs(cmd *cobra.Command, o *runOptions, jobs []engine.Job) error {
	if o.output != "" && len(jobs) != 1 {
		return fmt.Errorf("--output needs exactly one algorithm, got %d", len(jobs))
	}

	g, err := a.readGraph(cmd, o.input, o.rescale)
	if err != nil {
		return err
	}

	outs, err := engine.RunBatch(cmd.Context(), g, jobs, o.parallel)
	if err != nil {
		if errors.Is(err, engine.ErrUnknownAlgorithm) {
			return err
		}
		return withCode(ExitDataError, err)
	}

	resp := RunResponse{Input: o.input, Output: o.output}
	for _, out := range outs {
		resp.Results = append(resp.Results, newJobResponse(out, o.frames))
	}
	if o.output != "" {
		if err = a.writeGraph(cmd, o.output, outs[0].Final); err != nil {
			return err
		}
	}

	if a.human {
		for _, r := range resp.Results {
			printSummaryHuman(cmd.OutOrStdout(), r)
		}
		return nil
	}

	return outputJSON(cmd.OutOrStdout(), resp)
}
