// SPDX-License-Identifier: MIT
// Package: netalgo/engine

package engine

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/netalgo/coloring"
	"github.com/katalvlaran/netalgo/core"
	"github.com/katalvlaran/netalgo/internal/ctxlog"
	"github.com/katalvlaran/netalgo/layout"
	"github.com/katalvlaran/netalgo/prim_kruskal"
	"github.com/katalvlaran/netalgo/tsp"
)

// Run executes job on a clone of g. g itself is never modified.
func Run(ctx context.Context, g *core.Graph, job Job) (*Output, error) {
	if g == nil {
		return nil, fmt.Errorf("Run(%s): %w", job.label(), ErrNilGraph)
	}
	fam, ok := job.Algorithm.Family()
	if !ok {
		return nil, fmt.Errorf("Run(%s): %q: %w", job.label(), job.Algorithm, ErrUnknownAlgorithm)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("Run(%s): %w", job.label(), err)
	}

	logger := ctxlog.FromContext(ctx).With("job", job.label(), "algorithm", string(job.Algorithm))
	logger.Debug("Starting job", "vertices", g.VertexCount(), "edges", g.EdgeCount())

	start := time.Now()
	out := &Output{Job: job.label(), Final: g.Clone()}
	var err error
	switch fam {
	case FamilyLayout:
		err = runLayout(ctx, out, job)
	case FamilySpanning:
		err = runSpanning(out, job)
	case FamilyTour:
		err = runTour(out, job)
	case FamilyColoring:
		err = runColoring(out, job)
	}
	if err != nil {
		logger.Error("Job failed", "error", err)
		return nil, fmt.Errorf("Run(%s): %w", job.label(), err)
	}

	out.Summary.Algorithm = job.Algorithm
	out.Summary.Family = fam
	out.Summary.Vertices = out.Final.VertexCount()
	out.Summary.Edges = out.Final.EdgeCount()
	out.Summary.Frames = out.Frames()
	out.Summary.Elapsed = time.Since(start)
	logger.Info("Job finished", "frames", out.Summary.Frames, "elapsed", out.Summary.Elapsed)

	return out, nil
}

// RunBatch runs jobs concurrently, at most limit at a time (unbounded when
// limit <= 0). Outputs are returned in job order. The first failure cancels
// the jobs that have not started and is returned.
func RunBatch(ctx context.Context, g *core.Graph, jobs []Job, limit int) ([]*Output, error) {
	if g == nil {
		return nil, fmt.Errorf("RunBatch: %w", ErrNilGraph)
	}

	logger := ctxlog.FromContext(ctx)
	logger.Debug("Starting batch", "jobs", len(jobs), "limit", limit)

	outs := make([]*Output, len(jobs))
	eg, egCtx := errgroup.WithContext(ctx)
	if limit > 0 {
		eg.SetLimit(limit)
	}
	for i, job := range jobs {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			out, err := Run(egCtx, g, job)
			if err != nil {
				return err
			}
			outs[i] = out

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("RunBatch: %w", err)
	}

	return outs, nil
}

func runLayout(ctx context.Context, out *Output, job Job) error {
	var (
		res *layout.Result
		err error
		p   = job.Params
	)
	switch job.Algorithm {
	case Spring:
		res, err = layout.Spring(ctx, out.Final, p.Spring)
	case FruchtermanReingold:
		res, err = layout.FruchtermanReingold(ctx, out.Final, p.Fruchterman)
	case ForceAtlas2:
		res, err = layout.ForceAtlas2(ctx, out.Final, p.ForceAtlas2)
	case ForceAtlas2LinLog:
		res, err = layout.ForceAtlas2LinLog(ctx, out.Final, p.ForceAtlas2)
	case Spectral:
		res, err = layout.Spectral(ctx, out.Final, p.Spectral)
	}
	if err != nil {
		return err
	}
	if err = res.Apply(out.Final); err != nil {
		return err
	}

	out.Positions = res.Frames
	out.Summary.Layout = &LayoutSummary{
		Iterations: res.Iterations,
		State:      res.State.String(),
		MaxForce:   res.MaxForce,
	}

	return nil
}

func runSpanning(out *Output, job Job) error {
	opts := job.Params.MST
	opts.Method = string(job.Algorithm)
	res, err := prim_kruskal.Compute(out.Final, opts)
	if err != nil {
		return err
	}
	if last, ok := res.Frames.Last(); ok {
		out.Final.Edges = append(out.Final.Edges[:0], last...)
	}

	out.Edges = res.Frames
	out.Summary.Spanning = &SpanningSummary{
		TreeEdges:   res.Edges,
		TotalWeight: res.TotalWeight,
		Complete:    res.Complete,
	}

	return nil
}

var tourAlgorithms = map[Algorithm]tsp.Algorithm{
	TwoOpt:    tsp.TwoOptOnly,
	ThreeOpt:  tsp.ThreeOptOnly,
	Annealing: tsp.AnnealingTwoOpt,
}

func runTour(out *Output, job Job) error {
	opts := job.Params.TSP
	opts.Algo = tourAlgorithms[job.Algorithm]
	res, err := tsp.Solve(out.Final, opts)
	if err != nil {
		return err
	}
	res.Apply(out.Final)

	out.Edges = res.Frames
	out.Summary.Tour = &TourSummary{
		Tour:          res.Tour,
		InitialLength: res.Lengths[0],
		Length:        res.Length,
		BestLength:    res.BestLength,
		Accepted:      res.Accepted,
	}

	return nil
}

func runColoring(out *Output, job Job) error {
	var (
		res *coloring.Result
		err error
	)
	if job.Algorithm == GreedyVertex {
		res, err = coloring.GreedyVertex(out.Final, job.Params.VertexColoring)
	} else {
		res, err = coloring.MisraGries(out.Final, job.Params.EdgeColoring)
	}
	if err != nil {
		return err
	}
	res.Apply(out.Final)

	out.Graphs = res.Frames
	out.Summary.Coloring = &ColoringSummary{Colors: res.Colors, NumColors: res.NumColors}

	return nil
}
