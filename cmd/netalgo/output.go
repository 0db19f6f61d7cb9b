package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/netalgo/core"
	"github.com/katalvlaran/netalgo/engine"
)

// outputJSON writes a value as indented JSON to w.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputHuman writes a human-readable line to w.
func outputHuman(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, format+"\n", args...)
}

// ErrorResponse is the JSON body written for a failed command.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// GenerateResponse describes a generated graph.
type GenerateResponse struct {
	Vertices       int    `json:"vertices"`
	Edges          int    `json:"edges"`
	Components     int    `json:"components"`
	ComponentSizes []int  `json:"component_sizes"`
	Diameter       int    `json:"diameter"`
	DiameterPath   []int  `json:"diameter_path"`
	Acyclic        bool   `json:"acyclic"`
	Cycle          []int  `json:"cycle,omitempty"`
	Strategy       string `json:"strategy"`
	Seed           int64  `json:"seed"`
	Output         string `json:"output"`
}

// JobResponse is the JSON body of one finished job. Frames are included
// only when requested.
type JobResponse struct {
	Job     string         `json:"job"`
	Summary engine.Summary `json:"summary"`

	Positions *core.Sequence[core.PositionFrame] `json:"positions,omitempty"`
	Edges     *core.Sequence[core.EdgeFrame]     `json:"edges,omitempty"`
	Graphs    *core.Sequence[core.GraphFrame]    `json:"graphs,omitempty"`
}

// RunResponse is the JSON body of run and the per-family commands.
type RunResponse struct {
	Input   string        `json:"input"`
	Output  string        `json:"output,omitempty"`
	Results []JobResponse `json:"results"`
}

func newJobResponse(out *engine.Output, frames bool) JobResponse {
	r := JobResponse{Job: out.Job, Summary: out.Summary}
	if frames {
		r.Positions, r.Edges, r.Graphs = out.Positions, out.Edges, out.Graphs
	}

	return r
}

// printSummaryHuman prints one line per job.
func printSummaryHuman(w io.Writer, r JobResponse) {
	s := r.Summary
	switch {
	case s.Layout != nil:
		outputHuman(w, "%s: %d frames, %d iterations, %s (max force %.4g)",
			r.Job, s.Frames, s.Layout.Iterations, s.Layout.State, s.Layout.MaxForce)
	case s.Spanning != nil:
		shape := "tree"
		if !s.Spanning.Complete {
			shape = "forest"
		}
		outputHuman(w, "%s: %d frames, %s of %d edges, weight %.4f",
			r.Job, s.Frames, shape, len(s.Spanning.TreeEdges), s.Spanning.TotalWeight)
	case s.Tour != nil:
		outputHuman(w, "%s: %d frames, %d accepted, length %.4f -> %.4f (best %.4f)",
			r.Job, s.Frames, s.Tour.Accepted, s.Tour.InitialLength, s.Tour.Length, s.Tour.BestLength)
	case s.Coloring != nil:
		outputHuman(w, "%s: %d frames, %d colors", r.Job, s.Frames, s.Coloring.NumColors)
	default:
		outputHuman(w, "%s: %d frames", r.Job, s.Frames)
	}
}

// exitError carries the process exit code of a failed command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// withCode tags err with an exit code. A nil err stays nil.
func withCode(code int, err error) error {
	if err == nil {
		return nil
	}

	return &exitError{code: code, err: err}
}

// exitCode returns the exit code carried by err, ExitError for untagged
// errors and ExitSuccess for nil.
func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}

	return ExitError
}
