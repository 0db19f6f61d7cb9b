// SPDX-License-Identifier: MIT
// Package: netalgo/engine

// Package engine runs the netalgo algorithms by name.
//
// A Job names one algorithm and carries the parameters of every family; Run
// executes it on a private clone of the caller's graph and returns the final
// graph together with the frame sequence the algorithm emitted. RunBatch runs
// several jobs concurrently, each on its own clone, so the input graph is
// never mutated.
//
//	out, err := engine.Run(ctx, g, engine.Job{Algorithm: engine.Kruskal, Params: engine.DefaultParams()})
//	for i, frame := range out.Edges.All() { ... }
//
// Run and RunBatch log through the *slog.Logger carried by ctx
// (see internal/ctxlog).
package engine
