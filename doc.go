// Package netalgo generates small embedded graphs and runs layout, spanning
// tree, travelling-salesman and coloring algorithms on them, recording every
// step as a replayable frame sequence.
//
// Every algorithm takes a caller-owned *core.Graph and parameters, and
// returns a final state plus the complete list of frames; nothing is drawn
// and no state survives between calls, so independent runs on independent
// copies may proceed concurrently.
//
// Packages:
//
//	core/         - Vertex, Edge, Graph, colors and gradients, frame sequences, invariants
//	builder/      - random graphs (uniform, circle, Hamiltonian cycle) and fixed topologies
//	bfs/, dfs/    - traversals, components, cycle detection
//	force/        - distance, separation, clamping and the iterate-until-converged simulator
//	layout/       - Spring, Fruchterman-Reingold, ForceAtlas2 (+LinLog), Spectral
//	prim_kruskal/ - minimum spanning trees (forests for disconnected input)
//	tsp/          - 2-opt, 3-opt and simulated-annealing 2-opt tour improvement
//	coloring/     - greedy vertex coloring, Misra-Gries edge coloring
//	csvio/        - vertex/edge record import and export
//	converters/   - gonum graph views
//	engine/       - run algorithms by name, one at a time or concurrently
//	cmd/netalgo/  - command-line interface
//
// Quick ASCII example:
//
//	    0───1
//	    │ ╲ │
//	    3───2
//
//	engine.Run(ctx, g, engine.Job{Algorithm: engine.Kruskal, Params: engine.DefaultParams()})
//	keeps 0─1, 1─2 and 2─3 when the diagonal and 3─0 are the heaviest.
//
//	go get github.com/katalvlaran/netalgo
package netalgo
