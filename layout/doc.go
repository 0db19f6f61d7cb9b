// SPDX-License-Identifier: MIT
// Package: netalgo/layout

// Package layout computes vertex placements for a core.Graph inside a canvas
// box and records every intermediate placement as a frame.
//
// Algorithms:
//
//   - Spring: Eades spring embedding. Edges attract with
//     CSpring·ln(d)/l, non-adjacent pairs repel with CRepulse/d, where l is
//     the ideal length min(W,H)/Scale. Vertices move by Delta·F.
//   - FruchtermanReingold: attraction d²/k along edges, repulsion k²/d
//     between all pairs, displacement limited by a temperature that follows
//     a cooling schedule; optional elastic collision between vertex circles.
//   - ForceAtlas2 and ForceAtlas2LinLog: degree-weighted repulsion,
//     linear (or logarithmic) attraction, optional gravity and overlap
//     prevention, adaptive global and per-vertex speed.
//   - Spectral: coordinates from the eigenvectors of the graph Laplacian
//     belonging to the smallest non-zero eigenvalues; non-iterative.
//
// Every layout leaves the input graph untouched and returns a Result whose
// last frame equals Result.Vertices' positions. Use Result.Apply to write the
// placement back. Results are deterministic for equal inputs.
//
// All iterative layouts run on force.Simulator and stop when the largest
// force magnitude of an iteration drops below Epsilon or after
// MaxIterations iterations.
package layout
