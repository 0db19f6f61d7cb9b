// SPDX-License-Identifier: MIT
// Package: netalgo/coloring

// Package coloring assigns color indices to vertices or edges and renders
// them through a two-point gradient.
//
//   - GreedyVertex visits vertices in index order and gives each the lowest
//     index unused by its already colored neighbors (at most Δ+1 colors).
//   - MisraGries colors edges with at most Δ+1 colors using fans and
//     cd-path inversion.
//
// Both return the color index per element, the number of colors used and a
// GraphFrame per step. Gradients have Δ+1 steps so a color index maps to the
// same color in every frame.
package coloring
