// SPDX-License-Identifier: MIT
// Package: netalgo/tsp

// Package tsp improves a Hamiltonian cycle by randomized local search.
//
// Three searches share one driver:
//
//   - TwoOpt: reverse a random segment, keep it if the tour gets shorter.
//   - ThreeOpt: cut at three random points and try the seven reconnections
//     of the two inner segments, keep the first that shortens the tour.
//   - Annealing: 2-opt moves, but a longer tour is kept with probability
//     exp(-Δ/T); T decays geometrically once per outer iteration.
//
// Every search runs Options.Iterations outer iterations of at most
// Options.Simulations attempts each and records one EdgeFrame per outer
// iteration, after an initial frame of the input cycle. Frame i holds the
// tour edges in tour order; edges introduced by an accepted move carry
// Options.Highlight (annealing colors by temperature instead).
//
// Tour length is sqrt of the sum of squared edge lengths, with each squared
// length floored at 1e-20. TourLength exposes the same measure.
//
// Input cycles come from TourFromEdges, which accepts any edge set forming a
// single cycle through every vertex (builder.HamiltonianCycle produces one).
// All searches are deterministic for a fixed Options.Seed.
package tsp
