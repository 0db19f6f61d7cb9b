// SPDX-License-Identifier: MIT
// Package: netalgo/builder

// Package builder generates random simple graphs embedded in 2D or 3D space.
//
// Construction is compositional: BuildGraph creates an empty core.Graph and
// applies a sequence of Constructor closures (Positions, RandomEdges,
// HamiltonianCycle, WeightByDistance, ...), each receiving the resolved
// builderConfig. Generate wires the common request shape
// (vertex count, edge count, connectivity, seeding strategy) onto those
// constructors.
//
// Guarantees of every graph returned by BuildGraph:
//
//   - no self-loops and no duplicate unordered pairs;
//   - Vertex.Degree consistent with the edge list;
//   - every vertex inside the canvas box [0,W]x[0,H](x[0,D]);
//   - sizes and colors refreshed from degrees (core.RecomputeDerived).
//
// A violation of these is reported as ErrInvariantViolation rather than a
// silently broken graph.
//
// Random edges:
//
//	With connectivity requested, a random spanning tree is grown first: a
//	random visited vertex is joined to a random unvisited one until every
//	vertex is visited (V-1 edges). Remaining edges are then drawn as random
//	pairs from the pool of vertices whose degree is still below V-1, skipping
//	pairs that are already connected. Generation stops when the requested
//	count is reached, the pool runs dry, or the V(V-1)/2 budget is exhausted;
//	stopping short is not an error.
//
// Determinism:
//
//	All randomness flows from the *rand.Rand set with WithSeed or WithRand.
//	Equal seeds and equal requests produce identical graphs.
//
// Limits:
//
//	MinVertices <= V <= MaxVertices, 0 <= E <= min(V(V-1)/2, MaxEdges).
package builder
