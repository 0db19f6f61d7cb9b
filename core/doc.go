// SPDX-License-Identifier: MIT
// Package: netalgo/core

// Package core defines the graph model shared by every algorithm family in
// netalgo: index-addressed vertices with a position in 2D or 3D space, simple
// undirected edges between them, derived presentation attributes (degree,
// size, color) and restartable frame sequences that record how an algorithm
// transformed a graph step by step.
//
// Model:
//
//   - Graph{Dim, Vertices, Edges}. Vertices are addressed by their index in
//     Graph.Vertices; Edge.Start and Edge.End are such indices.
//   - Edges are undirected. Self-loops and duplicate pairs are rejected by
//     AddEdge and reported by Validate.
//   - Vertex.Degree always equals the number of incident edges once
//     RecomputeDegrees (or RecomputeDerived) has run. Mutators on Graph keep
//     it current.
//   - In 2D every vertex has Pos.Z == 0.
//
// Frames:
//
//	Sequence[T] is an append-only list of frames with random access and an
//	iterator that can be ranged over any number of times. Snapshot helpers
//	(SnapshotPositions, SnapshotEdges, SnapshotGraph) return value copies, so
//	a recorded frame never aliases the graph or another frame.
//
// Concurrency:
//
//	Graph is a plain value type with no internal locking. Algorithms take a
//	graph by pointer, never mutate it, and return new state. Run independent
//	algorithms concurrently on Clone()s.
//
// Errors:
//
//	ErrVertexNotFound      - an index is outside [0, len(Vertices)).
//	ErrLoopNotAllowed      - an edge joins a vertex to itself.
//	ErrMultiEdgeNotAllowed - an edge duplicates an existing unordered pair.
//	ErrBadDimension        - Dim is neither 2 nor 3.
//	ErrTooManyVertices     - vertex count exceeds MaxVertexIndex.
//	ErrInvariant           - Validate found an inconsistent graph.
package core
