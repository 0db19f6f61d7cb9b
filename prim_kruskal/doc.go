// Package prim_kruskal computes minimum spanning trees of a core.Graph with
// Kruskal's and Prim's algorithms and records each accepted edge as an
// animation frame.
//
// What
//
//   - Kruskal(g, opts...): stable-sort edges by weight (ties keep edge-list
//     order), accept every edge joining two different union-find components,
//     stop after V-1 accepted edges or when the list is exhausted.
//   - Prim(g, opts...): grow one tree from the root vertex (default 0) with a
//     min-heap frontier keyed by (weight, edge index), so among equal-weight
//     crossing edges the one earliest in the edge list wins; stop when no
//     crossing edge remains.
//   - Compute(g, MSTOptions): dispatch by method name.
//
// Frames
//
//	Every accepted edge emits one EdgeFrame: a full copy of the edge list in
//	which all edges accepted so far carry the highlight color. A run that
//	accepts nothing emits one unchanged frame, so the last frame is always
//	the final state.
//
// Disconnected input
//
//	Kruskal returns a minimum spanning forest and Prim the tree of the root's
//	component; Result.Complete reports whether all vertices are spanned.
//
// Complexity
//
//   - Kruskal: O(E log E + E·α(V)) time, plus O(E·F) to copy F frames.
//   - Prim:    O(E log E) time with the lazy heap, plus frame copies.
package prim_kruskal
