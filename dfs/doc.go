// SPDX-License-Identifier: MIT
// Package: netalgo/dfs

// Package dfs implements depth-first search over the index graphs of
// package core, plus undirected cycle detection built on it.
//
//   - DFS(g, start, opts...) walks from one root, or every component with
//     WithFullTraversal, recording post-order, depth and parent links. An
//     OnVisit hook sees vertices in pre-order.
//   - FindCycle returns one simple cycle as a closed vertex walk.
//   - IsForest compares the edge count with V minus the number of DFS roots.
//
// Edges are undirected: the edge a vertex was discovered through is not a
// back edge, every other edge to a Gray vertex is.
//
// Complexity: O(V + E) time, O(V) memory (recursion stack and state).
package dfs
