// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted hop distances, parent links and visit order, plus the connected
// component and hop-diameter helpers used by the generator's self-check and
// its report.
//
// What
//
//   - Explore vertices in non-decreasing hop distance from a start index.
//   - Result.Depth[v] is the hop distance, or -1 when v was not reached.
//   - Result.Parent[v] is the predecessor in the BFS tree, -1 for the start
//     and unreached vertices.
//   - OnVisit hook (may abort with an error); cancellation through Ctx.
//   - Diameter finds a longest shortest path over all start vertices.
//
// Determinism
//
//	Neighbors are expanded in ascending index order (core.Graph.Adjacency),
//	so the visit order is reproducible.
//
// Complexity
//
//	O(V + E) time, O(V) memory beyond the adjacency lists.
package bfs
