// SPDX-License-Identifier: MIT
// Package: netalgo/csvio

// Package csvio reads and writes graphs as comma-separated records.
//
// One record per vertex, then one per edge:
//
//	vertex,x,y,z,degree,size,r,g,b
//	edge,start,end,r,g,b,weight,alpha
//
// In 2D the z field is left empty; a vertex record may also omit the z
// slot entirely. Imports are capped at MaxVertices vertices and MaxEdges
// edges, rescale positions into the target canvas and recompute degrees
// from the edge set. A failed import never touches the destination graph.
package csvio
