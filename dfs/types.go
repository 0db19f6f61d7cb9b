// SPDX-License-Identifier: MIT
// Package: netalgo/dfs

package dfs

import "errors"

// Visitation states.
const (
	White = iota // not visited yet
	Gray         // on the recursion stack
	Black        // fully explored
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates a start index out of range.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures DFS.
type Option func(*Options)

// Options holds the DFS parameters.
type Options struct {
	// OnVisit, if non-nil, runs when a vertex is discovered (pre-order).
	// Returning an error aborts the traversal.
	OnVisit func(v, depth int) error

	// FullTraversal restarts from every unvisited vertex in index order.
	FullTraversal bool
}

// WithOnVisit installs a pre-order hook.
func WithOnVisit(fn func(v, depth int) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithFullTraversal covers every component.
func WithFullTraversal() Option {
	return func(o *Options) { o.FullTraversal = true }
}

// Result captures a traversal.
type Result struct {
	// Order lists vertices in finishing (post-) order.
	Order []int

	// Depth[v] is the tree depth of v, or -1 if v was not reached.
	Depth []int

	// Parent[v] is the vertex v was discovered from, or -1 for roots and
	// unreached vertices.
	Parent []int
}

// Reached reports whether v was visited.
func (r *Result) Reached(v int) bool {
	return v >= 0 && v < len(r.Depth) && r.Depth[v] >= 0
}
