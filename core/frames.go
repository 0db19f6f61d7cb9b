// SPDX-License-Identifier: MIT
// Package: netalgo/core

package core

import (
	"encoding/json"
	"iter"

	"gonum.org/v1/gonum/spatial/r3"
)

// PositionFrame is one snapshot of all vertex positions, emitted by layouts.
type PositionFrame []r3.Vec

// EdgeFrame is one snapshot of all edges, emitted by spanning-tree and TSP
// algorithms (highlighting is carried in Edge.Color).
type EdgeFrame []Edge

// GraphFrame is one full snapshot of vertices and edges, emitted by coloring.
type GraphFrame struct {
	Vertices []Vertex
	Edges    []Edge
}

// Sequence is an ordered, append-only list of frames. All may be ranged over
// any number of times; each pass starts from the first frame.
//
// The last frame of a sequence returned by an algorithm is its final state.
type Sequence[T any] struct {
	frames []T
}

// NewSequence returns an empty sequence with room for capacity frames.
func NewSequence[T any](capacity int) *Sequence[T] {
	return &Sequence[T]{frames: make([]T, 0, max(capacity, 0))}
}

// Append records f. Callers pass a value they no longer mutate; the snapshot
// helpers in this file return such values.
func (s *Sequence[T]) Append(f T) { s.frames = append(s.frames, f) }

// Len returns the number of frames.
func (s *Sequence[T]) Len() int {
	if s == nil {
		return 0
	}

	return len(s.frames)
}

// At returns frame i. It panics if i is out of range, like a slice index.
func (s *Sequence[T]) At(i int) T { return s.frames[i] }

// Last returns the final frame and false if the sequence is empty.
func (s *Sequence[T]) Last() (T, bool) {
	var zero T
	if s.Len() == 0 {
		return zero, false
	}

	return s.frames[len(s.frames)-1], true
}

// All yields (index, frame) pairs from the first frame to the last.
func (s *Sequence[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < s.Len(); i++ {
			if !yield(i, s.frames[i]) {
				return
			}
		}
	}
}

// SnapshotPositions copies pos into a new PositionFrame.
func SnapshotPositions(pos []r3.Vec) PositionFrame {
	return append(PositionFrame(nil), pos...)
}

// SnapshotEdges copies edges into a new EdgeFrame.
func SnapshotEdges(edges []Edge) EdgeFrame {
	return append(EdgeFrame(nil), edges...)
}

// SnapshotGraph copies the vertices and edges of g into a new GraphFrame.
func SnapshotGraph(g *Graph) GraphFrame {
	return GraphFrame{
		Vertices: append([]Vertex(nil), g.Vertices...),
		Edges:    append([]Edge(nil), g.Edges...),
	}
}

// MarshalJSON encodes the frames as a JSON array.
func (s *Sequence[T]) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}

	return json.Marshal(s.frames)
}

// UnmarshalJSON decodes a JSON array of frames.
func (s *Sequence[T]) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &s.frames)
}
