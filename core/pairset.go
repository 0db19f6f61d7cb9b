// SPDX-License-Identifier: MIT
// Package: netalgo/core

package core

import "github.com/emirpasic/gods/sets/hashset"

// PairKey encodes the unordered pair {a, b} as min*MaxVertexIndex+max.
// Both indices must be in [0, MaxVertexIndex).
func PairKey(a, b int) int {
	if a > b {
		a, b = b, a
	}

	return a*MaxVertexIndex + b
}

// PairSet is a membership set of unordered vertex pairs.
type PairSet struct {
	set *hashset.Set
}

// NewPairSet returns an empty PairSet.
func NewPairSet() *PairSet {
	return &PairSet{set: hashset.New()}
}

// PairSetOf returns a PairSet holding the endpoints of every edge in g.
func PairSetOf(g *Graph) *PairSet {
	ps := NewPairSet()
	for _, e := range g.Edges {
		ps.Add(e.Start, e.End)
	}

	return ps
}

// Add inserts {a, b}.
func (ps *PairSet) Add(a, b int) { ps.set.Add(PairKey(a, b)) }

// Contains reports whether {a, b} is present.
func (ps *PairSet) Contains(a, b int) bool { return ps.set.Contains(PairKey(a, b)) }

// Len returns the number of pairs.
func (ps *PairSet) Len() int { return ps.set.Size() }
