// SPDX-License-Identifier: MIT
// Package: netalgo/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Implementations attach context with %w ("<Method>: ...: %w").
//   • Constructors never panic at runtime; validation panics are confined to
//     option constructors (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates a vertex count below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: too few vertices")

// ErrTooManyVertices indicates a vertex count above MaxVertices.
var ErrTooManyVertices = errors.New("builder: too many vertices")

// ErrTooManyEdges indicates a negative edge count or one above
// min(V(V-1)/2, MaxEdges).
var ErrTooManyEdges = errors.New("builder: edge count out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG
// (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a constructor could not run on the current
// graph state (nil constructor, cycle on a graph that already has edges, ...).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrInvariantViolation indicates the built graph failed its self-check.
// This is an internal fault, never a user error.
var ErrInvariantViolation = errors.New("builder: generated graph violates invariants")

// ErrBadCanvas indicates a canvas too small to place vertices in.
var ErrBadCanvas = errors.New("builder: canvas too small")

// ErrUnknownStrategy indicates an unrecognized seeding strategy name.
var ErrUnknownStrategy = errors.New("builder: unknown seeding strategy")
