// SPDX-License-Identifier: MIT
// Package: netalgo/builder

package builder

// Generator limits.
const (
	// MinVertices is the smallest vertex count Generate accepts.
	MinVertices = 4

	// MaxVertices is the largest vertex count Generate accepts.
	MaxVertices = 200

	// MaxEdges caps the requested edge count regardless of V.
	MaxEdges = 600
)

// Canvas defaults.
const (
	DefaultWidth  = 500.0
	DefaultHeight = 500.0
	DefaultDepth  = 500.0

	// canvasMargin keeps uniformly seeded vertices off the border.
	canvasMargin = 3.0

	// circleFill is the fraction of the half-extent used as circle radius.
	circleFill = 0.9
)

// attemptsPerVertexPair bounds rejected pair draws at attemptsPerVertexPair*V*V.
const attemptsPerVertexPair = 32
