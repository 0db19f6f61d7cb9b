// SPDX-License-Identifier: MIT
// Package: netalgo/builder

package builder

import "fmt"

// validateVertexCount enforces MinVertices <= n <= MaxVertices.
func validateVertexCount(method string, n int) error {
	if n < MinVertices {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, MinVertices, ErrTooFewVertices)
	}
	if n > MaxVertices {
		return fmt.Errorf("%s: n=%d > max=%d: %w", method, n, MaxVertices, ErrTooManyVertices)
	}

	return nil
}

// MaxEdgesFor returns min(n(n-1)/2, MaxEdges), the largest edge count
// accepted for n vertices.
func MaxEdgesFor(n int) int {
	return min(n*(n-1)/2, MaxEdges)
}

// validateEdgeCount enforces 0 <= e <= MaxEdgesFor(n).
func validateEdgeCount(method string, n, e int) error {
	if limit := MaxEdgesFor(n); e < 0 || e > limit {
		return fmt.Errorf("%s: e=%d not in [0,%d] for n=%d: %w", method, e, limit, n, ErrTooManyEdges)
	}

	return nil
}

// validateCanvas ensures the box leaves room inside the margin.
func validateCanvas(method string, cfg builderConfig, dim int) error {
	if cfg.width <= 2*canvasMargin || cfg.height <= 2*canvasMargin || (dim == 3 && cfg.depth <= 2*canvasMargin) {
		return fmt.Errorf("%s: canvas %gx%gx%g: %w", method, cfg.width, cfg.height, cfg.depth, ErrBadCanvas)
	}

	return nil
}
