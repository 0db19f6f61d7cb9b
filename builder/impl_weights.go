// SPDX-License-Identifier: MIT
// Package: netalgo/builder

package builder

import "github.com/katalvlaran/netalgo/core"

// WeightByDistance returns a Constructor that sets every edge weight to the
// Euclidean distance between its endpoints.
func WeightByDistance() Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for i, e := range g.Edges {
			g.Edges[i].Weight = g.Distance(e.Start, e.End)
		}

		return nil
	}
}
