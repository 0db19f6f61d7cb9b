// SPDX-License-Identifier: MIT
// Package: netalgo/builder

package builder

import (
	"math/rand"

	"github.com/katalvlaran/netalgo/core"
)

// builderConfig holds the resolved options passed to every Constructor.
type builderConfig struct {
	// rng drives every stochastic constructor; nil until WithSeed/WithRand.
	rng *rand.Rand

	// weightFn assigns weights to generated edges.
	weightFn WeightFn

	// canvas extents; depth is used only in 3D.
	width, height, depth float64

	// derived controls the final size/color refresh.
	derived core.DerivedOptions
}

// newBuilderConfig applies opts over the defaults: no RNG, constant weight 1,
// 500x500x500 canvas, default degree-based sizes and colors.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		weightFn: DefaultWeightFn,
		width:    DefaultWidth,
		height:   DefaultHeight,
		depth:    DefaultDepth,
		derived:  core.DefaultDerivedOptions(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
