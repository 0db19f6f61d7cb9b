// SPDX-License-Identifier: MIT
// Package: netalgo/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/netalgo/core"
)

// BuilderOption customizes constructors by mutating a builderConfig before
// construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn sets the weight generator used for every new edge.
// Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithCanvas sets the bounding box [0,w]x[0,h]x[0,d]. d is ignored in 2D.
// Panics on non-positive extents.
func WithCanvas(w, h, d float64) BuilderOption {
	if w <= 0 || h <= 0 || d <= 0 {
		panic(fmt.Sprintf("builder: WithCanvas(%g,%g,%g): extents must be > 0", w, h, d))
	}
	return func(c *builderConfig) {
		c.width, c.height, c.depth = w, h, d
	}
}

// WithDerived sets how sizes and colors are refreshed after construction.
// Panics if MinSize > MaxSize or MinSize < 0.
func WithDerived(opts core.DerivedOptions) BuilderOption {
	if opts.MinSize < 0 || opts.MinSize > opts.MaxSize {
		panic(fmt.Sprintf("builder: WithDerived: require 0 <= MinSize <= MaxSize, got %g, %g", opts.MinSize, opts.MaxSize))
	}
	return func(c *builderConfig) {
		c.derived = opts
	}
}
