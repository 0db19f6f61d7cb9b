// SPDX-License-Identifier: MIT
// Package: netalgo/tsp

package tsp

import (
	"math/rand"
	"sort"
)

// rngFromSeed returns a deterministic *rand.Rand.
// seed==0 selects defaultRNGSeed; any other seed is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// twoCuts draws i, k uniformly from [1, n-1] and orders them.
// ok is false when both draws coincide; the attempt is then spent.
func twoCuts(rng *rand.Rand, n int) (i, k int, ok bool) {
	i = rng.Intn(n-1) + 1
	k = rng.Intn(n-1) + 1
	if i > k {
		i, k = k, i
	}

	return i, k, i < k
}

// threeCuts draws i, j, k uniformly from [1, n] and orders them.
// ok is false unless all three are distinct.
func threeCuts(rng *rand.Rand, n int) (i, j, k int, ok bool) {
	c := []int{rng.Intn(n) + 1, rng.Intn(n) + 1, rng.Intn(n) + 1}
	sort.Ints(c)

	return c[0], c[1], c[2], c[0] < c[1] && c[1] < c[2]
}
