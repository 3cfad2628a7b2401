// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Option constructors panic on meaningless inputs; constructors never do.
//   • Determinism is explicit: randomness only through WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes constructors by mutating a builderConfig before
// construction begins.
type BuilderOption func(*builderConfig)

// WithRand shuffles face insertion order with r. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed shuffles face insertion order with a new generator seeded by seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithLock makes BuildMesh lock the mesh after the last constructor.
func WithLock() BuilderOption {
	return func(c *builderConfig) { c.lock = true }
}

// WithReversedWinding emits every face with its corner order reversed.
func WithReversedWinding() BuilderOption {
	return func(c *builderConfig) { c.reversed = true }
}
