// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng      = nil   (faces are added in their canonical order)
//   • lock     = false (BuildMesh returns an unlocked mesh)
//   • reversed = false (canonical winding)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	rng      *rand.Rand
	lock     bool
	reversed bool
}

// newBuilderConfig applies opts in order over the defaults (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
