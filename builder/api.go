// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// api.go - public entry point for the builder package.
//
// Design contract:
//   • One orchestrator: BuildMesh(mopts, bopts, cons...). Creates m, resolves cfg, runs cons in order.
//   • Functional options resolve into an immutable builderConfig.
//   • Determinism: same inputs/options/seed and constructor order ⇒ identical meshes.
//   • Safety: never panic; constructors return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvmesh/mesh"
)

// Constructor adds one fixture to an unlocked mesh using the resolved
// builderConfig. Constructors validate parameters before touching the mesh.
type Constructor func(m *mesh.Mesh, cfg builderConfig) error

// BuildMesh creates a mesh with mopts, resolves the builder configuration from
// bopts and applies all constructors in order. With WithLock the mesh is
// locked last; a Lock failure is returned as-is (errors.Is(err, mesh.ErrNonManifoldVertex)).
//
// Errors are wrapped with "BuildMesh: %w"; no partial mesh is returned.
func BuildMesh(mopts []mesh.Option, bopts []BuilderOption, cons ...Constructor) (*mesh.Mesh, error) {
	m := mesh.New(mopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildMesh: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(m, cfg); err != nil {
			return nil, fmt.Errorf("BuildMesh: %w", err)
		}
	}

	if cfg.lock {
		if err := m.Lock(); err != nil {
			return nil, fmt.Errorf("BuildMesh: %w", err)
		}
	}

	return m, nil
}
