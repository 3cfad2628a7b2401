// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// impl_platonic.go - PlatonicSolid(name): closed regular polyhedra.
//
// Contract:
//   • Unknown name → ErrOptionViolation, mesh untouched.
//   • Adds vertices 0..V-1 then the canonical faces (shuffled by cfg.rng if set).
//   • The result is closed and connected: V − E + F = 2.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvmesh/mesh"
)

// PlatonicSolid returns a Constructor for the named closed solid.
func PlatonicSolid(name PlatonicName) Constructor {
	return func(m *mesh.Mesh, cfg builderConfig) error {
		n, ok := platonicVertexCounts[name]
		if !ok {
			return fmt.Errorf("%s: unknown solid %q: %w", MethodPlatonicSolid, name, ErrOptionViolation)
		}
		faces, err := faceList(name)
		if err != nil {
			return err
		}
		return addIndexedFaces(m, MethodPlatonicSolid, n, faces, cfg)
	}
}
