// SPDX-License-Identifier: MIT
// Package: lvmesh/builder

package builder

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvmesh/mesh"
)

// addIndexedFaces adds n fresh vertices to m, then one face per entry of
// faces (corner indices into the fresh vertices). cfg decides insertion order
// and winding.
// Complexity: O(n + Σ|face|).
func addIndexedFaces(m *mesh.Mesh, method string, n int, faces [][]int, cfg builderConfig) error {
	vs, err := m.AddVertices(n)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", method, ErrConstructFailed, err)
	}

	order := make([]int, len(faces))
	for i := range order {
		order[i] = i
	}
	if cfg.rng != nil {
		cfg.rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
	}

	corners := make([]mesh.Vertex, 0, 8)
	for _, fi := range order {
		corners = corners[:0]
		for _, k := range faces[fi] {
			corners = append(corners, vs[k])
		}
		if cfg.reversed {
			slices.Reverse(corners)
		}
		if _, err = m.AddFace(corners...); err != nil {
			return fmt.Errorf("%s: face %d %v: %w: %w", method, fi, faces[fi], ErrConstructFailed, err)
		}
	}

	return nil
}
