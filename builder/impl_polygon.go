// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// impl_polygon.go - Polygon(n), Wheel(n) and Annulus(n): disks and a ring.
//
// Vertex layout:
//   • Polygon: rim 0..n-1.
//   • Wheel:   rim 0..n-1, hub n; triangles (hub, i, i+1).
//   • Annulus: outer rim 0..n-1, inner rim n..2n-1; quads (o_i, o_i+1, in_i+1, in_i).

package builder

import "github.com/katalvlaran/lvmesh/mesh"

// Polygon returns a Constructor for a single n-gon (n ≥ MinPolygonSides).
func Polygon(n int) Constructor {
	return func(m *mesh.Mesh, cfg builderConfig) error {
		if err := validateMin(MethodPolygon, n, MinPolygonSides); err != nil {
			return err
		}
		face := make([]int, n)
		for i := range face {
			face[i] = i
		}
		return addIndexedFaces(m, MethodPolygon, n, [][]int{face}, cfg)
	}
}

// Wheel returns a Constructor for a fan of n triangles around a hub
// (n ≥ MinPolygonSides). The hub is an interior vertex of valence n.
func Wheel(n int) Constructor {
	return func(m *mesh.Mesh, cfg builderConfig) error {
		if err := validateMin(MethodWheel, n, MinPolygonSides); err != nil {
			return err
		}
		faces := make([][]int, n)
		for i := range faces {
			faces[i] = []int{n, i, (i + 1) % n}
		}
		return addIndexedFaces(m, MethodWheel, n+1, faces, cfg)
	}
}

// Annulus returns a Constructor for a ring of n quads (n ≥ MinPolygonSides).
// The result has two boundary loops and no interior vertex.
func Annulus(n int) Constructor {
	return func(m *mesh.Mesh, cfg builderConfig) error {
		if err := validateMin(MethodAnnulus, n, MinPolygonSides); err != nil {
			return err
		}
		faces := make([][]int, n)
		for i := range faces {
			j := (i + 1) % n
			faces[i] = []int{i, j, n + j, n + i}
		}
		return addIndexedFaces(m, MethodAnnulus, 2*n, faces, cfg)
	}
}
