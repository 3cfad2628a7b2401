// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// impl_grid.go - Grid(x, y): a triangulated rectangle.
//
// Layout: vertex (i, j) has index j·x + i for 0 ≤ i < x, 0 ≤ j < y. Each cell
// with bottom-left bl = (i, j) is split along bl–tr into (bl, br, tr) and
// (bl, tr, tl).
//
// Counts: V = x·y, F = 2(x-1)(y-1), one boundary loop of 2(x-1) + 2(y-1) edges.

package builder

import "github.com/katalvlaran/lvmesh/mesh"

// Grid returns a Constructor for an x-by-y vertex grid (x, y ≥ MinGridDim).
func Grid(x, y int) Constructor {
	return func(m *mesh.Mesh, cfg builderConfig) error {
		if err := validateMin(MethodGrid, x, MinGridDim); err != nil {
			return err
		}
		if err := validateMin(MethodGrid, y, MinGridDim); err != nil {
			return err
		}
		return addIndexedFaces(m, MethodGrid, x*y, gridFaces(x, y), cfg)
	}
}

func gridFaces(x, y int) [][]int {
	faces := make([][]int, 0, 2*(x-1)*(y-1))
	for j := 0; j < y-1; j++ {
		for i := 0; i < x-1; i++ {
			bl := j*x + i
			br, tl := bl+1, bl+x
			tr := tl + 1
			faces = append(faces, []int{bl, br, tr}, []int{bl, tr, tl})
		}
	}
	return faces
}
