// SPDX-License-Identifier: MIT
package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmesh/mesh"
)

// newFaces builds an unlocked mesh with n vertices and the given index faces.
func newFaces(t *testing.T, n int, faces [][]int) (*mesh.Mesh, []mesh.Vertex) {
	t.Helper()
	m := mesh.New()
	vs, err := m.AddVertices(n)
	require.NoError(t, err)
	for _, f := range faces {
		corners := make([]mesh.Vertex, len(f))
		for i, k := range f {
			corners[i] = vs[k]
		}
		_, err = m.AddFace(corners...)
		require.NoError(t, err)
	}
	return m, vs
}

// gridFaces triangulates an x-by-y vertex grid, two triangles per cell.
func gridFaces(x, y int) [][]int {
	var faces [][]int
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

var tetrahedronFaces = [][]int{{0, 1, 2}, {0, 3, 1}, {0, 2, 3}, {1, 3, 2}}

func newGrid(t *testing.T, x, y int) *mesh.Mesh {
	t.Helper()
	m, _ := newFaces(t, x*y, gridFaces(x, y))
	return m
}

func newTetrahedron(t *testing.T) *mesh.Mesh {
	t.Helper()
	m, _ := newFaces(t, 4, tetrahedronFaces)
	return m
}

// requireLockedInvariants checks the structural invariants of a locked mesh.
func requireLockedInvariants(t *testing.T, m *mesh.Mesh) {
	t.Helper()
	require.True(t, m.Locked())

	for h := range m.Halfedges() {
		tw := h.Twin()
		require.False(t, tw.Null(), "%v has no twin", h)
		require.True(t, tw.Twin().Equal(h), "twin of twin of %v", h)
		require.True(t, tw.Vertex().Equal(h.Tip()), "%v and its twin do not share endpoints", h)
		require.False(t, h.Face().Null() && tw.Face().Null(), "%v: both sides on the boundary", h)
		require.True(t, h.Next().Face().Equal(h.Face()), "%v: next leaves the loop", h)

		e, err := h.Edge()
		require.NoError(t, err)
		require.False(t, e.Null())
		require.True(t, e.A().Equal(h) || e.B().Equal(h))
	}

	for v := range m.Vertices() {
		h, err := v.Halfedge()
		require.NoError(t, err)
		if h.Null() {
			continue
		}
		require.True(t, h.Vertex().Equal(v))
		require.False(t, h.Face().Null(), "%v points at a boundary half-edge", v)
		onBoundary, err := v.OnBoundary()
		require.NoError(t, err)
		if onBoundary {
			require.True(t, h.Prev().Twin().OnBoundary(), "%v half-edge does not follow the boundary", v)
		}
	}

	edges, err := m.Edges()
	require.NoError(t, err)
	for e := range edges {
		require.True(t, e.B().Equal(e.A().Twin()), "%v is not a twin pair", e)
	}
}
