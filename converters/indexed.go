// SPDX-License-Identifier: MIT
// Package: lvmesh/converters
//
// indexed.go - contiguous index export/import.

package converters

import (
	"fmt"

	"github.com/katalvlaran/lvmesh/mesh"
)

// Indexed is a polygon soup: NumVertices vertices and faces as corner lists.
type Indexed struct {
	NumVertices int
	Faces       [][]int
}

// contiguous numbers the live vertices 0..V-1. The caller releases the attachment.
func contiguous(m *mesh.Mesh) *mesh.Attachment[mesh.Vertex, int] {
	idx := mesh.NewVertexAttachment[int](m)
	n := 0
	for v := range m.Vertices() {
		idx.Set(v, n)
		n++
	}
	return idx
}

// ToIndexed exports every face with its winding. Works in both modes.
func ToIndexed(m *mesh.Mesh) (Indexed, error) {
	if m == nil {
		return Indexed{}, ErrNilMesh
	}
	idx := contiguous(m)
	defer idx.Release()

	out := Indexed{NumVertices: m.NumVertices(), Faces: make([][]int, 0, m.NumFaces())}
	for f := range m.Faces() {
		var corners []int
		for v := range f.Vertices() {
			corners = append(corners, idx.Get(v))
		}
		out.Faces = append(out.Faces, corners)
	}
	return out, nil
}

// ToTriangles exports a triangular mesh as corner triples.
func ToTriangles(m *mesh.Mesh) ([][3]int, error) {
	if m == nil {
		return nil, ErrNilMesh
	}
	if !m.IsTriangular() {
		return nil, fmt.Errorf("ToTriangles: %w", ErrNotTriangular)
	}
	idx := contiguous(m)
	defer idx.Release()

	out := make([][3]int, 0, m.NumFaces())
	for f := range m.Faces() {
		h := f.Halfedge()
		out = append(out, [3]int{
			idx.Get(h.Vertex()),
			idx.Get(h.Next().Vertex()),
			idx.Get(h.Next().Next().Vertex()),
		})
	}
	return out, nil
}

// FromIndexed builds a new unlocked mesh from a polygon soup. Face errors
// from the mesh (degenerate or doubly-conflicting faces) are returned wrapped
// with the face number.
func FromIndexed(in Indexed, opts ...mesh.Option) (*mesh.Mesh, error) {
	for fi, face := range in.Faces {
		for _, k := range face {
			if k < 0 || k >= in.NumVertices {
				return nil, fmt.Errorf("FromIndexed: face %d corner %d: %w", fi, k, ErrIndexOutOfRange)
			}
		}
	}

	m := mesh.New(opts...)
	vs, err := m.AddVertices(in.NumVertices)
	if err != nil {
		return nil, fmt.Errorf("FromIndexed: %w", err)
	}
	corners := make([]mesh.Vertex, 0, 8)
	for fi, face := range in.Faces {
		corners = corners[:0]
		for _, k := range face {
			corners = append(corners, vs[k])
		}
		if _, err = m.AddFace(corners...); err != nil {
			return nil, fmt.Errorf("FromIndexed: face %d: %w", fi, err)
		}
	}
	return m, nil
}
