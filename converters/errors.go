// SPDX-License-Identifier: MIT
// Package: lvmesh/converters

package converters

import "errors"

var (
	// ErrNilMesh indicates a nil *mesh.Mesh argument.
	ErrNilMesh = errors.New("converters: mesh is nil")

	// ErrNotTriangular indicates a face with other than three corners.
	ErrNotTriangular = errors.New("converters: mesh is not triangular")

	// ErrIndexOutOfRange indicates a face corner outside 0..NumVertices-1.
	ErrIndexOutOfRange = errors.New("converters: vertex index out of range")
)
