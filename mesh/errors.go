// SPDX-License-Identifier: MIT
// Package: lvmesh/mesh
//
// errors.go - sentinel errors for the mesh package.
//
// Error policy:
//   • Only package-level sentinels are exposed; branch with errors.Is.
//   • Call sites attach context with "%s: ...: %w" (method name first).
//   • Public operations never partially mutate on failure.

package mesh

import "errors"

// Invalid-state violations.
var (
	// ErrLocked indicates a raw edit was attempted on a locked mesh.
	ErrLocked = errors.New("mesh: operation requires an unlocked mesh")

	// ErrUnlocked indicates a locked-only query or traversal on an unlocked mesh.
	ErrUnlocked = errors.New("mesh: operation requires a locked mesh")
)

// Topology violations.
var (
	// ErrNonManifoldVertex indicates Lock found a vertex whose incident faces
	// do not form a single connected fan. The mesh is left unlocked.
	ErrNonManifoldVertex = errors.New("mesh: non-manifold vertex")

	// ErrNonManifoldEdge indicates AddFace found a directed edge already owned by
	// a face in both the given and the reversed winding. A null Face is returned.
	ErrNonManifoldEdge = errors.New("mesh: non-manifold edge")

	// ErrTopology indicates an Euler edit met a structure a locked mesh cannot hold.
	ErrTopology = errors.New("mesh: inconsistent topology")
)

// Contract violations on arguments.
var (
	// ErrVertexNotIsolated indicates RemoveVertex on a vertex that still has incident half-edges.
	ErrVertexNotIsolated = errors.New("mesh: vertex is not isolated")

	// ErrInvalidHandle indicates a null handle, a handle of another mesh, or a removed element.
	ErrInvalidHandle = errors.New("mesh: invalid element handle")

	// ErrDegenerateFace indicates a face with fewer than three or repeated vertices.
	ErrDegenerateFace = errors.New("mesh: degenerate face")

	// ErrNilMesh indicates a nil *Mesh argument.
	ErrNilMesh = errors.New("mesh: mesh is nil")

	// ErrSelfMerge indicates Add was asked to merge a mesh into itself.
	ErrSelfMerge = errors.New("mesh: cannot merge a mesh into itself")
)
