// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// Package builder assembles canonical surface meshes for tests, examples and
// benchmarks.
//
// One orchestrator, BuildMesh(mopts, bopts, cons...), creates a mesh.Mesh,
// resolves the builder configuration and runs every Constructor in order.
// Each constructor adds its own vertices, so composing several constructors
// yields a mesh with several connected components.
//
// Constructors:
//
//	Grid(x, y)           x·y vertices, 2·(x-1)·(y-1) triangles, one boundary loop
//	Polygon(n)           one n-gon, one boundary loop
//	Wheel(n)             n rim vertices + hub, n triangles, one boundary loop
//	Annulus(n)           2n vertices, n quads, two boundary loops
//	PlatonicSolid(name)  closed Tetrahedron/Cube/Octahedron/Icosahedron/Dodecahedron
//
// Options:
//
//	WithLock()             lock the mesh after all constructors ran
//	WithSeed(s)/WithRand   shuffle face insertion order (deterministic per seed)
//	WithReversedWinding()  emit every face with reversed winding
//
// Errors:
//
//	ErrTooFewVertices   – size parameter below the constructor's minimum
//	ErrOptionViolation  – unknown PlatonicName
//	ErrConstructFailed  – nil constructor, or the mesh rejected a face
//
// Determinism: for equal inputs, options and seed, the resulting meshes have
// identical element indices and windings.
package builder
