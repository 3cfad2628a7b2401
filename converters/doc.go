// Package converters moves mesh.Mesh connectivity in and out of plain index
// form and linear-algebra operators.
//
// Index form numbers live vertices contiguously (0..V-1) in ascending handle
// order, so meshes with removed elements export without holes.
//
// Conversions:
//
//	ToIndexed / FromIndexed   polygon soup ⇄ mesh (both modes / new unlocked mesh)
//	ToTriangles               triangle list; ErrNotTriangular otherwise
//	ToEdgeList                one [u, v] per edge (locked)
//	BoundaryLoops             vertex cycles of each boundary loop (locked)
//	AdjacencyMatrix           V×V, 1 per edge (locked)
//	IncidenceMatrix           V×E, 1 where the vertex ends the edge (locked)
//	Laplacian                 V×V combinatorial Laplacian D − A (locked)
//
// Errors:
//
//	ErrNilMesh, ErrNotTriangular, ErrIndexOutOfRange, and mesh.ErrUnlocked (wrapped).
package converters
