// Package lvmesh is an in-memory half-edge surface-mesh kernel: element
// pools with columnar attachments underneath, a topology engine that keeps
// manifold invariants on top.
//
// What is inside:
//
//	pool/       - free-list index allocator + Attachment[T] parallel arrays
//	mesh/       - Vertex/Halfedge/Edge/Face handles, raw editing, Lock/Unlock,
//	              Euler editing (Add, RemoveConnectedComponent), queries
//	traverse/   - face BFS, vertex k-ring BFS, loops, fans, component labels
//	builder/    - procedural meshes: grid, polygon, wheel, annulus, Platonic solids
//	converters/ - contiguous exports (indexed faces, edge lists, boundary loops,
//	              adjacency / incidence / Laplacian matrices) and indexed import
//	matrix/     - small dense matrix used by the converters
//
// A mesh starts unlocked. Faces are added as vertex cycles; Lock then walks
// the boundary, rejects non-manifold vertices, synthesises boundary
// half-edges and derives edges. Queries that depend on that derived data
// return mesh.ErrUnlocked until the mesh is locked.
//
// Quick ASCII example:
//
//	v3───v2
//	│  ╱ │
//	│ ╱  │
//	v0───v1
//
// two triangles (v0 v1 v2) and (v0 v2 v3): one boundary loop of length 4,
// five edges, no interior vertex.
//
//	go get github.com/katalvlaran/lvmesh
package lvmesh
