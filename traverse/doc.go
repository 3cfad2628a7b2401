// Package traverse walks the connectivity of a mesh.Mesh: loops, vertex fans,
// and breadth-first searches over faces and vertices.
//
// What
//
//   - Loop(h): the half-edges of the next-cycle through h (a face or a boundary loop).
//   - Outgoing(v), VertexRing(v), FaceFan(v): one rotation around a vertex
//     using twin().next(). Locked meshes only.
//   - Faces(start, opts...): BFS across twins; works in both modes, untwinned
//     half-edges simply stop the search.
//   - Vertices(start, opts...): BFS over the vertex ring. Locked meshes only.
//   - LabelComponents(m): one component label per face (iterative DFS).
//
// Result
//
//	Order  – indices in visit sequence
//	Depth  – index → hops from start
//	Parent – index → predecessor in the BFS tree (start has none)
//
// Options
//
//	WithContext(ctx)        cancellation, checked once per dequeue and per neighbour
//	WithOnVisit(fn)         visit hook; a non-nil error aborts the search
//	WithMaxDepth(d)         d > 0 limits depth, 0 means no limit, d < 0 → ErrOptionViolation
//	WithFilterNeighbor(fn)  skip neighbour when fn returns false
//
// Determinism
//
//	Neighbours are produced in loop/rotation order from the element's stored
//	half-edge, so the visit sequence is reproducible for a given mesh.
//
// Complexity: O(F + H) for Faces, O(V + H) for Vertices.
//
// Errors:
//
//	ErrNullStart        – null start handle
//	ErrOptionViolation  – invalid option
//	mesh.ErrUnlocked    – rotation on an unlocked mesh (wrapped)
//	context errors and hook errors are returned as-is (hooks wrapped with the index)
package traverse
