// Package mesh implements a half-edge surface-mesh kernel on top of the pool
// storage engine.
//
// The Mesh M = (V, H, E, F) stores vertices, half-edges, edges and faces in
// four element pools. Incidence is kept in attachments (one column per pool):
//
//	vertex   → one outgoing half-edge
//	halfedge → next, origin vertex, face (null on the boundary), twin, edge
//	face     → one half-edge of its loop
//	edge     → its two half-edges
//
// plus an adjacency index mapping an ordered vertex pair (u, v) to the
// half-edge u→v.
//
// Modes:
//
//	Unlocked (initial)
//	    Raw editing: AddVertex, AddTriangle, AddFace, RemoveVertex, RemoveFace.
//	    Half-edges may lack twins; edges do not exist; vertex half-edges are tentative.
//
//	Locked
//	    Every half-edge has a twin. Boundary loops are chains of synthetic
//	    half-edges with a null face. Edges exist, vertex half-edges are
//	    authoritative, and every vertex has a single connected fan.
//	    Queries: BoundaryLoops, Closed, Edges, ConnectedComponents, …
//	    Euler editing: RemoveConnectedComponent (and Add from either mode).
//
// Lock runs the topology algorithm:
//
//  1. walk every untwinned half-edge around the boundary (hop next, then
//     twin().next() while twinned) to discover boundary loops;
//  2. reject a vertex that sits on two boundary arcs (ErrNonManifoldVertex);
//  3. synthesize a reverse half-edge per boundary half-edge and chain them;
//  4. assign vertex half-edges, forcing boundary vertices onto the interior
//     side (boundary.twin().next());
//  5. verify that each vertex fan is a single cycle;
//  6. derive one Edge per twin pair and compute the boundary caches.
//
// Unlock deletes the synthetic half-edges and all edges. Any cached locked
// data (boundary flags, interior counts, edges) is invalid until the next Lock.
//
// Handles:
//
// Vertex, Halfedge, Edge and Face are (mesh, index) values. The zero value is
// the null handle. Equal compares indices only; comparing handles of different
// meshes is meaningless. Indices are reused after removal, so a handle kept
// across a removal may silently alias a newer element: treat handles as
// transient and re-derive them after structural edits.
//
// Errors:
//
//	ErrLocked            – raw edit on a locked mesh
//	ErrUnlocked          – locked-only query/traversal on an unlocked mesh
//	ErrNonManifoldVertex – Lock found a vertex with more than one fan
//	ErrNonManifoldEdge   – AddFace failed in both windings (null Face returned)
//	ErrVertexNotIsolated – RemoveVertex on a vertex with incident half-edges
//	ErrInvalidHandle     – null, foreign or removed handle
//	ErrDegenerateFace    – fewer than three or repeated vertices
//	ErrTopology          – Euler edit found a structure that Lock should have rejected
//	ErrNilMesh, ErrSelfMerge – invalid Add argument
//
// Observability: state transitions are logged at Debug level through an
// injectable *slog.Logger and traced with OpenTelemetry spans (global tracer
// provider unless WithTracer is given).
//
// A Mesh is not safe for concurrent use.
package mesh
