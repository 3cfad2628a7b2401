// SPDX-License-Identifier: MIT
// Package: lvmesh/mesh
//
// handles.go - Vertex, Halfedge, Edge, Face.
//
// Contract:
//   • A handle is (mesh, index); the zero value is null and every navigation
//     from a null handle yields null.
//   • Navigation never allocates and never validates liveness: a stale handle
//     reads whatever its slot currently holds.

package mesh

import (
	"fmt"
	"iter"
)

// Vertex is a handle to a mesh vertex.
type Vertex struct {
	m   *Mesh
	idx Index
}

// Halfedge is a handle to a directed edge. Its origin is Vertex, its
// destination Tip.
type Halfedge struct {
	m   *Mesh
	idx Index
}

// Edge is a handle to an undirected edge (a twin pair). Locked meshes only.
type Edge struct {
	m   *Mesh
	idx Index
}

// Face is a handle to a face (a closed next-loop of half-edges).
type Face struct {
	m   *Mesh
	idx Index
}

func (m *Mesh) vertex(i Index) Vertex {
	if i == NullIndex {
		return Vertex{}
	}
	return Vertex{m: m, idx: i}
}

func (m *Mesh) halfedge(i Index) Halfedge {
	if i == NullIndex {
		return Halfedge{}
	}
	return Halfedge{m: m, idx: i}
}

func (m *Mesh) edge(i Index) Edge {
	if i == NullIndex {
		return Edge{}
	}
	return Edge{m: m, idx: i}
}

func (m *Mesh) face(i Index) Face {
	if i == NullIndex {
		return Face{}
	}
	return Face{m: m, idx: i}
}

// owns* report whether a handle is a live element of m.
func (m *Mesh) ownsVertex(v Vertex) bool { return v.m == m && m.vertexPool.Active(v.idx) }
func (m *Mesh) ownsFace(f Face) bool { return f.m == m && m.facePool.Active(f.idx) }

// ---- Vertex ----

// Null reports whether v is the null handle.
func (v Vertex) Null() bool { return v.m == nil }

// Index returns the slot index, or NullIndex for the null handle.
func (v Vertex) Index() Index {
	if v.m == nil {
		return NullIndex
	}
	return v.idx
}

// Mesh returns the owning mesh (nil for the null handle).
func (v Vertex) Mesh() *Mesh { return v.m }

// Equal compares indices only.
func (v Vertex) Equal(o Vertex) bool { return v.Index() == o.Index() }

func (v Vertex) String() string {
	if v.m == nil {
		return "v<nil>"
	}
	return fmt.Sprintf("v%d", v.idx)
}

// Halfedge returns the authoritative outgoing half-edge, null for an isolated
// vertex. For a boundary vertex it is the outgoing half-edge that follows the
// boundary half-edge arriving at v.
func (v Vertex) Halfedge() (Halfedge, error) {
	if v.m == nil {
		return Halfedge{}, fmt.Errorf("Vertex.Halfedge: %w", ErrInvalidHandle)
	}
	if !v.m.locked {
		return Halfedge{}, fmt.Errorf("Vertex.Halfedge: %w", ErrUnlocked)
	}
	return v.m.halfedge(v.m.vertexData.Get(v.idx).halfedge), nil
}

// OnBoundary reports whether v lies on a boundary loop.
func (v Vertex) OnBoundary() (bool, error) {
	if v.m == nil {
		return false, fmt.Errorf("Vertex.OnBoundary: %w", ErrInvalidHandle)
	}
	if !v.m.locked {
		return false, fmt.Errorf("Vertex.OnBoundary: %w", ErrUnlocked)
	}
	return v.m.onBoundary.Get(v.idx), nil
}

// NumAdjacentVertices reports the valence of v by rotating around its fan.
// Isolated vertices have valence 0. Complexity: O(valence).
func (v Vertex) NumAdjacentVertices() (int, error) {
	h, err := v.Halfedge()
	if err != nil {
		return 0, fmt.Errorf("Vertex.NumAdjacentVertices: %w", err)
	}
	if h.Null() {
		return 0, nil
	}
	n := 0
	for cur := h; ; {
		n++
		cur = cur.Twin().Next()
		if cur.Equal(h) {
			return n, nil
		}
	}
}

// ---- Halfedge ----

// Null reports whether h is the null handle.
func (h Halfedge) Null() bool { return h.m == nil }

// Index returns the slot index, or NullIndex for the null handle.
func (h Halfedge) Index() Index {
	if h.m == nil {
		return NullIndex
	}
	return h.idx
}

// Mesh returns the owning mesh (nil for the null handle).
func (h Halfedge) Mesh() *Mesh { return h.m }

// Equal compares indices only.
func (h Halfedge) Equal(o Halfedge) bool { return h.Index() == o.Index() }

func (h Halfedge) String() string {
	if h.m == nil {
		return "h<nil>"
	}
	return fmt.Sprintf("h%d", h.idx)
}

// Next returns the following half-edge of the same loop.
func (h Halfedge) Next() Halfedge {
	if h.m == nil {
		return Halfedge{}
	}
	return h.m.halfedge(h.m.he(h.idx).next)
}

// Prev walks the loop to the half-edge whose Next is h. O(loop length).
func (h Halfedge) Prev() Halfedge {
	if h.m == nil {
		return Halfedge{}
	}
	cur := h
	for {
		nxt := cur.Next()
		if nxt.Null() || nxt.Equal(h) {
			return cur
		}
		cur = nxt
	}
}

// Vertex returns the origin.
func (h Halfedge) Vertex() Vertex {
	if h.m == nil {
		return Vertex{}
	}
	return h.m.vertex(h.m.he(h.idx).vertex)
}

// Tip returns the destination (the origin of Next).
func (h Halfedge) Tip() Vertex { return h.Next().Vertex() }

// Face returns the face h belongs to, null on a boundary half-edge.
func (h Halfedge) Face() Face {
	if h.m == nil {
		return Face{}
	}
	return h.m.face(h.m.he(h.idx).face)
}

// Twin returns the opposite half-edge. Null only while unlocked.
func (h Halfedge) Twin() Halfedge {
	if h.m == nil {
		return Halfedge{}
	}
	return h.m.halfedge(h.m.he(h.idx).twin)
}

// OnBoundary reports whether h is a synthetic boundary half-edge (null face).
func (h Halfedge) OnBoundary() bool {
	return h.m != nil && h.m.he(h.idx).face == NullIndex
}

// Edge returns the edge containing h.
func (h Halfedge) Edge() (Edge, error) {
	if h.m == nil {
		return Edge{}, fmt.Errorf("Halfedge.Edge: %w", ErrInvalidHandle)
	}
	if !h.m.locked {
		return Edge{}, fmt.Errorf("Halfedge.Edge: %w", ErrUnlocked)
	}
	return h.m.edge(h.m.he(h.idx).edge), nil
}

// ---- Edge ----

// Null reports whether e is the null handle.
func (e Edge) Null() bool { return e.m == nil }

// Index returns the slot index, or NullIndex for the null handle.
func (e Edge) Index() Index {
	if e.m == nil {
		return NullIndex
	}
	return e.idx
}

// Mesh returns the owning mesh (nil for the null handle).
func (e Edge) Mesh() *Mesh { return e.m }

// Equal compares indices only.
func (e Edge) Equal(o Edge) bool { return e.Index() == o.Index() }

func (e Edge) String() string {
	if e.m == nil {
		return "e<nil>"
	}
	return fmt.Sprintf("e%d", e.idx)
}

// A returns the first half-edge of the pair.
func (e Edge) A() Halfedge {
	if e.m == nil {
		return Halfedge{}
	}
	return e.m.halfedge(e.m.edgeData.Get(e.idx).halfedges[0])
}

// B returns the second half-edge of the pair; B == A.Twin().
func (e Edge) B() Halfedge {
	if e.m == nil {
		return Halfedge{}
	}
	return e.m.halfedge(e.m.edgeData.Get(e.idx).halfedges[1])
}

// Vertices returns the endpoints (origin and tip of A).
func (e Edge) Vertices() (Vertex, Vertex) {
	a := e.A()
	return a.Vertex(), a.Tip()
}

// OnBoundary reports whether either side of e is a boundary half-edge.
func (e Edge) OnBoundary() bool { return e.A().OnBoundary() || e.B().OnBoundary() }

// ---- Face ----

// Null reports whether f is the null handle.
func (f Face) Null() bool { return f.m == nil }

// Index returns the slot index, or NullIndex for the null handle.
func (f Face) Index() Index {
	if f.m == nil {
		return NullIndex
	}
	return f.idx
}

// Mesh returns the owning mesh (nil for the null handle).
func (f Face) Mesh() *Mesh { return f.m }

// Equal compares indices only.
func (f Face) Equal(o Face) bool { return f.Index() == o.Index() }

func (f Face) String() string {
	if f.m == nil {
		return "f<nil>"
	}
	return fmt.Sprintf("f%d", f.idx)
}

// Halfedge returns one half-edge of the face loop.
func (f Face) Halfedge() Halfedge {
	if f.m == nil {
		return Halfedge{}
	}
	return f.m.halfedge(f.m.faceData.Get(f.idx).halfedge)
}

// Halfedges yields the loop in next order, starting at Halfedge().
func (f Face) Halfedges() iter.Seq[Halfedge] {
	return func(yield func(Halfedge) bool) {
		start := f.Halfedge()
		if start.Null() {
			return
		}
		for h := start; ; {
			if !yield(h) {
				return
			}
			h = h.Next()
			if h.Equal(start) {
				return
			}
		}
	}
}

// Vertices yields the corners in winding order.
func (f Face) Vertices() iter.Seq[Vertex] {
	return func(yield func(Vertex) bool) {
		for h := range f.Halfedges() {
			if !yield(h.Vertex()) {
				return
			}
		}
	}
}

// NumVertices reports the loop length. O(loop length).
func (f Face) NumVertices() int {
	n := 0
	for range f.Halfedges() {
		n++
	}
	return n
}
