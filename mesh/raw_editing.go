// SPDX-License-Identifier: MIT
// Package: lvmesh/mesh
//
// raw_editing.go - unlocked-mode construction and removal.
//
// Contract:
//   • All operations return ErrLocked on a locked mesh.
//   • Validation happens before the first mutation.
//   • The adjacency index and twin links stay symmetric after every call;
//     vertex half-edges are tentative (some outgoing half-edge, or null).

package mesh

import (
	"fmt"
	"slices"
)

// AddVertex appends an isolated vertex.
func (m *Mesh) AddVertex() (Vertex, error) {
	if m.locked {
		return Vertex{}, fmt.Errorf("AddVertex: %w", ErrLocked)
	}
	return m.vertex(m.vertexPool.Add()), nil
}

// AddVertices appends n isolated vertices and returns them in creation order.
func (m *Mesh) AddVertices(n int) ([]Vertex, error) {
	if m.locked {
		return nil, fmt.Errorf("AddVertices: %w", ErrLocked)
	}
	vs := make([]Vertex, n)
	for i := range vs {
		vs[i] = m.vertex(m.vertexPool.Add())
	}
	return vs, nil
}

// AddTriangle is AddFace for three vertices.
func (m *Mesh) AddTriangle(a, b, c Vertex) (Face, error) {
	tri := [3]Vertex{a, b, c}
	return m.AddFace(tri[:]...)
}

// AddFace adds a polygon with the given winding (vs is not retained).
//
// Implementation:
//   - Stage 1: validate (≥3 distinct live vertices of m).
//   - Stage 2: check every directed edge u→v; if one already bounds a face,
//     retry once with the winding reversed.
//   - Stage 3: create the missing half-edges, link twins from v→u, close the
//     next-cycle, create the face and fill unset vertex half-edges.
//
// If both windings conflict the mesh is unchanged and a null Face is returned
// together with ErrNonManifoldEdge.
// Complexity: O(n) expected.
func (m *Mesh) AddFace(vs ...Vertex) (Face, error) {
	if m.locked {
		return Face{}, fmt.Errorf("AddFace: %w", ErrLocked)
	}
	if len(vs) < 3 {
		return Face{}, fmt.Errorf("AddFace: %d vertices: %w", len(vs), ErrDegenerateFace)
	}
	loop := make([]Index, len(vs))
	for i, v := range vs {
		if !m.ownsVertex(v) {
			return Face{}, fmt.Errorf("AddFace: vertex %v: %w", v, ErrInvalidHandle)
		}
		if slices.Contains(loop[:i], v.idx) {
			return Face{}, fmt.Errorf("AddFace: vertex %v repeated: %w", v, ErrDegenerateFace)
		}
		loop[i] = v.idx
	}

	return m.addFace(loop, false)
}

func (m *Mesh) addFace(loop []Index, reversed bool) (Face, error) {
	n := len(loop)
	existing := make([]Index, n)
	for i, u := range loop {
		v := loop[(i+1)%n]
		h, ok := m.halfedgeMap[vertexPair{u, v}]
		if !ok {
			existing[i] = NullIndex
			continue
		}
		if m.he(h).face == NullIndex {
			existing[i] = h
			continue
		}
		if reversed {
			m.cfg.logger.Debug("face rejected", "mesh", m.id, "from", u, "to", v)
			return Face{}, fmt.Errorf("AddFace: edge %d→%d bounds a face in both windings: %w", u, v, ErrNonManifoldEdge)
		}
		m.cfg.logger.Debug("retrying face with reversed winding", "mesh", m.id, "from", u, "to", v)
		slices.Reverse(loop)
		return m.addFace(loop, true)
	}

	hs := make([]Index, n)
	for i, u := range loop {
		if existing[i] != NullIndex {
			hs[i] = existing[i]
			continue
		}
		v := loop[(i+1)%n]
		h := m.halfedgePool.Add()
		hd := m.halfedgeData.Ptr(h)
		hd.vertex = u
		if t, ok := m.halfedgeMap[vertexPair{v, u}]; ok {
			hd.twin = t
			m.halfedgeData.Ptr(t).twin = h
		}
		m.halfedgeMap[vertexPair{u, v}] = h
		hs[i] = h
	}

	f := m.facePool.Add()
	m.faceData.Ptr(f).halfedge = hs[0]
	for i, h := range hs {
		hd := m.halfedgeData.Ptr(h)
		hd.next = hs[(i+1)%n]
		hd.face = f
		if vd := m.vertexData.Ptr(loop[i]); vd.halfedge == NullIndex {
			vd.halfedge = h
		}
	}

	return m.face(f), nil
}

// RemoveVertex deletes an isolated vertex.
func (m *Mesh) RemoveVertex(v Vertex) error {
	if m.locked {
		return fmt.Errorf("RemoveVertex: %w", ErrLocked)
	}
	if !m.ownsVertex(v) {
		return fmt.Errorf("RemoveVertex: %v: %w", v, ErrInvalidHandle)
	}
	return m.removeVertex(v.idx)
}

func (m *Mesh) removeVertex(v Index) error {
	if m.vertexData.Get(v).halfedge != NullIndex {
		return fmt.Errorf("RemoveVertex: v%d: %w", v, ErrVertexNotIsolated)
	}
	return m.vertexPool.Remove(v)
}

// RemoveFace deletes a face and its half-edges. Vertices stay, possibly
// isolated; a vertex whose tentative half-edge belonged to f is moved to
// another outgoing half-edge, or to null if none is left.
// Complexity: O(n) expected. A corner whose two edges in f are both
// untwinned costs O(H): its remaining faces, if any, share no edge with f at
// that corner and are found by scanning the adjacency index.
func (m *Mesh) RemoveFace(f Face) error {
	if m.locked {
		return fmt.Errorf("RemoveFace: %w", ErrLocked)
	}
	if !m.ownsFace(f) {
		return fmt.Errorf("RemoveFace: %v: %w", f, ErrInvalidHandle)
	}
	m.removeFace(f.idx)
	return nil
}

func (m *Mesh) removeFace(f Index) {
	hs := m.faceLoop(nil, f)
	n := len(hs)

	for i, h := range hs {
		u := m.he(h).vertex
		if vd := m.vertexData.Ptr(u); vd.halfedge == h {
			vd.halfedge = m.replacementHalfedge(h, hs[(i+n-1)%n], f)
		}
	}

	for _, h := range hs {
		hd := m.he(h)
		if hd.twin != NullIndex {
			m.halfedgeData.Ptr(hd.twin).twin = NullIndex
		}
		delete(m.halfedgeMap, vertexPair{hd.vertex, m.he(hd.next).vertex})
	}
	for _, h := range hs {
		_ = m.halfedgePool.Remove(h)
	}
	_ = m.facePool.Remove(f)
}

// replacementHalfedge finds an outgoing half-edge of origin(h) outside face f.
// prev is the half-edge before h in f.
//
// The fan of u is entered across either edge of f at u: twin(prev) leaves u
// in the face on the prev side, twin(h).next leaves u in the face on the h
// side. Only when both edges are untwinned does it fall back to a scan.
func (m *Mesh) replacementHalfedge(h, prev, f Index) Index {
	if t := m.he(prev).twin; t != NullIndex {
		return t
	}
	if t := m.he(h).twin; t != NullIndex {
		return m.he(t).next
	}
	u := m.he(h).vertex
	for key, g := range m.halfedgeMap {
		if key[0] == u && m.he(g).face != f {
			return g
		}
	}
	return NullIndex
}
