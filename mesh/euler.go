// SPDX-License-Identifier: MIT
// Package: lvmesh/mesh
//
// euler.go - topology-preserving whole-component edits.
//
// Contract:
//   • Add works from either mode and leaves the receiver in the mode it had.
//   • RemoveConnectedComponent requires a locked mesh and leaves it locked.

package mesh

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvmesh/pool"
)

// Add merges a copy of other into m as new disjoint components. other is
// read, never modified; it may be locked or unlocked.
//
// Implementation:
//   - Stage 1: unlock m if needed.
//   - Stage 2: create one vertex per source vertex, recorded in a temporary
//     vertex attachment on other.
//   - Stage 3: re-add every source face through the mapping, same winding.
//   - Stage 4: relock m if it was locked.
//
// Complexity: O(V' + H') expected.
func (m *Mesh) Add(other *Mesh) (err error) {
	if other == nil {
		return fmt.Errorf("Add: %w", ErrNilMesh)
	}
	if other == m {
		return fmt.Errorf("Add: %w", ErrSelfMerge)
	}
	ctx, span := m.startSpan(context.Background(), "Add")
	defer func() { m.endSpan(span, err) }()

	wasLocked := m.locked
	m.unlock(ctx)

	mapping := NewVertexAttachment[Vertex](other)
	defer mapping.Release()
	for v := range other.Vertices() {
		mapping.Set(v, m.vertex(m.vertexPool.Add()))
	}

	corners := make([]Vertex, 0, 8)
	for f := range other.Faces() {
		corners = corners[:0]
		for v := range f.Vertices() {
			corners = append(corners, mapping.Get(v))
		}
		if _, err = m.AddFace(corners...); err != nil {
			return fmt.Errorf("Add: source %v: %w", f, err)
		}
	}

	m.cfg.logger.Debug("mesh merged", "mesh", m.id, "source", other.id,
		"vertices", other.vertexPool.Len(), "faces", other.facePool.Len())

	if wasLocked {
		return m.lock(ctx)
	}
	return nil
}

// RemoveConnectedComponent deletes every face reachable from start across
// twins, together with the component's vertices, then relocks.
//
// Implementation:
//   - Stage 1: depth-first search with an explicit stack, collecting faces
//     and vertices (boundary half-edges stop the search).
//   - Stage 2: unlock, detach the collected vertices, remove the faces, then
//     the vertices.
//   - Stage 3: lock.
//
// Complexity: O(size of component) + one Lock.
func (m *Mesh) RemoveConnectedComponent(start Face) (err error) {
	if !m.locked {
		return fmt.Errorf("RemoveConnectedComponent: %w", ErrUnlocked)
	}
	if !m.ownsFace(start) {
		return fmt.Errorf("RemoveConnectedComponent: %v: %w", start, ErrInvalidHandle)
	}
	ctx, span := m.startSpan(context.Background(), "RemoveConnectedComponent")
	defer func() { m.endSpan(span, err) }()

	faceSeen := pool.NewAttachment[bool](m.facePool)
	defer faceSeen.Release()
	vertexSeen := pool.NewAttachment[bool](m.vertexPool)
	defer vertexSeen.Release()

	var (
		faces, vertices []Index
		loop            []Index
		stack           = []Index{start.idx}
	)
	faceSeen.Set(start.idx, true)
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		faces = append(faces, f)

		loop = m.faceLoop(loop[:0], f)
		for _, h := range loop {
			hd := m.he(h)
			if hd.twin == NullIndex {
				return fmt.Errorf("RemoveConnectedComponent: h%d has no twin: %w", h, ErrTopology)
			}
			if !vertexSeen.Get(hd.vertex) {
				vertexSeen.Set(hd.vertex, true)
				vertices = append(vertices, hd.vertex)
			}
			if g := m.he(hd.twin).face; g != NullIndex && !faceSeen.Get(g) {
				faceSeen.Set(g, true)
				stack = append(stack, g)
			}
		}
	}

	m.unlock(ctx)
	// Every collected vertex goes away with its faces, so removeFace has no
	// tentative half-edge to repair.
	for _, v := range vertices {
		m.vertexData.Ptr(v).halfedge = NullIndex
	}
	for _, f := range faces {
		m.removeFace(f)
	}
	for _, v := range vertices {
		if err = m.removeVertex(v); err != nil {
			return fmt.Errorf("RemoveConnectedComponent: %w", ErrTopology)
		}
	}

	m.cfg.logger.Debug("component removed", "mesh", m.id,
		"faces", len(faces), "vertices", len(vertices))

	return m.lock(ctx)
}
