// SPDX-License-Identifier: MIT
// Package: lvmesh/mesh
//
// queries.go - element iteration and whole-mesh predicates.
//
// Iterators are lazy iter.Seq values over live elements in ascending index
// order. The mesh must not be edited while a range over it is in progress.

package mesh

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/lvmesh/pool"
)

// Vertices yields every live vertex.
func (m *Mesh) Vertices() iter.Seq[Vertex] {
	return func(yield func(Vertex) bool) {
		for i := range m.vertexPool.All() {
			if !yield(Vertex{m: m, idx: i}) {
				return
			}
		}
	}
}

// Halfedges yields every live half-edge, synthetic boundary half-edges included.
func (m *Mesh) Halfedges() iter.Seq[Halfedge] {
	return func(yield func(Halfedge) bool) {
		for i := range m.halfedgePool.All() {
			if !yield(Halfedge{m: m, idx: i}) {
				return
			}
		}
	}
}

// Faces yields every live face.
func (m *Mesh) Faces() iter.Seq[Face] {
	return func(yield func(Face) bool) {
		for i := range m.facePool.All() {
			if !yield(Face{m: m, idx: i}) {
				return
			}
		}
	}
}

// Edges yields every edge. Locked meshes only.
func (m *Mesh) Edges() (iter.Seq[Edge], error) {
	if !m.locked {
		return nil, fmt.Errorf("Edges: %w", ErrUnlocked)
	}
	return func(yield func(Edge) bool) {
		for i := range m.edgePool.All() {
			if !yield(Edge{m: m, idx: i}) {
				return
			}
		}
	}, nil
}

// NumEdges reports the number of edges. Locked meshes only.
func (m *Mesh) NumEdges() (int, error) {
	if !m.locked {
		return 0, fmt.Errorf("NumEdges: %w", ErrUnlocked)
	}
	return m.edgePool.Len(), nil
}

// BoundaryLoops returns one representative synthetic half-edge per boundary
// loop. Walking Next from a representative visits its loop, which runs
// opposite to the adjacent face windings.
func (m *Mesh) BoundaryLoops() ([]Halfedge, error) {
	if !m.locked {
		return nil, fmt.Errorf("BoundaryLoops: %w", ErrUnlocked)
	}
	out := make([]Halfedge, len(m.loops))
	for i, s := range m.loops {
		out[i] = Halfedge{m: m, idx: s}
	}
	return out, nil
}

// NumBoundaryLoops reports the number of boundary loops. Locked meshes only.
func (m *Mesh) NumBoundaryLoops() (int, error) {
	if !m.locked {
		return 0, fmt.Errorf("NumBoundaryLoops: %w", ErrUnlocked)
	}
	return len(m.loops), nil
}

// NumInteriorVertices reports vertices with a non-null half-edge that lie on
// no boundary loop. Locked meshes only.
func (m *Mesh) NumInteriorVertices() (int, error) {
	if !m.locked {
		return 0, fmt.Errorf("NumInteriorVertices: %w", ErrUnlocked)
	}
	return m.interiorVertices, nil
}

// NumInteriorEdges reports edges whose both sides have a face. Locked meshes only.
func (m *Mesh) NumInteriorEdges() (int, error) {
	if !m.locked {
		return 0, fmt.Errorf("NumInteriorEdges: %w", ErrUnlocked)
	}
	return m.interiorEdges, nil
}

// Closed reports whether the mesh has no boundary loops.
func (m *Mesh) Closed() (bool, error) {
	if !m.locked {
		return false, fmt.Errorf("Closed: %w", ErrUnlocked)
	}
	return len(m.loops) == 0, nil
}

// ConnectedComponents returns one face per connected component, found by a
// flood fill across twins. Isolated vertices form no component.
// Complexity: O(F + H).
func (m *Mesh) ConnectedComponents() ([]Face, error) {
	if !m.locked {
		return nil, fmt.Errorf("ConnectedComponents: %w", ErrUnlocked)
	}
	seen := pool.NewAttachment[bool](m.facePool)
	defer seen.Release()

	var (
		reps  []Face
		queue []Index
		loop  []Index
	)
	for f := range m.facePool.All() {
		if seen.Get(f) {
			continue
		}
		reps = append(reps, Face{m: m, idx: f})
		seen.Set(f, true)
		queue = append(queue[:0], f)
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			loop = m.faceLoop(loop[:0], cur)
			for _, h := range loop {
				g := m.he(m.he(h).twin).face
				if g != NullIndex && !seen.Get(g) {
					seen.Set(g, true)
					queue = append(queue, g)
				}
			}
		}
	}
	return reps, nil
}

// NumConnectedComponents reports len(ConnectedComponents()).
func (m *Mesh) NumConnectedComponents() (int, error) {
	reps, err := m.ConnectedComponents()
	if err != nil {
		return 0, fmt.Errorf("NumConnectedComponents: %w", err)
	}
	return len(reps), nil
}

// Connected reports whether the faces form exactly one component.
func (m *Mesh) Connected() (bool, error) {
	n, err := m.NumConnectedComponents()
	if err != nil {
		return false, fmt.Errorf("Connected: %w", err)
	}
	return n == 1, nil
}

// Compact reports whether the mesh is closed and connected.
func (m *Mesh) Compact() (bool, error) {
	closed, err := m.Closed()
	if err != nil {
		return false, fmt.Errorf("Compact: %w", err)
	}
	if !closed {
		return false, nil
	}
	return m.Connected()
}

// IsTriangular reports whether every face has three sides. Empty meshes are
// vacuously triangular. Valid in both modes.
func (m *Mesh) IsTriangular() bool { return m.allFacesOfSize(3) }

// IsQuad reports whether every face has four sides.
func (m *Mesh) IsQuad() bool { return m.allFacesOfSize(4) }

func (m *Mesh) allFacesOfSize(n int) bool {
	var loop []Index
	for f := range m.facePool.All() {
		loop = m.faceLoop(loop[:0], f)
		if len(loop) != n {
			return false
		}
	}
	return true
}
