// SPDX-License-Identifier: MIT
// Package: lvmesh/mesh
//
// topology.go - the Lock/Unlock state machine.
//
// Contract:
//   • Lock and Unlock are idempotent.
//   • A failed Lock leaves the mesh unlocked and structurally unchanged.
//   • Unlock(Lock(M)) restores the raw structure of M: the same vertices, faces
//     and face half-edges, with boundary twins back to null.

package mesh

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvmesh/pool"
)

// Lock derives the full half-edge topology. See the package documentation for
// the stages. Returns ErrNonManifoldVertex if some vertex has more than one fan.
// Complexity: O(V + H + F) expected.
func (m *Mesh) Lock() error { return m.lock(context.Background()) }

// Unlock discards the derived topology and returns the mesh to raw editing.
func (m *Mesh) Unlock() { m.unlock(context.Background()) }

func (m *Mesh) lock(ctx context.Context) (err error) {
	if m.locked {
		return nil
	}
	_, span := m.startSpan(ctx, "Lock")
	defer func() { m.endSpan(span, err) }()

	loops, err := m.findBoundaryLoops()
	if err != nil {
		return err
	}
	if err = m.checkBoundaryVertices(loops); err != nil {
		return err
	}
	m.synthesizeBoundary(loops)
	m.assignVertexHalfedges()
	if err = m.checkFans(); err != nil {
		m.removeBoundary()
		return err
	}
	m.deriveEdges()
	m.computeCaches()
	m.locked = true

	m.cfg.logger.Debug("mesh locked", "mesh", m.id,
		"vertices", m.vertexPool.Len(), "faces", m.facePool.Len(),
		"edges", m.edgePool.Len(), "boundary_loops", len(m.loops))
	return nil
}

func (m *Mesh) unlock(ctx context.Context) {
	if !m.locked {
		return
	}
	_, span := m.startSpan(ctx, "Unlock")

	m.edgePool.Clear()
	for h := range m.halfedgePool.All() {
		m.halfedgeData.Ptr(h).edge = NullIndex
	}
	m.removeBoundary()
	m.interiorVertices, m.interiorEdges = 0, 0
	m.locked = false

	m.cfg.logger.Debug("mesh unlocked", "mesh", m.id)
	m.endSpan(span, nil)
}

// findBoundaryLoops groups the untwinned half-edges into closed loops.
// Successor of h: hop to next(h), then rotate with twin().next() until an
// untwinned half-edge is met.
func (m *Mesh) findBoundaryLoops() ([][]Index, error) {
	visited := pool.NewAttachment[bool](m.halfedgePool)
	defer visited.Release()

	limit := m.halfedgePool.Len()
	var loops [][]Index
	for start := range m.halfedgePool.All() {
		if visited.Get(start) || m.he(start).twin != NullIndex {
			continue
		}
		var loop []Index
		for h := start; ; {
			visited.Set(h, true)
			loop = append(loop, h)
			next, err := m.boundarySuccessor(h, limit)
			if err != nil {
				return nil, err
			}
			if next == start {
				break
			}
			if visited.Get(next) || len(loop) > limit {
				return nil, fmt.Errorf("Lock: boundary walk from h%d does not close: %w", start, ErrNonManifoldVertex)
			}
			h = next
		}
		loops = append(loops, loop)
	}

	return loops, nil
}

func (m *Mesh) boundarySuccessor(h Index, limit int) (Index, error) {
	h = m.he(h).next
	for steps := 0; m.he(h).twin != NullIndex; steps++ {
		if steps > limit {
			return NullIndex, fmt.Errorf("Lock: fan rotation at v%d does not terminate: %w", m.he(h).vertex, ErrNonManifoldVertex)
		}
		h = m.he(m.he(h).twin).next
	}
	return h, nil
}

// checkBoundaryVertices rejects a vertex that originates two boundary
// half-edges: it joins two fans (a bow-tie).
func (m *Mesh) checkBoundaryVertices(loops [][]Index) error {
	seen := pool.NewAttachment[bool](m.vertexPool)
	defer seen.Release()

	for _, loop := range loops {
		for _, h := range loop {
			v := m.he(h).vertex
			if seen.Get(v) {
				return fmt.Errorf("Lock: v%d starts two boundary half-edges: %w", v, ErrNonManifoldVertex)
			}
			seen.Set(v, true)
		}
	}
	return nil
}

// synthesizeBoundary creates the reverse loop of every boundary loop.
// For loop h_0 … h_{k-1}: s_i = twin(h_i) runs tip(h_i)→origin(h_i) and
// next(s_i) = s_{i-1}.
func (m *Mesh) synthesizeBoundary(loops [][]Index) {
	m.loops = m.loops[:0]
	for _, loop := range loops {
		k := len(loop)
		synth := make([]Index, k)
		for i, h := range loop {
			origin, tip := m.he(h).vertex, m.tip(h)
			s := m.halfedgePool.Add()
			sd := m.halfedgeData.Ptr(s)
			sd.vertex = tip
			sd.twin = h
			m.halfedgeData.Ptr(h).twin = s
			m.halfedgeMap[vertexPair{tip, origin}] = s
			synth[i] = s
		}
		for i, s := range synth {
			m.halfedgeData.Ptr(s).next = synth[(i+k-1)%k]
		}
		m.loops = append(m.loops, synth[0])
	}
}

// removeBoundary undoes synthesizeBoundary.
func (m *Mesh) removeBoundary() {
	var synth []Index
	for _, rep := range m.loops {
		for s := rep; ; {
			synth = append(synth, s)
			s = m.he(s).next
			if s == rep {
				break
			}
		}
	}
	for _, s := range synth {
		sd := m.he(s)
		m.halfedgeData.Ptr(sd.twin).twin = NullIndex
		delete(m.halfedgeMap, vertexPair{sd.vertex, m.he(sd.twin).vertex})
		_ = m.halfedgePool.Remove(s)
	}
	m.loops = m.loops[:0]
}

// assignVertexHalfedges makes vertex half-edges authoritative: some face
// half-edge for interior vertices, boundary.twin().next() on the boundary,
// null for isolated vertices.
func (m *Mesh) assignVertexHalfedges() {
	for v := range m.vertexPool.All() {
		m.vertexData.Ptr(v).halfedge = NullIndex
	}
	for h := range m.halfedgePool.All() {
		hd := m.he(h)
		if hd.face == NullIndex {
			continue
		}
		if vd := m.vertexData.Ptr(hd.vertex); vd.halfedge == NullIndex {
			vd.halfedge = h
		}
	}
	for _, rep := range m.loops {
		for s := rep; ; {
			sd := m.he(s)
			m.vertexData.Ptr(sd.vertex).halfedge = m.he(sd.twin).next
			s = sd.next
			if s == rep {
				break
			}
		}
	}
}

// checkFans verifies that rotating around each vertex visits every outgoing
// half-edge. Catches closed fans glued at a single vertex, which have no
// boundary to expose them.
func (m *Mesh) checkFans() error {
	degree := pool.NewAttachment[int](m.vertexPool)
	defer degree.Release()

	for h := range m.halfedgePool.All() {
		*degree.Ptr(m.he(h).vertex)++
	}
	for v := range m.vertexPool.All() {
		start := m.vertexData.Get(v).halfedge
		if start == NullIndex {
			continue
		}
		want, n := degree.Get(v), 0
		for h := start; ; {
			n++
			h = m.he(m.he(h).twin).next
			if h == start || n > want {
				break
			}
		}
		if n != want {
			return fmt.Errorf("Lock: v%d has %d outgoing half-edges but its fan holds %d: %w", v, want, n, ErrNonManifoldVertex)
		}
	}
	return nil
}

// deriveEdges creates one edge per twin pair.
func (m *Mesh) deriveEdges() {
	for h := range m.halfedgePool.All() {
		hd := m.he(h)
		if hd.edge != NullIndex {
			continue
		}
		e := m.edgePool.Add()
		m.edgeData.Set(e, edgeIncidence{halfedges: [2]Index{h, hd.twin}})
		m.halfedgeData.Ptr(h).edge = e
		m.halfedgeData.Ptr(hd.twin).edge = e
	}
}

// computeCaches fills the boundary flags and interior counts. Isolated
// vertices are neither boundary nor interior.
func (m *Mesh) computeCaches() {
	m.onBoundary.Fill(false)
	for _, rep := range m.loops {
		for s := rep; ; {
			m.onBoundary.Set(m.he(s).vertex, true)
			s = m.he(s).next
			if s == rep {
				break
			}
		}
	}

	m.interiorVertices = 0
	for v := range m.vertexPool.All() {
		if m.vertexData.Get(v).halfedge != NullIndex && !m.onBoundary.Get(v) {
			m.interiorVertices++
		}
	}

	m.interiorEdges = 0
	for e := range m.edgePool.All() {
		pair := m.edgeData.Get(e).halfedges
		if m.he(pair[0]).face != NullIndex && m.he(pair[1]).face != NullIndex {
			m.interiorEdges++
		}
	}
}
