// SPDX-License-Identifier: MIT
// Package: lvmesh/mesh
//
// mesh.go - Mesh storage: four pools, incidence attachments, adjacency index.
//
// Contract:
//   • Every incidence column is initialised to NullIndex on element creation.
//   • halfedgeMap holds exactly one entry per live half-edge, keyed (origin, tip).
//   • boundary, interior counts and edges are meaningful only while locked.

package mesh

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvmesh/pool"
)

// Index is the raw slot index of an element inside its pool.
type Index = pool.Index

// NullIndex is the index carried by null handles.
const NullIndex = pool.NullIndex

type vertexIncidence struct {
	halfedge Index // outgoing
}

type halfedgeIncidence struct {
	next   Index
	vertex Index // origin
	face   Index // NullIndex on a boundary half-edge
	twin   Index
	edge   Index
}

type edgeIncidence struct {
	halfedges [2]Index
}

type faceIncidence struct {
	halfedge Index
}

// vertexPair is the adjacency-index key (origin, tip).
type vertexPair [2]Index

// Mesh is a half-edge surface mesh. Construct with New.
type Mesh struct {
	id  uuid.UUID
	cfg config

	vertexPool   *pool.Pool
	halfedgePool *pool.Pool
	edgePool     *pool.Pool
	facePool     *pool.Pool

	vertexData   *pool.Attachment[vertexIncidence]
	halfedgeData *pool.Attachment[halfedgeIncidence]
	edgeData     *pool.Attachment[edgeIncidence]
	faceData     *pool.Attachment[faceIncidence]

	halfedgeMap map[vertexPair]Index

	locked bool

	// locked-only caches
	loops            []Index // one synthetic half-edge per boundary loop
	onBoundary       *pool.Attachment[bool]
	interiorVertices int
	interiorEdges    int
}

// New returns an empty, unlocked mesh.
func New(opts ...Option) *Mesh {
	cfg := newConfig(opts...)
	m := &Mesh{
		id:           uuid.New(),
		cfg:          cfg,
		vertexPool:   pool.New(cfg.capacity),
		halfedgePool: pool.New(cfg.capacity),
		edgePool:     pool.New(cfg.capacity),
		facePool:     pool.New(cfg.capacity),
		halfedgeMap:  make(map[vertexPair]Index),
	}
	m.vertexData = pool.NewAttachment(m.vertexPool, pool.WithInit(func(v *vertexIncidence) {
		v.halfedge = NullIndex
	}))
	m.halfedgeData = pool.NewAttachment(m.halfedgePool, pool.WithInit(func(h *halfedgeIncidence) {
		*h = halfedgeIncidence{next: NullIndex, vertex: NullIndex, face: NullIndex, twin: NullIndex, edge: NullIndex}
	}))
	m.edgeData = pool.NewAttachment(m.edgePool, pool.WithInit(func(e *edgeIncidence) {
		e.halfedges = [2]Index{NullIndex, NullIndex}
	}))
	m.faceData = pool.NewAttachment(m.facePool, pool.WithInit(func(f *faceIncidence) {
		f.halfedge = NullIndex
	}))
	m.onBoundary = pool.NewAttachment[bool](m.vertexPool)

	return m
}

// ID returns the identity assigned at construction. It appears in log records and spans.
func (m *Mesh) ID() uuid.UUID { return m.id }

// Locked reports the current mode.
func (m *Mesh) Locked() bool { return m.locked }

// NumVertices reports the number of live vertices. O(1).
func (m *Mesh) NumVertices() int { return m.vertexPool.Len() }

// NumHalfedges reports the number of live half-edges, synthetic boundary
// half-edges included while locked. O(1).
func (m *Mesh) NumHalfedges() int { return m.halfedgePool.Len() }

// NumFaces reports the number of live faces. O(1).
func (m *Mesh) NumFaces() int { return m.facePool.Len() }

// String summarises the mesh for logs and test failures.
func (m *Mesh) String() string {
	state := "unlocked"
	if m.locked {
		state = "locked"
	}
	return fmt.Sprintf("Mesh(%s) %s: %d vertices, %d halfedges, %d edges, %d faces",
		m.id, state, m.vertexPool.Len(), m.halfedgePool.Len(), m.edgePool.Len(), m.facePool.Len())
}

// he returns a copy of the incidence record of half-edge i.
func (m *Mesh) he(i Index) halfedgeIncidence { return m.halfedgeData.Get(i) }

// tip returns the destination vertex of half-edge i.
func (m *Mesh) tip(i Index) Index { return m.he(m.he(i).next).vertex }

// faceLoop appends the half-edges of face f, in next order, to dst.
func (m *Mesh) faceLoop(dst []Index, f Index) []Index {
	start := m.faceData.Get(f).halfedge
	h := start
	for {
		dst = append(dst, h)
		h = m.he(h).next
		if h == start {
			return dst
		}
	}
}
