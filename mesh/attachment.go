// SPDX-License-Identifier: MIT
// Package: lvmesh/mesh
//
// attachment.go - user data keyed by element handles.
//
// An Attachment[H, T] is a pool.Attachment[T] addressed by handles of kind H.
// It follows its pool through growth and reuse: a slot handed out again by a
// later Add reads the zero value of T.

package mesh

import "github.com/katalvlaran/lvmesh/pool"

// Handle is the set of element handle types.
type Handle interface {
	Vertex | Halfedge | Edge | Face
	Index() Index
}

// Attachment stores one T per element of kind H.
type Attachment[H Handle, T any] struct {
	data *pool.Attachment[T]
}

// NewVertexAttachment binds a new per-vertex attachment to m.
func NewVertexAttachment[T any](m *Mesh) *Attachment[Vertex, T] {
	return &Attachment[Vertex, T]{data: pool.NewAttachment[T](m.vertexPool)}
}

// NewHalfedgeAttachment binds a new per-half-edge attachment to m.
func NewHalfedgeAttachment[T any](m *Mesh) *Attachment[Halfedge, T] {
	return &Attachment[Halfedge, T]{data: pool.NewAttachment[T](m.halfedgePool)}
}

// NewEdgeAttachment binds a new per-edge attachment to m.
// Edge slots are recycled by every Unlock.
func NewEdgeAttachment[T any](m *Mesh) *Attachment[Edge, T] {
	return &Attachment[Edge, T]{data: pool.NewAttachment[T](m.edgePool)}
}

// NewFaceAttachment binds a new per-face attachment to m.
func NewFaceAttachment[T any](m *Mesh) *Attachment[Face, T] {
	return &Attachment[Face, T]{data: pool.NewAttachment[T](m.facePool)}
}

// Get returns the value stored for h. Panics on a null handle.
func (a *Attachment[H, T]) Get(h H) T { return a.data.Get(h.Index()) }

// Set stores v for h. Panics on a null handle.
func (a *Attachment[H, T]) Set(h H, v T) { a.data.Set(h.Index(), v) }

// Ptr returns a pointer to the slot of h, valid until the pool next grows.
func (a *Attachment[H, T]) Ptr(h H) *T { return a.data.Ptr(h.Index()) }

// Fill writes v for every live element of kind H.
func (a *Attachment[H, T]) Fill(v T) { a.data.Fill(v) }

// Release unbinds the attachment; it must not be used afterwards.
func (a *Attachment[H, T]) Release() { a.data.Release() }
