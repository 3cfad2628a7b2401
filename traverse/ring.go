// SPDX-License-Identifier: MIT
// Package: lvmesh/traverse
//
// ring.go - loops, outgoing rotations and fans.

package traverse

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/lvmesh/mesh"
)

// Loop yields the next-cycle through h, starting at h. On a face half-edge
// this is the face; on a boundary half-edge, the boundary loop.
func Loop(h mesh.Halfedge) iter.Seq[mesh.Halfedge] {
	return func(yield func(mesh.Halfedge) bool) {
		if h.Null() {
			return
		}
		for cur := h; ; {
			if !yield(cur) {
				return
			}
			cur = cur.Next()
			if cur.Null() || cur.Equal(h) {
				return
			}
		}
	}
}

// Outgoing yields the half-edges leaving v in rotation order, starting at
// v.Halfedge(). On a boundary vertex the boundary half-edge comes last.
func Outgoing(v mesh.Vertex) (iter.Seq[mesh.Halfedge], error) {
	start, err := v.Halfedge()
	if err != nil {
		return nil, fmt.Errorf("traverse: Outgoing(%v): %w", v, err)
	}
	return func(yield func(mesh.Halfedge) bool) {
		if start.Null() {
			return
		}
		for cur := start; ; {
			if !yield(cur) {
				return
			}
			cur = cur.Twin().Next()
			if cur.Equal(start) {
				return
			}
		}
	}, nil
}

// VertexRing returns the neighbours of v in rotation order.
func VertexRing(v mesh.Vertex) ([]mesh.Vertex, error) {
	out, err := Outgoing(v)
	if err != nil {
		return nil, err
	}
	var ring []mesh.Vertex
	for h := range out {
		ring = append(ring, h.Tip())
	}
	return ring, nil
}

// FaceFan returns the faces around v in rotation order.
func FaceFan(v mesh.Vertex) ([]mesh.Face, error) {
	out, err := Outgoing(v)
	if err != nil {
		return nil, err
	}
	var fan []mesh.Face
	for h := range out {
		if f := h.Face(); !f.Null() {
			fan = append(fan, f)
		}
	}
	return fan, nil
}
