// SPDX-License-Identifier: MIT
// Package: lvmesh/traverse
//
// bfs.go - breadth-first walks over faces and vertex rings.

package traverse

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvmesh/mesh"
)

// queueItem pairs an element with its depth.
type queueItem[H mesh.Handle] struct {
	h     H
	depth int
}

// walker encapsulates mutable BFS state for one element kind.
type walker[H mesh.Handle] struct {
	opts      Options
	ctx       context.Context
	neighbors func(H) ([]H, error)
	queue     []queueItem[H]
	res       *Result
}

// Faces runs a breadth-first search over faces, stepping across twins.
// Boundary half-edges (and, while unlocked, untwinned ones) stop the search.
func Faces(start mesh.Face, opts ...Option) (*Result, error) {
	if start.Null() {
		return nil, ErrNullStart
	}
	n := start.Mesh().NumFaces()
	return search(start, n, faceNeighbors, opts)
}

// Vertices runs a breadth-first search over vertices via their rings.
// Locked meshes only.
func Vertices(start mesh.Vertex, opts ...Option) (*Result, error) {
	if start.Null() {
		return nil, ErrNullStart
	}
	if !start.Mesh().Locked() {
		return nil, fmt.Errorf("traverse: Vertices: %w", mesh.ErrUnlocked)
	}
	n := start.Mesh().NumVertices()
	return search(start, n, VertexRing, opts)
}

func faceNeighbors(f mesh.Face) ([]mesh.Face, error) {
	var out []mesh.Face
	for h := range f.Halfedges() {
		if g := h.Twin().Face(); !g.Null() {
			out = append(out, g)
		}
	}
	return out, nil
}

func search[H mesh.Handle](start H, n int, neighbors func(H) ([]H, error), opts []Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[H]{
		opts:      o,
		ctx:       o.Ctx,
		neighbors: neighbors,
		queue:     make([]queueItem[H], 0, n),
		res: &Result{
			Order:  make([]mesh.Index, 0, n),
			Depth:  make(map[mesh.Index]int, n),
			Parent: make(map[mesh.Index]mesh.Index, n),
		},
	}
	w.enqueue(start, 0, mesh.NullIndex)

	return w.res, w.loop()
}

func (w *walker[H]) enqueue(h H, depth int, parent mesh.Index) {
	idx := h.Index()
	w.res.Depth[idx] = depth
	if parent != mesh.NullIndex {
		w.res.Parent[idx] = parent
	}
	w.queue = append(w.queue, queueItem[H]{h: h, depth: depth})
}

func (w *walker[H]) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		idx := item.h.Index()
		w.res.Order = append(w.res.Order, idx)
		if err := w.opts.OnVisit(idx, item.depth); err != nil {
			return fmt.Errorf("traverse: OnVisit error at %d: %w", idx, err)
		}

		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

func (w *walker[H]) enqueueNeighbors(item queueItem[H]) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	nbrs, err := w.neighbors(item.h)
	if err != nil {
		return err
	}
	idx := item.h.Index()
	for _, nbr := range nbrs {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		ni := nbr.Index()
		if _, seen := w.res.Depth[ni]; seen || !w.opts.FilterNeighbor(idx, ni) {
			continue
		}
		w.enqueue(nbr, next, idx)
	}
	return nil
}
