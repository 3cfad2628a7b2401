// SPDX-License-Identifier: MIT
// Package: lvmesh/converters
//
// topology.go - locked-mesh exports: edges, boundary loops, operators.

package converters

import (
	"fmt"

	"github.com/katalvlaran/lvmesh/matrix"
	"github.com/katalvlaran/lvmesh/mesh"
)

// ToEdgeList returns one [u, v] pair per edge in edge-index order, u being the
// origin of the edge's first half-edge.
func ToEdgeList(m *mesh.Mesh) ([][2]int, error) {
	if m == nil {
		return nil, ErrNilMesh
	}
	edges, err := m.Edges()
	if err != nil {
		return nil, fmt.Errorf("ToEdgeList: %w", err)
	}
	idx := contiguous(m)
	defer idx.Release()

	var out [][2]int
	for e := range edges {
		u, v := e.Vertices()
		out = append(out, [2]int{idx.Get(u), idx.Get(v)})
	}
	return out, nil
}

// BoundaryLoops returns the vertex cycle of every boundary loop, walked along
// the synthetic boundary half-edges.
func BoundaryLoops(m *mesh.Mesh) ([][]int, error) {
	if m == nil {
		return nil, ErrNilMesh
	}
	reps, err := m.BoundaryLoops()
	if err != nil {
		return nil, fmt.Errorf("BoundaryLoops: %w", err)
	}
	idx := contiguous(m)
	defer idx.Release()

	out := make([][]int, 0, len(reps))
	for _, rep := range reps {
		var loop []int
		for h := rep; ; {
			loop = append(loop, idx.Get(h.Vertex()))
			h = h.Next()
			if h.Equal(rep) {
				break
			}
		}
		out = append(out, loop)
	}
	return out, nil
}

// AdjacencyMatrix returns the symmetric V×V 0/1 vertex adjacency.
func AdjacencyMatrix(m *mesh.Mesh) (*matrix.Dense, error) {
	return vertexOperator("AdjacencyMatrix", m, func(a *matrix.Dense, u, v int) error {
		if err := a.Set(u, v, 1); err != nil {
			return err
		}
		return a.Set(v, u, 1)
	})
}

// Laplacian returns L = D − A, the combinatorial graph Laplacian of the
// vertex–edge graph. Every row sums to zero.
func Laplacian(m *mesh.Mesh) (*matrix.Dense, error) {
	return vertexOperator("Laplacian", m, func(l *matrix.Dense, u, v int) error {
		for _, step := range [...]struct {
			i, j int
			d    float64
		}{{u, v, -1}, {v, u, -1}, {u, u, 1}, {v, v, 1}} {
			if err := l.Add(step.i, step.j, step.d); err != nil {
				return err
			}
		}
		return nil
	})
}

// vertexOperator allocates a V×V matrix and calls add once per edge.
func vertexOperator(method string, m *mesh.Mesh, add func(*matrix.Dense, int, int) error) (*matrix.Dense, error) {
	pairs, err := ToEdgeList(m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	out, err := matrix.NewDense(m.NumVertices(), m.NumVertices())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	for _, p := range pairs {
		if err = add(out, p[0], p[1]); err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
	}
	return out, nil
}

// IncidenceMatrix returns the V×E unsigned incidence: entry (v, e) is 1 when
// v is an endpoint of edge e (edges numbered in ToEdgeList order).
func IncidenceMatrix(m *mesh.Mesh) (*matrix.Dense, error) {
	pairs, err := ToEdgeList(m)
	if err != nil {
		return nil, fmt.Errorf("IncidenceMatrix: %w", err)
	}
	out, err := matrix.NewDense(m.NumVertices(), len(pairs))
	if err != nil {
		return nil, fmt.Errorf("IncidenceMatrix: %w", err)
	}
	for e, p := range pairs {
		if err = out.Set(p[0], e, 1); err != nil {
			return nil, fmt.Errorf("IncidenceMatrix: %w", err)
		}
		if err = out.Set(p[1], e, 1); err != nil {
			return nil, fmt.Errorf("IncidenceMatrix: %w", err)
		}
	}
	return out, nil
}
