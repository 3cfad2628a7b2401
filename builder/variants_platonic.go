// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// variants_platonic.go - canonical face lists for the Platonic solids.
//
// Design:
//   • Single source of truth for the five closed solids (vertex counts and faces).
//   • Every face list is consistently wound (outward normals for the usual embedding).
//   • The dodecahedron is derived once, lazily, as the dual of the icosahedron:
//     one pentagon per icosahedron vertex, corners = the faces of its fan.

package builder

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/lvmesh/traverse"
)

// PlatonicName enumerates the five Platonic solids.
type PlatonicName int

// String provides a readable identifier for logs and errors.
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	case Dodecahedron:
		return "Dodecahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

// Enum values (stable ordering).
const (
	Tetrahedron  PlatonicName = iota // V=4,  E=6,  F=4
	Cube                             // V=8,  E=12, F=6
	Octahedron                       // V=6,  E=12, F=8
	Dodecahedron                     // V=20, E=30, F=12
	Icosahedron                      // V=12, E=30, F=20
)

var platonicVertexCounts = map[PlatonicName]int{
	Tetrahedron:  4,
	Cube:         8,
	Octahedron:   6,
	Dodecahedron: 20,
	Icosahedron:  12,
}

var platonicFaces = map[PlatonicName][][]int{
	Tetrahedron: {
		{0, 1, 2}, {0, 3, 1}, {0, 2, 3}, {1, 3, 2},
	},
	Cube: {
		{0, 3, 2, 1}, {4, 5, 6, 7}, {0, 1, 5, 4},
		{1, 2, 6, 5}, {2, 3, 7, 6}, {3, 0, 4, 7},
	},
	Octahedron: {
		{0, 2, 4}, {2, 1, 4}, {1, 3, 4}, {3, 0, 4},
		{2, 0, 5}, {1, 2, 5}, {3, 1, 5}, {0, 3, 5},
	},
	Icosahedron: {
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	},
}

var dodecahedron struct {
	once  sync.Once
	faces [][]int
	err   error
}

// faceList returns the canonical faces of p.
func faceList(p PlatonicName) ([][]int, error) {
	if p == Dodecahedron {
		dodecahedron.once.Do(func() {
			dodecahedron.faces, dodecahedron.err = dualFaces(Icosahedron)
		})
		return dodecahedron.faces, dodecahedron.err
	}
	faces, ok := platonicFaces[p]
	if !ok {
		return nil, fmt.Errorf("%s: unknown solid %v: %w", MethodPlatonicSolid, p, ErrOptionViolation)
	}
	return faces, nil
}

// dualFaces builds p, then emits one face per vertex whose corners are the
// indices of the faces around it. The rotation order of traverse.FaceFan is
// reversed so the dual keeps outward winding.
func dualFaces(p PlatonicName) ([][]int, error) {
	m, err := BuildMesh(nil, []BuilderOption{WithLock()}, PlatonicSolid(p))
	if err != nil {
		return nil, err
	}
	faces := make([][]int, 0, m.NumVertices())
	for v := range m.Vertices() {
		fan, err := traverse.FaceFan(v)
		if err != nil {
			return nil, fmt.Errorf("%s: dual of %v: %w: %w", MethodPlatonicSolid, p, ErrConstructFailed, err)
		}
		face := make([]int, len(fan))
		for i, f := range fan {
			face[len(fan)-1-i] = int(f.Index())
		}
		faces = append(faces, face)
	}
	return faces, nil
}
