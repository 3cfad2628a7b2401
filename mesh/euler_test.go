// SPDX-License-Identifier: MIT
package mesh_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvmesh/mesh"
)

type EulerSuite struct {
	suite.Suite
	tet  *mesh.Mesh
	grid *mesh.Mesh
}

func (s *EulerSuite) SetupTest() {
	s.tet = newTetrahedron(s.T())
	s.grid = newGrid(s.T(), 4, 4)
}

func (s *EulerSuite) components(m *mesh.Mesh) int {
	n, err := m.NumConnectedComponents()
	s.Require().NoError(err)
	return n
}

func (s *EulerSuite) TestAdd_RejectsInvalidSource() {
	s.ErrorIs(s.tet.Add(nil), mesh.ErrNilMesh)
	s.ErrorIs(s.tet.Add(s.tet), mesh.ErrSelfMerge)
}

func (s *EulerSuite) TestAdd_UnlockedStaysUnlocked() {
	s.Require().NoError(s.tet.Add(s.grid))
	s.False(s.tet.Locked())
	s.Equal(4+16, s.tet.NumVertices())
	s.Equal(4+18, s.tet.NumFaces())
	s.Equal(12+54, s.tet.NumHalfedges())

	// The source is untouched.
	s.Equal(16, s.grid.NumVertices())
	s.Equal(18, s.grid.NumFaces())
}

func (s *EulerSuite) TestAdd_LockedStaysLocked() {
	s.Require().NoError(s.tet.Lock())
	s.Require().NoError(s.grid.Lock())
	s.Require().NoError(s.tet.Add(s.grid))

	s.True(s.tet.Locked())
	requireLockedInvariants(s.T(), s.tet)
	s.Equal(2, s.components(s.tet))
	loops, err := s.tet.NumBoundaryLoops()
	s.Require().NoError(err)
	s.Equal(1, loops)
	edges, err := s.tet.NumEdges()
	s.Require().NoError(err)
	s.Equal(6+33, edges)
}

func (s *EulerSuite) TestAdd_PreservesWinding() {
	s.Require().NoError(s.grid.Add(s.tet))
	var got [][]mesh.Index
	for f := range s.grid.Faces() {
		if f.Index() < 18 {
			continue
		}
		var corners []mesh.Index
		for v := range f.Vertices() {
			corners = append(corners, v.Index()-16)
		}
		got = append(got, corners)
	}
	want := make([][]mesh.Index, len(tetrahedronFaces))
	for i, f := range tetrahedronFaces {
		for _, k := range f {
			want[i] = append(want[i], mesh.Index(k))
		}
	}
	s.Equal(want, got)
}

func (s *EulerSuite) TestRemoveConnectedComponent_RequiresLocked() {
	f := slices.Collect(s.tet.Faces())[0]
	s.ErrorIs(s.tet.RemoveConnectedComponent(f), mesh.ErrUnlocked)

	s.Require().NoError(s.tet.Lock())
	s.ErrorIs(s.tet.RemoveConnectedComponent(mesh.Face{}), mesh.ErrInvalidHandle)
}

func (s *EulerSuite) TestRemoveConnectedComponent_TwoTetrahedra() {
	s.Require().NoError(s.tet.Add(newTetrahedron(s.T())))
	s.Require().NoError(s.tet.Lock())
	s.Equal(2, s.components(s.tet))

	reps, err := s.tet.ConnectedComponents()
	s.Require().NoError(err)
	s.Require().NoError(s.tet.RemoveConnectedComponent(reps[1]))

	s.True(s.tet.Locked())
	s.Equal(1, s.components(s.tet))
	s.Equal(4, s.tet.NumVertices())
	s.Equal(4, s.tet.NumFaces())
	s.Equal(12, s.tet.NumHalfedges())
	compact, err := s.tet.Compact()
	s.Require().NoError(err)
	s.True(compact)
	requireLockedInvariants(s.T(), s.tet)
}

func (s *EulerSuite) TestRemoveConnectedComponent_OpenComponent() {
	s.Require().NoError(s.tet.Add(s.grid))
	s.Require().NoError(s.tet.Lock())

	var open mesh.Face
	for f := range s.tet.Faces() {
		if f.Index() >= 4 {
			open = f
			break
		}
	}
	s.Require().NoError(s.tet.RemoveConnectedComponent(open))

	s.Equal(4, s.tet.NumVertices())
	loops, err := s.tet.NumBoundaryLoops()
	s.Require().NoError(err)
	s.Zero(loops)
}

func (s *EulerSuite) TestRemoveConnectedComponent_LargeGrid() {
	big := newGrid(s.T(), 60, 60)
	s.Require().NoError(s.tet.Add(big))
	s.Require().NoError(s.tet.Lock())

	var gridFace mesh.Face
	for f := range s.tet.Faces() {
		if f.Index() >= 4 {
			gridFace = f
			break
		}
	}
	s.Require().NoError(s.tet.RemoveConnectedComponent(gridFace))

	s.Equal(4, s.tet.NumVertices())
	s.Equal(4, s.tet.NumFaces())
	s.Equal(12, s.tet.NumHalfedges())
	s.Equal(1, s.components(s.tet))
	requireLockedInvariants(s.T(), s.tet)
}

func (s *EulerSuite) TestRemoveConnectedComponent_LastOne() {
	s.Require().NoError(s.grid.Lock())
	f := slices.Collect(s.grid.Faces())[7]
	s.Require().NoError(s.grid.RemoveConnectedComponent(f))

	s.Zero(s.grid.NumVertices())
	s.Zero(s.grid.NumFaces())
	s.Zero(s.grid.NumHalfedges())
	s.Equal(0, s.components(s.grid))
}

func TestEulerSuite(t *testing.T) {
	suite.Run(t, new(EulerSuite))
}
