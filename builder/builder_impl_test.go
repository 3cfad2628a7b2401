// Package builder_test contains functional tests for all Constructor
// implementations, verifying counts, Euler characteristics and options.
package builder_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmesh/builder"
	"github.com/katalvlaran/lvmesh/mesh"
)

func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		ctor       builder.Constructor
		wantV      int
		wantE      int
		wantF      int
		wantLoops  int
		wantArity  int // 0: mixed
		components int
	}{
		{name: "Grid(10,10)", ctor: builder.Grid(10, 10), wantV: 100, wantE: 261, wantF: 162, wantLoops: 1, wantArity: 3, components: 1},
		{name: "Grid(2,2)", ctor: builder.Grid(2, 2), wantV: 4, wantE: 5, wantF: 2, wantLoops: 1, wantArity: 3, components: 1},
		{name: "Grid(5,3)", ctor: builder.Grid(5, 3), wantV: 15, wantE: 30, wantF: 16, wantLoops: 1, wantArity: 3, components: 1},
		{name: "Polygon(7)", ctor: builder.Polygon(7), wantV: 7, wantE: 7, wantF: 1, wantLoops: 1, wantArity: 7, components: 1},
		{name: "Wheel(6)", ctor: builder.Wheel(6), wantV: 7, wantE: 12, wantF: 6, wantLoops: 1, wantArity: 3, components: 1},
		{name: "Annulus(5)", ctor: builder.Annulus(5), wantV: 10, wantE: 15, wantF: 5, wantLoops: 2, wantArity: 4, components: 1},
		{name: "Tetrahedron", ctor: builder.PlatonicSolid(builder.Tetrahedron), wantV: 4, wantE: 6, wantF: 4, wantArity: 3, components: 1},
		{name: "Cube", ctor: builder.PlatonicSolid(builder.Cube), wantV: 8, wantE: 12, wantF: 6, wantArity: 4, components: 1},
		{name: "Octahedron", ctor: builder.PlatonicSolid(builder.Octahedron), wantV: 6, wantE: 12, wantF: 8, wantArity: 3, components: 1},
		{name: "Icosahedron", ctor: builder.PlatonicSolid(builder.Icosahedron), wantV: 12, wantE: 30, wantF: 20, wantArity: 3, components: 1},
		{name: "Dodecahedron", ctor: builder.PlatonicSolid(builder.Dodecahedron), wantV: 20, wantE: 30, wantF: 12, wantArity: 5, components: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m, err := builder.BuildMesh(nil, []builder.BuilderOption{builder.WithLock()}, tc.ctor)
			require.NoError(t, err)

			assert.Equal(t, tc.wantV, m.NumVertices())
			assert.Equal(t, tc.wantF, m.NumFaces())
			ne, err := m.NumEdges()
			require.NoError(t, err)
			assert.Equal(t, tc.wantE, ne)
			loops, err := m.NumBoundaryLoops()
			require.NoError(t, err)
			assert.Equal(t, tc.wantLoops, loops)
			nc, err := m.NumConnectedComponents()
			require.NoError(t, err)
			assert.Equal(t, tc.components, nc)

			// χ = V − E + F = 2 − 2g − b for a connected orientable surface.
			assert.Equal(t, 2-tc.wantLoops, tc.wantV-ne+tc.wantF, "Euler characteristic")

			for f := range m.Faces() {
				assert.Equal(t, tc.wantArity, f.NumVertices(), "%v", f)
			}
		})
	}
}

func TestGrid_InteriorCounts(t *testing.T) {
	m, err := builder.BuildMesh(nil, []builder.BuilderOption{builder.WithLock()}, builder.Grid(10, 10))
	require.NoError(t, err)
	assert.Equal(t, 522, m.NumHalfedges())
	iv, err := m.NumInteriorVertices()
	require.NoError(t, err)
	assert.Equal(t, 64, iv)
	ie, err := m.NumInteriorEdges()
	require.NoError(t, err)
	assert.Equal(t, 225, ie)
}

func TestWheel_HubValence(t *testing.T) {
	m, err := builder.BuildMesh(nil, []builder.BuilderOption{builder.WithLock()}, builder.Wheel(9))
	require.NoError(t, err)
	hub := slices.Collect(m.Vertices())[9]
	k, err := hub.NumAdjacentVertices()
	require.NoError(t, err)
	assert.Equal(t, 9, k)
	onBoundary, err := hub.OnBoundary()
	require.NoError(t, err)
	assert.False(t, onBoundary)
}

func TestBuildMesh_Composition(t *testing.T) {
	m, err := builder.BuildMesh(nil, []builder.BuilderOption{builder.WithLock()},
		builder.PlatonicSolid(builder.Cube),
		builder.Grid(3, 3),
		builder.PlatonicSolid(builder.Tetrahedron),
	)
	require.NoError(t, err)
	assert.Equal(t, 8+9+4, m.NumVertices())
	nc, err := m.NumConnectedComponents()
	require.NoError(t, err)
	assert.Equal(t, 3, nc)
	closed, err := m.Closed()
	require.NoError(t, err)
	assert.False(t, closed)
}

func TestBuildMesh_Errors(t *testing.T) {
	cases := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Grid x too small", builder.Grid(1, 4), builder.ErrTooFewVertices},
		{"Grid y too small", builder.Grid(4, 0), builder.ErrTooFewVertices},
		{"Polygon too small", builder.Polygon(2), builder.ErrTooFewVertices},
		{"Wheel too small", builder.Wheel(2), builder.ErrTooFewVertices},
		{"Annulus too small", builder.Annulus(-1), builder.ErrTooFewVertices},
		{"unknown solid", builder.PlatonicSolid(builder.PlatonicName(42)), builder.ErrOptionViolation},
		{"nil constructor", nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := builder.BuildMesh(nil, nil, tc.ctor)
			assert.Nil(t, m)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestWithReversedWinding(t *testing.T) {
	plain, err := builder.BuildMesh(nil, nil, builder.Polygon(5))
	require.NoError(t, err)
	flipped, err := builder.BuildMesh(nil, []builder.BuilderOption{builder.WithReversedWinding()}, builder.Polygon(5))
	require.NoError(t, err)

	corners := func(m *mesh.Mesh) []mesh.Index {
		var out []mesh.Index
		for f := range m.Faces() {
			for v := range f.Vertices() {
				out = append(out, v.Index())
			}
		}
		return out
	}
	assert.Equal(t, []mesh.Index{0, 1, 2, 3, 4}, corners(plain))
	assert.Equal(t, []mesh.Index{4, 3, 2, 1, 0}, corners(flipped))
}

func TestWithSeed_Deterministic(t *testing.T) {
	faceOrder := func(opts ...builder.BuilderOption) [][]mesh.Index {
		m, err := builder.BuildMesh(nil, opts, builder.PlatonicSolid(builder.Icosahedron))
		require.NoError(t, err)
		var out [][]mesh.Index
		for f := range m.Faces() {
			var c []mesh.Index
			for v := range f.Vertices() {
				c = append(c, v.Index())
			}
			out = append(out, c)
		}
		return out
	}

	a := faceOrder(builder.WithSeed(7))
	b := faceOrder(builder.WithRand(rand.New(rand.NewSource(7))))
	assert.Equal(t, a, b)
	assert.NotEqual(t, faceOrder(), a, "seeded shuffle changes insertion order")

	m, err := builder.BuildMesh(nil, []builder.BuilderOption{builder.WithSeed(7), builder.WithLock()}, builder.PlatonicSolid(builder.Icosahedron))
	require.NoError(t, err)
	compact, err := m.Compact()
	require.NoError(t, err)
	assert.True(t, compact)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
}

func TestPlatonicName_String(t *testing.T) {
	assert.Equal(t, "Dodecahedron", builder.Dodecahedron.String())
	assert.Equal(t, "Unknown", builder.PlatonicName(-1).String())
}
