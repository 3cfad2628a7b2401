package builder_test

import (
	"fmt"

	"github.com/katalvlaran/lvmesh/builder"
)

// ExampleBuildMesh builds the 10×10 grid fixture and reports its locked counts.
func ExampleBuildMesh() {
	m, err := builder.BuildMesh(nil, []builder.BuilderOption{builder.WithLock()}, builder.Grid(10, 10))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	edges, _ := m.NumEdges()
	loops, _ := m.NumBoundaryLoops()
	fmt.Println(m.NumVertices(), m.NumFaces(), m.NumHalfedges(), edges, loops)
	// Output:
	// 100 162 522 261 1
}

// ExamplePlatonicSolid composes two closed solids into one mesh.
func ExamplePlatonicSolid() {
	m, err := builder.BuildMesh(nil, []builder.BuilderOption{builder.WithLock()},
		builder.PlatonicSolid(builder.Dodecahedron),
		builder.PlatonicSolid(builder.Octahedron),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	components, _ := m.NumConnectedComponents()
	compact, _ := m.Compact()
	closed, _ := m.Closed()
	fmt.Println(components, closed, compact)
	// Output:
	// 2 true false
}
