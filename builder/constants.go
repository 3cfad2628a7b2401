// SPDX-License-Identifier: MIT
// Package: lvmesh/builder

package builder

// Constructor names used as error prefixes.
const (
	MethodGrid          = "Grid"
	MethodPolygon       = "Polygon"
	MethodWheel         = "Wheel"
	MethodAnnulus       = "Annulus"
	MethodPlatonicSolid = "PlatonicSolid"
)

// MinGridDim is the smallest grid side: a 2×2 grid is one cell (two triangles).
const MinGridDim = 2

// MinPolygonSides is the smallest polygon, and the smallest rim of Wheel and Annulus.
const MinPolygonSides = 3
