// Package matrix offers dense row-major matrices for exporting mesh
// connectivity to linear-algebra routines.
//
// What & Why:
//
//	Mesh processing (fairing, smoothing, spectral analysis) works on
//	vertex-by-vertex or vertex-by-edge operators. Dense stores such operators
//	in a flat []float64 with the explicit offset i*cols + j, and MulVec applies
//	them to per-vertex data.
//
// Complexity:
//
//	NewDense O(r·c); Rows/Cols/At/Set O(1); Clone O(r·c); MulVec O(r·c).
//
// Errors:
//
//	ErrInvalidDimensions – non-positive shape
//	ErrIndexOutOfBounds  – At/Set outside the matrix
//	ErrDimensionMismatch – MulVec vector length ≠ Cols()
package matrix
