// SPDX-License-Identifier: MIT
// Package: lvmesh/builder

package builder

import "fmt"

// validateMin ensures got ≥ min, else returns "<method>: parameter must be ≥ min, got …".
func validateMin(method string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: parameter must be ≥ %d, got %d: %w", method, min, got, ErrTooFewVertices)
	}
	return nil
}
