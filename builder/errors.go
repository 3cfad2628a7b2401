// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only package-level sentinels; branch with errors.Is.
//   • Constructors attach context with "%s: ...: %w" (method name first).
//   • Runtime code never panics; option constructors may (programmer error).

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, x, y) is smaller than
// the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrOptionViolation indicates an invalid enumerated parameter, e.g. an
// unknown PlatonicName.
var ErrOptionViolation = errors.New("builder: invalid option supplied")

// ErrConstructFailed indicates the mesh rejected a face emitted by a
// constructor, or a nil constructor was passed to BuildMesh. The underlying
// mesh error stays reachable through errors.Is.
var ErrConstructFailed = errors.New("builder: construction failed")
