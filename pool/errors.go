// SPDX-License-Identifier: MIT
// Package: lvmesh/pool
//
// errors.go - sentinel errors.

package pool

import "errors"

// ErrInactiveIndex indicates an operation referenced a slot that is not active
// (never allocated, already removed, or beyond capacity).
var ErrInactiveIndex = errors.New("pool: index is not active")
