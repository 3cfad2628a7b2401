// SPDX-License-Identifier: MIT
// Package: lvmesh/pool
//
// pool.go - free-list index allocator.
//
// Contract:
//   • Add never fails; it grows capacity geometrically (×2) when every slot
//     below capacity is active.
//   • Remove requires an active index; it does not move any other index.
//   • Bound attachments observe every resize/create/destroy in order.

package pool

import (
	"fmt"
	"iter"
	"math"
	"strings"
)

// Index identifies one slot of a Pool.
type Index = uint32

// NullIndex is the reserved sentinel meaning "no element".
const NullIndex Index = math.MaxUint32

// DefaultCapacity is the capacity of a pool built with New(0).
const DefaultCapacity = 1

// hook is the capability a Pool needs from everything bound to it.
// Attachment[T] is the only implementation.
type hook interface {
	resize(n int)
	create(i Index)
	destroy(i Index)
}

// Pool is a free-list allocator for one element kind.
//
// The zero value is not usable; construct with New.
type Pool struct {
	active []bool
	hooks  []hook
	count  int   // cached number of active slots
	cursor Index // lowest index that might be free
}

// New returns an empty pool with the given initial capacity.
// Capacities below 1 are raised to DefaultCapacity.
// Complexity: O(capacity).
func New(capacity int) *Pool {
	if capacity < DefaultCapacity {
		capacity = DefaultCapacity
	}

	return &Pool{active: make([]bool, capacity)}
}

// Capacity reports the number of slots, active or not.
func (p *Pool) Capacity() int { return len(p.active) }

// Len reports the number of active slots. O(1).
func (p *Pool) Len() int { return p.count }

// Active reports whether i is a live slot. Out-of-range indices are inactive.
func (p *Pool) Active(i Index) bool {
	return int64(i) < int64(len(p.active)) && p.active[i]
}

// Add claims a free slot and returns its index.
//
// Implementation:
//   - Stage 1: scan from the cursor for the first inactive slot.
//   - Stage 2: if none exists, double the capacity and resize every bound attachment.
//   - Stage 3: fire create hooks, mark active, advance the cursor.
//
// Complexity: amortized O(1) + O(A).
func (p *Pool) Add() Index {
	n := len(p.active)
	i := int(p.cursor)
	for i < n && p.active[i] {
		i++
	}
	if i == n {
		p.grow(2 * n)
	}

	idx := Index(i)
	for _, h := range p.hooks {
		h.create(idx)
	}
	p.active[i] = true
	p.cursor = idx + 1
	p.count++

	return idx
}

// Remove releases slot i. The index may be handed out again by a later Add.
// Returns ErrInactiveIndex if i is not active; the pool is unchanged in that case.
// Complexity: O(A).
func (p *Pool) Remove(i Index) error {
	if !p.Active(i) {
		return fmt.Errorf("Remove(%d): %w", i, ErrInactiveIndex)
	}
	if i < p.cursor {
		p.cursor = i
	}
	for _, h := range p.hooks {
		h.destroy(i)
	}
	p.active[i] = false
	p.count--

	return nil
}

// Clear removes every active slot, firing destroy hooks in ascending order.
// Capacity is kept.
func (p *Pool) Clear() {
	for i, on := range p.active {
		if !on {
			continue
		}
		for _, h := range p.hooks {
			h.destroy(Index(i))
		}
		p.active[i] = false
	}
	p.count = 0
	p.cursor = 0
}

// All yields active indices in ascending order. The sequence is lazy and may be
// ranged over any number of times, but the pool must not be mutated while a
// range over it is in progress.
func (p *Pool) All() iter.Seq[Index] {
	return func(yield func(Index) bool) {
		for i, on := range p.active {
			if on && !yield(Index(i)) {
				return
			}
		}
	}
}

// String renders the active flags as a bitmap, e.g. "1101 (4)".
func (p *Pool) String() string {
	var sb strings.Builder
	sb.Grow(len(p.active) + 8)
	for _, on := range p.active {
		if on {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	fmt.Fprintf(&sb, " (%d)", len(p.active))

	return sb.String()
}

// grow extends the flag slice and every bound attachment to n slots.
func (p *Pool) grow(n int) {
	flags := make([]bool, n)
	copy(flags, p.active)
	p.active = flags
	for _, h := range p.hooks {
		h.resize(n)
	}
}

// bind registers h; h is immediately resized to the current capacity.
func (p *Pool) bind(h hook) {
	h.resize(len(p.active))
	p.hooks = append(p.hooks, h)
}

// unbind removes h; unknown hooks are ignored.
func (p *Pool) unbind(h hook) {
	for i, x := range p.hooks {
		if x == h {
			p.hooks = append(p.hooks[:i], p.hooks[i+1:]...)
			return
		}
	}
}
