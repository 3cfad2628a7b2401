// SPDX-License-Identifier: MIT
// Package: lvmesh/pool
//
// attachment.go - typed parallel arrays bound to a Pool.
//
// Contract:
//   • len(data) == pool.Capacity() from construction until Release.
//   • New slots (growth or create) hold the zero value of T, then the optional
//     init function runs on create.
//   • destroy resets the slot to the zero value so that stale pointers inside T
//     do not outlive their element.

package pool

// AttachmentOption configures an Attachment at construction.
type AttachmentOption[T any] func(*Attachment[T])

// WithInit installs fn as the create hook: it runs on the slot every time the
// pool hands the index out. Use it for sentinel defaults (e.g. NullIndex links).
// Panics on nil.
func WithInit[T any](fn func(*T)) AttachmentOption[T] {
	if fn == nil {
		panic("pool: WithInit(nil)")
	}
	return func(a *Attachment[T]) { a.init = fn }
}

// Attachment is a []T kept parallel to a Pool.
//
// Attachments that are constructed with the pool already populated see the
// zero value for every existing element; callers that need another default
// must write it explicitly after construction.
type Attachment[T any] struct {
	pool *Pool
	data []T
	init func(*T)
}

// NewAttachment binds a new attachment to p.
// Complexity: O(p.Capacity()).
func NewAttachment[T any](p *Pool, opts ...AttachmentOption[T]) *Attachment[T] {
	a := &Attachment[T]{pool: p}
	for _, opt := range opts {
		opt(a)
	}
	p.bind(a)

	return a
}

// Get returns the value stored for i. Panics if i is beyond capacity.
func (a *Attachment[T]) Get(i Index) T { return a.data[i] }

// Set stores v for i. Panics if i is beyond capacity.
func (a *Attachment[T]) Set(i Index, v T) { a.data[i] = v }

// Ptr returns a pointer into the backing slice. The pointer is invalidated by
// the next growth of the pool.
func (a *Attachment[T]) Ptr(i Index) *T { return &a.data[i] }

// Fill writes v into every active slot.
func (a *Attachment[T]) Fill(v T) {
	for i := range a.pool.All() {
		a.data[i] = v
	}
}

// Len reports the length of the backing slice (the pool's capacity).
func (a *Attachment[T]) Len() int { return len(a.data) }

// Release unbinds the attachment from its pool. The attachment must not be
// used afterwards. Releasing twice is harmless.
func (a *Attachment[T]) Release() {
	if a.pool == nil {
		return
	}
	a.pool.unbind(a)
	a.pool = nil
	a.data = nil
}

func (a *Attachment[T]) resize(n int) {
	if n <= len(a.data) {
		return
	}
	data := make([]T, n)
	copy(data, a.data)
	a.data = data
}

func (a *Attachment[T]) create(i Index) {
	var zero T
	a.data[i] = zero
	if a.init != nil {
		a.init(&a.data[i])
	}
}

func (a *Attachment[T]) destroy(i Index) {
	var zero T
	a.data[i] = zero
}
