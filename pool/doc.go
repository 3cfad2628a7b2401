// Package pool provides the element storage engine used by the mesh kernel:
// a free-list index allocator (Pool) and typed parallel arrays (Attachment)
// that stay length-synchronized with the pool they are bound to.
//
// What:
//
//   - Pool hands out small unsigned indices, reuses them after removal and
//     never compacts or reorders live indices.
//   - Attachment[T] is a []T whose length always equals the capacity of its
//     pool. Any number of attachments may bind to the same pool.
//   - The pool drives its attachments through a three-method hook contract:
//     resize(n) on growth, create(i) on Add, destroy(i) on Remove.
//
// Why:
//
//   - Per-element data lives in columns (struct-of-arrays) that can be added
//     and dropped by collaborators at any time without touching the element
//     kind itself (positions, visited flags, contiguous export indices, …).
//   - Index stability under unrelated removals is what lets handles be plain
//     (container, index) values.
//
// Invariants:
//
//   - Capacity() ≥ 1 at all times; capacity only grows, by doubling.
//   - len(attachment data) == Capacity() for every bound attachment.
//   - Len() equals the number of active slots.
//   - All() yields active indices in ascending order.
//
// Complexity:
//
//   - Add:    amortized O(1) plus O(A) hook calls (A = bound attachments);
//     a growth step costs O(capacity·A).
//   - Remove: O(A).
//   - All:    O(capacity).
//
// Errors:
//
//   - ErrInactiveIndex: Remove on an index that is not currently active.
//
// The package is not safe for concurrent use; callers synchronize externally.
package pool
