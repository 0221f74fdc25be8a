// Package heapq defines the configuration surface and error values for the
// indexed binary-heap priority queue.
//
// The queue orders items by an externally supplied priority under a
// caller-provided comparator; see doc.go for the full package overview.
//
// Errors (sentinel):
//
//	– ErrEmptyHeap      if FindMin/MinPriority/RemoveMin is called on an empty heap.
//	– ErrItemNotFound   if Remove/ChangePriority/Priority references an untracked item.
//	– ErrDuplicateItem  if Insert is called with an item already tracked (default policy).
//	– ErrNilComparator  (via panic) if a heap is constructed without a comparator.
//	– ErrBadCapacity    (via panic) if WithCapacity receives a negative value.
package heapq

import "errors"

// Sentinel errors returned by heap operations.
var (
	// ErrEmptyHeap indicates a min-access operation on a heap with no entries.
	// It is always surfaced to the caller; the heap never recovers silently.
	ErrEmptyHeap = errors.New("heapq: empty heap")

	// ErrItemNotFound indicates that the referenced item is not tracked by the
	// heap's item→index map.
	ErrItemNotFound = errors.New("heapq: item not found")

	// ErrDuplicateItem indicates that Insert was called with an item that is
	// already present. Construct the heap WithOverwrite to turn such inserts
	// into priority updates instead.
	ErrDuplicateItem = errors.New("heapq: duplicate item")

	// ErrNilComparator indicates that New was called without WithComparator.
	// Use NewOrdered for priorities with a natural < ordering.
	ErrNilComparator = errors.New("heapq: comparator is nil")

	// ErrBadCapacity indicates that WithCapacity was given a negative value.
	ErrBadCapacity = errors.New("heapq: capacity must be non-negative")
)

// Options configures heap construction.
//
// Less      – comparator establishing the total order on priorities;
//
//	Less(a, b) == true means a has strictly higher urgency (a extracts first).
//
// Capacity  – initial capacity for the backing array and index map. Must be ≥ 0.
// Overwrite – duplicate-insert policy: when true, Insert on a present item
//
//	behaves as ChangePriority; when false (default), it fails with
//	ErrDuplicateItem.
type Options[P any] struct {
	Less      func(a, b P) bool // total order on priorities; nil is rejected by New
	Capacity  int               // initial capacity hint for data and index map
	Overwrite bool              // Insert-on-present policy (reject vs. update)
}

// Option represents a functional option for configuring a Heap.
type Option[P any] func(*Options[P])

// WithComparator sets the priority comparator. Less(a, b) must describe a
// strict weak ordering; the heap extracts items in non-decreasing order
// under it.
func WithComparator[P any](less func(a, b P) bool) Option[P] {
	return func(o *Options[P]) {
		o.Less = less
	}
}

// WithCapacity pre-allocates the backing array and the item→index map for n
// entries. Must pass a non-negative value; negative values panic with
// ErrBadCapacity.
func WithCapacity[P any](n int) Option[P] {
	return func(o *Options[P]) {
		if n < 0 {
			// Panic to signal invalid configuration early, before any entries exist.
			panic(ErrBadCapacity.Error())
		}
		o.Capacity = n
	}
}

// WithOverwrite switches the duplicate-insert policy from reject to update:
// Insert on an already-present item updates its priority in place (exactly as
// ChangePriority would) instead of failing with ErrDuplicateItem.
func WithOverwrite[P any]() Option[P] {
	return func(o *Options[P]) {
		o.Overwrite = true
	}
}

// DefaultOptions returns an Options struct initialized with the package
// defaults. Use this as a starting point for functional-option overrides.
//
// Defaults:
//   - Less:      nil (must be set via WithComparator or NewOrdered).
//   - Capacity:  0 (grow on demand).
//   - Overwrite: false (duplicate inserts fail with ErrDuplicateItem).
func DefaultOptions[P any]() Options[P] {
	return Options[P]{
		Less:      nil,
		Capacity:  0,
		Overwrite: false,
	}
}
