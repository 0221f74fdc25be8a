// Package heapq implements an indexed binary min-heap priority queue.
//
// The heap stores (item, priority) entries in a dense 0-indexed array with
// the classic layout: children of index i live at 2i+1 and 2i+2, the parent
// at (i-1)/2. An auxiliary item→index map tracks each item's current slot,
// which is what upgrades arbitrary removal and priority change from an O(n)
// scan to O(log n) sift work.
//
// Complexity:
//
//   - Insert / RemoveMin / Remove / ChangePriority: O(log n)
//   - FindMin / MinPriority / Priority / Contains / Len: O(1)
//   - NewFromItems (bottom-up heapify): O(n)
//   - Drain / SortedSnapshot: O(n log n)
//
// The heap is not safe for concurrent use; a concurrent host must serialize
// access externally (see the scheduler package for one such wrapper).
package heapq

import (
	"cmp"
	"fmt"
)

// entry is one (item, priority) pair stored in the heap array.
// The heap exclusively owns its entries; callers only ever see item
// identities and priorities, never array positions.
type entry[T comparable, P any] struct {
	item T // opaque, uniquely-identified value (by value equality)
	pri  P // totally-ordered priority under the configured comparator
}

// Heap is an indexed binary min-heap keyed by item identity.
//
// Invariants maintained by every operation:
//   - heap order: less(data[parent(i)].pri, data[i].pri) is never false-inverted,
//     i.e. no child is strictly smaller than its parent;
//   - index consistency: index[data[i].item] == i for every occupied slot i.
//
// Ties between equal priorities break arbitrarily: extraction order among
// equals is unspecified (non-stable).
type Heap[T comparable, P any] struct {
	less      func(a, b P) bool // total order on priorities
	data      []entry[T, P]     // dense array-backed binary tree
	index     map[T]int         // item identity → current slot in data
	overwrite bool              // Insert-on-present policy
}

// New constructs an empty indexed heap from functional options.
// A comparator is mandatory: panics with ErrNilComparator if WithComparator
// was not supplied. Use NewOrdered for priorities with a natural < ordering.
func New[T comparable, P any](opts ...Option[P]) *Heap[T, P] {
	// 1) Build and validate Options.
	cfg := DefaultOptions[P]()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Less == nil {
		panic(ErrNilComparator.Error())
	}

	// 2) Allocate backing storage sized by the capacity hint.
	return &Heap[T, P]{
		less:      cfg.Less,
		data:      make([]entry[T, P], 0, cfg.Capacity),
		index:     make(map[T]int, cfg.Capacity),
		overwrite: cfg.Overwrite,
	}
}

// NewOrdered constructs an empty indexed heap over a naturally ordered
// priority type, defaulting the comparator to <. A WithComparator option,
// if supplied, overrides the default.
func NewOrdered[T comparable, P cmp.Ordered](opts ...Option[P]) *Heap[T, P] {
	return New[T](append([]Option[P]{WithComparator(cmp.Less[P])}, opts...)...)
}

// NewFromItems bulk-loads n items and their priorities, then establishes the
// heap invariant with a single bottom-up heapify pass: sift-down over every
// non-leaf index in reverse order. O(n) total, versus O(n log n) for n
// individual Inserts.
//
// Returns ErrDuplicateItem if the input contains the same item twice
// (regardless of the Overwrite option, which governs Insert only).
func NewFromItems[T comparable, P any](items []T, priority func(T) P, opts ...Option[P]) (*Heap[T, P], error) {
	// 1) Construct an empty heap carrying the caller's options plus a
	//    capacity hint covering the bulk load.
	h := New[T](append([]Option[P]{WithCapacity[P](len(items))}, opts...)...)

	// 2) Load all entries at their input positions, recording indexes as we go.
	//    Duplicate detection rides on the index map itself.
	for i, it := range items {
		if _, ok := h.index[it]; ok {
			return nil, fmt.Errorf("%w: %v at input position %d", ErrDuplicateItem, it, i)
		}
		h.data = append(h.data, entry[T, P]{item: it, pri: priority(it)})
		h.index[it] = i
	}

	// 3) Bottom-up heapify: every index ≥ n/2 is a leaf and already a valid
	//    one-element heap, so only the non-leaf indexes need a sift-down.
	n := len(h.data)
	for i := n/2 - 1; i >= 0; i-- {
		h.siftDown(i, n)
	}

	return h, nil
}

// Len returns the current entry count. O(1).
func (h *Heap[T, P]) Len() int { return len(h.data) }

// IsEmpty reports whether the heap holds no entries. O(1).
func (h *Heap[T, P]) IsEmpty() bool { return len(h.data) == 0 }

// Contains reports whether item is currently tracked by the heap. O(1).
func (h *Heap[T, P]) Contains(item T) bool {
	_, ok := h.index[item]

	return ok
}

// Insert appends a new (item, priority) entry at the tail, records its index,
// and restores the heap invariant by sifting up. O(log n).
//
// If item is already present, the duplicate-insert policy applies: the
// default rejects with ErrDuplicateItem; a heap built WithOverwrite updates
// the existing entry's priority instead (exactly as ChangePriority would).
func (h *Heap[T, P]) Insert(item T, priority P) error {
	// 1) Duplicate check against the index map.
	if i, ok := h.index[item]; ok {
		if !h.overwrite {
			return fmt.Errorf("%w: %v", ErrDuplicateItem, item)
		}
		// Overwrite policy: reduce to an in-place priority update.
		h.reprioritize(i, priority)

		return nil
	}

	// 2) Append at the tail and record the new slot.
	h.data = append(h.data, entry[T, P]{item: item, pri: priority})

	// 3) Sift the new entry up toward the root until its parent is no larger.
	h.siftUp(len(h.data) - 1)

	return nil
}

// FindMin returns the minimum-priority item without mutation.
// Returns ErrEmptyHeap if no entries exist. O(1).
func (h *Heap[T, P]) FindMin() (T, error) {
	if len(h.data) == 0 {
		var zero T

		return zero, ErrEmptyHeap
	}

	return h.data[0].item, nil
}

// MinPriority returns the priority of the minimum entry without mutation.
// Returns ErrEmptyHeap if no entries exist. O(1).
func (h *Heap[T, P]) MinPriority() (P, error) {
	if len(h.data) == 0 {
		var zero P

		return zero, ErrEmptyHeap
	}

	return h.data[0].pri, nil
}

// Priority returns the priority currently stored for item.
// Returns ErrItemNotFound if item is not tracked. O(1).
func (h *Heap[T, P]) Priority(item T) (P, error) {
	i, ok := h.index[item]
	if !ok {
		var zero P

		return zero, fmt.Errorf("%w: %v", ErrItemNotFound, item)
	}

	return h.data[i].pri, nil
}

// RemoveMin removes and returns the minimum-priority item: the root is
// captured, the tail entry moves into the root slot, the tail is popped, and
// sift-down restores the invariant. Returns ErrEmptyHeap if empty. O(log n).
func (h *Heap[T, P]) RemoveMin() (T, error) {
	// 1) Reject min-access on an empty heap.
	if len(h.data) == 0 {
		var zero T

		return zero, ErrEmptyHeap
	}

	// 2) Capture the root item and drop its index-map entry.
	top := h.data[0].item
	delete(h.index, top)

	// 3) Move the tail entry into the root slot and shrink the array.
	n := len(h.data) - 1
	h.data[0] = h.data[n]
	h.data[n] = entry[T, P]{} // release references held by the vacated tail
	h.data = h.data[:n]

	// 4) Sift the relocated entry down to its resting position.
	if n > 0 {
		h.siftDown(0, n)
	}

	return top, nil
}

// Remove deletes an arbitrary item: its slot is found through the index map,
// the entry is swapped to the tail and popped, and the replacement entry is
// sifted down — or up, if its priority is smaller than the vacated slot's
// parent. Returns ErrItemNotFound if item is absent. O(log n).
func (h *Heap[T, P]) Remove(item T) error {
	// 1) Locate the item's current slot.
	i, ok := h.index[item]
	if !ok {
		return fmt.Errorf("%w: %v", ErrItemNotFound, item)
	}

	// 2) Swap the doomed entry to the tail (no-op if it already is the tail).
	n := len(h.data) - 1
	if i != n {
		h.data[i], h.data[n] = h.data[n], h.data[i]
	}

	// 3) Pop the tail and drop the index-map entry.
	delete(h.index, item)
	h.data[n] = entry[T, P]{}
	h.data = h.data[:n]

	// 4) Restore the invariant from the vacated slot. The replacement came
	//    from the tail, so it may be too large (sift down) or too small for
	//    its new parent (sift up); only one direction can actually move it.
	if i != n {
		if !h.siftDown(i, n) {
			h.siftUp(i)
		}
	}

	return nil
}

// ChangePriority updates the stored priority for item and restores its
// position by running sift-up then sift-down from its slot. Only one
// direction can move the entry, so running both converges regardless of
// whether the priority increased or decreased.
// Returns ErrItemNotFound if item is absent. O(log n).
func (h *Heap[T, P]) ChangePriority(item T, priority P) error {
	i, ok := h.index[item]
	if !ok {
		return fmt.Errorf("%w: %v", ErrItemNotFound, item)
	}
	h.reprioritize(i, priority)

	return nil
}

// Drain removes every entry in non-decreasing priority order and returns the
// items as a slice. Draining is destructive and single-pass: the heap is
// empty afterwards. Use SortedSnapshot for a read-only ordered view.
// O(n log n).
func (h *Heap[T, P]) Drain() []T {
	out := make([]T, 0, len(h.data))
	for len(h.data) > 0 {
		// RemoveMin cannot fail here: the loop guard guarantees non-emptiness.
		item, _ := h.RemoveMin()
		out = append(out, item)
	}

	return out
}

// SortedSnapshot returns the items in non-decreasing priority order without
// mutating the heap: it drains a private copy. O(n) extra space, O(n log n)
// time.
func (h *Heap[T, P]) SortedSnapshot() []T {
	// Clone the backing array and index map, then drain the clone.
	c := &Heap[T, P]{
		less:      h.less,
		data:      make([]entry[T, P], len(h.data)),
		index:     make(map[T]int, len(h.index)),
		overwrite: h.overwrite,
	}
	copy(c.data, h.data)
	for k, v := range h.index {
		c.index[k] = v
	}

	return c.Drain()
}

// Clear drops all entries while retaining allocated capacity.
func (h *Heap[T, P]) Clear() {
	clear(h.data) // release references before truncating
	h.data = h.data[:0]
	clear(h.index)
}

// reprioritize overwrites the priority at slot i and restores the invariant
// by sifting in both directions. Callers guarantee i is a valid slot.
func (h *Heap[T, P]) reprioritize(i int, priority P) {
	item := h.data[i].item
	h.data[i].pri = priority
	h.siftUp(i)
	// siftUp may have relocated the entry; continue downward from wherever
	// it ended up.
	h.siftDown(h.index[item], len(h.data))
}

// siftUp moves the entry at slot j toward the root while it is strictly
// smaller than its parent, updating the index map for every displaced parent
// and finally for the entry itself.
func (h *Heap[T, P]) siftUp(j int) {
	for {
		i := (j - 1) / 2 // parent
		if i == j || !h.less(h.data[j].pri, h.data[i].pri) {
			break
		}
		h.index[h.data[i].item] = j // the displaced parent lands in slot j
		h.data[i], h.data[j] = h.data[j], h.data[i]
		j = i
	}
	h.index[h.data[j].item] = j
}

// siftDown moves the entry at slot i0 toward the leaves, swapping with the
// smaller of its children while that child is strictly smaller, within the
// first n slots. Reports whether the entry moved at all. The index map is
// updated for every displaced child and finally for the entry itself.
//
// Ties between equal-priority children break toward the left child; the
// resulting heap is valid either way, extraction order among equals is
// unspecified.
func (h *Heap[T, P]) siftDown(i0, n int) bool {
	i := i0
	for {
		l := 2*i + 1 // left child
		if l >= n || l < 0 {
			break // no children (l < 0 guards int overflow)
		}
		j := l
		if r := l + 1; r < n && h.less(h.data[r].pri, h.data[l].pri) {
			j = r // right child is strictly smaller
		}
		if !h.less(h.data[j].pri, h.data[i].pri) {
			break // smaller child is not smaller than the entry: done
		}
		h.index[h.data[j].item] = i // the promoted child lands in slot i
		h.data[i], h.data[j] = h.data[j], h.data[i]
		i = j
	}
	h.index[h.data[i].item] = i

	return i > i0
}
