// Package baseline implements list-based priority queues for benchmark contrast.
package baseline

import (
	"sort"

	"github.com/katalvlaran/pqheap/heapq"
)

// entry pairs an item with its priority; both baselines store these directly.
type entry[T, P any] struct {
	item T
	pri  P
}

// UnsortedPQ is a priority queue over an unordered slice: constant-time
// insert, linear-time minimum access. Duplicates are allowed.
type UnsortedPQ[T, P any] struct {
	less func(a, b P) bool
	data []entry[T, P]
}

// NewUnsorted constructs an empty unsorted-list queue over the given
// comparator. Panics with heapq.ErrNilComparator if less is nil.
func NewUnsorted[T, P any](less func(a, b P) bool) *UnsortedPQ[T, P] {
	if less == nil {
		panic(heapq.ErrNilComparator.Error())
	}

	return &UnsortedPQ[T, P]{less: less}
}

// Len returns the current entry count. O(1).
func (q *UnsortedPQ[T, P]) Len() int { return len(q.data) }

// Insert appends the entry at the tail. O(1).
func (q *UnsortedPQ[T, P]) Insert(item T, priority P) {
	q.data = append(q.data, entry[T, P]{item: item, pri: priority})
}

// FindMin scans for the minimum-priority item without mutation.
// Returns heapq.ErrEmptyHeap if no entries exist. O(n).
func (q *UnsortedPQ[T, P]) FindMin() (T, error) {
	i, err := q.argmin()
	if err != nil {
		var zero T

		return zero, err
	}

	return q.data[i].item, nil
}

// RemoveMin scans for the minimum-priority entry, removes it by swapping the
// tail into its slot, and returns the item.
// Returns heapq.ErrEmptyHeap if no entries exist. O(n).
func (q *UnsortedPQ[T, P]) RemoveMin() (T, error) {
	i, err := q.argmin()
	if err != nil {
		var zero T

		return zero, err
	}
	item := q.data[i].item

	// Order is irrelevant in an unsorted list: swap-delete from the tail.
	n := len(q.data) - 1
	q.data[i] = q.data[n]
	q.data[n] = entry[T, P]{}
	q.data = q.data[:n]

	return item, nil
}

// argmin returns the slot of the minimum-priority entry.
func (q *UnsortedPQ[T, P]) argmin() (int, error) {
	if len(q.data) == 0 {
		return 0, heapq.ErrEmptyHeap
	}
	best := 0
	for i := 1; i < len(q.data); i++ {
		if q.less(q.data[i].pri, q.data[best].pri) {
			best = i
		}
	}

	return best, nil
}

// SortedPQ is a priority queue over a slice kept sorted in non-increasing
// priority order, so the minimum always sits at the tail: linear-time insert,
// constant-time minimum access. Duplicates are allowed.
type SortedPQ[T, P any] struct {
	less func(a, b P) bool
	data []entry[T, P] // non-increasing by priority; minimum at the tail
}

// NewSorted constructs an empty sorted-list queue over the given comparator.
// Panics with heapq.ErrNilComparator if less is nil.
func NewSorted[T, P any](less func(a, b P) bool) *SortedPQ[T, P] {
	if less == nil {
		panic(heapq.ErrNilComparator.Error())
	}

	return &SortedPQ[T, P]{less: less}
}

// Len returns the current entry count. O(1).
func (q *SortedPQ[T, P]) Len() int { return len(q.data) }

// Insert places the entry at its ordered position, found by binary search and
// opened up with a single shift. O(log n) search, O(n) shift.
func (q *SortedPQ[T, P]) Insert(item T, priority P) {
	// First slot whose priority is strictly smaller than the new one; inserting
	// there keeps the slice non-increasing.
	i := sort.Search(len(q.data), func(i int) bool {
		return q.less(q.data[i].pri, priority)
	})
	q.data = append(q.data, entry[T, P]{})
	copy(q.data[i+1:], q.data[i:])
	q.data[i] = entry[T, P]{item: item, pri: priority}
}

// FindMin returns the tail item without mutation.
// Returns heapq.ErrEmptyHeap if no entries exist. O(1).
func (q *SortedPQ[T, P]) FindMin() (T, error) {
	if len(q.data) == 0 {
		var zero T

		return zero, heapq.ErrEmptyHeap
	}

	return q.data[len(q.data)-1].item, nil
}

// RemoveMin pops the tail entry and returns its item.
// Returns heapq.ErrEmptyHeap if no entries exist. O(1).
func (q *SortedPQ[T, P]) RemoveMin() (T, error) {
	n := len(q.data) - 1
	if n < 0 {
		var zero T

		return zero, heapq.ErrEmptyHeap
	}
	item := q.data[n].item
	q.data[n] = entry[T, P]{}
	q.data = q.data[:n]

	return item, nil
}
