// Package heapsort implements heapsort on top of the indexed binary heap.
package heapsort

import (
	"cmp"

	"github.com/katalvlaran/pqheap/heapq"
)

// Sort returns a new slice holding items in non-decreasing order of
// priority(item), for priorities with a natural < ordering.
// The input slice is left untouched. Not stable. O(n log n).
func Sort[T any, P cmp.Ordered](items []T, priority func(T) P) []T {
	return SortFunc(items, priority, cmp.Less[P])
}

// SortFunc returns a new slice holding items in non-decreasing priority
// order under the supplied comparator. The input slice is left untouched.
// Not stable. O(n log n).
func SortFunc[T, P any](items []T, priority func(T) P, less func(a, b P) bool) []T {
	// 1) Key the heap by input position rather than by element value: positions
	//    are trivially unique, so duplicate elements cost nothing, and T stays
	//    unconstrained.
	positions := make([]int, len(items))
	for i := range positions {
		positions[i] = i
	}

	// 2) Bulk-load and heapify in O(n). Positions are unique, so the
	//    duplicate-input error cannot fire.
	h, _ := heapq.NewFromItems(positions,
		func(i int) P { return priority(items[i]) },
		heapq.WithComparator(less))

	// 3) Drain positions in priority order and project them back onto items.
	out := make([]T, 0, len(items))
	for _, i := range h.Drain() {
		out = append(out, items[i])
	}

	return out
}
