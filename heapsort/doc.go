// Package heapsort sorts arbitrary slices by a priority key using the
// indexed binary heap: bulk-load in O(n) via bottom-up heapify, then drain
// by repeated minimum extraction for O(n log n) total.
//
// Overview:
//
//   - Sort and SortFunc never mutate the input slice; they return a freshly
//     allocated, priority-ordered copy.
//   - Elements are keyed by their input position internally, so duplicate
//     values are perfectly fine — the element type carries no constraints
//     beyond what the priority function needs.
//   - The sort is NOT stable: elements with equal priorities may appear in
//     either order, mirroring the heap's unspecified tie-breaking.
//
// Complexity:
//
//   - Time:  O(n log n) — O(n) heapify plus n extractions at O(log n) each.
//   - Space: O(n) for the position heap and the output slice.
//
// API reference:
//
//	func Sort[T any, P cmp.Ordered](items []T, priority func(T) P) []T
//	func SortFunc[T, P any](items []T, priority func(T) P, less func(a, b P) bool) []T
//
// See also:
//
//   - heapq.NewFromItems for the heapify pass this package rides on.
//   - baseline for the O(n²) list-based contrast measured in bench_test.go.
package heapsort
