// Package pqheap is a small family of packages built around one container:
// an indexed binary min-heap priority queue — array-backed, with an
// item→index map that turns arbitrary removal and priority change into
// O(log n) operations.
//
// 🚀 What is pqheap?
//
//	A pure-Go toolkit for priority-ordered work:
//		• heapq/     — the indexed heap itself: Insert, FindMin, RemoveMin,
//		               Remove, ChangePriority, Drain, bulk O(n) heapify
//		• heapsort/  — heapify-then-drain sorting with an explicit key function
//		• baseline/  — unsorted- and sorted-list queues kept as benchmark contrast
//		• scheduler/ — a mutex-serialized job queue host with context-aware drain
//		• shortest/  — Dijkstra with an eager decrease-key frontier (one heap
//		               entry per vertex, updated in place)
//
// ✨ Why choose pqheap?
//
//   - Explicit ordering – priorities are compared through an injected
//     comparator, never through implicit operator dispatch
//   - Honest contracts – duplicate inserts, empty-heap access and unknown
//     items surface as sentinel errors, never as silent recovery
//   - Pure Go – no cgo, no hidden deps
//   - Measured claims – the baselines exist so the heap's O(log n) is a
//     benchmark result, not a slogan
//
// Quick taste:
//
//	h := heapq.NewOrdered[string, int]()
//	_ = h.Insert("flush", 10)
//	_ = h.Insert("compact", 30)
//	_ = h.ChangePriority("compact", 1) // escalate in O(log n)
//	next, _ := h.RemoveMin()           // "compact"
//
// Each package carries its own doc.go with the full contract, complexity
// notes and error catalogue; start with heapq.
//
//	go get github.com/katalvlaran/pqheap
package pqheap
