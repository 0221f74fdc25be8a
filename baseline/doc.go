// Package baseline carries two deliberately naive priority-queue
// implementations — an unsorted list and a sorted list — kept as reference
// baselines for benchmarking the indexed binary heap against, not as part of
// the reusable core.
//
// Contract:
//
//   - Both types implement the minimal subset Insert / FindMin / RemoveMin /
//     Len with the same ErrEmptyHeap condition as heapq, so benchmarks can
//     drive all three uniformly.
//   - Neither tracks item identity: duplicates are allowed and there is no
//     keyed Remove or ChangePriority. That is precisely the capability the
//     heap's index map adds.
//
// Complexity contrast (n = queue length):
//
//	                Insert    FindMin   RemoveMin
//	UnsortedPQ      O(1)      O(n)      O(n)
//	SortedPQ        O(n)      O(1)      O(1)
//	heapq.Heap      O(log n)  O(1)      O(log n)
//
// bench_test.go measures the three side by side on identical workloads.
package baseline
