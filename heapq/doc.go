// Package heapq provides an indexed binary min-heap priority queue:
// a container that always surfaces its minimum-priority item first while
// additionally supporting O(log n) removal and priority change of
// *arbitrary* items, located through an internal item→index map.
//
// Overview:
//
//   - Entries are (item, priority) pairs. Items are opaque, uniquely
//     identified values (value equality); priorities are any type with a
//     total order supplied as an explicit comparator — there is no implicit
//     operator dispatch.
//   - The heap is array-backed with the classic dense layout: for index i,
//     children sit at 2i+1 and 2i+2 and the parent at (i-1)/2. The min-heap
//     invariant holds throughout: no child is strictly smaller than its parent.
//   - The item→index map is updated on every swap, insert, and removal. It is
//     the structure that makes Remove and ChangePriority O(log n) rather than
//     an O(n) scan, and it is also what enforces item uniqueness.
//
// When to use:
//
//   - As the ready-queue of a scheduler, ordered by deadline or urgency,
//     where jobs get cancelled (Remove) or re-prioritized (ChangePriority)
//     while queued.
//   - As the frontier of a best-first search (Dijkstra, A*) with *eager*
//     decrease-key: one heap entry per node, updated in place — see the
//     shortest package in this module.
//   - Anywhere repeated minimum extraction matters: heapsort, k-way merge,
//     event simulation.
//
// Key features:
//
//   - Functional options: WithComparator, WithCapacity, WithOverwrite.
//   - NewOrdered defaults the comparator to < for naturally ordered priorities.
//   - NewFromItems bulk-loads in O(n) via bottom-up heapify.
//   - Drain consumes the heap in non-decreasing priority order;
//     SortedSnapshot provides the same order without mutation.
//
// Duplicate-insert policy:
//
//   - By default Insert on an already-tracked item fails with
//     ErrDuplicateItem: the index map is keyed by item identity and a silent
//     overwrite would hide caller bugs.
//   - WithOverwrite opts into upsert semantics: Insert on a present item
//     updates its priority exactly as ChangePriority would.
//
// Ordering guarantees:
//
//   - Extraction yields items in non-decreasing priority order.
//   - Ties between equal priorities break arbitrarily (non-stable): among
//     equal-priority entries the extraction order is unspecified.
//
// Error handling (sentinel errors):
//
//   - ErrEmptyHeap:     FindMin, MinPriority or RemoveMin on an empty heap.
//   - ErrItemNotFound:  Remove, ChangePriority or Priority on an untracked item.
//   - ErrDuplicateItem: Insert on a tracked item (default policy), or a
//     repeated item in the NewFromItems input.
//   - ErrNilComparator: (panic) New without a comparator.
//   - ErrBadCapacity:   (panic) WithCapacity with a negative value.
//
// These are programming-contract violations, not transient failures: no
// retry is applicable and none is ever swallowed.
//
// Complexity:
//
//   - Insert, RemoveMin, Remove, ChangePriority: O(log n)
//   - FindMin, MinPriority, Priority, Contains, Len: O(1)
//   - NewFromItems: O(n); Drain, SortedSnapshot: O(n log n)
//
// Thread safety:
//
//   - A Heap is single-threaded and synchronous with no suspension points.
//     Concurrent hosts must serialize access externally; the scheduler
//     package wraps a Heap behind one mutex per operation for exactly that
//     purpose.
//
// See also:
//
//   - heapsort: bottom-up heapify + drain as a standalone sorting routine.
//   - baseline: unsorted- and sorted-list queues kept as benchmark contrast.
//   - shortest: Dijkstra consuming this heap with eager decrease-key.
package heapq
