// Package scheduler wraps the indexed binary heap as a concurrency-safe job
// queue: the host-side serialization layer the core heap deliberately leaves
// out.
//
// Overview:
//
//   - The heap itself is single-threaded; Queue serializes every heap
//     operation behind one mutex, which is the entire concurrency contract —
//     no lock-free tricks, no per-operation granularity games.
//   - Jobs are submitted with a priority, may be cancelled or re-prioritized
//     while queued (the indexed heap's keyed operations, under the same
//     lock), and are handed out strictly in priority order.
//   - DrainTo pops jobs one at a time and feeds them to a callback, checking
//     the context between jobs so a slow consumer can be cancelled cleanly.
//
// Error handling:
//
//   - Submit, Cancel, Reprioritize and Next surface the heapq sentinel errors
//     unchanged (ErrDuplicateItem, ErrItemNotFound, ErrEmptyHeap).
//   - DrainTo returns ctx.Err() on cancellation and the callback's first
//     error otherwise; in both cases the remaining jobs stay queued.
//
// Typical shape:
//
//	q := scheduler.New[string, int]()
//	_ = q.Submit("compact-segment", 30)
//	_ = q.Submit("flush-wal", 10)
//	_ = q.Reprioritize("compact-segment", 5)
//	err := q.DrainTo(ctx, func(job string) error {
//	    return run(job)
//	})
//
// Thread safety: all methods may be called from any goroutine.
package scheduler
