// Package scheduler provides a mutex-serialized priority job queue over heapq.
package scheduler

import (
	"cmp"
	"context"
	"sync"

	"github.com/katalvlaran/pqheap/heapq"
)

// Queue is a concurrency-safe priority job queue: an indexed binary heap with
// exactly one lock around each heap operation. Job identities are unique;
// the duplicate and not-found conditions are heapq's own sentinels.
type Queue[T comparable, P any] struct {
	mu   sync.Mutex
	heap *heapq.Heap[T, P]
}

// New constructs an empty queue over a naturally ordered priority type
// (smaller priority value = more urgent).
func New[T comparable, P cmp.Ordered]() *Queue[T, P] {
	return &Queue[T, P]{heap: heapq.NewOrdered[T, P]()}
}

// NewFunc constructs an empty queue over an explicit priority comparator.
// Panics with heapq.ErrNilComparator if less is nil.
func NewFunc[T comparable, P any](less func(a, b P) bool) *Queue[T, P] {
	return &Queue[T, P]{heap: heapq.New[T](heapq.WithComparator(less))}
}

// Submit enqueues a job with the given priority.
// Returns heapq.ErrDuplicateItem if the job is already queued.
func (q *Queue[T, P]) Submit(job T, priority P) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.heap.Insert(job, priority)
}

// Cancel removes a queued job.
// Returns heapq.ErrItemNotFound if the job is not queued.
func (q *Queue[T, P]) Cancel(job T) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.heap.Remove(job)
}

// Reprioritize changes a queued job's priority in place.
// Returns heapq.ErrItemNotFound if the job is not queued.
func (q *Queue[T, P]) Reprioritize(job T, priority P) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.heap.ChangePriority(job, priority)
}

// Next removes and returns the most urgent job.
// Returns heapq.ErrEmptyHeap if the queue is empty.
func (q *Queue[T, P]) Next() (T, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.heap.RemoveMin()
}

// Peek returns the most urgent job without removing it.
// Returns heapq.ErrEmptyHeap if the queue is empty.
func (q *Queue[T, P]) Peek() (T, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.heap.FindMin()
}

// Len returns the number of queued jobs.
func (q *Queue[T, P]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.heap.Len()
}

// DrainTo pops jobs in priority order and passes each to fn until the queue
// is empty, the context is cancelled, or fn returns an error.
//
// The lock is held only around each pop, never across fn, so producers may
// keep submitting while a drain is in flight; jobs submitted mid-drain are
// picked up in their proper priority position.
//
// On cancellation DrainTo returns ctx.Err(); on a callback failure it returns
// that error. Either way the undrained jobs remain queued. A job already
// handed to fn is consumed regardless of the outcome.
func (q *Queue[T, P]) DrainTo(ctx context.Context, fn func(job T) error) error {
	for {
		// 1) Honor cancellation between jobs.
		if err := ctx.Err(); err != nil {
			return err
		}

		// 2) Pop the most urgent job under the lock.
		job, err := q.Next()
		if err != nil {
			// Empty queue ends the drain successfully.
			return nil
		}

		// 3) Run the consumer outside the lock.
		if err = fn(job); err != nil {
			return err
		}
	}
}
