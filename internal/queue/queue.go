// Package queue provides the unbounded FIFO shared between a front-end and the game loop.
package queue

import (
	"context"
	"sync"
)

// Queue is an unbounded first-in-first-out queue safe for concurrent use.
type Queue[T any] struct {
	lock  sync.Mutex
	items []T
	ready chan struct{}
}

func New[T any]() *Queue[T] {
	return &Queue[T]{
		ready: make(chan struct{}, 1),
	}
}

// Enqueue adds an item to the end of the queue. It never blocks beyond the lock.
func (q *Queue[T]) Enqueue(item T) {
	q.lock.Lock()
	q.items = append(q.items, item)
	q.lock.Unlock()

	select {
	case q.ready <- struct{}{}:
	default:
	}
}

// TryDequeue removes the item at the front of the queue, if any.
func (q *Queue[T]) TryDequeue() (T, bool) {
	q.lock.Lock()
	defer q.lock.Unlock()

	var zero T
	if len(q.items) == 0 {
		return zero, false
	}

	item := q.items[0]
	q.items[0] = zero
	q.items = q.items[1:]

	return item, true
}

// Dequeue blocks until an item is available or ctx is done.
func (q *Queue[T]) Dequeue(ctx context.Context) (T, error) {
	for {
		if item, ok := q.TryDequeue(); ok {
			return item, nil
		}

		select {
		case <-q.ready:
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		}
	}
}

// Size returns the current size of the queue.
func (q *Queue[T]) Size() int {
	q.lock.Lock()
	defer q.lock.Unlock()
	return len(q.items)
}

// Clear drops all pending items.
func (q *Queue[T]) Clear() {
	q.lock.Lock()
	defer q.lock.Unlock()
	q.items = nil
}
