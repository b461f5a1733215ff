package app

import (
	"context"
	"sync"

	"github.com/dshills/modal/internal/input"
)

// ActionQueue is an unbounded FIFO between the input producer and the
// dispatch loop. Push never blocks; Pop blocks until an action arrives.
// It supports any number of producers and a single consumer.
type ActionQueue struct {
	mu     sync.Mutex
	items  []input.Action
	closed bool

	// ready holds at most one wakeup token for the consumer.
	ready chan struct{}
	done  chan struct{}

	pushed    uint64
	highWater int
}

// NewActionQueue creates an empty queue.
func NewActionQueue() *ActionQueue {
	return &ActionQueue{
		ready: make(chan struct{}, 1),
		done:  make(chan struct{}),
	}
}

// Push appends an action. It reports false if the queue is closed.
func (q *ActionQueue) Push(a input.Action) bool {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return false
	}
	q.items = append(q.items, a)
	q.pushed++
	q.highWater = max(q.highWater, len(q.items))
	q.mu.Unlock()

	q.signal()
	return true
}

// Pop removes and returns the oldest action. It blocks until an action is
// available, ctx is done, or the queue is closed and drained.
func (q *ActionQueue) Pop(ctx context.Context) (input.Action, error) {
	for {
		if a, ok := q.tryPop(); ok {
			return a, nil
		}

		q.mu.Lock()
		closed := q.closed && len(q.items) == 0
		q.mu.Unlock()
		if closed {
			return input.Action{}, ErrQueueClosed
		}

		select {
		case <-q.ready:
		case <-q.done:
		case <-ctx.Done():
			return input.Action{}, ctx.Err()
		}
	}
}

// tryPop removes the oldest action without blocking.
func (q *ActionQueue) tryPop() (input.Action, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		return input.Action{}, false
	}
	a := q.items[0]
	q.items[0] = input.Action{}
	q.items = q.items[1:]
	if len(q.items) == 0 {
		q.items = nil
	}
	return a, true
}

// Close stops accepting actions and wakes a blocked Pop.
// Actions already queued can still be popped.
func (q *ActionQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}
	q.closed = true
	close(q.done)
}

// Len returns the number of queued actions.
func (q *ActionQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Stats returns the total number of pushes and the deepest the queue has been.
func (q *ActionQueue) Stats() (pushed uint64, highWater int) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.pushed, q.highWater
}

// signal leaves a wakeup token if none is pending.
func (q *ActionQueue) signal() {
	select {
	case q.ready <- struct{}{}:
	default:
	}
}
