// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wakeq

import (
	"sync/atomic"

	"code.hybscloud.com/spin"
)

// QueueOf is the payload flavor of [Queue]: callbacks receive the value
// passed to WakeAll. Use it to broadcast a result (or an error) to
// every party waiting on it.
//
// Same algorithm, same contract: lock-free multi-producer Register,
// single-drainer WakeAll, each callback invoked exactly once. The zero
// QueueOf is empty and ready to use.
type QueueOf[T any] struct {
	_     pad
	head  atomic.Pointer[nodeOf[T]]
	_     pad
	tail  atomic.Pointer[nodeOf[T]]
	_     pad
	drain drainGuard
}

type nodeOf[T any] struct {
	next atomic.Pointer[nodeOf[T]]
	fn   func(T)
}

// NewOf creates an empty payload queue.
// Equivalent to new(QueueOf[T]).
func NewOf[T any]() *QueueOf[T] {
	return &QueueOf[T]{}
}

// Register enqueues a one-shot callback (multiple producers safe).
//
// Lock-free, never blocks, one allocation. Panics if fn is nil.
func (q *QueueOf[T]) Register(fn func(T)) {
	if fn == nil {
		panic("wakeq: nil callback")
	}

	n := &nodeOf[T]{fn: fn}

	prev := q.tail.Swap(n)
	if prev != nil {
		prev.next.Store(n)
		return
	}

	// Nil tail with a concurrent drain mid-detach: head may still hold
	// the old chain. CAS until the drain clears it.
	sw := spin.Wait{}
	for !q.head.CompareAndSwap(nil, n) {
		sw.Once()
	}
}

// Wait registers a callback that delivers the broadcast value on the
// returned channel. The channel receives exactly one value, sent by the
// next WakeAll (never by Close).
func (q *QueueOf[T]) Wait() <-chan T {
	ch := make(chan T, 1)
	q.Register(func(v T) { ch <- v })
	return ch
}

// WakeAll detaches every currently registered callback, invokes each
// exactly once with v in registration order, and returns the number
// invoked (single drainer only).
//
// A callback is captured by this call iff its Register's tail swap
// happened before this call's tail swap. Returns 0 immediately on an
// empty queue. Concurrent drains are undefined behavior.
func (q *QueueOf[T]) WakeAll(v T) int {
	q.drain.enter()
	defer q.drain.leave()

	tail := q.tail.Swap(nil)
	if tail == nil {
		return 0
	}

	sw := spin.Wait{}
	head := q.head.Swap(nil)
	for head == nil {
		sw.Once()
		head = q.head.Swap(nil)
	}

	n := head
	woken := 0
	for {
		fn := n.fn
		n.fn = nil
		fn(v)
		woken++

		if n == tail {
			return woken
		}

		next := n.next.Load()
		sw.Reset()
		for next == nil {
			sw.Once()
			next = n.next.Load()
		}
		n = next
	}
}

// Close tears the queue down, discarding every pending callback without
// invoking it. Requires full exclusivity. The queue is empty afterward;
// a second Close is a no-op.
//
// Panics if the chain ends before the recorded tail (lost node or a
// violated exclusivity precondition).
func (q *QueueOf[T]) Close() {
	q.drain.enter()
	defer q.drain.leave()

	head := q.head.Swap(nil)
	tail := q.tail.Swap(nil)

	for head != tail {
		if head == nil {
			panic("wakeq: chain ended before tail during Close")
		}
		next := head.next.Load()
		head.next.Store(nil)
		head.fn = nil
		head = next
	}
	if head != nil {
		head.fn = nil
	}
}
