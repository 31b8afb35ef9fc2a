// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wakeq

import (
	"sync/atomic"

	"code.hybscloud.com/spin"
)

// Queue is a lock-free multi-producer single-drainer notification queue.
//
// Producers call Register from any goroutine to enqueue a one-shot
// [Waker]. A single drainer calls WakeAll to atomically detach every
// waker registered so far and invoke each exactly once. The queue is an
// intrusive singly linked chain behind two atomic head/tail references;
// no operation takes a lock.
//
// The zero Queue is empty and ready to use. It costs nothing to
// construct and works as a package-level variable.
//
// Memory: one small heap node per registered waker, reclaimed by the GC
// once a drain has walked past it.
type Queue struct {
	_     pad
	head  atomic.Pointer[node] // oldest undelivered node (drainer detaches)
	_     pad
	tail  atomic.Pointer[node] // newest node (producers swap)
	_     pad
	drain drainGuard
}

// node is one element of the intrusive chain. next is written exactly
// once, by the producer that links a successor after it.
type node struct {
	next atomic.Pointer[node]
	wake Waker
}

// New creates an empty notification queue.
// Equivalent to new(Queue); provided for symmetry with the rest of the
// ecosystem.
func New() *Queue {
	return &Queue{}
}

// Register enqueues a one-shot waker (multiple producers safe).
//
// Register is lock-free and never blocks: it performs one allocation,
// one tail swap, and one store (or a short expected-rare retry loop when
// it races a concurrent drain on an empty queue). After Register
// returns, w is owned by the queue and will be invoked by the next
// WakeAll that captures it, or discarded by Close.
//
// Panics if w is nil.
func (q *Queue) Register(w Waker) {
	if w == nil {
		panic("wakeq: nil waker")
	}

	n := &node{wake: w}

	prev := q.tail.Swap(n)
	if prev != nil {
		// Chain was non-empty: publish the node as prev's successor.
		// A drain walking the chain spins on prev.next until this
		// store lands.
		prev.next.Store(n)
		return
	}

	// Observing a nil tail does not imply head is nil: a concurrent
	// WakeAll may have swapped tail out already but not head yet. CAS
	// until the drain's head swap completes and the slot opens up.
	sw := spin.Wait{}
	for !q.head.CompareAndSwap(nil, n) {
		sw.Once()
	}
}

// Wait registers a waker that closes the returned channel.
//
// The channel is closed by the next WakeAll (never by Close). The usual
// shape is check-condition, Wait, re-check, block:
//
//	for !ready() {
//	    ch := q.Wait()
//	    if ready() {
//	        break // raced with the broadcast; ch closes regardless
//	    }
//	    <-ch
//	}
func (q *Queue) Wait() <-chan struct{} {
	ch := make(chan struct{})
	q.Register(func() { close(ch) })
	return ch
}

// WakeAll detaches every currently registered waker, invokes each
// exactly once in registration order, and returns the number invoked
// (single drainer only).
//
// A waker is captured by this call iff its Register's tail swap
// happened before this call's tail swap; later registrations stay
// queued for a future WakeAll. Returns 0 immediately on an empty queue.
//
// At most one goroutine may execute WakeAll (or Close) at a time.
// Concurrent drains are undefined behavior; build with -tags wakeqcheck
// to panic on violations during development.
func (q *Queue) WakeAll() int {
	q.drain.enter()
	defer q.drain.leave()

	// Cut the chain at the tail first. Everything up to and including
	// this node is ours; producers keep appending to a fresh chain.
	tail := q.tail.Swap(nil)
	if tail == nil {
		return 0
	}

	// Tail was non-nil, so a head exists or is about to: the producer
	// of the first node may still be between its tail swap and its
	// head CAS. Keep swapping until the head shows up.
	sw := spin.Wait{}
	head := q.head.Swap(nil)
	for head == nil {
		sw.Once()
		head = q.head.Swap(nil)
	}

	n := head
	woken := 0
	for {
		// Take before invoking: present -> consumed is irreversible,
		// so no path can deliver the same waker twice.
		w := n.wake
		n.wake = nil
		w()
		woken++

		if n == tail {
			return woken
		}

		// Not at the captured tail, so a successor exists; its
		// producer may still be mid-link. Spin until the next store
		// lands (the producer holds no lock and finishes promptly).
		next := n.next.Load()
		sw.Reset()
		for next == nil {
			sw.Once()
			next = n.next.Load()
		}
		n = next
	}
}

// Close tears the queue down, discarding every pending waker without
// invoking it. Requires full exclusivity: no Register, WakeAll, or
// Close may be in flight. The queue is empty (and reusable) afterward;
// a second Close is a no-op.
//
// Panics if the chain is shorter than the recorded tail: that means a
// node was lost to corruption or the exclusivity precondition was
// violated, and continuing would hide it.
func (q *Queue) Close() {
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
		head.wake = nil
		head = next
	}
	if head != nil {
		head.wake = nil
	}
}
