// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package wakeq provides a lock-free multi-producer single-drainer
// notification queue.
//
// Any number of goroutines concurrently register one-shot wake-up
// callbacks; a single triggering goroutine drains the queue, invoking
// every callback registered so far exactly once. It is the rendezvous
// primitive behind "many waiters, one event" fan-out: waiters hand in a
// waker, the event calls WakeAll.
//
// Two flavors share the same algorithm:
//
//	Queue      - callbacks are plain Wakers (func())
//	QueueOf[T] - callbacks receive the value passed to WakeAll
//
// # Quick Start
//
// The zero value is ready to use:
//
//	var q wakeq.Queue
//
//	// Waiters (any goroutine)
//	q.Register(func() { close(done) })
//
//	// Event (one goroutine)
//	q.WakeAll()
//
// # Waiting Pattern
//
// The usual shape is check-condition, register, re-check, block. The
// re-check closes the window where the condition becomes true between
// the first check and Register:
//
//	for !ready() {
//	    ch := q.Wait()
//	    if ready() {
//	        break // raced with the broadcast; ch closes regardless
//	    }
//	    <-ch
//	}
//
// Broadcasting a result to every waiter:
//
//	var results wakeq.QueueOf[error]
//
//	// Waiter
//	err := <-results.Wait()
//
//	// Completion
//	results.WakeAll(opErr)
//
// # Structure
//
// The queue is an intrusive singly linked chain of heap nodes behind
// two atomic references, head and tail. Register swaps a new node into
// tail and links it after the previous tail (or installs it as head
// when the chain was empty). WakeAll swaps tail to nil, claiming the
// whole chain in one step, then walks it from head to the captured
// tail.
//
// Two narrow races exist where one side observes the other mid-update;
// both resolve with short bounded spins ([code.hybscloud.com/spin]),
// never a lock:
//
//   - Register sees a nil tail while a drain has detached tail but not
//     yet head. The head CAS retries until the drain's head swap lands.
//   - A drain reaches a node whose producer has swapped tail but not
//     yet stored the link. The walk spins on next until the store
//     lands.
//
// # Delivery Contract
//
// A callback is captured by a WakeAll call iff its Register's tail swap
// happened before that WakeAll's tail swap. Captured callbacks are
// invoked exactly once, in registration order; later registrations stay
// queued for a future drain. There is no way to withdraw a callback
// once registered (register another guard condition instead).
//
// # Thread Safety
//
// Register is safe from any number of goroutines, concurrently with a
// drain. At most one goroutine may execute WakeAll or Close at a time;
// the structure does not make concurrent drains safe, and violating
// the constraint is undefined behavior. Build with -tags wakeqcheck to
// panic on overlapping drains during development.
//
// Close requires full exclusivity (no Register or WakeAll in flight).
// It discards pending callbacks without invoking them and panics if
// the chain is internally inconsistent, since continuing would mask
// corruption.
//
// # Memory Ordering
//
// Chain links are sync/atomic pointers, which are sequentially
// consistent — stronger than the release/acquire minimum the algorithm
// needs for safe publication of node contents. The drain-exclusivity
// guard uses [code.hybscloud.com/atomix] acquire-release operations.
//
// # Cache Line Padding
//
// head and tail are padded to separate cache lines so producer tail
// swaps do not invalidate the drainer's head line. Build with
// -tags wakeq_nopad to drop the padding; the knob has zero behavioral
// effect.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/spin] for bounded spin-waits at
// the two race windows and [code.hybscloud.com/atomix] for the optional
// drain-exclusivity guard.
package wakeq
