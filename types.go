// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wakeq

// Waker is a one-shot notification capability.
//
// A Waker is registered by a producer and invoked exactly once by the
// drain that takes ownership of it, or discarded without invocation by
// Close. The queue never calls a Waker twice.
//
// Wakers run on the drainer's goroutine. Keep them short: close a
// channel, send on a buffered channel, or schedule work elsewhere. A
// Waker that blocks stalls the entire drain.
type Waker func()

// Registrar is the producer-side interface.
//
// Hand a Registrar to code that should be able to request wake-ups but
// not trigger or tear down the queue.
type Registrar interface {
	// Register enqueues a one-shot waker (non-blocking, lock-free).
	// Safe to call from any number of goroutines, concurrently with
	// a drain. Panics if w is nil.
	Register(w Waker)
}

// Broadcaster is the drainer-side interface.
//
// At most one goroutine may drain at a time; see [Queue.WakeAll].
type Broadcaster interface {
	// WakeAll detaches every currently registered waker, invokes each
	// exactly once, and returns the number invoked. No-op on an empty
	// queue.
	WakeAll() int
}
