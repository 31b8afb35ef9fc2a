// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wakeq_test

import (
	"testing"

	"code.hybscloud.com/wakeq"
)

// =============================================================================
// Queue - Basic Operations
// =============================================================================

// TestWakeAllEmpty tests that draining an empty queue is an immediate no-op.
func TestWakeAllEmpty(t *testing.T) {
	var q wakeq.Queue

	if n := q.WakeAll(); n != 0 {
		t.Fatalf("WakeAll on empty: got %d, want 0", n)
	}
	if n := q.WakeAll(); n != 0 {
		t.Fatalf("WakeAll on empty (again): got %d, want 0", n)
	}
}

// TestZeroValueAndNew tests that the zero Queue and New() behave identically.
func TestZeroValueAndNew(t *testing.T) {
	var zero wakeq.Queue
	fresh := wakeq.New()

	for _, q := range []*wakeq.Queue{&zero, fresh} {
		fired := false
		q.Register(func() { fired = true })
		if n := q.WakeAll(); n != 1 {
			t.Fatalf("WakeAll: got %d, want 1", n)
		}
		if !fired {
			t.Fatal("waker not invoked")
		}
	}
}

// TestRegistrationOrder tests that one drain invokes all registered wakers
// in the order they were linked into the chain.
func TestRegistrationOrder(t *testing.T) {
	var q wakeq.Queue

	var order []int
	for i := range 8 {
		q.Register(func() { order = append(order, i) })
	}

	if n := q.WakeAll(); n != 8 {
		t.Fatalf("WakeAll: got %d, want 8", n)
	}
	for i, v := range order {
		if v != i {
			t.Fatalf("invocation %d: got waker %d, want %d", i, v, i)
		}
	}

	// Queue is empty afterward.
	if n := q.WakeAll(); n != 0 {
		t.Fatalf("WakeAll after drain: got %d, want 0", n)
	}
}

// TestExactlyOnceAcrossDrains tests that successive WakeAll calls never
// re-invoke a waker delivered by an earlier drain.
func TestExactlyOnceAcrossDrains(t *testing.T) {
	var q wakeq.Queue

	counts := make([]int, 5)
	for i := range 3 {
		q.Register(func() { counts[i]++ })
	}
	if n := q.WakeAll(); n != 3 {
		t.Fatalf("first WakeAll: got %d, want 3", n)
	}

	for i := 3; i < 5; i++ {
		q.Register(func() { counts[i]++ })
	}
	if n := q.WakeAll(); n != 2 {
		t.Fatalf("second WakeAll: got %d, want 2", n)
	}

	for i, c := range counts {
		if c != 1 {
			t.Fatalf("waker %d invoked %d times, want 1", i, c)
		}
	}
}

// TestWait tests the channel-waiter convenience.
func TestWait(t *testing.T) {
	var q wakeq.Queue

	ch := q.Wait()
	select {
	case <-ch:
		t.Fatal("channel closed before WakeAll")
	default:
	}

	if n := q.WakeAll(); n != 1 {
		t.Fatalf("WakeAll: got %d, want 1", n)
	}

	select {
	case <-ch:
	default:
		t.Fatal("channel not closed after WakeAll")
	}
}

// TestNilWakerPanics tests that registering nil panics for both flavors.
func TestNilWakerPanics(t *testing.T) {
	tests := []struct {
		name     string
		register func()
	}{
		{"Queue", func() { new(wakeq.Queue).Register(nil) }},
		{"QueueOf", func() { new(wakeq.QueueOf[int]).Register(nil) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Fatal("expected panic for nil waker")
				}
			}()
			tt.register()
		})
	}
}

// =============================================================================
// QueueOf - Basic Operations
// =============================================================================

// TestQueueOfBroadcast tests that every callback receives the broadcast value.
func TestQueueOfBroadcast(t *testing.T) {
	var q wakeq.QueueOf[string]

	got := make([]string, 0, 3)
	for range 3 {
		q.Register(func(v string) { got = append(got, v) })
	}

	if n := q.WakeAll("ready"); n != 3 {
		t.Fatalf("WakeAll: got %d, want 3", n)
	}
	for i, v := range got {
		if v != "ready" {
			t.Fatalf("callback %d: got %q, want %q", i, v, "ready")
		}
	}

	if n := q.WakeAll("late"); n != 0 {
		t.Fatalf("WakeAll after drain: got %d, want 0", n)
	}
}

// TestQueueOfSuccessiveValues tests that each drain delivers its own value.
func TestQueueOfSuccessiveValues(t *testing.T) {
	q := wakeq.NewOf[int]()

	var got []int
	q.Register(func(v int) { got = append(got, v) })
	q.WakeAll(1)
	q.Register(func(v int) { got = append(got, v) })
	q.WakeAll(2)

	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("delivered values: got %v, want [1 2]", got)
	}
}

// TestQueueOfWait tests the payload channel-waiter convenience.
func TestQueueOfWait(t *testing.T) {
	var q wakeq.QueueOf[int]

	ch := q.Wait()
	if n := q.WakeAll(42); n != 1 {
		t.Fatalf("WakeAll: got %d, want 1", n)
	}
	if v := <-ch; v != 42 {
		t.Fatalf("Wait channel: got %d, want 42", v)
	}
}

// =============================================================================
// Interface Compliance
// =============================================================================

func TestQueueInterfaces(t *testing.T) {
	var _ wakeq.Registrar = &wakeq.Queue{}
	var _ wakeq.Broadcaster = &wakeq.Queue{}
}
