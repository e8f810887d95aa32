// File: threads/event.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Event is the blocking rendezvous primitive used for boss/worker
// handshakes: one mutex, one condition, no payload.

package threads

import "sync"

// Event blocks goroutines in Wait until another goroutine calls Signal
// or SignalAll. A signal delivered while nobody is waiting is lost:
// Event is a rendezvous, not a counting semaphore. Events must be
// created with NewEvent and must not be copied after first use.
type Event struct {
	mu   sync.Mutex
	cond *sync.Cond
}

// NewEvent returns a ready-to-use Event.
func NewEvent() *Event {
	e := &Event{}
	e.cond = sync.NewCond(&e.mu)
	return e
}

// Wait blocks the calling goroutine until the next Signal or SignalAll.
func (e *Event) Wait() {
	e.mu.Lock()
	e.cond.Wait()
	e.mu.Unlock()
}

// waitPrepared parks like Wait but runs prepare under the event's lock
// first. State published by prepare is ordered before the park, so a
// signaler that has observed that state cannot fire into the gap
// between the publish and the wait.
func (e *Event) waitPrepared(prepare func()) {
	e.mu.Lock()
	prepare()
	e.cond.Wait()
	e.mu.Unlock()
}

// waitWhile blocks as long as pred holds, re-checking after every
// wakeup. Unlike Wait it tolerates a signal that fired before the
// caller got here.
func (e *Event) waitWhile(pred func() bool) {
	e.mu.Lock()
	for pred() {
		e.cond.Wait()
	}
	e.mu.Unlock()
}

// Signal wakes exactly one goroutine currently blocked on the event.
func (e *Event) Signal() {
	e.mu.Lock()
	e.cond.Signal()
	e.mu.Unlock()
}

// SignalAll wakes every goroutine currently blocked on the event.
func (e *Event) SignalAll() {
	e.mu.Lock()
	e.cond.Broadcast()
	e.mu.Unlock()
}
