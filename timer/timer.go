// File: timer/timer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Minimal stopwatch used by the examples and benchmarks. Sequential
// code, no synchronization: one Timer belongs to one goroutine.

package timer

import "time"

// Timer measures wall time between Start and Stop using the monotonic
// clock. New returns a started timer; Start restarts it.
type Timer struct {
	start time.Time
	end   time.Time
}

// New returns a Timer that is already running.
func New() *Timer {
	t := &Timer{}
	t.Start()
	return t
}

// Start (re)starts the measurement.
func (t *Timer) Start() {
	now := time.Now()
	t.start = now
	t.end = now
}

// Stop records the end point of the measurement.
func (t *Timer) Stop() {
	t.end = time.Now()
}

// Elapsed returns the time between Start and Stop.
func (t *Timer) Elapsed() time.Duration {
	return t.end.Sub(t.start)
}

// ElapsedSeconds returns the elapsed time in seconds.
func (t *Timer) ElapsedSeconds() float64 {
	return t.Elapsed().Seconds()
}
