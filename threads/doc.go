// File: threads/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package threads implements a fixed-capacity, reusable fork-join
// worker pool. A boss goroutine publishes a task, a set of long-lived
// workers (each bound to its own OS thread) execute it, the boss blocks
// until every worker has finished, and the workers park back in their
// idle state ready for the next round. Workers are spawned lazily up to
// MaxWorkers and are never torn down between runs, only at Close.
//
// The hot path is lock-free: the only concurrently mutated shared
// values during a run are the outstanding-worker counter and the
// fork-join iteration cursor, both driven purely by atomic fetch-add.
// Parking and waking go through Event, a minimal condition-variable
// rendezvous.
package threads
