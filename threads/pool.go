// File: threads/pool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Pool is the boss side of the fork-join protocol: lazy worker growth,
// the run barrier, and teardown.

package threads

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/momentics/hioload-threads/api"
)

// MaxWorkers is the hard cap on simultaneously live pool workers.
// Requesting more is a precondition violation and panics.
const MaxWorkers = 64

// pollInterval is the bounded-interval poll the boss uses when waiting
// for a slot to reach Idle or Dead. These polls are liveness aids that
// keep the boss from acting on a slot before its worker has reached the
// expected state; they are not correctness-critical locks.
const pollInterval = 50 * time.Microsecond

// Pool owns a fixed array of worker slots and drives the run/teardown
// protocol. Workers are spawned on demand, reused across runs, and torn
// down only by Close. A Pool must be created with NewPool and supports
// exactly one Run in flight at a time.
type Pool struct {
	slots         [MaxWorkers]threadSlot
	threadsInPool int // populated slot count, boss-only

	outstanding atomic.Int32 // workers still running the current task
	allDone     *Event       // raised by the last finishing worker
	running     atomic.Bool  // detects concurrent Run misuse

	stats poolStats
}

// NewPool returns an empty pool. No workers are spawned until the first
// Run that needs them.
func NewPool() *Pool {
	return &Pool{allDone: NewEvent()}
}

var _ api.Runner = (*Pool)(nil)

// Run dispatches task across numWorkers workers and blocks until every
// one of them has completed its RunBody invocation and parked again.
// Run is a full barrier: nothing after it observably races with any
// worker's task invocation, and no invocation from one round overlaps
// the next round on the same pool.
//
// numWorkers == 1 bypasses the thread machinery entirely and invokes
// the body synchronously on the calling goroutine.
//
// Preconditions (violations panic): task non-nil, 1 <= numWorkers <=
// MaxWorkers, no other Run in flight on this pool.
func (p *Pool) Run(task api.Task, numWorkers int) {
	if task == nil {
		panic("threads: Run with nil task")
	}
	if numWorkers < 1 || numWorkers > MaxWorkers {
		panic(fmt.Sprintf("threads: numWorkers %d out of range [1, %d]", numWorkers, MaxWorkers))
	}

	p.stats.rounds.Add(1)

	if numWorkers == 1 {
		p.stats.fastRuns.Add(1)
		p.stats.dispatched.Add(1)
		task.RunBody(0, 1)
		return
	}

	if !p.running.CompareAndSwap(false, true) {
		panic("threads: concurrent Run on the same pool")
	}
	defer p.running.Store(false)

	// Growth is monotonic: repeated runs reuse already-spawned workers.
	for p.threadsInPool < numWorkers {
		p.spawn()
	}

	p.outstanding.Store(int32(numWorkers))
	p.stats.dispatched.Add(int64(numWorkers))

	for i := 0; i < numWorkers; i++ {
		s := &p.slots[i]
		s.numThreads = numWorkers
		s.task = task

		// Do not race ahead of a worker that has not parked yet.
		for s.loadState() != stateIdle {
			time.Sleep(pollInterval)
		}

		s.storeState(stateRunning)
		s.changedState.Signal()
	}

	// Park until whichever worker performs the last decrement raises
	// allDone. The predicate re-check makes an early signal harmless.
	p.allDone.waitWhile(func() bool { return p.outstanding.Load() != 0 })

	// Wait for every participant to park again, so no worker is still
	// inside its dispatch when Run returns.
	for i := 0; i < numWorkers; i++ {
		s := &p.slots[i]
		for s.loadState() != stateIdle {
			time.Sleep(pollInterval)
		}
		s.task = nil
	}
}

// RunFunc runs fn as a task across numWorkers workers.
func (p *Pool) RunFunc(fn func(workerIndex, workerCount int), numWorkers int) {
	p.Run(TaskFunc(fn), numWorkers)
}

// spawn populates the next slot and starts its worker. Every live
// slot's view of the pool size is refreshed after each growth step.
func (p *Pool) spawn() {
	s := &p.slots[p.threadsInPool]
	s.index = p.threadsInPool
	s.changedState = NewEvent()
	s.releaseBoss = p.allDone
	s.outstanding = &p.outstanding
	s.task = nil
	s.done = make(chan struct{})
	s.storeState(stateInit)

	go s.exec()

	p.threadsInPool++
	p.stats.spawned.Add(1)

	for i := 0; i < p.threadsInPool; i++ {
		p.slots[i].numThreads = p.threadsInPool
	}
}

// Close tears down every live worker, highest slot first: wait for the
// worker to park, order it Done, and join its goroutine after it
// reports Dead. Close is idempotent, safe when Run was never called,
// and leaves the pool empty; a later Run grows it again from zero.
func (p *Pool) Close() {
	for ; p.threadsInPool > 0; p.threadsInPool-- {
		s := &p.slots[p.threadsInPool-1]

		for s.loadState() != stateIdle {
			time.Sleep(pollInterval)
		}
		s.storeState(stateDone)
		s.changedState.Signal()

		for s.loadState() != stateDead {
			time.Sleep(pollInterval)
		}
		// Join rather than detach: the worker goroutine (and with it
		// the locked OS thread) is fully gone once done is closed.
		<-s.done
	}
}

// NumWorkers returns the number of currently live pool workers.
func (p *Pool) NumWorkers() int {
	return p.threadsInPool
}
