// File: threads/runqueue.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// RunQueue is an asynchronous front-end over a Runner: producers
// enqueue jobs, a single dispatcher feeds them through the runner one
// at a time. The pool itself stays queue-free; this layer exists so
// multiple producers never violate the single-Run-in-flight rule.

package threads

import (
	"sync"

	"github.com/eapache/queue"

	"github.com/momentics/hioload-threads/api"
)

type job struct {
	task       api.Task
	numWorkers int
}

// RunQueue serializes queued jobs through one Runner in FIFO order.
// Enqueue never blocks on job execution; Wait drains the backlog.
type RunQueue struct {
	mu       sync.Mutex
	cond     *sync.Cond
	pending  *queue.Queue // of job; guarded by mu
	inFlight bool
	closed   bool

	runner api.Runner
	done   chan struct{} // closed when the dispatcher exits
}

// NewRunQueue starts a run queue backed by r.
func NewRunQueue(r api.Runner) *RunQueue {
	rq := &RunQueue{
		pending: queue.New(),
		runner:  r,
		done:    make(chan struct{}),
	}
	rq.cond = sync.NewCond(&rq.mu)
	go rq.dispatch()
	return rq
}

// Enqueue schedules task to be run with numWorkers workers after all
// previously enqueued jobs have finished. Returns ErrQueueClosed once
// Close has been called. Worker-count preconditions are checked by the
// runner when the job is dispatched.
func (rq *RunQueue) Enqueue(task api.Task, numWorkers int) error {
	if task == nil {
		panic("threads: Enqueue with nil task")
	}
	rq.mu.Lock()
	defer rq.mu.Unlock()
	if rq.closed {
		return ErrQueueClosed
	}
	rq.pending.Add(job{task: task, numWorkers: numWorkers})
	rq.cond.Broadcast()
	return nil
}

// Len returns the number of jobs waiting to be dispatched.
func (rq *RunQueue) Len() int {
	rq.mu.Lock()
	defer rq.mu.Unlock()
	return rq.pending.Length()
}

// Wait blocks until every job enqueued so far has finished running.
func (rq *RunQueue) Wait() {
	rq.mu.Lock()
	for rq.pending.Length() > 0 || rq.inFlight {
		rq.cond.Wait()
	}
	rq.mu.Unlock()
}

// Close stops intake, lets the dispatcher drain the backlog, and
// returns once it has exited. Safe to call more than once.
func (rq *RunQueue) Close() {
	rq.mu.Lock()
	if !rq.closed {
		rq.closed = true
		rq.cond.Broadcast()
	}
	rq.mu.Unlock()
	<-rq.done
}

// dispatch pops jobs one at a time and runs them to completion. The
// runner's Run call happens outside the lock; inFlight keeps Wait
// honest while it does.
func (rq *RunQueue) dispatch() {
	defer close(rq.done)

	rq.mu.Lock()
	for {
		for rq.pending.Length() == 0 && !rq.closed {
			rq.cond.Wait()
		}
		if rq.pending.Length() == 0 {
			// Closed and drained.
			rq.mu.Unlock()
			return
		}

		j := rq.pending.Remove().(job)
		rq.inFlight = true
		rq.mu.Unlock()

		rq.runner.Run(j.task, j.numWorkers)

		rq.mu.Lock()
		rq.inFlight = false
		rq.cond.Broadcast()
	}
}
