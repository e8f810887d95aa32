// File: threads/slot.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Per-worker slot context and the worker execution loop.

package threads

import (
	"runtime"
	"sync/atomic"

	"github.com/momentics/hioload-threads/api"
)

// threadSlot is the boss/worker synchronization context for one pool
// worker. The state word is the only field both parties mutate, and
// each transition has exactly one writer; everything else is written by
// the boss while the worker is parked and read by the worker after it
// wakes.
type threadSlot struct {
	index      int // stable identity, 0..MaxWorkers-1
	numThreads int // live-slot count as seen by this worker

	state        atomic.Int32 // threadState
	changedState *Event       // boss wakes this specific worker

	task        api.Task      // nil while idle
	outstanding *atomic.Int32 // pool-wide count of workers still running
	releaseBoss *Event        // signaled once by the last finishing worker

	done chan struct{} // closed when the worker loop has returned
}

func (s *threadSlot) loadState() threadState {
	return threadState(s.state.Load())
}

func (s *threadSlot) storeState(st threadState) {
	s.state.Store(int32(st))
}

// exec is the worker loop. Each worker binds to a dedicated OS thread
// for its whole life; the goroutine exits with the thread still locked,
// so the runtime destroys the thread at teardown instead of handing it
// back to the scheduler.
//
// The loop parks in Idle on changedState, and on wakeup dispatches
// according to the state the boss stored: Running executes the attached
// task and decrements the outstanding counter (the last worker out
// releases the boss), Done breaks the loop. The slot re-enters Idle by
// looping back to the top.
func (s *threadSlot) exec() {
	runtime.LockOSThread()
	defer close(s.done)

	for {
		// Idle is published under the event's lock before parking, so
		// a boss that observed Idle cannot signal into the window
		// between the publish and the park.
		s.changedState.waitPrepared(func() {
			s.storeState(stateIdle)
		})

		switch s.loadState() {
		case stateRunning:
			if task := s.task; task != nil {
				task.RunBody(s.index, s.numThreads)
			}
			if s.outstanding.Add(-1) == 0 {
				s.releaseBoss.Signal()
			}
		case stateDone:
			s.storeState(stateDead)
			return
		}
	}
}
