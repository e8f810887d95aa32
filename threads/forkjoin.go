// File: threads/forkjoin.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// ForkJoin distributes a fixed iteration space across pool workers
// through a single shared atomic cursor.

package threads

import (
	"sync/atomic"

	"github.com/momentics/hioload-threads/api"
)

// ForkJoin is a task that partitions [0, iterations) across workers
// dynamically: each worker claims the next index with an atomic
// fetch-add until the space is exhausted. Fast workers simply claim
// more indices, so the partitioning self-balances with no static range
// assignment.
//
// A ForkJoin is reusable across sequential Run calls (the cursor is
// reset at the start of each), but a single instance must not serve two
// overlapping runs.
type ForkJoin struct {
	cursor atomic.Int64
	count  int64
	body   api.IterBody
}

// NewForkJoin wraps the per-iteration body in a fork-join task.
func NewForkJoin(body api.IterBody) *ForkJoin {
	if body == nil {
		panic("threads: NewForkJoin with nil body")
	}
	return &ForkJoin{body: body}
}

// Run resets the cursor, records the iteration count, and dispatches
// the claim loop across numWorkers workers of r, blocking until all
// iterations have been executed. Each index in [0, iterations) is
// claimed exactly once; the completion order across workers is
// unspecified, and a given worker does not necessarily process
// contiguous indices.
func (f *ForkJoin) Run(r api.Runner, iterations, numWorkers int) {
	f.cursor.Store(0)
	f.count = int64(iterations)
	r.Run(f, numWorkers)
}

// RunBody is the internal dispatch body: claim, check, invoke, repeat.
func (f *ForkJoin) RunBody(workerIndex, workerCount int) {
	for {
		i := f.cursor.Add(1) - 1
		if i >= f.count {
			return
		}
		f.body(int(i), workerIndex, workerCount)
	}
}

var _ api.Task = (*ForkJoin)(nil)
