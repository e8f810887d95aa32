// File: api/task.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Task contract for fork-join execution across pool workers.

package api

// Task is a unit of parallel work. RunBody is invoked exactly once per
// participating worker for each run of the task.
type Task interface {
	// RunBody performs this worker's share of the work.
	// workerIndex is in [0, workerCount); workerCount is the total
	// number of workers participating in the current run.
	RunBody(workerIndex, workerCount int)
}

// IterBody is the per-iteration callable of a fork-join task. It must
// be safe to invoke concurrently for distinct iteration indices; no
// ordering across workers is guaranteed, and a given worker does not
// necessarily process contiguous indices.
type IterBody func(iter, workerIndex, workerCount int)
