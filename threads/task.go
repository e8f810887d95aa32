// File: threads/task.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Plain-task adapter.

package threads

import "github.com/momentics/hioload-threads/api"

// TaskFunc adapts an ordinary function to the api.Task capability.
type TaskFunc func(workerIndex, workerCount int)

// RunBody invokes the function.
func (f TaskFunc) RunBody(workerIndex, workerCount int) {
	f(workerIndex, workerCount)
}

var _ api.Task = TaskFunc(nil)
