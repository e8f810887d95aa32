// File: api/runner.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Runner contract implemented by the worker pool.

package api

// Runner dispatches a task across numWorkers workers and blocks until
// every participating worker has finished its RunBody invocation. A
// Runner is a full barrier: nothing after a Run call observably races
// with any worker's task invocation from that call.
type Runner interface {
	Run(task Task, numWorkers int)
}
