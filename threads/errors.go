// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Error definitions for the threads module.

package threads

import "errors"

var (
	// ErrQueueClosed indicates the run queue no longer accepts jobs.
	ErrQueueClosed = errors.New("run queue is closed")
)
