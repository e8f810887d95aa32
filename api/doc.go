// File: api/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package api declares the capability contracts of hioload-threads:
// the task abstraction executed by pool workers and the runner surface
// implemented by the pool itself. Implementations live in the threads
// package; front-ends and tests depend only on these interfaces.
package api
