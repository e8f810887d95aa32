// File: affinity/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package affinity provides platform queries and thread-placement
// helpers for the worker pool: the usable hardware thread count and
// pinning of the calling OS thread to a logical CPU. Platform-specific
// implementations live in build-tagged files; unsupported platforms get
// a stub that reports ErrNotSupported.
package affinity
