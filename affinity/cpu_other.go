//go:build !linux
// +build !linux

// File: affinity/cpu_other.go
// Author: momentics <momentics@gmail.com>
//
// Fallback hardware thread count for non-Linux platforms.

package affinity

import "runtime"

func processorCountPlatform() int {
	return runtime.NumCPU()
}
