//go:build linux
// +build linux

// File: affinity/cpu_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux hardware thread count via the process scheduling mask.

package affinity

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// processorCountPlatform counts the CPUs in the process affinity mask,
// falling back to the runtime's view if the syscall fails.
func processorCountPlatform() int {
	var set unix.CPUSet
	if err := unix.SchedGetaffinity(0, &set); err != nil {
		return runtime.NumCPU()
	}
	return set.Count()
}
