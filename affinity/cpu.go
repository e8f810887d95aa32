// File: affinity/cpu.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral API for querying the usable hardware thread count.

package affinity

// ProcessorCount returns the number of hardware threads available to
// the process, never less than 1. On Linux it reflects the scheduling
// mask of the process (taskset, cgroup cpusets), elsewhere the
// machine's logical CPU count.
func ProcessorCount() int {
	n := processorCountPlatform()
	if n < 1 {
		return 1
	}
	return n
}
