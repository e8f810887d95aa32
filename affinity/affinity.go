// File: affinity/affinity.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral API for CPU affinity. Platform-specific
// implementations are located in separate files (affinity_linux.go,
// affinity_windows.go, etc.) guarded by build tags.

package affinity

import "errors"

// ErrNotSupported indicates CPU affinity control is unavailable on
// this platform.
var ErrNotSupported = errors.New("affinity: not supported on this platform")

// SetAffinity pins the current OS thread to a given logical CPU on
// supported platforms. Callers should hold runtime.LockOSThread for
// the pin to remain meaningful. On unsupported platforms returns
// ErrNotSupported.
func SetAffinity(cpuID int) error {
	return setAffinityPlatform(cpuID)
}
