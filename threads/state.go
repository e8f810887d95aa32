// File: threads/state.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Worker lifecycle states. Transitions: Init → Idle ⇄ Running → Done →
// Dead. Exactly two parties ever touch a slot's state word: the boss
// and the slot's own worker, never both for the same transition.

package threads

type threadState int32

const (
	stateInit threadState = iota + 1
	stateIdle
	stateRunning
	stateDone
	stateDead
)

func (s threadState) String() string {
	switch s {
	case stateInit:
		return "init"
	case stateIdle:
		return "idle"
	case stateRunning:
		return "running"
	case stateDone:
		return "done"
	case stateDead:
		return "dead"
	}
	return "unknown"
}
