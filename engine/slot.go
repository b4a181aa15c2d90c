// SPDX-License-Identifier: MIT

package engine

import (
	"sync"
	"sync/atomic"
)

// State is the lifecycle state of a Slot.
type State uint8

const (
	// Unspecialized slots run the bootstrap on the next call.
	Unspecialized State = iota
	// Specialized slots hold an implementation and never change again.
	Specialized
	// Failed slots hold a memoized *CompileError.
	Failed
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Unspecialized:
		return "unspecialized"
	case Specialized:
		return "specialized"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// binding is the immutable payload a Slot points at once resolved.
type binding struct {
	state State
	impl  any
	err   error
}

// Slot is the OperationSlot of one (operation, element type) pair.
// Readers load the binding without locking; mu serializes bootstrap runs.
type Slot struct {
	mu       sync.Mutex
	binding  atomic.Pointer[binding]
	attempts atomic.Int64
}

// State reports the current lifecycle state.
func (s *Slot) State() State {
	if b := s.binding.Load(); b != nil {
		return b.state
	}

	return Unspecialized
}

// Attempts returns how many times the compiler was invoked for this slot.
func (s *Slot) Attempts() int64 { return s.attempts.Load() }
