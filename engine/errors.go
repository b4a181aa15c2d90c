// SPDX-License-Identifier: MIT
// Package engine: sentinel error set shared by every operation family.
// Domain sentinels all wrap ErrDomain, so callers can match the whole class
// (errors.Is(err, ErrDomain)) or one condition (errors.Is(err, ErrSingular)).
// Capability failures are capability.ErrMissing values and are never wrapped
// in a domain error: callers must be able to tell first-use specialization
// failures from ordinary per-call failures.

package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrCompile is matched by every *CompileError.
	ErrCompile = errors.New("engine: specialization failed to compile")

	// ErrDomain is the class of per-call precondition violations.
	ErrDomain = errors.New("engine: domain error")

	// ErrUnsupported is matched by every *UnsupportedError.
	ErrUnsupported = errors.New("engine: operation not supported")
)

// Domain sentinels. Each wraps ErrDomain.
var (
	ErrDivideByZero      = fmt.Errorf("divide by zero: %w", ErrDomain)
	ErrSingular          = fmt.Errorf("singular matrix: %w", ErrDomain)
	ErrDimensionMismatch = fmt.Errorf("dimension mismatch: %w", ErrDomain)
	ErrEmptySequence     = fmt.Errorf("empty sequence: %w", ErrDomain)
	ErrInvalidQuantiles  = fmt.Errorf("invalid quantile count: %w", ErrDomain)
	ErrNotWhole          = fmt.Errorf("value is not a whole number: %w", ErrDomain)
	ErrNegative          = fmt.Errorf("value is negative: %w", ErrDomain)
	ErrInvalidArgument   = fmt.Errorf("invalid argument: %w", ErrDomain)
	ErrOutOfRange        = fmt.Errorf("argument out of range: %w", ErrDomain)
)

// CompileError reports that the synthesized implementation of one operation
// for one element type could not be built. It carries the synthesized source
// and the compiler's diagnostic.
type CompileError struct {
	Operation  string
	Type       string
	Source     string
	Diagnostic error
}

// Error implements error.
func (e *CompileError) Error() string {
	return fmt.Sprintf("engine: compile %s[%s]: %v", e.Operation, e.Type, e.Diagnostic)
}

// Is makes errors.Is(err, ErrCompile) true.
func (e *CompileError) Is(target error) bool { return target == ErrCompile }

// Unwrap exposes the diagnostic.
func (e *CompileError) Unwrap() error { return e.Diagnostic }

// UnsupportedError reports a deliberately unimplemented operation.
type UnsupportedError struct {
	Operation string
	Type      string
}

// Error implements error.
func (e *UnsupportedError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("engine: %s is not supported", e.Operation)
	}

	return fmt.Sprintf("engine: %s is not supported for %s", e.Operation, e.Type)
}

// Is makes errors.Is(err, ErrUnsupported) true.
func (e *UnsupportedError) Is(target error) bool { return target == ErrUnsupported }

// Unsupported builds an *UnsupportedError for operation op on type typeName.
func Unsupported(op, typeName string) error {
	return &UnsupportedError{Operation: op, Type: typeName}
}

// OpErrorf wraps err with an operation tag, preserving it for errors.Is/As.
// Use only when err != nil.
func OpErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
