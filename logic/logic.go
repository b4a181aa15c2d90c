// SPDX-License-Identifier: MIT

// Package logic provides the comparison family (absolute value, min/max,
// clamping, lenient equality, ordering) as one strategy per element type.
//
// Built-in numeric kinds and string have registered strategies backed by
// Go's ordered operators. User types either Register their own strategy or
// use Derive, which routes every member through the engine's compute
// operations. For falls back to a strategy whose every member fails with
// engine.ErrUnsupported.
package logic

import (
	"iter"

	"github.com/katalvlaran/numerus/capability"
	"github.com/katalvlaran/numerus/engine"
)

const family = "logic"

// Logic is the comparison family for one element type.
type Logic[T any] interface {
	// Abs returns |a|.
	Abs(a T) (T, error)
	// Max returns the greater of a and b, a on ties.
	Max(a, b T) (T, error)
	// MaxOf returns the greatest value of seq, the first one on ties.
	MaxOf(seq iter.Seq[T]) (T, error)
	// Min returns the lesser of a and b, a on ties.
	Min(a, b T) (T, error)
	// MinOf returns the least value of seq, the first one on ties.
	MinOf(seq iter.Seq[T]) (T, error)
	// Clamp restricts v to [lo, hi].
	Clamp(v, lo, hi T) (T, error)
	// EqualsLeniency reports whether a and b are within leniency.
	EqualsLeniency(a, b, leniency T) (bool, error)
	// Equal reports a == b.
	Equal(a, b T) (bool, error)
	// EqualAll reports whether every value of seq is equal. Empty and
	// single-element sequences are trivially equal.
	EqualAll(seq iter.Seq[T]) (bool, error)
	// Compare returns -1, 0 or +1.
	Compare(a, b T) (int, error)
}

var registry = engine.NewRegistry(family)

func init() {
	Register[int](numeric[int]{})
	Register[int8](numeric[int8]{})
	Register[int16](numeric[int16]{})
	Register[int32](numeric[int32]{})
	Register[int64](numeric[int64]{})
	Register[uint](numeric[uint]{})
	Register[uint8](numeric[uint8]{})
	Register[uint16](numeric[uint16]{})
	Register[uint32](numeric[uint32]{})
	Register[uint64](numeric[uint64]{})
	Register[float32](numeric[float32]{})
	Register[float64](numeric[float64]{})
	Register[string](text{})
}

// Register installs l as the Logic for T, replacing any previous one.
func Register[T any](l Logic[T]) { engine.Register[T](registry, l) }

// Registered reports whether T has a registered Logic.
func Registered[T any]() bool { return engine.Registered[T](registry) }

// For returns the Logic registered for T, or the unsupported strategy.
func For[T any]() Logic[T] {
	return engine.Lookup[T, Logic[T]](registry, func(t capability.Type) Logic[T] {
		return unsupported[T]{typeName: t.Name}
	})
}
