// SPDX-License-Identifier: MIT

package logic

import (
	"cmp"
	"iter"

	"github.com/katalvlaran/numerus/compute"
	"github.com/katalvlaran/numerus/engine"
)

// ordered implements the members every cmp.Ordered type shares.
type ordered[T cmp.Ordered] struct{}

func (ordered[T]) Max(a, b T) (T, error) {
	if b > a {
		return b, nil
	}

	return a, nil
}

func (ordered[T]) Min(a, b T) (T, error) {
	if b < a {
		return b, nil
	}

	return a, nil
}

func (ordered[T]) MaxOf(seq iter.Seq[T]) (T, error) {
	return extreme(seq, "MaxOf", func(v, best T) bool { return v > best })
}

func (ordered[T]) MinOf(seq iter.Seq[T]) (T, error) {
	return extreme(seq, "MinOf", func(v, best T) bool { return v < best })
}

func (ordered[T]) Clamp(v, lo, hi T) (T, error) {
	if hi < lo {
		var zero T
		return zero, engine.OpErrorf(family+".Clamp", engine.ErrInvalidArgument)
	}

	return min(max(v, lo), hi), nil
}

func (ordered[T]) Equal(a, b T) (bool, error) { return a == b, nil }

func (ordered[T]) EqualAll(seq iter.Seq[T]) (bool, error) {
	var first T
	set := false
	for v := range seq {
		if !set {
			first, set = v, true
			continue
		}
		if v != first {
			return false, nil
		}
	}

	return true, nil
}

func (ordered[T]) Compare(a, b T) (int, error) { return cmp.Compare(a, b), nil }

func extreme[T any](seq iter.Seq[T], op string, better func(v, best T) bool) (T, error) {
	var best T
	set := false
	for v := range seq {
		if !set || better(v, best) {
			best, set = v, true
		}
	}
	if !set {
		return best, engine.OpErrorf(family+"."+op, engine.ErrEmptySequence)
	}

	return best, nil
}

// numeric serves the built-in numeric kinds.
type numeric[N engine.Real] struct{ ordered[N] }

func (numeric[N]) Abs(a N) (N, error) {
	if a < 0 {
		return -a, nil
	}

	return a, nil
}

func (numeric[N]) EqualsLeniency(a, b, leniency N) (bool, error) {
	if a < b {
		return !(a+leniency < b), nil
	}

	return !(b+leniency < a), nil
}

// text serves string. Strings are ordered but have no magnitude, so Abs
// and EqualsLeniency are unsupported.
type text struct{ ordered[string] }

func (text) Abs(string) (string, error) {
	return "", engine.Unsupported(family+".Abs", "string")
}

func (text) EqualsLeniency(string, string, string) (bool, error) {
	return false, engine.Unsupported(family+".EqualsLeniency", "string")
}

// derived routes every member through the compute operations, so each one
// specializes (or fails its capability check) on first use.
type derived[T any] struct{}

// Derive returns a Logic for T built on the engine. It is what a user type
// with Less/Add/Neg methods registers when it has no hand-written strategy.
func Derive[T any]() Logic[T] { return derived[T]{} }

func (derived[T]) Abs(a T) (T, error) { return compute.AbsoluteValue(a) }

func (derived[T]) Max(a, b T) (T, error) {
	c, err := compute.Compare(a, b)
	if err != nil || c >= 0 {
		return a, err
	}

	return b, nil
}

func (derived[T]) Min(a, b T) (T, error) {
	c, err := compute.Compare(a, b)
	if err != nil || c <= 0 {
		return a, err
	}

	return b, nil
}

func (derived[T]) MaxOf(seq iter.Seq[T]) (T, error) { return compute.Maximum(seq) }

func (derived[T]) MinOf(seq iter.Seq[T]) (T, error) { return compute.Minimum(seq) }

func (derived[T]) Clamp(v, lo, hi T) (T, error) { return compute.Clamp(v, lo, hi) }

func (derived[T]) EqualsLeniency(a, b, leniency T) (bool, error) {
	return compute.EqualsLeniency(a, b, leniency)
}

func (derived[T]) Equal(a, b T) (bool, error) { return compute.Equal(a, b) }

func (derived[T]) EqualAll(seq iter.Seq[T]) (bool, error) {
	var first T
	set := false
	for v := range seq {
		if !set {
			first, set = v, true
			continue
		}
		eq, err := compute.Equal(first, v)
		if err != nil || !eq {
			return false, err
		}
	}

	return true, nil
}

func (derived[T]) Compare(a, b T) (int, error) { return compute.Compare(a, b) }

// unsupported is the fallback for unregistered types.
type unsupported[T any] struct{ typeName string }

func (u unsupported[T]) fail(member string) error {
	return engine.Unsupported(family+"."+member, u.typeName)
}

func (u unsupported[T]) Abs(T) (T, error) {
	var zero T
	return zero, u.fail("Abs")
}

func (u unsupported[T]) Max(T, T) (T, error) {
	var zero T
	return zero, u.fail("Max")
}

func (u unsupported[T]) MaxOf(iter.Seq[T]) (T, error) {
	var zero T
	return zero, u.fail("MaxOf")
}

func (u unsupported[T]) Min(T, T) (T, error) {
	var zero T
	return zero, u.fail("Min")
}

func (u unsupported[T]) MinOf(iter.Seq[T]) (T, error) {
	var zero T
	return zero, u.fail("MinOf")
}

func (u unsupported[T]) Clamp(T, T, T) (T, error) {
	var zero T
	return zero, u.fail("Clamp")
}

func (u unsupported[T]) EqualsLeniency(T, T, T) (bool, error) {
	return false, u.fail("EqualsLeniency")
}

func (u unsupported[T]) Equal(T, T) (bool, error) { return false, u.fail("Equal") }

func (u unsupported[T]) EqualAll(iter.Seq[T]) (bool, error) { return false, u.fail("EqualAll") }

func (u unsupported[T]) Compare(T, T) (int, error) { return 0, u.fail("Compare") }

var (
	_ Logic[float64] = numeric[float64]{}
	_ Logic[string]  = text{}
	_ Logic[any]     = derived[any]{}
	_ Logic[any]     = unsupported[any]{}
)
