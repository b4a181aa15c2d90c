// SPDX-License-Identifier: MIT

package compute

import (
	"github.com/katalvlaran/numerus/capability"
	"github.com/katalvlaran/numerus/engine"
)

var (
	equalOp       = engine.Define(family, "Equal", 2, "(a, b T) bool", capability.Equality)
	lessThanOp    = engine.Define(family, "LessThan", 2, "(a, b T) bool", capability.LessThan)
	greaterThanOp = engine.Define(family, "GreaterThan", 2, "(a, b T) bool", capability.LessThan)
	clampOp       = engine.Define(family, "Clamp", 3, "(v, lo, hi T) (T, error)", capability.LessThan)
)

var (
	// CompareOp describes Compare.
	CompareOp = engine.Define(family, "Compare", 2, "(a, b T) int", capability.LessThan)
	// EqualsLeniencyOp describes EqualsLeniency.
	EqualsLeniencyOp = engine.Define(family, "EqualsLeniency", 3, "(a, b, leniency T) bool",
		capability.Addition, capability.LessThan)
)

func equalTemplate[T any](alg *engine.Algebra[T]) (func(a, b T) bool, error) {
	return alg.Equal, nil
}

func lessThanTemplate[T any](alg *engine.Algebra[T]) (func(a, b T) bool, error) {
	return alg.Less, nil
}

func greaterThanTemplate[T any](alg *engine.Algebra[T]) (func(a, b T) bool, error) {
	return alg.Greater, nil
}

func compareTemplate[T any](alg *engine.Algebra[T]) (func(a, b T) int, error) {
	return func(a, b T) int {
		switch {
		case alg.Less(a, b):
			return -1
		case alg.Less(b, a):
			return 1
		default:
			return 0
		}
	}, nil
}

func clampTemplate[T any](alg *engine.Algebra[T]) (func(v, lo, hi T) (T, error), error) {
	return func(v, lo, hi T) (T, error) {
		if alg.Less(hi, lo) {
			var zero T
			return zero, computeErrorf(clampOp, engine.ErrInvalidArgument)
		}
		if alg.Less(v, lo) {
			return lo, nil
		}
		if alg.Less(hi, v) {
			return hi, nil
		}

		return v, nil
	}, nil
}

// leniencyTemplate: the smaller operand plus the leniency must reach the
// larger one.
func leniencyTemplate[T any](alg *engine.Algebra[T]) (func(a, b, leniency T) bool, error) {
	return func(a, b, leniency T) bool {
		if alg.Less(a, b) {
			return !alg.Less(alg.Add(a, leniency), b)
		}

		return !alg.Less(alg.Add(b, leniency), a)
	}, nil
}

// Equal reports a == b under T's equality.
func Equal[T any](a, b T) (bool, error) {
	f, err := engine.Resolve(equalOp, equalTemplate[T])
	if err != nil {
		return false, err
	}

	return f(a, b), nil
}

// LessThan reports a < b.
func LessThan[T any](a, b T) (bool, error) {
	f, err := engine.Resolve(lessThanOp, lessThanTemplate[T])
	if err != nil {
		return false, err
	}

	return f(a, b), nil
}

// GreaterThan reports a > b.
func GreaterThan[T any](a, b T) (bool, error) {
	f, err := engine.Resolve(greaterThanOp, greaterThanTemplate[T])
	if err != nil {
		return false, err
	}

	return f(a, b), nil
}

// Compare returns -1, 0 or +1 as a is less than, equivalent to, or greater
// than b. Equivalence is "neither is less", so NaN compares as 0.
func Compare[T any](a, b T) (int, error) {
	f, err := engine.Resolve(CompareOp, compareTemplate[T])
	if err != nil {
		return 0, err
	}

	return f(a, b), nil
}

// Clamp bounds v to [lo, hi]. hi < lo is ErrInvalidArgument.
func Clamp[T any](v, lo, hi T) (T, error) {
	f, err := engine.Resolve(clampOp, clampTemplate[T])
	if err != nil {
		var zero T
		return zero, err
	}

	return f(v, lo, hi)
}

// EqualsLeniency reports whether a and b are within leniency of each other.
func EqualsLeniency[T any](a, b, leniency T) (bool, error) {
	f, err := engine.Resolve(EqualsLeniencyOp, leniencyTemplate[T])
	if err != nil {
		return false, err
	}

	return f(a, b, leniency), nil
}

// CompareFor resolves Compare for alg's element type through its slot.
func CompareFor[T any](alg *engine.Algebra[T]) (func(a, b T) int, error) {
	return engine.Dependency(alg, CompareOp, compareTemplate[T])
}

// ClampFor resolves Clamp for alg's element type through its slot.
func ClampFor[T any](alg *engine.Algebra[T]) (func(v, lo, hi T) (T, error), error) {
	return engine.Dependency(alg, clampOp, clampTemplate[T])
}

// EqualsLeniencyFor resolves EqualsLeniency for alg's element type.
func EqualsLeniencyFor[T any](alg *engine.Algebra[T]) (func(a, b, leniency T) bool, error) {
	return engine.Dependency(alg, EqualsLeniencyOp, leniencyTemplate[T])
}
