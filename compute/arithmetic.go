// SPDX-License-Identifier: MIT

package compute

import (
	"fmt"

	"github.com/katalvlaran/numerus/capability"
	"github.com/katalvlaran/numerus/engine"
)

const family = "compute"

var (
	addOp      = engine.Define(family, "Add", 2, "(a, b T) T", capability.Addition)
	subtractOp = engine.Define(family, "Subtract", 2, "(a, b T) T", capability.Subtraction)
	multiplyOp = engine.Define(family, "Multiply", 2, "(a, b T) T", capability.Multiplication)
	divideOp   = engine.Define(family, "Divide", 2, "(a, b T) (T, error)",
		capability.Division, capability.Equality, capability.Conversion)
	remainderOp = engine.Define(family, "Remainder", 2, "(a, b T) (T, error)",
		capability.Remainder, capability.Equality, capability.Conversion)
	negateOp = engine.Define(family, "Negate", 1, "(a T) T", capability.Negation)
	invertOp = engine.Define(family, "Invert", 1, "(a T) (T, error)",
		capability.Division, capability.Equality, capability.Conversion)
)

// AbsoluteValueOp describes AbsoluteValue. The exported descriptors of this
// package are the ones other families name in DependsOn.
var AbsoluteValueOp = engine.Define(family, "AbsoluteValue", 1, "(a T) T",
	capability.LessThan, capability.Negation, capability.Conversion)

// computeErrorf wraps err with the operation's qualified name.
// Use only when err != nil.
func computeErrorf(d *engine.Descriptor, err error) error {
	return fmt.Errorf("%s: %w", d.QualifiedName(), err)
}

func addTemplate[T any](alg *engine.Algebra[T]) (func(a, b T) T, error) {
	return alg.Add, nil
}

func subtractTemplate[T any](alg *engine.Algebra[T]) (func(a, b T) T, error) {
	return alg.Sub, nil
}

func multiplyTemplate[T any](alg *engine.Algebra[T]) (func(a, b T) T, error) {
	return alg.Mul, nil
}

func divideTemplate[T any](alg *engine.Algebra[T]) (func(a, b T) (T, error), error) {
	return func(a, b T) (T, error) {
		if alg.IsZero(b) {
			var zero T
			return zero, computeErrorf(divideOp, engine.ErrDivideByZero)
		}

		return alg.Div(a, b), nil
	}, nil
}

func remainderTemplate[T any](alg *engine.Algebra[T]) (func(a, b T) (T, error), error) {
	return func(a, b T) (T, error) {
		if alg.IsZero(b) {
			var zero T
			return zero, computeErrorf(remainderOp, engine.ErrDivideByZero)
		}

		return alg.Rem(a, b), nil
	}, nil
}

func negateTemplate[T any](alg *engine.Algebra[T]) (func(a T) T, error) {
	return alg.Neg, nil
}

func absoluteTemplate[T any](alg *engine.Algebra[T]) (func(a T) T, error) {
	return alg.Abs, nil
}

func invertTemplate[T any](alg *engine.Algebra[T]) (func(a T) (T, error), error) {
	one := alg.One()

	return func(a T) (T, error) {
		if alg.IsZero(a) {
			var zero T
			return zero, computeErrorf(invertOp, engine.ErrDivideByZero)
		}

		return alg.Div(one, a), nil
	}, nil
}

// Add returns a + b.
func Add[T any](a, b T) (T, error) {
	f, err := engine.Resolve(addOp, addTemplate[T])
	if err != nil {
		var zero T
		return zero, err
	}

	return f(a, b), nil
}

// Subtract returns a - b.
func Subtract[T any](a, b T) (T, error) {
	f, err := engine.Resolve(subtractOp, subtractTemplate[T])
	if err != nil {
		var zero T
		return zero, err
	}

	return f(a, b), nil
}

// Multiply returns a * b.
func Multiply[T any](a, b T) (T, error) {
	f, err := engine.Resolve(multiplyOp, multiplyTemplate[T])
	if err != nil {
		var zero T
		return zero, err
	}

	return f(a, b), nil
}

// Divide returns a / b, or ErrDivideByZero when b == 0.
func Divide[T any](a, b T) (T, error) {
	f, err := engine.Resolve(divideOp, divideTemplate[T])
	if err != nil {
		var zero T
		return zero, err
	}

	return f(a, b)
}

// Remainder returns a % b (math.Mod semantics for floats), or
// ErrDivideByZero when b == 0.
func Remainder[T any](a, b T) (T, error) {
	f, err := engine.Resolve(remainderOp, remainderTemplate[T])
	if err != nil {
		var zero T
		return zero, err
	}

	return f(a, b)
}

// Negate returns -a. For unsigned kinds this wraps, so Negate(uint8(1)) is 255.
func Negate[T any](a T) (T, error) {
	f, err := engine.Resolve(negateOp, negateTemplate[T])
	if err != nil {
		var zero T
		return zero, err
	}

	return f(a), nil
}

// AbsoluteValue returns |a|.
func AbsoluteValue[T any](a T) (T, error) {
	f, err := engine.Resolve(AbsoluteValueOp, absoluteTemplate[T])
	if err != nil {
		var zero T
		return zero, err
	}

	return f(a), nil
}

// Invert returns 1 / a, or ErrDivideByZero when a == 0.
func Invert[T any](a T) (T, error) {
	f, err := engine.Resolve(invertOp, invertTemplate[T])
	if err != nil {
		var zero T
		return zero, err
	}

	return f(a)
}

// AbsoluteValueFor resolves AbsoluteValue for alg's element type through its
// slot, for use inside other templates.
func AbsoluteValueFor[T any](alg *engine.Algebra[T]) (func(a T) T, error) {
	return engine.Dependency(alg, AbsoluteValueOp, absoluteTemplate[T])
}

// InvertFor resolves Invert for alg's element type through its slot.
func InvertFor[T any](alg *engine.Algebra[T]) (func(a T) (T, error), error) {
	return engine.Dependency(alg, invertOp, invertTemplate[T])
}

// DivideFor resolves Divide for alg's element type through its slot.
func DivideFor[T any](alg *engine.Algebra[T]) (func(a, b T) (T, error), error) {
	return engine.Dependency(alg, divideOp, divideTemplate[T])
}
