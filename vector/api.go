// SPDX-License-Identifier: MIT

package vector

import (
	"github.com/katalvlaran/numerus/capability"
	"github.com/katalvlaran/numerus/engine"
)

// Add returns a+b. Lengths must match.
func Add[T any](a, b Vector[T]) (Vector[T], error) {
	f, err := engine.Resolve(addOp, addTemplate[T])
	if err != nil {
		return nil, err
	}

	return f(a, b)
}

// Subtract returns a-b. Lengths must match.
func Subtract[T any](a, b Vector[T]) (Vector[T], error) {
	f, err := engine.Resolve(subtractOp, subtractTemplate[T])
	if err != nil {
		return nil, err
	}

	return f(a, b)
}

// Negate returns -a.
func Negate[T any](a Vector[T]) (Vector[T], error) {
	f, err := engine.Resolve(negateOp, negateTemplate[T])
	if err != nil {
		return nil, err
	}

	return f(a), nil
}

// Multiply scales a by s.
func Multiply[T any](a Vector[T], s T) (Vector[T], error) {
	f, err := engine.Resolve(multiplyOp, multiplyTemplate[T])
	if err != nil {
		return nil, err
	}

	return f(a, s), nil
}

// Divide scales a by 1/s. s == 0 fails with engine.ErrDivideByZero.
func Divide[T any](a Vector[T], s T) (Vector[T], error) {
	f, err := engine.Resolve(divideOp, divideTemplate[T])
	if err != nil {
		return nil, err
	}

	return f(a, s)
}

// DotProduct returns Σ aᵢbᵢ.
func DotProduct[T any](a, b Vector[T]) (T, error) {
	f, err := engine.Resolve(DotProductOp, dotProductTemplate[T])
	if err != nil {
		var zero T
		return zero, err
	}

	return f(a, b)
}

// CrossProduct returns a×b for 3-component vectors.
func CrossProduct[T any](a, b Vector[T]) (Vector[T], error) {
	f, err := engine.Resolve(crossProductOp, crossProductTemplate[T])
	if err != nil {
		return nil, err
	}

	return f(a, b)
}

// MagnitudeSquared returns a·a.
func MagnitudeSquared[T any](a Vector[T]) (T, error) {
	f, err := engine.Resolve(magnitudeSquaredOp, magnitudeSquaredTemplate[T])
	if err != nil {
		var zero T
		return zero, err
	}

	return f(a), nil
}

// Magnitude returns |a|.
func Magnitude[T any](a Vector[T]) (T, error) {
	f, err := engine.Resolve(magnitudeOp, magnitudeTemplate[T])
	if err != nil {
		var zero T
		return zero, err
	}

	return f(a)
}

// Normalize returns a/|a|. The zero vector fails with
// engine.ErrDivideByZero.
func Normalize[T any](a Vector[T]) (Vector[T], error) {
	f, err := engine.Resolve(NormalizeOp, normalizeTemplate[T])
	if err != nil {
		return nil, err
	}

	return f(a)
}

// Angle returns the angle between a and b in radians. It needs a
// registered trig strategy for T.
func Angle[T any](a, b Vector[T]) (T, error) {
	f, err := engine.Resolve(angleOp, angleTemplate[T])
	if err != nil {
		var zero T
		return zero, err
	}

	return f(a, b)
}

// Lerp returns a + (b-a)·t.
func Lerp[T any](a, b Vector[T], t T) (Vector[T], error) {
	f, err := engine.Resolve(lerpOp, lerpTemplate[T])
	if err != nil {
		return nil, err
	}

	return f(a, b, t)
}

// Blerp returns the barycentric interpolation a + u(b-a) + v(c-a).
func Blerp[T any](a, b, c Vector[T], u, v T) (Vector[T], error) {
	f, err := engine.Resolve(blerpOp, blerpTemplate[T])
	if err != nil {
		return nil, err
	}

	return f(a, b, c, u, v)
}

// Slerp is not implemented for any element type and always fails with
// engine.ErrUnsupported.
func Slerp[T any](_, _ Vector[T], _ T) (Vector[T], error) {
	return nil, engine.Unsupported(family+".Slerp", capability.TypeOf[T]().Name)
}

// EqualsValue reports whether a and b have equal lengths and components.
func EqualsValue[T any](a, b Vector[T]) (bool, error) {
	f, err := engine.Resolve(equalsValueOp, equalsValueTemplate[T])
	if err != nil {
		return false, err
	}

	return f(a, b), nil
}

// EqualsLeniency reports whether every component pair is within leniency.
func EqualsLeniency[T any](a, b Vector[T], leniency T) (bool, error) {
	f, err := engine.Resolve(equalsLeniencyOp, equalsLeniencyTemplate[T])
	if err != nil {
		return false, err
	}

	return f(a, b, leniency), nil
}

// DotProductFor resolves DotProduct for alg's element type through its slot.
func DotProductFor[T any](alg *engine.Algebra[T]) (func(a, b Vector[T]) (T, error), error) {
	return engine.Dependency(alg, DotProductOp, dotProductTemplate[T])
}

// SubtractFor resolves Subtract for alg's element type through its slot.
func SubtractFor[T any](alg *engine.Algebra[T]) (func(a, b Vector[T]) (Vector[T], error), error) {
	return engine.Dependency(alg, subtractOp, subtractTemplate[T])
}

// CrossProductFor resolves CrossProduct for alg's element type through its
// slot.
func CrossProductFor[T any](alg *engine.Algebra[T]) (func(a, b Vector[T]) (Vector[T], error), error) {
	return engine.Dependency(alg, crossProductOp, crossProductTemplate[T])
}

// NormalizeFor resolves Normalize for alg's element type through its slot.
func NormalizeFor[T any](alg *engine.Algebra[T]) (func(a Vector[T]) (Vector[T], error), error) {
	return engine.Dependency(alg, NormalizeOp, normalizeTemplate[T])
}
