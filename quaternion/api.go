// SPDX-License-Identifier: MIT

package quaternion

import (
	"github.com/katalvlaran/numerus/capability"
	"github.com/katalvlaran/numerus/engine"
	"github.com/katalvlaran/numerus/vector"
)

// Identity returns (0, 0, 0, 1).
func Identity[T any]() (Quaternion[T], error) {
	f, err := engine.Resolve(identityOp, identityTemplate[T])
	if err != nil {
		return Quaternion[T]{}, err
	}

	return f(), nil
}

// Add returns a+b.
func Add[T any](a, b Quaternion[T]) (Quaternion[T], error) {
	f, err := engine.Resolve(addOp, addTemplate[T])
	if err != nil {
		return Quaternion[T]{}, err
	}

	return f(a, b), nil
}

// Subtract returns a-b.
func Subtract[T any](a, b Quaternion[T]) (Quaternion[T], error) {
	f, err := engine.Resolve(subtractOp, subtractTemplate[T])
	if err != nil {
		return Quaternion[T]{}, err
	}

	return f(a, b), nil
}

// Multiply returns the Hamilton product a ⊗ b.
func Multiply[T any](a, b Quaternion[T]) (Quaternion[T], error) {
	f, err := engine.Resolve(multiplyOp, multiplyTemplate[T])
	if err != nil {
		return Quaternion[T]{}, err
	}

	return f(a, b), nil
}

// MultiplyScalar returns s·q.
func MultiplyScalar[T any](q Quaternion[T], s T) (Quaternion[T], error) {
	f, err := engine.Resolve(multiplyScalarOp, multiplyScalarTemplate[T])
	if err != nil {
		return Quaternion[T]{}, err
	}

	return f(q, s), nil
}

// MultiplyVector returns q ⊗ (v, 0); v must have three components.
func MultiplyVector[T any](q Quaternion[T], v vector.Vector[T]) (Quaternion[T], error) {
	f, err := engine.Resolve(multiplyVectorOp, multiplyVectorTemplate[T])
	if err != nil {
		return Quaternion[T]{}, err
	}

	return f(q, v)
}

// Conjugate returns (-x, -y, -z, w).
func Conjugate[T any](q Quaternion[T]) (Quaternion[T], error) {
	f, err := engine.Resolve(conjugateOp, conjugateTemplate[T])
	if err != nil {
		return Quaternion[T]{}, err
	}

	return f(q), nil
}

// MagnitudeSquared returns x²+y²+z²+w².
func MagnitudeSquared[T any](q Quaternion[T]) (T, error) {
	f, err := engine.Resolve(magnitudeSquaredOp, magnitudeSquaredTemplate[T])
	if err != nil {
		var zero T
		return zero, err
	}

	return f(q), nil
}

// Magnitude returns |q|.
func Magnitude[T any](q Quaternion[T]) (T, error) {
	f, err := engine.Resolve(magnitudeOp, magnitudeTemplate[T])
	if err != nil {
		var zero T
		return zero, err
	}

	return f(q)
}

// Normalize returns q/|q|. The zero quaternion fails with
// engine.ErrDivideByZero.
func Normalize[T any](q Quaternion[T]) (Quaternion[T], error) {
	f, err := engine.Resolve(normalizeOp, normalizeTemplate[T])
	if err != nil {
		return Quaternion[T]{}, err
	}

	return f(q)
}

// Invert returns q⁻¹ = q*/|q|².
func Invert[T any](q Quaternion[T]) (Quaternion[T], error) {
	f, err := engine.Resolve(invertOp, invertTemplate[T])
	if err != nil {
		return Quaternion[T]{}, err
	}

	return f(q)
}

// Lerp returns a + (b-a)·t without renormalizing.
func Lerp[T any](a, b Quaternion[T], t T) (Quaternion[T], error) {
	f, err := engine.Resolve(lerpOp, lerpTemplate[T])
	if err != nil {
		return Quaternion[T]{}, err
	}

	return f(a, b, t), nil
}

// Slerp is not implemented for any element type and always fails with
// engine.ErrUnsupported.
func Slerp[T any](_, _ Quaternion[T], _ T) (Quaternion[T], error) {
	return Quaternion[T]{}, engine.Unsupported(family+".Slerp", capability.TypeOf[T]().Name)
}

// Rotate returns v rotated by q: the imaginary part of q ⊗ (v, 0) ⊗ q⁻¹.
func Rotate[T any](q Quaternion[T], v vector.Vector[T]) (vector.Vector[T], error) {
	f, err := engine.Resolve(rotateOp, rotateTemplate[T])
	if err != nil {
		return nil, err
	}

	return f(q, v)
}

// FromAxisAngle returns the unit rotation of angle radians about axis.
func FromAxisAngle[T any](axis vector.Vector[T], angle T) (Quaternion[T], error) {
	f, err := engine.Resolve(fromAxisAngleOp, fromAxisAngleTemplate[T])
	if err != nil {
		return Quaternion[T]{}, err
	}

	return f(axis, angle)
}

// RotateBy rotates v by angle radians about axis.
func RotateBy[T any](v, axis vector.Vector[T], angle T) (vector.Vector[T], error) {
	q, err := FromAxisAngle(axis, angle)
	if err != nil {
		return nil, err
	}

	return Rotate(q, v)
}

// EqualsValue reports whether all components are equal.
func EqualsValue[T any](a, b Quaternion[T]) (bool, error) {
	f, err := engine.Resolve(equalsValueOp, equalsValueTemplate[T])
	if err != nil {
		return false, err
	}

	return f(a, b), nil
}

// EqualsLeniency reports whether every component pair is within leniency.
func EqualsLeniency[T any](a, b Quaternion[T], leniency T) (bool, error) {
	f, err := engine.Resolve(equalsLeniencyOp, equalsLeniencyTemplate[T])
	if err != nil {
		return false, err
	}

	return f(a, b, leniency), nil
}
