// SPDX-License-Identifier: MIT

package quaternion

import (
	"fmt"

	"github.com/katalvlaran/numerus/capability"
	"github.com/katalvlaran/numerus/compute"
	"github.com/katalvlaran/numerus/engine"
	"github.com/katalvlaran/numerus/trig"
	"github.com/katalvlaran/numerus/vector"
)

const family = "quaternion"

// Quaternion is x·i + y·j + z·k + w. The identity rotation is (0, 0, 0, 1).
type Quaternion[T any] struct {
	X, Y, Z, W T
}

// New returns the quaternion (x, y, z, w).
func New[T any](x, y, z, w T) Quaternion[T] { return Quaternion[T]{X: x, Y: y, Z: z, W: w} }

// Vector returns the imaginary part (x, y, z).
func (q Quaternion[T]) Vector() vector.Vector[T] { return vector.Of(q.X, q.Y, q.Z) }

func (q Quaternion[T]) String() string { return fmt.Sprintf("(%v, %v, %v, %v)", q.X, q.Y, q.Z, q.W) }

var (
	identityOp = engine.Define(family, "Identity", 0, "() Quaternion[T]",
		capability.Conversion)
	addOp = engine.Define(family, "Add", 2, "(a, b Quaternion[T]) Quaternion[T]",
		capability.Addition)
	subtractOp = engine.Define(family, "Subtract", 2, "(a, b Quaternion[T]) Quaternion[T]",
		capability.Subtraction)
	multiplyOp = engine.Define(family, "Multiply", 2, "(a, b Quaternion[T]) Quaternion[T]",
		capability.Addition, capability.Subtraction, capability.Multiplication)
	multiplyScalarOp = engine.Define(family, "MultiplyScalar", 2, "(q Quaternion[T], s T) Quaternion[T]",
		capability.Multiplication)
	multiplyVectorOp = engine.Define(family, "MultiplyVector", 2,
		"(q Quaternion[T], v vector.Vector[T]) (Quaternion[T], error)",
		capability.Conversion).DependsOn(multiplyOp)
	conjugateOp = engine.Define(family, "Conjugate", 1, "(q Quaternion[T]) Quaternion[T]",
		capability.Negation)
	magnitudeSquaredOp = engine.Define(family, "MagnitudeSquared", 1, "(q Quaternion[T]) T",
		capability.Addition, capability.Multiplication)
	magnitudeOp = engine.Define(family, "Magnitude", 1, "(q Quaternion[T]) (T, error)").
		DependsOn(magnitudeSquaredOp, compute.SquareRootOp)
	normalizeOp = engine.Define(family, "Normalize", 1, "(q Quaternion[T]) (Quaternion[T], error)",
		capability.Division, capability.Equality, capability.Conversion).DependsOn(magnitudeOp)
	invertOp = engine.Define(family, "Invert", 1, "(q Quaternion[T]) (Quaternion[T], error)",
		capability.Division, capability.Equality, capability.Conversion).
		DependsOn(conjugateOp, magnitudeSquaredOp)
	lerpOp = engine.Define(family, "Lerp", 3, "(a, b Quaternion[T], t T) Quaternion[T]",
		capability.Addition, capability.Subtraction, capability.Multiplication)
	rotateOp = engine.Define(family, "Rotate", 2,
		"(q Quaternion[T], v vector.Vector[T]) (vector.Vector[T], error)").
		DependsOn(multiplyOp, multiplyVectorOp, invertOp)
	fromAxisAngleOp = engine.Define(family, "FromAxisAngle", 2,
		"(axis vector.Vector[T], angle T) (Quaternion[T], error)",
		capability.Multiplication, capability.Division, capability.Conversion).
		DependsOn(vector.NormalizeOp, trig.SineOp, trig.CosineOp)
	equalsValueOp = engine.Define(family, "EqualsValue", 2, "(a, b Quaternion[T]) bool",
		capability.Equality)
	equalsLeniencyOp = engine.Define(family, "EqualsLeniency", 3, "(a, b Quaternion[T], leniency T) bool",
		capability.Addition, capability.LessThan).DependsOn(compute.EqualsLeniencyOp)
)

func quaternionErrorf(d *engine.Descriptor, err error) error {
	return fmt.Errorf("%s: %w", d.QualifiedName(), err)
}

// each applies f to all four components.
func each[T any](q Quaternion[T], f func(x T) T) Quaternion[T] {
	return Quaternion[T]{X: f(q.X), Y: f(q.Y), Z: f(q.Z), W: f(q.W)}
}

// zip applies f to paired components.
func zip[T any](a, b Quaternion[T], f func(x, y T) T) Quaternion[T] {
	return Quaternion[T]{X: f(a.X, b.X), Y: f(a.Y, b.Y), Z: f(a.Z, b.Z), W: f(a.W, b.W)}
}

func identityTemplate[T any](alg *engine.Algebra[T]) (func() Quaternion[T], error) {
	return func() Quaternion[T] {
		zero := alg.Zero()
		return Quaternion[T]{X: zero, Y: zero, Z: zero, W: alg.One()}
	}, nil
}

func addTemplate[T any](alg *engine.Algebra[T]) (func(a, b Quaternion[T]) Quaternion[T], error) {
	return func(a, b Quaternion[T]) Quaternion[T] { return zip(a, b, alg.Add) }, nil
}

func subtractTemplate[T any](alg *engine.Algebra[T]) (func(a, b Quaternion[T]) Quaternion[T], error) {
	return func(a, b Quaternion[T]) Quaternion[T] { return zip(a, b, alg.Sub) }, nil
}

// multiplyTemplate is the Hamilton product a ⊗ b. It does not commute.
func multiplyTemplate[T any](alg *engine.Algebra[T]) (func(a, b Quaternion[T]) Quaternion[T], error) {
	add, sub, mul := alg.Add, alg.Sub, alg.Mul

	return func(a, b Quaternion[T]) Quaternion[T] {
		return Quaternion[T]{
			X: sub(add(add(mul(a.W, b.X), mul(a.X, b.W)), mul(a.Y, b.Z)), mul(a.Z, b.Y)),
			Y: add(add(sub(mul(a.W, b.Y), mul(a.X, b.Z)), mul(a.Y, b.W)), mul(a.Z, b.X)),
			Z: add(sub(add(mul(a.W, b.Z), mul(a.X, b.Y)), mul(a.Y, b.X)), mul(a.Z, b.W)),
			W: sub(sub(sub(mul(a.W, b.W), mul(a.X, b.X)), mul(a.Y, b.Y)), mul(a.Z, b.Z)),
		}
	}, nil
}

func multiplyScalarTemplate[T any](alg *engine.Algebra[T]) (func(q Quaternion[T], s T) Quaternion[T], error) {
	return func(q Quaternion[T], s T) Quaternion[T] {
		return each(q, func(x T) T { return alg.Mul(x, s) })
	}, nil
}

// multiplyVectorTemplate treats v as the pure quaternion (v, 0).
func multiplyVectorTemplate[T any](alg *engine.Algebra[T]) (func(q Quaternion[T], v vector.Vector[T]) (Quaternion[T], error), error) {
	multiply, err := engine.Dependency(alg, multiplyOp, multiplyTemplate[T])
	if err != nil {
		return nil, err
	}

	return func(q Quaternion[T], v vector.Vector[T]) (Quaternion[T], error) {
		if len(v) != 3 {
			return Quaternion[T]{}, quaternionErrorf(multiplyVectorOp, engine.ErrDimensionMismatch)
		}

		return multiply(q, Quaternion[T]{X: v[0], Y: v[1], Z: v[2], W: alg.Zero()}), nil
	}, nil
}

func conjugateTemplate[T any](alg *engine.Algebra[T]) (func(q Quaternion[T]) Quaternion[T], error) {
	return func(q Quaternion[T]) Quaternion[T] {
		return Quaternion[T]{X: alg.Neg(q.X), Y: alg.Neg(q.Y), Z: alg.Neg(q.Z), W: q.W}
	}, nil
}

func magnitudeSquaredTemplate[T any](alg *engine.Algebra[T]) (func(q Quaternion[T]) T, error) {
	return func(q Quaternion[T]) T {
		sum := alg.Mul(q.X, q.X)
		sum = alg.Add(sum, alg.Mul(q.Y, q.Y))
		sum = alg.Add(sum, alg.Mul(q.Z, q.Z))

		return alg.Add(sum, alg.Mul(q.W, q.W))
	}, nil
}

func magnitudeTemplate[T any](alg *engine.Algebra[T]) (func(q Quaternion[T]) (T, error), error) {
	squared, err := engine.Dependency(alg, magnitudeSquaredOp, magnitudeSquaredTemplate[T])
	if err != nil {
		return nil, err
	}
	sqrt, err := compute.SquareRootFor(alg)
	if err != nil {
		return nil, err
	}

	return func(q Quaternion[T]) (T, error) { return sqrt(squared(q)) }, nil
}

func normalizeTemplate[T any](alg *engine.Algebra[T]) (func(q Quaternion[T]) (Quaternion[T], error), error) {
	magnitude, err := engine.Dependency(alg, magnitudeOp, magnitudeTemplate[T])
	if err != nil {
		return nil, err
	}

	return func(q Quaternion[T]) (Quaternion[T], error) {
		m, err := magnitude(q)
		if err != nil {
			return Quaternion[T]{}, quaternionErrorf(normalizeOp, err)
		}
		if alg.IsZero(m) {
			return Quaternion[T]{}, quaternionErrorf(normalizeOp, engine.ErrDivideByZero)
		}

		return each(q, func(x T) T { return alg.Div(x, m) }), nil
	}, nil
}

// invertTemplate is q* / |q|², through the Conjugate and MagnitudeSquared
// slots. The zero quaternion has no inverse.
func invertTemplate[T any](alg *engine.Algebra[T]) (func(q Quaternion[T]) (Quaternion[T], error), error) {
	conjugate, err := engine.Dependency(alg, conjugateOp, conjugateTemplate[T])
	if err != nil {
		return nil, err
	}
	squared, err := engine.Dependency(alg, magnitudeSquaredOp, magnitudeSquaredTemplate[T])
	if err != nil {
		return nil, err
	}

	return func(q Quaternion[T]) (Quaternion[T], error) {
		n := squared(q)
		if alg.IsZero(n) {
			return Quaternion[T]{}, quaternionErrorf(invertOp, engine.ErrDivideByZero)
		}

		return each(conjugate(q), func(x T) T { return alg.Div(x, n) }), nil
	}, nil
}

// lerpTemplate blends component-wise: a + (b-a)·t. The result is not
// renormalized.
func lerpTemplate[T any](alg *engine.Algebra[T]) (func(a, b Quaternion[T], t T) Quaternion[T], error) {
	return func(a, b Quaternion[T], t T) Quaternion[T] {
		return zip(a, b, func(x, y T) T { return alg.Add(x, alg.Mul(alg.Sub(y, x), t)) })
	}, nil
}

// rotateTemplate is the sandwich product q ⊗ (v, 0) ⊗ q⁻¹. q need not be a
// unit quaternion; the inverse cancels its scale.
func rotateTemplate[T any](alg *engine.Algebra[T]) (func(q Quaternion[T], v vector.Vector[T]) (vector.Vector[T], error), error) {
	multiply, err := engine.Dependency(alg, multiplyOp, multiplyTemplate[T])
	if err != nil {
		return nil, err
	}
	multiplyVector, err := engine.Dependency(alg, multiplyVectorOp, multiplyVectorTemplate[T])
	if err != nil {
		return nil, err
	}
	invert, err := engine.Dependency(alg, invertOp, invertTemplate[T])
	if err != nil {
		return nil, err
	}

	return func(q Quaternion[T], v vector.Vector[T]) (vector.Vector[T], error) {
		qv, err := multiplyVector(q, v)
		if err != nil {
			return nil, quaternionErrorf(rotateOp, err)
		}
		inv, err := invert(q)
		if err != nil {
			return nil, quaternionErrorf(rotateOp, err)
		}

		return multiply(qv, inv).Vector(), nil
	}, nil
}

// fromAxisAngleTemplate builds (â·sin(θ/2), cos(θ/2)) for the normalized axis
// â. Sine and cosine come from the trig slots, so user types get the series
// approximation.
func fromAxisAngleTemplate[T any](alg *engine.Algebra[T]) (func(axis vector.Vector[T], angle T) (Quaternion[T], error), error) {
	normalize, err := vector.NormalizeFor(alg)
	if err != nil {
		return nil, err
	}
	sin, err := trig.SineFor(alg)
	if err != nil {
		return nil, err
	}
	cos, err := trig.CosineFor(alg)
	if err != nil {
		return nil, err
	}

	return func(axis vector.Vector[T], angle T) (Quaternion[T], error) {
		if len(axis) != 3 {
			return Quaternion[T]{}, quaternionErrorf(fromAxisAngleOp, engine.ErrDimensionMismatch)
		}
		unit, err := normalize(axis)
		if err != nil {
			return Quaternion[T]{}, quaternionErrorf(fromAxisAngleOp, err)
		}
		half := alg.Div(angle, alg.Int(2))
		s := sin(half)

		return Quaternion[T]{
			X: alg.Mul(unit[0], s),
			Y: alg.Mul(unit[1], s),
			Z: alg.Mul(unit[2], s),
			W: cos(half),
		}, nil
	}, nil
}

func equalsValueTemplate[T any](alg *engine.Algebra[T]) (func(a, b Quaternion[T]) bool, error) {
	return func(a, b Quaternion[T]) bool {
		return alg.Equal(a.X, b.X) && alg.Equal(a.Y, b.Y) && alg.Equal(a.Z, b.Z) && alg.Equal(a.W, b.W)
	}, nil
}

func equalsLeniencyTemplate[T any](alg *engine.Algebra[T]) (func(a, b Quaternion[T], leniency T) bool, error) {
	near, err := compute.EqualsLeniencyFor(alg)
	if err != nil {
		return nil, err
	}

	return func(a, b Quaternion[T], leniency T) bool {
		return near(a.X, b.X, leniency) && near(a.Y, b.Y, leniency) &&
			near(a.Z, b.Z, leniency) && near(a.W, b.W, leniency)
	}, nil
}
