// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"

	"github.com/katalvlaran/numerus/capability"
	"github.com/katalvlaran/numerus/compute"
	"github.com/katalvlaran/numerus/engine"
	"github.com/katalvlaran/numerus/trig"
)

const family = "vector"

// Vector is a fixed-length sequence of components. The operations in this
// package never modify their arguments.
type Vector[T any] []T

// Of returns a Vector holding vs.
func Of[T any](vs ...T) Vector[T] { return Vector[T](vs) }

// Dim returns the number of components.
func (v Vector[T]) Dim() int { return len(v) }

var (
	addOp = engine.Define(family, "Add", 2, "(a, b Vector[T]) (Vector[T], error)",
		capability.Addition)
	subtractOp = engine.Define(family, "Subtract", 2, "(a, b Vector[T]) (Vector[T], error)",
		capability.Subtraction)
	negateOp = engine.Define(family, "Negate", 1, "(a Vector[T]) Vector[T]",
		capability.Negation)
	multiplyOp = engine.Define(family, "Multiply", 2, "(a Vector[T], s T) Vector[T]",
		capability.Multiplication)
	divideOp = engine.Define(family, "Divide", 2, "(a Vector[T], s T) (Vector[T], error)",
		capability.Division, capability.Equality, capability.Conversion)
	// DotProductOp describes DotProduct.
	DotProductOp = engine.Define(family, "DotProduct", 2, "(a, b Vector[T]) (T, error)",
		capability.Addition, capability.Multiplication, capability.Conversion)
	crossProductOp = engine.Define(family, "CrossProduct", 2, "(a, b Vector[T]) (Vector[T], error)",
		capability.Subtraction, capability.Multiplication)
	magnitudeSquaredOp = engine.Define(family, "MagnitudeSquared", 1, "(a Vector[T]) T").
		DependsOn(DotProductOp)
	magnitudeOp = engine.Define(family, "Magnitude", 1, "(a Vector[T]) (T, error)").
		DependsOn(magnitudeSquaredOp, compute.SquareRootOp)
	angleOp = engine.Define(family, "Angle", 2, "(a, b Vector[T]) (T, error)",
		capability.Multiplication, capability.Division, capability.LessThan,
		capability.Negation, capability.Equality, capability.Conversion).
		DependsOn(DotProductOp, magnitudeOp)
	lerpOp = engine.Define(family, "Lerp", 3, "(a, b Vector[T], t T) (Vector[T], error)",
		capability.Addition, capability.Subtraction, capability.Multiplication)
	blerpOp = engine.Define(family, "Blerp", 5, "(a, b, c Vector[T], u, v T) (Vector[T], error)",
		capability.Addition, capability.Subtraction, capability.Multiplication)
	equalsValueOp = engine.Define(family, "EqualsValue", 2, "(a, b Vector[T]) bool",
		capability.Equality)
	equalsLeniencyOp = engine.Define(family, "EqualsLeniency", 3, "(a, b Vector[T], leniency T) bool",
		capability.Addition, capability.LessThan).DependsOn(compute.EqualsLeniencyOp)
)

// NormalizeOp describes Normalize.
var NormalizeOp = engine.Define(family, "Normalize", 1, "(a Vector[T]) (Vector[T], error)",
	capability.Division, capability.Equality, capability.Conversion).DependsOn(magnitudeOp)

func vectorErrorf(d *engine.Descriptor, err error) error {
	return fmt.Errorf("%s: %w", d.QualifiedName(), err)
}

// zip applies f component-wise to equally long a and b.
func zip[T any](d *engine.Descriptor, a, b Vector[T], f func(x, y T) T) (Vector[T], error) {
	if len(a) != len(b) {
		return nil, vectorErrorf(d, engine.ErrDimensionMismatch)
	}
	out := make(Vector[T], len(a))
	for i := range a {
		out[i] = f(a[i], b[i])
	}

	return out, nil
}

func each[T any](a Vector[T], f func(x T) T) Vector[T] {
	out := make(Vector[T], len(a))
	for i, x := range a {
		out[i] = f(x)
	}

	return out
}

func addTemplate[T any](alg *engine.Algebra[T]) (func(a, b Vector[T]) (Vector[T], error), error) {
	return func(a, b Vector[T]) (Vector[T], error) { return zip(addOp, a, b, alg.Add) }, nil
}

func subtractTemplate[T any](alg *engine.Algebra[T]) (func(a, b Vector[T]) (Vector[T], error), error) {
	return func(a, b Vector[T]) (Vector[T], error) { return zip(subtractOp, a, b, alg.Sub) }, nil
}

func negateTemplate[T any](alg *engine.Algebra[T]) (func(a Vector[T]) Vector[T], error) {
	return func(a Vector[T]) Vector[T] { return each(a, alg.Neg) }, nil
}

func multiplyTemplate[T any](alg *engine.Algebra[T]) (func(a Vector[T], s T) Vector[T], error) {
	return func(a Vector[T], s T) Vector[T] {
		return each(a, func(x T) T { return alg.Mul(x, s) })
	}, nil
}

func divideTemplate[T any](alg *engine.Algebra[T]) (func(a Vector[T], s T) (Vector[T], error), error) {
	return func(a Vector[T], s T) (Vector[T], error) {
		if alg.IsZero(s) {
			return nil, vectorErrorf(divideOp, engine.ErrDivideByZero)
		}

		return each(a, func(x T) T { return alg.Div(x, s) }), nil
	}, nil
}

func dotProductTemplate[T any](alg *engine.Algebra[T]) (func(a, b Vector[T]) (T, error), error) {
	return func(a, b Vector[T]) (T, error) {
		sum := alg.Zero()
		if len(a) != len(b) {
			return sum, vectorErrorf(DotProductOp, engine.ErrDimensionMismatch)
		}
		for i := range a {
			sum = alg.Add(sum, alg.Mul(a[i], b[i]))
		}

		return sum, nil
	}, nil
}

// crossProductTemplate is defined for 3-component vectors only.
func crossProductTemplate[T any](alg *engine.Algebra[T]) (func(a, b Vector[T]) (Vector[T], error), error) {
	return func(a, b Vector[T]) (Vector[T], error) {
		if len(a) != 3 || len(b) != 3 {
			return nil, vectorErrorf(crossProductOp, engine.ErrDimensionMismatch)
		}

		return Vector[T]{
			alg.Sub(alg.Mul(a[1], b[2]), alg.Mul(a[2], b[1])),
			alg.Sub(alg.Mul(a[2], b[0]), alg.Mul(a[0], b[2])),
			alg.Sub(alg.Mul(a[0], b[1]), alg.Mul(a[1], b[0])),
		}, nil
	}, nil
}

// magnitudeSquaredTemplate is a·a through the DotProduct slot.
func magnitudeSquaredTemplate[T any](alg *engine.Algebra[T]) (func(a Vector[T]) T, error) {
	dot, err := engine.Dependency(alg, DotProductOp, dotProductTemplate[T])
	if err != nil {
		return nil, err
	}

	return func(a Vector[T]) T {
		s, _ := dot(a, a) // same length by construction
		return s
	}, nil
}

func magnitudeTemplate[T any](alg *engine.Algebra[T]) (func(a Vector[T]) (T, error), error) {
	squared, err := engine.Dependency(alg, magnitudeSquaredOp, magnitudeSquaredTemplate[T])
	if err != nil {
		return nil, err
	}
	sqrt, err := compute.SquareRootFor(alg)
	if err != nil {
		return nil, err
	}

	return func(a Vector[T]) (T, error) { return sqrt(squared(a)) }, nil
}

func normalizeTemplate[T any](alg *engine.Algebra[T]) (func(a Vector[T]) (Vector[T], error), error) {
	magnitude, err := engine.Dependency(alg, magnitudeOp, magnitudeTemplate[T])
	if err != nil {
		return nil, err
	}

	return func(a Vector[T]) (Vector[T], error) {
		m, err := magnitude(a)
		if err != nil {
			return nil, vectorErrorf(NormalizeOp, err)
		}
		if alg.IsZero(m) {
			return nil, vectorErrorf(NormalizeOp, engine.ErrDivideByZero)
		}

		return each(a, func(x T) T { return alg.Div(x, m) }), nil
	}, nil
}

// angleTemplate is acos(a·b / (|a||b|)). The ratio is clamped to [-1, 1]
// against rounding; the arc cosine comes from T's trig strategy.
func angleTemplate[T any](alg *engine.Algebra[T]) (func(a, b Vector[T]) (T, error), error) {
	dot, err := engine.Dependency(alg, DotProductOp, dotProductTemplate[T])
	if err != nil {
		return nil, err
	}
	magnitude, err := engine.Dependency(alg, magnitudeOp, magnitudeTemplate[T])
	if err != nil {
		return nil, err
	}
	one := alg.One()
	minusOne := alg.Neg(one)

	return func(a, b Vector[T]) (T, error) {
		zero := alg.Zero()
		d, err := dot(a, b)
		if err != nil {
			return zero, vectorErrorf(angleOp, err)
		}
		ma, err := magnitude(a)
		if err != nil {
			return zero, vectorErrorf(angleOp, err)
		}
		mb, err := magnitude(b)
		if err != nil {
			return zero, vectorErrorf(angleOp, err)
		}
		den := alg.Mul(ma, mb)
		if alg.IsZero(den) {
			return zero, vectorErrorf(angleOp, engine.ErrDivideByZero)
		}
		ratio := alg.Max(minusOne, alg.Min(one, alg.Div(d, den)))

		return trig.For[T]().Acos(ratio)
	}, nil
}

func lerpTemplate[T any](alg *engine.Algebra[T]) (func(a, b Vector[T], t T) (Vector[T], error), error) {
	return func(a, b Vector[T], t T) (Vector[T], error) {
		return zip(lerpOp, a, b, func(x, y T) T { return alg.Add(x, alg.Mul(alg.Sub(y, x), t)) })
	}, nil
}

// blerpTemplate interpolates barycentrically: a + u(b-a) + v(c-a).
func blerpTemplate[T any](alg *engine.Algebra[T]) (func(a, b, c Vector[T], u, v T) (Vector[T], error), error) {
	return func(a, b, c Vector[T], u, v T) (Vector[T], error) {
		if len(a) != len(b) || len(a) != len(c) {
			return nil, vectorErrorf(blerpOp, engine.ErrDimensionMismatch)
		}
		out := make(Vector[T], len(a))
		for i := range a {
			du := alg.Mul(alg.Sub(b[i], a[i]), u)
			dv := alg.Mul(alg.Sub(c[i], a[i]), v)
			out[i] = alg.Add(alg.Add(a[i], du), dv)
		}

		return out, nil
	}, nil
}

func equalsValueTemplate[T any](alg *engine.Algebra[T]) (func(a, b Vector[T]) bool, error) {
	return func(a, b Vector[T]) bool {
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if !alg.Equal(a[i], b[i]) {
				return false
			}
		}

		return true
	}, nil
}

func equalsLeniencyTemplate[T any](alg *engine.Algebra[T]) (func(a, b Vector[T], leniency T) bool, error) {
	near, err := compute.EqualsLeniencyFor(alg)
	if err != nil {
		return nil, err
	}

	return func(a, b Vector[T], leniency T) bool {
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if !near(a[i], b[i], leniency) {
				return false
			}
		}

		return true
	}, nil
}
