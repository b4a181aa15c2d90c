// SPDX-License-Identifier: MIT

package compute

import (
	"github.com/katalvlaran/numerus/capability"
	"github.com/katalvlaran/numerus/engine"
)

const (
	// piMaxIterations caps the nested-fraction refinement of Pi.
	piMaxIterations = 100
	// newtonMaxIterations caps SquareRoot and Root for element types whose
	// arithmetic never settles.
	newtonMaxIterations = 10000
)

var (
	powerOp = engine.Define(family, "Power", 2, "(base T, exp int) (T, error)",
		capability.Multiplication, capability.Division, capability.Equality, capability.Conversion)
	interpolateOp = engine.Define(family, "LinearInterpolation", 5, "(x, x0, x1, y0, y1 T) (T, error)",
		capability.Addition, capability.Subtraction, capability.Multiplication, capability.Division,
		capability.LessThan, capability.Equality)

	// SquareRootOp describes SquareRoot.
	SquareRootOp = engine.Define(family, "SquareRoot", 1, "(x T) (T, error)",
		capability.Addition, capability.Division, capability.LessThan, capability.Equality,
		capability.Conversion)
	// RootOp describes Root.
	RootOp = engine.Define(family, "Root", 2, "(x T, n int) (T, error)",
		capability.Addition, capability.Multiplication, capability.Division, capability.LessThan,
		capability.Equality, capability.Negation, capability.Conversion).DependsOn(powerOp)
	// PiOp describes Pi.
	PiOp = engine.Define(family, "Pi", 0, "() T",
		capability.Addition, capability.Multiplication, capability.Division, capability.Equality,
		capability.Conversion)
)

// powerTemplate raises base to an integer exponent by repeated squaring.
// Negative exponents invert the result; 0^-n is ErrDivideByZero.
//
// Complexity: O(log |exp|) multiplications.
func powerTemplate[T any](alg *engine.Algebra[T]) (func(base T, exp int) (T, error), error) {
	return func(base T, exp int) (T, error) {
		invert := exp < 0
		if invert {
			if alg.IsZero(base) {
				var zero T
				return zero, computeErrorf(powerOp, engine.ErrDivideByZero)
			}
			exp = -exp
		}
		result := alg.One()
		for b := base; exp > 0; exp >>= 1 {
			if exp&1 == 1 {
				result = alg.Mul(result, b)
			}
			b = alg.Mul(b, b)
		}
		if invert {
			result = alg.Div(alg.One(), result)
		}

		return result, nil
	}, nil
}

// squareRootTemplate runs Newton's iteration from (x+1)/2, which is never
// below √x, and stops as soon as the estimate stops decreasing. For integer
// types this is the integer square root.
func squareRootTemplate[T any](alg *engine.Algebra[T]) (func(x T) (T, error), error) {
	two := alg.Int(2)

	return func(x T) (T, error) {
		if alg.IsNegative(x) {
			var zero T
			return zero, computeErrorf(SquareRootOp, engine.ErrNegative)
		}
		if alg.IsZero(x) {
			return x, nil
		}
		g := alg.Div(alg.Add(x, alg.One()), two)
		for i := 0; i < newtonMaxIterations; i++ {
			next := alg.Div(alg.Add(g, alg.Div(x, g)), two)
			if !alg.Less(next, g) {
				break
			}
			g = next
		}

		return g, nil
	}, nil
}

// rootTemplate computes the principal n-th root by Newton's iteration
// g' = ((n-1)·g + x/g^(n-1)) / n starting from max(x, 1). Odd roots of
// negative values are negated roots of |x|.
func rootTemplate[T any](alg *engine.Algebra[T]) (func(x T, n int) (T, error), error) {
	pow, err := engine.Dependency(alg, powerOp, powerTemplate[T])
	if err != nil {
		return nil, err
	}

	var root func(x T, n int) (T, error)
	root = func(x T, n int) (T, error) {
		var zero T
		switch {
		case n < 1:
			return zero, computeErrorf(RootOp, engine.ErrInvalidArgument)
		case n == 1 || alg.IsZero(x):
			return x, nil
		case alg.IsNegative(x):
			if n%2 == 0 {
				return zero, computeErrorf(RootOp, engine.ErrNegative)
			}
			r, err := root(alg.Neg(x), n)
			if err != nil {
				return zero, err
			}

			return alg.Neg(r), nil
		}

		nT, nm1 := alg.Int(n), alg.Int(n-1)
		g := alg.Max(x, alg.One())
		for i := 0; i < newtonMaxIterations; i++ {
			gp, err := pow(g, n-1)
			if err != nil {
				return zero, computeErrorf(RootOp, err)
			}
			next := alg.Div(alg.Add(alg.Mul(nm1, g), alg.Div(x, gp)), nT)
			if !alg.Less(next, g) {
				break
			}
			g = next
		}

		return g, nil
	}

	return root, nil
}

// interpolateTemplate maps x in [x0, x1] onto [y0, y1] linearly.
func interpolateTemplate[T any](alg *engine.Algebra[T]) (func(x, x0, x1, y0, y1 T) (T, error), error) {
	return func(x, x0, x1, y0, y1 T) (T, error) {
		var zero T
		switch {
		case alg.Less(x1, x0):
			return zero, computeErrorf(interpolateOp, engine.ErrInvalidArgument)
		case alg.Less(x, x0), alg.Less(x1, x):
			return zero, computeErrorf(interpolateOp, engine.ErrOutOfRange)
		case alg.Equal(x0, x1):
			if !alg.Equal(y0, y1) {
				return zero, computeErrorf(interpolateOp, engine.ErrInvalidArgument)
			}

			return y0, nil
		}

		return alg.Add(y0, alg.Div(alg.Mul(alg.Sub(x, x0), alg.Sub(y1, y0)), alg.Sub(x1, x0))), nil
	}, nil
}

// piTemplate evaluates π = 2·(1 + 1/3·(1 + 2/5·(1 + 3/7·(…)))) at growing
// depth until two successive values are equal under T's equality. The value
// is computed once, when the slot specializes.
func piTemplate[T any](alg *engine.Algebra[T]) (func() T, error) {
	one, two := alg.One(), alg.Int(2)
	nested := func(depth int) T {
		v := one
		for j := depth; j >= 1; j-- {
			v = alg.Add(one, alg.Mul(alg.Div(alg.Int(j), alg.Int(2*j+1)), v))
		}

		return alg.Mul(two, v)
	}

	pi, prev := one, alg.Zero()
	for depth := 1; !alg.Equal(prev, pi) && depth < piMaxIterations; depth++ {
		prev, pi = pi, nested(depth)
	}

	return func() T { return pi }, nil
}

// Power returns base^exp for an integer exponent.
func Power[T any](base T, exp int) (T, error) {
	f, err := engine.Resolve(powerOp, powerTemplate[T])
	if err != nil {
		var zero T
		return zero, err
	}

	return f(base, exp)
}

// SquareRoot returns √x. Negative x fails with ErrNegative.
func SquareRoot[T any](x T) (T, error) {
	f, err := engine.Resolve(SquareRootOp, squareRootTemplate[T])
	if err != nil {
		var zero T
		return zero, err
	}

	return f(x)
}

// Root returns the n-th root of x (n >= 1).
func Root[T any](x T, n int) (T, error) {
	f, err := engine.Resolve(RootOp, rootTemplate[T])
	if err != nil {
		var zero T
		return zero, err
	}

	return f(x, n)
}

// LinearInterpolation returns y0 + (x-x0)(y1-y0)/(x1-x0).
// x outside [x0, x1] fails with ErrOutOfRange; x0 > x1, or x0 == x1 with
// y0 != y1, fails with ErrInvalidArgument.
func LinearInterpolation[T any](x, x0, x1, y0, y1 T) (T, error) {
	f, err := engine.Resolve(interpolateOp, interpolateTemplate[T])
	if err != nil {
		var zero T
		return zero, err
	}

	return f(x, x0, x1, y0, y1)
}

// Pi returns π in T's precision, computed once per element type.
func Pi[T any]() (T, error) {
	f, err := engine.Resolve(PiOp, piTemplate[T])
	if err != nil {
		var zero T
		return zero, err
	}

	return f(), nil
}

// PowerFor resolves Power for alg's element type through its slot.
func PowerFor[T any](alg *engine.Algebra[T]) (func(base T, exp int) (T, error), error) {
	return engine.Dependency(alg, powerOp, powerTemplate[T])
}

// SquareRootFor resolves SquareRoot for alg's element type through its slot.
func SquareRootFor[T any](alg *engine.Algebra[T]) (func(x T) (T, error), error) {
	return engine.Dependency(alg, SquareRootOp, squareRootTemplate[T])
}

// RootFor resolves Root for alg's element type through its slot.
func RootFor[T any](alg *engine.Algebra[T]) (func(x T, n int) (T, error), error) {
	return engine.Dependency(alg, RootOp, rootTemplate[T])
}

// PiFor resolves Pi for alg's element type through its slot.
func PiFor[T any](alg *engine.Algebra[T]) (T, error) {
	f, err := engine.Dependency(alg, PiOp, piTemplate[T])
	if err != nil {
		var zero T
		return zero, err
	}

	return f(), nil
}
