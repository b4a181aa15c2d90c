// SPDX-License-Identifier: MIT

package compute

import (
	"iter"
	"slices"

	"github.com/katalvlaran/numerus/capability"
	"github.com/katalvlaran/numerus/engine"
)

// IsIntegerOp describes IsInteger.
var IsIntegerOp = engine.Define(family, "IsInteger", 1, "(x T) bool",
	capability.Remainder, capability.Equality, capability.Conversion)

var (
	isPrimeOp = engine.Define(family, "IsPrime", 1, "(x T) bool",
		capability.LessThan, capability.Multiplication, capability.Addition).DependsOn(IsIntegerOp)
	factorPrimesOp = engine.Define(family, "FactorPrimes", 1, "(x T) (iter.Seq[T], error)",
		capability.LessThan, capability.Negation, capability.Multiplication, capability.Division,
		capability.Addition).DependsOn(IsIntegerOp)
	gcfOp = engine.Define(family, "GreatestCommonFactor", 1, "(seq iter.Seq[T]) (T, error)",
		capability.LessThan, capability.Negation).DependsOn(IsIntegerOp)
	lcmOp = engine.Define(family, "LeastCommonMultiple", 1, "(seq iter.Seq[T]) (T, error)",
		capability.Multiplication, capability.Division).DependsOn(IsIntegerOp, gcfOp)
)

func isIntegerTemplate[T any](alg *engine.Algebra[T]) (func(x T) bool, error) {
	one := alg.One()

	return func(x T) bool { return alg.IsZero(alg.Rem(x, one)) }, nil
}

// isPrimeTemplate tests by trial division with odd divisors d while d*d <= x.
// Non-integers and values below 2 are not prime.
//
// Complexity: O(√x) operator calls.
func isPrimeTemplate[T any](alg *engine.Algebra[T]) (func(x T) bool, error) {
	whole, err := engine.Dependency(alg, IsIntegerOp, isIntegerTemplate[T])
	if err != nil {
		return nil, err
	}
	two, three := alg.Int(2), alg.Int(3)

	return func(x T) bool {
		if !whole(x) || alg.Less(x, two) {
			return false
		}
		if alg.Equal(x, two) {
			return true
		}
		if alg.IsZero(alg.Rem(x, two)) {
			return false
		}
		for d := three; !alg.Less(x, alg.Mul(d, d)); d = alg.Add(d, two) {
			if alg.IsZero(alg.Rem(x, d)) {
				return false
			}
		}

		return true
	}, nil
}

// factorPrimesTemplate validates x eagerly and yields its prime factors
// lazily in non-decreasing order. Negative values yield -1 first.
func factorPrimesTemplate[T any](alg *engine.Algebra[T]) (func(x T) (iter.Seq[T], error), error) {
	whole, err := engine.Dependency(alg, IsIntegerOp, isIntegerTemplate[T])
	if err != nil {
		return nil, err
	}
	two, three := alg.Int(2), alg.Int(3)

	return func(x T) (iter.Seq[T], error) {
		if !whole(x) {
			return nil, computeErrorf(factorPrimesOp, engine.ErrNotWhole)
		}
		if alg.IsZero(x) {
			return nil, computeErrorf(factorPrimesOp, engine.ErrInvalidArgument)
		}

		return func(yield func(T) bool) {
			v := x
			if alg.IsNegative(v) {
				v = alg.Neg(v)
				if !yield(alg.Int(-1)) {
					return
				}
			}
			for alg.IsZero(alg.Rem(v, two)) {
				if !yield(two) {
					return
				}
				v = alg.Div(v, two)
			}
			for d := three; !alg.Less(v, alg.Mul(d, d)); d = alg.Add(d, two) {
				for alg.IsZero(alg.Rem(v, d)) {
					if !yield(d) {
						return
					}
					v = alg.Div(v, d)
				}
			}
			if alg.Less(two, v) {
				yield(v)
			}
		}, nil
	}, nil
}

// gcfTemplate folds Euclid's algorithm over the sequence. Once the running
// factor reaches 1 the remaining values are only checked for wholeness.
func gcfTemplate[T any](alg *engine.Algebra[T]) (func(seq iter.Seq[T]) (T, error), error) {
	whole, err := engine.Dependency(alg, IsIntegerOp, isIntegerTemplate[T])
	if err != nil {
		return nil, err
	}
	one := alg.One()

	return func(seq iter.Seq[T]) (T, error) {
		var (
			gcf      T
			assigned bool
		)
		for n := range seq {
			if !whole(n) {
				var zero T
				return zero, computeErrorf(gcfOp, engine.ErrNotWhole)
			}
			if !assigned {
				gcf, assigned = alg.Abs(n), true
				continue
			}
			if alg.Equal(gcf, one) {
				continue
			}
			a, b := gcf, n
			for !alg.IsZero(b) {
				a, b = b, alg.Rem(a, b)
			}
			gcf = alg.Abs(a)
		}
		if !assigned {
			return gcf, computeErrorf(gcfOp, engine.ErrEmptySequence)
		}

		return gcf, nil
	}, nil
}

// lcmTemplate folds lcm(a, b) = |a / gcf(a, b) * b| over the sequence,
// calling GreatestCommonFactor through its slot. Any zero makes the result 0.
func lcmTemplate[T any](alg *engine.Algebra[T]) (func(seq iter.Seq[T]) (T, error), error) {
	whole, err := engine.Dependency(alg, IsIntegerOp, isIntegerTemplate[T])
	if err != nil {
		return nil, err
	}
	gcf, err := engine.Dependency(alg, gcfOp, gcfTemplate[T])
	if err != nil {
		return nil, err
	}

	return func(seq iter.Seq[T]) (T, error) {
		var (
			lcm            T
			assigned, zero bool
		)
		for n := range seq {
			if !whole(n) {
				return alg.Zero(), computeErrorf(lcmOp, engine.ErrNotWhole)
			}
			if alg.IsZero(n) {
				zero = true
				continue
			}
			if !assigned {
				lcm, assigned = alg.Abs(n), true
				continue
			}
			g, err := gcf(slices.Values([]T{lcm, n}))
			if err != nil {
				return alg.Zero(), computeErrorf(lcmOp, err)
			}
			lcm = alg.Abs(alg.Mul(alg.Div(lcm, g), n))
		}
		switch {
		case zero:
			return alg.Zero(), nil
		case !assigned:
			return lcm, computeErrorf(lcmOp, engine.ErrEmptySequence)
		default:
			return lcm, nil
		}
	}, nil
}

// IsInteger reports whether x has no fractional part (x % 1 == 0).
func IsInteger[T any](x T) (bool, error) {
	f, err := engine.Resolve(IsIntegerOp, isIntegerTemplate[T])
	if err != nil {
		return false, err
	}

	return f(x), nil
}

// IsPrime reports whether x is a prime integer.
func IsPrime[T any](x T) (bool, error) {
	f, err := engine.Resolve(isPrimeOp, isPrimeTemplate[T])
	if err != nil {
		return false, err
	}

	return f(x), nil
}

// FactorPrimes returns the prime factorization of x as a lazy sequence.
// Non-integers fail with ErrNotWhole and zero with ErrInvalidArgument.
func FactorPrimes[T any](x T) (iter.Seq[T], error) {
	f, err := engine.Resolve(factorPrimesOp, factorPrimesTemplate[T])
	if err != nil {
		return nil, err
	}

	return f(x)
}

// GreatestCommonFactor returns the non-negative GCF of every value in seq.
func GreatestCommonFactor[T any](seq iter.Seq[T]) (T, error) {
	f, err := engine.Resolve(gcfOp, gcfTemplate[T])
	if err != nil {
		var zero T
		return zero, err
	}

	return f(seq)
}

// LeastCommonMultiple returns the non-negative LCM of every value in seq.
func LeastCommonMultiple[T any](seq iter.Seq[T]) (T, error) {
	f, err := engine.Resolve(lcmOp, lcmTemplate[T])
	if err != nil {
		var zero T
		return zero, err
	}

	return f(seq)
}

// IsIntegerFor resolves IsInteger for alg's element type through its slot.
func IsIntegerFor[T any](alg *engine.Algebra[T]) (func(x T) bool, error) {
	return engine.Dependency(alg, IsIntegerOp, isIntegerTemplate[T])
}
