// SPDX-License-Identifier: MIT

// Package combinatorics counts arrangements: factorials, binomial
// coefficients and multinomial combinations over any element type with
// integer-like arithmetic.
//
// Inputs must be whole numbers (x % 1 == 0). Non-whole input fails with
// engine.ErrNotWhole and negative input with engine.ErrNegative; both wrap
// engine.ErrDomain.
package combinatorics

import (
	"fmt"

	"github.com/katalvlaran/numerus/capability"
	"github.com/katalvlaran/numerus/compute"
	"github.com/katalvlaran/numerus/engine"
)

const family = "combinatorics"

var (
	factorialOp = engine.Define(family, "Factorial", 1, "(n T) (T, error)",
		capability.Remainder, capability.Equality, capability.LessThan,
		capability.Multiplication, capability.Subtraction, capability.Conversion).
		DependsOn(compute.IsIntegerOp)
	chooseOp = engine.Define(family, "Choose", 2, "(total, pick T) (T, error)",
		capability.Remainder, capability.Equality, capability.LessThan,
		capability.Multiplication, capability.Subtraction, capability.Division, capability.Conversion).
		DependsOn(compute.IsIntegerOp, factorialOp)
	combinationsOp = engine.Define(family, "Combinations", 2, "(total T, groups ...T) (T, error)",
		capability.Remainder, capability.Equality, capability.LessThan,
		capability.Multiplication, capability.Subtraction, capability.Division,
		capability.Addition, capability.Conversion).DependsOn(compute.IsIntegerOp, factorialOp)
)

func combinatoricsErrorf(d *engine.Descriptor, err error) error {
	return fmt.Errorf("%s: %w", d.QualifiedName(), err)
}

// countCheck validates one count: whole first, then non-negative.
func countCheck[T any](alg *engine.Algebra[T], whole func(T) bool, d *engine.Descriptor, v T) error {
	if !whole(v) {
		return combinatoricsErrorf(d, engine.ErrNotWhole)
	}
	if alg.IsNegative(v) {
		return combinatoricsErrorf(d, engine.ErrNegative)
	}

	return nil
}

// factorialTemplate multiplies n·(n-1)·…·2. A count so large that n-1 == n
// in T (floats beyond 2^53) fails with ErrOutOfRange.
//
// Complexity: O(n) multiplications.
func factorialTemplate[T any](alg *engine.Algebra[T]) (func(n T) (T, error), error) {
	whole, err := compute.IsIntegerFor(alg)
	if err != nil {
		return nil, err
	}
	one := alg.One()

	return func(n T) (T, error) {
		if err := countCheck(alg, whole, factorialOp, n); err != nil {
			return alg.Zero(), err
		}
		if alg.Less(one, n) && !alg.Less(alg.Sub(n, one), n) {
			return alg.Zero(), combinatoricsErrorf(factorialOp, engine.ErrOutOfRange)
		}
		result := one
		for ; alg.Less(one, n); n = alg.Sub(n, one) {
			result = alg.Mul(result, n)
		}

		return result, nil
	}, nil
}

// chooseTemplate computes total! / (pick! · (total-pick)!) with Factorial
// resolved through its slot.
func chooseTemplate[T any](alg *engine.Algebra[T]) (func(total, pick T) (T, error), error) {
	whole, err := compute.IsIntegerFor(alg)
	if err != nil {
		return nil, err
	}
	fact, err := engine.Dependency(alg, factorialOp, factorialTemplate[T])
	if err != nil {
		return nil, err
	}

	return func(total, pick T) (T, error) {
		zero := alg.Zero()
		for _, v := range [...]T{total, pick} {
			if err := countCheck(alg, whole, chooseOp, v); err != nil {
				return zero, err
			}
		}
		if alg.Less(total, pick) {
			return zero, combinatoricsErrorf(chooseOp, engine.ErrInvalidArgument)
		}
		// Arguments are validated, so the factorials cannot fail.
		n, _ := fact(total)
		k, _ := fact(pick)
		r, _ := fact(alg.Sub(total, pick))

		return alg.Div(n, alg.Mul(k, r)), nil
	}, nil
}

// combinationsTemplate computes total! / Πgroups[i]! after checking that the
// groups fit inside total.
func combinationsTemplate[T any](alg *engine.Algebra[T]) (func(total T, groups ...T) (T, error), error) {
	whole, err := compute.IsIntegerFor(alg)
	if err != nil {
		return nil, err
	}
	fact, err := engine.Dependency(alg, factorialOp, factorialTemplate[T])
	if err != nil {
		return nil, err
	}

	return func(total T, groups ...T) (T, error) {
		zero := alg.Zero()
		if err := countCheck(alg, whole, combinationsOp, total); err != nil {
			return zero, err
		}
		sum := zero
		for _, g := range groups {
			if err := countCheck(alg, whole, combinationsOp, g); err != nil {
				return zero, err
			}
			sum = alg.Add(sum, g)
		}
		if alg.Less(total, sum) {
			return zero, combinatoricsErrorf(combinationsOp, engine.ErrInvalidArgument)
		}
		result, _ := fact(total)
		for _, g := range groups {
			f, _ := fact(g)
			result = alg.Div(result, f)
		}

		return result, nil
	}, nil
}

// Factorial returns n!. 0! is 1.
func Factorial[T any](n T) (T, error) {
	f, err := engine.Resolve(factorialOp, factorialTemplate[T])
	if err != nil {
		var zero T
		return zero, err
	}

	return f(n)
}

// Choose returns the binomial coefficient C(total, pick).
// pick > total fails with engine.ErrInvalidArgument.
func Choose[T any](total, pick T) (T, error) {
	f, err := engine.Resolve(chooseOp, chooseTemplate[T])
	if err != nil {
		var zero T
		return zero, err
	}

	return f(total, pick)
}

// Combinations returns total! / (groups[0]! · groups[1]! · …). The groups
// must not add up to more than total.
func Combinations[T any](total T, groups ...T) (T, error) {
	f, err := engine.Resolve(combinationsOp, combinationsTemplate[T])
	if err != nil {
		var zero T
		return zero, err
	}

	return f(total, groups...)
}
