// SPDX-License-Identifier: MIT

package compute

import (
	"iter"

	"github.com/katalvlaran/numerus/capability"
	"github.com/katalvlaran/numerus/engine"
)

var (
	sumOp     = engine.Define(family, "Sum", 1, "(seq iter.Seq[T]) T", capability.Addition, capability.Conversion)
	productOp = engine.Define(family, "Product", 1, "(seq iter.Seq[T]) T", capability.Multiplication, capability.Conversion)
	minimumOp = engine.Define(family, "Minimum", 1, "(seq iter.Seq[T]) (T, error)", capability.LessThan)
	maximumOp = engine.Define(family, "Maximum", 1, "(seq iter.Seq[T]) (T, error)", capability.LessThan)
)

func sumTemplate[T any](alg *engine.Algebra[T]) (func(seq iter.Seq[T]) T, error) {
	return func(seq iter.Seq[T]) T {
		acc := alg.Zero()
		for v := range seq {
			acc = alg.Add(acc, v)
		}

		return acc
	}, nil
}

func productTemplate[T any](alg *engine.Algebra[T]) (func(seq iter.Seq[T]) T, error) {
	return func(seq iter.Seq[T]) T {
		acc := alg.One()
		for v := range seq {
			acc = alg.Mul(acc, v)
		}

		return acc
	}, nil
}

// extremeTemplate builds Minimum and Maximum from one loop; better reports
// whether cand replaces the running value cur.
func extremeTemplate[T any](d *engine.Descriptor, better func(alg *engine.Algebra[T], cand, cur T) bool) func(alg *engine.Algebra[T]) (func(seq iter.Seq[T]) (T, error), error) {
	return func(alg *engine.Algebra[T]) (func(seq iter.Seq[T]) (T, error), error) {
		return func(seq iter.Seq[T]) (T, error) {
			var (
				cur      T
				assigned bool
			)
			for v := range seq {
				if !assigned || better(alg, v, cur) {
					cur, assigned = v, true
				}
			}
			if !assigned {
				return cur, computeErrorf(d, engine.ErrEmptySequence)
			}

			return cur, nil
		}, nil
	}
}

func minimumTemplate[T any](alg *engine.Algebra[T]) (func(seq iter.Seq[T]) (T, error), error) {
	return extremeTemplate(minimumOp, func(a *engine.Algebra[T], cand, cur T) bool { return a.Less(cand, cur) })(alg)
}

func maximumTemplate[T any](alg *engine.Algebra[T]) (func(seq iter.Seq[T]) (T, error), error) {
	return extremeTemplate(maximumOp, func(a *engine.Algebra[T], cand, cur T) bool { return a.Less(cur, cand) })(alg)
}

// Sum adds every value of seq; the empty sum is 0.
func Sum[T any](seq iter.Seq[T]) (T, error) {
	f, err := engine.Resolve(sumOp, sumTemplate[T])
	if err != nil {
		var zero T
		return zero, err
	}

	return f(seq), nil
}

// Product multiplies every value of seq; the empty product is 1.
func Product[T any](seq iter.Seq[T]) (T, error) {
	f, err := engine.Resolve(productOp, productTemplate[T])
	if err != nil {
		var zero T
		return zero, err
	}

	return f(seq), nil
}

// Minimum returns the least value of seq (the first one on ties).
func Minimum[T any](seq iter.Seq[T]) (T, error) {
	f, err := engine.Resolve(minimumOp, minimumTemplate[T])
	if err != nil {
		var zero T
		return zero, err
	}

	return f(seq)
}

// Maximum returns the greatest value of seq (the first one on ties).
func Maximum[T any](seq iter.Seq[T]) (T, error) {
	f, err := engine.Resolve(maximumOp, maximumTemplate[T])
	if err != nil {
		var zero T
		return zero, err
	}

	return f(seq)
}

// SumFor resolves Sum for alg's element type through its slot.
func SumFor[T any](alg *engine.Algebra[T]) (func(seq iter.Seq[T]) T, error) {
	return engine.Dependency(alg, sumOp, sumTemplate[T])
}

// MinimumFor resolves Minimum for alg's element type through its slot.
func MinimumFor[T any](alg *engine.Algebra[T]) (func(seq iter.Seq[T]) (T, error), error) {
	return engine.Dependency(alg, minimumOp, minimumTemplate[T])
}

// MaximumFor resolves Maximum for alg's element type through its slot.
func MaximumFor[T any](alg *engine.Algebra[T]) (func(seq iter.Seq[T]) (T, error), error) {
	return engine.Dependency(alg, maximumOp, maximumTemplate[T])
}
