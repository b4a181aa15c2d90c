// SPDX-License-Identifier: MIT

package stats

import (
	"fmt"
	"iter"
	"slices"

	"github.com/katalvlaran/numerus/capability"
	"github.com/katalvlaran/numerus/compute"
	"github.com/katalvlaran/numerus/engine"
)

const family = "stats"

var (
	meanOp = engine.Define(family, "Mean", 1, "(seq iter.Seq[T]) (T, error)",
		capability.Addition, capability.Division, capability.Conversion)
	medianOp = engine.Define(family, "Median", 1, "(seq iter.Seq[T]) (T, error)",
		capability.LessThan, capability.Addition, capability.Division, capability.Conversion).
		DependsOn(compute.CompareOp)
	modeOp = engine.Define(family, "Mode", 1, "(seq iter.Seq[T]) (T, error)",
		capability.Equality)
	geometricMeanOp = engine.Define(family, "GeometricMean", 1, "(seq iter.Seq[T]) (T, error)",
		capability.Addition, capability.Multiplication, capability.Division, capability.LessThan,
		capability.Equality, capability.Negation, capability.Conversion).DependsOn(compute.RootOp)
)

func statsErrorf(d *engine.Descriptor, err error) error {
	return fmt.Errorf("%s: %w", d.QualifiedName(), err)
}

// meanTemplate accumulates the sum and count in one pass.
func meanTemplate[T any](alg *engine.Algebra[T]) (func(seq iter.Seq[T]) (T, error), error) {
	return func(seq iter.Seq[T]) (T, error) {
		sum, n := alg.Zero(), 0
		for v := range seq {
			sum = alg.Add(sum, v)
			n++
		}
		if n == 0 {
			return sum, statsErrorf(meanOp, engine.ErrEmptySequence)
		}

		return alg.Div(sum, alg.Int(n)), nil
	}, nil
}

// medianTemplate sorts a copy of the sample. Odd counts return the middle
// value, even counts the mean of the two middle values.
//
// Complexity: O(n log n).
func medianTemplate[T any](alg *engine.Algebra[T]) (func(seq iter.Seq[T]) (T, error), error) {
	cmp, err := compute.CompareFor(alg)
	if err != nil {
		return nil, err
	}
	two := alg.Int(2)

	return func(seq iter.Seq[T]) (T, error) {
		sorted := slices.SortedFunc(seq, cmp)
		n := len(sorted)
		switch {
		case n == 0:
			return alg.Zero(), statsErrorf(medianOp, engine.ErrEmptySequence)
		case n%2 == 1:
			return sorted[n/2], nil
		default:
			return alg.Div(alg.Add(sorted[n/2-1], sorted[n/2]), two), nil
		}
	}, nil
}

// modeTemplate counts occurrences with Equal only, so it works for any
// comparable element type. Ties go to the value seen first.
//
// Complexity: O(n·k) for k distinct values.
func modeTemplate[T any](alg *engine.Algebra[T]) (func(seq iter.Seq[T]) (T, error), error) {
	type tally struct {
		value T
		count int
	}

	return func(seq iter.Seq[T]) (T, error) {
		var tallies []tally
		for v := range seq {
			i := slices.IndexFunc(tallies, func(t tally) bool { return alg.Equal(t.value, v) })
			if i < 0 {
				tallies = append(tallies, tally{value: v, count: 1})
				continue
			}
			tallies[i].count++
		}
		if len(tallies) == 0 {
			var zero T
			return zero, statsErrorf(modeOp, engine.ErrEmptySequence)
		}
		best := tallies[0]
		for _, t := range tallies[1:] {
			if t.count > best.count {
				best = t
			}
		}

		return best.value, nil
	}, nil
}

// geometricMeanTemplate returns the n-th root of the product of n values,
// with Root resolved through its slot.
func geometricMeanTemplate[T any](alg *engine.Algebra[T]) (func(seq iter.Seq[T]) (T, error), error) {
	root, err := compute.RootFor(alg)
	if err != nil {
		return nil, err
	}

	return func(seq iter.Seq[T]) (T, error) {
		product, n := alg.One(), 0
		for v := range seq {
			product = alg.Mul(product, v)
			n++
		}
		if n == 0 {
			return alg.Zero(), statsErrorf(geometricMeanOp, engine.ErrEmptySequence)
		}
		r, err := root(product, n)
		if err != nil {
			return alg.Zero(), statsErrorf(geometricMeanOp, err)
		}

		return r, nil
	}, nil
}

// Mean returns the arithmetic mean of seq.
func Mean[T any](seq iter.Seq[T]) (T, error) {
	f, err := engine.Resolve(meanOp, meanTemplate[T])
	if err != nil {
		var zero T
		return zero, err
	}

	return f(seq)
}

// Median returns the middle value of seq, or the mean of the two middle
// values when the count is even.
func Median[T any](seq iter.Seq[T]) (T, error) {
	f, err := engine.Resolve(medianOp, medianTemplate[T])
	if err != nil {
		var zero T
		return zero, err
	}

	return f(seq)
}

// Mode returns the most frequent value of seq.
func Mode[T any](seq iter.Seq[T]) (T, error) {
	f, err := engine.Resolve(modeOp, modeTemplate[T])
	if err != nil {
		var zero T
		return zero, err
	}

	return f(seq)
}

// GeometricMean returns (x₁·x₂·…·xₙ)^(1/n). A negative product with even n
// fails with engine.ErrNegative.
func GeometricMean[T any](seq iter.Seq[T]) (T, error) {
	f, err := engine.Resolve(geometricMeanOp, geometricMeanTemplate[T])
	if err != nil {
		var zero T
		return zero, err
	}

	return f(seq)
}
