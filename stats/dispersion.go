// SPDX-License-Identifier: MIT

package stats

import (
	"iter"
	"slices"

	"github.com/katalvlaran/numerus/capability"
	"github.com/katalvlaran/numerus/compute"
	"github.com/katalvlaran/numerus/engine"
)

var (
	varianceOp = engine.Define(family, "Variance", 1, "(seq iter.Seq[T]) (T, error)",
		capability.Addition, capability.Subtraction, capability.Multiplication,
		capability.Division, capability.Conversion).DependsOn(meanOp)
	stdDevOp = engine.Define(family, "StandardDeviation", 1, "(seq iter.Seq[T]) (T, error)",
		capability.Addition, capability.Subtraction, capability.Multiplication,
		capability.Division, capability.LessThan, capability.Equality, capability.Conversion).
		DependsOn(varianceOp, compute.SquareRootOp)
	meanDeviationOp = engine.Define(family, "MeanDeviation", 1, "(seq iter.Seq[T]) (T, error)",
		capability.Addition, capability.Subtraction, capability.Division,
		capability.LessThan, capability.Negation, capability.Conversion).
		DependsOn(meanOp, compute.AbsoluteValueOp)
	rangeOp = engine.Define(family, "Range", 1, "(seq iter.Seq[T]) (lo, hi T, err error)",
		capability.LessThan)
	quantilesOp = engine.Define(family, "Quantiles", 2, "(q int, seq iter.Seq[T]) ([]T, error)",
		capability.Addition, capability.Subtraction, capability.Multiplication,
		capability.Division, capability.LessThan, capability.Conversion).DependsOn(compute.CompareOp)
	correlationOp = engine.Define(family, "Correlation", 2, "(a, b iter.Seq[T]) (T, error)",
		capability.Addition, capability.Subtraction, capability.Multiplication,
		capability.Division, capability.LessThan, capability.Equality, capability.Conversion).
		DependsOn(meanOp, compute.SquareRootOp)
)

// varianceTemplate is the population variance Σ(x-μ)²/n, with the mean
// resolved through its slot.
func varianceTemplate[T any](alg *engine.Algebra[T]) (func(seq iter.Seq[T]) (T, error), error) {
	mean, err := engine.Dependency(alg, meanOp, meanTemplate[T])
	if err != nil {
		return nil, err
	}

	return func(seq iter.Seq[T]) (T, error) {
		values := slices.Collect(seq)
		mu, err := mean(slices.Values(values))
		if err != nil {
			return alg.Zero(), statsErrorf(varianceOp, err)
		}
		acc := alg.Zero()
		for _, v := range values {
			d := alg.Sub(v, mu)
			acc = alg.Add(acc, alg.Mul(d, d))
		}

		return alg.Div(acc, alg.Int(len(values))), nil
	}, nil
}

func stdDevTemplate[T any](alg *engine.Algebra[T]) (func(seq iter.Seq[T]) (T, error), error) {
	variance, err := engine.Dependency(alg, varianceOp, varianceTemplate[T])
	if err != nil {
		return nil, err
	}
	sqrt, err := compute.SquareRootFor(alg)
	if err != nil {
		return nil, err
	}

	return func(seq iter.Seq[T]) (T, error) {
		v, err := variance(seq)
		if err != nil {
			return alg.Zero(), statsErrorf(stdDevOp, err)
		}

		return sqrt(v)
	}, nil
}

// meanDeviationTemplate is the mean absolute deviation Σ|x-μ|/n.
func meanDeviationTemplate[T any](alg *engine.Algebra[T]) (func(seq iter.Seq[T]) (T, error), error) {
	mean, err := engine.Dependency(alg, meanOp, meanTemplate[T])
	if err != nil {
		return nil, err
	}
	abs, err := compute.AbsoluteValueFor(alg)
	if err != nil {
		return nil, err
	}

	return func(seq iter.Seq[T]) (T, error) {
		values := slices.Collect(seq)
		mu, err := mean(slices.Values(values))
		if err != nil {
			return alg.Zero(), statsErrorf(meanDeviationOp, err)
		}
		acc := alg.Zero()
		for _, v := range values {
			acc = alg.Add(acc, abs(alg.Sub(v, mu)))
		}

		return alg.Div(acc, alg.Int(len(values))), nil
	}, nil
}

type rangeFunc[T any] func(seq iter.Seq[T]) (lo, hi T, err error)

func rangeTemplate[T any](alg *engine.Algebra[T]) (rangeFunc[T], error) {
	return func(seq iter.Seq[T]) (lo, hi T, err error) {
		set := false
		for v := range seq {
			switch {
			case !set:
				lo, hi, set = v, v, true
			case alg.Less(v, lo):
				lo = v
			case alg.Less(hi, v):
				hi = v
			}
		}
		if !set {
			return lo, hi, statsErrorf(rangeOp, engine.ErrEmptySequence)
		}

		return lo, hi, nil
	}, nil
}

// quantilesTemplate returns q+1 cut points: the minimum, q-1 interior points
// and the maximum. Interior point i sits at the 0-based fractional rank
// n·i/(q+1) of the sorted sample and is interpolated linearly between its
// neighbours.
//
// Complexity: O(n log n).
func quantilesTemplate[T any](alg *engine.Algebra[T]) (func(q int, seq iter.Seq[T]) ([]T, error), error) {
	cmp, err := compute.CompareFor(alg)
	if err != nil {
		return nil, err
	}

	return func(q int, seq iter.Seq[T]) ([]T, error) {
		if q < 1 {
			return nil, statsErrorf(quantilesOp, engine.ErrInvalidQuantiles)
		}
		sorted := slices.SortedFunc(seq, cmp)
		n := len(sorted)
		if n == 0 {
			return nil, statsErrorf(quantilesOp, engine.ErrEmptySequence)
		}

		out := make([]T, q+1)
		out[0], out[q] = sorted[0], sorted[n-1]
		denom := q + 1
		for i := 1; i < q; i++ {
			num := n * i
			lo, frac := num/denom, num%denom
			if lo >= n-1 {
				out[i] = sorted[n-1]
				continue
			}
			if frac == 0 {
				out[i] = sorted[lo]
				continue
			}
			step := alg.Sub(sorted[lo+1], sorted[lo])
			out[i] = alg.Add(sorted[lo], alg.Div(alg.Mul(step, alg.Int(frac)), alg.Int(denom)))
		}

		return out, nil
	}, nil
}

// correlationTemplate is Pearson's r:
// Σ(a-ā)(b-b̄) / √(Σ(a-ā)² · Σ(b-b̄)²).
func correlationTemplate[T any](alg *engine.Algebra[T]) (func(a, b iter.Seq[T]) (T, error), error) {
	mean, err := engine.Dependency(alg, meanOp, meanTemplate[T])
	if err != nil {
		return nil, err
	}
	sqrt, err := compute.SquareRootFor(alg)
	if err != nil {
		return nil, err
	}

	return func(a, b iter.Seq[T]) (T, error) {
		zero := alg.Zero()
		xs, ys := slices.Collect(a), slices.Collect(b)
		if len(xs) != len(ys) {
			return zero, statsErrorf(correlationOp, engine.ErrDimensionMismatch)
		}
		mx, err := mean(slices.Values(xs))
		if err != nil {
			return zero, statsErrorf(correlationOp, err)
		}
		my, _ := mean(slices.Values(ys))

		cross, sx, sy := zero, zero, zero
		for i := range xs {
			dx, dy := alg.Sub(xs[i], mx), alg.Sub(ys[i], my)
			cross = alg.Add(cross, alg.Mul(dx, dy))
			sx = alg.Add(sx, alg.Mul(dx, dx))
			sy = alg.Add(sy, alg.Mul(dy, dy))
		}
		den, err := sqrt(alg.Mul(sx, sy))
		if err != nil {
			return zero, statsErrorf(correlationOp, err)
		}
		if alg.IsZero(den) {
			return zero, statsErrorf(correlationOp, engine.ErrDivideByZero)
		}

		return alg.Div(cross, den), nil
	}, nil
}

// Variance returns the population variance of seq.
func Variance[T any](seq iter.Seq[T]) (T, error) {
	f, err := engine.Resolve(varianceOp, varianceTemplate[T])
	if err != nil {
		var zero T
		return zero, err
	}

	return f(seq)
}

// StandardDeviation returns the population standard deviation of seq.
func StandardDeviation[T any](seq iter.Seq[T]) (T, error) {
	f, err := engine.Resolve(stdDevOp, stdDevTemplate[T])
	if err != nil {
		var zero T
		return zero, err
	}

	return f(seq)
}

// MeanDeviation returns the mean absolute deviation from the mean.
func MeanDeviation[T any](seq iter.Seq[T]) (T, error) {
	f, err := engine.Resolve(meanDeviationOp, meanDeviationTemplate[T])
	if err != nil {
		var zero T
		return zero, err
	}

	return f(seq)
}

// Range returns the smallest and largest values of seq.
func Range[T any](seq iter.Seq[T]) (lo, hi T, err error) {
	f, err := engine.Resolve(rangeOp, rangeTemplate[T])
	if err != nil {
		return lo, hi, err
	}

	return f(seq)
}

// Quantiles splits the sorted sample into q parts and returns the q+1 cut
// points, minimum and maximum included.
func Quantiles[T any](q int, seq iter.Seq[T]) ([]T, error) {
	f, err := engine.Resolve(quantilesOp, quantilesTemplate[T])
	if err != nil {
		return nil, err
	}

	return f(q, seq)
}

// Correlation returns Pearson's correlation coefficient of two equally long
// sequences.
func Correlation[T any](a, b iter.Seq[T]) (T, error) {
	f, err := engine.Resolve(correlationOp, correlationTemplate[T])
	if err != nil {
		var zero T
		return zero, err
	}

	return f(a, b)
}
