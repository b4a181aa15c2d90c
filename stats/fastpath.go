// SPDX-License-Identifier: MIT

package stats

import (
	"iter"
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/numerus/engine"
)

// float64 statistics delegate to gonum/stat. Preconditions are checked here
// so both paths report the same domain errors.
func init() {
	engine.RegisterFastPath[float64](meanOp, func(seq iter.Seq[float64]) (float64, error) {
		xs := slices.Collect(seq)
		if len(xs) == 0 {
			return 0, statsErrorf(meanOp, engine.ErrEmptySequence)
		}

		return stat.Mean(xs, nil), nil
	})
	engine.RegisterFastPath[float64](varianceOp, func(seq iter.Seq[float64]) (float64, error) {
		xs := slices.Collect(seq)
		if len(xs) == 0 {
			return 0, statsErrorf(varianceOp, engine.ErrEmptySequence)
		}

		return stat.PopVariance(xs, nil), nil
	})
	engine.RegisterFastPath[float64](stdDevOp, func(seq iter.Seq[float64]) (float64, error) {
		xs := slices.Collect(seq)
		if len(xs) == 0 {
			return 0, statsErrorf(stdDevOp, engine.ErrEmptySequence)
		}

		return stat.PopStdDev(xs, nil), nil
	})
	engine.RegisterFastPath[float64](correlationOp, func(a, b iter.Seq[float64]) (float64, error) {
		xs, ys := slices.Collect(a), slices.Collect(b)
		switch {
		case len(xs) != len(ys):
			return 0, statsErrorf(correlationOp, engine.ErrDimensionMismatch)
		case len(xs) == 0:
			return 0, statsErrorf(correlationOp, engine.ErrEmptySequence)
		}
		r := stat.Correlation(xs, ys, nil)
		if math.IsNaN(r) {
			return 0, statsErrorf(correlationOp, engine.ErrDivideByZero)
		}

		return r, nil
	})
}
