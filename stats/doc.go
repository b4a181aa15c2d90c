// SPDX-License-Identifier: MIT

// Package stats computes descriptive statistics over lazy sequences
// (iter.Seq[T]) of any element type with the needed arithmetic.
//
// Central tendency: Mean, Median, Mode, GeometricMean.
// Dispersion:       Variance, StandardDeviation, MeanDeviation, Range.
// Position:         Quantiles.
// Association:      Correlation.
//
// Variance and StandardDeviation are population statistics: they divide by
// n, not n-1. Operations that need several passes buffer the sequence once,
// so single-use iterators are fine; infinite sequences are not.
//
// float64 inputs take gonum/stat fast paths for Mean, Variance,
// StandardDeviation and Correlation.
//
// Errors:
//
//	engine.ErrEmptySequence    – no values.
//	engine.ErrInvalidQuantiles – Quantiles with q < 1.
//	engine.ErrDimensionMismatch– Correlation of sequences of different length.
//	engine.ErrDivideByZero     – Correlation with a constant sequence.
package stats
