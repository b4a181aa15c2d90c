// SPDX-License-Identifier: MIT

// Package compute provides scalar arithmetic, comparison, number theory and
// analysis for any element type T that carries the operators an operation
// needs.
//
// Every function is backed by an engine descriptor. The first call for a
// given T validates T's operators and specializes the operation; later calls
// run the cached implementation. Built-in float and integer kinds take
// native fast paths where one is registered.
//
// Groups:
//
//	Arithmetic   – Add, Subtract, Multiply, Divide, Remainder, Negate,
//	               AbsoluteValue, Invert
//	Comparison   – Equal, LessThan, GreaterThan, Compare, Clamp, EqualsLeniency
//	Sequences    – Sum, Product, Minimum, Maximum (over iter.Seq[T])
//	Number theory– IsInteger, IsPrime, FactorPrimes, GreatestCommonFactor,
//	               LeastCommonMultiple
//	Analysis     – Power, SquareRoot, Root, LinearInterpolation, Pi
//
// Errors:
//
//	capability.ErrMissing      – T lacks an operator (first use only).
//	engine.ErrDivideByZero     – zero divisor.
//	engine.ErrEmptySequence    – Minimum/Maximum/GCF/LCM on an empty sequence.
//	engine.ErrNotWhole         – number theory on a non-integer value.
//	engine.ErrNegative         – even root of a negative value.
//
// Composite operations from other packages reach these through the *For
// resolvers (SquareRootFor, PiFor, ...), which go through the same slots.
package compute
