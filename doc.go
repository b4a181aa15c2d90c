// SPDX-License-Identifier: MIT

// Package numerus is generic numeric computation for Go: arithmetic, vector,
// matrix and quaternion algebra, combinatorics, statistics and trigonometry
// over any element type that supplies the operators an operation needs.
//
// What is numerus?
//
//	Go's type parameters cannot say "any type with +, -, * and /" for
//	user-defined types. numerus closes that gap with a self-specializing
//	dispatch engine: each operation states the operator capabilities it
//	requires, and the first call for an (operation, element type) pair
//	validates those capabilities, builds a specialized implementation and
//	caches it. Built-in numeric kinds skip the whole sequence through a
//	fast-path table of native implementations.
//
// Element types:
//
//   - built-in numeric kinds and named kinds over them (type Meters float64)
//   - any type exposing operator methods: Add, Sub, Mul, Div, Rem, Neg,
//     Equal, Less and FromInt(int)
//
// A type missing an operator fails on first use with capability.ErrMissing,
// naming the operator; nothing is built for it.
//
// Packages:
//
//	capability/    - operator capability model and validator
//	engine/        - descriptors, slots, specialization cache, fast paths, registries
//	compute/       - scalar arithmetic, comparison, sequences, number theory, π, roots
//	combinatorics/ - factorial, choose, multinomial combinations
//	stats/         - mean, median, mode, population variance, quantiles, correlation
//	trig/          - sine family (series or native) and the Trigonometry registry
//	logic/         - the Logic comparison registry
//	vector/        - Vector[T] algebra
//	matrix/        - Dense[T] algebra, Gaussian elimination, LU
//	quaternion/    - Quaternion[T] algebra and rotation
//
// Quick example:
//
//	det, _ := matrix.Determinant(m)                     // m *matrix.Dense[float64]
//	v, _ := stats.Variance(slices.Values(samples))      // population variance
//	s, _ := trig.Sine(myFixedPoint)                     // generic series path
//
//	go get github.com/katalvlaran/numerus
package numerus
