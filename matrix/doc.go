// SPDX-License-Identifier: MIT

// Package matrix implements dense matrix algebra over arbitrary element types.
//
// Dense[T] is a row-major r×c container with bounds-checked At/Set. Every
// operation is an engine operation, specialized per element type on first use:
//
//   - element-wise: Negate, Add, Subtract, MultiplyScalar, DivideScalar
//   - products: Multiply, MultiplyVector (one vector.DotProduct per row), Power
//   - structure: Identity, Transpose, Trace, Minor, ConcatenateRowWise
//   - row operations (in place): SwapRows, ScaleRow, AddRowMultiple
//   - elimination: Determinant, Echelon, ReducedEchelon, Inverse, Adjoint,
//     DecomposeLU
//   - comparison: EqualsValue, EqualsLeniency
//
// The elimination family scans each column for the first nonzero pivot,
// swaps it into place, normalizes the pivot row and clears the column. It
// reaches the three row operations only through their slots.
//
// Composites never modify their arguments. Errors wrap the sentinels in
// errors.go, which in turn wrap the engine's domain errors, so both
// errors.Is(err, ErrSingular) and errors.Is(err, engine.ErrDomain) hold.
//
// float64 Multiply and Determinant are served by gonum/mat.
//
// Complexity: element-wise O(r·c); Multiply O(r·k·c); elimination O(n³);
// Adjoint O(n⁵).
package matrix
