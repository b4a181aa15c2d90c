// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - One entry point per operation, generic over the element type.
//   - Each facade resolves its operation slot in the default cache and
//     forwards; no facade contains numeric logic of its own.
//
// Errors:
//   - First use of an (operation, T) pair may fail with capability.ErrMissing
//     or engine.ErrCompile; every later failure is a per-call domain error
//     carrying one of this package's sentinels.

package matrix

import (
	"github.com/katalvlaran/numerus/engine"
	"github.com/katalvlaran/numerus/vector"
)

// ---------- Constructors ----------

// Identity returns Iₙ. n ≤ 0 fails with ErrBadShape.
// Complexity: O(n²).
func Identity[T any](n int) (*Dense[T], error) {
	f, err := engine.Resolve(identityOp, identityTemplate[T])
	if err != nil {
		return nil, err
	}

	return f(n)
}

// IdentityLike returns the identity with the dimension of the square m.
func IdentityLike[T any](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(identityOp, err)
	}

	return Identity[T](m.r)
}

// ZerosLike returns a matrix with m's shape holding T's zero value.
func ZerosLike[T any](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewDense[T](m.r, m.c)
}

// ---------- Element-wise & products ----------

// Negate returns -m.
func Negate[T any](m *Dense[T]) (*Dense[T], error) {
	f, err := engine.Resolve(negateOp, negateTemplate[T])
	if err != nil {
		return nil, err
	}

	return f(m)
}

// Add returns a+b. Shapes must match.
func Add[T any](a, b *Dense[T]) (*Dense[T], error) {
	f, err := engine.Resolve(addOp, addTemplate[T])
	if err != nil {
		return nil, err
	}

	return f(a, b)
}

// Subtract returns a-b. Shapes must match.
func Subtract[T any](a, b *Dense[T]) (*Dense[T], error) {
	f, err := engine.Resolve(subtractOp, subtractTemplate[T])
	if err != nil {
		return nil, err
	}

	return f(a, b)
}

// Multiply returns the matrix product a·b; a.Cols must equal b.Rows.
// Complexity: O(r·k·c).
func Multiply[T any](a, b *Dense[T]) (*Dense[T], error) {
	f, err := engine.Resolve(multiplyOp, multiplyTemplate[T])
	if err != nil {
		return nil, err
	}

	return f(a, b)
}

// MultiplyVector returns m·v; len(v) must equal m.Cols.
func MultiplyVector[T any](m *Dense[T], v vector.Vector[T]) (vector.Vector[T], error) {
	f, err := engine.Resolve(multiplyVectorOp, multiplyVectorTemplate[T])
	if err != nil {
		return nil, err
	}

	return f(m, v)
}

// MultiplyScalar returns s·m.
func MultiplyScalar[T any](m *Dense[T], s T) (*Dense[T], error) {
	f, err := engine.Resolve(multiplyScalarOp, multiplyScalarTemplate[T])
	if err != nil {
		return nil, err
	}

	return f(m, s)
}

// DivideScalar returns m/s. s == 0 fails with engine.ErrDivideByZero.
func DivideScalar[T any](m *Dense[T], s T) (*Dense[T], error) {
	f, err := engine.Resolve(divideScalarOp, divideScalarTemplate[T])
	if err != nil {
		return nil, err
	}

	return f(m, s)
}

// Power returns mⁿ for square m. m⁰ is the identity; negative n uses m⁻¹ and
// fails with ErrSingular when m has no inverse.
func Power[T any](m *Dense[T], n int) (*Dense[T], error) {
	f, err := engine.Resolve(powerOp, powerTemplate[T])
	if err != nil {
		return nil, err
	}

	return f(m, n)
}

// ---------- Structure ----------

// Transpose returns mᵀ.
func Transpose[T any](m *Dense[T]) (*Dense[T], error) {
	f, err := engine.Resolve(transposeOp, transposeTemplate[T])
	if err != nil {
		return nil, err
	}

	return f(m)
}

// Trace returns the sum of the diagonal of square m.
func Trace[T any](m *Dense[T]) (T, error) {
	f, err := engine.Resolve(traceOp, traceTemplate[T])
	if err != nil {
		var zero T
		return zero, err
	}

	return f(m)
}

// Minor returns m without the given row and column.
func Minor[T any](m *Dense[T], row, col int) (*Dense[T], error) {
	f, err := engine.Resolve(minorOp, minorTemplate[T])
	if err != nil {
		return nil, err
	}

	return f(m, row, col)
}

// ConcatenateRowWise returns [a | b]; a and b must have the same row count.
func ConcatenateRowWise[T any](a, b *Dense[T]) (*Dense[T], error) {
	f, err := engine.Resolve(concatOp, concatTemplate[T])
	if err != nil {
		return nil, err
	}

	return f(a, b)
}

// ---------- Row operations (in place) ----------

// SwapRows exchanges rows i and j of m in place.
func SwapRows[T any](m *Dense[T], i, j int) error {
	f, err := engine.Resolve(swapRowsOp, swapRowsTemplate[T])
	if err != nil {
		return err
	}

	return f(m, i, j)
}

// ScaleRow multiplies row i of m by s in place.
func ScaleRow[T any](m *Dense[T], i int, s T) error {
	f, err := engine.Resolve(scaleRowOp, scaleRowTemplate[T])
	if err != nil {
		return err
	}

	return f(m, i, s)
}

// AddRowMultiple adds s·row[src] to row[dst] of m in place.
func AddRowMultiple[T any](m *Dense[T], dst, src int, s T) error {
	f, err := engine.Resolve(addRowMultipleOp, addRowMultipleTemplate[T])
	if err != nil {
		return err
	}

	return f(m, dst, src, s)
}

// ---------- Elimination family ----------

// Determinant returns det(m) for square m. Element types whose division
// truncates (the integer kinds) use fraction-free elimination and get the
// exact determinant.
func Determinant[T any](m *Dense[T]) (T, error) {
	f, err := engine.Resolve(determinantOp, determinantTemplate[T])
	if err != nil {
		var zero T
		return zero, err
	}

	return f(m)
}

// Echelon returns the row echelon form of m with unit pivots. For integer
// element types a pivot that does not divide its row fails with
// engine.ErrNotWhole.
func Echelon[T any](m *Dense[T]) (*Dense[T], error) {
	f, err := engine.Resolve(echelonOp, echelonTemplate[T])
	if err != nil {
		return nil, err
	}

	return f(m)
}

// ReducedEchelon returns the reduced row echelon form of m.
func ReducedEchelon[T any](m *Dense[T]) (*Dense[T], error) {
	f, err := engine.Resolve(reducedEchelonOp, reducedEchelonTemplate[T])
	if err != nil {
		return nil, err
	}

	return f(m)
}

// Inverse returns m⁻¹, or ErrSingular. Integer element types get the exact
// inverse of a unimodular m; any other nonsingular m fails with
// engine.ErrNotWhole.
func Inverse[T any](m *Dense[T]) (*Dense[T], error) {
	f, err := engine.Resolve(inverseOp, inverseTemplate[T])
	if err != nil {
		return nil, err
	}

	return f(m)
}

// Adjoint returns the adjugate of m, the transposed cofactor matrix.
func Adjoint[T any](m *Dense[T]) (*Dense[T], error) {
	f, err := engine.Resolve(adjointOp, adjointTemplate[T])
	if err != nil {
		return nil, err
	}

	return f(m)
}

// DecomposeLU factors square m as P·m = L·U.
func DecomposeLU[T any](m *Dense[T]) (*LU[T], error) {
	f, err := engine.Resolve(decomposeLUOp, decomposeLUTemplate[T])
	if err != nil {
		return nil, err
	}

	return f(m)
}

// ---------- Comparison ----------

// EqualsValue reports whether a and b have the same shape and entries.
func EqualsValue[T any](a, b *Dense[T]) (bool, error) {
	f, err := engine.Resolve(equalsValueOp, equalsValueTemplate[T])
	if err != nil {
		return false, err
	}

	return f(a, b), nil
}

// EqualsLeniency reports whether a and b have the same shape and every entry
// pair is within leniency.
func EqualsLeniency[T any](a, b *Dense[T], leniency T) (bool, error) {
	f, err := engine.Resolve(equalsLeniencyOp, equalsLeniencyTemplate[T])
	if err != nil {
		return false, err
	}

	return f(a, b, leniency), nil
}

// MultiplyFor resolves Multiply for alg's element type through its slot.
func MultiplyFor[T any](alg *engine.Algebra[T]) (func(a, b *Dense[T]) (*Dense[T], error), error) {
	return engine.Dependency(alg, multiplyOp, multiplyTemplate[T])
}
