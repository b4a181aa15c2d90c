// SPDX-License-Identifier: MIT
// Package matrix: Gaussian elimination family.
//
// The three elementary row operations are operations in their own right, and
// every composite here (Determinant, Echelon, ReducedEchelon, Inverse, LU)
// reaches them through their slots. A composite never mutates its argument;
// it clones first and runs the row operations on the copy.

package matrix

import (
	"github.com/katalvlaran/numerus/capability"
	"github.com/katalvlaran/numerus/engine"
)

var (
	swapRowsOp = engine.Define(family, "SwapRows", 3, "(m *Dense[T], i, j int) error")
	scaleRowOp = engine.Define(family, "ScaleRow", 3, "(m *Dense[T], i int, s T) error",
		capability.Multiplication)
	addRowMultipleOp = engine.Define(family, "AddRowMultiple", 4, "(m *Dense[T], dst, src int, s T) error",
		capability.Addition, capability.Multiplication)
	determinantOp = engine.Define(family, "Determinant", 1, "(m *Dense[T]) (T, error)",
		capability.Subtraction, capability.Multiplication, capability.Division, capability.Negation,
		capability.Equality, capability.Conversion).DependsOn(swapRowsOp, scaleRowOp, addRowMultipleOp)
	echelonOp = engine.Define(family, "Echelon", 1, "(m *Dense[T]) (*Dense[T], error)",
		capability.Division, capability.Negation, capability.Equality, capability.Conversion).
		DependsOn(swapRowsOp, scaleRowOp, addRowMultipleOp)
	reducedEchelonOp = engine.Define(family, "ReducedEchelon", 1, "(m *Dense[T]) (*Dense[T], error)",
		capability.Division, capability.Negation, capability.Equality, capability.Conversion).
		DependsOn(swapRowsOp, scaleRowOp, addRowMultipleOp)
	adjointOp = engine.Define(family, "Adjoint", 1, "(m *Dense[T]) (*Dense[T], error)",
		capability.Negation, capability.Conversion).DependsOn(minorOp, determinantOp)
	inverseOp = engine.Define(family, "Inverse", 1, "(m *Dense[T]) (*Dense[T], error)",
		capability.Division, capability.Negation, capability.Equality, capability.Conversion).
		DependsOn(swapRowsOp, scaleRowOp, addRowMultipleOp, identityOp, concatOp, adjointOp)
)

func swapRowsTemplate[T any](*engine.Algebra[T]) (func(m *Dense[T], i, j int) error, error) {
	return func(m *Dense[T], i, j int) error {
		if err := ValidateNotNil(m); err != nil {
			return matrixErrorf(swapRowsOp, err)
		}
		if err := ValidateRow(m, i); err != nil {
			return matrixErrorf(swapRowsOp, err)
		}
		if err := ValidateRow(m, j); err != nil {
			return matrixErrorf(swapRowsOp, err)
		}
		if i == j {
			return nil
		}
		ri, rj := m.row(i), m.row(j)
		for k := range ri {
			ri[k], rj[k] = rj[k], ri[k]
		}

		return nil
	}, nil
}

func scaleRowTemplate[T any](alg *engine.Algebra[T]) (func(m *Dense[T], i int, s T) error, error) {
	return func(m *Dense[T], i int, s T) error {
		if err := ValidateNotNil(m); err != nil {
			return matrixErrorf(scaleRowOp, err)
		}
		if err := ValidateRow(m, i); err != nil {
			return matrixErrorf(scaleRowOp, err)
		}
		r := m.row(i)
		for k := range r {
			r[k] = alg.Mul(r[k], s)
		}

		return nil
	}, nil
}

// addRowMultipleTemplate performs row[dst] += s·row[src].
func addRowMultipleTemplate[T any](alg *engine.Algebra[T]) (func(m *Dense[T], dst, src int, s T) error, error) {
	return func(m *Dense[T], dst, src int, s T) error {
		if err := ValidateNotNil(m); err != nil {
			return matrixErrorf(addRowMultipleOp, err)
		}
		if err := ValidateRow(m, dst); err != nil {
			return matrixErrorf(addRowMultipleOp, err)
		}
		if err := ValidateRow(m, src); err != nil {
			return matrixErrorf(addRowMultipleOp, err)
		}
		rd, rs := m.row(dst), m.row(src)
		for k := range rd {
			rd[k] = alg.Add(rd[k], alg.Mul(rs[k], s))
		}

		return nil
	}, nil
}

// rowOps bundles the three row slots a composite depends on. exact is set
// for element types whose division truncates; elimination then refuses any
// pivot division that leaves a remainder.
type rowOps[T any] struct {
	alg   *engine.Algebra[T]
	swap  func(m *Dense[T], i, j int) error
	scale func(m *Dense[T], i int, s T) error
	add   func(m *Dense[T], dst, src int, s T) error
	exact bool
}

// truncates reports whether T's division drops the fraction (1/2 == 0), as
// the integer kinds do.
func truncates[T any](alg *engine.Algebra[T]) bool {
	return alg.IsZero(alg.Div(alg.One(), alg.Int(2)))
}

// quotient returns x/d, failing with ErrNotWhole when exact is set and d does
// not divide x.
func (o *rowOps[T]) quotient(x, d T) (T, error) {
	q := o.alg.Div(x, d)
	if o.exact && !o.alg.Equal(o.alg.Mul(q, d), x) {
		return q, engine.ErrNotWhole
	}

	return q, nil
}

func rowOpsFor[T any](alg *engine.Algebra[T]) (*rowOps[T], error) {
	swap, err := engine.Dependency(alg, swapRowsOp, swapRowsTemplate[T])
	if err != nil {
		return nil, err
	}
	scale, err := engine.Dependency(alg, scaleRowOp, scaleRowTemplate[T])
	if err != nil {
		return nil, err
	}
	add, err := engine.Dependency(alg, addRowMultipleOp, addRowMultipleTemplate[T])
	if err != nil {
		return nil, err
	}

	return &rowOps[T]{alg: alg, swap: swap, scale: scale, add: add, exact: truncates(alg)}, nil
}

// elimination records what a pass over the pivot columns saw.
type elimination[T any] struct {
	rank   int
	swaps  int
	pivots []T // pivot values before normalization, one per rank
}

// eliminate brings m to row echelon form in place, searching pivots only in
// the first cols columns. Each pivot row is normalized to a leading one; when
// reduced is set, entries above the pivot are cleared as well. For truncating
// element types a pivot row that the pivot does not divide fails with
// ErrNotWhole, leaving m partially eliminated.
//
// Stage 1: scan column c from the current row down for a nonzero pivot.
// Stage 2: swap it into place, divide the row by the pivot.
// Stage 3: clear column c below (and above, if reduced) the pivot.
// Complexity: O(r·c·cols).
func (o *rowOps[T]) eliminate(m *Dense[T], cols int, reduced bool) (elimination[T], error) {
	alg := o.alg
	var e elimination[T]
	for c := 0; c < cols && e.rank < m.r; c++ {
		p := -1
		for i := e.rank; i < m.r; i++ {
			if !alg.IsZero(m.data[i*m.c+c]) {
				p = i
				break
			}
		}
		if p < 0 {
			continue
		}
		r := e.rank
		if p != r {
			_ = o.swap(m, p, r) // indices are in range
			e.swaps++
		}
		pivot := m.data[r*m.c+c]
		e.pivots = append(e.pivots, pivot)
		if err := o.normalize(m, r, pivot); err != nil {
			return e, err
		}
		for i := 0; i < m.r; i++ {
			if i == r || (i < r && !reduced) {
				continue
			}
			if f := m.data[i*m.c+c]; !alg.IsZero(f) {
				_ = o.add(m, i, r, alg.Neg(f))
			}
		}
		e.rank++
	}

	return e, nil
}

// normalize divides row r by pivot. Inexact types go through the ScaleRow
// slot with the reciprocal; truncating types divide entry by entry so that a
// pivot of 2 still normalizes [2 4].
func (o *rowOps[T]) normalize(m *Dense[T], r int, pivot T) error {
	if !o.exact {
		return o.scale(m, r, o.alg.Div(o.alg.One(), pivot))
	}
	row := m.row(r)
	out := make([]T, len(row))
	for k, x := range row {
		q, err := o.quotient(x, pivot)
		if err != nil {
			return err
		}
		out[k] = q
	}
	copy(row, out)

	return nil
}

// bareiss computes det(m) on a copy by fraction-free elimination. Each
// division is exact over the integers, so truncating types get the true
// determinant. Rows are exchanged through the SwapRows slot.
// Complexity: O(n³).
func (o *rowOps[T]) bareiss(m *Dense[T]) T {
	alg := o.alg
	n := m.r
	a := m.Clone()
	prev := alg.One()
	negate := false
	for k := 0; k < n-1; k++ {
		if alg.IsZero(a.data[k*n+k]) {
			p := -1
			for i := k + 1; i < n; i++ {
				if !alg.IsZero(a.data[i*n+k]) {
					p = i
					break
				}
			}
			if p < 0 {
				return alg.Zero()
			}
			_ = o.swap(a, p, k) // indices are in range
			negate = !negate
		}
		pivot := a.data[k*n+k]
		for i := k + 1; i < n; i++ {
			aik := a.data[i*n+k]
			for j := k + 1; j < n; j++ {
				v := alg.Sub(alg.Mul(a.data[i*n+j], pivot), alg.Mul(aik, a.data[k*n+j]))
				a.data[i*n+j] = alg.Div(v, prev)
			}
		}
		prev = pivot
	}
	det := a.data[n*n-1]
	if negate {
		det = alg.Neg(det)
	}

	return det
}

// determinantTemplate eliminates a copy of m and multiplies the pivots it
// divided out. Every row swap flips the sign; a missing pivot means zero.
// Truncating element types take the fraction-free path instead.
func determinantTemplate[T any](alg *engine.Algebra[T]) (func(m *Dense[T]) (T, error), error) {
	ops, err := rowOpsFor(alg)
	if err != nil {
		return nil, err
	}

	return func(m *Dense[T]) (T, error) {
		zero := alg.Zero()
		if err := ValidateSquareNonNil(m); err != nil {
			return zero, matrixErrorf(determinantOp, err)
		}
		if ops.exact {
			return ops.bareiss(m), nil
		}
		e, _ := ops.eliminate(m.Clone(), m.c, false) // inexact types never fail
		if e.rank < m.r {
			return zero, nil
		}
		det := alg.One()
		for _, p := range e.pivots {
			det = alg.Mul(det, p)
		}
		if e.swaps%2 == 1 {
			det = alg.Neg(det)
		}

		return det, nil
	}, nil
}

func echelonTemplate[T any](alg *engine.Algebra[T]) (func(m *Dense[T]) (*Dense[T], error), error) {
	return echelonWith(alg, echelonOp, false)
}

func reducedEchelonTemplate[T any](alg *engine.Algebra[T]) (func(m *Dense[T]) (*Dense[T], error), error) {
	return echelonWith(alg, reducedEchelonOp, true)
}

func echelonWith[T any](alg *engine.Algebra[T], d *engine.Descriptor, reduced bool) (func(m *Dense[T]) (*Dense[T], error), error) {
	ops, err := rowOpsFor(alg)
	if err != nil {
		return nil, err
	}

	return func(m *Dense[T]) (*Dense[T], error) {
		if err := ValidateNotNil(m); err != nil {
			return nil, matrixErrorf(d, err)
		}
		out := m.Clone()
		if _, err := ops.eliminate(out, out.c, reduced); err != nil {
			return nil, matrixErrorf(d, err)
		}

		return out, nil
	}, nil
}

// inverseTemplate is Gauss-Jordan on [m | I]: once the left block reduces to
// the identity, the right block is m⁻¹. Fewer than n pivots in the left block
// means m is singular.
//
// Truncating element types use adj(m)/det(m) instead, which is exact
// whenever the inverse is integral (det = ±1); any other nonzero determinant
// fails with ErrNotWhole.
// Complexity: O(n³), O(n⁵) on the adjugate path.
func inverseTemplate[T any](alg *engine.Algebra[T]) (func(m *Dense[T]) (*Dense[T], error), error) {
	ops, err := rowOpsFor(alg)
	if err != nil {
		return nil, err
	}
	identity, err := engine.Dependency(alg, identityOp, identityTemplate[T])
	if err != nil {
		return nil, err
	}
	concat, err := engine.Dependency(alg, concatOp, concatTemplate[T])
	if err != nil {
		return nil, err
	}
	if ops.exact {
		return adjugateInverse(ops)
	}

	return func(m *Dense[T]) (*Dense[T], error) {
		if err := ValidateSquareNonNil(m); err != nil {
			return nil, matrixErrorf(inverseOp, err)
		}
		n := m.r
		id, _ := identity(n)
		aug, _ := concat(m, id)
		if e, _ := ops.eliminate(aug, n, true); e.rank < n {
			return nil, matrixErrorf(inverseOp, ErrSingular)
		}
		out := &Dense[T]{r: n, c: n, data: make([]T, 0, n*n)}
		for i := 0; i < n; i++ {
			out.data = append(out.data, aug.row(i)[n:]...)
		}

		return out, nil
	}, nil
}

func adjugateInverse[T any](ops *rowOps[T]) (func(m *Dense[T]) (*Dense[T], error), error) {
	alg := ops.alg
	adjoint, err := engine.Dependency(alg, adjointOp, adjointTemplate[T])
	if err != nil {
		return nil, err
	}

	return func(m *Dense[T]) (*Dense[T], error) {
		if err := ValidateSquareNonNil(m); err != nil {
			return nil, matrixErrorf(inverseOp, err)
		}
		det := ops.bareiss(m)
		if alg.IsZero(det) {
			return nil, matrixErrorf(inverseOp, ErrSingular)
		}
		out, err := adjoint(m)
		if err != nil {
			return nil, matrixErrorf(inverseOp, err)
		}
		for i, x := range out.data {
			if out.data[i], err = ops.quotient(x, det); err != nil {
				return nil, matrixErrorf(inverseOp, err)
			}
		}

		return out, nil
	}, nil
}

// adjointTemplate builds the transposed cofactor matrix:
// adj(m)[j][i] = (-1)^(i+j)·det(minor(m, i, j)). A 1×1 matrix has adjoint [1].
// Complexity: O(n⁵) through the Determinant slot.
func adjointTemplate[T any](alg *engine.Algebra[T]) (func(m *Dense[T]) (*Dense[T], error), error) {
	minor, err := engine.Dependency(alg, minorOp, minorTemplate[T])
	if err != nil {
		return nil, err
	}
	det, err := engine.Dependency(alg, determinantOp, determinantTemplate[T])
	if err != nil {
		return nil, err
	}

	return func(m *Dense[T]) (*Dense[T], error) {
		if err := ValidateSquareNonNil(m); err != nil {
			return nil, matrixErrorf(adjointOp, err)
		}
		n := m.r
		out := &Dense[T]{r: n, c: n, data: make([]T, n*n)}
		if n == 1 {
			out.data[0] = alg.One()
			return out, nil
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				sub, _ := minor(m, i, j)
				c, _ := det(sub)
				if (i+j)%2 == 1 {
					c = alg.Neg(c)
				}
				out.data[j*n+i] = c
			}
		}

		return out, nil
	}, nil
}
