// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/numerus/capability"
	"github.com/katalvlaran/numerus/compute"
	"github.com/katalvlaran/numerus/engine"
	"github.com/katalvlaran/numerus/vector"
)

const family = "matrix"

var (
	identityOp = engine.Define(family, "Identity", 1, "(n int) (*Dense[T], error)",
		capability.Conversion)
	negateOp = engine.Define(family, "Negate", 1, "(m *Dense[T]) (*Dense[T], error)",
		capability.Negation)
	addOp = engine.Define(family, "Add", 2, "(a, b *Dense[T]) (*Dense[T], error)",
		capability.Addition)
	subtractOp = engine.Define(family, "Subtract", 2, "(a, b *Dense[T]) (*Dense[T], error)",
		capability.Subtraction)
	multiplyOp = engine.Define(family, "Multiply", 2, "(a, b *Dense[T]) (*Dense[T], error)",
		capability.Addition, capability.Multiplication, capability.Conversion)
	multiplyVectorOp = engine.Define(family, "MultiplyVector", 2,
		"(m *Dense[T], v vector.Vector[T]) (vector.Vector[T], error)").DependsOn(vector.DotProductOp)
	multiplyScalarOp = engine.Define(family, "MultiplyScalar", 2, "(m *Dense[T], s T) (*Dense[T], error)",
		capability.Multiplication)
	divideScalarOp = engine.Define(family, "DivideScalar", 2, "(m *Dense[T], s T) (*Dense[T], error)",
		capability.Division, capability.Equality, capability.Conversion)
	powerOp = engine.Define(family, "Power", 2, "(m *Dense[T], n int) (*Dense[T], error)").
		DependsOn(multiplyOp, identityOp, inverseOp)
	transposeOp = engine.Define(family, "Transpose", 1, "(m *Dense[T]) (*Dense[T], error)")
	traceOp     = engine.Define(family, "Trace", 1, "(m *Dense[T]) (T, error)",
		capability.Addition, capability.Conversion)
	minorOp = engine.Define(family, "Minor", 3, "(m *Dense[T], row, col int) (*Dense[T], error)")
	concatOp = engine.Define(family, "ConcatenateRowWise", 2, "(a, b *Dense[T]) (*Dense[T], error)")
	equalsValueOp = engine.Define(family, "EqualsValue", 2, "(a, b *Dense[T]) bool",
		capability.Equality)
	equalsLeniencyOp = engine.Define(family, "EqualsLeniency", 3, "(a, b *Dense[T], leniency T) bool",
		capability.Addition, capability.LessThan).DependsOn(compute.EqualsLeniencyOp)
)

// elementwise builds a same-shape result from f applied to every entry.
func elementwise[T any](m *Dense[T], f func(x T) T) *Dense[T] {
	out := &Dense[T]{r: m.r, c: m.c, data: make([]T, len(m.data))}
	for i, x := range m.data {
		out.data[i] = f(x)
	}

	return out
}

// zip builds a same-shape result from f applied to paired entries.
// Stage 1 (Validate): nil and shape checks.
// Stage 2 (Execute): one pass over the flat slices.
func zip[T any](d *engine.Descriptor, a, b *Dense[T], f func(x, y T) T) (*Dense[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(d, err)
	}
	out := &Dense[T]{r: a.r, c: a.c, data: make([]T, len(a.data))}
	for i := range a.data {
		out.data[i] = f(a.data[i], b.data[i])
	}

	return out, nil
}

func identityTemplate[T any](alg *engine.Algebra[T]) (func(n int) (*Dense[T], error), error) {
	return func(n int) (*Dense[T], error) {
		m, err := NewDense[T](n, n)
		if err != nil {
			return nil, matrixErrorf(identityOp, err)
		}
		zero, one := alg.Zero(), alg.One()
		for i := range m.data {
			m.data[i] = zero
		}
		for i := 0; i < n; i++ {
			m.data[i*n+i] = one
		}

		return m, nil
	}, nil
}

func negateTemplate[T any](alg *engine.Algebra[T]) (func(m *Dense[T]) (*Dense[T], error), error) {
	return func(m *Dense[T]) (*Dense[T], error) {
		if err := ValidateNotNil(m); err != nil {
			return nil, matrixErrorf(negateOp, err)
		}

		return elementwise(m, alg.Neg), nil
	}, nil
}

func addTemplate[T any](alg *engine.Algebra[T]) (func(a, b *Dense[T]) (*Dense[T], error), error) {
	return func(a, b *Dense[T]) (*Dense[T], error) { return zip(addOp, a, b, alg.Add) }, nil
}

func subtractTemplate[T any](alg *engine.Algebra[T]) (func(a, b *Dense[T]) (*Dense[T], error), error) {
	return func(a, b *Dense[T]) (*Dense[T], error) { return zip(subtractOp, a, b, alg.Sub) }, nil
}

// multiplyTemplate is the textbook triple loop in i-k-j order, so the inner
// loop walks both b and the output row contiguously.
// Complexity: O(r·k·c).
func multiplyTemplate[T any](alg *engine.Algebra[T]) (func(a, b *Dense[T]) (*Dense[T], error), error) {
	return func(a, b *Dense[T]) (*Dense[T], error) {
		// Stage 1 (Validate): operands present, inner dimensions agree.
		if err := ValidateNotNil(a); err != nil {
			return nil, matrixErrorf(multiplyOp, err)
		}
		if err := ValidateNotNil(b); err != nil {
			return nil, matrixErrorf(multiplyOp, err)
		}
		if a.c != b.r {
			return nil, matrixErrorf(multiplyOp, ErrDimensionMismatch)
		}
		// Stage 2 (Prepare): zero-filled output.
		out := &Dense[T]{r: a.r, c: b.c, data: make([]T, a.r*b.c)}
		zero := alg.Zero()
		for i := range out.data {
			out.data[i] = zero
		}
		// Stage 3 (Execute): accumulate a[i,k]·b[k,*] into out[i,*].
		for i := 0; i < a.r; i++ {
			dst := out.row(i)
			for k := 0; k < a.c; k++ {
				aik := a.data[i*a.c+k]
				for j, bkj := range b.row(k) {
					dst[j] = alg.Add(dst[j], alg.Mul(aik, bkj))
				}
			}
		}

		return out, nil
	}, nil
}

// multiplyVectorTemplate takes one dot product per row through the vector
// DotProduct slot.
func multiplyVectorTemplate[T any](alg *engine.Algebra[T]) (func(m *Dense[T], v vector.Vector[T]) (vector.Vector[T], error), error) {
	dot, err := vector.DotProductFor(alg)
	if err != nil {
		return nil, err
	}

	return func(m *Dense[T], v vector.Vector[T]) (vector.Vector[T], error) {
		if err := ValidateNotNil(m); err != nil {
			return nil, matrixErrorf(multiplyVectorOp, err)
		}
		if err := ValidateVecLen(v, m.c); err != nil {
			return nil, matrixErrorf(multiplyVectorOp, err)
		}
		out := make(vector.Vector[T], m.r)
		for i := range out {
			out[i], _ = dot(m.row(i), v) // lengths validated above
		}

		return out, nil
	}, nil
}

func multiplyScalarTemplate[T any](alg *engine.Algebra[T]) (func(m *Dense[T], s T) (*Dense[T], error), error) {
	return func(m *Dense[T], s T) (*Dense[T], error) {
		if err := ValidateNotNil(m); err != nil {
			return nil, matrixErrorf(multiplyScalarOp, err)
		}

		return elementwise(m, func(x T) T { return alg.Mul(x, s) }), nil
	}, nil
}

func divideScalarTemplate[T any](alg *engine.Algebra[T]) (func(m *Dense[T], s T) (*Dense[T], error), error) {
	return func(m *Dense[T], s T) (*Dense[T], error) {
		if err := ValidateNotNil(m); err != nil {
			return nil, matrixErrorf(divideScalarOp, err)
		}
		if alg.IsZero(s) {
			return nil, matrixErrorf(divideScalarOp, engine.ErrDivideByZero)
		}

		return elementwise(m, func(x T) T { return alg.Div(x, s) }), nil
	}, nil
}

// powerTemplate raises a square matrix to an integer power by repeated
// squaring through the Multiply slot. m⁰ is the identity; a negative power
// inverts first, so a singular m fails with ErrSingular.
// Complexity: O(n³ log |p|).
func powerTemplate[T any](alg *engine.Algebra[T]) (func(m *Dense[T], p int) (*Dense[T], error), error) {
	multiply, err := engine.Dependency(alg, multiplyOp, multiplyTemplate[T])
	if err != nil {
		return nil, err
	}
	identity, err := engine.Dependency(alg, identityOp, identityTemplate[T])
	if err != nil {
		return nil, err
	}
	inverse, err := engine.Dependency(alg, inverseOp, inverseTemplate[T])
	if err != nil {
		return nil, err
	}

	return func(m *Dense[T], p int) (*Dense[T], error) {
		if err := ValidateSquareNonNil(m); err != nil {
			return nil, matrixErrorf(powerOp, err)
		}
		base := m
		if p < 0 {
			inv, err := inverse(m)
			if err != nil {
				return nil, matrixErrorf(powerOp, err)
			}
			base, p = inv, -p
		}
		result, _ := identity(m.r)
		for ; p > 0; p >>= 1 {
			if p&1 == 1 {
				result, _ = multiply(result, base)
			}
			if p > 1 {
				base, _ = multiply(base, base)
			}
		}

		return result, nil
	}, nil
}

func transposeTemplate[T any](*engine.Algebra[T]) (func(m *Dense[T]) (*Dense[T], error), error) {
	return func(m *Dense[T]) (*Dense[T], error) {
		if err := ValidateNotNil(m); err != nil {
			return nil, matrixErrorf(transposeOp, err)
		}
		out := &Dense[T]{r: m.c, c: m.r, data: make([]T, len(m.data))}
		for i := 0; i < m.r; i++ {
			for j := 0; j < m.c; j++ {
				out.data[j*m.r+i] = m.data[i*m.c+j]
			}
		}

		return out, nil
	}, nil
}

func traceTemplate[T any](alg *engine.Algebra[T]) (func(m *Dense[T]) (T, error), error) {
	return func(m *Dense[T]) (T, error) {
		sum := alg.Zero()
		if err := ValidateSquareNonNil(m); err != nil {
			return sum, matrixErrorf(traceOp, err)
		}
		for i := 0; i < m.r; i++ {
			sum = alg.Add(sum, m.data[i*m.c+i])
		}

		return sum, nil
	}, nil
}

// minorTemplate drops one row and one column. The matrix must be at least
// 2×2 so the result keeps a valid shape.
func minorTemplate[T any](*engine.Algebra[T]) (func(m *Dense[T], row, col int) (*Dense[T], error), error) {
	return func(m *Dense[T], row, col int) (*Dense[T], error) {
		if err := ValidateNotNil(m); err != nil {
			return nil, matrixErrorf(minorOp, err)
		}
		if m.r < 2 || m.c < 2 {
			return nil, matrixErrorf(minorOp, ErrBadShape)
		}
		if row < 0 || row >= m.r || col < 0 || col >= m.c {
			return nil, matrixErrorf(minorOp, ErrOutOfRange)
		}
		out := &Dense[T]{r: m.r - 1, c: m.c - 1, data: make([]T, 0, (m.r-1)*(m.c-1))}
		for i := 0; i < m.r; i++ {
			if i == row {
				continue
			}
			src := m.row(i)
			out.data = append(out.data, src[:col]...)
			out.data = append(out.data, src[col+1:]...)
		}

		return out, nil
	}, nil
}

// concatTemplate places b to the right of a: [a | b].
func concatTemplate[T any](*engine.Algebra[T]) (func(a, b *Dense[T]) (*Dense[T], error), error) {
	return func(a, b *Dense[T]) (*Dense[T], error) {
		if err := ValidateNotNil(a); err != nil {
			return nil, matrixErrorf(concatOp, err)
		}
		if err := ValidateNotNil(b); err != nil {
			return nil, matrixErrorf(concatOp, err)
		}
		if a.r != b.r {
			return nil, matrixErrorf(concatOp, ErrDimensionMismatch)
		}
		out := &Dense[T]{r: a.r, c: a.c + b.c, data: make([]T, 0, a.r*(a.c+b.c))}
		for i := 0; i < a.r; i++ {
			out.data = append(out.data, a.row(i)...)
			out.data = append(out.data, b.row(i)...)
		}

		return out, nil
	}, nil
}

func equalsValueTemplate[T any](alg *engine.Algebra[T]) (func(a, b *Dense[T]) bool, error) {
	return func(a, b *Dense[T]) bool {
		if a == nil || b == nil {
			return a == b
		}
		if a.r != b.r || a.c != b.c {
			return false
		}
		for i := range a.data {
			if !alg.Equal(a.data[i], b.data[i]) {
				return false
			}
		}

		return true
	}, nil
}

func equalsLeniencyTemplate[T any](alg *engine.Algebra[T]) (func(a, b *Dense[T], leniency T) bool, error) {
	near, err := compute.EqualsLeniencyFor(alg)
	if err != nil {
		return nil, err
	}

	return func(a, b *Dense[T], leniency T) bool {
		if a == nil || b == nil {
			return a == b
		}
		if a.r != b.r || a.c != b.c {
			return false
		}
		for i := range a.data {
			if !near(a.data[i], b.data[i], leniency) {
				return false
			}
		}

		return true
	}, nil
}
