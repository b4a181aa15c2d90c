// SPDX-License-Identifier: MIT

package matrix

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/numerus/engine"
)

// float64 Multiply and Determinant run on gonum/mat over the same row-major
// backing slice; no copy is made on the way in.
func init() {
	engine.RegisterFastPath[float64](multiplyOp, func(a, b *Dense[float64]) (*Dense[float64], error) {
		if err := ValidateNotNil(a); err != nil {
			return nil, matrixErrorf(multiplyOp, err)
		}
		if err := ValidateNotNil(b); err != nil {
			return nil, matrixErrorf(multiplyOp, err)
		}
		if a.c != b.r {
			return nil, matrixErrorf(multiplyOp, ErrDimensionMismatch)
		}
		out := &Dense[float64]{r: a.r, c: b.c, data: make([]float64, a.r*b.c)}
		mat.NewDense(out.r, out.c, out.data).Mul(gonumView(a), gonumView(b))

		return out, nil
	})
	engine.RegisterFastPath[float64](determinantOp, func(m *Dense[float64]) (float64, error) {
		if err := ValidateSquareNonNil(m); err != nil {
			return 0, matrixErrorf(determinantOp, err)
		}

		return mat.Det(gonumView(m)), nil
	})
}

// gonumView wraps m's storage without copying.
func gonumView(m *Dense[float64]) *mat.Dense { return mat.NewDense(m.r, m.c, m.data) }
