// SPDX-License-Identifier: MIT

package vector

import (
	vecmath "github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/numerus/engine"
)

// float64 vectors run on the SIMD block kernels of algo-vecmath and on
// gonum/floats. Length checks stay here: the kernels assume equal lengths.
func init() {
	engine.RegisterFastPath[float64](addOp, func(a, b Vector[float64]) (Vector[float64], error) {
		if len(a) != len(b) {
			return nil, vectorErrorf(addOp, engine.ErrDimensionMismatch)
		}
		out := make(Vector[float64], len(a))
		copy(out, a)
		vecmath.AddBlockInPlace(out, b)

		return out, nil
	})
	engine.RegisterFastPath[float64](subtractOp, func(a, b Vector[float64]) (Vector[float64], error) {
		if len(a) != len(b) {
			return nil, vectorErrorf(subtractOp, engine.ErrDimensionMismatch)
		}
		out := make(Vector[float64], len(a))
		floats.SubTo(out, a, b)

		return out, nil
	})
	engine.RegisterFastPath[float64](multiplyOp, func(a Vector[float64], s float64) Vector[float64] {
		out := make(Vector[float64], len(a))
		vecmath.ScaleBlock(out, a, s)

		return out
	})
	engine.RegisterFastPath[float64](DotProductOp, func(a, b Vector[float64]) (float64, error) {
		if len(a) != len(b) {
			return 0, vectorErrorf(DotProductOp, engine.ErrDimensionMismatch)
		}

		return floats.Dot(a, b), nil
	})
}
