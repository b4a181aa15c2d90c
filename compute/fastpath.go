// SPDX-License-Identifier: MIT

package compute

import (
	"math"

	"github.com/katalvlaran/numerus/engine"
)

func init() {
	registerFloat[float64]()
	registerFloat[float32]()
	registerInteger[int]()
	registerInteger[int8]()
	registerInteger[int16]()
	registerInteger[int32]()
	registerInteger[int64]()
	registerInteger[uint]()
	registerInteger[uint8]()
	registerInteger[uint16]()
	registerInteger[uint32]()
	registerInteger[uint64]()
}

// registerReal installs the operator-level fast paths shared by every
// built-in numeric kind.
func registerReal[N engine.Real]() {
	engine.RegisterFastPath[N](addOp, func(a, b N) N { return a + b })
	engine.RegisterFastPath[N](subtractOp, func(a, b N) N { return a - b })
	engine.RegisterFastPath[N](multiplyOp, func(a, b N) N { return a * b })
	engine.RegisterFastPath[N](negateOp, func(a N) N { return -a })
	engine.RegisterFastPath[N](equalOp, func(a, b N) bool { return a == b })
	engine.RegisterFastPath[N](lessThanOp, func(a, b N) bool { return a < b })
	engine.RegisterFastPath[N](greaterThanOp, func(a, b N) bool { return a > b })
}

func registerInteger[I engine.Integer]() {
	registerReal[I]()
	engine.RegisterFastPath[I](IsIntegerOp, func(I) bool { return true })
}

// registerFloat adds the math-package fast paths. Preconditions match the
// generic templates so both paths fail the same way.
func registerFloat[F engine.Float]() {
	registerReal[F]()
	engine.RegisterFastPath[F](PiOp, func() F { return F(math.Pi) })
	engine.RegisterFastPath[F](IsIntegerOp, func(x F) bool {
		f := float64(x)
		return !math.IsInf(f, 0) && math.Trunc(f) == f
	})
	engine.RegisterFastPath[F](SquareRootOp, func(x F) (F, error) {
		if x < 0 {
			return 0, computeErrorf(SquareRootOp, engine.ErrNegative)
		}

		return F(math.Sqrt(float64(x))), nil
	})
	engine.RegisterFastPath[F](powerOp, func(base F, exp int) (F, error) {
		if exp < 0 && base == 0 {
			return 0, computeErrorf(powerOp, engine.ErrDivideByZero)
		}

		return F(math.Pow(float64(base), float64(exp))), nil
	})
	engine.RegisterFastPath[F](RootOp, func(x F, n int) (F, error) {
		switch {
		case n < 1:
			return 0, computeErrorf(RootOp, engine.ErrInvalidArgument)
		case n == 1 || x == 0:
			return x, nil
		case x < 0:
			if n%2 == 0 {
				return 0, computeErrorf(RootOp, engine.ErrNegative)
			}

			return -F(math.Pow(-float64(x), 1/float64(n))), nil
		case n == 2:
			return F(math.Sqrt(float64(x))), nil
		case n == 3:
			return F(math.Cbrt(float64(x))), nil
		}

		return F(math.Pow(float64(x), 1/float64(n))), nil
	})
}
