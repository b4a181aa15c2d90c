// SPDX-License-Identifier: MIT

package engine

import "math"

// Integer is the set of built-in integer kinds, named types included.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Float is the set of built-in floating-point kinds, named types included.
type Float interface {
	~float32 | ~float64
}

// Real is every built-in numeric kind. Fast paths are written against it.
type Real interface {
	Integer | Float
}

// nativeAlgebra returns the Go-operator algebra for an exact built-in
// numeric T, or nil for any other T.
func nativeAlgebra[T any]() *Algebra[T] {
	var out any
	switch any(*new(T)).(type) {
	case int:
		out = integerAlgebra[int]()
	case int8:
		out = integerAlgebra[int8]()
	case int16:
		out = integerAlgebra[int16]()
	case int32:
		out = integerAlgebra[int32]()
	case int64:
		out = integerAlgebra[int64]()
	case uint:
		out = integerAlgebra[uint]()
	case uint8:
		out = integerAlgebra[uint8]()
	case uint16:
		out = integerAlgebra[uint16]()
	case uint32:
		out = integerAlgebra[uint32]()
	case uint64:
		out = integerAlgebra[uint64]()
	case float32:
		out = floatAlgebra[float32]()
	case float64:
		out = floatAlgebra[float64]()
	default:
		return nil
	}

	return out.(*Algebra[T])
}

func realAlgebra[N Real]() *Algebra[N] {
	return &Algebra[N]{
		Add:     func(a, b N) N { return a + b },
		Sub:     func(a, b N) N { return a - b },
		Mul:     func(a, b N) N { return a * b },
		Div:     func(a, b N) N { return a / b },
		Neg:     func(a N) N { return -a },
		Equal:   func(a, b N) bool { return a == b },
		Less:    func(a, b N) bool { return a < b },
		FromInt: func(n int) N { return N(n) },
	}
}

func integerAlgebra[I Integer]() *Algebra[I] {
	alg := realAlgebra[I]()
	alg.Rem = func(a, b I) I { return a % b }

	return alg
}

func floatAlgebra[F Float]() *Algebra[F] {
	alg := realAlgebra[F]()
	alg.Rem = func(a, b F) F { return F(math.Mod(float64(a), float64(b))) }

	return alg
}
