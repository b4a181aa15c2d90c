// SPDX-License-Identifier: MIT

package engine

import (
	"github.com/katalvlaran/numerus/capability"
)

// Algebra is the operator table of one element type T, resolved once per
// specialization and handed to templates. A field is nil when T cannot
// reach the operator; templates only touch operators their descriptor
// requires, so validation guarantees the fields they use are set.
type Algebra[T any] struct {
	Type capability.Type

	Add     func(a, b T) T
	Sub     func(a, b T) T
	Mul     func(a, b T) T
	Div     func(a, b T) T
	Rem     func(a, b T) T
	Neg     func(a T) T
	Equal   func(a, b T) bool
	Less    func(a, b T) bool
	FromInt func(n int) T

	cache *Cache
}

// Zero returns FromInt(0).
func (a *Algebra[T]) Zero() T { return a.FromInt(0) }

// One returns FromInt(1).
func (a *Algebra[T]) One() T { return a.FromInt(1) }

// Int returns FromInt(n).
func (a *Algebra[T]) Int(n int) T { return a.FromInt(n) }

// Greater reports x > y using Less.
func (a *Algebra[T]) Greater(x, y T) bool { return a.Less(y, x) }

// LessEq reports x <= y using Less.
func (a *Algebra[T]) LessEq(x, y T) bool { return !a.Less(y, x) }

// GreaterEq reports x >= y using Less.
func (a *Algebra[T]) GreaterEq(x, y T) bool { return !a.Less(x, y) }

// IsZero reports x == 0 using Equal and FromInt.
func (a *Algebra[T]) IsZero(x T) bool { return a.Equal(x, a.FromInt(0)) }

// IsNegative reports x < 0 using Less and FromInt.
func (a *Algebra[T]) IsNegative(x T) bool { return a.Less(x, a.FromInt(0)) }

// Abs returns |x|. Requires Less, Neg and FromInt.
func (a *Algebra[T]) Abs(x T) T {
	if a.Less(x, a.FromInt(0)) {
		return a.Neg(x)
	}

	return x
}

// Min returns the smaller of x and y (x on ties).
func (a *Algebra[T]) Min(x, y T) T {
	if a.Less(y, x) {
		return y
	}

	return x
}

// Max returns the larger of x and y (x on ties).
func (a *Algebra[T]) Max(x, y T) T {
	if a.Less(x, y) {
		return y
	}

	return x
}

// Cache returns the cache this algebra was resolved in. Dependency uses it
// to route nested operations through their own slots.
func (a *Algebra[T]) Cache() *Cache { return a.cache }

// NewAlgebra resolves T's operator table outside of any cache. Operators are
// bound by the same precedence the validator reports:
// native > method > conversion > comparable.
func NewAlgebra[T any]() *Algebra[T] {
	return newAlgebra[T](nil)
}

func newAlgebra[T any](c *Cache) *Algebra[T] {
	t := capability.TypeOf[T]()
	var alg *Algebra[T]
	if t.Kind.Builtin() {
		alg = nativeAlgebra[T]()
	}
	if alg == nil {
		alg = reflectAlgebra[T](t)
		bindMethods(alg, t)
	}
	alg.Type = t
	alg.cache = c

	return alg
}
