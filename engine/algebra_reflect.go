// SPDX-License-Identifier: MIT

package engine

import (
	"math"
	"reflect"

	"github.com/katalvlaran/numerus/capability"
)

// reflectAlgebra binds operators for T through its underlying kind
// (named numeric, string and bool types). Fields the kind cannot serve are
// left nil; bindMethods fills or overrides them afterwards.
//
// Complexity: every bound operator costs one reflect round trip per call.
func reflectAlgebra[T any](t capability.Type) *Algebra[T] {
	alg := &Algebra[T]{}
	rt := t.Reflect()
	if rt == nil {
		return alg
	}
	if rt.Comparable() {
		alg.Equal = func(a, b T) bool { return any(a) == any(b) }
	}

	switch rt.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		mk := func(v int64) T {
			out := reflect.New(rt).Elem()
			out.SetInt(v)

			return out.Interface().(T)
		}
		get := func(x T) int64 { return reflect.ValueOf(x).Int() }
		alg.Add = func(a, b T) T { return mk(get(a) + get(b)) }
		alg.Sub = func(a, b T) T { return mk(get(a) - get(b)) }
		alg.Mul = func(a, b T) T { return mk(get(a) * get(b)) }
		alg.Div = func(a, b T) T { return mk(get(a) / get(b)) }
		alg.Rem = func(a, b T) T { return mk(get(a) % get(b)) }
		alg.Neg = func(a T) T { return mk(-get(a)) }
		alg.Less = func(a, b T) bool { return get(a) < get(b) }
		alg.FromInt = func(n int) T { return mk(int64(n)) }

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		mk := func(v uint64) T {
			out := reflect.New(rt).Elem()
			out.SetUint(v)

			return out.Interface().(T)
		}
		get := func(x T) uint64 { return reflect.ValueOf(x).Uint() }
		alg.Add = func(a, b T) T { return mk(get(a) + get(b)) }
		alg.Sub = func(a, b T) T { return mk(get(a) - get(b)) }
		alg.Mul = func(a, b T) T { return mk(get(a) * get(b)) }
		alg.Div = func(a, b T) T { return mk(get(a) / get(b)) }
		alg.Rem = func(a, b T) T { return mk(get(a) % get(b)) }
		alg.Neg = func(a T) T { return mk(-get(a)) }
		alg.Less = func(a, b T) bool { return get(a) < get(b) }
		alg.FromInt = func(n int) T { return mk(uint64(n)) }

	case reflect.Float32, reflect.Float64:
		mk := func(v float64) T {
			out := reflect.New(rt).Elem()
			out.SetFloat(v)

			return out.Interface().(T)
		}
		get := func(x T) float64 { return reflect.ValueOf(x).Float() }
		alg.Add = func(a, b T) T { return mk(get(a) + get(b)) }
		alg.Sub = func(a, b T) T { return mk(get(a) - get(b)) }
		alg.Mul = func(a, b T) T { return mk(get(a) * get(b)) }
		alg.Div = func(a, b T) T { return mk(get(a) / get(b)) }
		alg.Rem = func(a, b T) T { return mk(math.Mod(get(a), get(b))) }
		alg.Neg = func(a T) T { return mk(-get(a)) }
		alg.Less = func(a, b T) bool { return get(a) < get(b) }
		alg.FromInt = func(n int) T { return mk(float64(n)) }

	case reflect.String:
		mk := func(v string) T {
			out := reflect.New(rt).Elem()
			out.SetString(v)

			return out.Interface().(T)
		}
		get := func(x T) string { return reflect.ValueOf(x).String() }
		alg.Add = func(a, b T) T { return mk(get(a) + get(b)) }
		alg.Less = func(a, b T) bool { return get(a) < get(b) }
	}

	return alg
}

// bindMethods overrides every operator T provides as a method. Method
// binding wins over kind conversion, matching capability.Reach.
func bindMethods[T any](alg *Algebra[T], t capability.Type) {
	for _, op := range capability.Operators() {
		if capability.Reach(t, op) != capability.ViaMethod {
			continue
		}
		switch op {
		case capability.Addition:
			alg.Add = func(a, b T) T { return any(a).(interface{ Add(T) T }).Add(b) }
		case capability.Subtraction:
			alg.Sub = func(a, b T) T { return any(a).(interface{ Sub(T) T }).Sub(b) }
		case capability.Multiplication:
			alg.Mul = func(a, b T) T { return any(a).(interface{ Mul(T) T }).Mul(b) }
		case capability.Division:
			alg.Div = func(a, b T) T { return any(a).(interface{ Div(T) T }).Div(b) }
		case capability.Remainder:
			alg.Rem = func(a, b T) T { return any(a).(interface{ Rem(T) T }).Rem(b) }
		case capability.Negation:
			alg.Neg = func(a T) T { return any(a).(interface{ Neg() T }).Neg() }
		case capability.Equality:
			alg.Equal = func(a, b T) bool { return any(a).(interface{ Equal(T) bool }).Equal(b) }
		case capability.LessThan:
			alg.Less = func(a, b T) bool { return any(a).(interface{ Less(T) bool }).Less(b) }
		case capability.Conversion:
			var zero T
			if conv, ok := any(zero).(interface{ FromInt(int) T }); ok {
				alg.FromInt = conv.FromInt
			}
		}
	}
}
