// SPDX-License-Identifier: MIT

// Package capability answers one structural question: does an element type
// expose the operators a generic operation needs?
//
// What & Why:
//
//	Go generics cannot say "any T that supports +, -, *, /". Instead every
//	operation declares the Operator set it requires, and Validate inspects
//	the element type (its kind and its method set) to decide whether each
//	operator is reachable. No user code is executed.
//
// Reachability:
//
//	Native      – exact built-in numeric types (float64, int32, ...).
//	Method      – value-receiver methods Add(T) T, Sub, Mul, Div, Rem,
//	              Neg() T, Equal(T) bool, Less(T) bool, FromInt(int) T.
//	Conversion  – named types whose underlying kind is numeric, string or
//	              bool; operators are reached by converting to the kind.
//	Comparable  – Go == on comparable types satisfies Equality.
//
// Complexity:
//
//	Validate is O(k) in the number of required operators; method lookup
//	is a reflect.Type.MethodByName per operator.
package capability
