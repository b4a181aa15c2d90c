// SPDX-License-Identifier: MIT

package capability

import "reflect"

// Finding is the verdict for one required operator.
type Finding struct {
	Operator Operator
	Via      Via
}

// Present reports whether the operator is reachable.
func (f Finding) Present() bool { return f.Via != ViaNone }

// Report is the CapabilityReport for one element type and one required set.
// Reports are never cached; every bootstrap run recomputes them.
type Report struct {
	Type     Type
	Findings []Finding // in required order
}

// OK reports whether every required operator is present.
func (r Report) OK() bool {
	_, missing := r.Missing()

	return !missing
}

// Missing returns the first missing operator in required order.
func (r Report) Missing() (Operator, bool) {
	for _, f := range r.Findings {
		if !f.Present() {
			return f.Operator, true
		}
	}

	return 0, false
}

// Via returns how op is reachable; ViaNone if op was not part of the
// required set or is missing.
func (r Report) Via(op Operator) Via {
	for _, f := range r.Findings {
		if f.Operator == op {
			return f.Via
		}
	}

	return ViaNone
}

// Err returns a *MissingError for the first missing operator, or nil.
func (r Report) Err() error {
	op, missing := r.Missing()
	if !missing {
		return nil
	}

	return &MissingError{Type: r.Type, Operator: op}
}

// Check validates T against the required operators.
func Check[T any](required ...Operator) Report {
	return Validate(TypeOf[T](), required...)
}

// Validate inspects t for each required operator and reports how (or
// whether) it is reachable. The check is structural only.
// Complexity: O(len(required)).
func Validate(t Type, required ...Operator) Report {
	rep := Report{Type: t, Findings: make([]Finding, 0, len(required))}
	for _, op := range required {
		rep.Findings = append(rep.Findings, Finding{Operator: op, Via: Reach(t, op)})
	}

	return rep
}

// Reach resolves a single operator for t using the precedence
// Native > Method > Conversion > Comparable.
func Reach(t Type, op Operator) Via {
	rt := t.rt
	if rt == nil || op >= operatorCount {
		return ViaNone
	}
	if t.Kind != KindCustom && kindSupports(rt.Kind(), op) {
		return ViaNative
	}
	if hasOperatorMethod(rt, op) {
		return ViaMethod
	}
	if kindSupports(rt.Kind(), op) {
		return ViaConversion
	}
	if op == Equality && rt.Comparable() {
		return ViaComparable
	}

	return ViaNone
}

// kindSupports reports whether values of the underlying kind k carry op
// as a Go language operator (or, for Remainder on floats, math.Mod).
// Unsigned kinds report Negation: -x is defined in Go and wraps modulo 2^n.
func kindSupports(k reflect.Kind, op Operator) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	case reflect.String:
		return op == Addition || op == Equality || op == LessThan
	case reflect.Bool:
		return op == Equality
	default:
		return false
	}
}

var (
	boolType = reflect.TypeFor[bool]()
	intType  = reflect.TypeFor[int]()
)

// hasOperatorMethod checks the value method set of rt for the method that
// provides op, with the exact expected signature.
func hasOperatorMethod(rt reflect.Type, op Operator) bool {
	m, ok := rt.MethodByName(op.Method())
	if !ok {
		return false
	}
	mt := m.Type
	// Method types of concrete types include the receiver as In(0).
	off := 1
	if rt.Kind() == reflect.Interface {
		off = 0
	}
	if mt.NumOut() != 1 {
		return false
	}

	switch op {
	case Negation:
		return mt.NumIn() == off && mt.Out(0) == rt
	case Equality, LessThan:
		return mt.NumIn() == off+1 && mt.In(off) == rt && mt.Out(0) == boolType
	case Conversion:
		return mt.NumIn() == off+1 && mt.In(off) == intType && mt.Out(0) == rt
	default:
		return mt.NumIn() == off+1 && mt.In(off) == rt && mt.Out(0) == rt
	}
}
