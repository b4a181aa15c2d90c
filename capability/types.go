// SPDX-License-Identifier: MIT

package capability

import (
	"reflect"
	"strconv"
)

// Operator names one operator capability an operation may require.
type Operator uint8

const (
	Addition       Operator = iota // addition(T,T)->T
	Subtraction                    // subtraction(T,T)->T
	Multiplication                 // multiplication(T,T)->T
	Division                       // division(T,T)->T
	Remainder                      // remainder(T,T)->T
	Negation                       // negation(T)->T
	Equality                       // equality(T,T)->bool
	LessThan                       // lessThan(T,T)->bool
	Conversion                     // conversion(int)->T

	operatorCount
)

// operatorInfo binds each Operator to its display name, rendered signature
// and the method name a user type implements to provide it.
var operatorInfo = [operatorCount]struct {
	name      string
	signature string
	method    string
}{
	Addition:       {"addition", "addition(T,T)->T", "Add"},
	Subtraction:    {"subtraction", "subtraction(T,T)->T", "Sub"},
	Multiplication: {"multiplication", "multiplication(T,T)->T", "Mul"},
	Division:       {"division", "division(T,T)->T", "Div"},
	Remainder:      {"remainder", "remainder(T,T)->T", "Rem"},
	Negation:       {"negation", "negation(T)->T", "Neg"},
	Equality:       {"equality", "equality(T,T)->bool", "Equal"},
	LessThan:       {"lessThan", "lessThan(T,T)->bool", "Less"},
	Conversion:     {"conversion", "conversion(int)->T", "FromInt"},
}

// Name returns the short operator name, e.g. "addition".
func (o Operator) Name() string {
	if o >= operatorCount {
		return "operator(" + strconv.Itoa(int(o)) + ")"
	}

	return operatorInfo[o].name
}

// Signature returns the rendered operator signature, e.g. "addition(T,T)->T".
func (o Operator) Signature() string {
	if o >= operatorCount {
		return o.Name()
	}

	return operatorInfo[o].signature
}

// Method returns the method name a user-defined type implements for o.
func (o Operator) Method() string {
	if o >= operatorCount {
		return ""
	}

	return operatorInfo[o].method
}

// String implements fmt.Stringer.
func (o Operator) String() string { return o.Name() }

// Operators lists every known operator in declaration order.
func Operators() []Operator {
	out := make([]Operator, 0, operatorCount)
	for o := Operator(0); o < operatorCount; o++ {
		out = append(out, o)
	}

	return out
}

// Kind is the well-known-kind tag of an element type. Every exact built-in
// numeric type has its own Kind; everything else is KindCustom, KindString
// or KindBool.
type Kind uint8

const (
	KindCustom Kind = iota
	KindBool
	KindString
	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
)

var kindNames = [...]string{
	KindCustom:  "custom",
	KindBool:    "bool",
	KindString:  "string",
	KindInt:     "int",
	KindInt8:    "int8",
	KindInt16:   "int16",
	KindInt32:   "int32",
	KindInt64:   "int64",
	KindUint:    "uint",
	KindUint8:   "uint8",
	KindUint16:  "uint16",
	KindUint32:  "uint32",
	KindUint64:  "uint64",
	KindFloat32: "float32",
	KindFloat64: "float64",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Builtin reports whether k is an exact built-in numeric kind, i.e. one the
// fast-path table may serve.
func (k Kind) Builtin() bool { return k >= KindInt && k <= KindFloat64 }

// Float reports whether k is a built-in floating kind.
func (k Kind) Float() bool { return k == KindFloat32 || k == KindFloat64 }

// builtinKinds maps exact built-in reflect types to their Kind.
var builtinKinds = map[reflect.Type]Kind{
	reflect.TypeFor[bool]():    KindBool,
	reflect.TypeFor[string]():  KindString,
	reflect.TypeFor[int]():     KindInt,
	reflect.TypeFor[int8]():    KindInt8,
	reflect.TypeFor[int16]():   KindInt16,
	reflect.TypeFor[int32]():   KindInt32,
	reflect.TypeFor[int64]():   KindInt64,
	reflect.TypeFor[uint]():    KindUint,
	reflect.TypeFor[uint8]():   KindUint8,
	reflect.TypeFor[uint16]():  KindUint16,
	reflect.TypeFor[uint32]():  KindUint32,
	reflect.TypeFor[uint64]():  KindUint64,
	reflect.TypeFor[float32](): KindFloat32,
	reflect.TypeFor[float64](): KindFloat64,
}

// Type describes an element type being specialized for.
type Type struct {
	Name string       // fully-qualified Go type string
	Kind Kind         // well-known-kind tag
	rt   reflect.Type // nil only for the zero Type
}

// TypeOf returns the descriptor of T.
func TypeOf[T any]() Type {
	return typeFromReflect(reflect.TypeFor[T]())
}

// TypeFromReflect returns the descriptor of rt.
func TypeFromReflect(rt reflect.Type) Type {
	return typeFromReflect(rt)
}

func typeFromReflect(rt reflect.Type) Type {
	if rt == nil {
		return Type{Name: "<nil>"}
	}
	k, ok := builtinKinds[rt]
	if !ok {
		k = KindCustom
	}

	return Type{Name: rt.String(), Kind: k, rt: rt}
}

// Reflect returns the underlying reflect.Type.
func (t Type) Reflect() reflect.Type { return t.rt }

// String implements fmt.Stringer.
func (t Type) String() string { return t.Name }

// Via tells how an operator is reachable for a type.
type Via uint8

const (
	ViaNone       Via = iota // operator is missing
	ViaNative                // exact built-in numeric operator
	ViaMethod                // user-defined method on T
	ViaConversion            // conversion to the underlying built-in kind
	ViaComparable            // Go == on a comparable type (Equality only)
)

var viaNames = [...]string{"none", "native", "method", "conversion", "comparable"}

// String implements fmt.Stringer.
func (v Via) String() string {
	if int(v) < len(viaNames) {
		return viaNames[v]
	}

	return "via(" + strconv.Itoa(int(v)) + ")"
}
