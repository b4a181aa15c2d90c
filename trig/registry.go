// SPDX-License-Identifier: MIT

package trig

import (
	"math"

	"github.com/katalvlaran/numerus/capability"
	"github.com/katalvlaran/numerus/engine"
)

// Func is one trigonometric member: an angle or ratio in, a ratio or angle
// out, failing on arguments outside the member's domain.
type Func[T any] func(x T) (T, error)

// Trigonometry is the full trigonometric family for one element type.
// Angles are radians.
type Trigonometry[T any] struct {
	Sin, Cos, Tan, Sec, Csc, Cot             Func[T]
	Asin, Acos, Atan, Acsc, Asec, Acot       Func[T]
	Sinh, Cosh, Tanh, Sech, Csch, Coth       Func[T]
	Asinh, Acosh, Atanh, Acsch, Asech, Acoth Func[T]
}

var registry = engine.NewRegistry("trig")

func init() {
	Register(native[float64]())
	Register(native[float32]())
}

// Register installs t as the Trigonometry for T, replacing any previous one.
func Register[T any](t *Trigonometry[T]) { engine.Register[T](registry, t) }

// Registered reports whether T has a registered Trigonometry.
func Registered[T any]() bool { return engine.Registered[T](registry) }

// For returns the Trigonometry registered for T. Unregistered types get a
// strategy whose every member fails with engine.ErrUnsupported.
func For[T any]() *Trigonometry[T] {
	return engine.Lookup[T, *Trigonometry[T]](registry, unsupported[T])
}

// member is the table row native builds each Func from.
type member struct {
	name   string
	fn     func(float64) float64
	domain func(float64) bool
}

func always(float64) bool       { return true }
func nonZero(x float64) bool     { return x != 0 }
func unit(x float64) bool        { return x >= -1 && x <= 1 }
func outsideUnit(x float64) bool { return x <= -1 || x >= 1 }

// native binds the math package for a built-in float kind. Reciprocal
// functions reject the zeros of their base, inverse functions reject
// ratios outside their domain.
func native[F engine.Float]() *Trigonometry[F] {
	recip := func(fn func(float64) float64) func(float64) float64 {
		return func(x float64) float64 { return 1 / fn(x) }
	}
	ofRecip := func(fn func(float64) float64) func(float64) float64 {
		return func(x float64) float64 { return fn(1 / x) }
	}
	nonZeroOf := func(fn func(float64) float64) func(float64) bool {
		return func(x float64) bool { return fn(x) != 0 }
	}

	rows := [24]member{
		{"Sin", math.Sin, always},
		{"Cos", math.Cos, always},
		{"Tan", math.Tan, always},
		{"Sec", recip(math.Cos), nonZeroOf(math.Cos)},
		{"Csc", recip(math.Sin), nonZeroOf(math.Sin)},
		{"Cot", recip(math.Tan), nonZeroOf(math.Tan)},
		{"Asin", math.Asin, unit},
		{"Acos", math.Acos, unit},
		{"Atan", math.Atan, always},
		{"Acsc", ofRecip(math.Asin), outsideUnit},
		{"Asec", ofRecip(math.Acos), outsideUnit},
		{"Acot", ofRecip(math.Atan), nonZero},
		{"Sinh", math.Sinh, always},
		{"Cosh", math.Cosh, always},
		{"Tanh", math.Tanh, always},
		{"Sech", recip(math.Cosh), always},
		{"Csch", recip(math.Sinh), nonZero},
		{"Coth", recip(math.Tanh), nonZero},
		{"Asinh", math.Asinh, always},
		{"Acosh", math.Acosh, func(x float64) bool { return x >= 1 }},
		{"Atanh", math.Atanh, func(x float64) bool { return x > -1 && x < 1 }},
		{"Acsch", ofRecip(math.Asinh), nonZero},
		{"Asech", ofRecip(math.Acosh), func(x float64) bool { return x > 0 && x <= 1 }},
		{"Acoth", ofRecip(math.Atanh), func(x float64) bool { return x < -1 || x > 1 }},
	}

	var fs [24]Func[F]
	for i, row := range rows {
		fs[i] = func(x F) (F, error) {
			v := float64(x)
			if !row.domain(v) {
				return 0, engine.OpErrorf(family+"."+row.name, engine.ErrOutOfRange)
			}

			return F(row.fn(v)), nil
		}
	}

	return fromTable(fs)
}

// unsupported is the fallback for types without a registered strategy.
func unsupported[T any](t capability.Type) *Trigonometry[T] {
	var fs [24]Func[T]
	for i, name := range memberNames {
		err := engine.Unsupported(family+"."+name, t.Name)
		fs[i] = func(T) (T, error) {
			var zero T
			return zero, err
		}
	}

	return fromTable(fs)
}

var memberNames = [24]string{
	"Sin", "Cos", "Tan", "Sec", "Csc", "Cot",
	"Asin", "Acos", "Atan", "Acsc", "Asec", "Acot",
	"Sinh", "Cosh", "Tanh", "Sech", "Csch", "Coth",
	"Asinh", "Acosh", "Atanh", "Acsch", "Asech", "Acoth",
}

// fromTable assigns fs in memberNames order.
func fromTable[T any](fs [24]Func[T]) *Trigonometry[T] {
	return &Trigonometry[T]{
		Sin: fs[0], Cos: fs[1], Tan: fs[2], Sec: fs[3], Csc: fs[4], Cot: fs[5],
		Asin: fs[6], Acos: fs[7], Atan: fs[8], Acsc: fs[9], Asec: fs[10], Acot: fs[11],
		Sinh: fs[12], Cosh: fs[13], Tanh: fs[14], Sech: fs[15], Csch: fs[16], Coth: fs[17],
		Asinh: fs[18], Acosh: fs[19], Atanh: fs[20], Acsch: fs[21], Asech: fs[22], Acoth: fs[23],
	}
}
