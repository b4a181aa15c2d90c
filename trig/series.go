// SPDX-License-Identifier: MIT

package trig

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numerus/capability"
	"github.com/katalvlaran/numerus/compute"
	"github.com/katalvlaran/numerus/engine"
)

const family = "trig"

// seriesOps is what the series templates need: remainder for range
// reduction, comparison for quadrant mirroring, and Pi.
var seriesOps = []capability.Operator{
	capability.Addition, capability.Subtraction, capability.Multiplication,
	capability.Division, capability.Remainder, capability.LessThan,
	capability.Negation, capability.Equality, capability.Conversion,
}

var (
	// SineOp describes Sine.
	SineOp = engine.Define(family, "Sine", 1, "(rad T) T", seriesOps...).DependsOn(compute.PiOp)
	// CosineOp describes Cosine.
	CosineOp = engine.Define(family, "Cosine", 1, "(rad T) T", seriesOps...).DependsOn(compute.PiOp)
)

var (
	tangentOp   = engine.Define(family, "Tangent", 1, "(rad T) T", seriesOps...).DependsOn(compute.PiOp)
	cosecantOp  = engine.Define(family, "Cosecant", 1, "(rad T) (T, error)", seriesOps...).DependsOn(SineOp)
	secantOp    = engine.Define(family, "Secant", 1, "(rad T) (T, error)", seriesOps...).DependsOn(CosineOp)
	cotangentOp = engine.Define(family, "Cotangent", 1, "(rad T) (T, error)", seriesOps...).DependsOn(tangentOp)
	toRadiansOp = engine.Define(family, "ToRadians", 1, "(deg T) T",
		capability.Multiplication, capability.Division, capability.Conversion).DependsOn(compute.PiOp)
	toDegreesOp = engine.Define(family, "ToDegrees", 1, "(rad T) T",
		capability.Multiplication, capability.Division, capability.Conversion).DependsOn(compute.PiOp)
)

func trigErrorf(d *engine.Descriptor, err error) error {
	return fmt.Errorf("%s: %w", d.QualifiedName(), err)
}

// circle holds the constants of one element type's range reduction.
type circle[T any] struct {
	alg                     *engine.Algebra[T]
	pi, twoPi, halfPi, zero T
}

func newCircle[T any](alg *engine.Algebra[T]) (circle[T], error) {
	pi, err := compute.PiFor(alg)
	if err != nil {
		return circle[T]{}, err
	}

	return circle[T]{
		alg:    alg,
		pi:     pi,
		twoPi:  alg.Mul(pi, alg.Int(2)),
		halfPi: alg.Div(pi, alg.Int(2)),
		zero:   alg.Zero(),
	}, nil
}

// reduce maps x into [0, period).
func (c circle[T]) reduce(x, period T) T {
	x = c.alg.Rem(x, period)
	if c.alg.Less(x, c.zero) {
		x = c.alg.Add(x, period)
	}

	return x
}

// sineTemplate reduces to [0, 2π), folds the lower half-turn onto the upper
// with a sign flip, mirrors into [0, π/2], then evaluates
// x − x³/3! + x⁵/5! − x⁷/7!.
func sineTemplate[T any](alg *engine.Algebra[T]) (func(rad T) T, error) {
	c, err := newCircle(alg)
	if err != nil {
		return nil, err
	}
	f3, f5, f7 := alg.Int(6), alg.Int(120), alg.Int(5040)

	return func(rad T) T {
		x := c.reduce(rad, c.twoPi)
		negative := false
		if alg.Less(c.pi, x) {
			x, negative = alg.Sub(x, c.pi), true
		}
		if alg.Less(c.halfPi, x) {
			x = alg.Sub(c.pi, x)
		}
		x2 := alg.Mul(x, x)
		x3 := alg.Mul(x2, x)
		x5 := alg.Mul(x3, x2)
		x7 := alg.Mul(x5, x2)
		s := alg.Sub(alg.Add(alg.Sub(x, alg.Div(x3, f3)), alg.Div(x5, f5)), alg.Div(x7, f7))
		if negative {
			s = alg.Neg(s)
		}

		return s
	}, nil
}

// cosineTemplate reduces to [0, 2π), uses cos(2π−x) = cos(x) to reach
// [0, π], mirrors (π−x) with a sign flip past π/2, then evaluates
// 1 − x²/2! + x⁴/4! − x⁶/6!.
func cosineTemplate[T any](alg *engine.Algebra[T]) (func(rad T) T, error) {
	c, err := newCircle(alg)
	if err != nil {
		return nil, err
	}
	one, f2, f4, f6 := alg.One(), alg.Int(2), alg.Int(24), alg.Int(720)

	return func(rad T) T {
		x := c.reduce(rad, c.twoPi)
		if alg.Less(c.pi, x) {
			x = alg.Sub(c.twoPi, x)
		}
		negative := false
		if alg.Less(c.halfPi, x) {
			x, negative = alg.Sub(c.pi, x), true
		}
		x2 := alg.Mul(x, x)
		x4 := alg.Mul(x2, x2)
		x6 := alg.Mul(x4, x2)
		s := alg.Sub(alg.Add(alg.Sub(one, alg.Div(x2, f2)), alg.Div(x4, f4)), alg.Div(x6, f6))
		if negative {
			s = alg.Neg(s)
		}

		return s
	}, nil
}

// tangentTemplate reduces to [0, π) (tangent has period π), mirrors past
// π/2 with a sign flip, then evaluates x + x³/3 + 2x⁵/15 + 17x⁷/315.
func tangentTemplate[T any](alg *engine.Algebra[T]) (func(rad T) T, error) {
	c, err := newCircle(alg)
	if err != nil {
		return nil, err
	}
	three, two, fifteen, seventeen, d7 := alg.Int(3), alg.Int(2), alg.Int(15), alg.Int(17), alg.Int(315)

	return func(rad T) T {
		x := c.reduce(rad, c.pi)
		negative := false
		if alg.Less(c.halfPi, x) {
			x, negative = alg.Sub(c.pi, x), true
		}
		x2 := alg.Mul(x, x)
		x3 := alg.Mul(x2, x)
		x5 := alg.Mul(x3, x2)
		x7 := alg.Mul(x5, x2)
		s := alg.Add(x, alg.Div(x3, three))
		s = alg.Add(s, alg.Div(alg.Mul(two, x5), fifteen))
		s = alg.Add(s, alg.Div(alg.Mul(seventeen, x7), d7))
		if negative {
			s = alg.Neg(s)
		}

		return s
	}, nil
}

// reciprocal builds csc/sec/cot templates from the base function's slot.
func reciprocal[T any](d, base *engine.Descriptor, tmpl func(*engine.Algebra[T]) (func(T) T, error)) func(*engine.Algebra[T]) (func(rad T) (T, error), error) {
	return func(alg *engine.Algebra[T]) (func(rad T) (T, error), error) {
		f, err := engine.Dependency(alg, base, tmpl)
		if err != nil {
			return nil, err
		}
		one := alg.One()

		return func(rad T) (T, error) {
			v := f(rad)
			if alg.IsZero(v) {
				return alg.Zero(), trigErrorf(d, engine.ErrDivideByZero)
			}

			return alg.Div(one, v), nil
		}, nil
	}
}

func cosecantTemplate[T any](alg *engine.Algebra[T]) (func(rad T) (T, error), error) {
	return reciprocal(cosecantOp, SineOp, sineTemplate[T])(alg)
}

func secantTemplate[T any](alg *engine.Algebra[T]) (func(rad T) (T, error), error) {
	return reciprocal(secantOp, CosineOp, cosineTemplate[T])(alg)
}

func cotangentTemplate[T any](alg *engine.Algebra[T]) (func(rad T) (T, error), error) {
	return reciprocal(cotangentOp, tangentOp, tangentTemplate[T])(alg)
}

func toRadiansTemplate[T any](alg *engine.Algebra[T]) (func(deg T) T, error) {
	pi, err := compute.PiFor(alg)
	if err != nil {
		return nil, err
	}
	half := alg.Int(180)

	return func(deg T) T { return alg.Div(alg.Mul(deg, pi), half) }, nil
}

func toDegreesTemplate[T any](alg *engine.Algebra[T]) (func(rad T) T, error) {
	pi, err := compute.PiFor(alg)
	if err != nil {
		return nil, err
	}
	half := alg.Int(180)

	return func(rad T) T { return alg.Div(alg.Mul(rad, half), pi) }, nil
}

func init() {
	registerFloat[float64]()
	registerFloat[float32]()
}

// registerFloat binds the math package for built-in floats; these are exact
// to native precision rather than the 4-term series.
func registerFloat[F engine.Float]() {
	lift := func(fn func(float64) float64) func(F) F {
		return func(x F) F { return F(fn(float64(x))) }
	}
	engine.RegisterFastPath[F](SineOp, lift(math.Sin))
	engine.RegisterFastPath[F](CosineOp, lift(math.Cos))
	engine.RegisterFastPath[F](tangentOp, lift(math.Tan))
	engine.RegisterFastPath[F](toRadiansOp, func(deg F) F { return F(float64(deg) * math.Pi / 180) })
	engine.RegisterFastPath[F](toDegreesOp, func(rad F) F { return F(float64(rad) * 180 / math.Pi) })

	recip := func(d *engine.Descriptor, fn func(float64) float64) func(F) (F, error) {
		return func(x F) (F, error) {
			v := fn(float64(x))
			if v == 0 {
				return 0, trigErrorf(d, engine.ErrDivideByZero)
			}

			return F(1 / v), nil
		}
	}
	engine.RegisterFastPath[F](cosecantOp, recip(cosecantOp, math.Sin))
	engine.RegisterFastPath[F](secantOp, recip(secantOp, math.Cos))
	engine.RegisterFastPath[F](cotangentOp, recip(cotangentOp, math.Tan))
}

// Sine returns sin(rad).
func Sine[T any](rad T) (T, error) {
	f, err := engine.Resolve(SineOp, sineTemplate[T])
	if err != nil {
		var zero T
		return zero, err
	}

	return f(rad), nil
}

// Cosine returns cos(rad).
func Cosine[T any](rad T) (T, error) {
	f, err := engine.Resolve(CosineOp, cosineTemplate[T])
	if err != nil {
		var zero T
		return zero, err
	}

	return f(rad), nil
}

// Tangent returns tan(rad).
func Tangent[T any](rad T) (T, error) {
	f, err := engine.Resolve(tangentOp, tangentTemplate[T])
	if err != nil {
		var zero T
		return zero, err
	}

	return f(rad), nil
}

// Cosecant returns 1/sin(rad), or ErrDivideByZero where sin(rad) == 0.
func Cosecant[T any](rad T) (T, error) {
	f, err := engine.Resolve(cosecantOp, cosecantTemplate[T])
	if err != nil {
		var zero T
		return zero, err
	}

	return f(rad)
}

// Secant returns 1/cos(rad), or ErrDivideByZero where cos(rad) == 0.
func Secant[T any](rad T) (T, error) {
	f, err := engine.Resolve(secantOp, secantTemplate[T])
	if err != nil {
		var zero T
		return zero, err
	}

	return f(rad)
}

// Cotangent returns 1/tan(rad), or ErrDivideByZero where tan(rad) == 0.
func Cotangent[T any](rad T) (T, error) {
	f, err := engine.Resolve(cotangentOp, cotangentTemplate[T])
	if err != nil {
		var zero T
		return zero, err
	}

	return f(rad)
}

// ToRadians converts degrees to radians.
func ToRadians[T any](deg T) (T, error) {
	f, err := engine.Resolve(toRadiansOp, toRadiansTemplate[T])
	if err != nil {
		var zero T
		return zero, err
	}

	return f(deg), nil
}

// ToDegrees converts radians to degrees.
func ToDegrees[T any](rad T) (T, error) {
	f, err := engine.Resolve(toDegreesOp, toDegreesTemplate[T])
	if err != nil {
		var zero T
		return zero, err
	}

	return f(rad), nil
}

// SineFor resolves Sine for alg's element type through its slot.
func SineFor[T any](alg *engine.Algebra[T]) (func(rad T) T, error) {
	return engine.Dependency(alg, SineOp, sineTemplate[T])
}

// CosineFor resolves Cosine for alg's element type through its slot.
func CosineFor[T any](alg *engine.Algebra[T]) (func(rad T) T, error) {
	return engine.Dependency(alg, CosineOp, cosineTemplate[T])
}
