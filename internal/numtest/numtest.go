// SPDX-License-Identifier: MIT

// Package numtest provides synthetic element types for tests: types that are
// not built-in numeric kinds and therefore always take the generic
// (validated, synthesized, compiled) path through the engine.
package numtest

import (
	"math"
	"strconv"
)

// Fixed is a non-built-in element type backed by a float64. It exposes every
// operator as a method, so it satisfies any capability set.
type Fixed struct{ v float64 }

// F builds a Fixed.
func F(v float64) Fixed { return Fixed{v: v} }

// Float returns the backing value.
func (a Fixed) Float() float64 { return a.v }

func (a Fixed) Add(b Fixed) Fixed  { return Fixed{a.v + b.v} }
func (a Fixed) Sub(b Fixed) Fixed  { return Fixed{a.v - b.v} }
func (a Fixed) Mul(b Fixed) Fixed  { return Fixed{a.v * b.v} }
func (a Fixed) Div(b Fixed) Fixed  { return Fixed{a.v / b.v} }
func (a Fixed) Rem(b Fixed) Fixed  { return Fixed{math.Mod(a.v, b.v)} }
func (a Fixed) Neg() Fixed         { return Fixed{-a.v} }
func (a Fixed) Equal(b Fixed) bool { return a.v == b.v }
func (a Fixed) Less(b Fixed) bool  { return a.v < b.v }
func (Fixed) FromInt(n int) Fixed  { return Fixed{float64(n)} }
func (a Fixed) String() string     { return strconv.FormatFloat(a.v, 'g', -1, 64) }

// Near reports |a-b| <= eps.
func (a Fixed) Near(b Fixed, eps float64) bool {
	return math.Abs(a.v-b.v) <= eps
}

// Fixeds converts a float64 list into Fixed values.
func Fixeds(vs ...float64) []Fixed {
	out := make([]Fixed, len(vs))
	for i, v := range vs {
		out[i] = Fixed{v}
	}

	return out
}

// NoAdd is a numeric-looking type that lacks the addition operator.
type NoAdd struct{ v int }

func (a NoAdd) Sub(b NoAdd) NoAdd { return NoAdd{a.v - b.v} }
func (a NoAdd) Mul(b NoAdd) NoAdd { return NoAdd{a.v * b.v} }
func (a NoAdd) Div(b NoAdd) NoAdd { return NoAdd{a.v / b.v} }
func (a NoAdd) Neg() NoAdd        { return NoAdd{-a.v} }
func (a NoAdd) Less(b NoAdd) bool { return a.v < b.v }
func (NoAdd) FromInt(n int) NoAdd { return NoAdd{n} }

// Meters is a named float kind; operators are reached by conversion.
type Meters float64

// Count is a named integer kind; operators are reached by conversion.
type Count int
