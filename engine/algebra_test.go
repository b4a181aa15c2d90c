// SPDX-License-Identifier: MIT

package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numerus/capability"
	"github.com/katalvlaran/numerus/engine"
	"github.com/katalvlaran/numerus/internal/numtest"
)

type tag string

type point struct{ X, Y int }

// TestAlgebraNative covers exact built-ins.
func TestAlgebraNative(t *testing.T) {
	ai := engine.NewAlgebra[int]()
	assert.Equal(t, 1, ai.Rem(7, 3))
	assert.Equal(t, -5, ai.Neg(5))
	assert.Equal(t, 5, ai.Abs(-5))
	assert.True(t, ai.IsZero(0))

	af := engine.NewAlgebra[float64]()
	assert.InDelta(t, 0.5, af.Rem(2.5, 1), 1e-12)
	assert.Equal(t, 2.0, af.Max(2, -1))
	assert.Equal(t, -1.0, af.Min(2, -1))
	assert.Equal(t, capability.KindFloat64, af.Type.Kind)

	au := engine.NewAlgebra[uint8]()
	assert.Equal(t, uint8(3), au.Div(7, 2))
}

// TestAlgebraConversion covers named kinds reached through reflection.
func TestAlgebraConversion(t *testing.T) {
	am := engine.NewAlgebra[numtest.Meters]()
	assert.Equal(t, numtest.Meters(3.5), am.Add(1.5, 2))
	assert.Equal(t, numtest.Meters(0.5), am.Rem(2.5, 1))
	assert.True(t, am.Less(1, 2))
	assert.Equal(t, numtest.Meters(4), am.FromInt(4))

	ac := engine.NewAlgebra[numtest.Count]()
	assert.Equal(t, numtest.Count(2), ac.Div(7, 3))
	assert.Equal(t, numtest.Count(-7), ac.Neg(7))
	assert.True(t, ac.Equal(3, 3))

	as := engine.NewAlgebra[tag]()
	assert.Equal(t, tag("ab"), as.Add("a", "b"))
	assert.True(t, as.Less("a", "b"))
	assert.Nil(t, as.Mul)

	ap := engine.NewAlgebra[point]()
	require.NotNil(t, ap.Equal)
	assert.True(t, ap.Equal(point{1, 2}, point{1, 2}))
	assert.Nil(t, ap.Add)
}

// TestAlgebraMethods covers user types with operator methods.
func TestAlgebraMethods(t *testing.T) {
	a := engine.NewAlgebra[numtest.Fixed]()
	x, y := numtest.F(6), numtest.F(4)
	assert.Equal(t, numtest.F(10), a.Add(x, y))
	assert.Equal(t, numtest.F(2), a.Sub(x, y))
	assert.Equal(t, numtest.F(24), a.Mul(x, y))
	assert.Equal(t, numtest.F(1.5), a.Div(x, y))
	assert.Equal(t, numtest.F(2), a.Rem(x, y))
	assert.Equal(t, numtest.F(-6), a.Neg(x))
	assert.True(t, a.Greater(x, y))
	assert.True(t, a.LessEq(y, y))
	assert.True(t, a.GreaterEq(x, y))
	assert.Equal(t, numtest.F(3), a.Int(3))
	assert.Equal(t, numtest.F(1), a.One())
	assert.True(t, a.IsNegative(numtest.F(-1)))

	// NoAdd keeps its other methods; equality comes from ==.
	n := engine.NewAlgebra[numtest.NoAdd]()
	assert.Nil(t, n.Add)
	assert.NotNil(t, n.Sub)
	assert.True(t, n.Equal(n.FromInt(2), n.FromInt(2)))
}

// TestRegistry covers explicit entries and the fallback strategy.
func TestRegistry(t *testing.T) {
	type strategy interface{ Name() string }
	r := engine.NewRegistry("test")
	engine.Register[float64, strategy](r, named("native"))

	assert.True(t, engine.Registered[float64](r))
	assert.False(t, engine.Registered[numtest.Fixed](r))
	assert.Equal(t, "native", engine.Lookup[float64](r, fallbackNamed).Name())
	assert.Equal(t, "fallback:numtest.Fixed", engine.Lookup[numtest.Fixed](r, fallbackNamed).Name())
	assert.Equal(t, "test", r.Name())

	engine.Register[int](r, 42)
	assert.Panics(t, func() { engine.Lookup[int](r, fallbackNamed) })
}

type named string

func (n named) Name() string { return string(n) }

func fallbackNamed(t capability.Type) interface{ Name() string } {
	return named("fallback:" + t.Name)
}
