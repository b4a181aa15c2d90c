// SPDX-License-Identifier: MIT

package vector_test

import (
	"math"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numerus/capability"
	"github.com/katalvlaran/numerus/engine"
	"github.com/katalvlaran/numerus/internal/numtest"
	"github.com/katalvlaran/numerus/vector"
)

func fx(vs ...float64) vector.Vector[numtest.Fixed] { return vector.Of(numtest.Fixeds(vs...)...) }

// TestComponentWise covers the element-wise family on the generic path.
func TestComponentWise(t *testing.T) {
	a, b := fx(1, 2, 3), fx(4, 5, 6)

	sum, err := vector.Add(a, b)
	require.NoError(t, err)
	assert.Equal(t, fx(5, 7, 9), sum)
	diff, err := vector.Subtract(b, a)
	require.NoError(t, err)
	assert.Equal(t, fx(3, 3, 3), diff)
	neg, err := vector.Negate(a)
	require.NoError(t, err)
	assert.Equal(t, fx(-1, -2, -3), neg)
	scaled, err := vector.Multiply(a, numtest.F(2))
	require.NoError(t, err)
	assert.Equal(t, fx(2, 4, 6), scaled)
	halved, err := vector.Divide(a, numtest.F(2))
	require.NoError(t, err)
	assert.Equal(t, fx(0.5, 1, 1.5), halved)

	_, err = vector.Divide(a, numtest.F(0))
	assert.ErrorIs(t, err, engine.ErrDivideByZero)
	_, err = vector.Add(a, fx(1, 2))
	assert.ErrorIs(t, err, engine.ErrDimensionMismatch)

	// a was not modified.
	assert.Equal(t, fx(1, 2, 3), a)
}

// TestProducts pins dot and cross products and the magnitude family.
func TestProducts(t *testing.T) {
	u := fx(3, 4, 12)
	dot, err := vector.DotProduct(u, u)
	require.NoError(t, err)
	sq, err := vector.MagnitudeSquared(u)
	require.NoError(t, err)
	assert.Equal(t, dot, sq)
	assert.Equal(t, numtest.F(169), sq)

	m, err := vector.Magnitude(u)
	require.NoError(t, err)
	assert.InDelta(t, 13, m.Float(), 1e-9)

	n, err := vector.Normalize(vector.Of(3.0, 4.0))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.6, 0.8}, []float64(n), 1e-15)
	_, err = vector.Normalize(fx(0, 0))
	assert.ErrorIs(t, err, engine.ErrDivideByZero)

	x, err := vector.CrossProduct(fx(1, 0, 0), fx(0, 1, 0))
	require.NoError(t, err)
	assert.Equal(t, fx(0, 0, 1), x)
	_, err = vector.CrossProduct(fx(1, 0), fx(0, 1))
	assert.ErrorIs(t, err, engine.ErrDimensionMismatch)
}

// TestFastPathsMatchGeneric compares the float64 kernels with the generic
// templates on an isolated cache.
func TestFastPathsMatchGeneric(t *testing.T) {
	a := vector.Of(1.5, -2.0, 3.25, 8.0, 0.5)
	b := vector.Of(4.0, 0.25, -1.0, 2.0, 9.0)

	fastSum, err := vector.Add(a, b)
	require.NoError(t, err)
	fastDiff, err := vector.Subtract(a, b)
	require.NoError(t, err)
	fastDot, err := vector.DotProduct(a, b)
	require.NoError(t, err)
	fastScaled, err := vector.Multiply(a, 3)
	require.NoError(t, err)

	prev := engine.SetDefault(engine.New(engine.WithoutFastPaths()))
	defer engine.SetDefault(prev)

	sum, err := vector.Add(a, b)
	require.NoError(t, err)
	diff, err := vector.Subtract(a, b)
	require.NoError(t, err)
	dot, err := vector.DotProduct(a, b)
	require.NoError(t, err)
	scaled, err := vector.Multiply(a, 3)
	require.NoError(t, err)

	assert.Equal(t, sum, fastSum)
	assert.Equal(t, diff, fastDiff)
	assert.InDelta(t, dot, fastDot, 1e-12)
	assert.Equal(t, scaled, fastScaled)

	_, err = vector.DotProduct(a, b[:2])
	assert.ErrorIs(t, err, engine.ErrDimensionMismatch)
}

// TestInterpolationAndAngle covers Lerp, Blerp, Slerp and Angle.
func TestInterpolationAndAngle(t *testing.T) {
	l, err := vector.Lerp(fx(0, 10), fx(10, 20), numtest.F(0.25))
	require.NoError(t, err)
	assert.Equal(t, fx(2.5, 12.5), l)

	bl, err := vector.Blerp(fx(0, 0), fx(1, 0), fx(0, 1), numtest.F(0.5), numtest.F(0.25))
	require.NoError(t, err)
	assert.Equal(t, fx(0.5, 0.25), bl)

	_, err = vector.Slerp(fx(1), fx(2), numtest.F(0.5))
	assert.ErrorIs(t, err, engine.ErrUnsupported)

	ang, err := vector.Angle(vector.Of(1.0, 0), vector.Of(0.0, 2))
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/2, ang, 1e-15)

	// Fixed has no trig strategy.
	_, err = vector.Angle(fx(1, 0), fx(0, 1))
	assert.ErrorIs(t, err, engine.ErrUnsupported)
}

// TestEquality covers exact and lenient comparison.
func TestEquality(t *testing.T) {
	eq, err := vector.EqualsValue(fx(1, 2), fx(1, 2))
	require.NoError(t, err)
	assert.True(t, eq)
	eq, _ = vector.EqualsValue(fx(1, 2), fx(1, 2, 3))
	assert.False(t, eq)

	near, err := vector.EqualsLeniency(fx(1, 2), fx(1.05, 1.96), numtest.F(0.1))
	require.NoError(t, err)
	assert.True(t, near)
	near, _ = vector.EqualsLeniency(fx(1, 2), fx(1.5, 2), numtest.F(0.1))
	assert.False(t, near)
}

// TestCapabilityError checks a type lacking addition fails on first use and
// the composite reports the dependency's missing operator.
func TestCapabilityError(t *testing.T) {
	v := vector.Of(numtest.NoAdd{}, numtest.NoAdd{})
	_, err := vector.Add(v, v)
	assert.ErrorIs(t, err, capability.ErrMissing)
	_, err = vector.MagnitudeSquared(v)
	assert.ErrorIs(t, err, capability.ErrMissing)

	neg, err := vector.Negate(v)
	require.NoError(t, err)
	assert.Len(t, neg, 2)
}

// TestCompositeValidatedUpFront checks composites are rejected by validation
// alone: the compiler never runs and the slot never counts an attempt.
func TestCompositeValidatedUpFront(t *testing.T) {
	var compiles atomic.Int64
	c := engine.New(engine.WithCompiler(engine.CompilerFunc(func(u *engine.Unit) (any, error) {
		compiles.Add(1)
		return engine.DirectCompiler{}.Compile(u)
	})))
	prev := engine.SetDefault(c)
	defer engine.SetDefault(prev)

	v := vector.Of(numtest.NoAdd{}, numtest.NoAdd{})
	for i := 0; i < 3; i++ {
		_, err := vector.MagnitudeSquared(v)
		require.ErrorIs(t, err, capability.ErrMissing)
		_, err = vector.Magnitude(v)
		require.ErrorIs(t, err, capability.ErrMissing)
		_, err = vector.Normalize(v)
		require.ErrorIs(t, err, capability.ErrMissing)
	}
	assert.Zero(t, compiles.Load())
	for _, name := range []string{"vector.MagnitudeSquared", "vector.Magnitude", "vector.Normalize"} {
		d, ok := engine.LookupDescriptor(name)
		require.True(t, ok, name)
		assert.Zero(t, engine.Attempts[numtest.NoAdd](c, d), name)
		assert.Contains(t, d.Requires, capability.Addition, name)
	}
}
