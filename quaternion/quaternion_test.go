// SPDX-License-Identifier: MIT

package quaternion_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numerus/capability"
	"github.com/katalvlaran/numerus/engine"
	"github.com/katalvlaran/numerus/internal/numtest"
	"github.com/katalvlaran/numerus/quaternion"
	"github.com/katalvlaran/numerus/vector"
)

func fq(x, y, z, w float64) quaternion.Quaternion[numtest.Fixed] {
	return quaternion.New(numtest.F(x), numtest.F(y), numtest.F(z), numtest.F(w))
}

// TestAlgebra covers the component-wise family and the Hamilton product.
func TestAlgebra(t *testing.T) {
	a, b := fq(1, 2, 3, 4), fq(5, 6, 7, 8)

	sum, err := quaternion.Add(a, b)
	require.NoError(t, err)
	assert.Equal(t, fq(6, 8, 10, 12), sum)
	diff, err := quaternion.Subtract(b, a)
	require.NoError(t, err)
	assert.Equal(t, fq(4, 4, 4, 4), diff)
	sc, err := quaternion.MultiplyScalar(a, numtest.F(2))
	require.NoError(t, err)
	assert.Equal(t, fq(2, 4, 6, 8), sc)
	conj, err := quaternion.Conjugate(a)
	require.NoError(t, err)
	assert.Equal(t, fq(-1, -2, -3, 4), conj)

	// i⊗j = k, j⊗i = -k
	i, j := fq(1, 0, 0, 0), fq(0, 1, 0, 0)
	ij, err := quaternion.Multiply(i, j)
	require.NoError(t, err)
	assert.Equal(t, fq(0, 0, 1, 0), ij)
	ji, err := quaternion.Multiply(j, i)
	require.NoError(t, err)
	assert.Equal(t, fq(0, 0, -1, 0), ji)

	ab, err := quaternion.Multiply(a, b)
	require.NoError(t, err)
	assert.Equal(t, fq(24, 48, 48, -6), ab)

	mv, err := quaternion.MultiplyVector(j, vector.Of(numtest.Fixeds(1, 0, 0)...))
	require.NoError(t, err)
	assert.Equal(t, fq(0, 0, -1, 0), mv)
	_, err = quaternion.MultiplyVector(j, vector.Of(numtest.Fixeds(1, 0)...))
	assert.ErrorIs(t, err, engine.ErrDimensionMismatch)

	l, err := quaternion.Lerp(fq(0, 0, 0, 0), fq(4, 8, 0, 2), numtest.F(0.5))
	require.NoError(t, err)
	assert.Equal(t, fq(2, 4, 0, 1), l)
}

// TestMagnitudeAndInverse checks |q|, normalization and q⊗q⁻¹ = identity.
func TestMagnitudeAndInverse(t *testing.T) {
	q := fq(1, 2, 2, 4)
	sq, err := quaternion.MagnitudeSquared(q)
	require.NoError(t, err)
	assert.Equal(t, numtest.F(25), sq)
	m, err := quaternion.Magnitude(q)
	require.NoError(t, err)
	assert.InDelta(t, 5, m.Float(), 1e-9)

	n, err := quaternion.Normalize(quaternion.New(0.0, 3, 0, 4))
	require.NoError(t, err)
	assert.InDelta(t, 0.6, n.Y, 1e-15)
	assert.InDelta(t, 0.8, n.W, 1e-15)

	inv, err := quaternion.Invert(q)
	require.NoError(t, err)
	p, err := quaternion.Multiply(q, inv)
	require.NoError(t, err)
	id, err := quaternion.Identity[numtest.Fixed]()
	require.NoError(t, err)
	ok, err := quaternion.EqualsLeniency(id, p, numtest.F(1e-12))
	require.NoError(t, err)
	assert.True(t, ok, "q⊗q⁻¹ = %v", p)

	_, err = quaternion.Invert(fq(0, 0, 0, 0))
	assert.ErrorIs(t, err, engine.ErrDivideByZero)
	_, err = quaternion.Normalize(fq(0, 0, 0, 0))
	assert.ErrorIs(t, err, engine.ErrDivideByZero)
}

// TestRotateIdentity checks the identity rotation leaves every vector as is.
func TestRotateIdentity(t *testing.T) {
	id, err := quaternion.Identity[numtest.Fixed]()
	require.NoError(t, err)
	for _, v := range [][]float64{{0, 0, 0}, {1, 2, 3}, {-4.5, 0.25, 7}, {1e6, -1e-6, 3}} {
		vec := vector.Of(numtest.Fixeds(v...)...)
		got, err := quaternion.Rotate(id, vec)
		require.NoError(t, err)
		assert.Equal(t, vec, got)
	}

	idf, err := quaternion.Identity[float64]()
	require.NoError(t, err)
	got, err := quaternion.Rotate(idf, vector.Of(3.0, -2, 1))
	require.NoError(t, err)
	assert.Equal(t, vector.Of(3.0, -2, 1), got)
}

// TestRotateAxisAngle rotates about the coordinate axes.
func TestRotateAxisAngle(t *testing.T) {
	cases := []struct {
		name    string
		axis, v vector.Vector[float64]
		angle   float64
		want    []float64
	}{
		{"z quarter turn", vector.Of(0.0, 0, 1), vector.Of(1.0, 0, 0), math.Pi / 2, []float64{0, 1, 0}},
		{"x half turn", vector.Of(2.0, 0, 0), vector.Of(0.0, 1, 0), math.Pi, []float64{0, -1, 0}},
		{"y quarter turn", vector.Of(0.0, 1, 0), vector.Of(0.0, 0, 1), math.Pi / 2, []float64{1, 0, 0}},
		{"full turn", vector.Of(1.0, 1, 1), vector.Of(1.0, 2, 3), 2 * math.Pi, []float64{1, 2, 3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := quaternion.RotateBy(tc.v, tc.axis, tc.angle)
			require.NoError(t, err)
			assert.InDeltaSlice(t, tc.want, []float64(got), 1e-12)
		})
	}

	// A non-unit rotation quaternion rotates the same way.
	q, err := quaternion.FromAxisAngle(vector.Of(0.0, 0, 1), math.Pi/2)
	require.NoError(t, err)
	q3, err := quaternion.MultiplyScalar(q, 3)
	require.NoError(t, err)
	got, err := quaternion.Rotate(q3, vector.Of(1.0, 0, 0))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 1, 0}, []float64(got), 1e-12)

	// Fixed goes through the trig series.
	gf, err := quaternion.RotateBy(vector.Of(numtest.Fixeds(1, 0, 0)...),
		vector.Of(numtest.Fixeds(0, 0, 1)...), numtest.F(math.Pi/2))
	require.NoError(t, err)
	assert.InDelta(t, 0, gf[0].Float(), 1e-3)
	assert.InDelta(t, 1, gf[1].Float(), 1e-3)

	_, err = quaternion.FromAxisAngle(vector.Of(0.0, 0, 0), 1)
	assert.ErrorIs(t, err, engine.ErrDivideByZero)
	_, err = quaternion.FromAxisAngle(vector.Of(0.0, 1), 1)
	assert.ErrorIs(t, err, engine.ErrDimensionMismatch)
}

// TestEqualityAndUnsupported covers comparisons, Slerp and capability errors.
func TestEqualityAndUnsupported(t *testing.T) {
	eq, err := quaternion.EqualsValue(fq(1, 2, 3, 4), fq(1, 2, 3, 4))
	require.NoError(t, err)
	assert.True(t, eq)
	eq, _ = quaternion.EqualsValue(fq(1, 2, 3, 4), fq(1, 2, 3, 5))
	assert.False(t, eq)
	near, err := quaternion.EqualsLeniency(fq(1, 2, 3, 4), fq(1.05, 2, 3, 3.95), numtest.F(0.1))
	require.NoError(t, err)
	assert.True(t, near)

	_, err = quaternion.Slerp(fq(1, 0, 0, 0), fq(0, 1, 0, 0), numtest.F(0.5))
	assert.ErrorIs(t, err, engine.ErrUnsupported)

	var q quaternion.Quaternion[numtest.NoAdd]
	_, err = quaternion.Multiply(q, q)
	assert.ErrorIs(t, err, capability.ErrMissing)
	_, err = quaternion.Rotate(q, vector.Of(q.X, q.Y, q.Z))
	assert.ErrorIs(t, err, capability.ErrMissing)
	c, err := quaternion.Conjugate(q)
	require.NoError(t, err)
	assert.Equal(t, q, c)
}
