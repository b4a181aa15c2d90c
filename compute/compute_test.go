// SPDX-License-Identifier: MIT

package compute_test

import (
	"math"
	"slices"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numerus/capability"
	"github.com/katalvlaran/numerus/compute"
	"github.com/katalvlaran/numerus/engine"
	"github.com/katalvlaran/numerus/internal/numtest"
)

const eps = 1e-12

// TestArithmeticGeneric runs the arithmetic family on a method-backed type.
func TestArithmeticGeneric(t *testing.T) {
	a, b := numtest.F(7), numtest.F(2)
	cases := []struct {
		name string
		got  func() (numtest.Fixed, error)
		want numtest.Fixed
	}{
		{"Add", func() (numtest.Fixed, error) { return compute.Add(a, b) }, numtest.F(9)},
		{"Subtract", func() (numtest.Fixed, error) { return compute.Subtract(a, b) }, numtest.F(5)},
		{"Multiply", func() (numtest.Fixed, error) { return compute.Multiply(a, b) }, numtest.F(14)},
		{"Divide", func() (numtest.Fixed, error) { return compute.Divide(a, b) }, numtest.F(3.5)},
		{"Remainder", func() (numtest.Fixed, error) { return compute.Remainder(a, b) }, numtest.F(1)},
		{"Negate", func() (numtest.Fixed, error) { return compute.Negate(a) }, numtest.F(-7)},
		{"AbsoluteValue", func() (numtest.Fixed, error) { return compute.AbsoluteValue(numtest.F(-7)) }, numtest.F(7)},
		{"Invert", func() (numtest.Fixed, error) { return compute.Invert(b) }, numtest.F(0.5)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.got()
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestArithmeticBuiltinAndNamed covers fast paths and conversion-reached kinds.
func TestArithmeticBuiltinAndNamed(t *testing.T) {
	i, err := compute.Add(40, 2)
	require.NoError(t, err)
	assert.Equal(t, 42, i)

	r, err := compute.Remainder[int](-7, 3)
	require.NoError(t, err)
	assert.Equal(t, -1, r)

	m, err := compute.Add(numtest.Meters(1.5), numtest.Meters(2))
	require.NoError(t, err)
	assert.Equal(t, numtest.Meters(3.5), m)

	c, err := compute.Divide(numtest.Count(7), numtest.Count(2))
	require.NoError(t, err)
	assert.Equal(t, numtest.Count(3), c)
}

// TestUnsignedNegation pins Go's wrap-around for unary minus on unsigned kinds.
func TestUnsignedNegation(t *testing.T) {
	n8, err := compute.Negate(uint8(1))
	require.NoError(t, err)
	assert.Equal(t, uint8(255), n8)

	n, err := compute.Negate(uint(0))
	require.NoError(t, err)
	assert.Equal(t, uint(0), n)

	abs, err := compute.AbsoluteValue(uint(5))
	require.NoError(t, err)
	assert.Equal(t, uint(5), abs)

	assert.Equal(t, capability.ViaNative, capability.Reach(capability.TypeOf[uint8](), capability.Negation))
}

// TestDivideByZero checks the per-call domain error on every path.
func TestDivideByZero(t *testing.T) {
	_, err := compute.Divide(1, 0)
	assert.ErrorIs(t, err, engine.ErrDivideByZero)
	_, err = compute.Divide(1.0, 0.0)
	assert.ErrorIs(t, err, engine.ErrDivideByZero)
	_, err = compute.Divide(numtest.F(1), numtest.F(0))
	assert.ErrorIs(t, err, engine.ErrDivideByZero)
	_, err = compute.Remainder(numtest.Count(1), numtest.Count(0))
	assert.ErrorIs(t, err, engine.ErrDomain)
	_, err = compute.Invert(numtest.F(0))
	assert.ErrorIs(t, err, engine.ErrDivideByZero)
	assert.NotErrorIs(t, err, capability.ErrMissing)
}

// TestComparison covers the comparison family.
func TestComparison(t *testing.T) {
	c, err := compute.Compare(numtest.F(1), numtest.F(2))
	require.NoError(t, err)
	assert.Equal(t, -1, c)
	c, _ = compute.Compare("b", "a")
	assert.Equal(t, 1, c)
	c, _ = compute.Compare(3, 3)
	assert.Equal(t, 0, c)

	gt, err := compute.GreaterThan(numtest.F(3), numtest.F(2))
	require.NoError(t, err)
	assert.True(t, gt)
	eq, err := compute.Equal(numtest.F(3), numtest.F(3))
	require.NoError(t, err)
	assert.True(t, eq)

	v, err := compute.Clamp(numtest.F(12), numtest.F(0), numtest.F(10))
	require.NoError(t, err)
	assert.Equal(t, numtest.F(10), v)
	v, err = compute.Clamp(numtest.F(-1), numtest.F(0), numtest.F(10))
	require.NoError(t, err)
	assert.Equal(t, numtest.F(0), v)
	_, err = compute.Clamp(5, 10, 0)
	assert.ErrorIs(t, err, engine.ErrInvalidArgument)

	ok, err := compute.EqualsLeniency(numtest.F(1), numtest.F(1.05), numtest.F(0.1))
	require.NoError(t, err)
	assert.True(t, ok)
	ok, _ = compute.EqualsLeniency(numtest.F(1.3), numtest.F(1), numtest.F(0.1))
	assert.False(t, ok)
}

// TestSequences covers folds over lazy sequences.
func TestSequences(t *testing.T) {
	xs := numtest.Fixeds(3, -1, 4, 1, 5)
	s, err := compute.Sum(slices.Values(xs))
	require.NoError(t, err)
	assert.Equal(t, numtest.F(12), s)

	p, err := compute.Product(slices.Values(xs))
	require.NoError(t, err)
	assert.Equal(t, numtest.F(-60), p)

	lo, err := compute.Minimum(slices.Values(xs))
	require.NoError(t, err)
	assert.Equal(t, numtest.F(-1), lo)
	hi, err := compute.Maximum(slices.Values(xs))
	require.NoError(t, err)
	assert.Equal(t, numtest.F(5), hi)

	empty := slices.Values([]numtest.Fixed(nil))
	s, err = compute.Sum(empty)
	require.NoError(t, err)
	assert.Equal(t, numtest.F(0), s)
	p, err = compute.Product(empty)
	require.NoError(t, err)
	assert.Equal(t, numtest.F(1), p)
	_, err = compute.Minimum(empty)
	assert.ErrorIs(t, err, engine.ErrEmptySequence)
	_, err = compute.Maximum(empty)
	assert.ErrorIs(t, err, engine.ErrEmptySequence)
}

// TestGreatestCommonFactorAndLCM pins the reference values on several kinds.
func TestGreatestCommonFactorAndLCM(t *testing.T) {
	g, err := compute.GreatestCommonFactor(slices.Values([]int{12, 18, 24}))
	require.NoError(t, err)
	assert.Equal(t, 6, g)

	gf, err := compute.GreatestCommonFactor(slices.Values(numtest.Fixeds(12, 18, 24)))
	require.NoError(t, err)
	assert.Equal(t, numtest.F(6), gf)

	gn, err := compute.GreatestCommonFactor(slices.Values([]int{-8, 12}))
	require.NoError(t, err)
	assert.Equal(t, 4, gn)

	l, err := compute.LeastCommonMultiple(slices.Values([]int{4, 6}))
	require.NoError(t, err)
	assert.Equal(t, 12, l)

	lf, err := compute.LeastCommonMultiple(slices.Values(numtest.Fixeds(4, 6)))
	require.NoError(t, err)
	assert.Equal(t, numtest.F(12), lf)

	lz, err := compute.LeastCommonMultiple(slices.Values([]int{4, 0, 6}))
	require.NoError(t, err)
	assert.Equal(t, 0, lz)

	_, err = compute.GreatestCommonFactor(slices.Values(numtest.Fixeds(4, 1.5)))
	assert.ErrorIs(t, err, engine.ErrNotWhole)
	_, err = compute.LeastCommonMultiple(slices.Values([]int(nil)))
	assert.ErrorIs(t, err, engine.ErrEmptySequence)
}

// TestPrimes covers IsPrime and FactorPrimes.
func TestPrimes(t *testing.T) {
	var primes []int
	for n := -3; n <= 30; n++ {
		ok, err := compute.IsPrime(n)
		require.NoError(t, err)
		if ok {
			primes = append(primes, n)
		}
	}
	assert.Equal(t, []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}, primes)

	ok, err := compute.IsPrime(numtest.F(7.5))
	require.NoError(t, err)
	assert.False(t, ok)

	seq, err := compute.FactorPrimes(-360)
	require.NoError(t, err)
	assert.Equal(t, []int{-1, 2, 2, 2, 3, 3, 5}, slices.Collect(seq))

	seqF, err := compute.FactorPrimes(numtest.F(91))
	require.NoError(t, err)
	assert.Equal(t, numtest.Fixeds(7, 13), slices.Collect(seqF))

	_, err = compute.FactorPrimes(0)
	assert.ErrorIs(t, err, engine.ErrInvalidArgument)
	_, err = compute.FactorPrimes(numtest.F(2.5))
	assert.ErrorIs(t, err, engine.ErrNotWhole)

	whole, err := compute.IsInteger(numtest.F(4))
	require.NoError(t, err)
	assert.True(t, whole)
	whole, _ = compute.IsInteger(2.5)
	assert.False(t, whole)
}

// TestNonFiniteIsNotWhole checks infinities and NaN are never whole, so the
// number-theory routines reject them instead of looping.
func TestNonFiniteIsNotWhole(t *testing.T) {
	for _, x := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		whole, err := compute.IsInteger(x)
		require.NoError(t, err)
		assert.False(t, whole, "%v", x)
		whole, _ = compute.IsInteger(float32(x))
		assert.False(t, whole, "float32 %v", x)
		whole, _ = compute.IsInteger(numtest.F(x))
		assert.False(t, whole, "Fixed %v", x)

		prime, err := compute.IsPrime(x)
		require.NoError(t, err)
		assert.False(t, prime, "%v", x)
		_, err = compute.FactorPrimes(x)
		assert.ErrorIs(t, err, engine.ErrNotWhole, "%v", x)
		_, err = compute.GreatestCommonFactor(slices.Values([]float64{12, x}))
		assert.ErrorIs(t, err, engine.ErrNotWhole, "%v", x)
	}
}

// TestPowerAndRoots covers exponentiation and Newton roots.
func TestPowerAndRoots(t *testing.T) {
	p, err := compute.Power(2, 10)
	require.NoError(t, err)
	assert.Equal(t, 1024, p)
	pf, err := compute.Power(numtest.F(2), -2)
	require.NoError(t, err)
	assert.Equal(t, numtest.F(0.25), pf)
	_, err = compute.Power(numtest.F(0), -1)
	assert.ErrorIs(t, err, engine.ErrDivideByZero)

	s, err := compute.SquareRoot(numtest.F(2))
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, s.Float(), eps)
	si, err := compute.SquareRoot(17)
	require.NoError(t, err)
	assert.Equal(t, 4, si)
	sz, err := compute.SquareRoot(numtest.F(0))
	require.NoError(t, err)
	assert.Equal(t, numtest.F(0), sz)
	_, err = compute.SquareRoot(numtest.F(-4))
	assert.ErrorIs(t, err, engine.ErrNegative)
	_, err = compute.SquareRoot(-4.0)
	assert.ErrorIs(t, err, engine.ErrNegative)

	r, err := compute.Root(27, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, r)
	rf, err := compute.Root(numtest.F(-8), 3)
	require.NoError(t, err)
	assert.InDelta(t, -2, rf.Float(), 1e-9)
	rs, err := compute.Root(numtest.F(0.0625), 4)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, rs.Float(), 1e-9)
	_, err = compute.Root(numtest.F(-4), 2)
	assert.ErrorIs(t, err, engine.ErrNegative)
	_, err = compute.Root(numtest.F(4), 0)
	assert.ErrorIs(t, err, engine.ErrInvalidArgument)

	r64, err := compute.Root(-27.0, 3)
	require.NoError(t, err)
	assert.InDelta(t, -3.0, r64, eps)
}

// TestLinearInterpolation covers the interpolation preconditions.
func TestLinearInterpolation(t *testing.T) {
	y, err := compute.LinearInterpolation(numtest.F(5), numtest.F(0), numtest.F(10), numtest.F(0), numtest.F(100))
	require.NoError(t, err)
	assert.Equal(t, numtest.F(50), y)

	y, err = compute.LinearInterpolation(numtest.F(1), numtest.F(1), numtest.F(1), numtest.F(7), numtest.F(7))
	require.NoError(t, err)
	assert.Equal(t, numtest.F(7), y)

	_, err = compute.LinearInterpolation(11.0, 0, 10, 0, 100)
	assert.ErrorIs(t, err, engine.ErrOutOfRange)
	_, err = compute.LinearInterpolation(5.0, 10, 0, 0, 100)
	assert.ErrorIs(t, err, engine.ErrInvalidArgument)
	_, err = compute.LinearInterpolation(1.0, 1, 1, 0, 1)
	assert.ErrorIs(t, err, engine.ErrInvalidArgument)
}

// TestPi checks the native value and the memoized generic series.
func TestPi(t *testing.T) {
	prev := engine.SetDefault(engine.New())
	defer engine.SetDefault(prev)

	pf, err := compute.Pi[float64]()
	require.NoError(t, err)
	assert.Equal(t, math.Pi, pf)

	p1, err := compute.Pi[numtest.Fixed]()
	require.NoError(t, err)
	assert.InDelta(t, math.Pi, p1.Float(), eps)
	p2, err := compute.Pi[numtest.Fixed]()
	require.NoError(t, err)
	assert.Equal(t, p1, p2)

	d, ok := engine.LookupDescriptor("compute.Pi")
	require.True(t, ok)
	assert.EqualValues(t, 1, engine.Attempts[numtest.Fixed](engine.Default(), d))
}

type countingCompiler struct{ n atomic.Int64 }

func (c *countingCompiler) Compile(u *engine.Unit) (any, error) {
	c.n.Add(1)

	return engine.DirectCompiler{}.Compile(u)
}

// TestMissingAdditionShortCircuits checks addition-based operations reject
// a type without addition before any compile attempt.
func TestMissingAdditionShortCircuits(t *testing.T) {
	cc := &countingCompiler{}
	prev := engine.SetDefault(engine.New(engine.WithCompiler(cc)))
	defer engine.SetDefault(prev)

	x := numtest.NoAdd{}
	checks := map[string]func() error{
		"Add":            func() error { _, err := compute.Add(x, x); return err },
		"Sum":            func() error { _, err := compute.Sum(slices.Values([]numtest.NoAdd{x})); return err },
		"EqualsLeniency": func() error { _, err := compute.EqualsLeniency(x, x, x); return err },
		"SquareRoot":     func() error { _, err := compute.SquareRoot(x); return err },
	}
	for name, call := range checks {
		err := call()
		require.ErrorIs(t, err, capability.ErrMissing, name)
		assert.Contains(t, err.Error(), "addition", name)
	}
	assert.Zero(t, cc.n.Load())

	// Operators NoAdd does have still work.
	d, err := compute.Subtract(x, x)
	require.NoError(t, err)
	assert.Equal(t, x, d)
	assert.EqualValues(t, 1, cc.n.Load())
}
