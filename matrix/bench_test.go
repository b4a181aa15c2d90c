// SPDX-License-Identifier: MIT

// Package matrix_test provides benchmarks for the matrix operations,
// using deterministic random fill so runs are comparable.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/numerus/engine"
	"github.com/katalvlaran/numerus/internal/numtest"
	"github.com/katalvlaran/numerus/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{16, 64, 128}

// sinks to defeat dead-code elimination
var (
	sinkM  *matrix.Dense[float64]
	sinkMF *matrix.Dense[numtest.Fixed]
	sinkF  float64
)

func randDense(b *testing.B, n int, seed int64) *matrix.Dense[float64] {
	b.Helper()
	m, err := matrix.NewDense[float64](n, n)
	if err != nil {
		b.Fatal(err)
	}
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			_ = m.Set(i, j, rng.Float64()*2-1)
		}
	}

	return m
}

func randFixed(b *testing.B, n int, seed int64) *matrix.Dense[numtest.Fixed] {
	b.Helper()
	m, err := matrix.NewDense[numtest.Fixed](n, n)
	if err != nil {
		b.Fatal(err)
	}
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			_ = m.Set(i, j, numtest.F(rng.Float64()*2-1))
		}
	}

	return m
}

// BenchmarkMultiply compares the gonum fast path with the generic template.
func BenchmarkMultiply(b *testing.B) {
	for _, n := range benchSizes {
		A, B := randDense(b, n, 1337), randDense(b, n, 4242)
		b.Run(fmt.Sprintf("fast/n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Multiply(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
		b.Run(fmt.Sprintf("generic/n=%d", n), func(b *testing.B) {
			prev := engine.SetDefault(engine.New(engine.WithoutFastPaths()))
			defer engine.SetDefault(prev)
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Multiply(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkDeterminant(b *testing.B) {
	for _, n := range benchSizes {
		A := randDense(b, n, 7)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				d, err := matrix.Determinant(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = d
			}
		})
	}
}

// BenchmarkInverseFixed measures elimination through the row slots on a
// non-built-in element type.
func BenchmarkInverseFixed(b *testing.B) {
	for _, n := range benchSizes {
		A := randFixed(b, n, 99)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Inverse(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkMF = m
			}
		})
	}
}
