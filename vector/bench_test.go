// SPDX-License-Identifier: MIT

package vector_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/numerus/engine"
	"github.com/katalvlaran/numerus/vector"
)

var (
	sinkV vector.Vector[float64]
	sinkF float64
)

func randVector(n int, seed int64) vector.Vector[float64] {
	rng := rand.New(rand.NewSource(seed))
	v := make(vector.Vector[float64], n)
	for i := range v {
		v[i] = rng.Float64()*2 - 1
	}

	return v
}

// BenchmarkDotProduct compares the gonum/floats kernel with the generic
// template.
func BenchmarkDotProduct(b *testing.B) {
	for _, n := range []int{16, 256, 4096} {
		x, y := randVector(n, 1), randVector(n, 2)
		b.Run(fmt.Sprintf("fast/n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				d, err := vector.DotProduct(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = d
			}
		})
		b.Run(fmt.Sprintf("generic/n=%d", n), func(b *testing.B) {
			prev := engine.SetDefault(engine.New(engine.WithoutFastPaths()))
			defer engine.SetDefault(prev)
			for i := 0; i < b.N; i++ {
				d, err := vector.DotProduct(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = d
			}
		})
	}
}

func BenchmarkAdd(b *testing.B) {
	for _, n := range []int{16, 256, 4096} {
		x, y := randVector(n, 3), randVector(n, 4)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				v, err := vector.Add(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = v
			}
		})
	}
}
