// SPDX-License-Identifier: MIT

package stats_test

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/numerus/stats"
)

// ExampleVariance uses the population formula: divide by n, not n-1.
func ExampleVariance() {
	xs := []float64{2, 4, 6}
	mean, _ := stats.Mean(slices.Values(xs))
	v, _ := stats.Variance(slices.Values(xs))
	sd, _ := stats.StandardDeviation(slices.Values(xs))

	fmt.Printf("mean=%.0f var=%.4f sd=%.4f\n", mean, v, sd)
	// Output:
	// mean=4 var=2.6667 sd=1.6330
}

// ExampleMedian branches on the sample count.
func ExampleMedian() {
	odd, _ := stats.Median(slices.Values([]int{9, 1, 5}))
	even, _ := stats.Median(slices.Values([]float64{4, 1, 3, 2}))

	fmt.Println(odd, even)
	// Output:
	// 5 2.5
}
