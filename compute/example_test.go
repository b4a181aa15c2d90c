// SPDX-License-Identifier: MIT

package compute_test

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/numerus/compute"
)

// ExampleGreatestCommonFactor folds a lazy sequence of integers.
func ExampleGreatestCommonFactor() {
	gcf, _ := compute.GreatestCommonFactor(slices.Values([]int{12, 18, 24}))
	lcm, _ := compute.LeastCommonMultiple(slices.Values([]int{4, 6}))

	fmt.Println(gcf, lcm)
	// Output:
	// 6 12
}

// ExampleClamp works for any ordered element type, named kinds included.
func ExampleClamp() {
	type Celsius float32

	c, _ := compute.Clamp(Celsius(104.5), Celsius(-40), Celsius(100))
	fmt.Println(c)
	// Output:
	// 100
}

// ExampleDivide shows a per-call domain error.
func ExampleDivide() {
	_, err := compute.Divide(7, 0)
	fmt.Println(err)
	// Output:
	// compute.Divide: divide by zero: engine: domain error
}
