// SPDX-License-Identifier: MIT

package quaternion_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numerus/quaternion"
	"github.com/katalvlaran/numerus/vector"
)

// ExampleRotate turns the x axis a quarter turn about z.
func ExampleRotate() {
	q, _ := quaternion.FromAxisAngle(vector.Of(0.0, 0, 1), math.Pi/2)
	v, err := quaternion.Rotate(q, vector.Of(1.0, 0, 0))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for i := range v {
		v[i] = math.Round(v[i]*1e3)/1e3 + 0 // fold -0 into 0
	}
	fmt.Printf("%.3f\n", []float64(v))
	// Output:
	// [0.000 1.000 0.000]
}

// ExampleMultiply shows the Hamilton product does not commute.
func ExampleMultiply() {
	i := quaternion.New(1, 0, 0, 0)
	j := quaternion.New(0, 1, 0, 0)
	ij, _ := quaternion.Multiply(i, j)
	ji, _ := quaternion.Multiply(j, i)

	fmt.Println(ij, ji)
	// Output:
	// (0, 0, 1, 0) (0, 0, -1, 0)
}
