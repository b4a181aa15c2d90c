// SPDX-License-Identifier: MIT

package vector_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numerus/vector"
)

// ExampleCrossProduct builds a normal for the xy plane.
func ExampleCrossProduct() {
	n, _ := vector.CrossProduct(vector.Of(2, 0, 0), vector.Of(0, 3, 0))
	unit, _ := vector.Normalize(vector.Of(float64(n[0]), float64(n[1]), float64(n[2])))

	fmt.Println(n, unit)
	// Output:
	// [0 0 6] [0 0 1]
}

// ExampleAngle takes the arc cosine from the trig registry.
func ExampleAngle() {
	a, _ := vector.Angle(vector.Of(1.0, 0), vector.Of(1.0, 1))
	fmt.Printf("%.2f°\n", a*180/math.Pi)
	// Output:
	// 45.00°
}
