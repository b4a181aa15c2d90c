// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/numerus/matrix"
	"github.com/katalvlaran/numerus/vector"
)

func printRows(m *matrix.Dense[float64]) {
	for i := 0; i < m.Rows(); i++ {
		fmt.Printf("%5.2f\n", m.Row(i))
	}
}

// ExampleInverse solves a 2×2 system by inverting the coefficient matrix.
//
// Scenario:
//
//	4x + 7y = 18
//	2x + 6y = 14
//
// Complexity: O(n³) for Inverse, O(n²) for MultiplyVector.
func ExampleInverse() {
	a, _ := matrix.FromRows([][]float64{{4, 7}, {2, 6}})
	det, _ := matrix.Determinant(a)
	inv, err := matrix.Inverse(a)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	x, _ := matrix.MultiplyVector(inv, vector.Of(18.0, 14.0))

	fmt.Printf("det=%.1f\n", det)
	printRows(inv)
	fmt.Printf("x=%.1f\n", x)
	// Output:
	// det=10.0
	// [ 0.60 -0.70]
	// [-0.20  0.40]
	// x=[1.0 2.0]
}

// ExampleDecomposeLU shows the row permutation chosen by pivoting.
func ExampleDecomposeLU() {
	a, _ := matrix.FromRows([][]float64{{0, 2, 1}, {1, 1, 1}, {2, 1, 3}})
	lu, _ := matrix.DecomposeLU(a)

	fmt.Println("perm:", lu.Perm, "sign:", lu.Sign)
	printRows(lu.U)
	// Output:
	// perm: [1 0 2] sign: -1
	// [ 1.00  1.00  1.00]
	// [ 0.00  2.00  1.00]
	// [ 0.00  0.00  1.50]
}

// ExamplePower computes Fibonacci numbers by exact integer matrix powers.
func ExamplePower() {
	q, _ := matrix.FromRows([][]int{{1, 1}, {1, 0}})
	p, _ := matrix.Power(q, 30)
	f30, _ := p.At(0, 1)

	fmt.Println("F(30) =", f30)
	// Output:
	// F(30) = 832040
}
