// SPDX-License-Identifier: MIT

package combinatorics_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/numerus/combinatorics"
	"github.com/katalvlaran/numerus/engine"
)

func ExampleChoose() {
	c, _ := combinatorics.Choose(10, 3)
	_, err := combinatorics.Choose(3, 10)
	fmt.Println(c, errors.Is(err, engine.ErrInvalidArgument))
	// Output:
	// 120 true
}

// ExampleFactorial rejects negative and fractional input.
func ExampleFactorial() {
	f, _ := combinatorics.Factorial(uint64(20))
	_, errNeg := combinatorics.Factorial(-1)
	_, errFrac := combinatorics.Factorial(2.5)

	fmt.Println(f)
	fmt.Println(errors.Is(errNeg, engine.ErrNegative), errors.Is(errFrac, engine.ErrNotWhole))
	// Output:
	// 2432902008176640000
	// true true
}
