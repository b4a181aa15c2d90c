// SPDX-License-Identifier: MIT

package engine_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/numerus/capability"
	"github.com/katalvlaran/numerus/engine"
	"github.com/katalvlaran/numerus/internal/numtest"
)

var cubeOp = engine.Define("example", "Cube", 1, "(x T) T", capability.Multiplication)

func cube[T any](alg *engine.Algebra[T]) (func(x T) T, error) {
	return func(x T) T { return alg.Mul(x, alg.Mul(x, x)) }, nil
}

// ExampleResolveIn specializes a user-defined operation once per element
// type; a type without the operator is rejected before anything is built.
func ExampleResolveIn() {
	c := engine.New()

	f, _ := engine.ResolveIn(c, cubeOp, cube[int])
	g, _ := engine.ResolveIn(c, cubeOp, cube[numtest.Fixed])
	_, _ = engine.ResolveIn(c, cubeOp, cube[numtest.Fixed])
	fmt.Println(f(3), g(numtest.F(1.5)))
	fmt.Println("attempts:", engine.Attempts[numtest.Fixed](c, cubeOp), engine.StateOf[numtest.Fixed](c, cubeOp))

	_, err := engine.ResolveIn(c, cubeOp, cube[struct{ name string }])
	fmt.Println(errors.Is(err, capability.ErrMissing))
	// Output:
	// 27 3.375
	// attempts: 1 specialized
	// true
}
