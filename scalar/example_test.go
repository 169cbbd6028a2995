// SPDX-License-Identifier: MIT

package scalar_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvalgebra/scalar"
)

// ExampleNumber shows real-closure: real operands stay real, a complex operand promotes.
func ExampleNumber() {
	a := scalar.Real(2)
	b := scalar.Complex(1, -1)

	fmt.Println(a.Mul(a), a.Mul(a).Kind())
	fmt.Println(a.Add(b), a.Add(b).Kind())
	fmt.Println(scalar.I.Mul(scalar.I))
	// Output:
	// 4 real
	// 3-i complex
	// -1
}

// ExampleSqrt evaluates the square root outside its real domain.
func ExampleSqrt() {
	fmt.Println(scalar.Sqrt(scalar.Real(9)))
	fmt.Println(scalar.Round(scalar.Sqrt(scalar.Real(-4))))
	// Output:
	// 3
	// 2i
}

// ExampleNumber_Div reports a zero divisor as a sentinel error.
func ExampleNumber_Div() {
	_, err := scalar.Real(1).Div(scalar.Zero)
	fmt.Println(errors.Is(err, scalar.ErrDivideByZero))
	// Output: true
}
