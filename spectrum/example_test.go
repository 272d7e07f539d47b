// SPDX-License-Identifier: MIT
package spectrum_test

import (
	"fmt"

	"github.com/katalvlaran/matgen/spectrum"
)

// ExampleStaircase prints a four-band profile for a target condition number
// of 100.
func ExampleStaircase() {
	s, err := spectrum.Staircase(8, 100)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(s)
	// Output:
	// [1 1 0.08 0.08 0.04 0.04 0.01 0.01]
}

// ExamplePolynomial shows that the profile spans exactly the requested
// condition number.
func ExamplePolynomial() {
	s, _ := spectrum.Polynomial(20, 100)
	r, _ := spectrum.Ratio(s)
	fmt.Printf("s[0]=%g cond=%.6f\n", s[0], r)
	// Output:
	// s[0]=1 cond=100.000000
}
