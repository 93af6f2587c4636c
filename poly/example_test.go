package poly_test

import (
	"fmt"

	"github.com/polyarith/polylist/poly"
)

func Example() {

	a, err := poly.Parse("4 5\n-2 3\n2 1\n3 0\n")
	if err != nil {
		panic(err)
	}

	b, err := poly.Parse("2 3\n-3 0\n")
	if err != nil {
		panic(err)
	}

	fmt.Println(a)
	fmt.Println(poly.Add(a, b))
	fmt.Println(poly.Mul(a, b).StringDescending())
	fmt.Println(poly.Evaluate(a, 2), poly.Evaluate(a, 0))
	fmt.Println(poly.Polynomial{})

	// Output:
	// 3.0 + 2.0x^1 + -2.0x^3 + 4.0x^5
	// 2.0x^1 + 4.0x^5
	// 8.0x^8 + -4.0x^6 + -12.0x^5 + 4.0x^4 + 12.0x^3 + -6.0x^1 + -9.0
	// 119 3
	// 0
}
