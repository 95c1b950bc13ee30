package factor_test

import (
	"fmt"

	"github.com/katalvlaran/lvmath/factor"
)

func ExampleFactors() {
	fmt.Println(factor.Factors(102))
	fmt.Println(factor.Factors(0))
	// Output:
	// [1 2 3 6 17 34 51 102]
	// []
}

func ExamplePrimeFactors() {
	terms, _ := factor.PrimeFactors(360)
	for _, t := range terms {
		fmt.Printf("%d^%d ", t.Prime, t.Power)
	}
	fmt.Println()
	// Output:
	// 2^3 3^2 5^1
}
