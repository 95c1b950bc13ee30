package palindrome_test

import (
	"fmt"

	"github.com/katalvlaran/lvmath/palindrome"
)

func ExampleIsPalindrome() {
	fmt.Println(palindrome.IsPalindrome(12321), palindrome.IsPalindrome(1221), palindrome.IsPalindrome(-121), palindrome.IsPalindrome(120))
	// Output:
	// true true false false
}
