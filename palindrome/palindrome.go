// Package palindrome tests integers for decimal palindromes without
// converting them to strings.
package palindrome

// IsPalindrome reports whether the decimal representation of x reads the
// same forwards and backwards.
//
// Negative numbers and non-zero multiples of 10 are rejected up front.
// Otherwise the low half of x is reversed into rev until rev catches up
// with what is left of x; for an odd digit count the middle digit ends
// up in rev and is dropped with rev/10.
//
// Complexity: O(log10 x) time, O(1) memory.
func IsPalindrome(x int) bool {
	if x < 0 || (x%10 == 0 && x != 0) {
		return false
	}

	rev := 0
	for x > rev {
		rev = rev*10 + x%10
		x /= 10
	}

	return x == rev || x == rev/10
}
