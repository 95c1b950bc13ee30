// Package decimal multiplies non-negative integers written as decimal
// digit strings of any length, using grade-school long multiplication.
//
// Inputs are plain ASCII digit strings ("0".."9" only, no sign, no
// exponent). The product is returned without leading zeros; a zero
// product renders as "0".
//
// Complexity: O(len(a)·len(b)) time, O(len(a)+len(b)) memory.
package decimal
