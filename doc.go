// Package lvmath is a small playground of self-contained numeric and
// combinatorial algorithms: sequences, divisors, digit tricks, subsets
// and dynamic programming over generic sequences.
//
// 🚀 What is inside?
//
//	A zero-state, pure-function library that brings together:
//		• Fibonacci: naive recursion and caller-cached memoization
//		• Divisors: ascending factor lists and prime-power decomposition
//		• Palindromes: half-reversal check without string conversion
//		• Runs: longest run of consecutive integers in an unordered slice
//		• Power sets: every subset of a generic set
//		• LCS: longest common subsequence via an O(m·n) DP table
//		• Decimal: arbitrary-precision digit-string multiplication
//
// ✨ Why lvmath?
//
//   - Pure functions – no globals, no I/O, safe to call from many goroutines
//   - Generic where it matters – LCS and power sets work over any comparable E
//   - Explicit errors – overflow and malformed input are sentinel errors,
//     never magic values
//
// Packages:
//
//	consecutive/ - LongestRun over []int
//	decimal/     - Multiply over decimal digit strings
//	factor/      - Factors, PrimeFactors
//	fibonacci/   - Element, ElementMemo, Sequence
//	lcs/         - Table, LCS, String, Length
//	palindrome/  - IsPalindrome
//	powerset/    - Set, Family, Generate, OfSet
//
// Quick example:
//
//	lcs.String("GACT", "AGCAT")      // "ACT"
//	decimal.Multiply("654", "20")    // "13080", nil
//	consecutive.LongestRun([]int{100, 4, 200, 1, 3, 2}) // 4
//
//	go get github.com/katalvlaran/lvmath
package lvmath
