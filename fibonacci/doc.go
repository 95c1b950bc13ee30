// Package fibonacci computes elements of the Fibonacci sequence
// F(0)=0, F(1)=F(2)=1, F(n)=F(n-1)+F(n-2).
//
// Two variants are provided on purpose:
//
//   - Element - plain double recursion, O(2^n) time. Kept as the baseline.
//   - ElementMemo - the same recursion backed by a caller-owned Cache,
//     O(n) time.
//
// Results are limited to values that fit a signed 32-bit integer, i.e.
// positions up to MaxPosition (46). Larger positions return ErrOverflow
// instead of a wrapped value.
//
// A Cache is plain caller-owned memory: sharing one between goroutines
// requires external locking.
package fibonacci
