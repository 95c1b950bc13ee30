// Package powerset enumerates every subset of a finite set of comparable
// elements.
//
// Two recursive entry points produce the same family for the same logical
// input:
//
//   - Generate / GenerateFrom walk an indexed slice with a start cursor,
//     so no remainder is copied on each step. Duplicate elements in the
//     slice collapse first, because a set cannot hold them twice.
//   - OfSet works on a Set directly and copies the remainder into a new
//     Set on each step.
//
// For n distinct elements the result holds exactly 2^n subsets, including
// the empty set and the full set.
//
// Complexity: O(n·2^n) time and memory.
package powerset
