// Package lcs computes the Longest Common Subsequence (LCS) of two
// sequences of any comparable element type.
//
// 🚀 What is an LCS?
//
//	The longest ordered (not necessarily contiguous) run of elements that
//	appears in both inputs with the same relative order. It is the core of:
//	  • text and line diffing
//	  • DNA / protein sequence alignment
//	  • edit-distance style similarity scores
//
// ✨ Key features:
//   - generic over E comparable: runes, bytes, ints, structs, string lines
//   - full-matrix mode: O(m·n) time & memory, recovers the subsequence
//   - two-rows mode: O(m·n) time, O(n) memory, length only
//   - deterministic backtrack: on ties the walk moves left (j-1) before up (i-1)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvmath/lcs"
//
//	sub := lcs.LCS([]int{1, 2, 3, 4}, []int{2, 4, 3}) // [2 4] or [2 3]
//	s := lcs.String("GACT", "AGCAT")                   // "ACT"
//
//	opts := lcs.DefaultOptions()
//	opts.MemoryMode = lcs.TwoRows
//	n := lcs.Length(a, b, &opts)                      // length only, O(n) memory
//
// Performance:
//
//   - Time:   O(m·n)
//   - Memory: O(m·n) (FullMatrix) or O(n) (TwoRows)
package lcs
