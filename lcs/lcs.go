package lcs

// LCS - Longest Common Subsequence
//
// Algorithm Outline:
//  1. Let m = len(a), n = len(b). Allocate (m+1)x(n+1) DP table T.
//  2. Initialize row 0 and column 0 to 0.
//  3. For i = 1..m, j = 1..n:
//     T[i][j] = T[i-1][j-1] + 1              if a[i-1] == b[j-1]
//     T[i][j] = max(T[i-1][j], T[i][j-1])    otherwise
//  4. Backtrack from (m, n) while i > 0 and j > 0:
//     - equal elements: emit, move diagonally;
//     - T[i][j-1] ≥ T[i][j]: move left (j-1);
//     - otherwise: move up (i-1).
//  5. Reverse the emitted elements in place.
//
// Complexity:
//
//	Time   = O(m·n)
//	Memory = O(m·n)

// Table builds the (len(a)+1)x(len(b)+1) LCS length table.
// Table[i][j] is the LCS length of a[:i] and b[:j]; row 0 and column 0 are zero.
func Table[E comparable](a, b []E) [][]int {
	m, n := len(a), len(b)
	table := make([][]int, m+1)
	for i := range table {
		table[i] = make([]int, n+1)
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if a[i-1] == b[j-1] {
				table[i][j] = table[i-1][j-1] + 1
			} else {
				table[i][j] = max(table[i-1][j], table[i][j-1])
			}
		}
	}

	return table
}

// LCS returns one longest common subsequence of a and b, preserving the
// relative order of both inputs. When several subsequences share the
// maximum length, the backtrack prefers moving left over moving up, so
// the result is deterministic.
//
// An empty input on either side, or no common element, yields an empty
// (non-nil) slice.
//
// Example:
//
//	LCS([]rune("ABCABCBA"), []rune("CBABCABCC")) // []rune("ABCABC")
func LCS[E comparable](a, b []E) []E {
	table := Table(a, b)
	i, j := len(a), len(b)
	out := make([]E, 0, table[i][j])

	for i > 0 && j > 0 {
		switch {
		case a[i-1] == b[j-1]:
			out = append(out, b[j-1])
			i--
			j--
		case table[i][j-1] >= table[i][j]:
			j--
		default:
			i--
		}
	}

	// reverse in-place
	for l, r := 0, len(out)-1; l < r; l, r = l+1, r-1 {
		out[l], out[r] = out[r], out[l]
	}

	return out
}

// String is LCS over the runes of a and b.
func String(a, b string) string {
	return string(LCS([]rune(a), []rune(b)))
}

// Length returns the LCS length of a and b without recovering the
// subsequence. A nil opts means DefaultOptions().
func Length[E comparable](a, b []E, opts *Options) int {
	mode := FullMatrix
	if opts != nil {
		mode = opts.MemoryMode
	}
	if mode == FullMatrix {
		return Table(a, b)[len(a)][len(b)]
	}

	n := len(b)
	prev, curr := make([]int, n+1), make([]int, n+1)
	for i := 1; i <= len(a); i++ {
		curr[0] = 0
		for j := 1; j <= n; j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else {
				curr[j] = max(prev[j], curr[j-1])
			}
		}
		prev, curr = curr, prev
	}

	return prev[n]
}
