package lcs

// MemoryMode controls how Length stores its DP table.
//
//   - FullMatrix - keep the entire (m+1)x(n+1) table in memory.
//     This is the only mode that can recover the subsequence itself.
//     Memory: O(m·n).
//
//   - TwoRows - only keep the previous and current rows.
//     Reduces memory to O(n) but yields the length only.
type MemoryMode int

const (
	// FullMatrix mode: store all rows, uses O(m·n) memory.
	FullMatrix MemoryMode = iota

	// TwoRows mode: keep only two rows, uses O(n) memory.
	TwoRows
)

// Options configures Length.
//
// Fields:
//   - MemoryMode - choose FullMatrix or TwoRows storage.
//
// LCS and String always build the full matrix because the backtrack
// needs every cell.
type Options struct {
	MemoryMode MemoryMode
}

// DefaultOptions returns Options with MemoryMode = FullMatrix.
func DefaultOptions() Options {
	return Options{
		MemoryMode: FullMatrix,
	}
}
