// Package consecutive measures runs of consecutive integers in unordered
// collections.
package consecutive

import "slices"

// LongestRun returns the length of the longest run of consecutive
// integers present in nums (each value exactly one more than the
// previous). Duplicates count once and negatives are allowed.
//
// nums is not modified: a sorted copy is scanned once. An empty input
// yields 0 and a single element yields 1.
//
// Complexity: O(n log n) time, O(n) memory.
func LongestRun(nums []int) int {
	switch len(nums) {
	case 0:
		return 0
	case 1:
		return 1
	}

	sorted := slices.Clone(nums)
	slices.Sort(sorted)

	best, count := 1, 1
	last := sorted[0]
	for _, v := range sorted[1:] {
		switch {
		case v == last:
			// duplicate: neither extends nor breaks the run
		case v == last+1:
			count++
			best = max(best, count)
		default:
			count = 1
		}
		last = v
	}

	return best
}
