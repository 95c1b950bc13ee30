package fibonacci

import (
	"fmt"
	"strconv"
	"strings"
)

// Element returns F(position) by naive double recursion.
//
// Complexity: O(2^n) time, O(n) stack.
//
// Errors:
//   - ErrNegativePosition if position < 0.
//   - ErrOverflow if position > MaxPosition.
func Element(position int) (int, error) {
	if err := check(position); err != nil {
		return 0, err
	}

	return element(position), nil
}

func element(position int) int {
	if position < 3 {
		return min(position, 1)
	}

	return element(position-1) + element(position-2)
}

// ElementMemo returns F(position) using cache to compute each element once.
// The cache must hold at least position-1 entries (see NewCache).
//
// Complexity: O(n) time, O(n) stack on a cold cache; O(1) on a warm one.
//
// Errors:
//   - ErrNegativePosition if position < 0.
//   - ErrOverflow if position > MaxPosition.
//   - ErrCacheTooSmall if position > 2 and len(cache) < position-1.
//
// Positions 0..2 never touch the cache, so a nil cache is accepted there.
func ElementMemo(position int, cache Cache) (int, error) {
	if err := check(position); err != nil {
		return 0, err
	}
	if position < 3 {
		return min(position, 1), nil
	}
	if need := position - 1; need > len(cache) {
		return 0, fmt.Errorf("%w: need %d entries, have %d", ErrCacheTooSmall, need, len(cache))
	}

	return elementMemo(position, cache), nil
}

func elementMemo(position int, cache Cache) int {
	if position < 3 {
		return min(position, 1)
	}
	if cache[position-2] == 0 {
		cache[position-2] = elementMemo(position-1, cache) + elementMemo(position-2, cache)
	}

	return cache[position-2]
}

// Sequence returns the first count elements, F(1) through F(count).
// A count of zero or less yields an empty slice.
//
// Errors:
//   - ErrOverflow if count > MaxPosition.
func Sequence(count int) ([]int, error) {
	if count <= 0 {
		return []int{}, nil
	}
	if err := check(count); err != nil {
		return nil, err
	}

	cache := NewCache(count)
	out := make([]int, count)
	for i := range out {
		out[i] = elementMemo(i+1, cache)
	}

	return out, nil
}

// Format renders a sequence as space-separated decimals.
func Format(seq []int) string {
	parts := make([]string, len(seq))
	for i, v := range seq {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, " ")
}

func check(position int) error {
	if position < 0 {
		return ErrNegativePosition
	}
	if position > MaxPosition {
		return fmt.Errorf("%w: %d > %d", ErrOverflow, position, MaxPosition)
	}

	return nil
}
