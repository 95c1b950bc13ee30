package factor

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/cznic/mathutil"
)

// Factors returns all positive divisors of n in strictly ascending order.
// n <= 0 yields an empty slice; Factors(1) is [1].
//
// Trial division runs up to √n. When n is odd only odd candidates are
// tried, since an odd number has no even divisor. Each hit i contributes
// i to the low half and n/i to the high half (once, if i*i == n); the
// halves are already sorted, so no final sort is needed.
//
// Complexity: O(√n) time.
func Factors(n int) []int {
	if n <= 0 {
		return []int{}
	}

	step := 1
	if n%2 != 0 {
		step = 2
	}

	var low, high []int
	for i := 1; i <= n/i; i += step {
		if n%i != 0 {
			continue
		}
		low = append(low, i)
		if j := n / i; j != i {
			high = append(high, j)
		}
	}

	out := low
	for k := len(high) - 1; k >= 0; k-- {
		out = append(out, high[k])
	}

	return out
}

// PrimePower is one term p^k of a prime factorization.
type PrimePower struct {
	Prime int
	Power int
}

// PrimeFactors returns the prime factorization of n in ascending prime
// order. 0 and 1 have no prime factors and yield an empty slice.
//
// Errors:
//   - ErrOutOfRange if n < 0 or n > math.MaxUint32.
func PrimeFactors(n int) ([]PrimePower, error) {
	if n < 0 || uint64(n) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d", ErrOutOfRange, n)
	}
	if n < 2 {
		return []PrimePower{}, nil
	}

	terms := mathutil.FactorInt(uint32(n))
	out := make([]PrimePower, len(terms))
	for i, t := range terms {
		out[i] = PrimePower{Prime: int(t.Prime), Power: int(t.Power)}
	}
	slices.SortFunc(out, func(a, b PrimePower) int { return cmp.Compare(a.Prime, b.Prime) })

	return out, nil
}
