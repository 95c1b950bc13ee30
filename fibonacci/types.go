package fibonacci

import "errors"

// MaxPosition is the largest position whose element fits an int32
// (F(46) = 1836311903; F(47) overflows).
const MaxPosition = 46

var (
	// ErrOverflow indicates the requested position exceeds MaxPosition.
	ErrOverflow = errors.New("fibonacci: position exceeds 32-bit range")

	// ErrNegativePosition indicates a position below zero.
	ErrNegativePosition = errors.New("fibonacci: position must be non-negative")

	// ErrCacheTooSmall indicates a Cache shorter than position-1 entries.
	ErrCacheTooSmall = errors.New("fibonacci: cache too small for position")
)

// Cache memoizes elements for ElementMemo. Index position-2 holds F(position);
// a zero entry means "not computed yet". Reuse one Cache across calls to
// keep earlier results.
type Cache []int

// NewCache returns a zeroed Cache large enough for every position up to
// and including position.
func NewCache(position int) Cache {
	return make(Cache, max(position-1, 0))
}
