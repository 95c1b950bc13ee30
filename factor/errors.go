package factor

import "errors"

// ErrOutOfRange indicates PrimeFactors received a value outside [0, MaxUint32].
var ErrOutOfRange = errors.New("factor: value out of uint32 range")
