package decimal

import "errors"

// ErrInvalidDigit indicates an operand contains a byte outside '0'..'9'.
// Returned errors wrap it with the operand name and byte offset.
var ErrInvalidDigit = errors.New("decimal: invalid digit")
