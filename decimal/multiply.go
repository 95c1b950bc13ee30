package decimal

import (
	"fmt"
	"strings"
)

// Multiply returns the product of the decimal digit strings a and b.
//
// Fast path: if either operand is "0" or empty the result is "0".
// Otherwise the digits of b are processed from least to most significant;
// for every digit pair the partial product plus carry plus the digit
// already stored at that place is split into place value (mod 10) and
// carry (div 10). A carry left after a pass lands on the next more
// significant place.
//
// Leading zeros in the operands are accepted and never appear in the
// result. The result length never exceeds len(a)+len(b).
//
// Errors:
//   - ErrInvalidDigit if a or b contains a non-digit byte.
//
// Example:
//
//	Multiply("654", "20") // "13080", nil
func Multiply(a, b string) (string, error) {
	if err := validate("a", a); err != nil {
		return "", err
	}
	if err := validate("b", b); err != nil {
		return "", err
	}
	if a == "" || b == "" || a == "0" || b == "0" {
		return "0", nil
	}

	// product[k] holds the digit of weight 10^k.
	product := make([]byte, len(a)+len(b))
	for j := len(b) - 1; j >= 0; j-- {
		bottom := int(b[j] - '0')
		shift := len(b) - 1 - j
		carry := 0
		for i := len(a) - 1; i >= 0; i-- {
			top := int(a[i] - '0')
			pos := shift + len(a) - 1 - i
			p := bottom*top + carry + int(product[pos])
			product[pos] = byte(p % 10)
			carry = p / 10
		}
		if carry != 0 {
			product[shift+len(a)] = byte(carry)
		}
	}

	return render(product), nil
}

// Validate reports whether s is a well-formed digit string. The empty
// string is valid and denotes zero.
func Validate(s string) error {
	return validate("operand", s)
}

func validate(name, s string) error {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c < '0' || c > '9' {
			return fmt.Errorf("%w: %s[%d] = %q", ErrInvalidDigit, name, i, c)
		}
	}

	return nil
}

// render writes little-endian digits most significant first, skipping
// leading zeros. An all-zero buffer renders as "0".
func render(digits []byte) string {
	top := len(digits) - 1
	for top > 0 && digits[top] == 0 {
		top--
	}

	var sb strings.Builder
	sb.Grow(top + 1)
	for k := top; k >= 0; k-- {
		sb.WriteByte('0' + digits[k])
	}

	return sb.String()
}
