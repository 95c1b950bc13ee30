package decimal_test

import (
	"math/big"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/decimal"
)

func TestMultiply_Known(t *testing.T) {
	cases := []struct {
		a, b, want string
	}{
		{"654", "20", "13080"},
		{"2", "3", "6"},
		{"9", "9", "81"},
		{"99", "99", "9801"},
		{"123", "456", "56088"},
		{"999", "1", "999"},
		{"1", "1", "1"},
		{"100", "100", "10000"},
		{"12345678901234567890", "98765432109876543210", "1219326311370217952237463801111263526900"},
	}
	for _, tc := range cases {
		got, err := decimal.Multiply(tc.a, tc.b)
		require.NoError(t, err, "%s*%s", tc.a, tc.b)
		assert.Equal(t, tc.want, got, "%s*%s", tc.a, tc.b)
	}
}

func TestMultiply_ZeroAndEmpty(t *testing.T) {
	for _, pair := range [][2]string{
		{"0", "12345"},
		{"12345", "0"},
		{"", "7"},
		{"7", ""},
		{"", ""},
		{"000", "42"},
		{"42", "00"},
	} {
		got, err := decimal.Multiply(pair[0], pair[1])
		require.NoError(t, err)
		assert.Equal(t, "0", got, "%q*%q", pair[0], pair[1])
	}
}

func TestMultiply_LeadingZerosStripped(t *testing.T) {
	got, err := decimal.Multiply("000123", "1")
	require.NoError(t, err)
	assert.Equal(t, "123", got)

	got, err = decimal.Multiply("0050", "002")
	require.NoError(t, err)
	assert.Equal(t, "100", got)
}

func TestMultiply_InvalidDigit(t *testing.T) {
	for _, pair := range [][2]string{
		{"12a", "3"},
		{"3", "-4"},
		{"1.5", "2"},
		{" 1", "2"},
		{"0", "x"},
	} {
		got, err := decimal.Multiply(pair[0], pair[1])
		assert.ErrorIs(t, err, decimal.ErrInvalidDigit, "%q*%q", pair[0], pair[1])
		assert.Empty(t, got)
	}

	err := decimal.Validate("12z4")
	require.ErrorIs(t, err, decimal.ErrInvalidDigit)
	assert.Contains(t, err.Error(), "[2]")
	assert.NoError(t, decimal.Validate(""))
	assert.NoError(t, decimal.Validate("0123456789"))
}

// TestMultiply_MatchesBigInt cross-checks random operands against math/big
// and verifies commutativity and the length bound.
func TestMultiply_MatchesBigInt(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	randDigits := func(n int) string {
		var sb strings.Builder
		sb.WriteByte(byte('1' + rng.Intn(9)))
		for i := 1; i < n; i++ {
			sb.WriteByte(byte('0' + rng.Intn(10)))
		}
		return sb.String()
	}

	for iter := 0; iter < 200; iter++ {
		a := randDigits(1 + rng.Intn(40))
		b := randDigits(1 + rng.Intn(40))

		x, _ := new(big.Int).SetString(a, 10)
		y, _ := new(big.Int).SetString(b, 10)
		want := new(big.Int).Mul(x, y).String()

		ab, err := decimal.Multiply(a, b)
		require.NoError(t, err)
		ba, err := decimal.Multiply(b, a)
		require.NoError(t, err)

		assert.Equal(t, want, ab, "%s*%s", a, b)
		assert.Equal(t, ab, ba, "commutativity")
		assert.LessOrEqual(t, len(ab), len(a)+len(b))
		assert.NotEqual(t, byte('0'), ab[0], "no leading zero")
	}
}
