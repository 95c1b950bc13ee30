package lcs_test

import (
	"testing"

	"github.com/katalvlaran/lvmath/lcs"
)

// benchmarkLCS runs LCS on two deterministic int sequences of lengths n and m.
func benchmarkLCS(b *testing.B, n, m int) {
	a := make([]int, n)
	c := make([]int, m)
	for i := range a {
		a[i] = i % 7
	}
	for j := range c {
		c[j] = j % 5
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = lcs.LCS(a, c)
	}
}

func BenchmarkLCS_Small(b *testing.B)  { benchmarkLCS(b, 100, 100) }
func BenchmarkLCS_Medium(b *testing.B) { benchmarkLCS(b, 500, 500) }

// BenchmarkLength_TwoRows measures the O(n)-memory length-only path.
func BenchmarkLength_TwoRows(b *testing.B) {
	a := make([]int, 500)
	c := make([]int, 500)
	for i := range a {
		a[i], c[i] = i%7, i%5
	}
	opts := lcs.DefaultOptions()
	opts.MemoryMode = lcs.TwoRows

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = lcs.Length(a, c, &opts)
	}
}
