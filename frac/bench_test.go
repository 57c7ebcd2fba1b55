package frac_test

import (
	"testing"

	"github.com/katalvlaran/ratlp/frac"
)

func BenchmarkAdd(b *testing.B) {
	x, _ := frac.New(355, 113)
	y, _ := frac.New(-22, 7)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = x.Add(y)
	}
}

func BenchmarkMul(b *testing.B) {
	x, _ := frac.New(355, 113)
	y, _ := frac.New(-22, 7)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = x.Mul(y)
	}
}

func BenchmarkParse(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := frac.Parse("-355/113"); err != nil {
			b.Fatal(err)
		}
	}
}
