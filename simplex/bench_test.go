package simplex_test

import (
	"testing"

	"github.com/katalvlaran/ratlp/simplex"
)

func BenchmarkParse(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := simplex.Parse(refProblem); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSolve(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		t, err := simplex.Parse(refProblem)
		if err != nil {
			b.Fatal(err)
		}
		if _, err = simplex.Solve(t, nil); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPivot(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		t, err := simplex.Parse(refProblem)
		if err != nil {
			b.Fatal(err)
		}
		b.StartTimer()
		if _, err = t.Pivot(); err != nil {
			b.Fatal(err)
		}
	}
}
