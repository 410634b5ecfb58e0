package tsp_test

import (
	"testing"

	"github.com/katalvlaran/lvtour/prim_kruskal"
	"github.com/katalvlaran/lvtour/tsp"
)

// BenchmarkTour measures the preorder walk alone on a 500-vertex Euclidean map.
func BenchmarkTour(b *testing.B) {
	m := buildEuclidean(b, 500, 1)
	st := m.NewState()
	if _, err := prim_kruskal.Compute(m, st); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tsp.Tour(m, st, 0)
	}
}

// BenchmarkSolve measures Prim + walk + cost on a 300-vertex Euclidean map.
func BenchmarkSolve(b *testing.B) {
	m := buildEuclidean(b, 300, 1)
	opts := tsp.DefaultOptions()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tsp.Solve(m, opts)
	}
}

// BenchmarkSolveTwoOpt adds the 2-opt pass on a 120-vertex map.
func BenchmarkSolveTwoOpt(b *testing.B) {
	m := buildEuclidean(b, 120, 1)
	opts := tsp.DefaultOptions()
	opts.EnableLocalSearch = true
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tsp.Solve(m, opts)
	}
}
