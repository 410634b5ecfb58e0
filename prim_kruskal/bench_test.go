package prim_kruskal_test

import (
	"testing"

	"github.com/katalvlaran/lvtour/prim_kruskal"
)

// BenchmarkKruskal measures performance on a random map with 500 vertices and 2000 edges.
func BenchmarkKruskal(b *testing.B) {
	m := buildMediumMap(b, 500, 2000) // pre‐build map once
	st := m.NewState()
	m.Edges()      // sort outside the timed loop
	b.ResetTimer() // reset timer to exclude map construction
	for i := 0; i < b.N; i++ {
		_, _ = prim_kruskal.Kruskal(m, st)
	}
}

// BenchmarkPrim measures performance on a random map with 500 vertices and 2000 edges,
// always starting Prim from vertex 0.
func BenchmarkPrim(b *testing.B) {
	m := buildMediumMap(b, 500, 2000) // pre‐build map once
	st := m.NewState()
	b.ResetTimer() // reset timer to exclude map construction
	for i := 0; i < b.N; i++ {
		_ = prim_kruskal.Prim(m, st)
	}
}
