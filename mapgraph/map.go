// SPDX-License-Identifier: MIT

package mapgraph

import (
	"fmt"
	"math"
	"sort"
)

// New returns a map with n isolated vertices ranked 0..n-1.
// The adjacency matrix is initialised with 0 on the diagonal and +Inf elsewhere.
//
// Complexity: O(n²) time and memory for the dense matrix.
func New(n int) (*Map, error) {
	if n < 0 {
		return nil, fmt.Errorf("New(%d): %w", n, ErrVertexOutOfRange)
	}

	m := &Map{
		vertices: make([]Vertex, n),
		adjMat:   make([][]float64, n),
		sorted:   true,
	}
	for i := 0; i < n; i++ {
		m.vertices[i] = Vertex{Rank: i}
		row := make([]float64, n)
		for j := range row {
			if j != i {
				row[j] = Inf
			}
		}
		m.adjMat[i] = row
	}

	return m, nil
}

// FromMatrix builds a map from a square, symmetric, non-negative weight matrix.
// Off-diagonal +Inf entries mean "no edge"; the diagonal is ignored.
//
// Complexity: O(n²).
func FromMatrix(mat [][]float64) (*Map, error) {
	n := len(mat)
	for i := 0; i < n; i++ {
		if len(mat[i]) != n {
			return nil, fmt.Errorf("FromMatrix: row %d has %d entries, want %d: %w", i, len(mat[i]), n, ErrNonSquare)
		}
	}

	m, err := New(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			w := mat[i][j]
			if w != mat[j][i] && !(math.IsNaN(w) && math.IsNaN(mat[j][i])) {
				return nil, fmt.Errorf("FromMatrix: [%d][%d]=%v vs [%d][%d]=%v: %w", i, j, w, j, i, mat[j][i], ErrAsymmetric)
			}
			if math.IsInf(w, 1) {
				continue
			}
			if err = m.AddEdge(i, j, w); err != nil {
				return nil, fmt.Errorf("FromMatrix: %w", err)
			}
		}
	}

	return m, nil
}

// AddEdge inserts the undirected edge {u, v} with weight w.
//
// Errors: ErrVertexOutOfRange, ErrSelfLoop, ErrNegativeWeight, ErrBadWeight,
// ErrDuplicateEdge. On error the map is unchanged.
//
// Complexity: O(deg(u) + deg(v)) to keep neighbor lists sorted.
func (m *Map) AddEdge(u, v int, w float64) error {
	n := len(m.vertices)
	if u < 0 || u >= n || v < 0 || v >= n {
		return fmt.Errorf("AddEdge(%d, %d): %w", u, v, ErrVertexOutOfRange)
	}
	if u == v {
		return fmt.Errorf("AddEdge(%d, %d): %w", u, v, ErrSelfLoop)
	}
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("AddEdge(%d, %d, %v): %w", u, v, w, ErrBadWeight)
	}
	if w < 0 {
		return fmt.Errorf("AddEdge(%d, %d, %v): %w", u, v, w, ErrNegativeWeight)
	}
	if m.HasEdge(u, v) {
		return fmt.Errorf("AddEdge(%d, %d): %w", u, v, ErrDuplicateEdge)
	}
	if u > v {
		u, v = v, u
	}

	m.adjMat[u][v] = w
	m.adjMat[v][u] = w
	m.vertices[u].Neighbors = insertSorted(m.vertices[u].Neighbors, v)
	m.vertices[v].Neighbors = insertSorted(m.vertices[v].Neighbors, u)
	m.edges = append(m.edges, Edge{U: u, V: v, Weight: w})
	m.sorted = false

	return nil
}

// insertSorted places r into the ascending slice s.
func insertSorted(s []int, r int) []int {
	i := sort.SearchInts(s, r)
	s = append(s, 0)
	copy(s[i+1:], s[i:])
	s[i] = r

	return s
}

// Order returns the number of vertices.
func (m *Map) Order() int { return len(m.vertices) }

// Size returns the number of edges.
func (m *Map) Size() int { return len(m.edges) }

// Vertices returns the adjacency list: every vertex in rank order.
// The slice is shared with the map and must not be modified.
func (m *Map) Vertices() []Vertex { return m.vertices }

// Vertex returns the vertex with rank r.
func (m *Map) Vertex(r int) (Vertex, error) {
	if r < 0 || r >= len(m.vertices) {
		return Vertex{}, fmt.Errorf("Vertex(%d): %w", r, ErrVertexOutOfRange)
	}

	return m.vertices[r], nil
}

// Neighbors returns the ascending ranks adjacent to r, or nil if r is out of range.
func (m *Map) Neighbors(r int) []int {
	if r < 0 || r >= len(m.vertices) {
		return nil
	}

	return m.vertices[r].Neighbors
}

// Weight returns adjMat[u][v]: 0 on the diagonal, +Inf when there is no edge.
// Out-of-range ranks also yield +Inf.
func (m *Map) Weight(u, v int) float64 {
	n := len(m.vertices)
	if u < 0 || u >= n || v < 0 || v >= n {
		return Inf
	}

	return m.adjMat[u][v]
}

// HasEdge reports whether an edge joins u and v.
func (m *Map) HasEdge(u, v int) bool {
	return u != v && !math.IsInf(m.Weight(u, v), 1)
}

// Matrix returns a deep copy of the adjacency matrix.
func (m *Map) Matrix() [][]float64 {
	out := make([][]float64, len(m.adjMat))
	for i, row := range m.adjMat {
		out[i] = append([]float64(nil), row...)
	}

	return out
}

// Edges returns the edge list in canonical order: ascending weight, then lower
// U+V, then lower U. The order is total, so Kruskal is reproducible.
// The returned slice is shared with the map and must not be modified.
//
// Complexity: O(E log E) on the first call after an AddEdge, O(1) afterwards.
func (m *Map) Edges() []Edge {
	m.sortMu.Lock()
	defer m.sortMu.Unlock()
	if !m.sorted {
		sort.Slice(m.edges, func(i, j int) bool {
			return edgeLess(m.edges[i], m.edges[j])
		})
		m.sorted = true
	}

	return m.edges
}

// edgeLess is the canonical edge order.
func edgeLess(a, b Edge) bool {
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}
	if a.U+a.V != b.U+b.V {
		return a.U+a.V < b.U+b.V
	}

	return a.U < b.U
}

// TotalWeight returns the sum of all edge weights.
func (m *Map) TotalWeight() float64 {
	m.sortMu.Lock()
	defer m.sortMu.Unlock()

	var sum float64
	for _, e := range m.edges {
		sum += e.Weight
	}

	return sum
}

// IsComplete reports whether every pair of distinct vertices is joined by an edge.
func (m *Map) IsComplete() bool {
	n := len(m.vertices)

	return len(m.edges) == n*(n-1)/2
}
