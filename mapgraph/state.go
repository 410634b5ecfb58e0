// SPDX-License-Identifier: MIT

package mapgraph

import "fmt"

// State holds the algorithm-scoped fields of every vertex, indexed by rank.
//
// Prim uses Cost, Prev and Visited; the disjoint-set uses Pi and Height; tree
// conversion fills Children (and Prev); the tour walk uses Visited. A State
// belongs to one run at a time. Runs over the same Map may proceed
// concurrently when each has its own State.
type State struct {
	Cost     []float64
	Prev     []int
	Visited  []bool
	Pi       []int
	Height   []int
	Children [][]int
}

// NewState allocates a State for n vertices and resets it.
func NewState(n int) *State {
	st := &State{
		Cost:     make([]float64, n),
		Prev:     make([]int, n),
		Visited:  make([]bool, n),
		Pi:       make([]int, n),
		Height:   make([]int, n),
		Children: make([][]int, n),
	}
	st.Reset()

	return st
}

// NewState allocates a State sized for m.
func (m *Map) NewState() *State { return NewState(len(m.vertices)) }

// Len returns the number of vertices the State covers.
func (st *State) Len() int { return len(st.Prev) }

// Reset restores every vertex to Visited=false, Cost=+Inf, Prev=NoVertex,
// Pi=NoVertex, Height=0 and no children.
func (st *State) Reset() {
	for v := range st.Prev {
		st.Cost[v] = Inf
		st.Prev[v] = NoVertex
		st.Visited[v] = false
		st.Pi[v] = NoVertex
		st.Height[v] = 0
		st.Children[v] = st.Children[v][:0]
	}
}

// ResetVisited clears only the Visited flags.
func (st *State) ResetVisited() {
	for v := range st.Visited {
		st.Visited[v] = false
	}
}

// CheckState verifies that st is non-nil and every slice has length n.
func CheckState(st *State, n int) error {
	if st == nil {
		return fmt.Errorf("nil state: %w", ErrStateSize)
	}
	if len(st.Cost) != n || len(st.Prev) != n || len(st.Visited) != n ||
		len(st.Pi) != n || len(st.Height) != n || len(st.Children) != n {
		return fmt.Errorf("state for %d vertices, map has %d: %w", len(st.Prev), n, ErrStateSize)
	}

	return nil
}
