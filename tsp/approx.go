// SPDX-License-Identifier: MIT

// Package tsp - MST-walk 2-approximation.
//
// Tour reads a closed tour off a rooted spanning tree by a depth-first preorder walk:
//
//  1. Clear every Visited flag.
//  2. Push the start vertex on an explicit stack and mark it.
//  3. Pop a vertex, append it to the tour, then mark and push each unvisited child.
//  4. When the stack is empty, append the start vertex again to close the cycle.
//
// Mathematical guarantee:
//   - If the weights are a symmetric metric (triangle inequality holds) and the tree is a
//     minimum spanning tree, the tour length is ≤ 2 · MST weight ≤ 2 · OPT. Shortcutting
//     the doubled tree walk never lengthens it under the triangle inequality.
//   - Without the triangle inequality the walk is still a valid Hamiltonian order but the
//     bound does not hold, and a shortcut may need an edge the map lacks (see TourCost).
//
// Contracts:
//   - st.Children holds a tree rooted at start (prim_kruskal.ParentsToChildren or
//     prim_kruskal.OrientEdges).
//   - Tour invariants on success: len==n+1, tour[0]==tour[n]==start, each vertex once.
//
// Complexity: O(V) time, O(V) extra space.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/lvtour/mapgraph"
	"github.com/katalvlaran/lvtour/prim_kruskal"
)

// Tour walks the tree stored in st.Children from start and returns the visiting order,
// closed by a second copy of start. It returns ErrIncompleteTree when the tree below
// start misses some vertex.
func Tour(m *mapgraph.Map, st *mapgraph.State, start int) ([]int, error) {
	if m == nil {
		return nil, prim_kruskal.ErrInvalidGraph
	}
	n := m.Order()
	if n == 0 {
		return nil, mapgraph.ErrEmptyGraph
	}
	if err := mapgraph.CheckState(st, n); err != nil {
		return nil, err
	}
	if start < 0 || start >= n {
		return nil, fmt.Errorf("Tour: start %d of %d vertices: %w", start, n, ErrStartOutOfRange)
	}

	// 1) Every vertex starts unvisited.
	st.ResetVisited()

	// 2) Explicit stack seeded with start.
	tour := make([]int, 0, n+1)
	stack := make([]int, 1, n)
	stack[0] = start
	st.Visited[start] = true

	// 3) Preorder: emit on pop, then push unvisited children.
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		tour = append(tour, cur)

		for _, c := range st.Children[cur] {
			if c < 0 || c >= n {
				return nil, fmt.Errorf("Tour: child %d of %d: %w", c, cur, mapgraph.ErrVertexOutOfRange)
			}
			if !st.Visited[c] {
				st.Visited[c] = true
				stack = append(stack, c)
			}
		}
	}

	if len(tour) != n {
		return nil, fmt.Errorf("Tour: tree below %d covers %d of %d vertices: %w", start, len(tour), n, ErrIncompleteTree)
	}

	// 4) Close the cycle.
	return append(tour, start), nil
}
