// SPDX-License-Identifier: MIT

// Package prim_kruskal provides an implementation of Prim’s Minimum Spanning Tree (MST) algorithm.
// It grows the tree from one vertex, keeping every outside vertex in an indexed min-heap keyed by
// the cheapest known edge into the tree.
package prim_kruskal

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvtour/mapgraph"
	"github.com/katalvlaran/lvtour/pqueue"
)

// Prim runs PrimFrom rooted at the first vertex of the adjacency list.
func Prim(m *mapgraph.Map, st *mapgraph.State) error {
	if err := validate(m, st); err != nil {
		return err
	}

	return PrimFrom(m, st, m.Vertices()[0].Rank)
}

// PrimFrom computes a minimum spanning tree of m rooted at root. There is no
// returned tree: st.Prev holds each vertex's parent, st.Cost the weight of the
// edge to it, and st.Visited is true for every vertex.
//
// Error Conditions:
//   - ErrInvalidGraph         : if m is nil.
//   - mapgraph.ErrEmptyGraph  : if m has no vertices.
//   - mapgraph.ErrStateSize   : if st does not match m.
//   - ErrRootOutOfRange       : if root ∉ [0..n-1].
//   - ErrDisconnected         : if some vertex is unreachable from root. Those vertices keep
//     Cost=+Inf and Prev=NoVertex; the rest of st is a valid tree of root's component.
//
// Steps:
//  1. Reset every vertex: Visited=false, Cost=+Inf, Prev=NoVertex.
//  2. Seed: Cost[root] = 0.
//  3. Build a priority queue over all vertices keyed by Cost.
//  4. Until the queue is empty:
//     a. DeleteMin yields v; mark it visited.
//     b. If Cost[v] is +Inf, v lies outside root's component: make no offers.
//     c. For every unvisited neighbor w with adjMat[v][w] < Cost[w]:
//     Prev[w] = v and DecreaseKey(w, adjMat[v][w]).
//
// Complexity: O((V + E) log V) time, O(V) extra memory.
func PrimFrom(m *mapgraph.Map, st *mapgraph.State, root int) error {
	// 1. Validate inputs.
	if err := validate(m, st); err != nil {
		return err
	}
	n := m.Order()
	if root < 0 || root >= n {
		return fmt.Errorf("Prim: root %d of %d vertices: %w", root, n, ErrRootOutOfRange)
	}

	// 2. Reset algorithm fields for every vertex of the adjacency list.
	adj := m.Vertices()
	order := make([]int, n)
	for i, vert := range adj {
		st.Visited[vert.Rank] = false
		st.Cost[vert.Rank] = mapgraph.Inf
		st.Prev[vert.Rank] = mapgraph.NoVertex
		order[i] = vert.Rank
	}
	st.Cost[root] = 0

	// 3. Priority queue keyed by st.Cost (shared slice).
	q, err := pqueue.New(order, st.Cost)
	if err != nil {
		return err
	}

	// 4. Main loop.
	reached := 0
	for !q.IsEmpty() {
		v, err := q.DeleteMin()
		if err != nil {
			return err
		}
		st.Visited[v] = true
		if math.IsInf(st.Cost[v], 1) {
			continue
		}
		reached++

		// Offer every unvisited neighbor the edge from v.
		for _, w := range m.Neighbors(v) {
			if st.Visited[w] {
				continue
			}
			if wt := m.Weight(v, w); wt < st.Cost[w] {
				st.Prev[w] = v
				if err = q.DecreaseKey(w, wt); err != nil {
					return err
				}
			}
		}
	}

	if reached < n {
		return fmt.Errorf("Prim: %d of %d vertices reachable from %d: %w", reached, n, root, ErrDisconnected)
	}

	return nil
}
