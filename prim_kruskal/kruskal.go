// SPDX-License-Identifier: MIT

// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Tree algorithm.
// It walks the map's canonically sorted edge list and keeps an edge whenever it joins two
// different disjoint-set components.
package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/lvtour/disjoint"
	"github.com/katalvlaran/lvtour/mapgraph"
)

// Kruskal computes the Minimum Spanning Tree (MST) of m and returns the accepted edges in
// acceptance order. It uses the disjoint-set stored in st.Pi / st.Height.
//
// Error Conditions:
//   - ErrInvalidGraph        : if m is nil.
//   - mapgraph.ErrEmptyGraph : if m has no vertices.
//   - mapgraph.ErrStateSize  : if st does not match m.
//   - ErrDisconnected        : if fewer than |V|-1 edges were accepted. The returned slice is
//     then a minimum spanning forest with (|A|-1)+(|B|-1)+… edges.
//
// Steps:
//  1. MakeSet for every vertex of the adjacency list.
//  2. For each edge (u,v) of m.Edges() (ascending weight, deterministic ties):
//     if Find(u) != Find(v), accept the edge and Union(u, v).
//  3. Stop early once |V|-1 edges are accepted.
//
// Complexity: O(E log E + α(V)·E). Memory: O(V).
func Kruskal(m *mapgraph.Map, st *mapgraph.State) ([]mapgraph.Edge, error) {
	// 1. Validate inputs.
	if err := validate(m, st); err != nil {
		return nil, err
	}

	// 2. Singleton set per vertex.
	for _, vert := range m.Vertices() {
		disjoint.MakeSet(st, vert.Rank)
	}

	// 3. Scan edges in canonical order.
	n := m.Order()
	x := make([]mapgraph.Edge, 0, n-1)
	for _, e := range m.Edges() {
		if len(x) == n-1 {
			break
		}
		if disjoint.Find(st, e.U) != disjoint.Find(st, e.V) {
			x = append(x, e)
			disjoint.Union(st, e.U, e.V)
		}
	}

	// 4. Fewer than n-1 edges: the map is a forest of several components.
	if len(x) < n-1 {
		return x, fmt.Errorf("Kruskal: %d edges for %d vertices (%d components): %w",
			len(x), n, disjoint.Count(st), ErrDisconnected)
	}

	return x, nil
}
