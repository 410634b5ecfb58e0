// Package prim_kruskal provides two algorithms for computing the Minimum Spanning Tree (MST)
// of an undirected, non-negatively weighted *mapgraph.Map: Prim’s algorithm and Kruskal’s
// algorithm, plus the conversions that turn either result into a rooted tree.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E such that
//     T connects all vertices in V and the sum of weights of edges in T is minimized.
//
//   - Why it matters here:
//     A preorder walk of an MST is the classic 2-approximation for metric TSP (see package tsp).
//
// Algorithms Provided
//
//   - Prim(m, st) / PrimFrom(m, st, root) error
//
//   - Strategy: keep every vertex in an indexed min-heap (package pqueue) keyed by st.Cost, the
//     cheapest known edge into the tree. Pop the minimum, then lower the keys of its unvisited
//     neighbors with DecreaseKey.
//
//   - Output: no edge list. st.Prev holds the parent of every reached vertex.
//
//   - Complexity: O((V + E) log V) time, O(V) extra space.
//
//   - Kruskal(m, st) ([]mapgraph.Edge, error)
//
//   - Strategy: scan m.Edges() (ascending weight, ties by U+V then U) and keep an edge whenever
//     its endpoints lie in different sets of the disjoint-set stored in st (package disjoint).
//
//   - Complexity: O(E log E + α(V)·E).
//
//   - Determinism: the canonical edge order is total, so equal-weight ties always resolve
//     the same way.
//
// Tree Conversion
//
//   - ParentsToChildren(st, root): Prim's parent pointers → st.Children.
//   - OrientEdges(st, n, edges, root): Kruskal's edge list → st.Prev and st.Children.
//   - TreeEdges, TreeWeight, EdgesWeight: edge list and weight views.
//   - Compute(m, st, opts...): MST + conversion in one call, configured by WithMethod / WithRoot.
//
// State
//
//	All algorithm fields live in a caller-owned *mapgraph.State. The map is only read, so several
//	goroutines may run MSTs over one map concurrently, each with its own State.
//
// Error Conditions
//
//   - ErrInvalidGraph: m is nil.
//   - mapgraph.ErrEmptyGraph: m has no vertices.
//   - mapgraph.ErrStateSize: the State was sized for another map.
//   - ErrRootOutOfRange: root ∉ [0..n-1].
//   - ErrDisconnected: the map has several components. Prim leaves unreachable vertices with
//     Cost=+Inf and Prev=NoVertex; Kruskal returns the spanning forest. Both results stay usable.
//   - ErrNotATree: conversion input is not a tree rooted at root.
//   - ErrUnknownMethod: Compute got a method other than MethodPrim / MethodKruskal.
//
// For examples of usage, see the example_test.go file in this package.
package prim_kruskal
