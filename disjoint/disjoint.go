// SPDX-License-Identifier: MIT

// Package disjoint implements a union-find structure that lives directly in the
// Pi and Height slices of a mapgraph.State.
//
// There are no handles: a vertex is its rank, Pi[v] is its parent in the set
// forest (itself for a root) and Height[v] bounds the height of the tree rooted
// at v. Find compresses paths iteratively and Union attaches the shorter root
// under the taller one, so trees stay O(log n) high and no call recurses.
//
// Callers must run MakeSet exactly once per vertex before Find or Union.
// A State is not safe for concurrent use.
package disjoint

import "github.com/katalvlaran/lvtour/mapgraph"

// MakeSet turns v into a singleton set: Pi[v] = v, Height[v] = 0.
func MakeSet(st *mapgraph.State, v int) {
	st.Pi[v] = v
	st.Height[v] = 0
}

// MakeSets runs MakeSet for every vertex of st.
func MakeSets(st *mapgraph.State) {
	for v := range st.Pi {
		MakeSet(st, v)
	}
}

// Find returns the root of the set containing v. Every vertex on the path from
// v to the root is re-pointed directly at the root.
//
// Two passes: the first walks to the root, the second rewrites parents.
func Find(st *mapgraph.State, v int) int {
	pi := st.Pi

	root := v
	for pi[root] != root {
		root = pi[root]
	}

	for pi[v] != root {
		next := pi[v]
		pi[v] = root
		v = next
	}

	return root
}

// Union merges the sets of u and v and reports whether they were disjoint.
//
// The root with the smaller height goes under the other. On equal heights the
// root of u goes under the root of v, whose height grows by one.
func Union(st *mapgraph.State, u, v int) bool {
	ru, rv := Find(st, u), Find(st, v)
	if ru == rv {
		return false
	}

	switch hu, hv := st.Height[ru], st.Height[rv]; {
	case hu > hv:
		st.Pi[rv] = ru
	case hu < hv:
		st.Pi[ru] = rv
	default:
		st.Pi[ru] = rv
		st.Height[rv]++
	}

	return true
}

// Same reports whether u and v belong to the same set.
func Same(st *mapgraph.State, u, v int) bool {
	return Find(st, u) == Find(st, v)
}

// Count returns the number of sets among the vertices that went through MakeSet.
func Count(st *mapgraph.State) int {
	n := 0
	for v, p := range st.Pi {
		if p == v {
			n++
		}
	}

	return n
}
