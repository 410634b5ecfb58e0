// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvtour/mapgraph"
)

// ParentsToChildren fills st.Children from the parent pointers in st.Prev, as left by Prim.
// Children are listed in ascending rank order.
//
// Every vertex with a parent must reach root by following Prev; root itself must have
// none. Vertices without a parent other than root (outside root's component) are left
// detached. Violations return ErrNotATree.
//
// Complexity: O(V).
func ParentsToChildren(st *mapgraph.State, root int) error {
	n := st.Len()
	if root < 0 || root >= n {
		return fmt.Errorf("ParentsToChildren: root %d of %d vertices: %w", root, n, ErrRootOutOfRange)
	}
	if st.Prev[root] != mapgraph.NoVertex {
		return fmt.Errorf("ParentsToChildren: root %d has parent %d: %w", root, st.Prev[root], ErrNotATree)
	}

	for v := range st.Children {
		st.Children[v] = st.Children[v][:0]
	}
	parented := 0
	for v, p := range st.Prev {
		if p == mapgraph.NoVertex {
			continue
		}
		if p < 0 || p >= n || p == v {
			return fmt.Errorf("ParentsToChildren: vertex %d has parent %d: %w", v, p, ErrNotATree)
		}
		st.Children[p] = append(st.Children[p], v)
		parented++
	}

	// Each vertex has one parent, so a walk down from root meets every vertex at most
	// once. Parented vertices it misses sit on a cycle that never reaches root.
	if reached := countBelow(st, root); reached != parented {
		return fmt.Errorf("ParentsToChildren: %d of %d parented vertices reach root %d: %w",
			reached, parented, root, ErrNotATree)
	}

	return nil
}

// OrientEdges turns an undirected tree edge list into Prev pointers and child lists rooted
// at root. Children are listed in ascending rank order. Edges outside root's component are
// ignored, so a Kruskal forest yields the tree of root's component.
//
// Returns ErrRootOutOfRange, mapgraph.ErrVertexOutOfRange for a bad endpoint, or ErrNotATree
// when root's component contains a cycle or a parallel edge.
//
// Complexity: O(V + E).
func OrientEdges(st *mapgraph.State, n int, edges []mapgraph.Edge, root int) error {
	if err := mapgraph.CheckState(st, n); err != nil {
		return err
	}
	if root < 0 || root >= n {
		return fmt.Errorf("OrientEdges: root %d of %d vertices: %w", root, n, ErrRootOutOfRange)
	}

	// adj[v] lists the indices of the edges incident to v.
	adj := make([][]int, n)
	for i, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return fmt.Errorf("OrientEdges: edge %d-%d: %w", e.U, e.V, mapgraph.ErrVertexOutOfRange)
		}
		if e.U == e.V {
			return fmt.Errorf("OrientEdges: self-loop on %d: %w", e.U, ErrNotATree)
		}
		adj[e.U] = append(adj[e.U], i)
		adj[e.V] = append(adj[e.V], i)
	}

	for v := 0; v < n; v++ {
		st.Prev[v] = mapgraph.NoVertex
		st.Visited[v] = false
		st.Children[v] = st.Children[v][:0]
	}

	// Iterative traversal from root; the first edge reaching a vertex becomes its parent link.
	stack := []int{root}
	st.Visited[root] = true
	reached := 1
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, i := range adj[v] {
			w := edges[i].Other(v)
			if st.Visited[w] {
				continue
			}
			st.Visited[w] = true
			st.Prev[w] = v
			st.Children[v] = append(st.Children[v], w)
			stack = append(stack, w)
			reached++
		}
	}

	// A tree on k vertices has exactly k-1 edges; more means a cycle or a parallel edge.
	inside := 0
	for _, e := range edges {
		if st.Visited[e.U] && st.Visited[e.V] {
			inside++
		}
	}
	if inside != reached-1 {
		return fmt.Errorf("OrientEdges: %d edges among %d reachable vertices: %w", inside, reached, ErrNotATree)
	}

	for v := range st.Children {
		sort.Ints(st.Children[v])
	}

	return nil
}

// countBelow returns how many vertices hang below root in st.Children.
func countBelow(st *mapgraph.State, root int) int {
	count := 0
	stack := append([]int(nil), st.Children[root]...)
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++
		stack = append(stack, st.Children[v]...)
	}

	return count
}

// TreeEdges lists the edges {v, Prev[v]} of the tree stored in st, ordered by child rank.
// Edges carry U < V and the weight from m.
func TreeEdges(m *mapgraph.Map, st *mapgraph.State) []mapgraph.Edge {
	edges := make([]mapgraph.Edge, 0, st.Len())
	for v, p := range st.Prev {
		if p == mapgraph.NoVertex {
			continue
		}
		u, w := p, v
		if u > w {
			u, w = w, u
		}
		edges = append(edges, mapgraph.Edge{U: u, V: w, Weight: m.Weight(u, w)})
	}

	return edges
}

// TreeWeight returns Σ adjMat[v][Prev[v]] over every vertex with a parent.
func TreeWeight(m *mapgraph.Map, st *mapgraph.State) float64 {
	var sum float64
	for v, p := range st.Prev {
		if p != mapgraph.NoVertex {
			sum += m.Weight(v, p)
		}
	}

	return sum
}

// EdgesWeight returns the sum of the edge weights.
func EdgesWeight(edges []mapgraph.Edge) float64 {
	var sum float64
	for _, e := range edges {
		sum += e.Weight
	}

	return sum
}
