// SPDX-License-Identifier: MIT
//
// Package mapgraph declares the Map, Vertex and Edge types shared by the MST and
// tour packages, together with the per-run algorithm State.
//
// Errors:
//
//	ErrEmptyGraph        - the map has no vertices.
//	ErrVertexOutOfRange  - a rank is outside [0..n-1].
//	ErrNegativeWeight    - a negative edge weight was supplied.
//	ErrBadWeight         - a NaN or infinite edge weight was supplied.
//	ErrSelfLoop          - an edge joins a vertex to itself.
//	ErrDuplicateEdge     - the unordered pair already carries an edge.
//	ErrNonSquare         - a matrix row has the wrong length.
//	ErrAsymmetric        - matrix[i][j] != matrix[j][i].
//	ErrStateSize         - a State does not match the map order.
package mapgraph

import (
	"errors"
	"math"
	"sync"
)

// Sentinel errors for map construction and state checks.
var (
	// ErrEmptyGraph indicates an algorithm was asked to run on a map with no vertices.
	ErrEmptyGraph = errors.New("mapgraph: map has no vertices")

	// ErrVertexOutOfRange indicates a vertex rank outside [0..n-1].
	ErrVertexOutOfRange = errors.New("mapgraph: vertex rank out of range")

	// ErrNegativeWeight indicates a negative edge weight.
	ErrNegativeWeight = errors.New("mapgraph: negative edge weight")

	// ErrBadWeight indicates a NaN or infinite edge weight.
	ErrBadWeight = errors.New("mapgraph: edge weight is NaN or infinite")

	// ErrSelfLoop indicates an edge from a vertex to itself.
	ErrSelfLoop = errors.New("mapgraph: self-loop not allowed")

	// ErrDuplicateEdge indicates a second edge between the same pair of vertices.
	ErrDuplicateEdge = errors.New("mapgraph: duplicate edge")

	// ErrNonSquare indicates a matrix that is not n×n.
	ErrNonSquare = errors.New("mapgraph: matrix is not square")

	// ErrAsymmetric indicates a matrix with m[i][j] != m[j][i].
	ErrAsymmetric = errors.New("mapgraph: matrix is not symmetric")

	// ErrStateSize indicates a State sized for a different number of vertices.
	ErrStateSize = errors.New("mapgraph: state size does not match map order")
)

// NoVertex marks an absent vertex reference (no parent, no root).
const NoVertex = -1

// Inf is the weight used for "no edge" entries of the adjacency matrix and for
// the initial cost of every vertex.
var Inf = math.Inf(1)

// Vertex is one entry of the adjacency list.
//
// Rank is unique within its Map and doubles as the row/column index of the
// adjacency matrix. Neighbors holds the ranks of adjacent vertices in ascending
// order; it does not own them.
type Vertex struct {
	Rank      int
	Neighbors []int
}

// Edge is an undirected weighted edge. Maps always store U < V.
type Edge struct {
	U      int
	V      int
	Weight float64
}

// Other returns the endpoint of e opposite to r.
func (e Edge) Other(r int) int {
	if e.U == r {
		return e.V
	}

	return e.U
}

// Map is the graph model consumed by Prim, Kruskal and the tour builder.
//
// A Map is built once (New + AddEdge, or FromMatrix) and then treated as
// read-only: algorithms keep their mutable bookkeeping in a State. Reads are
// safe from several goroutines as long as no AddEdge runs concurrently.
type Map struct {
	vertices []Vertex
	adjMat   [][]float64
	edges    []Edge

	// sortMu guards the lazy sort in Edges.
	sortMu sync.Mutex
	// sorted reports whether edges is already in canonical order.
	sorted bool
}
