// SPDX-License-Identifier: MIT

// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvtour/mapgraph"
)

// ErrInvalidGraph indicates that a nil map was supplied.
var ErrInvalidGraph = errors.New("prim_kruskal: map is nil")

// ErrDisconnected indicates that the map is not connected, so no spanning tree covers
// every vertex. The partial result (Prim state, Kruskal forest) is still available.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrRootOutOfRange indicates a root rank outside [0..n-1].
var ErrRootOutOfRange = errors.New("prim_kruskal: root out of range")

// ErrNotATree indicates parent pointers or an edge list that do not form a tree
// rooted at the requested vertex (cycle, parallel edge, or parent on the root).
var ErrNotATree = errors.New("prim_kruskal: structure is not a rooted tree")

// ErrUnknownMethod indicates an MSTOptions.Method other than MethodPrim or MethodKruskal.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// MethodPrim selects Prim's algorithm (grow from a root using an indexed min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sorted edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run and where the resulting tree is rooted.
// Use DefaultOptions() to get a default setup (Kruskal, root 0).
//
// Fields:
//
//	Method string - one of MethodPrim or MethodKruskal.
//	Root   int    - Prim's start vertex, and the root of the child lists for both methods.
//
// Complexity: O(E log V) for Prim, O(E log E + α(V)·E) for Kruskal.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the vertex the tree is grown from (Prim) and oriented from (both).
	Root int
}

// Option configures MSTOptions. All Option functions should modify the pointed MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the root vertex.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal by default:
//
//	– Method = MethodKruskal
//	– Root   = 0 (the first vertex of the adjacency list).
//
// Complexity: O(1) to construct.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   0,
	}
}

// Result is what Compute produced.
type Result struct {
	// Method that built the tree.
	Method string

	// Root of the child lists written into the State.
	Root int

	// Edges of the tree. On a disconnected map only the root's component is kept,
	// whichever method ran.
	Edges []mapgraph.Edge

	// Weight is the sum of Edges' weights.
	Weight float64
}

// Compute runs the selected MST algorithm on m and converts the tree into child
// lists rooted at opts.Root, ready for tsp.Tour.
//
//	– MethodPrim:    PrimFrom(m, st, Root), then ParentsToChildren(st, Root).
//	– MethodKruskal: Kruskal(m, st), then OrientEdges(st, n, edges, Root).
//	– Otherwise:     ErrUnknownMethod.
//
// On ErrDisconnected the partial Result (forest edges, child lists of the root's
// component) is returned alongside the error.
func Compute(m *mapgraph.Map, st *mapgraph.State, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	res := Result{Method: o.Method, Root: o.Root}

	var mstErr error
	switch o.Method {
	case MethodPrim:
		mstErr = PrimFrom(m, st, o.Root)
		if mstErr != nil && !errors.Is(mstErr, ErrDisconnected) {
			return res, mstErr
		}
		if err := ParentsToChildren(st, o.Root); err != nil {
			return res, err
		}
		res.Edges = TreeEdges(m, st)
	case MethodKruskal:
		res.Edges, mstErr = Kruskal(m, st)
		if mstErr != nil && !errors.Is(mstErr, ErrDisconnected) {
			return res, mstErr
		}
		if err := OrientEdges(st, m.Order(), res.Edges, o.Root); err != nil {
			return res, err
		}
		if mstErr != nil {
			// Keep the root's component only, as Prim does.
			res.Edges = TreeEdges(m, st)
		}
	default:
		return res, fmt.Errorf("Compute: %q: %w", o.Method, ErrUnknownMethod)
	}
	res.Weight = EdgesWeight(res.Edges)

	return res, mstErr
}

// validate runs the checks shared by Prim and Kruskal.
func validate(m *mapgraph.Map, st *mapgraph.State) error {
	if m == nil {
		return ErrInvalidGraph
	}
	if m.Order() == 0 {
		return mapgraph.ErrEmptyGraph
	}

	return mapgraph.CheckState(st, m.Order())
}
