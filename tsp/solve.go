// SPDX-License-Identifier: MIT

// Package tsp - top-level dispatcher.
//
// Solve runs the whole pipeline on a map:
//
//  1. Build an MST with the selected method, rooted at opts.StartVertex
//     (prim_kruskal.Compute writes the child lists into a fresh State).
//  2. Read the preorder tour off the tree (Tour).
//  3. Price it (TourCost).
//  4. Optionally improve it with 2-opt (TwoOpt).
//
// Every call, failed or not, is reported to opts.Observer when one is set.
package tsp

import (
	"fmt"
	"time"

	"github.com/katalvlaran/lvtour/mapgraph"
	"github.com/katalvlaran/lvtour/prim_kruskal"
)

// Solve builds an MST-walk tour on m and returns it with its cost and the MST weight.
//
// Errors:
//   - prim_kruskal.ErrInvalidGraph / mapgraph.ErrEmptyGraph for a nil or empty map,
//   - ErrStartOutOfRange, ErrInvalidOptions, prim_kruskal.ErrUnknownMethod for bad options,
//   - prim_kruskal.ErrDisconnected when no spanning tree exists,
//   - ErrMissingEdge when the walk shortcuts over an edge the map lacks.
func Solve(m *mapgraph.Map, opts Options) (res TSResult, err error) {
	began := time.Now()
	if opts.Observer != nil {
		defer func() {
			opts.Observer.ObserveSolve(opts.Method, res, time.Since(began), err)
		}()
	}

	if err = validateOptions(opts); err != nil {
		return TSResult{}, err
	}
	if m == nil {
		return TSResult{}, prim_kruskal.ErrInvalidGraph
	}
	n := m.Order()
	if n == 0 {
		return TSResult{}, mapgraph.ErrEmptyGraph
	}
	if opts.StartVertex < 0 || opts.StartVertex >= n {
		return TSResult{}, fmt.Errorf("Solve: start %d of %d vertices: %w", opts.StartVertex, n, ErrStartOutOfRange)
	}

	// 1) MST rooted at the start vertex.
	st := m.NewState()
	mst, err := prim_kruskal.Compute(m, st,
		prim_kruskal.WithMethod(opts.Method),
		prim_kruskal.WithRoot(opts.StartVertex))
	if err != nil {
		return TSResult{}, fmt.Errorf("Solve: %w", err)
	}

	// 2) Preorder walk.
	tour, err := Tour(m, st, opts.StartVertex)
	if err != nil {
		return TSResult{}, err
	}

	// 3) Price the walk.
	cost, err := TourCost(m, tour)
	if err != nil {
		return TSResult{}, err
	}

	res = TSResult{
		Tour:      tour,
		Cost:      cost,
		MSTWeight: mst.Weight,
		Method:    opts.Method,
	}

	// 4) Optional 2-opt. Three or fewer vertices admit a single cycle.
	if opts.EnableLocalSearch && n >= 4 {
		improved, c, changed, err2 := TwoOpt(m, tour, opts)
		if err2 != nil {
			return TSResult{}, err2
		}
		res.Tour, res.Cost, res.Improved = improved, c, changed
	}

	return res, nil
}
