// SPDX-License-Identifier: MIT

// Package tsp - 2-opt local search.
//
// TwoOpt performs deterministic first-improvement 2-opt on a closed tour over a
// symmetric map. For cut points 1 ≤ i < k ≤ n-1 with a=T[i-1], b=T[i], c=T[k], d=T[k+1]
// the move reverses T[i..k] and changes the cost by
//
//	Δ = w(a,c) + w(b,d) − w(a,b) − w(c,d).
//
// A move is taken only when Δ < −Eps. Moves that would need a missing edge are skipped,
// so a feasible tour stays feasible. The scan restarts after every accepted move.
//
// Complexity: O(n²) candidate checks per pass, O(n) per accepted move.
package tsp

import (
	"math"

	"github.com/katalvlaran/lvtour/mapgraph"
	"github.com/katalvlaran/lvtour/prim_kruskal"
)

// TwoOpt improves tour on m and returns the new tour (same start), its cost, and
// whether any move was accepted. The input slice is not modified.
// opts.TwoOptMaxIters > 0 caps the number of accepted moves.
func TwoOpt(m *mapgraph.Map, tour []int, opts Options) ([]int, float64, bool, error) {
	if m == nil {
		return nil, 0, false, prim_kruskal.ErrInvalidGraph
	}
	if opts.Eps < 0 || opts.TwoOptMaxIters < 0 {
		return nil, 0, false, ErrInvalidOptions
	}
	n := m.Order()
	if err := ValidateTour(tour, n, opts.StartVertex); err != nil {
		return nil, 0, false, err
	}

	cur := make([]int, n+1)
	copy(cur, tour)

	// The starting tour must be feasible on m.
	if _, err := TourCost(m, cur); err != nil {
		return nil, 0, false, err
	}

	accepted := 0
	for {
		improved := false

	scan:
		for i := 1; i <= n-2; i++ {
			for k := i + 1; k <= n-1; k++ {
				a, b, c, d := cur[i-1], cur[i], cur[k], cur[k+1]

				wac := m.Weight(a, c)
				wbd := m.Weight(b, d)
				if math.IsInf(wac, 1) || math.IsInf(wbd, 1) {
					continue
				}
				delta := (wac + wbd) - (m.Weight(a, b) + m.Weight(c, d))
				if delta >= -opts.Eps {
					continue
				}

				reverseArcInPlace(cur, i, k)
				accepted++
				improved = true

				if opts.TwoOptMaxIters > 0 && accepted >= opts.TwoOptMaxIters {
					return finishTwoOpt(m, cur, accepted)
				}

				break scan
			}
		}

		if !improved {
			break
		}
	}

	return finishTwoOpt(m, cur, accepted)
}

// finishTwoOpt sums the final tour once instead of accumulating deltas.
func finishTwoOpt(m *mapgraph.Map, tour []int, accepted int) ([]int, float64, bool, error) {
	cost, err := TourCost(m, tour)
	if err != nil {
		return nil, 0, false, err
	}

	return tour, cost, accepted > 0, nil
}
