// SPDX-License-Identifier: MIT

// Package tsp - cost utilities.
//
// TourCost sums the weights of a closed tour over a mapgraph.Map. A pair of
// consecutive vertices without an edge (weight +Inf) makes the tour infeasible
// on that map, which happens when the MST walk shortcuts across a non-complete map.
//
// The sum is rounded to 1e-9 so identical tours compare equal across platforms.
//
// Complexity: O(n) time for a tour of length n+1, O(1) extra space.
package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvtour/mapgraph"
	"github.com/katalvlaran/lvtour/prim_kruskal"
)

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// TourCost returns the total weight of tour on m.
//
// Contract:
//   - len(tour) >= 2 and every entry is in [0..n-1], else ErrInvalidTour.
//   - Each hop tour[i]→tour[i+1] must be an edge of m (or a repeat of the same
//     vertex, weight 0), else ErrMissingEdge.
func TourCost(m *mapgraph.Map, tour []int) (float64, error) {
	if m == nil {
		return 0, prim_kruskal.ErrInvalidGraph
	}
	if len(tour) < 2 {
		return 0, fmt.Errorf("TourCost: length %d: %w", len(tour), ErrInvalidTour)
	}

	n := m.Order()
	var sum float64
	for i := 0; i+1 < len(tour); i++ {
		u, v := tour[i], tour[i+1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, fmt.Errorf("TourCost: hop %d→%d: %w", u, v, ErrInvalidTour)
		}
		w := m.Weight(u, v)
		if math.IsInf(w, 1) {
			return 0, fmt.Errorf("TourCost: hop %d→%d: %w", u, v, ErrMissingEdge)
		}
		sum += w
	}

	return round1e9(sum), nil
}

// round1e9 rounds x to 1e-9 precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
