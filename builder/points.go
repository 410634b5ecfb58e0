// SPDX-License-Identifier: MIT
// Package: lvtour/builder
//
// points.go - random points and Euclidean complete maps.
//
// Contract:
//   - Points: n ≥ 1 (else ErrTooFewVertices), rng required (else ErrNeedRandSource).
//   - Euclidean: at least one point; every coordinate finite (else ErrBadPoint).
//     Vertex i is points[i]; every pair {i,j} gets weight hypot(xi-xj, yi-yj).
//
// Determinism:
//   - Points draws x then y for i ascending.
//   - Euclidean adds edges for i asc, j asc (j>i).

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvtour/mapgraph"
)

// Points samples n points uniformly from [0,side)².
//
// Complexity: O(n) time and space.
func Points(n int, opts ...BuilderOption) ([][2]float64, error) {
	cfg := newBuilderConfig(opts...)
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d < 1: %w", methodPoints, n, ErrTooFewVertices)
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodPoints, ErrNeedRandSource)
	}

	pts := make([][2]float64, n)
	for i := range pts {
		pts[i][0] = cfg.rng.Float64() * cfg.side
		pts[i][1] = cfg.rng.Float64() * cfg.side
	}

	return pts, nil
}

// Euclidean returns the complete map over points with straight-line distances.
// The weights satisfy the triangle inequality, so tsp.Solve on the result keeps
// its factor-2 guarantee.
//
// Complexity: O(n²) time and space.
func Euclidean(points [][2]float64) (*mapgraph.Map, error) {
	n := len(points)
	if n < 1 {
		return nil, fmt.Errorf("%s: no points: %w", methodEuclidean, ErrTooFewVertices)
	}
	for i, p := range points {
		if !finite(p[0]) || !finite(p[1]) {
			return nil, fmt.Errorf("%s: point %d (%v, %v): %w", methodEuclidean, i, p[0], p[1], ErrBadPoint)
		}
	}

	m, err := mapgraph.New(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodEuclidean, err)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := math.Hypot(points[i][0]-points[j][0], points[i][1]-points[j][1])
			if err = m.AddEdge(i, j, d); err != nil {
				return nil, fmt.Errorf("%s: %w", methodEuclidean, err)
			}
		}
	}

	return m, nil
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
