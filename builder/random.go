// SPDX-License-Identifier: MIT
// Package: lvtour/builder
//
// random.go - random connected maps and disjoint unions of complete components.
//
// RandomConnected model:
//   - Shuffle the ranks, then attach each vertex perm[i] (i ≥ 1) to a uniformly chosen
//     earlier perm[j], j < i. The result is a random spanning tree, so the map is connected.
//   - Add `extra` further edges drawn without replacement from the missing pairs
//     (fewer when the map becomes complete first).
//   - Weights are integers in [1..maxWeight].
//
// Components model:
//   - sizes[k] consecutive ranks form a complete subgraph; no edges cross components.
//   - A size-1 component is an isolated vertex.
//
// Both require an RNG (ErrNeedRandSource) and never panic.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvtour/mapgraph"
)

// RandomConnected returns a connected map over n vertices with n-1+extra edges
// (capped at n(n-1)/2).
//
// Complexity: O(n²) time and space.
func RandomConnected(n, extra int, opts ...BuilderOption) (*mapgraph.Map, error) {
	cfg := newBuilderConfig(opts...)
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d < 1: %w", methodRandomConnected, n, ErrTooFewVertices)
	}
	if extra < 0 {
		return nil, fmt.Errorf("%s: extra=%d < 0: %w", methodRandomConnected, extra, ErrTooFewVertices)
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandomConnected, ErrNeedRandSource)
	}

	m, err := mapgraph.New(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandomConnected, err)
	}

	// 1) Random spanning tree.
	perm := cfg.rng.Perm(n)
	for i := 1; i < n; i++ {
		j := cfg.rng.Intn(i)
		if err = m.AddEdge(perm[i], perm[j], cfg.weight()); err != nil {
			return nil, fmt.Errorf("%s: %w", methodRandomConnected, err)
		}
	}

	// 2) Extra edges, sampled without replacement from the missing pairs.
	if extra == 0 {
		return m, nil
	}
	missing := make([][2]int, 0, n*(n-1)/2-(n-1))
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if !m.HasEdge(u, v) {
				missing = append(missing, [2]int{u, v})
			}
		}
	}
	cfg.rng.Shuffle(len(missing), func(a, b int) { missing[a], missing[b] = missing[b], missing[a] })
	if extra > len(missing) {
		extra = len(missing)
	}
	for _, p := range missing[:extra] {
		if err = m.AddEdge(p[0], p[1], cfg.weight()); err != nil {
			return nil, fmt.Errorf("%s: %w", methodRandomConnected, err)
		}
	}

	return m, nil
}

// Components returns a map made of len(sizes) complete components. Component k
// occupies the ranks following component k-1.
//
// Complexity: O(Σ sizes²) time.
func Components(sizes []int, opts ...BuilderOption) (*mapgraph.Map, error) {
	cfg := newBuilderConfig(opts...)
	if len(sizes) == 0 {
		return nil, fmt.Errorf("%s: no components: %w", methodComponents, ErrTooFewVertices)
	}
	n := 0
	for k, s := range sizes {
		if s < 1 {
			return nil, fmt.Errorf("%s: component %d has size %d: %w", methodComponents, k, s, ErrTooFewVertices)
		}
		n += s
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodComponents, ErrNeedRandSource)
	}

	m, err := mapgraph.New(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodComponents, err)
	}
	base := 0
	for _, s := range sizes {
		for u := base; u < base+s; u++ {
			for v := u + 1; v < base+s; v++ {
				if err = m.AddEdge(u, v, cfg.weight()); err != nil {
					return nil, fmt.Errorf("%s: %w", methodComponents, err)
				}
			}
		}
		base += s
	}

	return m, nil
}
