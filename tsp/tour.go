// SPDX-License-Identifier: MIT

package tsp

import "fmt"

// ValidateTour checks that tour is a closed Hamiltonian cycle over n vertices that
// starts and ends at start:
//
//	– len(tour) == n+1,
//	– tour[0] == tour[n] == start,
//	– tour[0..n-1] is a permutation of [0..n-1].
//
// Complexity: O(n) time, O(n) extra space.
func ValidateTour(tour []int, n, start int) error {
	if n <= 0 || len(tour) != n+1 {
		return fmt.Errorf("ValidateTour: length %d for %d vertices: %w", len(tour), n, ErrInvalidTour)
	}
	if start < 0 || start >= n {
		return fmt.Errorf("ValidateTour: start %d: %w", start, ErrStartOutOfRange)
	}
	if tour[0] != start || tour[n] != start {
		return fmt.Errorf("ValidateTour: endpoints %d,%d want %d: %w", tour[0], tour[n], start, ErrInvalidTour)
	}

	seen := make([]bool, n)
	for _, v := range tour[:n] {
		if v < 0 || v >= n || seen[v] {
			return fmt.Errorf("ValidateTour: vertex %d: %w", v, ErrInvalidTour)
		}
		seen[v] = true
	}

	return nil
}

// reverseArcInPlace reverses tour[i..k] (inclusive). Callers keep 1 ≤ i < k ≤ n-1,
// so the fixed endpoints tour[0] and tour[n] never move.
func reverseArcInPlace(tour []int, i, k int) {
	for i < k {
		tour[i], tour[k] = tour[k], tour[i]
		i++
		k--
	}
}
