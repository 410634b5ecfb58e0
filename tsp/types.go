// SPDX-License-Identifier: MIT

package tsp

import (
	"errors"
	"time"

	"github.com/katalvlaran/lvtour/prim_kruskal"
)

// Sentinel errors returned by the tour builder and its helpers.
var (
	// ErrIncompleteTree is returned when the child lists in the State do not reach every
	// vertex from the start, so no Hamiltonian tour can be read off the tree.
	ErrIncompleteTree = errors.New("tsp: spanning tree does not cover every vertex")

	// ErrStartOutOfRange is returned when the start vertex is outside [0..n-1].
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")

	// ErrMissingEdge is returned when two consecutive tour vertices share no edge.
	ErrMissingEdge = errors.New("tsp: tour uses a missing edge")

	// ErrInvalidTour is returned when a tour is not a closed Hamiltonian cycle.
	ErrInvalidTour = errors.New("tsp: invalid tour")

	// ErrInvalidOptions is returned for negative Eps or TwoOptMaxIters.
	ErrInvalidOptions = errors.New("tsp: invalid options")
)

// DefaultEps is the improvement threshold for 2-opt: a move is taken only when it
// lowers the cost by more than Eps.
const DefaultEps = 1e-12

// TSResult holds the outcome of Solve.
type TSResult struct {
	// Tour is the sequence of vertex ranks, starting and ending at the start vertex.
	// For n vertices, len(Tour) == n+1.
	Tour []int

	// Cost is the total weight of the cycle, rounded to 1e-9.
	Cost float64

	// MSTWeight is the weight of the spanning tree the tour was read from.
	MSTWeight float64

	// Method is the MST algorithm used (prim_kruskal.MethodPrim or MethodKruskal).
	Method string

	// Improved reports whether the 2-opt pass changed the tour.
	Improved bool
}

// Observer receives one callback per Solve call, successful or not.
type Observer interface {
	ObserveSolve(method string, res TSResult, elapsed time.Duration, err error)
}

// Options configures Solve.
type Options struct {
	// Method selects the MST algorithm: prim_kruskal.MethodPrim or MethodKruskal.
	Method string

	// StartVertex is the rank the tour starts and ends at. The tree is rooted there.
	StartVertex int

	// EnableLocalSearch runs TwoOpt on the MST-walk tour.
	EnableLocalSearch bool

	// TwoOptMaxIters caps accepted 2-opt moves; 0 means run to a local optimum.
	TwoOptMaxIters int

	// Eps is the strict improvement threshold for 2-opt moves.
	Eps float64

	// Observer, if non-nil, is told about every Solve call.
	Observer Observer
}

// DefaultOptions returns Options for a Prim-based tour from vertex 0 with no local search.
func DefaultOptions() Options {
	return Options{
		Method:      prim_kruskal.MethodPrim,
		StartVertex: 0,
		Eps:         DefaultEps,
	}
}

// validateOptions checks Options fields that do not depend on the map.
func validateOptions(opts Options) error {
	if opts.Eps < 0 || opts.TwoOptMaxIters < 0 {
		return ErrInvalidOptions
	}
	switch opts.Method {
	case prim_kruskal.MethodPrim, prim_kruskal.MethodKruskal:
		return nil
	default:
		return prim_kruskal.ErrUnknownMethod
	}
}
