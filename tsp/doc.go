// Package tsp builds approximate Travelling Salesman tours from minimum spanning trees.
//
// The tour is the depth-first preorder walk of an MST rooted at the start vertex,
// closed by returning to the start:
//
//   - Tour            - read a closed tour off the child lists of a mapgraph.State.
//   - TourCost        - price a tour on a mapgraph.Map (ErrMissingEdge on a gap).
//   - ValidateTour    - check a closed Hamiltonian cycle.
//   - TwoOpt          - first-improvement 2-opt on a symmetric map.
//   - Solve           - MST (Prim or Kruskal) → Tour → TourCost → optional TwoOpt.
//
// On a complete map whose weights satisfy the triangle inequality (for example
// Euclidean distances from builder.Euclidean) the MST walk costs at most twice the
// MST weight, and so at most twice the optimal tour.
//
// Solve reports each call to an optional Observer; metrics.Recorder is the
// Prometheus-backed implementation.
package tsp
