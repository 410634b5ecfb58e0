// Package lvtour builds approximate travelling-salesman tours from minimum
// spanning trees.
//
// A map is an undirected weighted graph whose vertices are addressed by rank
// 0..n-1. A spanning tree is grown on it with Prim (indexed min-heap with
// decrease-key) or Kruskal (sorted edges and a disjoint-set forest), rooted at
// the start vertex, and walked in depth-first preorder. On metric maps the walk
// is at most twice the MST weight and so at most twice the optimal tour.
//
// Packages:
//
//	mapgraph/     - Map (adjacency matrix, sorted neighbor lists, canonical edge order)
//	                and State (per-run algorithm fields: cost, prev, visited, pi, height, children)
//	pqueue/       - indexed min-priority queue over vertex ranks with DecreaseKey
//	disjoint/     - disjoint-set forest (union by height, iterative path compression)
//	prim_kruskal/ - Prim, Kruskal, tree conversion and Compute
//	tsp/          - preorder tour, tour cost, 2-opt and Solve
//	builder/      - random and Euclidean map generators
//	mapio/        - YAML map files over afero
//	metrics/      - Prometheus recorder for Solve
//	cmd/lvtour/   - command-line front end
//
// Every algorithm takes its State explicitly; a Map is read-only while
// algorithms run, so concurrent runs need only separate States.
package lvtour
