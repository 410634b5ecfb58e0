// Package builder generates mapgraph.Map instances for tests, benchmarks, and the CLI.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – builderConfig:  holds the RNG, the square side and the weight ceiling.
//   - Generators:
//     – Points:          n uniform points in [0,side)².
//     – Euclidean:       complete map with Euclidean distances (a metric).
//     – RandomConnected: random spanning tree plus extra random edges.
//     – Components:      disjoint union of complete components (disconnected maps).
//
// Guarantees:
//
//   - Determinism: the same seed and options always yield the same map.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Runtime errors are the sentinels in errors.go, wrapped with %w and the method name.
package builder
