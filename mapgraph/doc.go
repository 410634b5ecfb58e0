// Package mapgraph is the graph model behind lvtour: an arena of vertices
// addressed by integer rank, a dense symmetric adjacency matrix and an edge
// list kept in one canonical ascending-weight order.
//
// What & Why
//
//   - Ranks are 0..n-1 and double as matrix indices, so parent/child links are
//     plain ints and no vertex ever owns another.
//   - The matrix holds +Inf where no edge exists and 0 on the diagonal. Prim
//     reads it directly; Kruskal reads Edges().
//   - Algorithm bookkeeping (cost, parent, visited, disjoint-set parent and
//     height, tree children) lives in a State owned by the caller, not in the
//     vertices. Two runs with two States never collide.
//
// Edge order
//
//	Edges() sorts by weight, then by U+V, then by U. Equal-weight edges are
//	therefore always visited in the same order and Kruskal output is stable.
//
// Construction
//
//	m, _ := mapgraph.New(4)
//	_ = m.AddEdge(0, 1, 1)
//	_ = m.AddEdge(1, 2, 2)
//
// or FromMatrix for dense inputs. AddEdge rejects self-loops, duplicates,
// negative, NaN and infinite weights with sentinel errors.
package mapgraph
