// Package graph provides an in-memory graph with attributes at the graph,
// vertex, and edge level.
//
// # Overview
//
// A [Graph] holds vertices identified by dense indices, directed or
// undirected edges identified by insertion order, and attribute tables per
// level. Attribute names keep their first-set order; values are arbitrary
// and coerced to strings on read. The model is construction-only: vertices
// and edges can be added and attributes set, but nothing is ever removed.
//
// Graph satisfies the read-only view consumed by the summary renderer, so
// a constructed graph can be summarized directly:
//
//	g := graph.New(true)
//	a := g.AddVertex("a")
//	b := g.AddVertex("b")
//	g.AddEdge(a, b)
//	fmt.Println(summary.String(g))
//
// # Serialization
//
// The package reads and writes a JSON document format that preserves
// attribute order by storing attributes as arrays of name/value pairs; see
// [ReadGraph] and [WriteGraph].
//
// Graph is not safe for concurrent mutation. Once construction is done,
// any number of goroutines may read it concurrently.
package graph
