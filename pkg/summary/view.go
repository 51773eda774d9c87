package summary

// View is the read-only query surface a graph must expose to be
// summarized. Vertices are indexed 0..VertexCount()-1 and edges
// 0..EdgeCount()-1, both in a stable order chosen by the implementation.
//
// Implementations must tolerate concurrent readers; this package only ever
// reads through the interface and never mutates the graph.
type View interface {
	// VertexCount returns the number of vertices.
	VertexCount() int

	// EdgeCount returns the number of edges.
	EdgeCount() int

	// IsDirected reports whether edges are directed.
	IsDirected() bool

	// IsNamed reports whether the graph has a vertex attribute called "name".
	IsNamed() bool

	// IsWeighted reports whether the graph has an edge attribute called "weight".
	IsWeighted() bool

	// Attributes returns the graph-level attribute names in the graph's
	// reported order.
	Attributes() []string

	// Attribute returns the string-coerced value of a graph-level
	// attribute, or "" when the attribute is absent.
	Attribute(name string) string

	// VertexAttributes returns the vertex-level attribute names in the
	// graph's reported order.
	VertexAttributes() []string

	// VertexAttribute returns the string-coerced value of a vertex
	// attribute for vertex v, or "" when unset.
	VertexAttribute(name string, v int) string

	// EdgeAttributes returns the edge-level attribute names in the graph's
	// reported order.
	EdgeAttributes() []string

	// EdgeAttribute returns the string-coerced value of an edge attribute
	// for edge e, or "" when unset.
	EdgeAttribute(name string, e int) string

	// VertexName returns the name of vertex v, or "" on unnamed graphs.
	VertexName(v int) string

	// Successors returns the out-neighbors of v in a stable order. On
	// undirected graphs it returns all neighbors.
	Successors(v int) []int

	// OutDegree returns len(Successors(v)) without materializing the slice.
	OutDegree(v int) int

	// EdgeEndpoints returns the source and target vertex of edge e.
	EdgeEndpoints(e int) (src, dst int)
}
