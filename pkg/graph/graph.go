package graph

import (
	"fmt"
	"slices"

	"github.com/m1-s/graphsum/pkg/errors"
)

// NameAttribute is the reserved vertex attribute holding display names.
// A graph is "named" exactly when this vertex attribute exists.
const NameAttribute = "name"

// WeightAttribute is the edge attribute that marks a graph as weighted.
const WeightAttribute = "weight"

// column is a sparse attribute table for one vertex- or edge-level
// attribute. Missing indices read as the empty string.
type column struct {
	name   string
	values map[int]any
}

// graphAttr is a single graph-level attribute.
type graphAttr struct {
	name  string
	value any
}

// Graph is a directed or undirected graph with dense vertex indices,
// edges in insertion order, and ordered attribute tables per level.
//
// The zero value is not usable; use [New].
type Graph struct {
	directed bool
	vertices int
	edges    [][2]int
	out      [][]int // successors per vertex, insertion order

	graphAttrs  []graphAttr
	vertexAttrs []*column
	edgeAttrs   []*column
}

// New creates an empty graph.
func New(directed bool) *Graph {
	return &Graph{directed: directed}
}

// AddVertex appends one vertex and returns its index. A non-empty name is
// stored as the vertex attribute "name", which also marks the whole graph
// as named.
func (g *Graph) AddVertex(name string) int {
	v := g.vertices
	g.vertices++
	g.out = append(g.out, nil)
	if name != "" {
		g.vertexColumn(NameAttribute).values[v] = name
	}
	return v
}

// AddVertices appends n unnamed vertices and returns the index of the
// first one. Non-positive n adds nothing and returns the current count.
func (g *Graph) AddVertices(n int) int {
	first := g.vertices
	for i := 0; i < n; i++ {
		g.vertices++
		g.out = append(g.out, nil)
	}
	return first
}

// AddEdge appends an edge from src to dst and returns its index. On
// undirected graphs the edge also appears among dst's successors. Out of
// range endpoints fail with INVALID_GRAPH.
func (g *Graph) AddEdge(src, dst int) (int, error) {
	if src < 0 || src >= g.vertices {
		return 0, errors.New(errors.ErrCodeInvalidGraph, "edge source %d out of range [0, %d)", src, g.vertices)
	}
	if dst < 0 || dst >= g.vertices {
		return 0, errors.New(errors.ErrCodeInvalidGraph, "edge target %d out of range [0, %d)", dst, g.vertices)
	}

	e := len(g.edges)
	g.edges = append(g.edges, [2]int{src, dst})
	g.out[src] = append(g.out[src], dst)
	if !g.directed && src != dst {
		g.out[dst] = append(g.out[dst], src)
	}
	return e, nil
}

// SetAttribute sets a graph-level attribute. Names keep their first-set
// order; setting an existing name replaces its value in place.
func (g *Graph) SetAttribute(name string, value any) {
	for i := range g.graphAttrs {
		if g.graphAttrs[i].name == name {
			g.graphAttrs[i].value = value
			return
		}
	}
	g.graphAttrs = append(g.graphAttrs, graphAttr{name: name, value: value})
}

// SetVertexAttribute sets an attribute value for vertex v. An out of range
// index fails with INVALID_GRAPH.
func (g *Graph) SetVertexAttribute(name string, v int, value any) error {
	if v < 0 || v >= g.vertices {
		return errors.New(errors.ErrCodeInvalidGraph, "vertex %d out of range [0, %d)", v, g.vertices)
	}
	g.vertexColumn(name).values[v] = value
	return nil
}

// SetEdgeAttribute sets an attribute value for edge e. An out of range
// index fails with INVALID_GRAPH.
func (g *Graph) SetEdgeAttribute(name string, e int, value any) error {
	if e < 0 || e >= len(g.edges) {
		return errors.New(errors.ErrCodeInvalidGraph, "edge %d out of range [0, %d)", e, len(g.edges))
	}
	g.edgeColumn(name).values[e] = value
	return nil
}

// vertexColumn returns the vertex attribute table for name, creating it if
// needed.
func (g *Graph) vertexColumn(name string) *column {
	for _, c := range g.vertexAttrs {
		if c.name == name {
			return c
		}
	}
	c := &column{name: name, values: make(map[int]any)}
	g.vertexAttrs = append(g.vertexAttrs, c)
	return c
}

// edgeColumn returns the edge attribute table for name, creating it if
// needed.
func (g *Graph) edgeColumn(name string) *column {
	for _, c := range g.edgeAttrs {
		if c.name == name {
			return c
		}
	}
	c := &column{name: name, values: make(map[int]any)}
	g.edgeAttrs = append(g.edgeAttrs, c)
	return c
}

// =============================================================================
// Read-Only View
// =============================================================================

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return g.vertices }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// IsDirected reports whether the graph is directed.
func (g *Graph) IsDirected() bool { return g.directed }

// IsNamed reports whether the vertex attribute "name" exists.
func (g *Graph) IsNamed() bool {
	return g.findColumn(g.vertexAttrs, NameAttribute) != nil
}

// IsWeighted reports whether the edge attribute "weight" exists.
func (g *Graph) IsWeighted() bool {
	return g.findColumn(g.edgeAttrs, WeightAttribute) != nil
}

// Attributes returns the graph-level attribute names in first-set order.
func (g *Graph) Attributes() []string {
	names := make([]string, len(g.graphAttrs))
	for i, a := range g.graphAttrs {
		names[i] = a.name
	}
	return names
}

// Attribute returns the string-coerced value of a graph-level attribute,
// or "" when absent.
func (g *Graph) Attribute(name string) string {
	for _, a := range g.graphAttrs {
		if a.name == name {
			return coerce(a.value)
		}
	}
	return ""
}

// VertexAttributes returns the vertex attribute names in first-set order.
func (g *Graph) VertexAttributes() []string {
	return columnNames(g.vertexAttrs)
}

// VertexAttribute returns the string-coerced attribute value for vertex v,
// or "" when unset.
func (g *Graph) VertexAttribute(name string, v int) string {
	if c := g.findColumn(g.vertexAttrs, name); c != nil {
		return coerce(c.values[v])
	}
	return ""
}

// EdgeAttributes returns the edge attribute names in first-set order.
func (g *Graph) EdgeAttributes() []string {
	return columnNames(g.edgeAttrs)
}

// EdgeAttribute returns the string-coerced attribute value for edge e, or
// "" when unset.
func (g *Graph) EdgeAttribute(name string, e int) string {
	if c := g.findColumn(g.edgeAttrs, name); c != nil {
		return coerce(c.values[e])
	}
	return ""
}

// VertexName returns the name of vertex v, or "" on unnamed graphs.
func (g *Graph) VertexName(v int) string {
	return g.VertexAttribute(NameAttribute, v)
}

// Successors returns the out-neighbors of v in edge insertion order. On
// undirected graphs it returns all neighbors. The slice is a copy.
func (g *Graph) Successors(v int) []int {
	if v < 0 || v >= g.vertices {
		return nil
	}
	return slices.Clone(g.out[v])
}

// OutDegree returns the number of successors of v.
func (g *Graph) OutDegree(v int) int {
	if v < 0 || v >= g.vertices {
		return 0
	}
	return len(g.out[v])
}

// EdgeEndpoints returns the source and target vertex of edge e.
func (g *Graph) EdgeEndpoints(e int) (src, dst int) {
	return g.edges[e][0], g.edges[e][1]
}

func (g *Graph) findColumn(cols []*column, name string) *column {
	for _, c := range cols {
		if c.name == name {
			return c
		}
	}
	return nil
}

func columnNames(cols []*column) []string {
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.name
	}
	return names
}

// coerce converts an attribute value to its string form. Unset and nil
// values read as the empty string.
func coerce(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
