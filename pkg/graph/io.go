package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/m1-s/graphsum/pkg/errors"
)

// =============================================================================
// Document Format
// =============================================================================

// jsonAttr is a single name/value pair. Attributes are stored as arrays of
// pairs rather than objects so their order survives a round trip.
type jsonAttr struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// jsonVertex is one vertex of the document.
type jsonVertex struct {
	Name       string     `json:"name,omitempty"`
	Attributes []jsonAttr `json:"attributes,omitempty"`
}

// jsonEdge is one edge of the document, endpoints by vertex index.
type jsonEdge struct {
	Source     int        `json:"source"`
	Target     int        `json:"target"`
	Attributes []jsonAttr `json:"attributes,omitempty"`
}

// jsonGraph is the full document.
type jsonGraph struct {
	Directed   bool         `json:"directed"`
	Attributes []jsonAttr   `json:"attributes,omitempty"`
	Vertices   []jsonVertex `json:"vertices"`
	Edges      []jsonEdge   `json:"edges"`
}

// =============================================================================
// Writing
// =============================================================================

// MarshalGraph converts a graph to indented JSON bytes.
func MarshalGraph(g *Graph) ([]byte, error) {
	doc := jsonGraph{
		Directed: g.directed,
		Vertices: make([]jsonVertex, g.vertices),
		Edges:    make([]jsonEdge, len(g.edges)),
	}

	for _, a := range g.graphAttrs {
		doc.Attributes = append(doc.Attributes, jsonAttr{Name: a.name, Value: a.value})
	}

	for v := 0; v < g.vertices; v++ {
		jv := jsonVertex{Name: g.VertexName(v)}
		for _, c := range g.vertexAttrs {
			if c.name == NameAttribute {
				continue
			}
			if value, ok := c.values[v]; ok {
				jv.Attributes = append(jv.Attributes, jsonAttr{Name: c.name, Value: value})
			}
		}
		doc.Vertices[v] = jv
	}

	for e, endpoints := range g.edges {
		je := jsonEdge{Source: endpoints[0], Target: endpoints[1]}
		for _, c := range g.edgeAttrs {
			if value, ok := c.values[e]; ok {
				je.Attributes = append(je.Attributes, jsonAttr{Name: c.name, Value: value})
			}
		}
		doc.Edges[e] = je
	}

	return json.MarshalIndent(doc, "", "  ")
}

// WriteGraph writes a graph as JSON to w.
func WriteGraph(g *Graph, w io.Writer) error {
	data, err := MarshalGraph(g)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// WriteGraphFile writes a graph to a JSON file. The file is created with
// 0644 permissions.
func WriteGraphFile(g *Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteGraph(g, f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// =============================================================================
// Reading
// =============================================================================

// ReadGraph parses a JSON graph document from r. Malformed JSON fails with
// INVALID_FORMAT; documents that reference vertices out of range or carry
// unusable names fail with INVALID_GRAPH or INVALID_ATTRIBUTE.
func ReadGraph(r io.Reader) (*Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read graph: %w", err)
	}
	return UnmarshalGraph(data)
}

// ReadGraphFile reads a graph from a JSON file. A missing file fails with
// FILE_NOT_FOUND.
func ReadGraphFile(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "graph file %s not found", path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalGraph(data)
}

// UnmarshalGraph deserializes JSON bytes to a graph.
func UnmarshalGraph(data []byte) (*Graph, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var doc jsonGraph
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode graph document")
	}

	g := New(doc.Directed)
	g.AddVertices(len(doc.Vertices))

	for _, a := range doc.Attributes {
		if err := errors.ValidateAttributeName(a.Name); err != nil {
			return nil, err
		}
		g.SetAttribute(a.Name, a.Value)
	}

	for v, jv := range doc.Vertices {
		if err := errors.ValidateVertexName(jv.Name); err != nil {
			return nil, err
		}
		if jv.Name != "" {
			if err := g.SetVertexAttribute(NameAttribute, v, jv.Name); err != nil {
				return nil, err
			}
		}
		for _, a := range jv.Attributes {
			if err := errors.ValidateAttributeName(a.Name); err != nil {
				return nil, err
			}
			if err := g.SetVertexAttribute(a.Name, v, a.Value); err != nil {
				return nil, err
			}
		}
	}

	for i, je := range doc.Edges {
		e, err := g.AddEdge(je.Source, je.Target)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidGraph, err, "edge %d", i)
		}
		for _, a := range je.Attributes {
			if err := errors.ValidateAttributeName(a.Name); err != nil {
				return nil, err
			}
			if err := g.SetEdgeAttribute(a.Name, e, a.Value); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}
