// Package dot exports graphs as Graphviz DOT source and renders them to SVG.
//
// The DOT text is built by hand; only the final SVG rendering goes through
// [github.com/goccy/go-graphviz], which runs Graphviz in-process.
package dot

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/m1-s/graphsum/pkg/graph"
)

// ToDOT converts a graph to Graphviz DOT source. Directed graphs become
// digraphs with -> edges; undirected ones use graph/--. Vertices are
// labeled with their names on named graphs and their indices otherwise,
// and edge weights become edge labels on weighted graphs.
func ToDOT(g *graph.Graph) string {
	var buf bytes.Buffer

	keyword, arrow := "graph", "--"
	if g.IsDirected() {
		keyword, arrow = "digraph", "->"
	}

	fmt.Fprintf(&buf, "%s G {\n", keyword)
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  node [shape=ellipse, fontsize=12];\n")
	buf.WriteString("\n")

	for v := 0; v < g.VertexCount(); v++ {
		fmt.Fprintf(&buf, "  %d [label=%q];\n", v, vertexLabel(g, v))
	}

	buf.WriteString("\n")
	for e := 0; e < g.EdgeCount(); e++ {
		src, dst := g.EdgeEndpoints(e)
		if weight := g.EdgeAttribute(graph.WeightAttribute, e); weight != "" {
			fmt.Fprintf(&buf, "  %d %s %d [label=%q];\n", src, arrow, dst, weight)
		} else {
			fmt.Fprintf(&buf, "  %d %s %d;\n", src, arrow, dst)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func vertexLabel(g *graph.Graph, v int) string {
	if name := g.VertexName(v); name != "" {
		return name
	}
	return strconv.Itoa(v)
}

// RenderSVG renders DOT source to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	parsed, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer parsed.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, parsed, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
