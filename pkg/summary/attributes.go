package summary

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"
)

// graphAttributeLines renders the "+ graph attributes:" block: a [[name]]
// line followed by the value line for every graph attribute, sorted by
// name. Returns nothing when the graph has no graph-level attributes.
func graphAttributeLines(g View) []string {
	names := slices.Clone(g.Attributes())
	if len(names) == 0 {
		return nil
	}
	slices.Sort(names)

	lines := make([]string, 0, 2*len(names)+1)
	lines = append(lines, "+ graph attributes:")
	for _, name := range names {
		lines = append(lines, "[["+name+"]]", g.Attribute(name))
	}
	return lines
}

// vertexAttributeLines renders the "+ vertex attributes:" block: one row
// per vertex listing its attribute values, labels right-justified so the
// colons align. The reserved "name" attribute is excluded; it already
// shows up as the vertex label. Returns nothing when no other vertex
// attributes exist, and only the section header on a zero-vertex graph.
func vertexAttributeLines(g View) []string {
	var names []string
	for _, name := range g.VertexAttributes() {
		if name != "name" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil
	}
	slices.Sort(names)

	lines := []string{"+ vertex attributes:"}
	n := g.VertexCount()
	if n == 0 {
		return lines
	}

	labels := vertexLabels(g)
	maxlen := 0
	for _, label := range labels {
		maxlen = max(maxlen, utf8.RuneCountInString(label))
	}

	pairs := make([]string, len(names))
	for v := 0; v < n; v++ {
		for i, name := range names {
			pairs[i] = name + "=" + g.VertexAttribute(name, v)
		}
		lines = append(lines, fmt.Sprintf("%*s: %s", maxlen, labels[v], strings.Join(pairs, ", ")))
	}
	return lines
}

// vertexLabels returns the display label per vertex: its name on named
// graphs, its decimal index otherwise.
func vertexLabels(g View) []string {
	labels := make([]string, g.VertexCount())
	if g.IsNamed() {
		for v := range labels {
			labels[v] = g.VertexName(v)
		}
	} else {
		for v := range labels {
			labels[v] = strconv.Itoa(v)
		}
	}
	return labels
}
