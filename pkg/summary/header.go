package summary

import (
	"fmt"
	"slices"
	"strings"
)

// attrListIndent is the continuation indent for wrapped "+ attr:" lines.
// It applies to that line only; every other line wraps without an indent.
const attrListIndent = "  "

// propertyCode derives the position-fixed four-character class code:
// [U|D] directed, [N|-] named, [W|-] weighted, [T|-] typed.
func propertyCode(g View) string {
	code := []byte{'U', '-', '-', '-'}
	if g.IsDirected() {
		code[0] = 'D'
	}
	if g.IsNamed() {
		code[1] = 'N'
	}
	if g.IsWeighted() {
		code[2] = 'W'
	}
	if slices.Contains(g.VertexAttributes(), "type") {
		code[3] = 'T'
	}
	return string(code)
}

// headerLines builds the summary header: the IGRAPH line plus, when the
// graph carries attributes at any level, the "+ attr:" listing. The title
// is the graph attribute "name"; when it is absent the spaces around "--"
// remain, leaving a trailing space.
func headerLines(g View, width int) []string {
	lines := []string{fmt.Sprintf("IGRAPH %s %d %d -- %s",
		propertyCode(g), g.VertexCount(), g.EdgeCount(), g.Attribute("name"))}

	var attrs []string
	for _, name := range g.Attributes() {
		attrs = append(attrs, name+" (g)")
	}
	for _, name := range g.VertexAttributes() {
		attrs = append(attrs, name+" (v)")
	}
	for _, name := range g.EdgeAttributes() {
		attrs = append(attrs, name+" (e)")
	}
	if len(attrs) > 0 {
		lines = append(lines, wrap("+ attr: "+strings.Join(attrs, ", "), width, attrListIndent)...)
	}
	return lines
}
