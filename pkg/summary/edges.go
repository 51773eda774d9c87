package summary

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"
)

// edgesHeader is the fixed first line of every edge list strategy.
func edgesHeader(g View) string {
	if g.IsNamed() {
		return "+ edges (vertex names):"
	}
	return "+ edges:"
}

// arrowGlyph separates edge endpoints: "->" directed, "--" undirected.
func arrowGlyph(g View) string {
	if g.IsDirected() {
		return "->"
	}
	return "--"
}

// edgeText renders one edge in arrow notation, using vertex names on named
// graphs and indices otherwise.
func edgeText(g View, e int, arrow string) string {
	src, dst := g.EdgeEndpoints(e)
	if g.IsNamed() {
		return g.VertexName(src) + arrow + g.VertexName(dst)
	}
	return strconv.Itoa(src) + arrow + strconv.Itoa(dst)
}

// compressedLines renders every edge on a single body line, in edge order.
// Named graphs join edges with ", ", unnamed ones with a single space.
// Overlong lines are left for the final wrapping pass.
func compressedLines(g View) []string {
	arrow := arrowGlyph(g)
	texts := make([]string, g.EdgeCount())
	for e := range texts {
		texts[e] = edgeText(g, e, arrow)
	}
	sep := " "
	if g.IsNamed() {
		sep = ", "
	}
	return []string{edgesHeader(g), strings.Join(texts, sep)}
}

// adjacencyLines renders one row per vertex, vertex labels right-justified
// so the arrows align, and packs the rows into side-by-side columns when a
// width bound leaves room for more than one. A zero-vertex graph renders
// nothing at all, not even the header.
func adjacencyLines(g View, width int) []string {
	n := g.VertexCount()
	if n == 0 {
		return nil
	}

	arrow := arrowGlyph(g)
	rows := make([]string, n)
	if g.IsNamed() {
		maxlen := 0
		for v := 0; v < n; v++ {
			maxlen = max(maxlen, utf8.RuneCountInString(g.VertexName(v)))
		}
		for v := 0; v < n; v++ {
			succ := g.Successors(v)
			names := make([]string, len(succ))
			for i, s := range succ {
				names[i] = g.VertexName(s)
			}
			rows[v] = fmt.Sprintf("%*s %s %s", maxlen, g.VertexName(v), arrow, strings.Join(names, ", "))
		}
	} else {
		maxlen := len(strconv.Itoa(n - 1))
		for v := 0; v < n; v++ {
			succ := g.Successors(v)
			nums := make([]string, len(succ))
			for i, s := range succ {
				nums[i] = fmt.Sprintf("%*d", maxlen, s)
			}
			rows[v] = fmt.Sprintf("%*d %s %s", maxlen, v, arrow, strings.Join(nums, " "))
		}
	}

	if width > 0 {
		rows = packColumns(rows, width)
	}
	return append([]string{edgesHeader(g)}, rows...)
}

// packColumns repacks per-vertex rows into side-by-side columns. With
// columnCount = (width+3)/(maxRowLen+3), the rows are distributed
// column-major into columns of ceil(n/columnCount) rows: original row i
// lands in packed row i mod height. Every cell is left-justified to the
// longest row and cells are joined with three spaces. When only one column
// fits, the rows are returned untouched.
func packColumns(rows []string, width int) []string {
	maxlen := 0
	for _, row := range rows {
		maxlen = max(maxlen, utf8.RuneCountInString(row))
	}
	cols := (width + 3) / (maxlen + 3)
	if cols <= 1 {
		return rows
	}

	height := (len(rows) + cols - 1) / cols
	packed := make([][]string, height)
	for i, row := range rows {
		packed[i%height] = append(packed[i%height], padRight(row, maxlen))
	}
	out := make([]string, height)
	for i, cells := range packed {
		out[i] = strings.Join(cells, "   ")
	}
	return out
}

func padRight(s string, width int) string {
	if pad := width - utf8.RuneCountInString(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

// edgeListLines renders one row per edge in edge order. When attribute
// printing is enabled and the graph has edge attributes, every row lists
// the attribute values after the arrow text, texts right-justified so the
// colons align; attribute names are sorted. This is the only strategy that
// renders edge attribute values.
func edgeListLines(g View, withAttributes bool) []string {
	arrow := arrowGlyph(g)
	lines := make([]string, 0, g.EdgeCount()+1)
	lines = append(lines, edgesHeader(g))

	texts := make([]string, g.EdgeCount())
	for e := range texts {
		texts[e] = edgeText(g, e, arrow)
	}

	names := slices.Clone(g.EdgeAttributes())
	if !withAttributes || len(names) == 0 {
		return append(lines, texts...)
	}
	slices.Sort(names)

	maxlen := 0
	for _, text := range texts {
		maxlen = max(maxlen, utf8.RuneCountInString(text))
	}

	pairs := make([]string, len(names))
	for e, text := range texts {
		for i, name := range names {
			pairs[i] = name + "=" + g.EdgeAttribute(name, e)
		}
		lines = append(lines, fmt.Sprintf("%*s: %s", maxlen, text, strings.Join(pairs, ", ")))
	}
	return lines
}
