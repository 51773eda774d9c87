package summary

import "strings"

// Render produces the textual summary of g under cfg.
//
// The header is always rendered. At verbosity 0 it is the whole output; at
// verbosity 1 or more the enabled attribute blocks follow, then the edge
// list when the graph has edges. Every accumulated line is wrapped
// independently as a final pass and the result joined with newlines.
//
// Render fails with INVALID_CONFIGURATION on a negative width or an
// out-of-range format, and never otherwise for a well-formed View.
func Render(g View, cfg Config) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	lines := headerLines(g, cfg.Width)
	if cfg.Verbosity <= 0 {
		return joinWrapped(lines, cfg.Width), nil
	}

	if cfg.GraphAttributes {
		lines = append(lines, graphAttributeLines(g)...)
	}
	if cfg.VertexAttributes {
		lines = append(lines, vertexAttributeLines(g)...)
	}

	if g.EdgeCount() > 0 {
		format := cfg.Format
		if format == FormatAuto {
			var err error
			format, err = selectFormat(g, cfg.EdgeAttributes)
			if err != nil {
				return "", err
			}
		}
		switch format {
		case FormatCompressed:
			lines = append(lines, compressedLines(g)...)
		case FormatAdjacency:
			lines = append(lines, adjacencyLines(g, cfg.Width)...)
		case FormatEdgeList:
			lines = append(lines, edgeListLines(g, cfg.EdgeAttributes)...)
		}
	}

	return joinWrapped(lines, cfg.Width), nil
}

// String renders the header-only summary of g under [DefaultConfig]. The
// default configuration is always valid and verbosity 0 never consults the
// selector, so no error can occur.
func String(g View) string {
	s, err := Render(g, DefaultConfig())
	if err != nil {
		return ""
	}
	return s
}

// joinWrapped wraps every line independently, flattens the result, and
// joins it with newlines. The continuation indent is empty here; only the
// "+ attr:" header line wraps with an indent, and it has already been
// wrapped at build time.
func joinWrapped(lines []string, width int) string {
	if width <= 0 {
		return strings.Join(lines, "\n")
	}
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, wrap(line, width, "")...)
	}
	return strings.Join(out, "\n")
}
