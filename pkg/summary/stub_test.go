package summary

// stubView is a hand-wired View for exercising renderer internals with
// exact control over every query.
type stubView struct {
	directed bool
	names    []string // vertex names; empty slice means unnamed graph
	out      [][]int  // successors per vertex
	edges    [][2]int

	gattrs  map[string]string
	gorder  []string
	vorder  []string
	vvalues map[string][]string
	eorder  []string
	evalues map[string][]string
}

func (s *stubView) VertexCount() int { return len(s.out) }
func (s *stubView) EdgeCount() int   { return len(s.edges) }
func (s *stubView) IsDirected() bool { return s.directed }
func (s *stubView) IsNamed() bool    { return len(s.names) > 0 }

func (s *stubView) IsWeighted() bool {
	for _, name := range s.eorder {
		if name == "weight" {
			return true
		}
	}
	return false
}

func (s *stubView) Attributes() []string { return s.gorder }

func (s *stubView) Attribute(name string) string { return s.gattrs[name] }

func (s *stubView) VertexAttributes() []string { return s.vorder }

func (s *stubView) VertexAttribute(name string, v int) string {
	if values, ok := s.vvalues[name]; ok && v < len(values) {
		return values[v]
	}
	return ""
}

func (s *stubView) EdgeAttributes() []string { return s.eorder }

func (s *stubView) EdgeAttribute(name string, e int) string {
	if values, ok := s.evalues[name]; ok && e < len(values) {
		return values[e]
	}
	return ""
}

func (s *stubView) VertexName(v int) string {
	if len(s.names) == 0 {
		return ""
	}
	return s.names[v]
}

func (s *stubView) Successors(v int) []int { return s.out[v] }
func (s *stubView) OutDegree(v int) int    { return len(s.out[v]) }

func (s *stubView) EdgeEndpoints(e int) (src, dst int) {
	return s.edges[e][0], s.edges[e][1]
}
