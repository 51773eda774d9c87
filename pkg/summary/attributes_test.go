package summary

import (
	"reflect"
	"testing"
)

func TestGraphAttributeLines(t *testing.T) {
	g := &stubView{
		out:    outLists(0),
		gorder: []string{"name", "citation", "author"},
		gattrs: map[string]string{
			"name":     "Karate club",
			"citation": "Zachary 1977",
			"author":   "Zachary",
		},
	}

	got := graphAttributeLines(g)
	want := []string{
		"+ graph attributes:",
		"[[author]]",
		"Zachary",
		"[[citation]]",
		"Zachary 1977",
		"[[name]]",
		"Karate club",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("graphAttributeLines() = %q, want %q", got, want)
	}
}

func TestGraphAttributeLinesEmpty(t *testing.T) {
	if got := graphAttributeLines(&stubView{out: outLists(0)}); got != nil {
		t.Errorf("graphAttributeLines() = %q, want nil", got)
	}
}

func TestVertexAttributeLines(t *testing.T) {
	g := &stubView{
		names:  []string{"ann", "bo"},
		out:    outLists(0, 0),
		vorder: []string{"name", "role", "age"},
		vvalues: map[string][]string{
			"age":  {"34", "27"},
			"role": {"admin", ""},
		},
	}

	got := vertexAttributeLines(g)
	want := []string{
		"+ vertex attributes:",
		"ann: age=34, role=admin",
		" bo: age=27, role=",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("vertexAttributeLines() = %q, want %q", got, want)
	}
}

func TestVertexAttributeLinesUnnamedUsesIndices(t *testing.T) {
	g := &stubView{
		out:    outLists(0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0),
		vorder: []string{"color"},
		vvalues: map[string][]string{
			"color": {"red", "blue", "", "", "", "", "", "", "", "", "green"},
		},
	}

	got := vertexAttributeLines(g)
	if got[1] != " 0: color=red" {
		t.Errorf("row 0 = %q, want %q", got[1], " 0: color=red")
	}
	if got[11] != "10: color=green" {
		t.Errorf("row 10 = %q, want %q", got[11], "10: color=green")
	}
}

func TestVertexAttributeLinesOnlyName(t *testing.T) {
	// The reserved "name" attribute alone produces no block.
	g := &stubView{
		names:  []string{"a"},
		out:    outLists(0),
		vorder: []string{"name"},
	}
	if got := vertexAttributeLines(g); got != nil {
		t.Errorf("vertexAttributeLines() = %q, want nil", got)
	}
}

func TestVertexAttributeLinesZeroVertices(t *testing.T) {
	// Attribute columns can exist without vertices; only the section
	// header appears.
	g := &stubView{vorder: []string{"color"}}
	got := vertexAttributeLines(g)
	want := []string{"+ vertex attributes:"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("vertexAttributeLines() = %q, want %q", got, want)
	}
}
