package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/m1-s/graphsum/pkg/graph"
	"github.com/m1-s/graphsum/pkg/summary"
)

func TestNextFormatCycles(t *testing.T) {
	order := []summary.Format{
		summary.FormatAuto,
		summary.FormatCompressed,
		summary.FormatAdjacency,
		summary.FormatEdgeList,
	}
	for i, f := range order {
		want := order[(i+1)%len(order)]
		if got := nextFormat(f); got != want {
			t.Errorf("nextFormat(%v) = %v, want %v", f, got, want)
		}
	}
}

func TestSummaryModelUpdate(t *testing.T) {
	g := graph.New(false)
	g.AddVertices(3)
	if _, err := g.AddEdge(0, 1); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}

	m := newSummaryModel(g, "test.json")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}})
	m = next.(summaryModel)
	if m.cfg.Format != summary.FormatCompressed {
		t.Errorf("after 'f': Format = %v, want %v", m.cfg.Format, summary.FormatCompressed)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	m = next.(summaryModel)
	if m.cfg.GraphAttributes {
		t.Error("after 'g': GraphAttributes should be toggled off")
	}

	next, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(summaryModel)
	if m.width != 120 {
		t.Errorf("after resize: width = %d, want 120", m.width)
	}

	if view := m.View(); view == "" {
		t.Error("View() returned empty string")
	}
}
