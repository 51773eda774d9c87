package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/m1-s/graphsum/pkg/graph"
	"github.com/m1-s/graphsum/pkg/summary"
)

// viewCommand creates the view command for browsing a summary interactively.
func (c *CLI) viewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [graph.json]",
		Short: "Browse a graph summary interactively",
		Long: `Browse a graph summary interactively.

The summary re-renders as the terminal is resized. Keys switch between
the edge list formats, change the verbosity, and toggle attribute
blocks.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := graph.ReadGraphFile(args[0])
			if err != nil {
				return fmt.Errorf("load graph %s: %w", args[0], err)
			}

			model := newSummaryModel(g, args[0])
			p := tea.NewProgram(model, tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}
	return cmd
}

// =============================================================================
// SummaryModel - Interactive summary display
// =============================================================================

// summaryModel is the bubbletea model for the view command.
type summaryModel struct {
	graph *graph.Graph
	path  string
	cfg   summary.Config
	width int
}

func newSummaryModel(g *graph.Graph, path string) summaryModel {
	cfg := summary.DefaultConfig()
	cfg.Verbosity = 1
	return summaryModel{graph: g, path: path, cfg: cfg, width: fallbackWidth}
}

func (m summaryModel) Init() tea.Cmd {
	return nil
}

func (m summaryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "f":
			m.cfg.Format = nextFormat(m.cfg.Format)
		case "v":
			m.cfg.Verbosity = (m.cfg.Verbosity + 1) % 2
		case "g":
			m.cfg.GraphAttributes = !m.cfg.GraphAttributes
		case "x":
			m.cfg.VertexAttributes = !m.cfg.VertexAttributes
		case "e":
			m.cfg.EdgeAttributes = !m.cfg.EdgeAttributes
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

func (m summaryModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.path))
	b.WriteString("\n\n")

	cfg := m.cfg
	cfg.Width = m.width
	out, err := summary.Render(m.graph, cfg)
	if err != nil {
		b.WriteString(styleIconError.Render(iconError) + " " + err.Error())
	} else {
		b.WriteString(out)
	}

	b.WriteString("\n\n")
	b.WriteString(StyleDim.Render("format: ") + StyleHighlight.Render(cfg.Format.String()) +
		StyleDim.Render(fmt.Sprintf("  verbosity: %d", cfg.Verbosity)))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("f format  v verbosity  g/x/e toggle attrs  q quit"))

	return b.String()
}

// nextFormat cycles through the edge list formats, including auto.
func nextFormat(f summary.Format) summary.Format {
	switch f {
	case summary.FormatAuto:
		return summary.FormatCompressed
	case summary.FormatCompressed:
		return summary.FormatAdjacency
	case summary.FormatAdjacency:
		return summary.FormatEdgeList
	default:
		return summary.FormatAuto
	}
}
