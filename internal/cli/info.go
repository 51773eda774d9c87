package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/m1-s/graphsum/pkg/graph"
	"github.com/m1-s/graphsum/pkg/summary"
)

// infoCommand creates the info command for showing a structural overview.
func (c *CLI) infoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info [graph.json]",
		Short: "Show a structural overview of a graph",
		Long: `Show a structural overview of a graph.

Prints the graph's header line followed by a table of structural
properties and the attribute names present at each level.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInfo(args[0])
		},
	}
	return cmd
}

// runInfo loads the graph and prints the overview table.
func (c *CLI) runInfo(input string) error {
	g, err := graph.ReadGraphFile(input)
	if err != nil {
		return fmt.Errorf("load graph %s: %w", input, err)
	}

	fmt.Println(StyleTitle.Render(summary.String(g)))

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Property", "Value"})
	t.AppendRows([]table.Row{
		{"Vertices", g.VertexCount()},
		{"Edges", g.EdgeCount()},
		{"Directed", g.IsDirected()},
		{"Named", g.IsNamed()},
		{"Weighted", g.IsWeighted()},
	})
	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"Graph attributes", attrCell(g.Attributes())},
		{"Vertex attributes", attrCell(g.VertexAttributes())},
		{"Edge attributes", attrCell(g.EdgeAttributes())},
	})
	t.Render()
	return nil
}

// attrCell formats an attribute name list for a table cell.
func attrCell(names []string) string {
	if len(names) == 0 {
		return "—"
	}
	return strings.Join(names, ", ")
}
