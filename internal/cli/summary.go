package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/m1-s/graphsum/pkg/graph"
	"github.com/m1-s/graphsum/pkg/summary"
)

// summaryCommand creates the summary command for printing graph summaries.
func (c *CLI) summaryCommand() *cobra.Command {
	var (
		verbosity     int
		width         int
		noWrap        bool
		formatStr     string
		noGraphAttrs  bool
		noVertexAttrs bool
		noEdgeAttrs   bool
	)

	cmd := &cobra.Command{
		Use:   "summary [graph.json]",
		Short: "Print a textual summary of a graph",
		Long: `Print a textual summary of a graph.

The summary starts with a one-line header describing the graph's
directedness, attributes, and size, followed by attribute listings and
an edge list rendered in one of three formats:

  compressed  edges as "a--b" items on wrapped lines
  adjlist     one line per vertex with its successors
  edgelist    one line per edge, including edge attributes

With --format auto (the default) the format is chosen from the graph's
structure: graphs with printable edge attributes use edgelist, sparse
graphs use compressed, dense graphs use adjlist.

Lines wrap at the terminal width by default; use --width for a fixed
width or --no-wrap to disable wrapping.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fileCfg, err := c.loadConfig()
			if err != nil {
				return err
			}

			fs := cmd.Flags()
			applyIntDefault(fs, "verbosity", &verbosity, fileCfg.Summary.Verbosity)
			applyIntDefault(fs, "width", &width, fileCfg.Summary.Width)
			applyStringDefault(fs, "format", &formatStr, fileCfg.Summary.Format)

			graphAttrs := !noGraphAttrs
			vertexAttrs := !noVertexAttrs
			edgeAttrs := !noEdgeAttrs
			applyBoolDefault(fs, "no-graph-attrs", &graphAttrs, fileCfg.Summary.GraphAttrs)
			applyBoolDefault(fs, "no-vertex-attrs", &vertexAttrs, fileCfg.Summary.VertexAttrs)
			applyBoolDefault(fs, "no-edge-attrs", &edgeAttrs, fileCfg.Summary.EdgeAttrs)

			format, err := summary.ParseFormat(formatStr)
			if err != nil {
				return err
			}

			switch {
			case noWrap:
				width = 0
			case width == 0 && !fs.Changed("width"):
				width = terminalWidth()
			}

			cfg := summary.Config{
				Verbosity:        verbosity,
				Width:            width,
				Format:           format,
				GraphAttributes:  graphAttrs,
				VertexAttributes: vertexAttrs,
				EdgeAttributes:   edgeAttrs,
			}
			return c.runSummary(args[0], cfg)
		},
	}

	cmd.Flags().IntVarP(&verbosity, "verbosity", "V", 1, "detail level: 0 header only, 1 full summary")
	cmd.Flags().IntVarP(&width, "width", "w", 0, "line width (0 = terminal width)")
	cmd.Flags().BoolVar(&noWrap, "no-wrap", false, "disable line wrapping")
	cmd.Flags().StringVarP(&formatStr, "format", "f", "auto", "edge list format: auto, compressed, adjlist, edgelist")
	cmd.Flags().BoolVar(&noGraphAttrs, "no-graph-attrs", false, "omit the graph attribute block")
	cmd.Flags().BoolVar(&noVertexAttrs, "no-vertex-attrs", false, "omit vertex attribute values")
	cmd.Flags().BoolVar(&noEdgeAttrs, "no-edge-attrs", false, "omit edge attribute values")

	_ = cmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return summary.FormatNames(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// runSummary loads the graph and prints its summary to stdout.
func (c *CLI) runSummary(input string, cfg summary.Config) error {
	g, err := graph.ReadGraphFile(input)
	if err != nil {
		return fmt.Errorf("load graph %s: %w", input, err)
	}
	c.Logger.Debug("Loaded graph", "path", input, "vertices", g.VertexCount(), "edges", g.EdgeCount())

	out, err := summary.Render(g, cfg)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}
