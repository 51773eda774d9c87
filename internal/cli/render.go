package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/m1-s/graphsum/pkg/dot"
	"github.com/m1-s/graphsum/pkg/graph"
)

// renderCommand creates the render command for exporting DOT and SVG.
func (c *CLI) renderCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "render [graph.json]",
		Short: "Export a graph as Graphviz DOT or SVG",
		Long: `Export a graph as Graphviz DOT or SVG.

The output format is inferred from the output file extension: .dot
writes Graphviz source, .svg runs the dot layout engine and writes the
rendered image. Without --output the DOT source is printed to stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.dot or .svg)")

	return cmd
}

// runRender loads the graph and writes the requested artifact.
func (c *CLI) runRender(ctx context.Context, input, output string) error {
	g, err := graph.ReadGraphFile(input)
	if err != nil {
		return fmt.Errorf("load graph %s: %w", input, err)
	}

	src := dot.ToDOT(g)

	if output == "" {
		fmt.Print(src)
		return nil
	}

	switch ext := strings.ToLower(filepath.Ext(output)); ext {
	case ".dot":
		if err := os.WriteFile(output, []byte(src), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", output, err)
		}
	case ".svg":
		p := newProgress(c.Logger)
		spinner := newSpinnerWithContext(ctx, "Rendering SVG...")
		spinner.Start()

		svg, err := dot.RenderSVG(src)
		if err != nil {
			spinner.StopWithError("Rendering failed")
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("render svg: %w", err)
		}
		spinner.Stop()
		p.done("Rendered SVG")

		if err := os.WriteFile(output, svg, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", output, err)
		}
	default:
		return fmt.Errorf("unsupported output format %q (use .dot or .svg)", ext)
	}

	printSuccess("Rendered %s", input)
	printFile(output)
	return nil
}
