// Package cli implements the graphsum command-line interface.
//
// This package provides commands for summarizing graph documents,
// inspecting their structure, browsing summaries interactively, and
// exporting graphs as DOT or SVG. The CLI is built using cobra and
// supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - summary: Print the textual summary of a graph
//   - info: Show a structural overview table
//   - view: Browse a summary interactively, following terminal resizes
//   - render: Export a graph as Graphviz DOT or SVG
//
// # Configuration
//
// Defaults for the summary flags can be stored in a TOML file at
// ~/.config/graphsum/config.toml (see config.go); explicit flags always
// win over file values.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/m1-s/graphsum/pkg/buildinfo"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "graphsum"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// configPath overrides the default config file location when set via
	// the --config flag.
	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "graphsum",
		Short:        "Graphsum renders compact textual summaries of graphs",
		Long:         `Graphsum is a CLI tool for inspecting graph documents: it prints igraph-style one-line headers and edge list summaries, and exports graphs as DOT or SVG.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default ~/.config/graphsum/config.toml)")

	// Register all subcommands
	root.AddCommand(c.summaryCommand())
	root.AddCommand(c.infoCommand())
	root.AddCommand(c.viewCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Paths
// =============================================================================

// defaultConfigPath returns the config file path using the XDG standard
// (~/.config/graphsum/config.toml).
func defaultConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
