package summary

import (
	"fmt"
	"strings"

	"github.com/m1-s/graphsum/pkg/errors"
)

// Format identifies an edge list rendering strategy.
type Format int

// Edge list strategies. FormatAuto defers the choice to a selector that
// inspects edge attributes and the median out-degree.
const (
	FormatAuto Format = iota
	FormatCompressed
	FormatAdjacency
	FormatEdgeList
)

// formatNames holds the canonical spelling per Format, indexed by value.
var formatNames = [...]string{"auto", "compressed", "adjlist", "edgelist"}

// String returns the canonical lowercase name of the format.
func (f Format) String() string {
	if f < FormatAuto || f > FormatEdgeList {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// ParseFormat converts a user-supplied format name to a Format. Matching
// is case-insensitive. Unknown names fail with INVALID_CONFIGURATION
// instead of silently dropping the edge section.
func ParseFormat(s string) (Format, error) {
	for f, name := range formatNames {
		if strings.EqualFold(s, name) {
			return Format(f), nil
		}
	}
	return FormatAuto, errors.New(errors.ErrCodeInvalidConfiguration, "unknown edge list format: %q", s)
}

// FormatNames returns the accepted format names in declaration order,
// suitable for CLI help text and shell completion.
func FormatNames() []string {
	names := make([]string, len(formatNames))
	copy(names, formatNames[:])
	return names
}

// Config controls what a summary includes and how it is laid out. The zero
// value is valid: header only, unbounded lines, automatic strategy choice,
// no attribute blocks.
type Config struct {
	// Verbosity selects the amount of detail: 0 renders the header only,
	// 1 or more renders the full body.
	Verbosity int

	// Width bounds the length of every output line in runes. Zero means
	// unbounded: no line is ever split.
	Width int

	// Format selects the edge list strategy. FormatAuto picks one based
	// on the graph.
	Format Format

	// GraphAttributes enables the "+ graph attributes:" block.
	GraphAttributes bool

	// VertexAttributes enables the "+ vertex attributes:" block.
	VertexAttributes bool

	// EdgeAttributes enables per-edge attribute values; only the edgelist
	// strategy renders them, but the auto selector also consults this flag.
	EdgeAttributes bool
}

// DefaultConfig mirrors the defaults of the classic summary: header only,
// 78-column lines, automatic strategy choice, every attribute block on.
func DefaultConfig() Config {
	return Config{
		Verbosity:        0,
		Width:            78,
		Format:           FormatAuto,
		GraphAttributes:  true,
		VertexAttributes: true,
		EdgeAttributes:   true,
	}
}

// Validate reports configuration errors with code INVALID_CONFIGURATION.
func (c Config) Validate() error {
	if c.Width < 0 {
		return errors.New(errors.ErrCodeInvalidConfiguration, "width must be zero or positive, got %d", c.Width)
	}
	if c.Format < FormatAuto || c.Format > FormatEdgeList {
		return errors.New(errors.ErrCodeInvalidConfiguration, "unknown edge list format: Format(%d)", int(c.Format))
	}
	return nil
}
