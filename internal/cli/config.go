package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"
)

// =============================================================================
// File Config
// =============================================================================

// fileConfig holds defaults loaded from the TOML config file. All fields are
// pointers so that an absent key can be told apart from a zero value.
type fileConfig struct {
	Summary summaryFileConfig `toml:"summary"`
}

// summaryFileConfig mirrors the summary command's flags.
type summaryFileConfig struct {
	Verbosity   *int    `toml:"verbosity"`
	Width       *int    `toml:"width"`
	Format      *string `toml:"format"`
	GraphAttrs  *bool   `toml:"graph_attrs"`
	VertexAttrs *bool   `toml:"vertex_attrs"`
	EdgeAttrs   *bool   `toml:"edge_attrs"`
}

// loadConfig reads the config file. A missing file is not an error; the
// zero fileConfig means "no defaults configured".
func (c *CLI) loadConfig() (fileConfig, error) {
	path := c.configPath
	explicit := path != ""
	if !explicit {
		p, err := defaultConfigPath()
		if err != nil {
			return fileConfig{}, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return fileConfig{}, nil
		}
		return fileConfig{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg fileConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return fileConfig{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	c.Logger.Debug("Loaded config file", "path", path)
	return cfg, nil
}

// =============================================================================
// Flag Defaults
// =============================================================================

// applyIntDefault overwrites an int flag target with the config value unless
// the flag was set explicitly on the command line.
func applyIntDefault(fs *pflag.FlagSet, name string, target *int, value *int) {
	if value != nil && !fs.Changed(name) {
		*target = *value
	}
}

func applyStringDefault(fs *pflag.FlagSet, name string, target *string, value *string) {
	if value != nil && !fs.Changed(name) {
		*target = *value
	}
}

func applyBoolDefault(fs *pflag.FlagSet, name string, target *bool, value *bool) {
	if value != nil && !fs.Changed(name) {
		*target = *value
	}
}
