// Package target loads the translation configuration file
// (strada.toml): which backends run and how each formats its output.
package target

import (
	"fmt"
	"os"
	"sort"

	"github.com/pelletier/go-toml/v2"
)

// ConfigFileName is the default configuration file name.
const ConfigFileName = "strada.toml"

// Config is the translation project configuration.
type Config struct {
	Project Project           `toml:"project"`
	Output  Output            `toml:"output"`
	Targets map[string]Target `toml:"targets"`
}

// Project identifies the translated project.
type Project struct {
	Name string `toml:"name"`
}

// Output controls where translated files are written.
type Output struct {
	Dir string `toml:"dir"`
}

// Target holds per-backend options.
type Target struct {
	Enabled bool   `toml:"enabled"`
	Indent  string `toml:"indent"`
}

// Default returns the configuration used when no file is present:
// all backends enabled, output beside the input.
func Default() *Config {
	return &Config{
		Output: Output{Dir: "."},
		Targets: map[string]Target{
			"cs":   {Enabled: true, Indent: "    "},
			"java": {Enabled: true, Indent: "    "},
			"js":   {Enabled: true, Indent: "  "},
		},
	}
}

// Load reads a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	var c Config
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if c.Output.Dir == "" {
		c.Output.Dir = "."
	}
	return &c, nil
}

// Save writes the configuration to path.
func (c *Config) Save(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Enabled returns the enabled target names, sorted.
func (c *Config) Enabled() []string {
	var names []string
	for name, t := range c.Targets {
		if t.Enabled {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
