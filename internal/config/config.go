// Package config provides the optional cppp configuration file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the settings a project can pin in a file instead of
// repeating them on every invocation. Values merge under explicit
// command-line flags.
type Config struct {
	// IncludeDirs extend the include search path, searched before the -I
	// flags given on the command line.
	IncludeDirs []string `yaml:"includeDirs"`

	// Symbols are sym[=val] entries, defined before any -D flags.
	Symbols []string `yaml:"symbols"`

	// MarkerFormat overrides the line-marker template when present. An
	// explicit empty string disables markers, so absence and empty must
	// stay distinguishable.
	MarkerFormat *string `yaml:"markerFormat"`

	// RelativeBase shortens file names in markers and the dependency-rule
	// target.
	RelativeBase string `yaml:"relativeBase"`
}

// Load reads a YAML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing YAML config: %w", err)
	}
	return &cfg, nil
}
