// Package config holds the wallace tool configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/remogolf/wallace/pkg/logfile"
)

// Config represents the wallace configuration. Command-line flags override
// anything set here.
type Config struct {
	Registry     string  `yaml:"registry"`
	OutputDir    string  `yaml:"output_dir"`
	UnknownTypes string  `yaml:"unknown_types"` // "drop" or "warn"
	MaxPayload   int     `yaml:"max_payload"`
	Logging      Logging `yaml:"logging"`
}

// Logging contains logging configuration.
type Logging struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Registry:     "messages.json",
		OutputDir:    "output",
		UnknownTypes: "drop",
		Logging: Logging{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from the specified path, filling unset
// fields with defaults.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		configPath = absPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if _, err := config.UnknownTypePolicy(); err != nil {
		return nil, err
	}
	return config, nil
}

// UnknownTypePolicy maps the configured policy name to its extraction option.
func (c *Config) UnknownTypePolicy() (logfile.UnknownTypePolicy, error) {
	switch c.UnknownTypes {
	case "", "drop":
		return logfile.DropUnknown, nil
	case "warn":
		return logfile.WarnUnknown, nil
	}
	return 0, fmt.Errorf("unknown_types must be \"drop\" or \"warn\", got %q", c.UnknownTypes)
}
