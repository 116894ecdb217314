package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Config describes the target project and the defaults applied to node
// templates created via the CLI.
type Config struct {
	// Project is the project whose compute resources are managed.
	Project string `mapstructure:"project"`
	// Zone is the default zone for created nodes.
	Zone string `mapstructure:"zone"`
	// Network is the network new nodes attach to.
	Network string `mapstructure:"network"`
	// MachineType is the default hardware profile.
	MachineType string `mapstructure:"machineType"`
	// Image is the default boot image identifier.
	Image string `mapstructure:"image"`
	// ImageProjects overrides the public image catalog projects consulted
	// after the caller's own project. Empty means the built-in defaults.
	ImageProjects []string `mapstructure:"imageProjects"`
}

// LoadFile reads and parses the configuration from a YAML file.
func LoadFile(path string) (*Config, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var rawConfig map[string]interface{}
	if err := yaml.Unmarshal(data, &rawConfig); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	var cfg Config
	if err := mapstructure.Decode(rawConfig, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	// Set defaults
	if cfg.MachineType == "" {
		cfg.MachineType = "n1-standard-1"
	}
	if cfg.Network == "" {
		cfg.Network = "default"
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate checks that required fields are present.
func (c *Config) Validate() error {
	if c.Project == "" {
		return fmt.Errorf("project is required")
	}
	if c.Zone == "" {
		return fmt.Errorf("zone is required")
	}
	return nil
}
