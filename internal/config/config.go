// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config provides configuration management for thermo-cli with
// support for multiple configuration sources and a well-defined precedence
// order.
//
// Configuration sources (in precedence order, highest to lowest):
//  1. Command-line flags
//  2. Environment variables
//  3. Configuration file
//  4. Built-in defaults
//
// The package supports YAML configuration files and provides automatic
// discovery of configuration in standard locations, including the
// thermo_config.yaml the monitor pipeline ships alongside the binary.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load loads configuration from multiple sources and applies them in
// the correct precedence order. If configPath is provided, it loads from
// that specific file. Otherwise, it searches standard locations:
//   - .thermo-cli.yaml (current directory)
//   - thermo_config.yaml (current directory)
//   - ~/.thermo/config.yaml
//
// Environment variables are applied after loading the config file, allowing
// runtime overrides.
//
// Returns an error if the specified config file cannot be loaded, but will
// succeed with defaults if no config file is found in standard locations.
func Load(configPath string) (*Config, error) {
	// Start with defaults
	cfg := DefaultConfig()

	if configPath != "" {
		if err := loadConfigFile(expandPath(configPath), cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	} else {
		// Try default locations
		defaultPaths := []string{
			".thermo-cli.yaml",
			"thermo_config.yaml",
			filepath.Join(os.Getenv("HOME"), ".thermo", "config.yaml"),
		}

		for _, path := range defaultPaths {
			if _, err := os.Stat(path); err == nil {
				if err := loadConfigFile(path, cfg); err != nil {
					return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
				}
				break
			}
		}
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// loadConfigFile reads and parses a YAML config file
func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(cfg *Config) {
	if addr := os.Getenv("THERMO_ADDRESS"); addr != "" {
		if a, err := parseNonNegativeInt(addr); err == nil {
			cfg.Board.Address = a
		}
	}
	if formatted := os.Getenv("THERMO_FORMATTED"); formatted != "" {
		cfg.Output.Formatted = parseBool(formatted)
	}
	if adc := os.Getenv("THERMO_INCLUDE_ADC"); adc != "" {
		cfg.Output.IncludeADC = parseBool(adc)
	}
	if cjc := os.Getenv("THERMO_INCLUDE_CJC"); cjc != "" {
		cfg.Output.IncludeCJC = parseBool(cjc)
	}
}

// expandPath expands ~ and environment variables in paths
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home := os.Getenv("HOME")
		if home == "" {
			home = os.Getenv("USERPROFILE") // Windows
		}
		path = filepath.Join(home, path[2:])
	}
	return os.ExpandEnv(path)
}

// parseNonNegativeInt parses a string to a non-negative integer
func parseNonNegativeInt(s string) (int, error) {
	var i int
	_, err := fmt.Sscanf(s, "%d", &i)
	if err != nil {
		return 0, fmt.Errorf("failed to parse integer from '%s': %w", s, err)
	}
	if i < 0 {
		return 0, fmt.Errorf("value must be non-negative, got: %d", i)
	}
	return i, nil
}

// parseBool parses various boolean representations
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "yes" || s == "1" || s == "on"
}

// Validate checks if the configuration contains valid values. It ensures
// the board address and channel numbers are within the ranges the MCC 134
// supports. This should be called after loading configuration to catch
// invalid settings early.
func (c *Config) Validate() error {
	if c.Board.Address < 0 {
		return fmt.Errorf("board address must be non-negative, got: %d", c.Board.Address)
	}
	for _, ch := range c.Channels {
		if ch.Channel < 0 || ch.Channel > 3 {
			return fmt.Errorf("channel %d out of range [0,3]", ch.Channel)
		}
	}
	return nil
}
