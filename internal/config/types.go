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

// Package config types define the configuration structures used throughout
// thermo-cli. These types represent settings that can be loaded from
// YAML configuration files, environment variables, or command-line flags.
package config

// Config represents the complete configuration for thermo-cli.
// It consolidates settings from various sources and provides a unified
// interface for accessing configuration values throughout the application.
type Config struct {
	Board    BoardConfig     `yaml:"board"`
	Output   OutputConfig    `yaml:"output"`
	Channels []ChannelConfig `yaml:"channels"`
}

// BoardConfig contains board-level settings: which bus address to talk to
// and how often the firmware refreshes readings.
type BoardConfig struct {
	Address        int `yaml:"address"`
	UpdateInterval int `yaml:"update_interval"`
}

// OutputConfig contains default settings for document emission that apply
// unless overridden by command-line flags. Formatted selects the
// multi-line indented layout; the compact single-line layout is the
// default so downstream line-oriented consumers keep working.
type OutputConfig struct {
	Formatted  bool `yaml:"formatted"`
	IncludeADC bool `yaml:"include_adc"`
	IncludeCJC bool `yaml:"include_cjc"`
}

// ChannelConfig selects a channel to read and optionally assigns it a
// label. Labels become the KEY field on batch elements, letting the
// monitor pipeline address probes by name instead of channel number.
type ChannelConfig struct {
	Channel int    `yaml:"channel"`
	Key     string `yaml:"key"`
}

// DefaultConfig returns a Config with sensible defaults suitable for a
// single board at address 0 with all four channels unlabeled.
func DefaultConfig() *Config {
	cfg := &Config{
		Board: BoardConfig{
			Address: 0,
		},
		Output: OutputConfig{
			Formatted: false,
		},
	}
	for ch := 0; ch < 4; ch++ {
		cfg.Channels = append(cfg.Channels, ChannelConfig{Channel: ch})
	}
	return cfg
}
