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

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Board.Address != 0 {
		t.Errorf("default address = %d, want 0", cfg.Board.Address)
	}
	if cfg.Output.Formatted {
		t.Error("default output is formatted, want compact")
	}
	if len(cfg.Channels) != 4 {
		t.Fatalf("default channel count = %d, want 4", len(cfg.Channels))
	}
	for i, ch := range cfg.Channels {
		if ch.Channel != i {
			t.Errorf("default channel %d = %d", i, ch.Channel)
		}
		if ch.Key != "" {
			t.Errorf("default channel %d has label %q", i, ch.Key)
		}
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	content := `
board:
  address: 2
  update_interval: 5
output:
  formatted: true
  include_cjc: true
channels:
  - channel: 0
    key: probe1
  - channel: 3
`
	path := filepath.Join(t.TempDir(), "thermo_config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Board.Address != 2 {
		t.Errorf("address = %d, want 2", cfg.Board.Address)
	}
	if cfg.Board.UpdateInterval != 5 {
		t.Errorf("update_interval = %d, want 5", cfg.Board.UpdateInterval)
	}
	if !cfg.Output.Formatted {
		t.Error("formatted = false, want true")
	}
	if !cfg.Output.IncludeCJC || cfg.Output.IncludeADC {
		t.Errorf("include flags = (adc=%v,cjc=%v)", cfg.Output.IncludeADC, cfg.Output.IncludeCJC)
	}
	if len(cfg.Channels) != 2 {
		t.Fatalf("channel count = %d, want 2", len(cfg.Channels))
	}
	if cfg.Channels[0].Key != "probe1" || cfg.Channels[1].Key != "" {
		t.Errorf("channel keys = (%q,%q)", cfg.Channels[0].Key, cfg.Channels[1].Key)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("loaded config invalid: %v", err)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("THERMO_ADDRESS", "3")
	t.Setenv("THERMO_FORMATTED", "yes")
	t.Setenv("THERMO_INCLUDE_ADC", "1")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Board.Address != 3 {
		t.Errorf("address = %d, want 3", cfg.Board.Address)
	}
	if !cfg.Output.Formatted {
		t.Error("formatted = false, want true")
	}
	if !cfg.Output.IncludeADC {
		t.Error("include_adc = false, want true")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "negative address",
			mutate:  func(c *Config) { c.Board.Address = -1 },
			wantErr: true,
		},
		{
			name:    "channel too high",
			mutate:  func(c *Config) { c.Channels[0].Channel = 4 },
			wantErr: true,
		},
		{
			name:    "negative channel",
			mutate:  func(c *Config) { c.Channels[0].Channel = -1 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"true", true},
		{"YES", true},
		{"1", true},
		{" on ", true},
		{"false", false},
		{"0", false},
		{"", false},
		{"maybe", false},
	}

	for _, tt := range tests {
		if got := parseBool(tt.input); got != tt.want {
			t.Errorf("parseBool(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
