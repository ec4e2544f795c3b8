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

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/sirseerhq/thermo-cli/internal/config"
	"github.com/sirseerhq/thermo-cli/internal/daq"
	thermoerrors "github.com/sirseerhq/thermo-cli/internal/errors"
	"github.com/sirseerhq/thermo-cli/internal/output"
)

func testParams(channels ...config.ChannelConfig) readParams {
	return readParams{
		cfg:      config.DefaultConfig(),
		channels: channels,
	}
}

func TestSampleOnce_SingleChannel(t *testing.T) {
	var buf bytes.Buffer
	writer := output.NewEmitter(&buf)
	source := daq.NewSimSource()

	p := testParams(config.ChannelConfig{Channel: 2, Key: "probe1"})
	if err := sampleOnce(context.Background(), source, writer, p, daq.ReadOptions{}); err != nil {
		t.Fatalf("sampleOnce failed: %v", err)
	}

	// One channel collapses to a flat object, labeled with the config key.
	line := strings.TrimSpace(buf.String())
	if strings.HasPrefix(line, "[") {
		t.Fatalf("single channel emitted an array: %s", line)
	}

	var doc map[string]interface{}
	if err := json.Unmarshal([]byte(line), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if doc["KEY"] != "probe1" {
		t.Errorf("KEY = %v, want probe1", doc["KEY"])
	}
	if doc["CHANNEL"] != float64(2) {
		t.Errorf("CHANNEL = %v, want 2", doc["CHANNEL"])
	}
	if _, ok := doc["TEMPERATURE"]; !ok {
		t.Error("TEMPERATURE missing from document")
	}
	if _, ok := doc["SERIAL"]; !ok {
		t.Error("SERIAL missing; board metadata was not merged")
	}
}

func TestSampleOnce_MultipleChannels(t *testing.T) {
	var buf bytes.Buffer
	writer := output.NewEmitter(&buf)
	source := daq.NewSimSource()

	p := testParams(
		config.ChannelConfig{Channel: 0, Key: "probe1"},
		config.ChannelConfig{Channel: 1},
		config.ChannelConfig{Channel: 3, Key: "probe3"},
	)
	if err := sampleOnce(context.Background(), source, writer, p, daq.ReadOptions{}); err != nil {
		t.Fatalf("sampleOnce failed: %v", err)
	}

	var docs []map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &docs); err != nil {
		t.Fatalf("output is not a JSON array: %v", err)
	}
	if len(docs) != 3 {
		t.Fatalf("got %d documents, want 3", len(docs))
	}

	wantKeys := []interface{}{"probe1", nil, "probe3"}
	wantChannels := []float64{0, 1, 3}
	for i, doc := range docs {
		if doc["KEY"] != wantKeys[i] {
			t.Errorf("doc %d: KEY = %v, want %v", i, doc["KEY"], wantKeys[i])
		}
		if doc["CHANNEL"] != wantChannels[i] {
			t.Errorf("doc %d: CHANNEL = %v, want %v", i, doc["CHANNEL"], wantChannels[i])
		}
	}
}

func TestSampleOnce_Raw(t *testing.T) {
	var buf bytes.Buffer
	writer := output.NewEmitter(&buf)
	source := daq.NewSimSource()

	p := testParams(
		config.ChannelConfig{Channel: 0},
		config.ChannelConfig{Channel: 1},
	)
	p.raw = true

	opts := daq.ReadOptions{IncludeCJC: true}
	if err := sampleOnce(context.Background(), source, writer, p, opts); err != nil {
		t.Fatalf("sampleOnce failed: %v", err)
	}

	// Raw mode emits one document per channel, no metadata fields.
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	for i, line := range lines {
		var doc map[string]interface{}
		if err := json.Unmarshal([]byte(line), &doc); err != nil {
			t.Fatalf("line %d is not valid JSON: %v", i, err)
		}
		if _, ok := doc["SERIAL"]; ok {
			t.Errorf("line %d carries SERIAL in raw mode", i)
		}
		if _, ok := doc["CJC"]; !ok {
			t.Errorf("line %d missing requested CJC", i)
		}
	}
}

func TestSampleOnce_InvalidChannel(t *testing.T) {
	var buf bytes.Buffer
	writer := output.NewEmitter(&buf)
	source := daq.NewSimSource()

	p := testParams(config.ChannelConfig{Channel: 9})
	err := sampleOnce(context.Background(), source, writer, p, daq.ReadOptions{})
	if !errors.Is(err, thermoerrors.ErrInvalidChannel) {
		t.Errorf("err = %v, want ErrInvalidChannel", err)
	}
	if buf.Len() != 0 {
		t.Errorf("partial output emitted on error: %q", buf.String())
	}
}

func TestMapErrorToExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: nil, want: 0},
		{err: errors.New("something else"), want: 1},
		{err: thermoerrors.ErrBoardNotFound, want: 2},
		{err: thermoerrors.ErrInvalidChannel, want: 2},
		{err: thermoerrors.ErrHardwareFault, want: 3},
		{err: fmt.Errorf("wrapped: %w", thermoerrors.ErrInvalidChannel), want: 2},
	}

	for _, tt := range tests {
		if got := mapErrorToExitCode(tt.err); got != tt.want {
			t.Errorf("mapErrorToExitCode(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestOpenSource(t *testing.T) {
	if _, err := openSource(true); err != nil {
		t.Errorf("openSource(sim) failed: %v", err)
	}

	// The default build has no hardware binding.
	if _, err := openSource(false); err == nil {
		t.Error("openSource(hardware) succeeded without daqhats support")
	}
}
