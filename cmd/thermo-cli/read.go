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
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/sirseerhq/thermo-cli/internal/config"
	"github.com/sirseerhq/thermo-cli/internal/daq"
	"github.com/sirseerhq/thermo-cli/internal/output"
	"github.com/sirseerhq/thermo-cli/internal/serialize"
	"github.com/spf13/cobra"
)

// readCmd represents the read command
func newReadCommand() *cobra.Command {
	var (
		configPath string
		address    int
		channels   []int
		withADC    bool
		withCJC    bool
		raw        bool
		formatted  bool
		outputFile string
		useSim     bool
		samples    int
		interval   float64
	)

	cmd := &cobra.Command{
		Use:   "read",
		Short: "Read thermocouple channels and emit JSON documents",
		Long: `Read one or more thermocouple channels and emit the samples as JSON.

A single channel produces a flat object per sample; multiple channels
produce an array of objects per sample, in channel order. Channels and
their labels default to the configuration file and can be overridden
with --channel.

With --samples N, N documents are emitted, one per sampling interval.
--samples 0 samples until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			// Flags override config
			if cmd.Flags().Changed("address") {
				cfg.Board.Address = address
			}
			if cmd.Flags().Changed("format") {
				cfg.Output.Formatted = formatted
			}
			if cmd.Flags().Changed("adc") {
				cfg.Output.IncludeADC = withADC
			}
			if cmd.Flags().Changed("cjc") {
				cfg.Output.IncludeCJC = withCJC
			}
			selected := cfg.Channels
			if cmd.Flags().Changed("channel") {
				selected = nil
				for _, ch := range channels {
					selected = append(selected, config.ChannelConfig{Channel: ch})
				}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			return runRead(ctx, readParams{
				cfg:        cfg,
				channels:   selected,
				raw:        raw,
				outputFile: outputFile,
				useSim:     useSim,
				samples:    samples,
				interval:   interval,
			})
		},
	}

	// Define flags
	cmd.Flags().StringVarP(&configPath, "config", "C", "", "Config file path (default: standard locations)")
	cmd.Flags().IntVar(&address, "address", 0, "Board address (overrides config)")
	cmd.Flags().IntSliceVar(&channels, "channel", nil, "Channel to read, repeatable (default: channels from config)")
	cmd.Flags().BoolVar(&withADC, "adc", false, "Include raw ADC voltage in output")
	cmd.Flags().BoolVar(&withCJC, "cjc", false, "Include cold-junction temperature in output")
	cmd.Flags().BoolVar(&raw, "raw", false, "Emit bare readings without board metadata, one document per channel")
	cmd.Flags().BoolVar(&formatted, "format", false, "Emit formatted (indented) JSON instead of compact")
	cmd.Flags().StringVar(&outputFile, "output", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&useSim, "sim", false, "Use a simulated board instead of hardware")
	cmd.Flags().IntVarP(&samples, "samples", "s", 1, "Number of sampling rounds (0 = until interrupted)")
	cmd.Flags().Float64Var(&interval, "interval", 1.0, "Seconds between sampling rounds")

	return cmd
}

// readParams carries the resolved settings for one read invocation.
type readParams struct {
	cfg        *config.Config
	channels   []config.ChannelConfig
	raw        bool
	outputFile string
	useSim     bool
	samples    int
	interval   float64
}

// runRead executes the read command
func runRead(ctx context.Context, p readParams) error {
	source, err := openSource(p.useSim)
	if err != nil {
		return err
	}

	writer, err := openWriter(p.outputFile)
	if err != nil {
		return err
	}
	defer writer.Close()

	if len(p.channels) == 0 {
		return fmt.Errorf("no channels selected")
	}

	opts := daq.ReadOptions{
		IncludeADC: p.cfg.Output.IncludeADC,
		IncludeCJC: p.cfg.Output.IncludeCJC,
	}

	for round := 0; p.samples == 0 || round < p.samples; round++ {
		if round > 0 {
			if err := sleepInterval(ctx, p.interval); err != nil {
				// Interrupted between rounds; every emitted document is
				// complete, so stop cleanly.
				return nil
			}
		}

		if err := sampleOnce(ctx, source, writer, p, opts); err != nil {
			return err
		}
	}

	return nil
}

// sampleOnce reads every selected channel and emits one document
// (or, in raw mode, one document per channel).
func sampleOnce(ctx context.Context, source daq.Source, writer output.DocumentWriter, p readParams, opts daq.ReadOptions) error {
	address := p.cfg.Board.Address

	if p.raw {
		for _, ch := range p.channels {
			reading, err := source.ReadChannel(ctx, address, ch.Channel, opts)
			if err != nil {
				return err
			}
			if err := writer.Emit(serialize.ReadingObject(reading), p.cfg.Output.Formatted); err != nil {
				return fmt.Errorf("failed to write reading: %w", err)
			}
		}
		return nil
	}

	info, err := source.ReadBoard(ctx, address)
	if err != nil {
		return err
	}

	batch := make([]daq.ThermoData, 0, len(p.channels))
	sources := make([]daq.ThermalSource, 0, len(p.channels))
	for _, ch := range p.channels {
		reading, err := source.ReadChannel(ctx, address, ch.Channel, opts)
		if err != nil {
			return err
		}
		batch = append(batch, daq.Merge(reading, info))
		sources = append(sources, daq.ThermalSource{Key: ch.Key})
	}

	doc := serialize.BatchDocument(batch, sources)
	if err := writer.Emit(doc, p.cfg.Output.Formatted); err != nil {
		return fmt.Errorf("failed to write batch: %w", err)
	}
	return nil
}

// sleepInterval waits out one sampling interval, returning early with the
// context's error if interrupted.
func sleepInterval(ctx context.Context, seconds float64) error {
	timer := time.NewTimer(time.Duration(seconds * float64(time.Second)))
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// openSource returns the acquisition source for this invocation.
func openSource(useSim bool) (daq.Source, error) {
	if useSim {
		return daq.NewSimSource(), nil
	}
	return openHardwareSource()
}

// openWriter returns the document writer for this invocation.
func openWriter(outputFile string) (output.DocumentWriter, error) {
	if outputFile == "" {
		return output.NewEmitter(os.Stdout), nil
	}
	writer, err := output.NewFileEmitter(outputFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return writer, nil
}
