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

	"github.com/sirseerhq/thermo-cli/internal/config"
	"github.com/sirseerhq/thermo-cli/internal/serialize"
	"github.com/spf13/cobra"
)

// infoCmd represents the info command
func newInfoCommand() *cobra.Command {
	var (
		configPath string
		address    int
		channel    int
		formatted  bool
		outputFile string
		useSim     bool
	)

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Emit board metadata as a JSON document",
		Long: `Emit the metadata record of a board: serial number, update interval
and, when --channel selects a specific channel, that channel's factory
calibration data. Without --channel, calibration data is omitted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if cmd.Flags().Changed("address") {
				cfg.Board.Address = address
			}
			if cmd.Flags().Changed("format") {
				cfg.Output.Formatted = formatted
			}

			return runInfo(cmd.Context(), cfg, channel, outputFile, useSim)
		},
	}

	// Define flags
	cmd.Flags().StringVarP(&configPath, "config", "C", "", "Config file path (default: standard locations)")
	cmd.Flags().IntVar(&address, "address", 0, "Board address (overrides config)")
	cmd.Flags().IntVar(&channel, "channel", -1, "Channel whose calibration data to include (-1 = none)")
	cmd.Flags().BoolVar(&formatted, "format", false, "Emit formatted (indented) JSON instead of compact")
	cmd.Flags().StringVar(&outputFile, "output", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&useSim, "sim", false, "Use a simulated board instead of hardware")

	return cmd
}

// runInfo executes the info command
func runInfo(ctx context.Context, cfg *config.Config, channel int, outputFile string, useSim bool) error {
	source, err := openSource(useSim)
	if err != nil {
		return err
	}

	writer, err := openWriter(outputFile)
	if err != nil {
		return err
	}
	defer writer.Close()

	info, err := source.ReadBoard(ctx, cfg.Board.Address)
	if err != nil {
		return err
	}

	return writer.Emit(serialize.BoardInfoObject(info, channel), cfg.Output.Formatted)
}
