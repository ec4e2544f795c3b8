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
	"errors"
	"fmt"
	"os"

	thermoerrors "github.com/sirseerhq/thermo-cli/internal/errors"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "thermo-cli",
		Short: "Read thermocouple data from an MCC 134 DAQ HAT",
		Long: `thermo-cli reads temperature samples and board metadata from an
MCC 134 thermocouple DAQ HAT and emits them as JSON documents on stdout,
one document per invocation or per sample. Output is compact single-line
JSON by default so line-oriented consumers can parse it directly.`,
		Version:       version,
		SilenceUsage:  true, // Don't show usage on error
		SilenceErrors: true, // We'll handle error printing ourselves
	}

	rootCmd.AddCommand(newReadCommand())
	rootCmd.AddCommand(newInfoCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(mapErrorToExitCode(err))
	}
}

// mapErrorToExitCode maps internal errors to appropriate exit codes
func mapErrorToExitCode(err error) int {
	if err == nil {
		return 0
	}

	// Check for specific error types
	if errors.Is(err, thermoerrors.ErrBoardNotFound) ||
		errors.Is(err, thermoerrors.ErrInvalidChannel) {
		return 2 // Addressing errors
	}

	if errors.Is(err, thermoerrors.ErrHardwareFault) {
		return 3 // Hardware errors
	}

	return 1 // General error
}
