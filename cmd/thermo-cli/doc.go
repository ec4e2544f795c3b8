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

// Package main implements the thermo-cli command-line interface.
// This tool reads thermocouple samples and board metadata from an MCC 134
// DAQ HAT and outputs them as JSON documents for downstream processing.
//
// The CLI supports:
//   - Reading one or more channels, once or periodically (read)
//   - Dumping board metadata and calibration data (info)
//   - Formatted (indented) or compact (single-line) JSON output
//   - Customizable output destinations (stdout or file)
//   - A simulated board for development without hardware (--sim)
//   - Graceful error handling with appropriate exit codes
//
// Usage:
//
//	thermo-cli read [flags]
//	thermo-cli info [flags]
//
// Example:
//
//	thermo-cli read -C thermo_config.yaml --samples 1
//	thermo-cli info --address 0 --channel 1 --format
//
// Exit codes:
//   - 0: Success
//   - 1: General error
//   - 2: Board or channel addressing error
//   - 3: Hardware fault
package main
