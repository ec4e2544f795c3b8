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

// Package errors defines sentinel errors for consistent error handling across the application.
// These errors map to specific exit codes in the CLI for proper scripting support.
package errors

import "errors"

// Sentinel errors for consistent error handling and exit code mapping
var (
	// ErrBoardNotFound indicates no board responded at the requested address.
	// Maps to exit code 2.
	ErrBoardNotFound = errors.New("board not found")

	// ErrInvalidChannel indicates a channel number outside the board's
	// valid range was requested. Maps to exit code 2.
	ErrInvalidChannel = errors.New("invalid channel")

	// ErrHardwareFault indicates the board responded but the read failed
	// (bus error, open thermocouple, common-mode fault). Maps to exit code 3.
	ErrHardwareFault = errors.New("hardware fault")
)
