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

//go:build !daqhats

package main

import (
	"fmt"

	"github.com/sirseerhq/thermo-cli/internal/daq"
	thermoerrors "github.com/sirseerhq/thermo-cli/internal/errors"
)

// openHardwareSource opens the libdaqhats-backed source. The cgo binding
// links against the vendor library and is only compiled in with the
// daqhats build tag; this default build supports --sim only.
func openHardwareSource() (daq.Source, error) {
	return nil, fmt.Errorf("built without daqhats support, use --sim: %w", thermoerrors.ErrBoardNotFound)
}
