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

// Package serialize maps acquisition records to output documents.
//
// Field names and their order within each document are a compatibility
// contract with downstream consumers (the monitor pipeline parses them by
// name); they must not change. Optional fields are driven by the record's
// presence flags, with two exceptions inherited from the board EEPROM
// format: calibration coefficients are absent when both are exactly zero,
// and the update interval is absent when it is not strictly positive.
// Both exceptions apply only on the BoardInfo path; the legacy ThermoData
// path carries explicit flags for everything.
package serialize

// Output document field names. Case-sensitive, pinned by consumers.
const (
	KeyAddress        = "ADDRESS"
	KeyChannel        = "CHANNEL"
	KeySerial         = "SERIAL"
	KeyCalibration    = "CALIBRATION"
	KeyCalDate        = "DATE"
	KeyCalSlope       = "SLOPE"
	KeyCalOffset      = "OFFSET"
	KeyUpdateInterval = "UPDATE_INTERVAL"
	KeyTemperature    = "TEMPERATURE"
	KeyADC            = "ADC"
	KeyCJC            = "CJC"
	KeyLabel          = "KEY"
)
