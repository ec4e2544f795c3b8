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

// Package daq defines the record types produced by the MCC 134 thermocouple
// acquisition layer and the Source interface through which they are read.
package daq

// NumChannels is the number of thermocouple channels on an MCC 134 board.
const NumChannels = 4

// ChannelReading is one instantaneous sample from a single channel.
// Each optional value is meaningful only when its presence flag is true;
// the serializer never emits a field whose flag is false, and never infers
// presence from the value (a temperature of exactly 0.0 with HasTemp set
// is still emitted).
type ChannelReading struct {
	Address int
	Channel int

	// Temperature is the linearized thermocouple temperature in degrees C.
	Temperature float64
	HasTemp     bool

	// ADCVoltage is the raw ADC input voltage.
	ADCVoltage float64
	HasADC     bool

	// CJCTemp is the cold-junction-compensation sensor temperature.
	CJCTemp float64
	HasCJC  bool
}

// CalCoeffs holds the per-channel calibration coefficient pair.
type CalCoeffs struct {
	Slope  float64
	Offset float64
}

// ChannelConfig is the per-channel slice of a board's factory metadata.
// An empty CalDate means no calibration date is recorded; both coefficients
// being exactly zero means no coefficients are recorded. These two sentinels
// come from the board EEPROM format and are the only places where absence
// is inferred from a value rather than carried as a flag.
type ChannelConfig struct {
	CalDate   string
	CalCoeffs CalCoeffs
}

// BoardInfo is the metadata record for one physical board.
type BoardInfo struct {
	Address  int
	Serial   string
	Channels [NumChannels]ChannelConfig

	// UpdateInterval is the configured sampling interval in seconds.
	// Zero or negative means unset.
	UpdateInterval int
}

// ThermoData is the legacy flattened record that combines a reading with
// board metadata for one channel. Unlike BoardInfo, every optional field
// carries an explicit presence flag, including the calibration date and
// coefficients. Kept for backward-compatible callers of the batch output
// path.
type ThermoData struct {
	Address int
	Channel int

	Serial    string
	HasSerial bool

	CalDate    string
	HasCalDate bool

	CalCoeffs    CalCoeffs
	HasCalCoeffs bool

	UpdateInterval int
	HasInterval    bool

	Temperature float64
	HasTemp     bool

	ADCVoltage float64
	HasADC     bool

	CJCTemp float64
	HasCJC  bool
}

// ThermalSource carries per-element metadata for a batch of ThermoData
// records, parallel to the batch by index. An empty Key means the element
// is unlabeled.
type ThermalSource struct {
	Key string
}
