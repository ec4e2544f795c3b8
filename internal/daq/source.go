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

package daq

import "context"

// Source defines the interface for acquiring records from a board.
// This interface allows the serialization pipeline to be tested without
// hardware and keeps the bus-level details out of this module.
type Source interface {
	// ReadChannel samples a single thermocouple channel on the board at the
	// given address. Which auxiliary values are populated (and flagged
	// present) is controlled by opts.
	ReadChannel(ctx context.Context, address, channel int, opts ReadOptions) (ChannelReading, error)

	// ReadBoard retrieves the metadata record for the board at the given
	// address, including per-channel calibration data.
	ReadBoard(ctx context.Context, address int) (BoardInfo, error)
}

// ReadOptions selects which auxiliary values a ReadChannel call populates
// alongside the temperature.
type ReadOptions struct {
	// IncludeADC requests the raw ADC input voltage.
	IncludeADC bool

	// IncludeCJC requests the cold-junction sensor temperature.
	IncludeCJC bool
}

// Merge combines a ChannelReading with board metadata into the legacy
// flattened record. Presence flags carry over from the reading; metadata
// flags are derived from the board record's sentinel conventions so that
// downstream serialization is purely flag-driven.
func Merge(r ChannelReading, info BoardInfo) ThermoData {
	d := ThermoData{
		Address: r.Address,
		Channel: r.Channel,

		Serial:    info.Serial,
		HasSerial: info.Serial != "",

		UpdateInterval: info.UpdateInterval,
		HasInterval:    info.UpdateInterval > 0,

		Temperature: r.Temperature,
		HasTemp:     r.HasTemp,

		ADCVoltage: r.ADCVoltage,
		HasADC:     r.HasADC,

		CJCTemp: r.CJCTemp,
		HasCJC:  r.HasCJC,
	}

	if r.Channel >= 0 && r.Channel < NumChannels {
		ch := info.Channels[r.Channel]
		d.CalDate = ch.CalDate
		d.HasCalDate = ch.CalDate != ""
		d.CalCoeffs = ch.CalCoeffs
		d.HasCalCoeffs = ch.CalCoeffs.Slope != 0 || ch.CalCoeffs.Offset != 0
	}

	return d
}
