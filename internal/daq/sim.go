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

import (
	"context"
	"fmt"

	thermoerrors "github.com/sirseerhq/thermo-cli/internal/errors"
)

// SimSource is a deterministic in-memory implementation of Source, used
// both by the --sim flag and by tests. Readings are a fixed function of
// address and channel so golden output is stable across runs.
type SimSource struct {
	// Boards maps address to the metadata record to return. When a board
	// is missing and FailBoard is unset, a default record is synthesized.
	Boards map[int]BoardInfo

	// Behavior flags
	FailBoard   bool
	FailChannel bool

	// Track calls for verification
	CallCount   int
	LastAddress int
	LastChannel int
	LastOpts    ReadOptions
}

// NewSimSource creates a simulated source with one default board at
// address 0.
func NewSimSource() *SimSource {
	return &SimSource{
		Boards: map[int]BoardInfo{0: simBoard(0)},
	}
}

// ReadChannel implements the Source interface.
func (s *SimSource) ReadChannel(ctx context.Context, address, channel int, opts ReadOptions) (ChannelReading, error) {
	s.CallCount++
	s.LastAddress = address
	s.LastChannel = channel
	s.LastOpts = opts

	if err := ctx.Err(); err != nil {
		return ChannelReading{}, err
	}

	if s.FailChannel || channel < 0 || channel >= NumChannels {
		return ChannelReading{}, fmt.Errorf("channel %d on board %d: %w", channel, address, thermoerrors.ErrInvalidChannel)
	}
	if _, ok := s.Boards[address]; !ok && s.FailBoard {
		return ChannelReading{}, fmt.Errorf("board %d: %w", address, thermoerrors.ErrBoardNotFound)
	}

	r := ChannelReading{
		Address:     address,
		Channel:     channel,
		Temperature: 20.0 + float64(address) + 0.25*float64(channel),
		HasTemp:     true,
	}
	if opts.IncludeADC {
		r.ADCVoltage = 0.001 * float64(channel+1)
		r.HasADC = true
	}
	if opts.IncludeCJC {
		r.CJCTemp = 24.5 + 0.1*float64(channel)
		r.HasCJC = true
	}
	return r, nil
}

// ReadBoard implements the Source interface.
func (s *SimSource) ReadBoard(ctx context.Context, address int) (BoardInfo, error) {
	s.CallCount++
	s.LastAddress = address

	if err := ctx.Err(); err != nil {
		return BoardInfo{}, err
	}

	if info, ok := s.Boards[address]; ok {
		return info, nil
	}
	if s.FailBoard {
		return BoardInfo{}, fmt.Errorf("board %d: %w", address, thermoerrors.ErrBoardNotFound)
	}
	return simBoard(address), nil
}

func simBoard(address int) BoardInfo {
	info := BoardInfo{
		Address:        address,
		Serial:         fmt.Sprintf("SIM%05d", address),
		UpdateInterval: 1,
	}
	for ch := 0; ch < NumChannels; ch++ {
		info.Channels[ch] = ChannelConfig{
			CalDate: "2025-01-15",
			CalCoeffs: CalCoeffs{
				Slope:  1.0,
				Offset: 0.01 * float64(ch),
			},
		}
	}
	return info
}
