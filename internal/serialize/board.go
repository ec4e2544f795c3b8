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

package serialize

import (
	"github.com/sirseerhq/thermo-cli/internal/daq"
	"github.com/sirseerhq/thermo-cli/internal/jsondoc"
)

// AddBoardInfoFields adds board metadata to an existing object.
//
// SERIAL is included iff non-empty. When channel is a valid index, the
// channel's calibration data is composed as a nested CALIBRATION object:
// DATE iff the date string is non-empty, SLOPE and OFFSET together iff
// either coefficient is nonzero. When neither holds, the CALIBRATION key
// is omitted entirely rather than emitted as an empty object. An
// out-of-range channel (negative means "no specific channel") skips
// calibration but still considers SERIAL and UPDATE_INTERVAL.
// UPDATE_INTERVAL is included iff strictly positive.
func AddBoardInfoFields(obj *jsondoc.Object, info daq.BoardInfo, channel int) {
	if info.Serial != "" {
		obj.AddString(KeySerial, info.Serial)
	}

	if channel >= 0 && channel < daq.NumChannels {
		ch := info.Channels[channel]

		hasCalDate := ch.CalDate != ""
		hasCalCoeffs := ch.CalCoeffs.Slope != 0 || ch.CalCoeffs.Offset != 0

		if hasCalDate || hasCalCoeffs {
			cal := obj.AddObject(KeyCalibration)
			if hasCalDate {
				cal.AddString(KeyCalDate, ch.CalDate)
			}
			if hasCalCoeffs {
				cal.AddNumber(KeyCalSlope, ch.CalCoeffs.Slope)
				cal.AddNumber(KeyCalOffset, ch.CalCoeffs.Offset)
			}
		}
	}

	if info.UpdateInterval > 0 {
		obj.AddInt(KeyUpdateInterval, info.UpdateInterval)
	}
}

// BoardInfoObject builds a document object for board metadata. ADDRESS is
// always present; CHANNEL only when a specific channel was requested
// (channel >= 0).
func BoardInfoObject(info daq.BoardInfo, channel int) *jsondoc.Object {
	obj := jsondoc.NewObject()
	obj.AddInt(KeyAddress, info.Address)
	if channel >= 0 {
		obj.AddInt(KeyChannel, channel)
	}
	AddBoardInfoFields(obj, info, channel)
	return obj
}
