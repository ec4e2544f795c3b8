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

// AddThermoDataFields adds the optional fields of a legacy flattened
// record to an existing object. Every field is driven by its own presence
// flag. A CALIBRATION object is composed when either calibration flag is
// set; DATE and SLOPE/OFFSET presence inside it are independent of each
// other.
func AddThermoDataFields(obj *jsondoc.Object, d daq.ThermoData) {
	if d.HasSerial {
		obj.AddString(KeySerial, d.Serial)
	}

	if d.HasCalDate || d.HasCalCoeffs {
		cal := obj.AddObject(KeyCalibration)
		if d.HasCalDate {
			cal.AddString(KeyCalDate, d.CalDate)
		}
		if d.HasCalCoeffs {
			cal.AddNumber(KeyCalSlope, d.CalCoeffs.Slope)
			cal.AddNumber(KeyCalOffset, d.CalCoeffs.Offset)
		}
	}

	if d.HasInterval {
		obj.AddInt(KeyUpdateInterval, d.UpdateInterval)
	}

	if d.HasTemp {
		obj.AddNumber(KeyTemperature, d.Temperature)
	}

	if d.HasADC {
		obj.AddNumber(KeyADC, d.ADCVoltage)
	}

	if d.HasCJC {
		obj.AddNumber(KeyCJC, d.CJCTemp)
	}
}

// ThermoDataObject builds a document object for one flattened record.
// With includeAddress set, ADDRESS and CHANNEL are added unconditionally
// (always both, never just one).
func ThermoDataObject(d daq.ThermoData, includeAddress bool) *jsondoc.Object {
	obj := jsondoc.NewObject()

	if includeAddress {
		obj.AddInt(KeyAddress, d.Address)
		obj.AddInt(KeyChannel, d.Channel)
	}

	AddThermoDataFields(obj, d)
	return obj
}

// ThermoDataObjectWithKey builds a document object for one flattened
// record, tagged with a label. A non-empty key is added first as the KEY
// field; ADDRESS and CHANNEL follow unconditionally.
func ThermoDataObjectWithKey(d daq.ThermoData, key string) *jsondoc.Object {
	obj := jsondoc.NewObject()

	if key != "" {
		obj.AddString(KeyLabel, key)
	}

	obj.AddInt(KeyAddress, d.Address)
	obj.AddInt(KeyChannel, d.Channel)
	AddThermoDataFields(obj, d)

	return obj
}
