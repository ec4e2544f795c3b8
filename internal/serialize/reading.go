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

// AddReadingFields adds the measured values of a reading to an existing
// object. Each value is included iff its presence flag is set; the value
// itself is never consulted.
func AddReadingFields(obj *jsondoc.Object, r daq.ChannelReading) {
	if r.HasTemp {
		obj.AddNumber(KeyTemperature, r.Temperature)
	}
	if r.HasADC {
		obj.AddNumber(KeyADC, r.ADCVoltage)
	}
	if r.HasCJC {
		obj.AddNumber(KeyCJC, r.CJCTemp)
	}
}

// ReadingObject builds a document object for one channel reading.
// ADDRESS and CHANNEL identify the sample and are always present.
func ReadingObject(r daq.ChannelReading) *jsondoc.Object {
	obj := jsondoc.NewObject()
	obj.AddInt(KeyAddress, r.Address)
	obj.AddInt(KeyChannel, r.Channel)
	AddReadingFields(obj, r)
	return obj
}
