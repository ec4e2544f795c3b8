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

// BatchDocument shapes a batch of records into an output document.
//
// A single-element batch collapses to a flat object so that single-channel
// queries produce simple, non-nested output; anything else (including an
// empty batch) is an array of objects in input order. Callers depend on
// this shape rule.
//
// sources, when non-nil, runs parallel to data by index and supplies the
// per-element KEY label; an empty key leaves the element unlabeled. A nil
// sources slice labels nothing.
func BatchDocument(data []daq.ThermoData, sources []daq.ThermalSource) jsondoc.Node {
	if len(data) == 1 {
		return ThermoDataObjectWithKey(data[0], batchKey(sources, 0))
	}

	arr := jsondoc.NewArray()
	for i := range data {
		arr.Append(ThermoDataObjectWithKey(data[i], batchKey(sources, i)))
	}
	return arr
}

func batchKey(sources []daq.ThermalSource, i int) string {
	if sources == nil || i >= len(sources) {
		return ""
	}
	return sources[i].Key
}
