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

package output

import "github.com/sirseerhq/thermo-cli/internal/jsondoc"

// DocumentWriter defines the interface for delivering rendered documents.
// This abstraction allows alternative sinks (sockets, test buffers) to be
// implemented without changing the command logic.
type DocumentWriter interface {
	// Emit renders and writes a single document, terminated by one newline
	// and flushed immediately.
	Emit(doc jsondoc.Node, formatted bool) error

	// Close closes the underlying writer and releases any resources.
	// This should be called when all writing is complete.
	Close() error
}
