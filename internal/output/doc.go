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

// Package output delivers rendered JSON documents to an output stream.
// Documents arrive as jsondoc trees, are rendered in a formatted
// (multi-line, indented) or compact (single-line) layout, and are written
// with exactly one trailing newline per document followed by an immediate
// flush. Downstream consumers such as the monitor pipeline read stdout
// line by line, so partial or interleaved lines are never acceptable.
//
// The primary type is Emitter, which provides thread-safe emission to an
// io.Writer or file.
//
// Example usage:
//
//	e := output.NewEmitter(os.Stdout)
//	defer e.Close()
//
//	if err := e.Emit(doc, false); err != nil {
//	    log.Fatal(err)
//	}
package output
