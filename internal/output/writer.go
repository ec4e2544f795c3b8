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

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/sirseerhq/thermo-cli/internal/jsondoc"
)

// Emitter renders documents and delivers them to an output stream.
// Each document is written as rendered text plus exactly one trailing
// newline, flushed immediately so the monitor pipeline sees complete
// lines without buffering delay.
type Emitter struct {
	mu        sync.Mutex
	output    io.Writer
	count     int
	closeFunc func() error
}

// flusher is satisfied by buffered writers such as bufio.Writer.
// Raw *os.File writes need no flush.
type flusher interface {
	Flush() error
}

// NewEmitter creates an emitter that writes to the specified output.
func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{output: w}
}

// NewFileEmitter creates an emitter that writes to a file.
// The caller must call Close() when done to ensure the file is properly closed.
func NewFileEmitter(filename string) (*Emitter, error) {
	file, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return &Emitter{
		output:    file,
		closeFunc: file.Close,
	}, nil
}

// Emit renders a document in the requested layout and writes it followed
// by a single newline. Concurrent callers are serialized so lines never
// interleave.
func (e *Emitter) Emit(doc jsondoc.Node, formatted bool) error {
	b, err := jsondoc.Render(doc, formatted)
	if err != nil {
		return fmt.Errorf("failed to render document: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.output.Write(append(b, '\n')); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	if f, ok := e.output.(flusher); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("failed to flush output: %w", err)
		}
	}

	e.count++
	return nil
}

// Count returns the number of documents emitted.
func (e *Emitter) Count() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.count
}

// Close closes the underlying writer if it's a file.
func (e *Emitter) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closeFunc != nil {
		return e.closeFunc()
	}
	return nil
}
