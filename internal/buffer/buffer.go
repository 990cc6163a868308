//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package buffer owns the text model for one file: a Line list plus
// the filename it was loaded from (if any).
package buffer

import (
	"errors"
	"os"

	"github.com/arnvald/vige/internal/model"
)

// ErrNoFileName is returned by Write when neither a path argument nor
// the buffer's own FileName is available.
var ErrNoFileName = errors.New("buffer has no file name")

// Buffer is a text model plus the filename it persists to. Multiple
// windows may reference the same Buffer; it outlives any one of them.
type Buffer struct {
	Head     *model.Line
	FileName string
}

// NewEmptyBuffer builds the one-line, one-newline-sentinel buffer a
// fresh window starts with.
func NewEmptyBuffer() *Buffer {
	return &Buffer{Head: model.NewEmptyLine()}
}

// LoadBytes replaces the buffer's contents with the lines in b.
func (buf *Buffer) LoadBytes(b []byte) {
	buf.Head = model.NewLinesFromBytes(b)
}

// Bytes renders the buffer's full contents back to a flat byte slice.
func (buf *Buffer) Bytes() []byte {
	return model.Bytes(buf.Head)
}

// LineCount reports how many lines the buffer currently holds.
func (buf *Buffer) LineCount() int {
	return model.Count(buf.Head)
}

// Load reads path from disk into a new buffer.
func Load(path string) (*Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	buf := &Buffer{FileName: path}
	buf.LoadBytes(data)
	return buf, nil
}

// Write persists the buffer's contents to path, or to buf.FileName if
// path is empty. It does not change buf.FileName when path is given
// explicitly and differs from the buffer's current name — that mirrors
// vi's `:w name` writing a copy without renaming the buffer.
func (buf *Buffer) Write(path string) error {
	if path == "" {
		path = buf.FileName
	}
	if path == "" {
		return ErrNoFileName
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}
