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

// Package term is the terminal I/O driver: raw-mode setup and a
// double-buffered, differential ANSI renderer. The editor core never
// touches a terminal directly — it only calls Driver/Renderer's public
// methods — so this package is the one place that actually talks to
// the tty, diffing successive screen states and writing only the
// cells that changed.
package term

import (
	"os"

	"golang.org/x/term"
)

// fallbackCols/fallbackRows are used when the OS window-size query
// returns zero (e.g. no controlling tty).
const (
	fallbackRows = 80
	fallbackCols = 190
)

// Driver owns stdin/stdout raw-mode state.
type Driver struct {
	fd       int
	oldState *term.State
}

// NewDriver builds a Driver bound to os.Stdin's file descriptor.
func NewDriver() *Driver {
	return &Driver{fd: int(os.Stdin.Fd())}
}

// Enable puts the terminal into raw (cbreak-equivalent) mode: local
// echo and canonical mode off, reads return as soon as one byte is
// available (VMIN=1, VTIME=0 in the original termios setup).
func (d *Driver) Enable() error {
	state, err := term.MakeRaw(d.fd)
	if err != nil {
		return err
	}
	d.oldState = state
	return nil
}

// Restore returns the terminal to the mode it was in before Enable.
func (d *Driver) Restore() error {
	if d.oldState == nil {
		return nil
	}
	return term.Restore(d.fd, d.oldState)
}

// ReadByte blocks for exactly one input byte.
func (d *Driver) ReadByte() (byte, error) {
	var buf [1]byte
	if _, err := os.Stdin.Read(buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// Size reports the terminal's current columns and rows, falling back
// to 190x80 if the OS query returns zero (e.g. no controlling tty).
func (d *Driver) Size() (cols, rows int) {
	cols, rows, err := term.GetSize(d.fd)
	if err != nil || cols == 0 || rows == 0 {
		return fallbackCols, fallbackRows
	}
	return cols, rows
}
