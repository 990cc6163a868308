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

// Package input is the per-mode byte-to-UserCommand state machine: an
// accumulator string plus a numeric multiplier, fed one raw input byte
// at a time.
package input

import (
	"github.com/arnvald/vige/internal/types"
	"github.com/arnvald/vige/internal/usercmd"
)

const (
	escape    = 0x1B
	backspace = 0x7F
	enter     = 0x0A
	ctrlD     = 0x04
	ctrlU     = 0x15
	ctrlW     = 0x17
)

// table maps a complete normal-mode accumulator to the command it
// produces. The two-byte Ctrl-W sequences are looked up the same way,
// keyed on their two-byte string.
var table = map[string]usercmd.Type{
	"h":           usercmd.Left,
	"l":           usercmd.Right,
	"k":           usercmd.Up,
	"j":           usercmd.Down,
	"^":           usercmd.LineStart,
	"$":           usercmd.LineEnd,
	"w":           usercmd.NextWord,
	"e":           usercmd.EndOfWord,
	"b":           usercmd.PrevWord,
	"H":           usercmd.ViewTop,
	"M":           usercmd.ViewMiddle,
	"L":           usercmd.ViewBottom,
	"gg":          usercmd.GotoFirstLine,
	"G":           usercmd.GotoLastLineOrN,
	":":           usercmd.EnterCommandMode,
	"i":           usercmd.InsertAtCursor,
	"I":           usercmd.InsertAtLineStart,
	"a":                         usercmd.AppendAfterCursor,
	"A":                         usercmd.AppendAtLineEnd,
	string([]byte{ctrlD}):      usercmd.HalfPageDown,
	string([]byte{ctrlU}):      usercmd.HalfPageUp,
	string([]byte{ctrlW, 'h'}): usercmd.SwitchWindowLeft,
	string([]byte{ctrlW, 'l'}): usercmd.SwitchWindowRight,
	string([]byte{ctrlW, 'j'}): usercmd.SwitchWindowDown,
	string([]byte{ctrlW, 'k'}): usercmd.SwitchWindowUp,
}

// isPrefix reports whether s is a prefix of some entry in table (or
// equal to one — exact matches are also valid prefixes of themselves).
func isPrefix(s string) bool {
	if s == "" {
		return true
	}
	for k := range table {
		if len(k) >= len(s) && k[:len(s)] == s {
			return true
		}
	}
	return false
}

// NormalState is the partial state accumulated while parsing normal
// mode key sequences: the pending non-digit bytes, and the numeric
// count built from leading digits.
type NormalState struct {
	Accumulator string
	Count       int
}

func (s *NormalState) reset() {
	s.Accumulator = ""
	s.Count = 0
}

// CommandState is the partial colon-command string.
type CommandState struct {
	Text string
}

// Parser turns a stream of raw bytes into usercmd.Commands, queued on
// out. It owns the current Mode and both partial-state accumulators.
type Parser struct {
	Mode    types.Mode
	Normal  NormalState
	Command CommandState
}

// Feed processes one input byte, pushing zero or more completed
// commands onto out.
func (p *Parser) Feed(b byte, out *usercmd.Queue) {
	if b == escape {
		p.Normal.reset()
		p.Command.Text = ""
		p.Mode = types.Normal
		out.Push(usercmd.Command{Type: usercmd.Escape})
		return
	}

	switch p.Mode {
	case types.Normal:
		p.feedNormal(b, out)
	case types.Command:
		p.feedCommand(b, out)
	case types.Insert:
		out.Push(usercmd.Command{Type: usercmd.InsertByte, Byte: b})
	}
}

func (p *Parser) feedNormal(b byte, out *usercmd.Queue) {
	if p.Normal.Accumulator == "" && b >= '0' && b <= '9' {
		p.Normal.Count = p.Normal.Count*10 + int(b-'0')
		return
	}

	p.Normal.Accumulator += string(b)
	if !isPrefix(p.Normal.Accumulator) {
		p.Normal.reset()
		return
	}
	typ, exact := table[p.Normal.Accumulator]
	if !exact {
		return
	}

	count := p.Normal.Count
	switch typ {
	case usercmd.EnterCommandMode:
		p.Mode = types.Command
	case usercmd.InsertAtCursor, usercmd.InsertAtLineStart,
		usercmd.AppendAfterCursor, usercmd.AppendAtLineEnd:
		p.Mode = types.Insert
	}
	out.Push(usercmd.Command{Type: typ, Count: count})
	p.Normal.reset()
}

func (p *Parser) feedCommand(b byte, out *usercmd.Queue) {
	switch b {
	case enter:
		out.Push(usercmd.Command{Type: usercmd.CommandSubmit, Data: p.Command.Text})
		p.Command.Text = ""
		p.Mode = types.Normal
	case backspace:
		if n := len(p.Command.Text); n > 0 {
			p.Command.Text = p.Command.Text[:n-1]
		}
	default:
		p.Command.Text += string(b)
	}
}
