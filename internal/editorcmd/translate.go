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

package editorcmd

import (
	"github.com/arnvald/vige/internal/types"
	"github.com/arnvald/vige/internal/usercmd"
)

// clampCount treats a count of 0 as "unspecified" and clamps it to 1.
func clampCount(n int) int {
	if n <= 0 {
		return 1
	}
	return n
}

// Translate converts one completed user command into zero or more
// editor commands, pushing them onto out. currentLine/totalLines give
// the focused window's absolute cursor line and line count, needed to
// turn gg/G's line-number-or-default counts into an absolute target
// line.
func Translate(cmd usercmd.Command, currentLine, totalLines int, out *Queue) {
	switch cmd.Type {
	case usercmd.Left:
		out.Push(Command{Type: MoveCursor, Direction: types.Left, Count: clampCount(cmd.Count)})
	case usercmd.Right:
		out.Push(Command{Type: MoveCursor, Direction: types.Right, Count: clampCount(cmd.Count)})
	case usercmd.Up:
		out.Push(Command{Type: MoveCursor, Direction: types.Up, Count: clampCount(cmd.Count)})
	case usercmd.Down:
		out.Push(Command{Type: MoveCursor, Direction: types.Down, Count: clampCount(cmd.Count)})
	case usercmd.LineStart:
		out.Push(Command{Type: LineStart})
	case usercmd.LineEnd:
		out.Push(Command{Type: LineEnd})
	case usercmd.NextWord, usercmd.EndOfWord, usercmd.PrevWord:
		out.Push(Command{Type: WordMove, Count: clampCount(cmd.Count), Op: wordOp(cmd.Type)})
	case usercmd.ViewTop:
		out.Push(Command{Type: ViewRow, Target: 0})
	case usercmd.ViewMiddle:
		out.Push(Command{Type: ViewRow, Target: -1}) // dispatcher fills in view_rows/2
	case usercmd.ViewBottom:
		out.Push(Command{Type: ViewRow, Target: -2}) // dispatcher fills in view_rows-1
	case usercmd.GotoFirstLine:
		target := 0
		if cmd.Count > 0 {
			target = cmd.Count - 1
		}
		out.Push(Command{Type: GotoLine, Target: target})
	case usercmd.GotoLastLineOrN:
		target := totalLines - 1
		if cmd.Count > 0 {
			target = cmd.Count - 1
		}
		out.Push(Command{Type: GotoLine, Target: target})
	case usercmd.HalfPageDown:
		out.Push(Command{Type: Scroll, Direction: types.Down, Count: cmd.Count})
	case usercmd.HalfPageUp:
		out.Push(Command{Type: Scroll, Direction: types.Up, Count: cmd.Count})
	case usercmd.EnterCommandMode:
		out.Push(Command{Type: EnterMode, Mode: types.Command})
	case usercmd.InsertAtCursor:
		out.Push(Command{Type: EnterMode, Mode: types.Insert})
	case usercmd.InsertAtLineStart:
		out.Push(Command{Type: LineStart})
		out.Push(Command{Type: EnterMode, Mode: types.Insert})
	case usercmd.AppendAfterCursor:
		out.Push(Command{Type: MoveCursor, Direction: types.Right, Count: 1})
		out.Push(Command{Type: EnterMode, Mode: types.Insert})
	case usercmd.AppendAtLineEnd:
		out.Push(Command{Type: LineEnd})
		out.Push(Command{Type: EnterMode, Mode: types.Insert})
	case usercmd.SwitchWindowLeft:
		out.Push(Command{Type: SwitchWindow, Direction: types.Left})
	case usercmd.SwitchWindowRight:
		out.Push(Command{Type: SwitchWindow, Direction: types.Right})
	case usercmd.SwitchWindowUp:
		out.Push(Command{Type: SwitchWindow, Direction: types.Up})
	case usercmd.SwitchWindowDown:
		out.Push(Command{Type: SwitchWindow, Direction: types.Down})
	case usercmd.Escape:
		out.Push(Command{Type: EnterMode, Mode: types.Normal})
		out.Push(Command{Type: NormalizeCursor})
	case usercmd.CommandSubmit:
		out.Push(Command{Type: RunCommand, Text: cmd.Data})
	case usercmd.InsertByte:
		out.Push(Command{Type: InsertSymbol, Symbol: cmd.Byte})
	}
}

// wordOp names which word motion a WordMove command performs.
func wordOp(t usercmd.Type) byte {
	switch t {
	case usercmd.NextWord:
		return 'w'
	case usercmd.EndOfWord:
		return 'e'
	case usercmd.PrevWord:
		return 'b'
	}
	return 0
}
