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

// Package dispatch consumes a queue of structured editor commands,
// applying each one to the focused window or routing it to the
// injected colon-command runner.
package dispatch

import (
	"github.com/arnvald/vige/internal/editorcmd"
	"github.com/arnvald/vige/internal/model"
	"github.com/arnvald/vige/internal/tab"
	"github.com/arnvald/vige/internal/types"
)

// Target is what the dispatcher mutates: the current tab (for
// SwitchWindow) and the mode it hands back to the caller (for
// EnterMode). Mode is consulted by the main loop to update its
// parser's mode after draining the queue.
type Target struct {
	Tab         *tab.Tab
	Mode        types.Mode
	Message     string
	ScrollCount int
	ExitRequested bool
}

// CommandRunner executes a colon-command's text against the editor,
// returning a status-line message (possibly empty) and whether it
// requested exit. It is injected so dispatch stays independent of the
// editor package's buffer-registry/config wiring.
type CommandRunner func(text string) (message string, exit bool)

// Run drains q against t, invoking runCommand for RunCommand entries.
func Run(q *editorcmd.Queue, t *Target, runCommand CommandRunner) {
	for {
		cmd, ok := q.Pop()
		if !ok {
			return
		}
		dispatchOne(cmd, t, runCommand)
	}
}

func dispatchOne(cmd editorcmd.Command, t *Target, runCommand CommandRunner) {
	w := t.Tab.Focus.Window

	switch cmd.Type {
	case editorcmd.MoveCursor:
		count := cmd.Count
		if count <= 0 {
			count = 1
		}
		w.MoveCursor(cmd.Direction, count)
	case editorcmd.LineStart:
		w.LineStart()
	case editorcmd.LineEnd:
		w.LineEnd()
	case editorcmd.WordMove:
		switch cmd.Op {
		case 'w':
			w.NextWord()
		case 'e':
			w.EndOfWord()
		case 'b':
			w.PrevWord()
		}
	case editorcmd.ViewRow:
		target := cmd.Target
		switch {
		case target == -1:
			target = w.View.ViewRows / 2
		case target == -2:
			target = w.View.ViewRows - 1
		}
		w.ViewRow(target)
	case editorcmd.GotoLine:
		w.GotoLine(cmd.Target)
	case editorcmd.Scroll:
		if cmd.Count > 0 {
			t.ScrollCount = cmd.Count
		}
		w.HalfPageScroll(cmd.Direction, t.ScrollCount)
	case editorcmd.InsertSymbol:
		w.InsertSymbol(model.Symbol(cmd.Symbol))
	case editorcmd.NormalizeCursor:
		w.NormalizeCursor()
	case editorcmd.SwitchWindow:
		t.Tab.SwitchWindow(cmd.Direction)
	case editorcmd.EnterMode:
		t.Mode = cmd.Mode
	case editorcmd.RunCommand:
		if runCommand != nil {
			msg, exit := runCommand(cmd.Text)
			t.Message = msg
			t.ExitRequested = t.ExitRequested || exit
		}
	}
}
