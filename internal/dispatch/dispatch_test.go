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

package dispatch

import (
	"testing"

	"github.com/arnvald/vige/internal/buffer"
	"github.com/arnvald/vige/internal/editorcmd"
	"github.com/arnvald/vige/internal/tab"
	"github.com/arnvald/vige/internal/types"
	"github.com/arnvald/vige/internal/window"
)

func newTarget(content string) *Target {
	buf := buffer.NewEmptyBuffer()
	buf.LoadBytes([]byte(content))
	w := window.New(buf, 0, 0, 80, 11, 0)
	return &Target{Tab: tab.NewTab(w), Mode: types.Normal}
}

func TestMoveCursorCountZeroClampedToOne(t *testing.T) {
	target := newTarget("abc\n")
	q := &editorcmd.Queue{}
	q.Push(editorcmd.Command{Type: editorcmd.MoveCursor, Direction: types.Right, Count: 0})
	Run(q, target, nil)
	w := target.Tab.Focus.Window
	if w.Cursor.Pos.X != 1 {
		t.Fatalf("cursor x = %d, want 1", w.Cursor.Pos.X)
	}
}

func TestInsertThenNormalizeCursorScenario(t *testing.T) {
	target := newTarget("\n")
	q := &editorcmd.Queue{}
	for _, ch := range "abc" {
		q.Push(editorcmd.Command{Type: editorcmd.InsertSymbol, Symbol: byte(ch)})
	}
	q.Push(editorcmd.Command{Type: editorcmd.NormalizeCursor})
	Run(q, target, nil)
	w := target.Tab.Focus.Window
	if w.Cursor.Item.Symbol != 'c' {
		t.Fatalf("cursor at %q after normalize, want 'c'", w.Cursor.Item.Symbol)
	}
}

func TestRunCommandSetsMessageAndExit(t *testing.T) {
	target := newTarget("\n")
	q := &editorcmd.Queue{}
	q.Push(editorcmd.Command{Type: editorcmd.RunCommand, Text: "xyz"})
	Run(q, target, func(text string) (string, bool) {
		return "Not an editor command: " + text, false
	})
	if target.Message != "Not an editor command: xyz" {
		t.Fatalf("message = %q", target.Message)
	}
	if target.ExitRequested {
		t.Fatalf("unexpected exit request")
	}
}

func TestRunCommandQuitRequestsExit(t *testing.T) {
	target := newTarget("\n")
	q := &editorcmd.Queue{}
	q.Push(editorcmd.Command{Type: editorcmd.RunCommand, Text: "quit"})
	Run(q, target, func(text string) (string, bool) {
		if text == "quit" || text == "q" {
			return "", true
		}
		return "", false
	})
	if !target.ExitRequested {
		t.Fatalf("expected exit request for :quit")
	}
}

func TestSwitchWindowNoNeighborIsNoop(t *testing.T) {
	target := newTarget("\n")
	before := target.Tab.Focus
	q := &editorcmd.Queue{}
	q.Push(editorcmd.Command{Type: editorcmd.SwitchWindow, Direction: types.Right})
	Run(q, target, nil)
	if target.Tab.Focus != before {
		t.Fatalf("focus changed with no neighbor")
	}
}
