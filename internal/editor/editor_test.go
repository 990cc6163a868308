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

package editor

import (
	"testing"

	"github.com/arnvald/vige/internal/config"
)

func newTestEditor(t *testing.T) *Editor {
	t.Helper()
	e, err := New(&config.Config{}, 20, 10)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

func feed(e *Editor, s string) {
	for i := 0; i < len(s); i++ {
		e.HandleByte(s[i])
	}
}

func TestInsertAbcThenEscapeScenario(t *testing.T) {
	e := newTestEditor(t)
	feed(e, "iabc\x1b")

	w := e.Tab.Focus.Window
	if got := string(w.Buffer.Bytes()); got != "abc\n" {
		t.Fatalf("buffer = %q, want %q", got, "abc\n")
	}
	if w.Cursor.Pos.X != 2 {
		t.Fatalf("cursor.X = %d, want 2", w.Cursor.Pos.X)
	}
}

func TestInsertHelloEnterWorldScenario(t *testing.T) {
	e := newTestEditor(t)
	feed(e, "ihello\nworld\x1b")

	w := e.Tab.Focus.Window
	if got := string(w.Buffer.Bytes()); got != "hello\nworld\n" {
		t.Fatalf("buffer = %q, want %q", got, "hello\nworld\n")
	}
}

func TestQuitScenario(t *testing.T) {
	e := newTestEditor(t)
	feed(e, ":q\n")

	if !e.ExitRequested {
		t.Fatalf("expected ExitRequested after :q")
	}
}

func TestUnknownCommandSetsMessage(t *testing.T) {
	e := newTestEditor(t)
	feed(e, ":xyz\n")

	if e.ExitRequested {
		t.Fatalf("unknown command should not request exit")
	}
	want := "Not an editor command: xyz"
	if e.Message != want {
		t.Fatalf("message = %q, want %q", e.Message, want)
	}
}

func TestBackspaceJoinsLinesAcrossTheWholePipeline(t *testing.T) {
	e := newTestEditor(t)
	// i a b <Enter> c <Esc> leaves the cursor normalized onto the "c"
	// on line two, column 0.
	feed(e, "iab\nc\x1b")
	// i re-enters insert mode without moving the cursor; backspace from
	// column 0 there must join "ab" and "c" into one line.
	feed(e, "i")
	feed(e, string([]byte{0x7F}))
	feed(e, "\x1b")

	if got := string(e.Tab.Focus.Window.Buffer.Bytes()); got != "abc\n" {
		t.Fatalf("buffer = %q, want %q", got, "abc\n")
	}
}

func TestGGAndGPipeline(t *testing.T) {
	e := newTestEditor(t)
	feed(e, "ione\ntwo\nthree\x1b")
	feed(e, "gg")

	w := e.Tab.Focus.Window
	if w.AbsoluteY() != 0 {
		t.Fatalf("after gg, absoluteY = %d, want 0", w.AbsoluteY())
	}

	feed(e, "G")
	if w.AbsoluteY() != 2 {
		t.Fatalf("after G, absoluteY = %d, want 2", w.AbsoluteY())
	}
}

func TestCountedMoveThroughFullPipeline(t *testing.T) {
	e := newTestEditor(t)
	feed(e, "ihello\x1b")
	feed(e, "^") // back to column 0
	feed(e, "3l")

	w := e.Tab.Focus.Window
	if w.Cursor.Pos.X != 3 {
		t.Fatalf("cursor.X = %d, want 3", w.Cursor.Pos.X)
	}
}
