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

// Package window ties a buffer, a cursor and a viewport together with
// the three rectangular views (source, gutter, info) a window renders
// into.
package window

import (
	"github.com/arnvald/vige/internal/buffer"
	"github.com/arnvald/vige/internal/model"
	"github.com/arnvald/vige/internal/nav"
	"github.com/arnvald/vige/internal/types"
	"github.com/arnvald/vige/internal/viewport"
)

// Window is a buffer, a cursor into it, and the viewport/views needed
// to render that buffer on screen.
type Window struct {
	Buffer  *buffer.Buffer
	Cursor  nav.Cursor
	View    viewport.Viewport
	XOffset int

	Source *types.View
	Gutter *types.View
	Info   *types.View
}

// New builds a window over buf, with the cursor at the buffer's first
// line/item and views sized to fit within the given screen rectangle.
// The bottom row is reserved for the info bar, the left gutterWidth
// columns for the gutter.
func New(buf *buffer.Buffer, originX, originY, endX, endY, gutterWidth int) *Window {
	root := types.NewView(originX, originY, endX, endY, nil)
	gutter := types.NewView(0, 0, gutterWidth, endY-originY-1, root)
	source := types.NewView(gutterWidth, 0, endX-originX, endY-originY-1, root)
	info := types.NewView(0, endY-originY-1, endX-originX, endY-originY, root)

	w := &Window{
		Buffer: buf,
		Source: source,
		Gutter: gutter,
		Info:   info,
	}
	w.Cursor.Line = buf.Head
	w.Cursor.Item = buf.Head.Head
	w.View.ViewRows = source.Rows()
	return w
}

// AbsoluteY reports the zero-based absolute line index of the cursor,
// i.e. cursor.y + y_offset.
func (w *Window) AbsoluteY() int {
	return w.Cursor.Pos.Y + w.View.YOffset
}

// sync pulls the viewport's y offset back into range with the cursor's
// screen row; every composed move below ends by calling this, so the
// cursor row never drifts outside what's actually visible.
func (w *Window) sync() {
	w.Cursor.Pos.Y = w.View.Sync(w.Cursor.Pos.Y, w.Buffer.LineCount())
}

// MoveCursor applies the composed move selected by dir, count times
// (count already clamped to >= 1 by the dispatcher), then syncs the
// viewport.
func (w *Window) MoveCursor(dir types.Direction, count int) {
	switch dir {
	case types.Left:
		nav.Left(&w.Cursor, count)
	case types.Right:
		nav.Right(&w.Cursor, count)
	case types.Up:
		nav.UpDown(&w.Cursor, nav.ToPrevLine, count)
	case types.Down:
		nav.UpDown(&w.Cursor, nav.ToNextLine, count)
	}
	w.sync()
}

// LineStart/LineEnd implement ^ and $.
func (w *Window) LineStart() { nav.ToStartOfLine(&w.Cursor); w.sync() }
func (w *Window) LineEnd()   { nav.ToEndOfLine(&w.Cursor); w.sync() }

// NextWord/EndOfWord/PrevWord implement w/e/b.
func (w *Window) NextWord() { nav.NextWord(&w.Cursor); w.sync() }
func (w *Window) EndOfWord() { nav.EndOfWord(&w.Cursor); w.sync() }
func (w *Window) PrevWord() { nav.PrevWord(&w.Cursor); w.sync() }

// ViewRow implements H/M/L: top, middle, bottom row of the viewport.
func (w *Window) ViewRow(target int) {
	nav.ViewRow(&w.Cursor, target)
	w.sync()
}

// GotoLine implements gg/G: target is the zero-based absolute line
// index to land on (max(N,1)-1 for gg, N-1 for G, computed by the
// caller, which also supplies 0 / last-line defaults for no count).
func (w *Window) GotoLine(target int) {
	nav.GotoLineIndex(&w.Cursor, w.AbsoluteY(), target)
	w.sync()
}

// HalfPageScroll implements Ctrl-D/Ctrl-U: move the cursor by the
// configured scroll amount, then shift the viewport offset by the same
// amount in the same direction.
func (w *Window) HalfPageScroll(dir types.Direction, configuredAmount int) {
	amount := w.View.HalfPage(configuredAmount)
	switch dir {
	case types.Down:
		moved := nav.Repeat(&w.Cursor, nav.ToNextLine, amount)
		w.Cursor.Pos.Y -= w.View.OffsetDown(moved, w.Buffer.LineCount())
	case types.Up:
		moved := nav.Repeat(&w.Cursor, nav.ToPrevLine, amount)
		w.Cursor.Pos.Y += w.View.OffsetUp(moved)
	}
	w.sync()
}

// NormalizeCursor steps the cursor back off the newline sentinel, used
// when leaving Insert mode; it is a no-op on an empty line, where the
// sentinel is the only item.
func (w *Window) NormalizeCursor() {
	if model.IsNewline(w.Cursor.Item.Symbol) {
		nav.Backward(&w.Cursor)
	}
}

// InsertSymbol applies one Insert-mode keystroke: backspace, enter,
// printable insertion, or (silently) anything else.
func (w *Window) InsertSymbol(symbol model.Symbol) {
	switch {
	case symbol == 0x7F: // backspace
		w.backspace()
	case model.IsNewline(symbol):
		w.enter()
	case model.IsPrintable(symbol) || model.IsTab(symbol):
		shift := model.Insert(w.Cursor.Line, w.Cursor.Item, symbol)
		w.Cursor.Pos.X += shift
	}
}

func (w *Window) backspace() {
	if shift := model.DeleteBefore(w.Cursor.Line, w.Cursor.Item); shift > 0 {
		w.Cursor.Pos.X -= shift
		return
	}
	prev := w.Cursor.Line.Prev
	if prev == nil {
		return
	}
	// column 0 with a previous line: join it in (an empty prev just
	// vanishes; a non-empty one donates its content ahead of ours),
	// landing the cursor at the old join point.
	joinCol := 0
	for item := prev.Head; item != prev.Tail(); item = item.Next {
		joinCol += model.ScreenShift(item.Symbol)
	}
	joinItem := w.Cursor.Line.Head
	model.JoinLineAfter(prev)
	w.Cursor.Line = prev
	w.Cursor.Item = joinItem
	w.Cursor.Pos.X = joinCol
	w.Cursor.Pos.Y--
	w.sync()
}

func (w *Window) enter() {
	newLine := model.SplitLineAt(w.Cursor.Line, w.Cursor.Item)
	w.Cursor.Line = newLine
	w.Cursor.Item = newLine.Head
	w.Cursor.Pos.X = 0
	w.Cursor.Pos.Y++
	w.sync()
}
