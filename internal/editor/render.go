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
	"fmt"

	"github.com/arnvald/vige/internal/model"
	"github.com/arnvald/vige/internal/types"
	"github.com/arnvald/vige/internal/window"
)

// renderer is the subset of *term.Renderer the editor draws through;
// kept as an interface so this package never imports the term package
// (which would drag golang.org/x/term into every test binary).
type renderer interface {
	SetCell(x, y int, symbol byte, color types.Color)
}

// Render draws the focused window's visible text and its single info
// row into r, then reports where the real cursor should land: one pass
// for the buffer text, one for the info bar.
func (e *Editor) Render(r renderer) (cursorX, cursorY int) {
	w := e.Tab.Focus.Window
	cursorX, cursorY = e.renderSource(r, w)
	e.renderInfoBar(r, w)
	return cursorX, cursorY
}

// renderSource draws the lines currently scrolled into view, one
// screen row per line, starting at the viewport's y offset.
func (e *Editor) renderSource(r renderer, w *window.Window) (cursorX, cursorY int) {
	lines := model.IterateFrom(w.Buffer.Head)
	top := w.View.YOffset
	for row := 0; row < w.View.ViewRows; row++ {
		idx := top + row
		if idx >= len(lines) {
			break
		}
		x := 0
		for item := lines[idx].Head; item != nil && !model.IsNewline(item.Symbol); item = item.Next {
			color := types.ColorClear
			if row == w.Cursor.Pos.Y && item == w.Cursor.Item {
				color = types.ColorCursor
			}
			r.SetCell(w.Source.Origin.X+x, w.Source.Origin.Y+row, byte(item.Symbol), color)
			x += model.ScreenShift(item.Symbol)
		}
	}
	return w.Source.Origin.X + w.Cursor.Pos.X, w.Source.Origin.Y + w.Cursor.Pos.Y
}

// renderInfoBar draws the window's single reserved bottom row: the
// colon-command text being typed or the last status message takes
// over the left side when present, otherwise it shows
// "<filename>  <line>/<count>".
func (e *Editor) renderInfoBar(r renderer, w *window.Window) {
	var text string
	switch {
	case e.Parser.Mode == types.Command:
		text = ":" + e.Parser.Command.Text
	case e.Message != "":
		text = e.Message
	default:
		name := w.Buffer.FileName
		if name == "" {
			name = "[No Name]"
		}
		text = fmt.Sprintf(" %s  %d/%d ", name, w.AbsoluteY()+1, w.Buffer.LineCount())
	}
	for x, ch := range text {
		if x >= w.Info.Cols() {
			break
		}
		r.SetCell(w.Info.Origin.X+x, w.Info.Origin.Y, byte(ch), types.ColorInfo)
	}
}
