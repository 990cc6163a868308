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

package nav

import "github.com/arnvald/vige/internal/model"

// Left/Right apply the in-line primitive moves count times.
func Left(c *Cursor, count int) int  { return Repeat(c, Backward, count) }
func Right(c *Cursor, count int) int { return Repeat(c, Forward, count) }

// UpDown moves count lines using step (ToPrevLine/ToNextLine),
// preserving the original screen column as closely as the destination
// line allows (clamped at the destination's end of line). It returns
// the number of lines actually moved.
func UpDown(c *Cursor, step Step, count int) int {
	originalX := c.Pos.X
	moved := Repeat(c, step, count)
	if moved == 0 {
		return 0
	}
	for c.Pos.X < originalX {
		if Forward(c) == 0 {
			break
		}
	}
	return moved
}

// NextWord implements the `w` motion: advance to the end of the
// current word, step once, then advance until a word symbol (or EOF).
func NextWord(c *Cursor) {
	for model.IsWordSymbol(c.Item.Symbol) {
		if ForwardOrNextLine(c) == 0 {
			return
		}
	}
	if ForwardOrNextLine(c) == 0 {
		return
	}
	for !model.IsWordSymbol(c.Item.Symbol) {
		if ForwardOrNextLine(c) == 0 {
			return
		}
	}
}

// EndOfWord implements the `e` motion: advance while the current and
// next items are both word symbols; if already at the end of a word,
// step once and re-enter the next word first.
func EndOfWord(c *Cursor) {
	atEnd := func() bool {
		return c.Item.Next == nil || model.IsNewline(c.Item.Next.Symbol) ||
			!model.IsWordSymbol(c.Item.Next.Symbol)
	}
	if !model.IsWordSymbol(c.Item.Symbol) || atEnd() {
		if ForwardOrNextLine(c) == 0 {
			return
		}
		for !model.IsWordSymbol(c.Item.Symbol) {
			if ForwardOrNextLine(c) == 0 {
				return
			}
		}
	}
	for !atEnd() {
		if ForwardOrNextLine(c) == 0 {
			return
		}
	}
}

// PrevWord implements the `b` motion: the mirror image of NextWord
// using the backward-crossing primitive.
func PrevWord(c *Cursor) {
	for model.IsWordSymbol(c.Item.Symbol) {
		if BackwardOrPrevLine(c) == 0 {
			return
		}
	}
	if BackwardOrPrevLine(c) == 0 {
		return
	}
	for !model.IsWordSymbol(c.Item.Symbol) {
		if BackwardOrPrevLine(c) == 0 {
			return
		}
	}
	// land on the first symbol of the word, not its last.
	for model.IsWordSymbol(c.Item.Symbol) {
		if c.Item.Prev == nil || !model.IsWordSymbol(c.Item.Prev.Symbol) {
			break
		}
		if BackwardOrPrevLine(c) == 0 {
			break
		}
	}
}

// ViewRow moves the cursor to row `target` (0=top, view_rows/2=middle,
// view_rows-1=bottom) of the current viewport, computed from the
// current screen y — the H/M/L commands.
func ViewRow(c *Cursor, target int) {
	delta := target - c.Pos.Y
	if delta > 0 {
		Repeat(c, ToNextLine, delta)
	} else if delta < 0 {
		Repeat(c, ToPrevLine, -delta)
	}
}

// GotoLineIndex moves from the line at absolute index current to the
// line at absolute index target (both zero-based, target clamped to
// >= 0). It moves relatively (ToPrevLine/ToNextLine) so that Pos.Y,
// which tracks the cursor's row relative to the viewport offset, stays
// consistent for the viewport_sync step that follows.
func GotoLineIndex(c *Cursor, current, target int) {
	if target < 0 {
		target = 0
	}
	delta := target - current
	if delta > 0 {
		Repeat(c, ToNextLine, delta)
	} else if delta < 0 {
		Repeat(c, ToPrevLine, -delta)
	}
}
