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

// Package nav implements cursor navigation over the text model. Every
// move here takes a Cursor (a window's line/item pointers and screen
// position) and returns the distance moved, so callers can compose
// primitive moves by count without duplicating the stepping logic.
package nav

import (
	"github.com/arnvald/vige/internal/model"
	"github.com/arnvald/vige/internal/types"
)

// Cursor is the pair of text-model pointers and the screen position
// they correspond to. It is embedded in window.Window; nav functions
// take a *Cursor so they can be unit tested without a full window.
type Cursor struct {
	Line *model.Line
	Item *model.LineItem
	Pos  types.Pos
}

// Step is a single primitive move: it mutates c and returns the
// distance moved (screen columns or lines, as appropriate), or zero
// if the move could not be made.
type Step func(c *Cursor) int

// Repeat applies step up to n times, stopping early (and returning the
// sum of distances actually moved) the first time step returns zero.
// This is the "apply a step function repeatedly until it returns zero,
// or up to n times, summing the distances" combinator the Design Notes
// ask for; every composed move in this package is built from it.
func Repeat(c *Cursor, step Step, n int) int {
	total := 0
	for i := 0; i < n; i++ {
		d := step(c)
		if d == 0 {
			break
		}
		total += d
	}
	return total
}

// Forward steps to the next item on the same line. It never crosses a
// line boundary: if the next item is the newline sentinel, or there is
// no next item, it is a no-op.
func Forward(c *Cursor) int {
	next := c.Item.Next
	if next == nil || model.IsNewline(next.Symbol) {
		return 0
	}
	shift := model.ScreenShift(c.Item.Symbol)
	c.Item = next
	c.Pos.X += shift
	return shift
}

// Backward steps to the previous item on the same line. It is a no-op
// at the start of the line.
func Backward(c *Cursor) int {
	prev := c.Item.Prev
	if prev == nil {
		return 0
	}
	shift := model.ScreenShift(prev.Symbol)
	c.Item = prev
	c.Pos.X -= shift
	return shift
}

// ToNextLine moves to the head of the next line, resetting the column
// to zero. It is a no-op on the last line.
func ToNextLine(c *Cursor) int {
	next := c.Line.Next
	if next == nil {
		return 0
	}
	c.Line = next
	c.Item = next.Head
	c.Pos.X = 0
	c.Pos.Y++
	return 1
}

// ToPrevLine moves to the head of the previous line, resetting the
// column to zero. It is a no-op on the first line.
func ToPrevLine(c *Cursor) int {
	prev := c.Line.Prev
	if prev == nil {
		return 0
	}
	c.Line = prev
	c.Item = prev.Head
	c.Pos.X = 0
	c.Pos.Y--
	return 1
}

// ToEndOfLine applies Forward until it no-ops, leaving the cursor on
// the line's last content item (one before the newline sentinel), or
// on the sentinel itself if the line is empty.
func ToEndOfLine(c *Cursor) {
	for Forward(c) != 0 {
	}
}

// ToStartOfLine applies Backward until it no-ops.
func ToStartOfLine(c *Cursor) {
	for Backward(c) != 0 {
	}
}

// ForwardOrNextLine steps forward within the line, crossing onto the
// next line if the in-line step fails. It returns 0 only at the very
// end of the buffer.
func ForwardOrNextLine(c *Cursor) int {
	if d := Forward(c); d != 0 {
		return d
	}
	return ToNextLine(c)
}

// BackwardOrPrevLine steps backward within the line, crossing onto the
// previous line (landing on its last content item) if the in-line step
// fails. It returns 0 only at the very start of the buffer.
func BackwardOrPrevLine(c *Cursor) int {
	if d := Backward(c); d != 0 {
		return d
	}
	if ToPrevLine(c) == 0 {
		return 0
	}
	ToEndOfLine(c)
	return 1
}
