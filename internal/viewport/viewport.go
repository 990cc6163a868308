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

// Package viewport keeps a window's scroll offset consistent with its
// cursor's screen row, clamping it back into range after every cursor
// move.
package viewport

// Viewport is the scroll state shared by a window: YOffset is the
// absolute index of the first visible line, ViewRows is the number of
// source rows available on screen.
type Viewport struct {
	YOffset  int
	ViewRows int
}

// CursorY reports the absolute line index implied by a screen row,
// preserving the cursor.y + y_offset invariant.
func (v *Viewport) CursorY(screenY int) int {
	return screenY + v.YOffset
}

// OffsetUp scrolls the viewport up by n lines (n >= 0), returning the
// delta the caller must add to the cursor's screen y so the absolute
// line stays put.
func (v *Viewport) OffsetUp(n int) int {
	if n <= 0 {
		return 0
	}
	target := v.YOffset - n
	if target < 0 {
		target = 0
	}
	delta := v.YOffset - target
	v.YOffset = target
	return delta
}

// OffsetDown scrolls the viewport down by n lines (n >= 0), returning
// the delta the caller must subtract from the cursor's screen y.
func (v *Viewport) OffsetDown(n, totalLines int) int {
	if n <= 0 {
		return 0
	}
	max := totalLines - v.ViewRows
	if max < 0 {
		max = 0
	}
	target := v.YOffset + n
	if target > max {
		target = max
	}
	delta := target - v.YOffset
	v.YOffset = target
	return delta
}

// Sync brings a cursor screen row back within [0, ViewRows) by
// adjusting YOffset, returning the corrected screen row. Call this
// after every composed cursor move, per the viewport_sync contract.
func (v *Viewport) Sync(screenY, totalLines int) int {
	if screenY < 0 {
		screenY += v.OffsetUp(-screenY)
		return screenY
	}
	if screenY >= v.ViewRows {
		screenY -= v.OffsetDown(screenY-v.ViewRows+1, totalLines)
		return screenY
	}
	return screenY
}

// HalfPage returns the scroll amount a Ctrl-D/Ctrl-U should use: the
// configured amount if positive (set by a count), else view_rows/2.
func (v *Viewport) HalfPage(configured int) int {
	if configured > 0 {
		return configured
	}
	n := v.ViewRows / 2
	if n < 1 {
		n = 1
	}
	return n
}
