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

package model

// Insert places a new item carrying symbol immediately before
// beforeItem in line, updating line's head if beforeItem was it. It
// returns the screen-column shift the new item consumes.
func Insert(line *Line, beforeItem *LineItem, symbol Symbol) int {
	item := NewLineItem(symbol)
	item.Next = beforeItem
	item.Prev = beforeItem.Prev
	if beforeItem.Prev != nil {
		beforeItem.Prev.Next = item
	} else {
		line.SetHead(item)
	}
	beforeItem.Prev = item
	return ScreenShift(symbol)
}

// DeleteBefore removes item.Prev from line, relinking neighbors. It
// never crosses a line boundary: item must belong to line. It returns
// 0 if item had no predecessor, else the removed symbol's
// screen-column shift.
func DeleteBefore(line *Line, item *LineItem) int {
	prev := item.Prev
	if prev == nil {
		return 0
	}
	if prev.Prev != nil {
		prev.Prev.Next = item
	} else {
		line.SetHead(item)
	}
	item.Prev = prev.Prev
	return ScreenShift(prev.Symbol)
}

// SplitLineAt creates a new line that begins with atItem; line keeps
// everything before atItem and gains a fresh newline sentinel. Both
// lines end in a newline item, so every line in the list stays
// well-formed. The new line is linked into the list immediately after
// line; the caller is responsible for moving any cursor.
func SplitLineAt(line *Line, atItem *LineItem) *Line {
	before := atItem.Prev
	sentinel := NewLineItem(Newline)
	sentinel.Prev = before
	if before != nil {
		before.Next = sentinel
	} else {
		line.SetHead(sentinel)
	}
	atItem.Prev = nil

	newLine := NewLine(atItem)
	newLine.Next = line.Next
	newLine.Prev = line
	if line.Next != nil {
		line.Next.Prev = newLine
	}
	line.Next = newLine
	return newLine
}

// JoinLineAfter concatenates line.Next into line, removing the
// newline sentinel that separated them. It is a no-op when line has
// no next line.
func JoinLineAfter(line *Line) {
	next := line.Next
	if next == nil {
		return
	}
	sentinel := line.Tail()
	// drop the sentinel and splice next's items directly after what
	// came before it.
	before := sentinel.Prev
	if before != nil {
		before.Next = next.Head
		next.Head.Prev = before
	} else {
		line.SetHead(next.Head)
	}

	line.Next = next.Next
	if next.Next != nil {
		next.Next.Prev = line
	}
}
