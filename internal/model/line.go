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

// LineItem is one symbol in a Line's item chain.
type LineItem struct {
	Symbol Symbol
	Next   *LineItem
	Prev   *LineItem
}

// NewLineItem allocates an unlinked item carrying symbol.
func NewLineItem(symbol Symbol) *LineItem {
	return &LineItem{Symbol: symbol}
}

// Line is a non-empty, newline-terminated chain of LineItems. Lines
// form a doubly linked list; the buffer owns the head Line.
type Line struct {
	Head *LineItem
	Next *Line
	Prev *Line
}

// NewLine wraps head as a new Line. head must end in a newline item.
func NewLine(head *LineItem) *Line {
	return &Line{Head: head}
}

// NewEmptyLine returns a line consisting of only a newline sentinel.
func NewEmptyLine() *Line {
	return NewLine(NewLineItem(Newline))
}

// SetHead replaces the line's head item, clearing the new head's prev
// link as required by the invariant that the head has no predecessor.
func (l *Line) SetHead(item *LineItem) {
	l.Head = item
	item.Prev = nil
}

// Tail returns the line's last item (its newline sentinel).
func (l *Line) Tail() *LineItem {
	item := l.Head
	for item.Next != nil {
		item = item.Next
	}
	return item
}

// Count returns the number of items in the line, including the
// trailing newline sentinel.
func (l *Line) Count() int {
	n := 0
	for item := l.Head; item != nil; item = item.Next {
		n++
	}
	return n
}

// String renders the line's symbols, including the trailing newline.
func (l *Line) String() string {
	b := make([]byte, 0, l.Count())
	for item := l.Head; item != nil; item = item.Next {
		b = append(b, byte(item.Symbol))
	}
	return string(b)
}

// Top walks to the first line in l's list.
func Top(l *Line) *Line {
	for l.Prev != nil {
		l = l.Prev
	}
	return l
}

// Count returns the number of lines in the list starting at l.
func Count(l *Line) int {
	n := 0
	for ; l != nil; l = l.Next {
		n++
	}
	return n
}

// IterateFrom returns a restartable, finite slice of the lines
// starting at head, in order. It is a read-only snapshot of the
// pointer chain at the time it is called.
func IterateFrom(head *Line) []*Line {
	var lines []*Line
	for l := head; l != nil; l = l.Next {
		lines = append(lines, l)
	}
	return lines
}

// NewLinesFromBytes splits b on newline bytes and builds a line list,
// one Line per newline-terminated segment. Text after the last newline
// becomes a final line of its own only if it is non-empty, so a file
// without a trailing newline still gets its last line, and a file that
// ends in a newline gets no extra empty line. The returned buffer
// always has at least one line.
func NewLinesFromBytes(b []byte) *Line {
	var head, tail *Line
	start := 0
	appendLine := func(text []byte) {
		line := lineFromText(text)
		if head == nil {
			head = line
		} else {
			tail.Next = line
			line.Prev = tail
		}
		tail = line
	}
	for i, c := range b {
		if c == byte(Newline) {
			appendLine(b[start:i])
			start = i + 1
		}
	}
	if start < len(b) || head == nil {
		appendLine(b[start:])
	}
	return head
}

func lineFromText(text []byte) *Line {
	items := make([]*LineItem, len(text)+1)
	for i, c := range text {
		items[i] = NewLineItem(Symbol(c))
	}
	items[len(text)] = NewLineItem(Newline)
	for i := 1; i < len(items); i++ {
		items[i-1].Next = items[i]
		items[i].Prev = items[i-1]
	}
	return NewLine(items[0])
}

// Bytes walks the entire line list starting at head and renders it
// back to a flat byte slice, the inverse of NewLinesFromBytes.
func Bytes(head *Line) []byte {
	var out []byte
	for l := head; l != nil; l = l.Next {
		out = append(out, []byte(l.String())...)
	}
	return out
}
