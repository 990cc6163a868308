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

// Package model is the text model: a doubly linked list of Lines, each
// a doubly linked list of LineItems, ending in a newline sentinel.
// Lines and items are never shared between buffers and are mutated
// only by the primitives in this package.
package model

// Symbol is an 8-bit character stored in a LineItem.
type Symbol byte

const (
	Newline Symbol = 0x0A
	Tab     Symbol = 0x09
)

// IsPrintable reports whether s falls in the printable ASCII range.
func IsPrintable(s Symbol) bool {
	return s >= 0x20 && s <= 0x7E
}

// IsNewline reports whether s is the line-ending sentinel.
func IsNewline(s Symbol) bool {
	return s == Newline
}

// IsTab reports whether s is a tab character.
func IsTab(s Symbol) bool {
	return s == Tab
}

// IsWordSymbol reports whether s counts as part of a word for the
// w/e/b navigation commands: anything but space, tab or newline.
func IsWordSymbol(s Symbol) bool {
	return s != ' ' && s != Tab && s != Newline
}

// ScreenShift is the number of screen columns s occupies: four for a
// tab, one for everything else (tabs remain a single LineItem).
func ScreenShift(s Symbol) int {
	if IsTab(s) {
		return 4
	}
	return 1
}
