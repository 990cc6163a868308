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

package term

import (
	"bufio"
	"fmt"
	"io"

	"github.com/arnvald/vige/internal/types"
)

// Cell is one screen position: a symbol and the color treatment it is
// drawn with.
type Cell struct {
	Symbol byte
	Color  types.Color
}

// Renderer holds two cell grids — the one last flushed to the
// terminal and the one the editor is currently building — and emits
// only the escape sequences needed to make the terminal match the
// current grid, the same diff-and-redraw approach as the original's
// rendered_grid/current_grid pair.
type Renderer struct {
	out    *bufio.Writer
	cols   int
	rows   int
	shown  []Cell
	buildi []Cell
}

// NewRenderer builds a Renderer that writes to w, sized cols x rows.
func NewRenderer(w io.Writer, cols, rows int) *Renderer {
	r := &Renderer{
		out:    bufio.NewWriter(w),
		cols:   cols,
		rows:   rows,
		shown:  make([]Cell, cols*rows),
		buildi: make([]Cell, cols*rows),
	}
	for i := range r.shown {
		r.shown[i] = Cell{Symbol: ' ', Color: types.ColorClear}
	}
	return r
}

func (r *Renderer) index(x, y int) int { return y*r.cols + x }

// SetCell writes one cell into the grid being built. Out-of-bounds
// coordinates are ignored.
func (r *Renderer) SetCell(x, y int, symbol byte, color types.Color) {
	if x < 0 || x >= r.cols || y < 0 || y >= r.rows {
		return
	}
	r.buildi[r.index(x, y)] = Cell{Symbol: symbol, Color: color}
}

// sgr returns the SGR escape sequence for color.
func sgr(color types.Color) string {
	switch color {
	case types.ColorCursor:
		return "\x1b[90;107m"
	case types.ColorInfo:
		return "\x1b[30;47m"
	case types.ColorLineHighlight:
		return "\x1b[48;5;240m"
	default:
		return "\x1b[0m"
	}
}

// Flush diffs the built grid against what was last shown, emitting a
// cursor move plus color-wrapped symbol for every cell that changed,
// then copies the built grid into the shown one (switch_grids in the
// original).
func (r *Renderer) Flush(cursorX, cursorY int) error {
	for y := 0; y < r.rows; y++ {
		for x := 0; x < r.cols; x++ {
			i := r.index(x, y)
			if r.shown[i] == r.buildi[i] {
				continue
			}
			fmt.Fprintf(r.out, "\x1b[%d;%dH", y+1, x+1)
			fmt.Fprint(r.out, sgr(r.buildi[i].Color))
			r.out.WriteByte(r.buildi[i].Symbol)
			fmt.Fprint(r.out, "\x1b[0m")
		}
	}
	fmt.Fprintf(r.out, "\x1b[%d;%dH", cursorY+1, cursorX+1)
	copy(r.shown, r.buildi)
	return r.out.Flush()
}

// ClearScreen emits the full-screen clear sequence and resets both
// grids, forcing the next Flush to redraw everything.
func (r *Renderer) ClearScreen() error {
	fmt.Fprint(r.out, "\x1b[1;1H\x1b[2J")
	for i := range r.shown {
		r.shown[i] = Cell{Symbol: ' ', Color: types.ColorClear}
		r.buildi[i] = Cell{Symbol: ' ', Color: types.ColorClear}
	}
	return r.out.Flush()
}

// HideCursor/ShowCursor toggle the terminal cursor's visibility.
func (r *Renderer) HideCursor() error {
	fmt.Fprint(r.out, "\x1b[?25l")
	return r.out.Flush()
}

func (r *Renderer) ShowCursor() error {
	fmt.Fprint(r.out, "\x1b[?25h")
	return r.out.Flush()
}
