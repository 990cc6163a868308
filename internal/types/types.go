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

// Package types holds the small value types shared by every layer of
// the editor: screen coordinates, rectangles, modes and directions.
package types

// Pos is a screen coordinate: a column and a row.
type Pos struct {
	X int
	Y int
}

// Size is a count of screen columns and rows.
type Size struct {
	Cols int
	Rows int
}

// View is a rectangular screen region that can be nested inside a
// parent view. Coordinates passed to ViewX/ViewY are local to the
// view and are translated up through parents to absolute screen
// coordinates.
type View struct {
	Origin Pos
	End    Pos
	Parent *View
}

// NewView builds a view with the given bounds and optional parent.
func NewView(originX, originY, endX, endY int, parent *View) *View {
	return &View{
		Origin: Pos{X: originX, Y: originY},
		End:    Pos{X: endX, Y: endY},
		Parent: parent,
	}
}

// ViewX translates a column local to v into an absolute screen column.
func ViewX(v *View, x int) int {
	for v.Parent != nil {
		x += v.Origin.X
		v = v.Parent
	}
	return x
}

// ViewY translates a row local to v into an absolute screen row.
func ViewY(v *View, y int) int {
	for v.Parent != nil {
		y += v.Origin.Y
		v = v.Parent
	}
	return y
}

// Cols is the width of the view.
func (v *View) Cols() int {
	return v.End.X - v.Origin.X
}

// Rows is the height of the view.
func (v *View) Rows() int {
	return v.End.Y - v.Origin.Y
}

// Mode is one of the editor's three modal states.
type Mode int

const (
	Normal Mode = iota
	Command
	Insert
)

// Direction selects which way a cursor, scroll or window-switch moves.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Color names the SGR treatment applied to a rendered cell. These map
// directly onto the escape sequences specified for the renderer.
type Color int

const (
	ColorClear Color = iota
	ColorCursor
	ColorInfo
	ColorLineHighlight
)
