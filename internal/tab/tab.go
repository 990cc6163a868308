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

// Package tab lays out a tab's windows as a 2-D neighbor graph: each
// TabItem links directly to up to four neighbors (left/right/up/down),
// and SwitchWindow just follows the link named by the requested
// direction.
package tab

import (
	"github.com/arnvald/vige/internal/types"
	"github.com/arnvald/vige/internal/window"
)

// TabItem owns one Window and its neighbor links in the grid. A nil
// neighbor means there is no window in that direction.
type TabItem struct {
	Window *window.Window
	Left   *TabItem
	Right  *TabItem
	Up     *TabItem
	Down   *TabItem
}

// Tab is the set of TabItems open in one tab, with one focused at a
// time.
type Tab struct {
	Head  *TabItem
	Focus *TabItem
}

// NewTab wraps a single window as the tab's sole, focused item.
func NewTab(w *window.Window) *Tab {
	item := &TabItem{Window: w}
	return &Tab{Head: item, Focus: item}
}

// neighbor returns the link in dir, or nil.
func (ti *TabItem) neighbor(dir types.Direction) *TabItem {
	switch dir {
	case types.Left:
		return ti.Left
	case types.Right:
		return ti.Right
	case types.Up:
		return ti.Up
	case types.Down:
		return ti.Down
	}
	return nil
}

func setNeighbor(ti *TabItem, dir types.Direction, n *TabItem) {
	switch dir {
	case types.Left:
		ti.Left = n
	case types.Right:
		ti.Right = n
	case types.Up:
		ti.Up = n
	case types.Down:
		ti.Down = n
	}
}

// opposite reports the direction that, from the new item's side,
// points back at the item it was split from.
func opposite(dir types.Direction) types.Direction {
	switch dir {
	case types.Left:
		return types.Right
	case types.Right:
		return types.Left
	case types.Up:
		return types.Down
	case types.Down:
		return types.Up
	}
	return dir
}

// SwitchWindow moves focus to the neighbor in dir, if one exists. It
// is a no-op otherwise.
func (t *Tab) SwitchWindow(dir types.Direction) {
	if n := t.Focus.neighbor(dir); n != nil {
		t.Focus = n
	}
}

// Split inserts w as a new TabItem adjacent to the focused item in
// dir. If the focused item already had a neighbor in dir, the new item
// is placed between the two and that neighbor's back link is pointed
// at the new item. No link in any other direction is touched — unlike
// a split-tree rebalance. The new item becomes focused.
func (t *Tab) Split(dir types.Direction, w *window.Window) *TabItem {
	current := t.Focus
	existing := current.neighbor(dir)
	back := opposite(dir)

	item := &TabItem{Window: w}
	setNeighbor(current, dir, item)
	setNeighbor(item, back, current)
	if existing != nil {
		setNeighbor(item, dir, existing)
		setNeighbor(existing, back, item)
	}

	t.Focus = item
	return item
}

// Windows returns every TabItem reachable from Head via breadth-first
// traversal of the neighbor graph, each item visited once.
func (t *Tab) Windows() []*TabItem {
	seen := map[*TabItem]bool{t.Head: true}
	queue := []*TabItem{t.Head}
	var out []*TabItem
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		out = append(out, item)
		for _, dir := range []types.Direction{types.Left, types.Right, types.Up, types.Down} {
			if n := item.neighbor(dir); n != nil && !seen[n] {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	return out
}
