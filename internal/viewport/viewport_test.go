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

package viewport

import "testing"

func TestOffsetUpClampsAtZero(t *testing.T) {
	v := &Viewport{YOffset: 3, ViewRows: 10}
	if d := v.OffsetUp(5); d != 3 {
		t.Fatalf("OffsetUp(5) from 3 = %d, want 3", d)
	}
	if v.YOffset != 0 {
		t.Fatalf("YOffset = %d, want 0", v.YOffset)
	}
}

func TestOffsetDownClampsAtTotalMinusRows(t *testing.T) {
	v := &Viewport{YOffset: 0, ViewRows: 10}
	if d := v.OffsetDown(50, 20); d != 10 {
		t.Fatalf("OffsetDown(50, 20) = %d, want 10", d)
	}
	if v.YOffset != 10 {
		t.Fatalf("YOffset = %d, want 10", v.YOffset)
	}
}

func TestSyncPullsCursorIntoView(t *testing.T) {
	v := &Viewport{YOffset: 5, ViewRows: 10}
	if y := v.Sync(-2, 100); y != 0 {
		t.Fatalf("Sync(-2) = %d, want 0", y)
	}
	if v.YOffset != 3 {
		t.Fatalf("YOffset after sync up = %d, want 3", v.YOffset)
	}

	v2 := &Viewport{YOffset: 0, ViewRows: 10}
	if y := v2.Sync(12, 100); y != 9 {
		t.Fatalf("Sync(12) = %d, want 9", y)
	}
	if v2.YOffset != 3 {
		t.Fatalf("YOffset after sync down = %d, want 3", v2.YOffset)
	}
}

func TestHalfPageScrollScenario(t *testing.T) {
	v := &Viewport{YOffset: 0, ViewRows: 10}
	amount := v.HalfPage(0)
	if amount != 5 {
		t.Fatalf("default half page = %d, want 5", amount)
	}
	v.OffsetDown(amount, 100)
	if v.YOffset != 5 {
		t.Fatalf("first Ctrl-D YOffset = %d, want 5", v.YOffset)
	}
	v.OffsetDown(amount, 100)
	if v.YOffset != 10 {
		t.Fatalf("second Ctrl-D YOffset = %d, want 10", v.YOffset)
	}
	v.OffsetUp(amount)
	if v.YOffset != 5 {
		t.Fatalf("Ctrl-U reversing one Ctrl-D YOffset = %d, want 5", v.YOffset)
	}
}

func TestHalfPageRespectsConfiguredCount(t *testing.T) {
	v := &Viewport{ViewRows: 10}
	if amount := v.HalfPage(3); amount != 3 {
		t.Fatalf("HalfPage(3) = %d, want 3", amount)
	}
}
