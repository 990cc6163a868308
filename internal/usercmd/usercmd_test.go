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

package usercmd

import "testing"

func TestQueuePopDrainsInOrder(t *testing.T) {
	var q Queue
	q.Push(Command{Type: Left})
	q.Push(Command{Type: Right})

	first, ok := q.Pop()
	if !ok || first.Type != Left {
		t.Fatalf("first = %+v, ok=%v, want Left", first, ok)
	}
	second, ok := q.Pop()
	if !ok || second.Type != Right {
		t.Fatalf("second = %+v, ok=%v, want Right", second, ok)
	}
	if !q.Empty() {
		t.Fatalf("expected queue empty after draining both entries")
	}
	if _, ok := q.Pop(); ok {
		t.Fatalf("Pop on empty queue returned ok=true")
	}
}

func TestQueueOverflowResetsToLatest(t *testing.T) {
	var q Queue
	for i := 0; i < Capacity; i++ {
		q.Push(Command{Type: Left, Count: i})
	}
	// Queue is now full (write == Capacity); one more push must discard
	// everything queued so far and keep only this new entry — "latest
	// wins" rather than classic FIFO overflow handling.
	q.Push(Command{Type: Right, Count: 99})

	cmd, ok := q.Pop()
	if !ok {
		t.Fatalf("expected one surviving entry after overflow")
	}
	if cmd.Type != Right || cmd.Count != 99 {
		t.Fatalf("surviving entry = %+v, want Right/99", cmd)
	}
	if _, ok := q.Pop(); ok {
		t.Fatalf("expected only the latest entry to survive overflow")
	}
}
