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

package editor

import (
	"github.com/arnvald/vige/internal/model"
	"github.com/atotto/clipboard"
)

// yankToClipboard pushes the focused buffer's full contents onto the
// system clipboard, the paste register `:yank!` works through. A host
// with no clipboard utility available is reported on the status line,
// never treated as fatal.
func (e *Editor) yankToClipboard() (string, bool) {
	buf := e.Tab.Focus.Window.Buffer
	if err := clipboard.WriteAll(string(buf.Bytes())); err != nil {
		return "yank! failed: " + err.Error(), false
	}
	return "", false
}

// putFromClipboard reads the system clipboard and types its contents
// into the focused window at the cursor, byte by byte, through the
// same InsertSymbol path a real keystroke takes.
func (e *Editor) putFromClipboard() (string, bool) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "put! failed: " + err.Error(), false
	}
	w := e.Tab.Focus.Window
	for i := 0; i < len(text); i++ {
		w.InsertSymbol(model.Symbol(text[i]))
	}
	return "", false
}
